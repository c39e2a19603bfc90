// ABOUTME: Sync commands for Charm cloud backup of the data files
// ABOUTME: Provides status, push, pull, and keys management
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gluteny/gluteny/internal/charm"
	"github.com/spf13/cobra"
)

// NewSyncCmd creates the sync command group.
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Manage Charm cloud backup",
		Long: `Manage backup of the flat data files to Charm cloud.

Gluteny keeps its state in four flat files (meal log, symptom log,
profiles, report memory). Sync pushes them as blobs to your Charm
account and can restore them on another device.`,
	}

	cmd.AddCommand(newSyncStatusCmd())
	cmd.AddCommand(newSyncPushCmd())
	cmd.AddCommand(newSyncPullCmd())
	cmd.AddCommand(newSyncKeysCmd())

	return cmd
}

func newSyncStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show backup status and connection info",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := charm.GetClient()
			if err != nil {
				return fmt.Errorf("failed to connect to Charm: %w", err)
			}

			id, err := client.ID()
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Status: Not connected")
				fmt.Fprintln(cmd.OutOrStdout(), "Run 'gluteny sync keys' to check your SSH keys")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Status: Connected")
			fmt.Fprintf(cmd.OutOrStdout(), "User ID: %s\n", id)
			fmt.Fprintf(cmd.OutOrStdout(), "Host: %s\n", os.Getenv("CHARM_HOST"))

			files, err := client.ListFiles()
			if err != nil {
				return fmt.Errorf("failed to list backed-up files: %w", err)
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No files backed up yet")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Backed-up files:")
			for _, name := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		},
	}
}

func newSyncPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Back up the data files to Charm cloud",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := newSession()
			if err != nil {
				return err
			}

			client, err := charm.GetClient()
			if err != nil {
				return fmt.Errorf("failed to connect to Charm: %w", err)
			}

			for _, path := range session.Store().DataFiles() {
				if err := client.PushFile(path); err != nil {
					return fmt.Errorf("push failed for %s: %w", filepath.Base(path), err)
				}
				if verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "Pushed %s\n", filepath.Base(path))
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Backup complete")
			return nil
		},
	}
}

func newSyncPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Restore the data files from Charm cloud",
		Long: `Restore backed-up data files into the local data directory.

WARNING: restored files overwrite their local counterparts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := newSession()
			if err != nil {
				return err
			}

			client, err := charm.GetClient()
			if err != nil {
				return fmt.Errorf("failed to connect to Charm: %w", err)
			}

			restored := 0
			for _, path := range session.Store().DataFiles() {
				found, err := client.PullFile(path)
				if err != nil {
					return fmt.Errorf("pull failed for %s: %w", filepath.Base(path), err)
				}
				if found {
					restored++
					if verbose {
						fmt.Fprintf(cmd.OutOrStdout(), "Restored %s\n", filepath.Base(path))
					}
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d file(s)\n", restored)
			return nil
		},
	}
}

func newSyncKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List authorized SSH keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := charm.GetClient()
			if err != nil {
				return fmt.Errorf("failed to connect to Charm: %w", err)
			}

			keys, err := client.GetAuthorizedKeys()
			if err != nil {
				return fmt.Errorf("failed to get authorized keys: %w", err)
			}

			if keys == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No authorized keys found")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Authorized SSH keys:")
			fmt.Fprintln(cmd.OutOrStdout(), keys)

			return nil
		},
	}
}
