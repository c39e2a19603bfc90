// ABOUTME: CLI commands for user profile management
// ABOUTME: add/list/show/delete with full cascade on delete
package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	userProfileText string
	deleteConfirm   bool
)

// NewUsersCmd creates the users command group.
func NewUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user profiles",
		Long: `Manage user profiles.

Profiles are free-text narratives (conditions, height, weight, age)
that ground the coach's replies. Deleting a user removes the profile,
chat history, and every meal and symptom record for that user.`,
	}

	cmd.AddCommand(newUsersAddCmd())
	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersShowCmd())
	cmd.AddCommand(newUsersDeleteCmd())

	return cmd
}

func newUsersAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a user or overwrite their profile",
		Args:  cobra.ExactArgs(1),
		Example: `  gluteny users add "Ankita" --profile "Gluten intolerant. Height: 163 cm, Weight: 68 kg"`,
		RunE:  runUsersAdd,
	}

	cmd.Flags().StringVar(&userProfileText, "profile", "", "Free-text profile narrative")

	return cmd
}

func runUsersAdd(cmd *cobra.Command, args []string) error {
	session, _, err := newSession()
	if err != nil {
		return err
	}

	name := strings.TrimSpace(args[0])
	if name == "" {
		return fmt.Errorf("user name must not be empty")
	}

	if err := session.SaveUser(name, strings.TrimSpace(userProfileText)); err != nil {
		return fmt.Errorf("saving user: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profile saved for %s\n", name)
	return nil
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known users",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := newSession()
			if err != nil {
				return err
			}

			users := session.Users()
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found. Add one with 'gluteny users add'.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPROFILE")
			for _, name := range users {
				profile := strings.ReplaceAll(session.Profile(name), "\n", " ")
				fmt.Fprintf(w, "%s\t%s\n", name, truncate(profile, 60))
			}
			return w.Flush()
		},
	}
}

func newUsersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show a user's full profile narrative",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := newSession()
			if err != nil {
				return err
			}
			if err := requireUser(session, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), session.Profile(args[0]))
			return nil
		},
	}
}

func newUsersDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a user and all their records",
		Long: `Delete a user.

Removes the profile, chat history, and every meal and symptom record
for that user. Other users' records are untouched. Irreversible.`,
		Args: cobra.ExactArgs(1),
		RunE: runUsersDelete,
	}

	cmd.Flags().BoolVar(&deleteConfirm, "confirm", false, "Confirm the deletion")

	return cmd
}

func runUsersDelete(cmd *cobra.Command, args []string) error {
	if !deleteConfirm {
		fmt.Fprintln(cmd.OutOrStdout(), "This deletes the profile and every logged record for the user!")
		fmt.Fprintln(cmd.OutOrStdout(), "Run with --confirm to proceed")
		return nil
	}

	session, _, err := newSession()
	if err != nil {
		return err
	}
	if err := requireUser(session, args[0]); err != nil {
		return err
	}

	if err := session.DeleteUser(args[0]); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s and all associated records\n", args[0])
	return nil
}
