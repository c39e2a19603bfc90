// ABOUTME: CLI command showing the assembled memory context for a user
// ABOUTME: Mirrors exactly what the coach prompt receives as meal history
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewContextCmd creates the context command.
func NewContextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "context [user]",
		Short: "Show the memory context fed to the coach",
		Long: `Show the bounded memory window assembled for a user: up to the 5
most recent meals plus the latest 10 lines of report memory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := newSession()
			if err != nil {
				return err
			}
			if err := requireUser(session, args[0]); err != nil {
				return err
			}
			memory := session.MemoryContext(args[0])
			if memory == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "(no memory yet)")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), memory)
			return nil
		},
	}
}
