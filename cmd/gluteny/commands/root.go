// ABOUTME: Root command wiring for the Gluteny CLI
// ABOUTME: Registers all subcommands and global flags
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gluteny",
		Short: "Gluteny: your smart nutrition coach",
		Long: `Gluteny tracks meals and symptoms, stores health-report memory,
and chats as an LLM-backed nutrition coach grounded in your history.

Meal and symptom records correlate by calendar date; insights rank the
meals most often logged on the same dates a symptom occurred.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")

	cmd.AddCommand(NewUsersCmd())
	cmd.AddCommand(NewLogCmd())
	cmd.AddCommand(NewMealsCmd())
	cmd.AddCommand(NewInsightCmd())
	cmd.AddCommand(NewContextCmd())
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
