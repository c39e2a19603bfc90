// ABOUTME: CLI command showing the meal/symptom correlation insight
// ABOUTME: Renders the same advisory text the coach prompt receives
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInsightCmd creates the insight command.
func NewInsightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insight [user]",
		Short: "Show symptom-to-meal correlation insight",
		Long: `Show which meals most often co-occurred with each logged symptom.

Meals and symptoms join by shared calendar date. The output lists, per
symptom, the top meals by occurrence count. With too little data an
advisory message is shown instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := newSession()
			if err != nil {
				return err
			}
			if err := requireUser(session, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), session.InsightText(args[0]))
			return nil
		},
	}
}
