// ABOUTME: CLI commands for the shared report memory blob
// ABOUTME: Appends raw text or extracted PDF text; shows the stored tail
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gluteny/gluteny/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportPDF  string
	reportTail int
)

// NewReportCmd creates the report command group.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Manage uploaded health-report memory",
		Long: `Manage the report memory blob.

Report text is an append-only, deployment-wide memory; its latest lines
feed the coach's context window alongside recent meals.`,
	}

	cmd.AddCommand(newReportAddCmd())
	cmd.AddCommand(newReportShowCmd())

	return cmd
}

func newReportAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Append report text or an extracted PDF",
		Long: `Append text to the report memory.

Examples:
  gluteny report add "Vitamin D: 18 ng/mL (low)"
  gluteny report add --pdf bloodwork.pdf
  cat report.txt | gluteny report add`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReportAdd,
	}

	cmd.Flags().StringVar(&reportPDF, "pdf", "", "Extract text from a PDF file")

	return cmd
}

func runReportAdd(cmd *cobra.Command, args []string) error {
	session, _, err := newSession()
	if err != nil {
		return err
	}

	var text string
	switch {
	case reportPDF != "":
		text, err = report.ExtractText(reportPDF)
		if err != nil {
			return fmt.Errorf("extracting PDF text: %w", err)
		}
		if text == "" {
			return fmt.Errorf("no extractable text in %s", reportPDF)
		}
	case len(args) > 0:
		text = args[0]
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("no report text provided")
	}

	if err := session.Store().AppendReport(text); err != nil {
		return fmt.Errorf("appending report text: %w", err)
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Report text added to memory")
	}
	return nil
}

func newReportShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show stored report memory",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := newSession()
			if err != nil {
				return err
			}

			if reportTail > 0 {
				lines, err := session.Store().ReportTail(reportTail)
				if err != nil {
					return fmt.Errorf("reading report memory: %w", err)
				}
				if len(lines) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No report memory stored yet.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(strings.Join(lines, "\n")))
				return nil
			}

			text, err := session.Store().ReportText()
			if err != nil {
				return fmt.Errorf("reading report memory: %w", err)
			}
			if strings.TrimSpace(text) == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No report memory stored yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(text))
			return nil
		},
	}

	cmd.Flags().IntVar(&reportTail, "tail", 0, "Show only the last N lines")

	return cmd
}
