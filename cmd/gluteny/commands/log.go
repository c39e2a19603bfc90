// ABOUTME: CLI command to log a meal with optional symptoms and notes
// ABOUTME: Appends to the meal log and mirrors symptom entries for correlation
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/gluteny/gluteny/internal/models"
	"github.com/spf13/cobra"
)

var (
	logMealType string
	logDate     string
	logSymptoms []string
	logNotes    string
)

// NewLogCmd creates the log command.
func NewLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [user] [meal]",
		Short: "Log a meal and any symptoms",
		Long: `Log a meal for a user, optionally with symptoms and notes.

Symptoms logged here correlate with meals by calendar date: every meal
on a date counts as a candidate trigger for every symptom on that date.

Examples:
  gluteny log "Ankita" "Oats, almond milk, apple" --type Breakfast
  gluteny log "Ankita" "2 rotis, paneer, salad" --type Dinner --symptoms Bloating,Fatigue
  gluteny log "Raj" "Rice, rajma" --type Lunch --date 2025-03-28 --notes "ate too much"`,
		Args: cobra.ExactArgs(2),
		RunE: runLog,
	}

	cmd.Flags().StringVar(&logMealType, "type", "", "Meal type: Breakfast, Lunch, Dinner, or Snack (required)")
	cmd.Flags().StringVar(&logDate, "date", "", "Calendar date YYYY-MM-DD (default: today)")
	cmd.Flags().StringSliceVar(&logSymptoms, "symptoms", nil, "Symptom labels (comma-separated)")
	cmd.Flags().StringVar(&logNotes, "notes", "", "Additional notes")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runLog(cmd *cobra.Command, args []string) error {
	session, _, err := newSession()
	if err != nil {
		return err
	}

	user := strings.TrimSpace(args[0])
	meal := strings.TrimSpace(args[1])
	if meal == "" {
		return fmt.Errorf("meal description must not be empty")
	}
	if err := requireUser(session, user); err != nil {
		return err
	}

	mealType, err := models.ParseMealType(logMealType)
	if err != nil {
		return err
	}

	now := time.Now()
	date := logDate
	if date == "" {
		date = now.Format(models.DateLayout)
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", date, err)
	}

	rec := models.MealRecord{
		Timestamp: now,
		Date:      date,
		Name:      user,
		Meal:      meal,
		MealType:  mealType,
		Symptoms:  models.JoinSymptoms(logSymptoms),
		Notes:     strings.TrimSpace(logNotes),
	}
	if err := session.LogMeal(rec); err != nil {
		return fmt.Errorf("logging meal: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Meal and symptoms logged successfully for %s on %s\n", user, date)
	}
	return nil
}
