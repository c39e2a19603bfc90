// ABOUTME: CLI command answering date queries from the meal log
// ABOUTME: Deterministic path that bypasses the LLM entirely
package commands

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var mealsOn string

// NewMealsCmd creates the meals command.
func NewMealsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meals [user]",
		Short: "Show logged meals, optionally for one date",
		Long: `Show a user's logged meals.

With --on, answers deterministically for a single date; the date may be
ISO (2025-03-28) or day plus month name (28 March, current year).

Examples:
  gluteny meals "Ankita"
  gluteny meals "Ankita" --on 2025-03-28
  gluteny meals "Ankita" --on "28 March"`,
		Args: cobra.ExactArgs(1),
		RunE: runMeals,
	}

	cmd.Flags().StringVar(&mealsOn, "on", "", "Date to look up (ISO or '28 March')")

	return cmd
}

func runMeals(cmd *cobra.Command, args []string) error {
	session, _, err := newSession()
	if err != nil {
		return err
	}
	user := args[0]
	if err := requireUser(session, user); err != nil {
		return err
	}

	if mealsOn != "" {
		answer, ok := session.ResolveDateQuery(user, mealsOn)
		if !ok {
			return fmt.Errorf("could not find a date in %q", mealsOn)
		}
		fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	}

	meals, err := session.Store().QueryMeals(user, nil)
	if err != nil {
		return fmt.Errorf("reading meal log: %w", err)
	}
	if len(meals) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No meals and symptoms logged yet.")
		return nil
	}

	sort.SliceStable(meals, func(i, j int) bool {
		return meals[i].Date > meals[j].Date
	})

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tMEAL\tSYMPTOMS\tNOTES")
	for _, meal := range meals {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			meal.Date, meal.MealType, truncate(meal.Meal, 40),
			truncate(meal.Symptoms, 30), truncate(strings.ReplaceAll(meal.Notes, "\n", " "), 30))
	}
	return w.Flush()
}
