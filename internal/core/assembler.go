// ABOUTME: Memory assembler building the bounded context window per user
// ABOUTME: Up to 5 most recent meals plus the last 10 report lines, plain text
package core

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Fixed caps bounding the prompt size. Not configurable.
const (
	recentMealLimit = 5
	reportTailLines = 10
)

// MemoryContext assembles the textual memory window for a user: the
// most recent meals (by date, then timestamp) and the report tail. A
// user with no meals gets no meals section; an absent report file gets
// no report section. Output is prompt text, not a machine format.
func (s *Session) MemoryContext(user string) string {
	var memory strings.Builder

	meals, err := s.store.QueryMeals(user, nil)
	if err != nil {
		// Degraded path: an unparsable meal log contributes nothing.
		fmt.Fprintf(os.Stderr, "Warning: skipping meal history in memory context: %v\n", err)
	} else if len(meals) > 0 {
		sort.SliceStable(meals, func(i, j int) bool {
			if meals[i].Date != meals[j].Date {
				return meals[i].Date > meals[j].Date
			}
			return meals[i].Timestamp.After(meals[j].Timestamp)
		})
		if len(meals) > recentMealLimit {
			meals = meals[:recentMealLimit]
		}

		memory.WriteString(fmt.Sprintf("Recent meals for %s:\n", user))
		for _, meal := range meals {
			memory.WriteString(fmt.Sprintf("- %s: %s – %s\n", meal.Date, meal.MealType, meal.Meal))
		}
	}

	if s.store.HasReport() {
		lines, err := s.store.ReportTail(reportTailLines)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping report summary in memory context: %v\n", err)
		} else if len(lines) > 0 {
			memory.WriteString(fmt.Sprintf("\nReport Summary (latest %d lines):\n", reportTailLines))
			memory.WriteString(strings.Join(lines, "\n"))
		}
	}

	return strings.TrimSpace(memory.String())
}
