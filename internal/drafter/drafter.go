// Package drafter pre-fills a plan from the check-in being written. It is
// rule based and never creates an entry.
package drafter

import (
	"strings"

	"github.com/julianstephens/praxis/internal/constants"
	"github.com/julianstephens/praxis/internal/models"
	"github.com/julianstephens/praxis/internal/validation"
)

// Theme picks the plan theme for a mood value. Blank input is a low mood.
// Text that is not a number is NaN, fails both cut-offs and lands on
// Expansion.
func Theme(mood string) string {
	if strings.TrimSpace(mood) == "" {
		return constants.ThemeStability
	}
	m := validation.Number(mood)
	switch {
	case m <= 4:
		return constants.ThemeStability
	case m <= 7:
		return constants.ThemeMomentum
	default:
		return constants.ThemeExpansion
	}
}

// QuickPlan derives default plan fields from an unsaved check-in.
func QuickPlan(checkIn models.CheckInForm) models.PlanForm {
	first := ""
	if strings.TrimSpace(checkIn.Notes) != "" {
		first = constants.DraftPriorityStabilize
	}

	return models.PlanForm{
		Theme: Theme(checkIn.Mood),
		Priorities: [3]string{
			first,
			constants.DraftPriorityBuild,
			constants.DraftPriorityMaintain,
		},
		Step:    constants.DraftStep,
		Timebox: constants.DraftTimebox,
	}
}
