package ranking

import (
	"fmt"
	"sort"

	"github.com/jonathan/career-compass/internal/vocab"
)

// maxReasons is the number of match reasons attached to a recommendation.
const maxReasons = 3

type contribution struct {
	value  float64
	reason string
}

// generateReasons explains a score by its largest weighted components. Components that
// contributed nothing are omitted; ties keep component order.
func generateReasons(c Components, matchedTheme vocab.Theme) []string {
	candidates := []contribution{
		{skillWeight * c.Skill, skillReason(c.Skill)},
		{interestWeight * c.Interest, "Matches your interests"},
		{preferenceWeight * c.Preference, "Aligns with your work preferences"},
		{salaryWeight * c.Salary, salaryReason(c.Salary)},
		{experienceWeight * c.Experience, experienceReason(c.Experience)},
		{themeWeight * c.Theme, fmt.Sprintf("Theme alignment: %s", matchedTheme)},
	}

	positive := candidates[:0]
	for _, cand := range candidates {
		if cand.value > 0 {
			positive = append(positive, cand)
		}
	}
	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].value > positive[j].value
	})

	reasons := make([]string, 0, maxReasons)
	for i := 0; i < len(positive) && i < maxReasons; i++ {
		reasons = append(reasons, positive[i].reason)
	}
	return reasons
}

func skillReason(score float64) string {
	switch {
	case score >= 0.7:
		return "Strong skill match"
	case score >= 0.4:
		return "Moderate skill match"
	default:
		return "Partial skill match"
	}
}

func salaryReason(score float64) string {
	if score >= 1 {
		return "Salary fit"
	}
	return "Near your salary range"
}

func experienceReason(score float64) string {
	if score >= 1 {
		return "Fits your experience level"
	}
	return "Close to your experience level"
}
