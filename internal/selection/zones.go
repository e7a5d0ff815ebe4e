package selection

import (
	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

// Position is where the user currently stands: a seniority band and the categories of
// their current role and declared industries.
type Position struct {
	Level      vocab.ExperienceLevel
	Categories map[vocab.Category]bool
}

// PositionFor derives a Position from a profile. A seniority word in the current role wins
// over years of experience.
func PositionFor(p types.UserProfile) Position {
	level, ok := vocab.LevelForRole(p.CurrentRole)
	if !ok {
		level = vocab.LevelForYears(p.ExperienceYears)
	}
	categories := vocab.CategorySet(p.Industries)
	for _, c := range vocab.CategoriesForRole(p.CurrentRole) {
		categories[c] = true
	}
	return Position{Level: level, Categories: categories}
}

// Assign labels a career safe when both its category and band are close to the position,
// stretch when exactly one is, and adventure otherwise.
func (pos Position) Assign(c types.Career) types.Zone {
	categoryMatch := pos.Categories[c.Category]
	levelMatch := withinOneBand(pos.Level, c.ExperienceLevel)
	switch {
	case categoryMatch && levelMatch:
		return types.ZoneSafe
	case categoryMatch || levelMatch:
		return types.ZoneStretch
	default:
		return types.ZoneAdventure
	}
}

func withinOneBand(a, b vocab.ExperienceLevel) bool {
	ra, rb := a.Rank(), b.Rank()
	if ra < 0 || rb < 0 {
		return false
	}
	d := ra - rb
	return d >= -1 && d <= 1
}
