package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

func TestPositionFor(t *testing.T) {
	t.Run("role seniority wins over years", func(t *testing.T) {
		pos := PositionFor(types.UserProfile{ExperienceYears: 2, CurrentRole: "VP Engineering"})
		assert.Equal(t, vocab.LevelExecutive, pos.Level)
		assert.True(t, pos.Categories[vocab.CategoryTechnology])
	})

	t.Run("years when role has no seniority word", func(t *testing.T) {
		pos := PositionFor(types.UserProfile{ExperienceYears: 5, CurrentRole: "Nurse", Industries: []string{"Education"}})
		assert.Equal(t, vocab.LevelMid, pos.Level)
		assert.True(t, pos.Categories[vocab.CategoryHealthcare])
		assert.True(t, pos.Categories[vocab.CategoryEducation])
		assert.False(t, pos.Categories[vocab.CategoryTechnology])
	})
}

func TestPosition_Assign(t *testing.T) {
	pos := Position{Level: vocab.LevelSenior, Categories: map[vocab.Category]bool{vocab.CategoryTechnology: true}}

	tests := []struct {
		name     string
		level    vocab.ExperienceLevel
		category vocab.Category
		want     types.Zone
	}{
		{name: "same band same category", level: vocab.LevelSenior, category: vocab.CategoryTechnology, want: types.ZoneSafe},
		{name: "adjacent band same category", level: vocab.LevelExecutive, category: vocab.CategoryTechnology, want: types.ZoneSafe},
		{name: "far band same category", level: vocab.LevelJunior, category: vocab.CategoryTechnology, want: types.ZoneStretch},
		{name: "adjacent band other category", level: vocab.LevelMid, category: vocab.CategoryBusiness, want: types.ZoneStretch},
		{name: "far band other category", level: vocab.LevelEntry, category: vocab.CategoryCreative, want: types.ZoneAdventure},
		{name: "unknown level", level: "", category: vocab.CategoryCreative, want: types.ZoneAdventure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := types.Career{ExperienceLevel: tt.level, Category: tt.category}
			assert.Equal(t, tt.want, pos.Assign(c))
		})
	}
}
