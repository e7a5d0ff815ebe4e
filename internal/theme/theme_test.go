package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

func TestInfer_EmptyResume(t *testing.T) {
	res := Infer("")
	assert.Equal(t, vocab.Theme(""), res.Dominant)
	assert.Empty(t, res.Dominants)
	assert.Empty(t, res.Frequencies)
}

func TestInfer_SingleHitIsNotEligible(t *testing.T) {
	res := Infer("I once wrote some software.")
	assert.Equal(t, 1, res.Hits[vocab.ThemeEngineering])
	assert.Equal(t, vocab.Theme(""), res.Dominant)
}

func TestInfer_ProductOverridesRole(t *testing.T) {
	resume := strings.Repeat("Shipped the product. ", 12) + "Worked with engineering."
	res := Infer(resume)

	require.Equal(t, vocab.ThemeProduct, res.Dominant)
	assert.Equal(t, []vocab.Theme{vocab.ThemeProduct}, res.Dominants)
	assert.Equal(t, 12, res.Hits[vocab.ThemeProduct])
	assert.Equal(t, 1, res.Hits[vocab.ThemeEngineering])
	assert.InDelta(t, 12.0/13.0, res.Frequencies[vocab.ThemeProduct], 1e-9)
	assert.Equal(t, vocab.Theme(""), res.Secondary, "engineering has too few hits to be secondary")
}

func TestInfer_CloseRunnerUpSharesDominance(t *testing.T) {
	resume := strings.Repeat("product roadmap ", 5) + strings.Repeat("dashboard sql ", 5) + "led led"
	res := Infer(resume)

	assert.Equal(t, vocab.ThemeProduct, res.Dominant, "ties resolve by theme order")
	assert.Equal(t, []vocab.Theme{vocab.ThemeProduct, vocab.ThemeAnalytics}, res.Dominants)
	assert.Equal(t, vocab.ThemeLeadership, res.Secondary)
}

func TestInfer_DistantRunnerUpIsSecondary(t *testing.T) {
	resume := strings.Repeat("patient care ", 5) + "sales quota"
	res := Infer(resume)

	assert.Equal(t, vocab.ThemeHealthcare, res.Dominant)
	assert.Equal(t, []vocab.Theme{vocab.ThemeHealthcare}, res.Dominants)
	assert.Equal(t, vocab.ThemeSales, res.Secondary)
}

func TestInfer_MultiWordAndPlurals(t *testing.T) {
	res := Infer("Drove go-to-market for the launch. Built ML models; deep learning models.")
	assert.Equal(t, 2, res.Hits[vocab.ThemeProduct], "go-to-market and launch")
	assert.Equal(t, 4, res.Hits[vocab.ThemeDataScience], "ml, models, deep learning, models")
}

func TestInfer_Deterministic(t *testing.T) {
	resume := "Led strategy, managed the roadmap, owned product analytics and sql reporting."
	assert.Equal(t, Infer(resume), Infer(resume))
}

func TestAlignment(t *testing.T) {
	res := Result{
		Dominant:  vocab.ThemeProduct,
		Dominants: []vocab.Theme{vocab.ThemeProduct},
		Secondary: vocab.ThemeLeadership,
	}

	score, matched := res.Alignment([]vocab.Theme{vocab.ThemeLeadership, vocab.ThemeProduct})
	assert.Equal(t, 1.0, score)
	assert.Equal(t, vocab.ThemeProduct, matched)

	score, matched = res.Alignment([]vocab.Theme{vocab.ThemeLeadership})
	assert.Equal(t, SecondaryCredit, score)
	assert.Equal(t, vocab.ThemeLeadership, matched)

	score, _ = res.Alignment([]vocab.Theme{vocab.ThemeTrades})
	assert.Equal(t, 0.0, score)

	score, _ = Result{}.Alignment([]vocab.Theme{vocab.ThemeProduct})
	assert.Equal(t, 0.0, score, "no dominant theme gives no alignment")
}

func TestCareerThemes(t *testing.T) {
	t.Run("explicit themes win", func(t *testing.T) {
		c := types.Career{Title: "Electrician", Category: vocab.CategoryTrades, Themes: []vocab.Theme{vocab.ThemeOperations}}
		assert.Equal(t, []vocab.Theme{vocab.ThemeOperations}, CareerThemes(c))
	})

	t.Run("title and category hints", func(t *testing.T) {
		c := types.Career{Title: "Senior Product Manager", Category: vocab.CategoryTechnology}
		assert.Equal(t, []vocab.Theme{vocab.ThemeProduct, vocab.ThemeLeadership}, CareerThemes(c))
	})

	t.Run("category defaults", func(t *testing.T) {
		c := types.Career{Title: "Machinist", Category: vocab.CategoryManufacturing}
		assert.Equal(t, []vocab.Theme{vocab.ThemeTrades, vocab.ThemeOperations}, CareerThemes(c))
	})

	t.Run("no duplicates", func(t *testing.T) {
		c := types.Career{Title: "Electrician Technician", Category: vocab.CategoryTrades}
		assert.Equal(t, []vocab.Theme{vocab.ThemeTrades}, CareerThemes(c))
	})
}
