package guardrails

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/theme"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

func career(id string, level vocab.ExperienceLevel, category vocab.Category, salaryMin, salaryMax int) types.Career {
	return types.Career{
		CareerID:        id,
		Title:           id,
		ExperienceLevel: level,
		Category:        category,
		SalaryMin:       salaryMin,
		SalaryMax:       salaryMax,
	}
}

func ids(careers []types.Career) []string {
	out := make([]string, 0, len(careers))
	for _, c := range careers {
		out = append(out, c.CareerID)
	}
	return out
}

func productTheme() theme.Result {
	return theme.Result{Dominant: vocab.ThemeProduct, Dominants: []vocab.Theme{vocab.ThemeProduct}}
}

func TestApply_SeniorityFloor(t *testing.T) {
	p := types.UserProfile{ExperienceYears: 20, SalaryMin: 150000, SalaryMax: 250000, Industries: []string{"Technology"}}
	careers := []types.Career{
		career("medical-assistant", vocab.LevelEntry, vocab.CategoryHealthcare, 100000, 160000),
		career("junior-developer", vocab.LevelJunior, vocab.CategoryTechnology, 100000, 160000),
		career("vp-product", vocab.LevelExecutive, vocab.CategoryTechnology, 200000, 350000),
	}

	out := Apply(NewSubject(p, theme.Result{}), careers, DefaultFlags())

	assert.Equal(t, []string{"junior-developer", "vp-product"}, ids(out.Eligible), "declared industry keeps junior roles")
	require.Len(t, out.Rejections, 1)
	assert.Equal(t, Rejection{CareerID: "medical-assistant", Rule: RuleSeniorityFloor}, out.Rejections[0])
	assert.Equal(t, 1, out.Counts[RuleSeniorityFloor])
}

func TestApply_SeniorityFloorDisabled(t *testing.T) {
	p := types.UserProfile{ExperienceYears: 20, SalaryMin: 50000, SalaryMax: 200000}
	careers := []types.Career{career("medical-assistant", vocab.LevelEntry, vocab.CategoryHealthcare, 35000, 50000)}

	flags := DefaultFlags()
	flags.SeniorityCategoryGuardrail = false
	out := Apply(NewSubject(p, theme.Result{}), careers, flags)

	assert.Len(t, out.Eligible, 1)
}

func TestApply_SeniorityCeiling(t *testing.T) {
	p := types.UserProfile{ExperienceYears: 1, SalaryMin: 50000, SalaryMax: 70000}
	careers := []types.Career{
		career("cto", vocab.LevelExecutive, vocab.CategoryTechnology, 90000, 100000),
		career("senior-nurse", vocab.LevelSenior, vocab.CategoryHealthcare, 60000, 90000),
		career("barista", vocab.LevelEntry, vocab.CategoryHospitality, 30000, 40000),
		career("analyst", vocab.LevelMid, vocab.CategoryBusiness, 60000, 80000),
	}

	out := Apply(NewSubject(p, theme.Result{}), careers, DefaultFlags())
	assert.Equal(t, []string{"barista", "analyst"}, ids(out.Eligible))
	assert.Equal(t, 2, out.Counts[RuleSeniorityCeiling])

	flags := DefaultFlags()
	flags.SeniorityCeiling = false
	out = Apply(NewSubject(p, theme.Result{}), careers, flags)
	assert.Equal(t, []string{"cto", "senior-nurse", "barista", "analyst"}, ids(out.Eligible))
}

func TestApply_SalaryBand(t *testing.T) {
	p := types.UserProfile{ExperienceYears: 5, SalaryMin: 100000, SalaryMax: 120000}
	careers := []types.Career{
		career("too-low", vocab.LevelMid, vocab.CategoryBusiness, 40000, 59999),
		career("floor-edge", vocab.LevelMid, vocab.CategoryBusiness, 40000, 60000),
		career("ceiling-edge", vocab.LevelMid, vocab.CategoryBusiness, 180000, 200000),
		career("too-high", vocab.LevelMid, vocab.CategoryBusiness, 180001, 250000),
	}

	out := Apply(NewSubject(p, theme.Result{}), careers, DefaultFlags())
	assert.Equal(t, []string{"floor-edge", "ceiling-edge"}, ids(out.Eligible))
	assert.Equal(t, 1, out.Counts[RuleSalaryFloor])
	assert.Equal(t, 1, out.Counts[RuleSalaryCeiling])
}

func TestApply_OpenSalaryKeepsEverything(t *testing.T) {
	p := types.UserProfile{ExperienceYears: 5, SalaryMin: 0, SalaryMax: 999999}
	careers := []types.Career{
		career("cheap", vocab.LevelMid, vocab.CategoryBusiness, 20000, 25000),
		career("rich", vocab.LevelMid, vocab.CategoryBusiness, 900000, 1200000),
	}

	out := Apply(NewSubject(p, theme.Result{}), careers, DefaultFlags())
	assert.Len(t, out.Eligible, 2)
}

func TestApply_CategoryGuardrail(t *testing.T) {
	careers := []types.Career{
		career("electrician", vocab.LevelMid, vocab.CategoryTrades, 60000, 90000),
		career("farm-manager", vocab.LevelMid, vocab.CategoryAgriculture, 60000, 90000),
		career("product-manager", vocab.LevelMid, vocab.CategoryTechnology, 60000, 90000),
	}

	t.Run("non-physical theme drops physical categories", func(t *testing.T) {
		p := types.UserProfile{ExperienceYears: 5, SalaryMin: 60000, SalaryMax: 90000}
		out := Apply(NewSubject(p, productTheme()), careers, DefaultFlags())
		assert.Equal(t, []string{"product-manager"}, ids(out.Eligible))
		assert.Equal(t, 2, out.Counts[RuleCategoryGuardrail])
	})

	t.Run("declared industry survives", func(t *testing.T) {
		p := types.UserProfile{ExperienceYears: 5, SalaryMin: 60000, SalaryMax: 90000, Industries: []string{"Agriculture"}}
		out := Apply(NewSubject(p, productTheme()), careers, DefaultFlags())
		assert.Equal(t, []string{"farm-manager", "product-manager"}, ids(out.Eligible))
	})

	t.Run("physical theme keeps trades", func(t *testing.T) {
		p := types.UserProfile{ExperienceYears: 5, SalaryMin: 60000, SalaryMax: 90000}
		th := theme.Result{Dominant: vocab.ThemeTrades, Dominants: []vocab.Theme{vocab.ThemeTrades}}
		out := Apply(NewSubject(p, th), careers, DefaultFlags())
		assert.Len(t, out.Eligible, 3)
	})
}

func TestApply_Licensure(t *testing.T) {
	rn := career("registered-nurse", vocab.LevelMid, vocab.CategoryHealthcare, 70000, 100000)
	rn.LicenseRequired = true
	rn.RequiredCertifications = []string{"RN License"}

	t.Run("unlicensed outsider dropped", func(t *testing.T) {
		p := types.UserProfile{ExperienceYears: 5, SalaryMin: 70000, SalaryMax: 100000}
		out := Apply(NewSubject(p, theme.Result{}), []types.Career{rn}, DefaultFlags())
		assert.Empty(t, out.Eligible)
		assert.Equal(t, 1, out.Counts[RuleLicensure])
	})

	t.Run("holder of certification kept", func(t *testing.T) {
		p := types.UserProfile{ExperienceYears: 5, SalaryMin: 70000, SalaryMax: 100000, Certifications: []string{"rn license"}}
		out := Apply(NewSubject(p, theme.Result{}), []types.Career{rn}, DefaultFlags())
		assert.Len(t, out.Eligible, 1)
	})

	t.Run("declared industry kept", func(t *testing.T) {
		p := types.UserProfile{ExperienceYears: 5, SalaryMin: 70000, SalaryMax: 100000, Industries: []string{"healthcare"}}
		out := Apply(NewSubject(p, theme.Result{}), []types.Career{rn}, DefaultFlags())
		assert.Len(t, out.Eligible, 1)
	})
}

func TestApply_FirstMatchingRuleIsAttributed(t *testing.T) {
	p := types.UserProfile{ExperienceYears: 15, SalaryMin: 200000, SalaryMax: 300000}
	careers := []types.Career{career("cashier", vocab.LevelEntry, vocab.CategoryHospitality, 20000, 30000)}

	out := Apply(NewSubject(p, theme.Result{}), careers, DefaultFlags())
	require.Len(t, out.Rejections, 1)
	assert.Equal(t, RuleSeniorityFloor, out.Rejections[0].Rule)
	assert.Zero(t, out.Counts[RuleSalaryFloor])
}

func TestRules_Order(t *testing.T) {
	names := make([]string, 0, len(Rules))
	for _, r := range Rules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		RuleSeniorityFloor,
		RuleSeniorityCeiling,
		RuleSalaryFloor,
		RuleSalaryCeiling,
		RuleCategoryGuardrail,
		RuleLicensure,
	}, names)
}
