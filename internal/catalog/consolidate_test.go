package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

func testdataPaths(names ...string) []string {
	paths := make([]string, 0, len(names))
	for _, n := range names {
		paths = append(paths, filepath.Join("testdata", n))
	}
	return paths
}

func findCareer(t *testing.T, careers []types.Career, id string) types.Career {
	t.Helper()
	for _, c := range careers {
		if c.CareerID == id {
			return c
		}
	}
	t.Fatalf("career %s not found", id)
	return types.Career{}
}

func TestConsolidate_MergesAndNormalizes(t *testing.T) {
	careers, report, err := Consolidate(context.Background(), testdataPaths("careers_a.json", "careers_b.json"))
	require.NoError(t, err)

	ids := make([]string, 0, len(careers))
	for _, c := range careers {
		ids = append(ids, c.CareerID)
	}
	assert.Equal(t, []string{"data-analyst", "registered-nurse", "senior-product-manager"}, ids)

	assert.Equal(t, 4, report.Records)
	assert.Equal(t, 3, report.Careers)
	assert.Equal(t, 1, report.DuplicatesMerged)
	assert.Equal(t, 3, report.DefaultsApplied)
	assert.Equal(t, []FileReport{
		{Path: filepath.Join("testdata", "careers_a.json"), Records: 2},
		{Path: filepath.Join("testdata", "careers_b.json"), Records: 2},
	}, report.Files)

	analyst := findCareer(t, careers, "data-analyst")
	assert.Equal(t, "Data Analyst", analyst.Title, "first non-empty title wins")
	assert.Equal(t, []string{"SQL", "Excel", "Tableau"}, analyst.RequiredTechnicalSkills)
	assert.Equal(t, []string{"Acme Analytics"}, analyst.Companies)
	assert.Equal(t, vocab.LevelJunior, analyst.ExperienceLevel)
	assert.Equal(t, vocab.CategoryBusiness, analyst.Category)
	assert.Equal(t, 0.9, analyst.PreferenceWeights[vocab.PrefWorkingWithData])
	assert.Equal(t, 1.0, analyst.PreferenceWeights[vocab.PrefProblemSolving], "weights are clamped")
	assert.Equal(t, 0.5, analyst.PreferenceWeights[vocab.PrefOutdoorWork])
	assert.Len(t, analyst.PreferenceWeights, len(vocab.PreferenceKeys))

	spm := findCareer(t, careers, "senior-product-manager")
	assert.Equal(t, vocab.LevelSenior, spm.ExperienceLevel)
	assert.Equal(t, 160000, spm.SalaryMin)
	assert.Equal(t, 230000, spm.SalaryMax)
	assert.Equal(t, 7, spm.MinYearsExperience)
	assert.Equal(t, 15, spm.MaxYearsExperience)
	assert.Equal(t, []vocab.Theme{vocab.ThemeProduct, vocab.ThemeLeadership}, spm.Themes)
	assert.Contains(t, report.Notes["senior-product-manager"], "salary bounds were reversed")

	nurse := findCareer(t, careers, "registered-nurse")
	assert.Equal(t, vocab.CategoryHealthcare, nurse.Category)
	assert.Equal(t, vocab.LevelMid, nurse.ExperienceLevel)
	assert.Equal(t, 75000, nurse.SalaryMin)
	assert.Equal(t, 110000, nurse.SalaryMax)
	assert.True(t, nurse.LicenseRequired)
	assert.Equal(t, []string{"RN License"}, nurse.RequiredCertifications)
}

func TestConsolidate_PathOrderDecidesMerge(t *testing.T) {
	careers, _, err := Consolidate(context.Background(), testdataPaths("careers_b.json", "careers_a.json"))
	require.NoError(t, err)

	analyst := findCareer(t, careers, "data-analyst")
	assert.Equal(t, "Data Analyst (Business)", analyst.Title)
	assert.Equal(t, 0.2, analyst.PreferenceWeights[vocab.PrefWorkingWithData])
}

func TestConsolidate_Errors(t *testing.T) {
	t.Run("no files", func(t *testing.T) {
		_, _, err := Consolidate(context.Background(), nil)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Consolidate(context.Background(), testdataPaths("careers_a.json", "missing.json"))
		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Contains(t, loadErr.Path, "missing.json")
	})

	t.Run("schema violation", func(t *testing.T) {
		_, _, err := Consolidate(context.Background(), testdataPaths("invalid.json"))
		var validationErr *schemas.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := Consolidate(ctx, testdataPaths("careers_a.json"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDecodeRecords(t *testing.T) {
	records, err := decodeRecords([]byte(` [{"title": "Chef"}] `))
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = decodeRecords([]byte(`{"careers": []}`))
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = decodeRecords([]byte(`{"jobs": []}`))
	assert.Error(t, err)

	_, err = decodeRecords([]byte(``))
	assert.Error(t, err)
}
