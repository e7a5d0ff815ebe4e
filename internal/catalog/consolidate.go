package catalog

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

// FileReport describes one consolidated source file.
type FileReport struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
}

// ConsolidationReport summarizes a consolidation run.
type ConsolidationReport struct {
	Files            []FileReport        `json:"files"`
	Records          int                 `json:"records"`           // Records read across all files
	Careers          int                 `json:"careers"`           // Careers after merging
	DuplicatesMerged int                 `json:"duplicates_merged"` // Records folded into an earlier one
	Skipped          int                 `json:"skipped"`           // Records with neither ID nor title
	DefaultsApplied  int                 `json:"defaults_applied"`  // Careers that needed at least one default
	Notes            map[string][]string `json:"notes,omitempty"`   // Career ID -> normalization notes
}

// Consolidate reads every file concurrently, merges records by career ID in path order and
// normalizes the result. Careers are returned sorted by ID.
func Consolidate(ctx context.Context, paths []string) ([]types.Career, *ConsolidationReport, error) {
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no catalog files given")
	}

	perFile := make([][]record, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			records, err := readFile(path)
			if err != nil {
				return err
			}
			perFile[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	report := &ConsolidationReport{Notes: make(map[string][]string)}
	merged := make(map[string]*record)
	var order []string
	for i, records := range perFile {
		report.Files = append(report.Files, FileReport{Path: paths[i], Records: len(records)})
		report.Records += len(records)
		for _, r := range records {
			r := r
			id := recordID(r)
			if id == "" {
				report.Skipped++
				continue
			}
			if existing, ok := merged[id]; ok {
				mergeRecord(existing, r)
				report.DuplicatesMerged++
				continue
			}
			r.CareerID = id
			merged[id] = &r
			order = append(order, id)
		}
	}

	careers := make([]types.Career, 0, len(order))
	for _, id := range order {
		c, notes := normalizeRecord(*merged[id])
		if len(notes) > 0 {
			report.DefaultsApplied++
			report.Notes[c.CareerID] = notes
		}
		careers = append(careers, c)
	}
	sort.Slice(careers, func(i, j int) bool {
		return careers[i].CareerID < careers[j].CareerID
	})
	report.Careers = len(careers)
	return careers, report, nil
}

// mergeRecord fills empty fields of dst from src and unions list fields.
func mergeRecord(dst *record, src record) {
	firstString(&dst.Title, src.Title)
	firstString(&dst.Description, src.Description)
	firstString(&dst.ExperienceLevel, src.ExperienceLevel)
	firstString(&dst.Category, src.Category)
	firstString(&dst.DayInLife, src.DayInLife)

	if dst.SalaryMin == nil {
		dst.SalaryMin = src.SalaryMin
	}
	if dst.SalaryMax == nil {
		dst.SalaryMax = src.SalaryMax
	}
	if dst.MinYearsExperience == nil {
		dst.MinYearsExperience = src.MinYearsExperience
	}
	if dst.MaxYearsExperience == nil {
		dst.MaxYearsExperience = src.MaxYearsExperience
	}

	dst.RequiredTechnicalSkills = union(dst.RequiredTechnicalSkills, src.RequiredTechnicalSkills)
	dst.RequiredSoftSkills = union(dst.RequiredSoftSkills, src.RequiredSoftSkills)
	dst.RequiredCertifications = union(dst.RequiredCertifications, src.RequiredCertifications)
	dst.Companies = union(dst.Companies, src.Companies)
	dst.Themes = union(dst.Themes, src.Themes)
	dst.LicenseRequired = dst.LicenseRequired || src.LicenseRequired

	if len(src.PreferenceWeights) > 0 && dst.PreferenceWeights == nil {
		dst.PreferenceWeights = make(map[string]float64, len(src.PreferenceWeights))
	}
	for k, v := range src.PreferenceWeights {
		if _, ok := dst.PreferenceWeights[k]; !ok {
			dst.PreferenceWeights[k] = v
		}
	}
}

func firstString(dst *string, src string) {
	if *dst == "" {
		*dst = src
	}
}

func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, v := range list {
			key := vocab.Fold(v)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}
