// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs the normalized profile and any normalization warnings.
func (p *Printer) PrintProfile(profile *types.UserProfile, warnings []types.Warning) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Experience:  %d years\n", profile.ExperienceYears)
	if profile.CurrentRole != "" {
		fmt.Fprintf(&sb, "Role:        %s\n", profile.CurrentRole)
	}
	fmt.Fprintf(&sb, "Salary:      %d - %d\n", profile.SalaryMin, profile.SalaryMax)
	fmt.Fprintf(&sb, "Education:   %s\n", profile.EducationLevel)
	fmt.Fprintf(&sb, "Exploration: %d\n", profile.ExplorationLevel)
	writeList(&sb, "Skills", profile.TechnicalSkills)
	writeList(&sb, "Interests", profile.Interests)

	if len(warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range warnings {
			fmt.Fprintf(&sb, "  ⚠ %s: %s\n", w.Field, w.Message)
		}
	}

	p.printBox("NORMALIZED PROFILE", sb.String())
}

// PrintRecommendations outputs the recommendations grouped by zone plus filter diagnostics.
func (p *Printer) PrintRecommendations(set *types.RecommendationSet) {
	if set == nil {
		return
	}

	var sb strings.Builder
	d := set.Diagnostics
	if d.DominantTheme != "" {
		fmt.Fprintf(&sb, "Dominant theme: %s", d.DominantTheme)
		if d.SecondaryTheme != "" {
			fmt.Fprintf(&sb, " (secondary: %s)", d.SecondaryTheme)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Catalog: %d careers, %d eligible\n", d.CatalogSize, d.EligibleCount)
	if d.InsufficientCandidates {
		sb.WriteString("⚠ Not enough candidates to fill every zone\n")
	}

	for _, zone := range types.Zones {
		recs := set.ByZone(zone)
		fmt.Fprintf(&sb, "\n%s (%d)\n", strings.ToUpper(string(zone)), len(recs))
		for _, r := range recs {
			fmt.Fprintf(&sb, "#%d  %s  [%d]\n", r.Rank, r.Title, r.Score)
			if r.OriginalZone != "" {
				fmt.Fprintf(&sb, "    promoted from %s\n", r.OriginalZone)
			}
			if len(r.MatchReasons) > 0 {
				fmt.Fprintf(&sb, "    %s\n", strings.Join(r.MatchReasons, "; "))
			}
		}
	}

	var dropped []string
	for rule, n := range d.FilteredByRule {
		if n > 0 {
			dropped = append(dropped, fmt.Sprintf("%s=%d", rule, n))
		}
	}
	if len(dropped) > 0 {
		sort.Strings(dropped)
		fmt.Fprintf(&sb, "\nFiltered: %s\n", strings.Join(dropped, ", "))
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintConsolidationReport outputs a catalog consolidation summary.
func (p *Printer) PrintConsolidationReport(report *catalog.ConsolidationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	for _, f := range report.Files {
		fmt.Fprintf(&sb, "%s: %d records\n", f.Path, f.Records)
	}
	fmt.Fprintf(&sb, "\nRecords read:      %d\n", report.Records)
	fmt.Fprintf(&sb, "Careers:           %d\n", report.Careers)
	fmt.Fprintf(&sb, "Duplicates merged: %d\n", report.DuplicatesMerged)
	fmt.Fprintf(&sb, "Defaults applied:  %d\n", report.DefaultsApplied)
	if report.Skipped > 0 {
		fmt.Fprintf(&sb, "Skipped:           %d\n", report.Skipped)
	}

	p.printBox("CATALOG CONSOLIDATION", sb.String())
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	shown := items
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	fmt.Fprintf(sb, "%s: %s", label, strings.Join(shown, ", "))
	if len(items) > maxItemsToShow {
		fmt.Fprintf(sb, " ... and %d more", len(items)-maxItemsToShow)
	}
	sb.WriteString("\n")
}
