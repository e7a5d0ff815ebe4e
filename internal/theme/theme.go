// Package theme infers coarse topical themes from resume text and matches them against careers.
package theme

import (
	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

const (
	// MinHits is the number of keyword hits a theme needs before it can be dominant.
	MinHits = 2
	// TieRatio is how close the runner-up's frequency must be to the top theme to share dominance.
	TieRatio = 0.9
	// SecondaryCredit is the alignment credited for a career matching only the secondary theme.
	SecondaryCredit = 0.5
)

// Result is the outcome of theme inference over a resume.
type Result struct {
	Dominant    vocab.Theme             // Highest-frequency eligible theme, empty if none
	Dominants   []vocab.Theme           // Dominant plus a runner-up within TieRatio
	Secondary   vocab.Theme             // Next eligible theme outside Dominants
	Hits        map[vocab.Theme]int     // Raw keyword hits per theme
	Frequencies map[vocab.Theme]float64 // Hits normalized by total hits
}

type keyword struct {
	theme  vocab.Theme
	tokens []string
}

// keywords holds the tokenized keyword lists, longest first so multi-word phrases win.
var keywords = buildKeywords()

func buildKeywords() []keyword {
	var out []keyword
	for _, t := range vocab.Themes {
		for _, kw := range vocab.ThemeKeywords[t] {
			if tokens := vocab.Tokenize(kw); len(tokens) > 0 {
				out = append(out, keyword{theme: t, tokens: tokens})
			}
		}
	}
	// Stable insertion sort by descending length keeps theme order among equals.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && len(out[j].tokens) > len(out[j-1].tokens); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Infer counts theme keywords in resume text. Each token is consumed by at most one keyword.
func Infer(resume string) Result {
	res := Result{
		Hits:        make(map[vocab.Theme]int),
		Frequencies: make(map[vocab.Theme]float64),
	}

	tokens := vocab.Tokenize(resume)
	total := 0
	for i := 0; i < len(tokens); {
		kw, ok := matchAt(tokens, i)
		if !ok {
			i++
			continue
		}
		res.Hits[kw.theme]++
		total++
		i += len(kw.tokens)
	}
	if total == 0 {
		return res
	}
	for t, n := range res.Hits {
		res.Frequencies[t] = float64(n) / float64(total)
	}

	var eligible []vocab.Theme
	for _, t := range vocab.Themes {
		if res.Hits[t] >= MinHits {
			eligible = append(eligible, t)
		}
	}
	// Stable by frequency; vocab.Themes order breaks ties.
	for i := 1; i < len(eligible); i++ {
		for j := i; j > 0 && res.Hits[eligible[j]] > res.Hits[eligible[j-1]]; j-- {
			eligible[j], eligible[j-1] = eligible[j-1], eligible[j]
		}
	}
	if len(eligible) == 0 {
		return res
	}

	res.Dominant = eligible[0]
	res.Dominants = []vocab.Theme{eligible[0]}
	rest := eligible[1:]
	if len(rest) > 0 && res.Frequencies[rest[0]] >= TieRatio*res.Frequencies[res.Dominant] {
		res.Dominants = append(res.Dominants, rest[0])
		rest = rest[1:]
	}
	if len(rest) > 0 {
		res.Secondary = rest[0]
	}
	return res
}

func matchAt(tokens []string, i int) (keyword, bool) {
	for _, kw := range keywords {
		if i+len(kw.tokens) > len(tokens) {
			continue
		}
		matched := true
		for j, want := range kw.tokens {
			got := tokens[i+j]
			if got != want && got != want+"s" {
				matched = false
				break
			}
		}
		if matched {
			return kw, true
		}
	}
	return keyword{}, false
}

// IsDominant reports whether t is in the dominant set.
func (r Result) IsDominant(t vocab.Theme) bool {
	for _, d := range r.Dominants {
		if d == t {
			return true
		}
	}
	return false
}

// Alignment scores how well a career's themes match the inferred ones: 1 for a dominant theme,
// SecondaryCredit for the secondary theme, 0 otherwise. The matched theme is returned.
func (r Result) Alignment(careerThemes []vocab.Theme) (float64, vocab.Theme) {
	if r.Dominant == "" {
		return 0, ""
	}
	for _, d := range r.Dominants {
		for _, t := range careerThemes {
			if t == d {
				return 1, t
			}
		}
	}
	if r.Secondary != "" {
		for _, t := range careerThemes {
			if t == r.Secondary {
				return SecondaryCredit, t
			}
		}
	}
	return 0, ""
}

// CareerThemes returns the themes a career belongs to: its explicit themes when present,
// otherwise themes hinted by its title words and its category.
func CareerThemes(c types.Career) []vocab.Theme {
	if len(c.Themes) > 0 {
		return c.Themes
	}
	var out []vocab.Theme
	seen := make(map[vocab.Theme]bool)
	add := func(t vocab.Theme) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, word := range vocab.Tokenize(c.Title) {
		if t, ok := vocab.TitleThemeHints[word]; ok {
			add(t)
		}
	}
	for _, t := range vocab.ThemeCategories[c.Category] {
		add(t)
	}
	return out
}
