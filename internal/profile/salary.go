package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Salary sentinels.
const (
	DefaultSalaryMin = 50_000
	DefaultSalaryMax = 200_000
	OpenSalaryMin    = 0
	OpenSalaryMax    = 999_999
	// singleValueSpread is applied either side of a single salary figure such as "100k".
	singleValueSpread = 10_000
	// maxSalaryAmount bounds any parsed figure; larger values are treated as unparseable.
	maxSalaryAmount = 100_000_000
)

var (
	openSalaryWords = []string{"flexible", "open", "negotiable", "any", "no preference"}
	salaryNoise     = strings.NewReplacer(
		"$", "", ",", "", "usd", "", "/yr", "", "/year", "", "peryear", "", "ayear", "", "annually", "",
	)
	salaryRangeSep = regexp.MustCompile(`-|–|—|to`)
	salaryAmount   = regexp.MustCompile(`^(\d+(?:\.\d+)?)(k|m)?$`)
)

// SalaryParse is the outcome of ParseSalary.
type SalaryParse struct {
	Min     int
	Max     int
	OK      bool   // false when the input could not be parsed and defaults were used
	Swapped bool   // true when min and max were given in reverse order
	Note    string // reason for a fallback
}

// ParseSalary parses salary expectations in the forms accepted by the assessment form:
// "70000-100000", "80k-120k", "150,000-250,000", "$X - $Y", "100k", "$150,000+", and the
// keywords "flexible"/"open". Empty input yields the default band with OK=true.
func ParseSalary(raw string) SalaryParse {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return SalaryParse{Min: DefaultSalaryMin, Max: DefaultSalaryMax, OK: true}
	}

	for _, word := range openSalaryWords {
		if strings.Contains(text, word) {
			return SalaryParse{Min: OpenSalaryMin, Max: OpenSalaryMax, OK: true}
		}
	}

	compact := salaryNoise.Replace(strings.ReplaceAll(text, " ", ""))

	if strings.HasSuffix(compact, "+") {
		lo, ok := parseAmount(strings.TrimSuffix(compact, "+"), "")
		if !ok {
			return fallbackSalary(raw)
		}
		return SalaryParse{Min: lo, Max: max(lo, OpenSalaryMax), OK: true}
	}

	parts := salaryRangeSep.Split(compact, -1)
	switch len(parts) {
	case 1:
		v, ok := parseAmount(parts[0], "")
		if !ok {
			return fallbackSalary(raw)
		}
		return SalaryParse{Min: max(0, v-singleValueSpread), Max: v + singleValueSpread, OK: true}
	case 2:
		// "80-120k": a suffix on the upper bound applies to a bare lower bound.
		suffix := ""
		if m := salaryAmount.FindStringSubmatch(parts[1]); m != nil {
			suffix = m[2]
		}
		lo, okLo := parseAmount(parts[0], suffix)
		hi, okHi := parseAmount(parts[1], "")
		if !okLo || !okHi {
			return fallbackSalary(raw)
		}
		if lo > hi {
			return SalaryParse{Min: hi, Max: lo, OK: true, Swapped: true}
		}
		return SalaryParse{Min: lo, Max: hi, OK: true}
	default:
		return fallbackSalary(raw)
	}
}

func fallbackSalary(raw string) SalaryParse {
	return SalaryParse{
		Min:  DefaultSalaryMin,
		Max:  DefaultSalaryMax,
		Note: fmt.Sprintf("unrecognized salary expectation %q, using %d-%d", raw, DefaultSalaryMin, DefaultSalaryMax),
	}
}

// parseAmount parses "120", "120k", "1.2m". impliedSuffix is applied when the value has none
// and is small enough to be shorthand. Amounts above maxSalaryAmount are rejected.
func parseAmount(s, impliedSuffix string) (int, bool) {
	m := salaryAmount.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	suffix := m[2]
	if suffix == "" && impliedSuffix != "" && value < 1000 {
		suffix = impliedSuffix
	}
	switch suffix {
	case "k":
		value *= 1_000
	case "m":
		value *= 1_000_000
	}
	if value > maxSalaryAmount {
		return 0, false
	}
	return int(value + 0.5), true
}
