package profile

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	experienceNoise = strings.NewReplacer("years", "", "year", "", "yrs", "", "yr", "", "of experience", "", " ", "")
	experienceRange = regexp.MustCompile(`^(\d+)(?:-|–|to)(\d+)$`)
	experiencePlus  = regexp.MustCompile(`^(\d+)\+$`)
	experienceWhole = regexp.MustCompile(`^(\d+)$`)
	lessThanOne     = regexp.MustCompile(`^(?:<|lessthan|under)1$`)
)

// ParseExperience returns the representative years of experience for inputs like "5-10"
// (midpoint), "20+" (lower bound) and "3". ok is false when the input is non-empty and
// unrecognized; empty input yields 0 with ok=true.
func ParseExperience(raw string) (years int, ok bool) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return 0, true
	}
	compact := experienceNoise.Replace(text)

	if lessThanOne.MatchString(compact) {
		return 0, true
	}
	if m := experienceRange.FindStringSubmatch(compact); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo > hi {
			lo, hi = hi, lo
		}
		return (lo + hi) / 2, true
	}
	if m := experiencePlus.FindStringSubmatch(compact); m != nil {
		lo, _ := strconv.Atoi(m[1])
		return lo, true
	}
	if m := experienceWhole.FindStringSubmatch(compact); m != nil {
		v, _ := strconv.Atoi(m[1])
		return v, true
	}
	return 0, false
}
