// Package vocab holds the closed-set vocabularies shared by the recommendation stages:
// experience levels, preference keys, career categories, resume themes and education levels.
// The scorer, the guardrails and catalog ingest all read from here.
//
//nolint:gochecknoglobals // vocabulary tables
package vocab

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ExperienceLevel is the seniority band a career is pitched at.
type ExperienceLevel string

// Experience levels, ordered from least to most senior.
const (
	LevelEntry     ExperienceLevel = "entry"
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

// ExperienceLevels lists every level in seniority order.
var ExperienceLevels = []ExperienceLevel{LevelEntry, LevelJunior, LevelMid, LevelSenior, LevelExecutive}

// Rank returns the 0-based seniority index of the level, or -1 if unknown.
func (l ExperienceLevel) Rank() int {
	for i, level := range ExperienceLevels {
		if level == l {
			return i
		}
	}
	return -1
}

// Valid reports whether l belongs to the closed set.
func (l ExperienceLevel) Valid() bool {
	return l.Rank() >= 0
}

// LevelForYears maps years of experience onto a seniority band.
func LevelForYears(years int) ExperienceLevel {
	switch {
	case years <= 1:
		return LevelEntry
	case years <= 3:
		return LevelJunior
	case years <= 7:
		return LevelMid
	case years <= 14:
		return LevelSenior
	default:
		return LevelExecutive
	}
}

// DefaultYearsForLevel returns the [min, max] years range assumed when catalog data omits it.
func DefaultYearsForLevel(level ExperienceLevel) (int, int) {
	switch level {
	case LevelEntry:
		return 0, 2
	case LevelJunior:
		return 1, 4
	case LevelMid:
		return 3, 8
	case LevelSenior:
		return 7, 15
	case LevelExecutive:
		return 12, 40
	default:
		return 0, 40
	}
}

// levelVariants maps free-form level strings seen in source data onto the closed set.
var levelVariants = map[string]ExperienceLevel{
	"entry":        LevelEntry,
	"entry level":  LevelEntry,
	"entry-level":  LevelEntry,
	"intern":       LevelEntry,
	"internship":   LevelEntry,
	"trainee":      LevelEntry,
	"graduate":     LevelEntry,
	"junior":       LevelJunior,
	"junior level": LevelJunior,
	"junior-level": LevelJunior,
	"associate":    LevelJunior,
	"mid":          LevelMid,
	"mid level":    LevelMid,
	"mid-level":    LevelMid,
	"intermediate": LevelMid,
	"experienced":  LevelMid,
	"senior":       LevelSenior,
	"senior level": LevelSenior,
	"senior-level": LevelSenior,
	"lead":         LevelSenior,
	"principal":    LevelSenior,
	"staff":        LevelSenior,
	"expert":       LevelSenior,
	"executive":    LevelExecutive,
	"exec":         LevelExecutive,
	"director":     LevelExecutive,
	"c-level":      LevelExecutive,
	"leadership":   LevelExecutive,
}

// ParseExperienceLevel normalizes a level variant such as "Senior-Level" or "Mid Level".
func ParseExperienceLevel(s string) (ExperienceLevel, bool) {
	key := strings.Join(strings.Fields(Fold(s)), " ")
	if level, ok := levelVariants[key]; ok {
		return level, true
	}
	return "", false
}

// PreferenceKey identifies one of the work-style sliders on the assessment.
type PreferenceKey string

// Preference keys.
const (
	PrefWorkingWithData     PreferenceKey = "working_with_data"
	PrefWorkingWithPeople   PreferenceKey = "working_with_people"
	PrefCreativeTasks       PreferenceKey = "creative_tasks"
	PrefProblemSolving      PreferenceKey = "problem_solving"
	PrefLeadership          PreferenceKey = "leadership"
	PrefPhysicalHandsOnWork PreferenceKey = "physical_hands_on_work"
	PrefOutdoorWork         PreferenceKey = "outdoor_work"
	PrefMechanicalAptitude  PreferenceKey = "mechanical_aptitude"
)

// Preference slider bounds.
const (
	PreferenceMin     = 1
	PreferenceMax     = 5
	PreferenceNeutral = 3
	// DefaultPreferenceWeight is a career's weight for a preference key it does not declare.
	DefaultPreferenceWeight = 0.5
)

// PreferenceKeys lists every preference key in canonical order.
var PreferenceKeys = []PreferenceKey{
	PrefWorkingWithData,
	PrefWorkingWithPeople,
	PrefCreativeTasks,
	PrefProblemSolving,
	PrefLeadership,
	PrefPhysicalHandsOnWork,
	PrefOutdoorWork,
	PrefMechanicalAptitude,
}

// ParsePreferenceKey matches a key against the closed set, tolerating case and separators.
func ParsePreferenceKey(s string) (PreferenceKey, bool) {
	key := strings.NewReplacer(" ", "_", "-", "_").Replace(Fold(s))
	for _, k := range PreferenceKeys {
		if string(k) == key {
			return k, true
		}
	}
	return "", false
}

// Category is the coarse grouping of a career.
type Category string

// Categories.
const (
	CategoryTechnology    Category = "technology"
	CategoryHealthcare    Category = "healthcare"
	CategoryTrades        Category = "trades"
	CategoryBusiness      Category = "business"
	CategoryCreative      Category = "creative"
	CategoryPublicService Category = "public-service"
	CategoryEducation     Category = "education"
	CategoryHospitality   Category = "hospitality"
	CategoryManufacturing Category = "manufacturing"
	CategoryAgriculture   Category = "agriculture"
	CategoryLegal         Category = "legal"
)

// Categories lists every category.
var Categories = []Category{
	CategoryTechnology,
	CategoryHealthcare,
	CategoryTrades,
	CategoryBusiness,
	CategoryCreative,
	CategoryPublicService,
	CategoryEducation,
	CategoryHospitality,
	CategoryManufacturing,
	CategoryAgriculture,
	CategoryLegal,
}

// PhysicalCategories are the hands-on categories guarded against for non-physical profiles.
var PhysicalCategories = map[Category]bool{
	CategoryTrades:        true,
	CategoryManufacturing: true,
	CategoryAgriculture:   true,
}

// categoryAliases maps industry words (folded) to categories.
var categoryAliases = map[string]Category{
	"technology":     CategoryTechnology,
	"tech":           CategoryTechnology,
	"software":       CategoryTechnology,
	"it":             CategoryTechnology,
	"internet":       CategoryTechnology,
	"saas":           CategoryTechnology,
	"data":           CategoryTechnology,
	"healthcare":     CategoryHealthcare,
	"health care":    CategoryHealthcare,
	"health":         CategoryHealthcare,
	"medical":        CategoryHealthcare,
	"medicine":       CategoryHealthcare,
	"nursing":        CategoryHealthcare,
	"pharma":         CategoryHealthcare,
	"trades":         CategoryTrades,
	"skilled trades": CategoryTrades,
	"construction":   CategoryTrades,
	"electrical":     CategoryTrades,
	"plumbing":       CategoryTrades,
	"business":       CategoryBusiness,
	"finance":        CategoryBusiness,
	"banking":        CategoryBusiness,
	"consulting":     CategoryBusiness,
	"marketing":      CategoryBusiness,
	"sales":          CategoryBusiness,
	"retail":         CategoryBusiness,
	"creative":       CategoryCreative,
	"design":         CategoryCreative,
	"media":          CategoryCreative,
	"arts":           CategoryCreative,
	"entertainment":  CategoryCreative,
	"public-service": CategoryPublicService,
	"public service": CategoryPublicService,
	"government":     CategoryPublicService,
	"nonprofit":      CategoryPublicService,
	"non-profit":     CategoryPublicService,
	"education":      CategoryEducation,
	"teaching":       CategoryEducation,
	"academia":       CategoryEducation,
	"hospitality":    CategoryHospitality,
	"tourism":        CategoryHospitality,
	"food service":   CategoryHospitality,
	"restaurants":    CategoryHospitality,
	"manufacturing":  CategoryManufacturing,
	"production":     CategoryManufacturing,
	"agriculture":    CategoryAgriculture,
	"farming":        CategoryAgriculture,
	"legal":          CategoryLegal,
	"law":            CategoryLegal,
}

// ParseCategory maps an industry or category string onto the closed set.
func ParseCategory(s string) (Category, bool) {
	key := strings.Join(strings.Fields(Fold(s)), " ")
	if c, ok := categoryAliases[key]; ok {
		return c, true
	}
	return "", false
}

// CategorySet maps free-text industry names onto categories, ignoring unknown ones.
func CategorySet(values []string) map[Category]bool {
	out := make(map[Category]bool, len(values))
	for _, v := range values {
		if c, ok := ParseCategory(v); ok {
			out[c] = true
		}
	}
	return out
}

// roleCategoryHints maps words found in a job title to the category it most likely belongs to.
var roleCategoryHints = map[string]Category{
	"engineer":    CategoryTechnology,
	"engineering": CategoryTechnology,
	"developer":   CategoryTechnology,
	"software":    CategoryTechnology,
	"product":     CategoryTechnology,
	"data":        CategoryTechnology,
	"devops":      CategoryTechnology,
	"it":          CategoryTechnology,
	"nurse":       CategoryHealthcare,
	"physician":   CategoryHealthcare,
	"medical":     CategoryHealthcare,
	"clinical":    CategoryHealthcare,
	"therapist":   CategoryHealthcare,
	"electrician": CategoryTrades,
	"plumber":     CategoryTrades,
	"carpenter":   CategoryTrades,
	"welder":      CategoryTrades,
	"mechanic":    CategoryTrades,
	"accountant":  CategoryBusiness,
	"finance":     CategoryBusiness,
	"sales":       CategoryBusiness,
	"marketing":   CategoryBusiness,
	"consultant":  CategoryBusiness,
	"designer":    CategoryCreative,
	"writer":      CategoryCreative,
	"artist":      CategoryCreative,
	"teacher":     CategoryEducation,
	"professor":   CategoryEducation,
	"chef":        CategoryHospitality,
	"attorney":    CategoryLegal,
	"lawyer":      CategoryLegal,
	"paralegal":   CategoryLegal,
	"farmer":      CategoryAgriculture,
	"machinist":   CategoryManufacturing,
}

// CategoriesForRole infers categories from the words of a job title, in title order.
func CategoriesForRole(role string) []Category {
	var out []Category
	seen := make(map[Category]bool)
	for _, word := range Tokenize(role) {
		if c, ok := roleCategoryHints[word]; ok && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// roleLevelHints maps seniority words in a title to a level; the most senior hit wins.
var roleLevelHints = map[string]ExperienceLevel{
	"intern":    LevelEntry,
	"trainee":   LevelEntry,
	"junior":    LevelJunior,
	"associate": LevelJunior,
	"senior":    LevelSenior,
	"sr":        LevelSenior,
	"lead":      LevelSenior,
	"principal": LevelSenior,
	"staff":     LevelSenior,
	"manager":   LevelSenior,
	"director":  LevelExecutive,
	"head":      LevelExecutive,
	"vp":        LevelExecutive,
	"svp":       LevelExecutive,
	"evp":       LevelExecutive,
	"chief":     LevelExecutive,
	"ceo":       LevelExecutive,
	"cto":       LevelExecutive,
	"cpo":       LevelExecutive,
	"president": LevelExecutive,
}

// LevelForRole infers a seniority band from a job title.
func LevelForRole(role string) (ExperienceLevel, bool) {
	best := ExperienceLevel("")
	for _, word := range Tokenize(role) {
		if level, ok := roleLevelHints[word]; ok && level.Rank() > best.Rank() {
			best = level
		}
	}
	return best, best != ""
}

// EducationLevel is the highest completed education on the assessment.
type EducationLevel string

// Education levels.
const (
	EducationNone       EducationLevel = "none"
	EducationHighSchool EducationLevel = "high_school"
	EducationAssociates EducationLevel = "associates"
	EducationBachelors  EducationLevel = "bachelors"
	EducationMasters    EducationLevel = "masters"
	EducationDoctorate  EducationLevel = "doctorate"
)

var educationAliases = map[string]EducationLevel{
	"none":              EducationNone,
	"no degree":         EducationNone,
	"high school":       EducationHighSchool,
	"high_school":       EducationHighSchool,
	"highschool":        EducationHighSchool,
	"ged":               EducationHighSchool,
	"diploma":           EducationHighSchool,
	"associates":        EducationAssociates,
	"associate":         EducationAssociates,
	"associate's":       EducationAssociates,
	"associate degree":  EducationAssociates,
	"bachelors":         EducationBachelors,
	"bachelor":          EducationBachelors,
	"bachelor's":        EducationBachelors,
	"bachelor's degree": EducationBachelors,
	"ba":                EducationBachelors,
	"bs":                EducationBachelors,
	"bsc":               EducationBachelors,
	"masters":           EducationMasters,
	"master":            EducationMasters,
	"master's":          EducationMasters,
	"master's degree":   EducationMasters,
	"ms":                EducationMasters,
	"msc":               EducationMasters,
	"mba":               EducationMasters,
	"ma":                EducationMasters,
	"doctorate":         EducationDoctorate,
	"phd":               EducationDoctorate,
	"ph.d.":             EducationDoctorate,
	"md":                EducationDoctorate,
	"jd":                EducationDoctorate,
}

// ParseEducationLevel normalizes an education string.
func ParseEducationLevel(s string) (EducationLevel, bool) {
	key := strings.Join(strings.Fields(Fold(s)), " ")
	if level, ok := educationAliases[key]; ok {
		return level, true
	}
	return "", false
}

// Fold returns the comparison key for a string: trimmed, accents removed, lower-cased.
// Chains keep per-call state, so each call builds its own.
func Fold(s string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, strings.TrimSpace(s))
	if err != nil {
		folded = strings.TrimSpace(s)
	}
	return strings.ToLower(folded)
}

// Tokenize folds text and splits it into alphanumeric words.
func Tokenize(s string) []string {
	return strings.FieldsFunc(Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
