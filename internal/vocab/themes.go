package vocab

// Theme is a coarse topical tag inferred from resume text.
type Theme string

// Themes.
const (
	ThemeProduct     Theme = "product"
	ThemeEngineering Theme = "engineering"
	ThemeDataScience Theme = "data-science"
	ThemeAnalytics   Theme = "analytics"
	ThemeLeadership  Theme = "leadership"
	ThemeTrades      Theme = "trades"
	ThemeHealthcare  Theme = "healthcare"
	ThemeCreative    Theme = "creative"
	ThemeSales       Theme = "sales"
	ThemeOperations  Theme = "operations"
)

// Themes lists every theme. Order is the tie-break order for equal frequencies.
var Themes = []Theme{
	ThemeProduct,
	ThemeEngineering,
	ThemeDataScience,
	ThemeAnalytics,
	ThemeLeadership,
	ThemeTrades,
	ThemeHealthcare,
	ThemeCreative,
	ThemeSales,
	ThemeOperations,
}

// NonPhysicalThemes are the themes for which physical categories are guarded.
var NonPhysicalThemes = map[Theme]bool{
	ThemeProduct:    true,
	ThemeAnalytics:  true,
	ThemeLeadership: true,
}

// ThemeKeywords is the canonical keyword list per theme. Lists are disjoint across themes so a
// single word never counts toward two themes. Multi-word entries match consecutive tokens.
var ThemeKeywords = map[Theme][]string{
	ThemeProduct: {
		"product", "roadmap", "backlog", "go-to-market", "gtm", "launch", "user research",
		"prioritization", "pm", "feature", "customer discovery", "okr", "okrs", "mvp",
	},
	ThemeEngineering: {
		"engineering", "engineer", "software", "developer", "code", "coding", "backend",
		"frontend", "api", "microservices", "kubernetes", "architecture", "golang", "java",
		"programming", "devops",
	},
	ThemeDataScience: {
		"machine learning", "ml", "model", "models", "data science", "data scientist",
		"neural", "nlp", "statistics", "statistical", "python", "deep learning",
	},
	ThemeAnalytics: {
		"analytics", "analysis", "analyst", "dashboard", "sql", "reporting", "metrics",
		"kpi", "kpis", "insights", "tableau", "forecasting",
	},
	ThemeLeadership: {
		"led", "leadership", "executive", "vp", "svp", "director", "strategy", "strategic",
		"managed", "organization", "board", "p&l", "headcount", "mentored",
	},
	ThemeTrades: {
		"electrical", "plumbing", "wiring", "welding", "carpentry", "hvac", "installation",
		"repair", "maintenance", "apprentice", "journeyman", "tools",
	},
	ThemeHealthcare: {
		"patient", "patients", "clinical", "nursing", "hospital", "medical", "care",
		"diagnosis", "treatment", "ehr", "hipaa",
	},
	ThemeCreative: {
		"design", "designer", "creative", "illustration", "branding", "content", "writing",
		"video", "photography", "ux", "visual",
	},
	ThemeSales: {
		"sales", "quota", "pipeline", "prospecting", "closed", "accounts", "revenue",
		"crm", "negotiation", "deals", "territory",
	},
	ThemeOperations: {
		"operations", "logistics", "supply chain", "process improvement", "procurement",
		"vendor", "vendors", "inventory", "scheduling", "compliance", "efficiency",
	},
}

// ThemeCategories gives the default themes of careers in a category that list no themes.
var ThemeCategories = map[Category][]Theme{
	CategoryTrades:        {ThemeTrades},
	CategoryManufacturing: {ThemeTrades, ThemeOperations},
	CategoryAgriculture:   {ThemeTrades},
	CategoryHealthcare:    {ThemeHealthcare},
	CategoryCreative:      {ThemeCreative},
	CategoryHospitality:   {ThemeOperations},
}

// TitleThemeHints maps words of a career title to the theme they signal.
var TitleThemeHints = map[string]Theme{
	"product":      ThemeProduct,
	"engineer":     ThemeEngineering,
	"developer":    ThemeEngineering,
	"software":     ThemeEngineering,
	"devops":       ThemeEngineering,
	"architect":    ThemeEngineering,
	"scientist":    ThemeDataScience,
	"ml":           ThemeDataScience,
	"learning":     ThemeDataScience,
	"analyst":      ThemeAnalytics,
	"analytics":    ThemeAnalytics,
	"intelligence": ThemeAnalytics,
	"manager":      ThemeLeadership,
	"director":     ThemeLeadership,
	"vp":           ThemeLeadership,
	"chief":        ThemeLeadership,
	"head":         ThemeLeadership,
	"executive":    ThemeLeadership,
	"electrician":  ThemeTrades,
	"plumber":      ThemeTrades,
	"technician":   ThemeTrades,
	"welder":       ThemeTrades,
	"nurse":        ThemeHealthcare,
	"physician":    ThemeHealthcare,
	"designer":     ThemeCreative,
	"writer":       ThemeCreative,
	"sales":        ThemeSales,
	"account":      ThemeSales,
	"operations":   ThemeOperations,
	"logistics":    ThemeOperations,
}

// ParseTheme matches a theme name against the closed set.
func ParseTheme(s string) (Theme, bool) {
	key := Fold(s)
	for _, t := range Themes {
		if string(t) == key {
			return t, true
		}
	}
	return "", false
}
