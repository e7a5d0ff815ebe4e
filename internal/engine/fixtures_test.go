package engine

import (
	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

type careerSpec struct {
	id        string
	title     string
	category  vocab.Category
	level     vocab.ExperienceLevel
	salaryMin int
	salaryMax int
	tech      []string
	soft      []string
	license   []string
}

func (s careerSpec) career() types.Career {
	minYears, maxYears := vocab.DefaultYearsForLevel(s.level)
	c := types.Career{
		CareerID:                s.id,
		Title:                   s.title,
		Description:             s.title + " role",
		RequiredTechnicalSkills: s.tech,
		RequiredSoftSkills:      s.soft,
		SalaryMin:               s.salaryMin,
		SalaryMax:               s.salaryMax,
		ExperienceLevel:         s.level,
		MinYearsExperience:      minYears,
		MaxYearsExperience:      maxYears,
		Category:                s.category,
		PreferenceWeights:       map[vocab.PreferenceKey]float64{},
	}
	if len(s.license) > 0 {
		c.LicenseRequired = true
		c.RequiredCertifications = s.license
	}
	for _, k := range vocab.PreferenceKeys {
		c.PreferenceWeights[k] = 0.5
	}
	return c
}

// fixtureCatalog is a small mixed catalog, skewed toward technology like the production one.
func fixtureCatalog() []types.Career {
	specs := []careerSpec{
		// technology
		{"vp-of-product", "VP of Product", vocab.CategoryTechnology, vocab.LevelExecutive, 220000, 350000,
			[]string{"Product Strategy", "Roadmapping"}, []string{"Leadership", "Communication"}, nil},
		{"director-of-product-management", "Director of Product Management", vocab.CategoryTechnology, vocab.LevelExecutive, 200000, 300000,
			[]string{"Product Strategy", "Roadmapping", "Analytics"}, []string{"Leadership"}, nil},
		{"senior-product-manager", "Senior Product Manager", vocab.CategoryTechnology, vocab.LevelSenior, 160000, 230000,
			[]string{"Product Strategy", "SQL"}, []string{"Communication"}, nil},
		{"product-manager", "Product Manager", vocab.CategoryTechnology, vocab.LevelMid, 110000, 160000,
			[]string{"Roadmapping", "SQL"}, []string{"Communication"}, nil},
		{"chief-technology-officer", "Chief Technology Officer", vocab.CategoryTechnology, vocab.LevelExecutive, 250000, 400000,
			[]string{"Architecture", "Cloud"}, []string{"Leadership"}, nil},
		{"principal-software-engineer", "Principal Software Engineer", vocab.CategoryTechnology, vocab.LevelSenior, 180000, 260000,
			[]string{"Go", "Distributed Systems", "Architecture"}, []string{"Mentoring"}, nil},
		{"software-engineer", "Software Engineer", vocab.CategoryTechnology, vocab.LevelMid, 110000, 160000,
			[]string{"Go", "SQL"}, []string{"Teamwork"}, nil},
		{"data-scientist", "Data Scientist", vocab.CategoryTechnology, vocab.LevelMid, 120000, 170000,
			[]string{"Python", "Statistics", "SQL"}, []string{"Communication"}, nil},
		{"junior-developer", "Junior Developer", vocab.CategoryTechnology, vocab.LevelJunior, 65000, 90000,
			[]string{"JavaScript"}, []string{"Teamwork"}, nil},
		{"it-support-specialist", "IT Support Specialist", vocab.CategoryTechnology, vocab.LevelEntry, 45000, 65000,
			[]string{"Troubleshooting"}, []string{"Customer Support"}, nil},
		// business
		{"chief-marketing-officer", "Chief Marketing Officer", vocab.CategoryBusiness, vocab.LevelExecutive, 180000, 300000,
			[]string{"Brand Strategy"}, []string{"Leadership"}, nil},
		{"management-consultant", "Management Consultant", vocab.CategoryBusiness, vocab.LevelSenior, 150000, 250000,
			[]string{"Analytics", "Product Strategy"}, []string{"Communication"}, nil},
		{"marketing-manager", "Marketing Manager", vocab.CategoryBusiness, vocab.LevelMid, 90000, 140000,
			[]string{"Campaign Management"}, []string{"Communication"}, nil},
		{"operations-manager", "Operations Manager", vocab.CategoryBusiness, vocab.LevelMid, 85000, 125000,
			[]string{"Process Improvement"}, []string{"Leadership"}, nil},
		{"marketing-coordinator", "Marketing Coordinator", vocab.CategoryBusiness, vocab.LevelEntry, 42000, 58000,
			[]string{"Social Media"}, []string{"Communication"}, nil},
		{"data-analyst", "Data Analyst", vocab.CategoryBusiness, vocab.LevelJunior, 60000, 85000,
			[]string{"SQL", "Excel"}, []string{"Attention to Detail"}, nil},
		// legal
		{"general-counsel", "General Counsel", vocab.CategoryLegal, vocab.LevelExecutive, 200000, 350000,
			[]string{"Corporate Law"}, []string{"Negotiation"}, []string{"Bar Admission"}},
		{"paralegal", "Paralegal", vocab.CategoryLegal, vocab.LevelJunior, 45000, 65000,
			[]string{"Legal Research"}, []string{"Attention to Detail"}, nil},
		// creative
		{"ux-designer", "UX Designer", vocab.CategoryCreative, vocab.LevelMid, 95000, 140000,
			[]string{"Figma", "User Research"}, []string{"Empathy"}, nil},
		{"graphic-designer", "Graphic Designer", vocab.CategoryCreative, vocab.LevelJunior, 45000, 70000,
			[]string{"Illustration"}, []string{"Creativity"}, nil},
		// education
		{"instructional-designer", "Instructional Designer", vocab.CategoryEducation, vocab.LevelMid, 75000, 110000,
			[]string{"Curriculum Design"}, []string{"Communication"}, nil},
		{"high-school-teacher", "High School Teacher", vocab.CategoryEducation, vocab.LevelMid, 50000, 80000,
			[]string{"Lesson Planning"}, []string{"Patience"}, nil},
		// hospitality
		{"restaurant-manager", "Restaurant Manager", vocab.CategoryHospitality, vocab.LevelMid, 55000, 80000,
			[]string{"Scheduling"}, []string{"Leadership"}, nil},
		// healthcare
		{"medical-assistant", "Medical Assistant", vocab.CategoryHealthcare, vocab.LevelEntry, 35000, 45000,
			[]string{"Patient Intake"}, []string{"Empathy"}, nil},
		{"registered-nurse", "Registered Nurse", vocab.CategoryHealthcare, vocab.LevelMid, 75000, 110000,
			[]string{"Patient Care"}, []string{"Empathy"}, []string{"RN License"}},
		{"physician", "Physician", vocab.CategoryHealthcare, vocab.LevelExecutive, 220000, 400000,
			[]string{"Diagnosis"}, []string{"Empathy"}, []string{"MD License"}},
		{"hospital-administrator", "Hospital Administrator", vocab.CategoryHealthcare, vocab.LevelSenior, 130000, 220000,
			[]string{"Healthcare Operations"}, []string{"Leadership"}, []string{"FACHE"}},
		// trades
		{"electrician", "Electrician", vocab.CategoryTrades, vocab.LevelMid, 60000, 100000,
			[]string{"Wiring"}, []string{"Safety"}, []string{"Electrician License"}},
		{"electrician-apprentice", "Electrician Apprentice", vocab.CategoryTrades, vocab.LevelEntry, 35000, 55000,
			[]string{"Wiring"}, []string{"Safety"}, nil},
		{"construction-manager", "Construction Manager", vocab.CategoryTrades, vocab.LevelSenior, 100000, 160000,
			[]string{"Project Management"}, []string{"Leadership"}, nil},
		// manufacturing / agriculture
		{"plant-manager", "Plant Manager", vocab.CategoryManufacturing, vocab.LevelSenior, 120000, 180000,
			[]string{"Lean Manufacturing"}, []string{"Leadership"}, nil},
		{"farm-operations-manager", "Farm Operations Manager", vocab.CategoryAgriculture, vocab.LevelMid, 60000, 95000,
			[]string{"Crop Planning"}, []string{"Leadership"}, nil},
	}

	careers := make([]types.Career, 0, len(specs))
	for _, s := range specs {
		careers = append(careers, s.career())
	}
	return careers
}

func careerByID(careers []types.Career, id string) types.Career {
	for _, c := range careers {
		if c.CareerID == id {
			return c
		}
	}
	return types.Career{}
}
