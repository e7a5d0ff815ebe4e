package vocab

import "strings"

// skillAliases maps folded skill variants to a canonical folded name.
var skillAliases = map[string]string{
	"golang":               "go",
	"go lang":              "go",
	"js":                   "javascript",
	"ts":                   "typescript",
	"k8s":                  "kubernetes",
	"react.js":             "react",
	"reactjs":              "react",
	"vue.js":               "vue",
	"vuejs":                "vue",
	"node.js":              "node",
	"nodejs":               "node",
	"postgres":             "postgresql",
	"ms excel":             "excel",
	"microsoft excel":      "excel",
	"ml":                   "machine learning",
	"ai":                   "artificial intelligence",
	"pm":                   "product management",
	"project mgmt":         "project management",
	"people management":    "team leadership",
	"team management":      "team leadership",
	"communications":       "communication",
	"problem-solving":      "problem solving",
	"customer service":     "customer support",
	"data analytics":       "data analysis",
	"statistical analysis": "statistics",
}

// SkillKey returns the comparison key of a skill: folded, whitespace-collapsed and with
// common aliases resolved.
func SkillKey(skill string) string {
	key := strings.Join(strings.Fields(Fold(skill)), " ")
	if canonical, ok := skillAliases[key]; ok {
		return canonical
	}
	return key
}
