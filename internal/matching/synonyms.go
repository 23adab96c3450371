package matching

import "strings"

// synonyms maps a lowercase candidate term to related terms that count as evidence of it.
// Very short aliases (e.g. "ml", "ai", "ts") are left out because substring matching
// would hit ordinary words.
var synonyms = map[string][]string{
	"javascript":         {"js", "node.js", "nodejs", "react", "vue", "angular", "typescript"},
	"typescript":         {"javascript", "angular"},
	"python":             {"django", "flask", "fastapi", "pandas", "numpy"},
	"go":                 {"golang"},
	"kubernetes":         {"k8s", "container orchestration"},
	"aws":                {"amazon web services", "cloud"},
	"cloud":              {"aws", "azure", "gcp", "google cloud"},
	"docker":             {"containers", "containerization"},
	"sql":                {"postgresql", "postgres", "mysql", "database"},
	"postgresql":         {"postgres", "sql"},
	"react":              {"react.js", "reactjs", "frontend", "front-end"},
	"node.js":            {"nodejs", "node", "backend"},
	"machine learning":   {"deep learning", "artificial intelligence", "predictive model"},
	"ci/cd":              {"continuous integration", "continuous delivery", "devops"},
	"agile":              {"scrum", "kanban", "sprint"},
	"leadership":         {"lead", "mentoring", "management"},
	"communication":      {"stakeholder", "presentation", "written"},
	"data analysis":      {"analytics", "data analytics", "sql", "excel"},
	"product management": {"roadmap", "product strategy", "product owner"},
	"marketing":          {"seo", "campaign", "brand", "growth"},
	"sales":              {"business development", "account management", "crm", "quota"},
}

// Synonyms returns the registered synonyms for a term, or nil if none are registered.
func Synonyms(term string) []string {
	list, ok := synonyms[normalize(term)]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

// normalize lowercases and trims a term for comparison
func normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
