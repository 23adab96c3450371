package synthesis

import (
	"strings"

	"github.com/jonathan/tailor-engine/internal/templates"
)

// Role is the coarse job-title category that selects a document's prose
type Role string

// Role categories
const (
	RoleDataScientist       Role = "data-scientist"
	RoleSoftwareEngineer    Role = "software-engineer"
	RoleProductManager      Role = "product-manager"
	RoleMarketing           Role = "marketing"
	RoleSales               Role = "sales"
	RoleBusinessDevelopment Role = "business-development"
	RoleDefault             Role = "default"
)

// roleKeywords is checked in order; the first role with a keyword contained in the title wins.
// Sales roles precede engineering so that "Sales Engineer" is classified as sales.
var roleKeywords = []struct {
	role     Role
	keywords []string
}{
	{RoleDataScientist, []string{"data scientist", "data science", "machine learning", "ml engineer", "data analyst"}},
	{RoleBusinessDevelopment, []string{"business development", "partnership", "bizdev"}},
	{RoleSales, []string{"sales", "account executive", "account manager"}},
	{RoleProductManager, []string{"product manager", "product owner", "product lead"}},
	{RoleMarketing, []string{"marketing", "growth", "brand", "content strateg", "seo"}},
	{RoleSoftwareEngineer, []string{"engineer", "developer", "programmer", "software", "devops", "sre"}},
}

// ClassifyRole maps a job title to a role category
func ClassifyRole(title string) Role {
	lower := strings.ToLower(title)
	for _, rk := range roleKeywords {
		for _, kw := range rk.keywords {
			if strings.Contains(lower, kw) {
				return rk.role
			}
		}
	}
	return RoleDefault
}

// prose holds the role-specific template strings for all document types
type prose struct {
	Summary         string
	Achievements    []string
	KeyAchievements []string
	Motivation      string
	Questions       []string
	Closing         string
}

// proseFor loads the prose table of a role
func proseFor(role Role) prose {
	file := string(role) + ".json"
	get := func(key string) string { return templates.MustGet(file, key) }
	return prose{
		Summary:         get("summary"),
		Achievements:    []string{get("achievement_1"), get("achievement_2"), get("achievement_3")},
		KeyAchievements: []string{get("key_achievement_1"), get("key_achievement_2"), get("key_achievement_3")},
		Motivation:      get("motivation"),
		Questions:       []string{get("question_1"), get("question_2")},
		Closing:         get("closing"),
	}
}
