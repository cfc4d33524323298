// Package catalog holds the static course and bundle catalog. Entries
// are defined in code, built once, and read-only at runtime.
package catalog

type Course struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // USD
	Duration    string  `json:"duration"`
}

type Bundle struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Price     float64  `json:"price"`
	CourseIDs []string `json:"courseIds"`
}

var courses = map[string]Course{
	"ai-foundations": {
		ID:          "ai-foundations",
		Title:       "AI Foundations",
		Description: "Understand modern AI and start using it at work, no coding required",
		Price:       299,
		Duration:    "6 weeks",
	},
	"applied-ai": {
		ID:          "applied-ai",
		Title:       "Applied AI",
		Description: "Build real AI-powered workflows and automations",
		Price:       599,
		Duration:    "8 weeks",
	},
	"ai-web-development": {
		ID:          "ai-web-development",
		Title:       "AI Web Development",
		Description: "Ship full-stack applications with AI-assisted development",
		Price:       999,
		Duration:    "10 weeks",
	},
	"enterprise-ai": {
		ID:          "enterprise-ai",
		Title:       "Enterprise AI Strategy",
		Description: "Lead AI adoption across teams and organizations",
		Price:       1299,
		Duration:    "12 weeks",
	},
}

var bundles = map[string]Bundle{
	"complete-journey": {
		ID:    "complete-journey",
		Title: "Complete AI Journey",
		Price: 2499,
		CourseIDs: []string{
			"ai-foundations",
			"applied-ai",
			"ai-web-development",
			"enterprise-ai",
		},
	},
	"technical-track": {
		ID:    "technical-track",
		Title: "Technical Track",
		Price: 1399,
		CourseIDs: []string{
			"applied-ai",
			"ai-web-development",
		},
	},
	"business-track": {
		ID:    "business-track",
		Title: "Business Track",
		Price: 1399,
		CourseIDs: []string{
			"ai-foundations",
			"enterprise-ai",
		},
	},
}

func GetCourse(id string) (Course, bool) {
	c, ok := courses[id]
	return c, ok
}

func GetBundle(id string) (Bundle, bool) {
	b, ok := bundles[id]
	return b, ok
}

func ValidCourseID(id string) bool {
	_, ok := courses[id]
	return ok
}

// ExpandBundle maps a bundle id to its component course ids. Returns
// false when the id is not a known bundle.
func ExpandBundle(id string) ([]string, bool) {
	b, ok := bundles[id]
	if !ok {
		return nil, false
	}

	out := make([]string, len(b.CourseIDs))
	copy(out, b.CourseIDs)
	return out, true
}

func CourseIDs() []string {
	ids := make([]string, 0, len(courses))
	for id := range courses {
		ids = append(ids, id)
	}
	return ids
}
