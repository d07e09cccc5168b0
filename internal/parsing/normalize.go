// Package parsing provides skill token normalization.
//
// A SkillToken is the canonical spelling of a skill name. Every set
// operation in the analyzer runs over normalized tokens, so "Node.js",
// "node.js" and "NODE.JS" all collapse to one entry.
package parsing

import "strings"

// skillNormalizations maps common skill name variants to canonical names.
// Every canonical value's lowercase form is itself a key, which keeps
// NormalizeSkillName idempotent.
var skillNormalizations = map[string]string{
	// Languages
	"golang":           "Go",
	"go":               "Go",
	"javascript":       "JavaScript",
	"js":               "JavaScript",
	"basic javascript": "JavaScript",
	"typescript":       "TypeScript",
	"ts":               "TypeScript",
	"python":           "Python",
	"java":             "Java",
	"c++":              "C++",
	"cpp":              "C++",
	"c#":               "C#",
	"c":                "C",
	"ruby":             "Ruby",
	"php":              "PHP",
	"kotlin":           "Kotlin",
	"swift":            "Swift",

	// Web
	"html":         "HTML",
	"html5":        "HTML",
	"css":          "CSS",
	"css3":         "CSS",
	"react.js":     "React",
	"reactjs":      "React",
	"react":        "React",
	"vue.js":       "Vue",
	"vuejs":        "Vue",
	"vue":          "Vue",
	"angular":      "Angular",
	"node.js":      "Node.js",
	"nodejs":       "Node.js",
	"node":         "Node.js",
	"express":      "Express",
	"django":       "Django",
	"flask":        "Flask",
	"spring boot":  "Spring Boot",
	"springboot":   "Spring Boot",
	"spring":       "Spring Boot",
	"bootstrap":    "Bootstrap",
	"rest api":     "REST APIs",
	"rest apis":    "REST APIs",
	"restful apis": "REST APIs",
	"rest":         "REST APIs",

	// Databases
	"sql":          "SQL",
	"mysql":        "MySQL",
	"oracle/mysql": "MySQL",
	"postgresql":   "PostgreSQL",
	"postgres":     "PostgreSQL",
	"mongodb":      "MongoDB",
	"mongo":        "MongoDB",
	"sqlite":       "SQLite",
	"redis":        "Redis",
	"oracle":       "Oracle",
	"dbms":         "DBMS",
	"er diagram":   "ER Diagram",

	// AI / ML
	"machine learning":   "Machine Learning",
	"ml":                 "Machine Learning",
	"ai/ml":              "Machine Learning",
	"deep learning":      "Deep Learning",
	"nlp":                "NLP",
	"tensorflow":         "TensorFlow",
	"pytorch":            "PyTorch",
	"pandas":             "Pandas",
	"numpy":              "NumPy",
	"scikit-learn":       "Scikit-learn",
	"sklearn":            "Scikit-learn",
	"statistics":         "Statistics",
	"data visualization": "Data Visualization",
	"computer vision":    "Computer Vision",
	"mlops":              "MLOps",

	// Core CS
	"data structures":   "Data Structures",
	"algorithms":        "Algorithms",
	"operating systems": "Operating Systems",
	"computer networks": "Computer Networks",
	"oop":               "OOP",
	"system design":     "System Design",
	"microservices":     "Microservices",

	// Tools
	"git":             "Git",
	"github":          "GitHub",
	"version control": "Git",
	"docker":          "Docker",
	"kubernetes":      "Kubernetes",
	"k8s":             "Kubernetes",
	"linux":           "Linux",
	"vs code":         "VS Code",
	"vscode":          "VS Code",
	"jenkins":         "Jenkins",
	"postman":         "Postman",
	"jira":            "Jira",
	"kafka":           "Kafka",
	"aws":             "AWS",
	"streamlit":       "Streamlit",
}

// NormalizeSkillName normalizes a skill name to its canonical form.
// Unknown names keep their spelling: all-caps and all-lowercase single
// words get an initial capital, mixed-case and multi-word names pass
// through unchanged. The function is idempotent.
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// All-caps single words that aren't known acronyms: capitalize first letter only
	if normalized == strings.ToUpper(normalized) && len(normalized) > 1 && !strings.Contains(lower, " ") {
		return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
	}

	// Already mixed case, return as-is
	if normalized != strings.ToUpper(normalized) && normalized != strings.ToLower(normalized) {
		return normalized
	}

	// All lowercase single word, capitalize first letter
	if normalized == strings.ToLower(normalized) && !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// NormalizeSkillList normalizes every name in the list and deduplicates,
// preserving first-seen order. Empty names are dropped.
func NormalizeSkillList(names []string) []string {
	if len(names) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		token := NormalizeSkillName(name)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		normalized = append(normalized, token)
	}
	return normalized
}
