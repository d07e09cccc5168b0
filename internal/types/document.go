package types

// Skill category names used as keys in DocumentSummary.SkillsByCategory and
// in the keyword tables. The order here is the canonical display order.
const (
	CategoryLanguages = "languages"
	CategoryWeb       = "web"
	CategoryDatabases = "databases"
	CategoryAIML      = "ai_ml"
	CategoryCoreCS    = "core_cs"
	CategoryTools     = "tools"
)

// SkillCategories lists the six skill categories in canonical order.
var SkillCategories = []string{
	CategoryLanguages,
	CategoryWeb,
	CategoryDatabases,
	CategoryAIML,
	CategoryCoreCS,
	CategoryTools,
}

// Education holds best-effort demographic fields extracted from a document.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	CohortLabel string `json:"cohort_label"`
	// GPA is on the 10-point CGPA scale (value in [0,10]), the convention
	// used by the documents this extractor targets.
	GPA float64 `json:"gpa"`
}

// Project represents a single project entry extracted from a document.
type Project struct {
	Title        string   `json:"title"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
}

// DocumentSummary represents a normalized skill summary built from a
// free-form document such as a résumé.
type DocumentSummary struct {
	DisplayName      string              `json:"display_name"`
	Education        Education           `json:"education"`
	SkillsByCategory map[string][]string `json:"skills_by_category"`
	Projects         []Project           `json:"projects"`
	Interests        []string            `json:"interests"`
	Strengths        []string            `json:"strengths"`
	Source           string              `json:"source"`
}

// TechnicalSkills flattens the categorized skills and project technologies
// into a single list. Duplicates are preserved; callers normalize and
// deduplicate when building a SkillSet.
func (d *DocumentSummary) TechnicalSkills() []string {
	if d == nil {
		return nil
	}
	var skills []string
	for _, category := range SkillCategories {
		skills = append(skills, d.SkillsByCategory[category]...)
	}
	for _, project := range d.Projects {
		skills = append(skills, project.Technologies...)
	}
	return skills
}

// SoftSignals returns the non-technical signals (interests and strengths)
// that count as partial evidence of a skill.
func (d *DocumentSummary) SoftSignals() []string {
	if d == nil {
		return nil
	}
	signals := make([]string, 0, len(d.Interests)+len(d.Strengths))
	signals = append(signals, d.Interests...)
	signals = append(signals, d.Strengths...)
	return signals
}
