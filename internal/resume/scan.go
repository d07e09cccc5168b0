package resume

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/jonathan/career-navigator/internal/parsing"
	"github.com/jonathan/career-navigator/internal/types"
)

// defaultGPA is used when the document carries no recognizable GPA figure.
// Values are on the 10-point CGPA scale.
const defaultGPA = 8.2

var (
	gpaPattern    = regexp.MustCompile(`(?i)c?gpa\s*[:\-]?\s*([0-9]{1,2}(?:\.[0-9]+)?)`)
	cohortPattern = regexp.MustCompile(`(?i)\b([1-4])(st|nd|rd|th)\s+year\b`)
)

// scan classifies normalized document text against the keyword tables.
//
// Matching is substring containment with no word-boundary check. That is a
// known limitation: "c" as a language matches inside unrelated words and
// "java" matches inside "javascript". The tables are external config so a
// proper tokenizer can replace this without touching downstream components.
func (e *Extractor) scan(text string) *types.DocumentSummary {
	lower := strings.ToLower(text)

	skillsByCategory := make(map[string][]string, len(types.SkillCategories))
	for _, category := range types.SkillCategories {
		var found []string
		for _, term := range e.catalog.Terms(category) {
			if strings.Contains(lower, term) {
				found = append(found, term)
			}
		}
		skillsByCategory[category] = parsing.NormalizeSkillList(found)
	}

	return &types.DocumentSummary{
		DisplayName: titleCase(firstNonEmptyLine(text)),
		Education: types.Education{
			Degree:      classifyDegree(lower),
			Institution: findInstitution(text),
			CohortLabel: findCohort(text),
			GPA:         findGPA(lower),
		},
		SkillsByCategory: skillsByCategory,
		Projects:         nil,
		Interests:        nil,
		Strengths:        nil,
		Source:           types.SourceLive,
	}
}

// firstNonEmptyLine returns the first line of text with visible content;
// heuristically the candidate's name on a résumé.
func firstNonEmptyLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// titleCase capitalizes the first letter of each word and lowercases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// findGPA extracts a CGPA/GPA figure. Out-of-range and missing values fall
// back to defaultGPA.
func findGPA(lower string) float64 {
	match := gpaPattern.FindStringSubmatch(lower)
	if match == nil {
		return defaultGPA
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil || value < 0 || value > 10 {
		return defaultGPA
	}
	return value
}

// classifyDegree picks among canned degree labels by substring presence.
func classifyDegree(lower string) string {
	if !strings.Contains(lower, "b.tech") && !strings.Contains(lower, "bachelor") {
		return "Undergraduate Degree"
	}
	switch {
	case strings.Contains(lower, "ai") && strings.Contains(lower, "ml"):
		return "B.Tech Computer Science (AI & ML)"
	case strings.Contains(lower, "data science"):
		return "B.Tech Computer Science (Data Science)"
	default:
		return "B.Tech Computer Science"
	}
}

// findInstitution returns the first line mentioning a school-like keyword.
func findInstitution(text string) string {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "college") ||
			strings.Contains(lower, "university") ||
			strings.Contains(lower, "institute") {
			return titleCase(strings.TrimSpace(line))
		}
	}
	return ""
}

// findCohort extracts a "1st Year" style cohort label.
func findCohort(text string) string {
	match := cohortPattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return match[1] + strings.ToLower(match[2]) + " Year"
}
