package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-navigator/internal/catalog"
	"github.com/jonathan/career-navigator/internal/types"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return NewExtractor(c)
}

func TestExtract_NilDocumentReturnsNil(t *testing.T) {
	e := newTestExtractor(t)

	assert.Nil(t, e.Extract(nil))
	assert.Nil(t, e.Extract([]byte{}))
}

func TestExtract_CorruptDocumentFallsBack(t *testing.T) {
	e := newTestExtractor(t)

	summary := e.Extract([]byte("this is not a pdf"))
	require.NotNil(t, summary)
	assert.Equal(t, types.SourceFallback, summary.Source)
	assert.Equal(t, "CS Student", summary.DisplayName)
}

func TestExtract_FallbackIsDeterministic(t *testing.T) {
	e := newTestExtractor(t)

	first := e.Extract([]byte("\x00garbage"))
	second := e.Extract([]byte("\xffother garbage"))
	assert.Equal(t, first, second, "fallback summary must not depend on input bytes")
}

func TestScan_SkillCategories(t *testing.T) {
	e := newTestExtractor(t)

	text := "ADITI SHARMA\n" +
		"B.Tech Computer Science, 2nd year\n" +
		"National Institute of Technology\n" +
		"CGPA: 8.6\n" +
		"Skills: Python, JavaScript, HTML, CSS, SQL, MongoDB, Git, Docker\n" +
		"Coursework: Data Structures, Algorithms, Machine Learning\n"

	summary := e.scan(text)
	require.NotNil(t, summary)
	assert.Equal(t, types.SourceLive, summary.Source)

	assert.Contains(t, summary.SkillsByCategory[types.CategoryLanguages], "Python")
	assert.Contains(t, summary.SkillsByCategory[types.CategoryLanguages], "JavaScript")
	// Substring containment has no word-boundary check, so "java" is found
	// inside "javascript" and "c" inside almost anything.
	assert.Contains(t, summary.SkillsByCategory[types.CategoryLanguages], "Java")
	assert.Contains(t, summary.SkillsByCategory[types.CategoryLanguages], "C")

	assert.Contains(t, summary.SkillsByCategory[types.CategoryWeb], "HTML")
	assert.Contains(t, summary.SkillsByCategory[types.CategoryWeb], "CSS")
	assert.Contains(t, summary.SkillsByCategory[types.CategoryDatabases], "SQL")
	assert.Contains(t, summary.SkillsByCategory[types.CategoryDatabases], "MongoDB")
	assert.Contains(t, summary.SkillsByCategory[types.CategoryAIML], "Machine Learning")
	assert.Contains(t, summary.SkillsByCategory[types.CategoryCoreCS], "Data Structures")
	assert.Contains(t, summary.SkillsByCategory[types.CategoryCoreCS], "Algorithms")
	assert.Contains(t, summary.SkillsByCategory[types.CategoryTools], "Git")
	assert.Contains(t, summary.SkillsByCategory[types.CategoryTools], "Docker")
}

func TestScan_NameHeuristic(t *testing.T) {
	e := newTestExtractor(t)

	summary := e.scan("\n\n  RAVI KUMAR  \nB.Tech CSE\n")
	assert.Equal(t, "Ravi Kumar", summary.DisplayName)
}

func TestScan_Education(t *testing.T) {
	e := newTestExtractor(t)

	text := "Priya Patel\n" +
		"B.Tech Computer Science (AI & ML), 1st year\n" +
		"Bengaluru Engineering College\n" +
		"CGPA - 8.2\n"

	summary := e.scan(text)
	assert.Equal(t, "B.Tech Computer Science (AI & ML)", summary.Education.Degree)
	assert.Equal(t, "Bengaluru Engineering College", summary.Education.Institution)
	assert.Equal(t, "1st Year", summary.Education.CohortLabel)
	assert.InDelta(t, 8.2, summary.Education.GPA, 0.001)
}

func TestFindGPA(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{"cgpa with colon", "cgpa: 8.6", 8.6},
		{"gpa with dash", "gpa - 7.25", 7.25},
		{"gpa without separator", "gpa 9", 9},
		{"no gpa present", "no grades here", defaultGPA},
		{"out of range value", "gpa: 42", defaultGPA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, findGPA(tt.text), 0.001)
		})
	}
}

func TestClassifyDegree(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"btech ai ml", "b.tech cse (ai & ml)", "B.Tech Computer Science (AI & ML)"},
		{"bachelor data science", "bachelor of data science", "B.Tech Computer Science (Data Science)"},
		{"plain btech", "b.tech computer science", "B.Tech Computer Science"},
		{"no degree markers", "self-taught developer", "Undergraduate Degree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyDegree(tt.text))
		})
	}
}

func TestFallbackSummary_MatchesCannedProfile(t *testing.T) {
	summary := FallbackSummary()

	assert.Equal(t, "CS Student", summary.DisplayName)
	assert.Equal(t, "Bengaluru Engineering College", summary.Education.Institution)
	assert.Equal(t, "1st Year", summary.Education.CohortLabel)
	assert.InDelta(t, 8.2, summary.Education.GPA, 0.001)
	assert.Len(t, summary.Projects, 3)
	assert.Equal(t, types.SourceFallback, summary.Source)

	technical := summary.TechnicalSkills()
	assert.Contains(t, technical, "Java")
	assert.Contains(t, technical, "SQL") // from project technologies

	soft := summary.SoftSignals()
	assert.Contains(t, soft, "AI/ML")
	assert.Contains(t, soft, "Quick Learner")
}
