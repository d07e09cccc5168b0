package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-navigator/internal/types"
)

func TestLoad_EmbeddedDataValidates(t *testing.T) {
	c, err := Load()
	require.NoError(t, err, "embedded catalog data should pass schema validation")
	require.NotNil(t, c)
}

func TestRoles_OrderAndContent(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	roles := c.Roles()
	assert.Equal(t, []string{
		"Software Engineer",
		"Backend Developer",
		"Data Scientist",
		"Fullstack Developer",
		"AI Engineer",
	}, roles)
}

func TestRequirements_KnownRole(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	role := c.Requirements("Backend Developer")
	assert.Equal(t, "Backend Developer", role.RoleName)
	assert.Equal(t, []string{
		"Java", "Spring Boot", "SQL", "Git", "Data Structures", "REST APIs", "Microservices",
	}, role.RequiredSkills)
	assert.NotEmpty(t, role.ExperienceBand)
}

func TestRequirements_CaseInsensitive(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	role := c.Requirements("data scientist")
	assert.Equal(t, "Data Scientist", role.RoleName)
}

func TestRequirements_UnknownRoleFallsBackToDefault(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	tests := []string{"Quantum Engineer", "", "   "}
	for _, roleName := range tests {
		role := c.Requirements(roleName)
		assert.Equal(t, DefaultRole, role.RoleName, "unknown role %q should fall back", roleName)
	}
}

func TestRequirements_SkillsAreNormalized(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, name := range c.Roles() {
		role := c.Requirements(name)
		for _, skill := range role.RequiredSkills {
			assert.NotEmpty(t, skill)
		}
	}

	// Spot-check canonical spellings survive the load path.
	se := c.Requirements("Software Engineer")
	assert.Contains(t, se.RequiredSkills, "SQL")
	assert.Contains(t, se.RequiredSkills, "Data Structures")
}

func TestTerms_AllCategoriesPopulated(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, category := range types.SkillCategories {
		assert.NotEmpty(t, c.Terms(category), "category %s should have terms", category)
	}
}

func TestSkillCategory(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	tests := []struct {
		token    string
		expected string
	}{
		{"Python", types.CategoryLanguages},
		{"python", types.CategoryLanguages},
		{"React", types.CategoryWeb},
		{"Spring Boot", types.CategoryWeb},
		{"SQL", types.CategoryDatabases},
		{"Machine Learning", types.CategoryAIML},
		{"Data Structures", types.CategoryCoreCS},
		{"Microservices", types.CategoryCoreCS},
		{"Git", types.CategoryTools},
		{"Underwater Basket Weaving", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, c.SkillCategory(tt.token), "category for %q", tt.token)
	}
}
