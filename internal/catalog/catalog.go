// Package catalog provides the static job catalog and keyword tables.
//
// Both data sets are versioned JSON embedded at compile time and validated
// against their JSON Schemas at load. The catalog is loaded once at process
// start and is immutable afterwards; consumers receive it by injection
// rather than reading ambient global state.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/career-navigator/internal/parsing"
	"github.com/jonathan/career-navigator/internal/types"
)

//go:embed data/*.json schema/*.json
var catalogFiles embed.FS

// DefaultRole is the role every unrecognized role name falls back to.
// The shell offers a fixed closed set of roles, so an unknown name is a
// caller bug and should degrade rather than fail.
const DefaultRole = "Software Engineer"

// roleCatalogFile mirrors data/roles.json.
type roleCatalogFile struct {
	Version     int                    `json:"version"`
	DefaultRole string                 `json:"default_role"`
	Roles       []types.RoleRequirement `json:"roles"`
}

// keywordTablesFile mirrors data/keywords.json.
type keywordTablesFile struct {
	Version    int                 `json:"version"`
	Categories map[string][]string `json:"categories"`
}

// Catalog holds the loaded role requirements and keyword tables.
type Catalog struct {
	defaultRole     string
	roleOrder       []string
	roles           map[string]types.RoleRequirement
	keywords        map[string][]string
	categoryByToken map[string]string
}

// Load parses, validates, and indexes the embedded catalog data.
func Load() (*Catalog, error) {
	rolesData, err := readValidated("data/roles.json", "schema/roles.schema.json")
	if err != nil {
		return nil, err
	}
	keywordsData, err := readValidated("data/keywords.json", "schema/keywords.schema.json")
	if err != nil {
		return nil, err
	}

	var roleFile roleCatalogFile
	if err := json.Unmarshal(rolesData, &roleFile); err != nil {
		return nil, fmt.Errorf("failed to parse role catalog: %w", err)
	}
	var keywordFile keywordTablesFile
	if err := json.Unmarshal(keywordsData, &keywordFile); err != nil {
		return nil, fmt.Errorf("failed to parse keyword tables: %w", err)
	}

	c := &Catalog{
		defaultRole:     roleFile.DefaultRole,
		roles:           make(map[string]types.RoleRequirement, len(roleFile.Roles)),
		keywords:        keywordFile.Categories,
		categoryByToken: make(map[string]string),
	}

	for _, role := range roleFile.Roles {
		role.RequiredSkills = parsing.NormalizeSkillList(role.RequiredSkills)
		role.NiceToHaveSkills = parsing.NormalizeSkillList(role.NiceToHaveSkills)
		key := strings.ToLower(role.RoleName)
		if _, exists := c.roles[key]; exists {
			return nil, fmt.Errorf("duplicate role %q in catalog", role.RoleName)
		}
		c.roles[key] = role
		c.roleOrder = append(c.roleOrder, role.RoleName)
	}

	if _, ok := c.roles[strings.ToLower(c.defaultRole)]; !ok {
		return nil, fmt.Errorf("default role %q has no catalog entry", c.defaultRole)
	}

	// Index category by normalized token; category order fixes ties when a
	// term appears in more than one table.
	for _, category := range types.SkillCategories {
		for _, term := range c.keywords[category] {
			token := parsing.NormalizeSkillName(term)
			if _, exists := c.categoryByToken[token]; !exists {
				c.categoryByToken[token] = category
			}
		}
	}

	return c, nil
}

// readValidated reads an embedded data file and validates it against an
// embedded JSON Schema before returning its bytes.
func readValidated(dataPath, schemaPath string) ([]byte, error) {
	data, err := catalogFiles.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", dataPath, err)
	}
	schema, err := catalogFiles.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", schemaPath, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate %s: %w", dataPath, err)
	}
	if !result.Valid() {
		var sb strings.Builder
		for _, desc := range result.Errors() {
			sb.WriteString(fmt.Sprintf("\n  - %s", desc))
		}
		return nil, fmt.Errorf("%s failed schema validation:%s", dataPath, sb.String())
	}

	return data, nil
}

// Requirements returns the catalog entry for the given role name
// (case-insensitive). Unrecognized names fall back to the default role.
func (c *Catalog) Requirements(roleName string) types.RoleRequirement {
	if role, ok := c.roles[strings.ToLower(strings.TrimSpace(roleName))]; ok {
		return role
	}
	return c.roles[strings.ToLower(c.defaultRole)]
}

// Roles returns role names in catalog order, for populating selection inputs.
func (c *Catalog) Roles() []string {
	roles := make([]string, len(c.roleOrder))
	copy(roles, c.roleOrder)
	return roles
}

// Terms returns the raw (lowercase) keyword terms for a category.
func (c *Catalog) Terms(category string) []string {
	terms := make([]string, len(c.keywords[category]))
	copy(terms, c.keywords[category])
	return terms
}

// SkillCategory returns the category of a normalized skill token, or the
// empty string when the token appears in no keyword table.
func (c *Catalog) SkillCategory(token string) string {
	return c.categoryByToken[parsing.NormalizeSkillName(token)]
}
