package types

// RoleRequirement represents the skill requirements for a target role.
// Entries are loaded once from the catalog at startup and never mutated.
type RoleRequirement struct {
	RoleName         string   `json:"role"`
	RequiredSkills   []string `json:"required_skills"`
	NiceToHaveSkills []string `json:"nice_to_have_skills"`
	ExperienceBand   string   `json:"experience_band"`
}
