// Package types provides type definitions for structured data used throughout the career-navigator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Data source provenance values. A fallback summary is structurally
// indistinguishable from a live one, so the source field is the only
// way for a caller to tell fetched data from canned data.
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// Experience tiers inferred from public repository count.
const (
	ExperienceBeginner             = "beginner"
	ExperienceBeginnerIntermediate = "beginner-intermediate"
	ExperienceIntermediateAdvanced = "intermediate-advanced"
)

// Activity tiers inferred from public repository count.
const (
	ActivityModerate   = "moderate"
	ActivityConsistent = "consistent"
)

// ProfileSummary represents a normalized skill summary built from a public
// code-hosting profile.
type ProfileSummary struct {
	Identifier      string `json:"identifier"`
	RepositoryCount int    `json:"repository_count"`
	ExperienceTier  string `json:"experience_tier"`
	// LanguageDistribution maps language name to an integer percentage of
	// the top languages by repository count. Percentages sum to at most 100.
	LanguageDistribution map[string]int `json:"language_distribution"`
	Skills               []string       `json:"skills"`
	ActivityTier         string         `json:"activity_tier"`
	Source               string         `json:"source"`
}

// ExperienceTierFor maps a public repository count to an experience tier.
func ExperienceTierFor(repoCount int) string {
	switch {
	case repoCount >= 20:
		return ExperienceIntermediateAdvanced
	case repoCount >= 10:
		return ExperienceBeginnerIntermediate
	default:
		return ExperienceBeginner
	}
}

// ActivityTierFor maps a public repository count to an activity tier.
func ActivityTierFor(repoCount int) string {
	if repoCount >= 5 {
		return ActivityConsistent
	}
	return ActivityModerate
}
