package github

import "github.com/jonathan/career-navigator/internal/types"

// FallbackSummary is the deterministic offline summary used whenever the
// provider is unreachable or misbehaves. It has the same shape as a live
// summary; only the Source field and the diagnostic log line distinguish it.
func FallbackSummary(identifier string) *types.ProfileSummary {
	return &types.ProfileSummary{
		Identifier:      identifier,
		RepositoryCount: 8,
		ExperienceTier:  types.ExperienceBeginnerIntermediate,
		LanguageDistribution: map[string]int{
			"Java":       35,
			"C":          25,
			"Python":     20,
			"JavaScript": 20,
		},
		Skills: []string{
			"Java",
			"C",
			"Python",
			"HTML",
			"CSS",
			"Data Structures",
			"Git",
			"Algorithms",
		},
		ActivityTier: types.ActivityConsistent,
		Source:       types.SourceFallback,
	}
}
