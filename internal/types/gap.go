package types

// GapReport is the result of comparing a known skill set against a role's
// requirements. It is recomputed for every analysis request and never cached.
type GapReport struct {
	// MissingSkills are required skills absent from the known set entirely.
	MissingSkills []string `json:"missing_skills"`
	// PartialSkills are required skills present only as soft signals
	// (interests or strengths), counted as partially met.
	PartialSkills []string `json:"partial_skills"`
	// MatchScore is the percentage of required skills fully present,
	// in [0,100]. An empty requirement set scores 100.
	MatchScore float64 `json:"match_score"`
}
