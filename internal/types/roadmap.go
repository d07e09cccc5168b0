package types

// PlanDays is the fixed length of every roadmap: plans always span exactly
// seven days regardless of how many gaps feed into them.
const PlanDays = 7

// Learner levels accepted by the roadmap generator.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
)

// DayPlan is one day of a learning roadmap.
type DayPlan struct {
	DayIndex   int      `json:"day_index"`
	Objectives []string `json:"objectives"`
	Resources  []string `json:"resources"`
	Checkpoint string   `json:"checkpoint"`
}

// RoadmapPlan is an ordered 7-day learning plan derived from a GapReport.
type RoadmapPlan struct {
	Days []DayPlan `json:"days"`
}
