package roadmap

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-navigator/internal/catalog"
	"github.com/jonathan/career-navigator/internal/types"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return NewGenerator(c.SkillCategory)
}

func TestGenerate_AlwaysSevenDays(t *testing.T) {
	g := newTestGenerator(t)

	manySkills := make([]string, 50)
	for i := range manySkills {
		manySkills[i] = fmt.Sprintf("Skill %d", i)
	}

	tests := []struct {
		name string
		gaps types.GapReport
	}{
		{"no gaps at all", types.GapReport{}},
		{"one missing skill", types.GapReport{MissingSkills: []string{"SQL"}}},
		{"fifty missing skills", types.GapReport{MissingSkills: manySkills}},
		{"only partial skills", types.GapReport{PartialSkills: []string{"Machine Learning"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for hours := 1; hours <= 4; hours++ {
				plan := g.Generate(tt.gaps, hours, types.LevelBeginner)
				require.Len(t, plan.Days, types.PlanDays)
				for i, day := range plan.Days {
					assert.Equal(t, i+1, day.DayIndex)
					assert.NotEmpty(t, day.Objectives, "day %d should have objectives", i+1)
					assert.NotEmpty(t, day.Checkpoint, "day %d should have a checkpoint", i+1)
				}
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	g := newTestGenerator(t)
	gaps := types.GapReport{
		MissingSkills: []string{"Java", "Spring Boot", "Microservices", "Docker"},
		PartialSkills: []string{"Machine Learning"},
	}

	first := g.Generate(gaps, 2, types.LevelIntermediate)
	second := g.Generate(gaps, 2, types.LevelIntermediate)
	assert.Equal(t, first, second)
}

func TestGenerate_FoundationalSkillsFirst(t *testing.T) {
	g := newTestGenerator(t)
	// Alphabetical input order; priority order should be Java (language),
	// Data Structures (core CS), SQL (database), Spring Boot (web framework),
	// Docker (tool).
	gaps := types.GapReport{
		MissingSkills: []string{"Data Structures", "Docker", "Java", "SQL", "Spring Boot"},
	}

	plan := g.Generate(gaps, 1, types.LevelIntermediate)

	var firstSkillDay []string
	for _, day := range plan.Days {
		for _, objective := range day.Objectives {
			if strings.HasPrefix(objective, "Learn the fundamentals of ") {
				skill := strings.TrimPrefix(objective, "Learn the fundamentals of ")
				skill = strings.TrimSuffix(skill, " and complete one guided exercise")
				firstSkillDay = append(firstSkillDay, skill)
			}
		}
	}

	assert.Equal(t, []string{"Java", "Data Structures", "SQL", "Spring Boot", "Docker"}, firstSkillDay)
}

func TestGenerate_MoreHoursMeanMoreObjectivesPerDay(t *testing.T) {
	g := newTestGenerator(t)
	gaps := types.GapReport{
		MissingSkills: []string{"Java", "SQL", "Git", "Docker", "React", "Pandas"},
	}

	slow := g.Generate(gaps, 1, types.LevelIntermediate)
	fast := g.Generate(gaps, 4, types.LevelIntermediate)

	assert.Len(t, slow.Days[0].Objectives, 1)
	assert.Len(t, fast.Days[0].Objectives, 4)
}

func TestGenerate_BeginnerGetsEarlyReviewDay(t *testing.T) {
	g := newTestGenerator(t)
	gaps := types.GapReport{MissingSkills: []string{"Java", "SQL", "Docker"}}

	plan := g.Generate(gaps, 1, types.LevelBeginner)

	require.Len(t, plan.Days, types.PlanDays)
	assert.Contains(t, plan.Days[1].Objectives[0], "Review yesterday's material")
}

func TestGenerate_IntermediateSkipsReviewAndAddsProjectCheckpoint(t *testing.T) {
	g := newTestGenerator(t)
	gaps := types.GapReport{MissingSkills: []string{"Java", "SQL", "Docker"}}

	plan := g.Generate(gaps, 1, types.LevelIntermediate)

	for _, day := range plan.Days {
		for _, objective := range day.Objectives {
			assert.NotContains(t, objective, "Review yesterday's material")
		}
	}
	assert.Equal(t, "Ship a small practice project combining this week's skills", plan.Days[4].Checkpoint)
}

func TestGenerate_OverflowCompressedIntoFinalDay(t *testing.T) {
	g := newTestGenerator(t)
	manySkills := make([]string, 50)
	for i := range manySkills {
		manySkills[i] = fmt.Sprintf("Skill %02d", i)
	}

	plan := g.Generate(types.GapReport{MissingSkills: manySkills}, 4, types.LevelIntermediate)

	require.Len(t, plan.Days, types.PlanDays)
	lastDay := plan.Days[types.PlanDays-1]
	assert.Contains(t, lastDay.Objectives[len(lastDay.Objectives)-1], "Continue after this week with: ")
}

func TestGenerate_NoMissingUsesPartialReinforcement(t *testing.T) {
	g := newTestGenerator(t)
	gaps := types.GapReport{PartialSkills: []string{"Machine Learning", "Statistics"}}

	plan := g.Generate(gaps, 2, types.LevelIntermediate)

	for _, day := range plan.Days {
		assert.Contains(t, day.Objectives[0], "Strengthen ")
	}
}

func TestGenerate_EmptyGapsYieldGenericPlan(t *testing.T) {
	g := newTestGenerator(t)

	plan := g.Generate(types.GapReport{}, 2, types.LevelBeginner)

	require.Len(t, plan.Days, types.PlanDays)
	// All seven generic days are distinct maintenance activities.
	seen := make(map[string]bool)
	for _, day := range plan.Days {
		seen[day.Objectives[0]] = true
	}
	assert.Len(t, seen, types.PlanDays)
}

func TestGenerate_HoursClampedToValidRange(t *testing.T) {
	g := newTestGenerator(t)
	gaps := types.GapReport{MissingSkills: []string{"Java", "SQL"}}

	low := g.Generate(gaps, 0, types.LevelIntermediate)
	high := g.Generate(gaps, 99, types.LevelIntermediate)

	assert.Len(t, low.Days[0].Objectives, 1)
	assert.Len(t, high.Days[0].Objectives, 2)
}

func TestNewGenerator_NilClassifier(t *testing.T) {
	g := NewGenerator(nil)

	plan := g.Generate(types.GapReport{MissingSkills: []string{"Java", "SQL"}}, 1, types.LevelBeginner)
	require.Len(t, plan.Days, types.PlanDays)
}
