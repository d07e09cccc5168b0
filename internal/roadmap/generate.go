// Package roadmap turns a gap report into an ordered 7-day learning plan.
//
// Generation is fully deterministic: learners re-running the same inputs
// expect the same plan, so there is no randomness anywhere in this package.
package roadmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-navigator/internal/types"
)

const unknownPriority = 6

// categoryPriority orders skill categories foundational-first: languages
// and core CS before databases and frameworks, tools last.
var categoryPriority = map[string]int{
	types.CategoryLanguages: 0,
	types.CategoryCoreCS:    1,
	types.CategoryDatabases: 2,
	types.CategoryWeb:       3,
	types.CategoryAIML:      4,
	types.CategoryTools:     5,
}

// resourcesByCategory maps a skill category to recommended starting points.
var resourcesByCategory = map[string][]string{
	types.CategoryLanguages: {"Official language tutorial", "Exercism practice track"},
	types.CategoryCoreCS:    {"CS50 lectures", "NeetCode practice roadmap"},
	types.CategoryDatabases: {"SQLBolt interactive lessons", "Database course notes"},
	types.CategoryWeb:       {"MDN Web Docs", "roadmap.sh developer guides"},
	types.CategoryAIML:      {"Kaggle Learn micro-courses", "fast.ai practical course"},
	types.CategoryTools:     {"Official docs quickstart", "Hands-on playground lab"},
}

var defaultResources = []string{"Official documentation", "A hands-on tutorial"}

// genericDays is the canned "maintain current skills" content used when the
// week outlasts the gap list.
var genericDays = []types.DayPlan{
	{Objectives: []string{"Review fundamentals of your strongest language"}, Resources: []string{"Your past project code", "Official language tutorial"}, Checkpoint: "Explain one core concept from memory"},
	{Objectives: []string{"Solve three practice problems"}, Resources: []string{"NeetCode practice roadmap"}, Checkpoint: "All three problems pass their test cases"},
	{Objectives: []string{"Build a small feature in a personal project"}, Resources: []string{"Your project backlog"}, Checkpoint: "Feature committed with a clear message"},
	{Objectives: []string{"Read documentation for a tool you use daily"}, Resources: []string{"Official docs quickstart"}, Checkpoint: "Write down two things you did not know"},
	{Objectives: []string{"Contribute to an open-source issue or discussion"}, Resources: []string{"GitHub good-first-issue listings"}, Checkpoint: "One comment or pull request submitted"},
	{Objectives: []string{"Practice explaining a past project out loud"}, Resources: []string{"Your résumé"}, Checkpoint: "Two-minute summary without notes"},
	{Objectives: []string{"Review the week and plan the next one"}, Resources: []string{"Your notes from this week"}, Checkpoint: "Next week's goals written down"},
}

// Generator builds roadmap plans. The category function classifies a skill
// token into one of the keyword-table categories; it is injected so the
// generator stays independent of the catalog.
type Generator struct {
	category func(token string) string
}

// NewGenerator creates a generator using the given category classifier.
// A nil classifier treats every skill as uncategorized.
func NewGenerator(category func(token string) string) *Generator {
	return &Generator{category: category}
}

// Generate produces a plan of exactly 7 days from the gap report.
//
// Missing skills are ordered foundational-first and spread across the week
// proportional to the daily time budget; leftover days reinforce partial
// skills or fall back to generic practice. More gaps than the week can hold
// are compressed into the final day.
func (g *Generator) Generate(gaps types.GapReport, hoursPerDay int, level string) types.RoadmapPlan {
	if hoursPerDay < 1 {
		hoursPerDay = 1
	}
	if hoursPerDay > 4 {
		hoursPerDay = 4
	}
	if level != types.LevelIntermediate {
		level = types.LevelBeginner
	}

	missing := g.orderByPriority(gaps.MissingSkills)
	partial := append([]string(nil), gaps.PartialSkills...)

	days := make([]types.DayPlan, 0, types.PlanDays)
	next := 0
	partialNext := 0

	for dayIndex := 1; dayIndex <= types.PlanDays; dayIndex++ {
		switch {
		case level == types.LevelBeginner && dayIndex == 2 && next > 0:
			// Beginners get an early foundational-review day before new
			// material piles up.
			days = append(days, g.reviewDay(dayIndex, missing[:next]))
		case next < len(missing):
			count := min(hoursPerDay, len(missing)-next)
			batch := missing[next : next+count]
			next += count
			day := g.learningDay(dayIndex, batch)
			if dayIndex == types.PlanDays && next < len(missing) {
				// The week is full: compress the remaining gaps into a
				// single continuation objective rather than dropping them.
				day.Objectives = append(day.Objectives,
					"Continue after this week with: "+strings.Join(missing[next:], ", "))
			}
			days = append(days, day)
		case partialNext < len(partial):
			count := min(hoursPerDay, len(partial)-partialNext)
			days = append(days, g.reinforcementDay(dayIndex, partial[partialNext:partialNext+count]))
			partialNext += count
			if partialNext >= len(partial) {
				partialNext = 0 // cycle so every leftover day has content
			}
		default:
			generic := genericDays[(dayIndex-1)%len(genericDays)]
			generic.DayIndex = dayIndex
			days = append(days, generic)
		}
	}

	if level == types.LevelIntermediate {
		// Practice-project checkpoint lands by day 5.
		days[4].Checkpoint = "Ship a small practice project combining this week's skills"
	}

	return types.RoadmapPlan{Days: days}
}

// orderByPriority sorts skills foundational-first. The sort is stable, so
// skills within a category keep their incoming (alphabetical) order and the
// result is deterministic.
func (g *Generator) orderByPriority(skills []string) []string {
	ordered := append([]string(nil), skills...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return g.priority(ordered[i]) < g.priority(ordered[j])
	})
	return ordered
}

func (g *Generator) priority(skill string) int {
	if g.category == nil {
		return unknownPriority
	}
	if p, ok := categoryPriority[g.category(skill)]; ok {
		return p
	}
	return unknownPriority
}

// resourcesFor aggregates the resource suggestions for a batch of skills,
// deduplicated in first-seen order.
func (g *Generator) resourcesFor(skills []string) []string {
	var resources []string
	seen := make(map[string]bool)
	for _, skill := range skills {
		suggested := defaultResources
		if g.category != nil {
			if categoryResources, ok := resourcesByCategory[g.category(skill)]; ok {
				suggested = categoryResources
			}
		}
		for _, resource := range suggested {
			if !seen[resource] {
				seen[resource] = true
				resources = append(resources, resource)
			}
		}
	}
	return resources
}

func (g *Generator) learningDay(dayIndex int, skills []string) types.DayPlan {
	objectives := make([]string, 0, len(skills))
	for _, skill := range skills {
		objectives = append(objectives, fmt.Sprintf("Learn the fundamentals of %s and complete one guided exercise", skill))
	}
	return types.DayPlan{
		DayIndex:   dayIndex,
		Objectives: objectives,
		Resources:  g.resourcesFor(skills),
		Checkpoint: "Explain " + strings.Join(skills, ", ") + " in your own words",
	}
}

func (g *Generator) reviewDay(dayIndex int, covered []string) types.DayPlan {
	return types.DayPlan{
		DayIndex: dayIndex,
		Objectives: []string{
			"Review yesterday's material: " + strings.Join(covered, ", "),
			"Redo one exercise per skill without looking at notes",
		},
		Resources:  g.resourcesFor(covered),
		Checkpoint: "Write a short summary of each reviewed concept",
	}
}

func (g *Generator) reinforcementDay(dayIndex int, skills []string) types.DayPlan {
	objectives := make([]string, 0, len(skills))
	for _, skill := range skills {
		objectives = append(objectives, fmt.Sprintf("Strengthen %s: move it from familiarity to working knowledge", skill))
	}
	return types.DayPlan{
		DayIndex:   dayIndex,
		Objectives: objectives,
		Resources:  g.resourcesFor(skills),
		Checkpoint: "Apply " + strings.Join(skills, ", ") + " in a small hands-on exercise",
	}
}
