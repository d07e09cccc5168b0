// Package gap computes the difference between a known skill set and a
// role's requirements.
package gap

import (
	"sort"

	"github.com/jonathan/career-navigator/internal/parsing"
	"github.com/jonathan/career-navigator/internal/types"
)

// Analyze compares known skills against a role requirement.
//
// Pure function: no side effects, no external calls, deterministic for fixed
// inputs. Required skills present in the technical set count toward the
// match score; skills present only as soft signals are partial; the rest are
// missing. An empty requirement set is vacuously satisfied (score 100).
func Analyze(known types.SkillSet, role types.RoleRequirement) types.GapReport {
	required := parsing.NormalizeSkillList(role.RequiredSkills)

	matched := 0
	missing := make([]string, 0, len(required))
	partial := make([]string, 0)

	for _, skill := range required {
		switch {
		case known.Technical[skill]:
			matched++
		case known.Soft[skill]:
			partial = append(partial, skill)
		default:
			missing = append(missing, skill)
		}
	}

	score := 100.0
	if len(required) > 0 {
		score = 100 * float64(matched) / float64(len(required))
	}

	sort.Strings(missing)
	sort.Strings(partial)

	return types.GapReport{
		MissingSkills: missing,
		PartialSkills: partial,
		MatchScore:    score,
	}
}
