package types

// SkillSet holds the union of a person's known skills, split by evidence
// strength. Technical skills come from repositories, categorized résumé
// skills, and project technologies; soft skills come from interests and
// strengths and only count as partial evidence.
//
// Keys are expected to be normalized skill tokens (see internal/parsing).
type SkillSet struct {
	Technical map[string]bool
	Soft      map[string]bool
}

// NewSkillSet returns an empty skill set ready for use.
func NewSkillSet() SkillSet {
	return SkillSet{
		Technical: make(map[string]bool),
		Soft:      make(map[string]bool),
	}
}

// AddTechnical records normalized tokens as technical skills.
func (s SkillSet) AddTechnical(tokens ...string) {
	for _, token := range tokens {
		if token != "" {
			s.Technical[token] = true
		}
	}
}

// AddSoft records normalized tokens as soft signals. A token already known
// as a technical skill is not duplicated into the soft set.
func (s SkillSet) AddSoft(tokens ...string) {
	for _, token := range tokens {
		if token != "" && !s.Technical[token] {
			s.Soft[token] = true
		}
	}
}

// Knows reports whether the token is present in either set.
func (s SkillSet) Knows(token string) bool {
	return s.Technical[token] || s.Soft[token]
}

// Len returns the total number of distinct known skills.
func (s SkillSet) Len() int {
	count := len(s.Technical)
	for token := range s.Soft {
		if !s.Technical[token] {
			count++
		}
	}
	return count
}
