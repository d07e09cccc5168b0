package resume

import "github.com/jonathan/career-navigator/internal/types"

// FallbackSummary is the deterministic offline summary used whenever text
// extraction fails. Same shape as a live summary; Source is the only marker.
func FallbackSummary() *types.DocumentSummary {
	return &types.DocumentSummary{
		DisplayName: "CS Student",
		Education: types.Education{
			Degree:      "B.Tech Computer Science (AI & ML)",
			Institution: "Bengaluru Engineering College",
			CohortLabel: "1st Year",
			GPA:         8.2,
		},
		SkillsByCategory: map[string][]string{
			types.CategoryLanguages: {"Java", "C", "Python"},
			types.CategoryWeb:       {"HTML", "CSS", "JavaScript"},
			types.CategoryDatabases: nil,
			types.CategoryAIML:      nil,
			types.CategoryCoreCS:    {"Data Structures", "Algorithms", "DBMS", "Operating Systems"},
			types.CategoryTools:     {"Git", "VS Code"},
		},
		Projects: []types.Project{
			{
				Title:        "Page Replacement Algorithm Simulator",
				Technologies: []string{"Python"},
				Category:     "Operating Systems Mini Project",
			},
			{
				Title:        "Boutique Management DBMS System",
				Technologies: []string{"SQL", "ER Diagram", "MySQL"},
				Category:     "Database Mini Project",
			},
			{
				Title:        "Career Navigator Hackathon Prototype",
				Technologies: []string{"Python", "Streamlit"},
				Category:     "Hackathon Project",
			},
		},
		Interests: []string{
			"AI/ML",
			"Backend Development",
			"Problem Solving",
			"Hackathons",
		},
		Strengths: []string{
			"Quick Learner",
			"Strong Logical Thinking",
			"Team Collaboration",
		},
		Source: types.SourceFallback,
	}
}
