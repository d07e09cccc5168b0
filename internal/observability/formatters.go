// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/career-navigator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfileSummary outputs a human-readable view of the profile summary.
func (p *Printer) PrintProfileSummary(summary *types.ProfileSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Identifier:  %s\n", summary.Identifier))
	sb.WriteString(fmt.Sprintf("Repos:       %d\n", summary.RepositoryCount))
	sb.WriteString(fmt.Sprintf("Experience:  %s\n", summary.ExperienceTier))
	sb.WriteString(fmt.Sprintf("Activity:    %s\n", summary.ActivityTier))

	if len(summary.LanguageDistribution) > 0 {
		sb.WriteString("\nTop Languages:\n")
		languages := make([]string, 0, len(summary.LanguageDistribution))
		for lang := range summary.LanguageDistribution {
			languages = append(languages, lang)
		}
		// Highest percentage first, name as tiebreak, for stable output.
		sort.Slice(languages, func(i, j int) bool {
			pi, pj := summary.LanguageDistribution[languages[i]], summary.LanguageDistribution[languages[j]]
			if pi != pj {
				return pi > pj
			}
			return languages[i] < languages[j]
		})
		for _, lang := range languages {
			sb.WriteString(fmt.Sprintf("  • %s (%d%%)\n", lang, summary.LanguageDistribution[lang]))
		}
	}

	if len(summary.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(summary.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", summary.Skills[i]))
		}
		if len(summary.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.Skills)-maxItemsToShow))
		}
	}

	if summary.Source == types.SourceFallback {
		sb.WriteString("\n(canned fallback data)\n")
	}

	p.printBox("PROFILE SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocumentSummary outputs a human-readable view of the document summary.
func (p *Printer) PrintDocumentSummary(summary *types.DocumentSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:        %s\n", summary.DisplayName))
	if summary.Education.Degree != "" {
		sb.WriteString(fmt.Sprintf("Degree:      %s\n", summary.Education.Degree))
	}
	if summary.Education.Institution != "" {
		sb.WriteString(fmt.Sprintf("Institution: %s\n", summary.Education.Institution))
	}
	if summary.Education.GPA > 0 {
		sb.WriteString(fmt.Sprintf("CGPA:        %.1f\n", summary.Education.GPA))
	}

	for _, category := range types.SkillCategories {
		skills := summary.SkillsByCategory[category]
		if len(skills) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", category))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(skills, ", ")))
	}

	if len(summary.Projects) > 0 {
		sb.WriteString("\nProjects:\n")
		for _, project := range summary.Projects {
			sb.WriteString(fmt.Sprintf("  • %s\n", project.Title))
		}
	}

	if summary.Source == types.SourceFallback {
		sb.WriteString("\n(canned fallback data)\n")
	}

	p.printBox("DOCUMENT SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapReport outputs the gap analysis against the target role.
func (p *Printer) PrintGapReport(role string, report types.GapReport) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target Role: %s\n", role))
	sb.WriteString(fmt.Sprintf("Match Score: %.1f%%\n", report.MatchScore))

	if len(report.MissingSkills) > 0 {
		sb.WriteString("\nMissing Skills:\n")
		for _, skill := range report.MissingSkills {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
	}
	if len(report.PartialSkills) > 0 {
		sb.WriteString("\nPartial (interest only):\n")
		for _, skill := range report.PartialSkills {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
	}
	if len(report.MissingSkills) == 0 && len(report.PartialSkills) == 0 {
		sb.WriteString("\nNo gaps found.\n")
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs the full weekly plan, one box per day.
func (p *Printer) PrintRoadmap(plan types.RoadmapPlan) {
	for _, day := range plan.Days {
		var sb strings.Builder
		for _, objective := range day.Objectives {
			sb.WriteString(fmt.Sprintf("• %s\n", objective))
		}
		if len(day.Resources) > 0 {
			sb.WriteString("\nResources:\n")
			for _, resource := range day.Resources {
				sb.WriteString(fmt.Sprintf("  - %s\n", resource))
			}
		}
		sb.WriteString(fmt.Sprintf("\nCheckpoint: %s", day.Checkpoint))

		p.printBox(fmt.Sprintf("DAY %d", day.DayIndex), sb.String())
	}
}

// PrintRoles outputs the selectable target roles.
func (p *Printer) PrintRoles(roles []string) {
	var sb strings.Builder
	for _, role := range roles {
		sb.WriteString(fmt.Sprintf("• %s\n", role))
	}
	p.printBox("TARGET ROLES", strings.TrimSuffix(sb.String(), "\n"))
}
