package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-navigator/internal/observability"
	"github.com/jonathan/career-navigator/internal/pipeline"
	"github.com/jonathan/career-navigator/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a profile and resume against a target role",
	Long:  "Analyze a GitHub profile and/or resume PDF against a target role, report the skill gap, and generate a 7-day learning roadmap.",
	RunE:  runAnalyze,
}

var (
	analyzeIdentifier string
	analyzeResumePath string
	analyzeRole       string
	analyzeHours      int
	analyzeLevel      string
	analyzeConfigPath string
	analyzeJSON       bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeIdentifier, "github", "g", "", "GitHub username to summarize")
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to resume PDF")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target role (see 'roles' command; defaults to Software Engineer)")
	analyzeCmd.Flags().IntVar(&analyzeHours, "hours", 2, "Available study hours per day (1-4)")
	analyzeCmd.Flags().StringVar(&analyzeLevel, "level", types.LevelBeginner, "Experience level (Beginner or Intermediate)")
	analyzeCmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full result as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print profile and resume summaries as well")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeHours < 1 || analyzeHours > 4 {
		return fmt.Errorf("--hours must be between 1 and 4")
	}
	if analyzeLevel != types.LevelBeginner && analyzeLevel != types.LevelIntermediate {
		return fmt.Errorf("--level must be %s or %s", types.LevelBeginner, types.LevelIntermediate)
	}

	cfg, err := loadConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if analyzeVerbose {
		cfg.Verbose = true
	}

	var document []byte
	if analyzeResumePath != "" {
		document, err = os.ReadFile(analyzeResumePath)
		if err != nil {
			return fmt.Errorf("failed to read resume %s: %w", analyzeResumePath, err)
		}
	}

	p, _, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	result, err := p.Run(context.Background(), pipeline.Options{
		Identifier:  analyzeIdentifier,
		Document:    document,
		Role:        analyzeRole,
		HoursPerDay: analyzeHours,
		Level:       analyzeLevel,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if result.ProfileNotFound {
		fmt.Fprintf(os.Stderr, "Warning: GitHub profile %q not found; continuing without it\n", analyzeIdentifier)
	}

	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintProfileSummary(result.Profile)
		printer.PrintDocumentSummary(result.Document)
	}
	printer.PrintGapReport(result.Requirement.RoleName, result.Gap)
	printer.PrintRoadmap(result.Roadmap)

	return nil
}
