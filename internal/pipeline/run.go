// Package pipeline orchestrates the end-to-end analysis flow: summarize the
// profile and document, merge the skill evidence, compare against the target
// role, and generate the weekly plan.
package pipeline

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-navigator/internal/catalog"
	"github.com/jonathan/career-navigator/internal/gap"
	"github.com/jonathan/career-navigator/internal/github"
	"github.com/jonathan/career-navigator/internal/parsing"
	"github.com/jonathan/career-navigator/internal/roadmap"
	"github.com/jonathan/career-navigator/internal/types"
)

// branchTimeout bounds each ingestion branch independently so one slow
// source cannot hold up the other.
const branchTimeout = 10 * time.Second

// ProfileSummarizer summarizes a public code-hosting profile.
type ProfileSummarizer interface {
	Summarize(ctx context.Context, identifier string) (*types.ProfileSummary, error)
}

// DocumentExtractor summarizes an uploaded document.
type DocumentExtractor interface {
	Extract(document []byte) *types.DocumentSummary
}

// Options are the inputs to a single analysis run. Identifier and Document
// may each be empty; an analysis with neither still produces a full-gap
// report and plan for the requested role.
type Options struct {
	Identifier  string
	Document    []byte
	Role        string
	HoursPerDay int
	Level       string
}

// Result bundles everything one analysis run produced.
type Result struct {
	Profile         *types.ProfileSummary
	ProfileNotFound bool
	Document        *types.DocumentSummary
	Requirement     types.RoleRequirement
	Gap             types.GapReport
	Roadmap         types.RoadmapPlan
}

// Pipeline wires the ingestion, analysis, and planning stages together.
type Pipeline struct {
	summarizer ProfileSummarizer
	extractor  DocumentExtractor
	catalog    *catalog.Catalog
	generator  *roadmap.Generator
}

// New creates a pipeline over the given stages and catalog.
func New(summarizer ProfileSummarizer, extractor DocumentExtractor, c *catalog.Catalog) *Pipeline {
	return &Pipeline{
		summarizer: summarizer,
		extractor:  extractor,
		catalog:    c,
		generator:  roadmap.NewGenerator(c.SkillCategory),
	}
}

// Run executes one full analysis.
//
// The two ingestion branches run concurrently, each under its own timeout.
// A profile identifier that does not exist is reported via
// Result.ProfileNotFound rather than an error; the analysis still completes
// using whatever evidence remains.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		branchCtx, cancel := context.WithTimeout(groupCtx, branchTimeout)
		defer cancel()

		profile, err := p.summarizer.Summarize(branchCtx, opts.Identifier)
		if errors.Is(err, github.ErrProfileNotFound) {
			result.ProfileNotFound = true
			return nil
		}
		if err != nil {
			return err
		}
		result.Profile = profile
		return nil
	})

	group.Go(func() error {
		result.Document = p.extractor.Extract(opts.Document)
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	known := mergeEvidence(result.Profile, result.Document)
	result.Requirement = p.catalog.Requirements(opts.Role)
	result.Gap = gap.Analyze(known, result.Requirement)
	result.Roadmap = p.generator.Generate(result.Gap, opts.HoursPerDay, opts.Level)

	return result, nil
}

// mergeEvidence folds both summaries into one normalized skill set.
// Profile skills and document technical skills are strong evidence;
// interests and strengths only count as soft signals.
func mergeEvidence(profile *types.ProfileSummary, document *types.DocumentSummary) types.SkillSet {
	known := types.NewSkillSet()

	if profile != nil {
		for _, skill := range profile.Skills {
			known.AddTechnical(parsing.NormalizeSkillName(skill))
		}
	}
	for _, skill := range document.TechnicalSkills() {
		known.AddTechnical(parsing.NormalizeSkillName(skill))
	}
	for _, signal := range document.SoftSignals() {
		known.AddSoft(parsing.NormalizeSkillName(signal))
	}

	return known
}
