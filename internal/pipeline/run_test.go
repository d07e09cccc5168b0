package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-navigator/internal/catalog"
	"github.com/jonathan/career-navigator/internal/github"
	"github.com/jonathan/career-navigator/internal/resume"
	"github.com/jonathan/career-navigator/internal/types"
)

type stubSummarizer struct {
	summary *types.ProfileSummary
	err     error
}

func (s *stubSummarizer) Summarize(_ context.Context, identifier string) (*types.ProfileSummary, error) {
	if identifier == "" {
		return nil, nil
	}
	return s.summary, s.err
}

type stubExtractor struct {
	summary *types.DocumentSummary
}

func (s *stubExtractor) Extract(document []byte) *types.DocumentSummary {
	if len(document) == 0 {
		return nil
	}
	return s.summary
}

func newTestPipeline(t *testing.T, summarizer ProfileSummarizer, extractor DocumentExtractor) *Pipeline {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return New(summarizer, extractor, c)
}

func TestRun_EmptyInputsStillProduceFullAnalysis(t *testing.T) {
	p := newTestPipeline(t, &stubSummarizer{}, &stubExtractor{})

	result, err := p.Run(context.Background(), Options{
		Role:        "Data Scientist",
		HoursPerDay: 2,
		Level:       types.LevelBeginner,
	})
	require.NoError(t, err)

	assert.Nil(t, result.Profile)
	assert.Nil(t, result.Document)
	assert.False(t, result.ProfileNotFound)
	assert.Equal(t, "Data Scientist", result.Requirement.RoleName)
	assert.Equal(t, []string{
		"Data Visualization", "Machine Learning", "Pandas", "Python", "SQL", "Statistics",
	}, result.Gap.MissingSkills)
	assert.Equal(t, 0.0, result.Gap.MatchScore)
	assert.Len(t, result.Roadmap.Days, types.PlanDays)
}

func TestRun_ProfileNotFoundCompletesWithoutProfile(t *testing.T) {
	p := newTestPipeline(t,
		&stubSummarizer{err: github.ErrProfileNotFound},
		&stubExtractor{summary: resume.FallbackSummary()},
	)

	result, err := p.Run(context.Background(), Options{
		Identifier:  "no-such-user",
		Document:    []byte("resume bytes"),
		Role:        "Software Engineer",
		HoursPerDay: 1,
		Level:       types.LevelBeginner,
	})
	require.NoError(t, err)

	assert.True(t, result.ProfileNotFound)
	assert.Nil(t, result.Profile)
	require.NotNil(t, result.Document)
	assert.Len(t, result.Roadmap.Days, types.PlanDays)
}

func TestRun_CombinedEvidenceReducesGap(t *testing.T) {
	profile := &types.ProfileSummary{
		Identifier: "dev",
		Skills:     []string{"Python", "Git", "Data Structures", "Algorithms"},
		Source:     types.SourceLive,
	}
	document := &types.DocumentSummary{
		SkillsByCategory: map[string][]string{
			types.CategoryDatabases: {"SQL"},
			types.CategoryCoreCS:    {"OOP"},
		},
		Source: types.SourceLive,
	}
	p := newTestPipeline(t, &stubSummarizer{summary: profile}, &stubExtractor{summary: document})

	result, err := p.Run(context.Background(), Options{
		Identifier:  "dev",
		Document:    []byte("resume bytes"),
		Role:        "Software Engineer",
		HoursPerDay: 2,
		Level:       types.LevelIntermediate,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Gap.MissingSkills)
	assert.Equal(t, 100.0, result.Gap.MatchScore)
	assert.Len(t, result.Roadmap.Days, types.PlanDays)
}

func TestRun_SoftSignalsBecomePartial(t *testing.T) {
	document := &types.DocumentSummary{
		SkillsByCategory: map[string][]string{
			types.CategoryLanguages: {"Python"},
		},
		Interests: []string{"Machine Learning"},
		Source:    types.SourceLive,
	}
	p := newTestPipeline(t, &stubSummarizer{}, &stubExtractor{summary: document})

	result, err := p.Run(context.Background(), Options{
		Document:    []byte("resume bytes"),
		Role:        "AI Engineer",
		HoursPerDay: 2,
		Level:       types.LevelBeginner,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Statistics", "TensorFlow"}, result.Gap.MissingSkills)
	assert.Equal(t, []string{"Machine Learning"}, result.Gap.PartialSkills)
}

func TestRun_UnknownRoleFallsBackToDefault(t *testing.T) {
	p := newTestPipeline(t, &stubSummarizer{}, &stubExtractor{})

	result, err := p.Run(context.Background(), Options{
		Role:        "Wizard",
		HoursPerDay: 2,
		Level:       types.LevelBeginner,
	})
	require.NoError(t, err)

	assert.Equal(t, catalog.DefaultRole, result.Requirement.RoleName)
}

func TestRun_DeterministicForFixedInputs(t *testing.T) {
	p := newTestPipeline(t,
		&stubSummarizer{summary: github.FallbackSummary("dev")},
		&stubExtractor{summary: resume.FallbackSummary()},
	)
	opts := Options{
		Identifier:  "dev",
		Document:    []byte("resume bytes"),
		Role:        "Backend Developer",
		HoursPerDay: 3,
		Level:       types.LevelIntermediate,
	}

	first, err := p.Run(context.Background(), opts)
	require.NoError(t, err)
	second, err := p.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_UnexpectedSummarizerErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	p := newTestPipeline(t, &stubSummarizer{err: boom}, &stubExtractor{})

	_, err := p.Run(context.Background(), Options{Identifier: "dev", Role: "Software Engineer"})
	assert.ErrorIs(t, err, boom)
}
