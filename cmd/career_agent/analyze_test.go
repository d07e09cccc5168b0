package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-navigator/internal/types"
)

func TestRunAnalyze_RejectsBadHours(t *testing.T) {
	analyzeHours = 5
	analyzeLevel = types.LevelBeginner
	defer func() { analyzeHours = 2 }()

	err := runAnalyze(nil, nil)
	assert.ErrorContains(t, err, "--hours")
}

func TestRunAnalyze_RejectsBadLevel(t *testing.T) {
	analyzeHours = 2
	analyzeLevel = "Expert"
	defer func() { analyzeLevel = types.LevelBeginner }()

	err := runAnalyze(nil, nil)
	assert.ErrorContains(t, err, "--level")
}

func TestRunAnalyze_MissingResumeFile(t *testing.T) {
	analyzeHours = 2
	analyzeLevel = types.LevelBeginner
	analyzeResumePath = "/nonexistent/resume.pdf"
	defer func() { analyzeResumePath = "" }()

	err := runAnalyze(nil, nil)
	assert.ErrorContains(t, err, "failed to read resume")
}

func TestRunRoles(t *testing.T) {
	assert.NoError(t, runRoles(nil, nil))
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	assert.True(t, names["analyze"])
	assert.True(t, names["roles"])
	assert.True(t, names["serve"])
}
