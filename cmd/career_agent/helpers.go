package main

import (
	"fmt"
	"time"

	"github.com/jonathan/career-navigator/internal/catalog"
	"github.com/jonathan/career-navigator/internal/config"
	"github.com/jonathan/career-navigator/internal/github"
	"github.com/jonathan/career-navigator/internal/pipeline"
	"github.com/jonathan/career-navigator/internal/resume"
)

// loadConfig merges an optional config file over environment defaults.
func loadConfig(path string) (config.Config, error) {
	cfg := config.FromEnv()
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildPipeline wires the catalog, GitHub client, and resume extractor into
// a ready-to-run pipeline.
func buildPipeline(cfg config.Config) (*pipeline.Pipeline, *catalog.Catalog, error) {
	c, err := catalog.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load role catalog: %w", err)
	}

	client := github.NewClient(cfg.GitHubAPIURL, cfg.GitHubToken, time.Duration(cfg.TimeoutSeconds)*time.Second)
	extractor := resume.NewExtractor(c)

	return pipeline.New(client, extractor, c), c, nil
}
