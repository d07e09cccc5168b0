// Package github provides the profile summarizer backed by the GitHub REST API.
//
// Failure policy: transport errors, timeouts, and non-2xx responses other
// than 404 never surface to the caller; the client logs the failure and
// returns the deterministic fallback summary instead. A 404 means the
// identifier does not exist and yields ErrProfileNotFound so the shell can
// say "not found" rather than showing canned data.
package github

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/jonathan/career-navigator/internal/parsing"
	"github.com/jonathan/career-navigator/internal/types"
)

const (
	// DefaultBaseURL is the public GitHub REST API endpoint.
	DefaultBaseURL = "https://api.github.com"
	// DefaultTimeout bounds each API call so a slow provider cannot stall
	// the pipeline.
	DefaultTimeout = 10 * time.Second
	// reposPageSize is the page size for the repository listing; the first
	// page is sufficient for language tallying.
	reposPageSize = 100
	// topLanguages caps the language distribution at the most used entries.
	topLanguages = 4
)

// ErrProfileNotFound indicates the identifier does not exist on the provider.
var ErrProfileNotFound = errors.New("github profile not found")

// webLanguages are languages whose presence implies HTML/CSS literacy.
var webLanguages = map[string]bool{
	"JavaScript": true,
	"TypeScript": true,
	"PHP":        true,
	"HTML":       true,
	"CSS":        true,
}

// markupOnly are detected "languages" that don't imply general-purpose
// programming familiarity.
var markupOnly = map[string]bool{
	"HTML": true,
	"CSS":  true,
}

// Client talks to a GitHub-compatible profile provider.
type Client struct {
	rest *resty.Client
}

// NewClient creates a client for the given provider endpoint. Empty baseURL
// and non-positive timeout select the defaults; token is optional and only
// raises rate limits.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("User-Agent", "career-navigator/1.0")
	if token != "" {
		rest.SetAuthToken(token)
	}

	return &Client{rest: rest}
}

// Summarize builds a ProfileSummary for the identifier.
//
// An identifier that is empty after trimming returns (nil, nil): no profile
// supplied is a normal state, not an error. The only error ever returned is
// ErrProfileNotFound.
func (c *Client) Summarize(ctx context.Context, identifier string) (*types.ProfileSummary, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, nil
	}

	account, err := c.rest.R().SetContext(ctx).Get("/users/" + url.PathEscape(identifier))
	if err != nil {
		log.Printf("github: account fetch for %q failed, using fallback summary: %v", identifier, err)
		return FallbackSummary(identifier), nil
	}
	if account.StatusCode() == http.StatusNotFound {
		return nil, ErrProfileNotFound
	}
	if !account.IsSuccess() {
		log.Printf("github: account fetch for %q returned HTTP %d, using fallback summary", identifier, account.StatusCode())
		return FallbackSummary(identifier), nil
	}
	repoCount := int(gjson.GetBytes(account.Body(), "public_repos").Int())

	repos, err := c.rest.R().SetContext(ctx).
		SetQueryParam("per_page", strconv.Itoa(reposPageSize)).
		SetQueryParam("type", "owner").
		Get("/users/" + url.PathEscape(identifier) + "/repos")
	if err != nil {
		log.Printf("github: repo listing for %q failed, using fallback summary: %v", identifier, err)
		return FallbackSummary(identifier), nil
	}
	if !repos.IsSuccess() {
		log.Printf("github: repo listing for %q returned HTTP %d, using fallback summary", identifier, repos.StatusCode())
		return FallbackSummary(identifier), nil
	}

	// Tally primary language per repository, preserving first-seen order so
	// ties in the distribution stay stable.
	counts := make(map[string]int)
	var order []string
	repoList := gjson.ParseBytes(repos.Body()).Array()
	for _, repo := range repoList {
		lang := repo.Get("language").String()
		if lang == "" {
			continue
		}
		if _, seen := counts[lang]; !seen {
			order = append(order, lang)
		}
		counts[lang]++
	}
	if repoCount == 0 {
		repoCount = len(repoList)
	}

	return buildSummary(identifier, repoCount, order, counts), nil
}

// buildSummary converts the language tally into the normalized summary shape.
func buildSummary(identifier string, repoCount int, order []string, counts map[string]int) *types.ProfileSummary {
	// Top languages by count, ties broken by stable input order.
	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if len(ranked) > topLanguages {
		ranked = ranked[:topLanguages]
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	distribution := make(map[string]int, len(ranked))
	for _, lang := range ranked {
		distribution[lang] = (counts[lang]*100 + total/2) / total
	}

	return &types.ProfileSummary{
		Identifier:           identifier,
		RepositoryCount:      repoCount,
		ExperienceTier:       types.ExperienceTierFor(repoCount),
		LanguageDistribution: distribution,
		Skills:               inferSkills(order),
		ActivityTier:         types.ActivityTierFor(repoCount),
		Source:               types.SourceLive,
	}
}

// inferSkills appends a small fixed set of derived tags per detected
// language: web languages imply HTML/CSS literacy, any general-purpose
// language implies data structures and algorithms familiarity, and having a
// profile at all implies version control.
func inferSkills(languages []string) []string {
	skills := make([]string, 0, len(languages)+5)
	hasWeb := false
	hasGeneralPurpose := false

	for _, lang := range languages {
		token := parsing.NormalizeSkillName(lang)
		skills = append(skills, token)
		if webLanguages[token] {
			hasWeb = true
		}
		if !markupOnly[token] {
			hasGeneralPurpose = true
		}
	}

	if hasWeb {
		skills = append(skills, "HTML", "CSS")
	}
	if hasGeneralPurpose {
		skills = append(skills, "Data Structures", "Algorithms")
	}
	skills = append(skills, "Git")

	return parsing.NormalizeSkillList(skills)
}
