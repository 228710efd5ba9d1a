// Package cliconfig loads and validates the feedship configuration.
//
// Precedence, highest first: command-line flags, environment variables
// (FEEDSHIP_*), the TOML config file, built-in defaults.
package cliconfig

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/qbio/feedship/internal/domain"
)

// DefaultFeedLink is the channel link embedded in the generated feed.
const DefaultFeedLink = "https://github.com/qbio/feedship"

// Config holds CLI configuration for feedship.
type Config struct {
	RepoDir     string
	OutputPath  string
	RequirePath string

	// GeneratorCommand, when non-empty, replaces the built-in scraper
	// with an external command (argv form).
	GeneratorCommand []string

	FeedTitle       string
	FeedLink        string
	FeedDescription string
	FeedLanguage    string

	Remote        string
	Branch        string
	MessagePrefix string

	HTTPTimeout   time.Duration
	RetryAttempts int
	UserAgent     string

	DryRun  bool
	Verbose bool

	// Journals is the set of listing pages to scrape. Empty means the
	// built-in journal set.
	Journals []domain.Journal
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		RepoDir:         ".",
		OutputPath:      "feed.xml",
		FeedTitle:       "Custom Biological Research Feed",
		FeedLink:        DefaultFeedLink,
		FeedDescription: "Aggregated research articles from Cell, Nature, and Science.",
		FeedLanguage:    "en-US",
		Remote:          "origin",
		Branch:          "main",
		MessagePrefix:   "Update feed",
		HTTPTimeout:     30 * time.Second,
		RetryAttempts:   5,
	}
}

// DefaultJournals returns the built-in journal set.
func DefaultJournals() []domain.Journal {
	return []domain.Journal{
		{
			Name:         "Cell",
			URL:          "https://www.cell.com/cell/newarticles",
			BaseURL:      "https://www.cell.com",
			IncludeTerms: []string{"research article", "article"},
			ExcludeTerms: []string{"news", "editorial", "briefing", "ahead of print", "perspective", "pre-proof"},
		},
		{
			Name:         "Nature",
			URL:          "https://www.nature.com/nature/research-articles",
			BaseURL:      "https://www.nature.com",
			IncludeTerms: []string{"research article", "research"},
			ExcludeTerms: []string{"news & views"},
		},
		{
			Name:         "Science",
			URL:          "https://www.science.org/journal/science/research",
			BaseURL:      "https://www.science.org",
			IncludeTerms: []string{"research article", "research"},
			ExcludeTerms: []string{"perspective", "books", "policy forum", "letter", "news"},
		},
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.RepoDir == "" {
		return fmt.Errorf("%w: repo-dir is required", domain.ErrInvalidConfig)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output path is required", domain.ErrInvalidConfig)
	}
	if filepath.IsAbs(c.OutputPath) {
		return fmt.Errorf("%w: output path must be relative to the repository", domain.ErrInvalidConfig)
	}
	if c.Remote == "" || c.Branch == "" {
		return fmt.Errorf("%w: remote and branch are required", domain.ErrInvalidConfig)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http timeout must be positive", domain.ErrInvalidConfig)
	}
	if c.RetryAttempts <= 0 {
		return fmt.Errorf("%w: retry attempts must be positive", domain.ErrInvalidConfig)
	}

	if len(c.Journals) == 0 {
		c.Journals = DefaultJournals()
	}
	if len(c.GeneratorCommand) == 0 {
		for _, j := range c.Journals {
			if j.Name == "" || j.URL == "" || j.BaseURL == "" {
				return fmt.Errorf("%w: journal entries need name, url, and base_url", domain.ErrInvalidConfig)
			}
		}
	}

	// Ensure no trailing slash on the channel link
	c.FeedLink = strings.TrimRight(c.FeedLink, "/")

	return nil
}

// ArtifactAbsPath returns the absolute path of the artifact file.
func (c *Config) ArtifactAbsPath() string {
	return filepath.Join(c.RepoDir, c.OutputPath)
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't
// been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a string slice if non-empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag
// not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if
// valid. Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
