package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/qbio/feedship/internal/domain"
)

// FileConfig mirrors Config but uses strings for durations to make TOML
// friendly.
type FileConfig struct {
	RepoDir          string   `toml:"repo_dir"`
	OutputPath       string   `toml:"output_path"`
	RequirePath      string   `toml:"require_path"`
	GeneratorCommand []string `toml:"generator_command"`

	FeedTitle       string `toml:"feed_title"`
	FeedLink        string `toml:"feed_link"`
	FeedDescription string `toml:"feed_description"`
	FeedLanguage    string `toml:"feed_language"`

	Remote        string `toml:"remote"`
	Branch        string `toml:"branch"`
	MessagePrefix string `toml:"message_prefix"`

	HTTPTimeout   string `toml:"http_timeout"`
	RetryAttempts int    `toml:"retry_attempts"`
	UserAgent     string `toml:"user_agent"`

	DryRun  *bool `toml:"dry_run"`
	Verbose *bool `toml:"verbose"`

	Journals []JournalFileConfig `toml:"journals"`
}

// JournalFileConfig is one [[journals]] table in the config file.
type JournalFileConfig struct {
	Name         string   `toml:"name"`
	URL          string   `toml:"url"`
	BaseURL      string   `toml:"base_url"`
	IncludeTerms []string `toml:"include_terms"`
	ExcludeTerms []string `toml:"exclude_terms"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.feedship/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".feedship", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("repo-dir", fc.RepoDir, &cfg.RepoDir)
	s.setString("output", fc.OutputPath, &cfg.OutputPath)
	s.setString("require", fc.RequirePath, &cfg.RequirePath)
	s.setStrings("generator", fc.GeneratorCommand, &cfg.GeneratorCommand)

	s.setString("feed-title", fc.FeedTitle, &cfg.FeedTitle)
	s.setString("feed-link", fc.FeedLink, &cfg.FeedLink)
	s.setString("feed-description", fc.FeedDescription, &cfg.FeedDescription)
	s.setString("feed-language", fc.FeedLanguage, &cfg.FeedLanguage)

	s.setString("remote", fc.Remote, &cfg.Remote)
	s.setString("branch", fc.Branch, &cfg.Branch)
	s.setString("message-prefix", fc.MessagePrefix, &cfg.MessagePrefix)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}
	s.setInt("retry-attempts", fc.RetryAttempts, &cfg.RetryAttempts)
	s.setString("user-agent", fc.UserAgent, &cfg.UserAgent)

	s.setBool("dry-run", fc.DryRun, &cfg.DryRun)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)

	if len(fc.Journals) > 0 {
		journals := make([]domain.Journal, 0, len(fc.Journals))
		for _, j := range fc.Journals {
			journals = append(journals, domain.Journal{
				Name:         j.Name,
				URL:          j.URL,
				BaseURL:      j.BaseURL,
				IncludeTerms: j.IncludeTerms,
				ExcludeTerms: j.ExcludeTerms,
			})
		}
		cfg.Journals = journals
	}

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
