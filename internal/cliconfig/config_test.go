package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/qbio/feedship/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.OutputPath != "feed.xml" {
		t.Errorf("OutputPath = %q, want feed.xml", cfg.OutputPath)
	}
	if cfg.Remote != "origin" || cfg.Branch != "main" {
		t.Errorf("push target = %s/%s, want origin/main", cfg.Remote, cfg.Branch)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
	if cfg.RetryAttempts != 5 {
		t.Errorf("RetryAttempts = %d, want 5", cfg.RetryAttempts)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"missing repo dir", func(c *Config) { c.RepoDir = "" }, true},
		{"missing output path", func(c *Config) { c.OutputPath = "" }, true},
		{"absolute output path", func(c *Config) { c.OutputPath = "/tmp/feed.xml" }, true},
		{"missing remote", func(c *Config) { c.Remote = "" }, true},
		{"missing branch", func(c *Config) { c.Branch = "" }, true},
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }, true},
		{"zero retry attempts", func(c *Config) { c.RetryAttempts = 0 }, true},
		{
			"journal missing base url",
			func(c *Config) { c.Journals = []domain.Journal{{Name: "X", URL: "https://x"}} },
			true,
		},
		{
			"incomplete journal tolerated with external generator",
			func(c *Config) {
				c.Journals = []domain.Journal{{Name: "X"}}
				c.GeneratorCommand = []string{"python", "main.py"}
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Validate_AppliesDefaultJournals(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(cfg.Journals) != 3 {
		t.Fatalf("got %d default journals, want 3", len(cfg.Journals))
	}
	names := map[string]bool{}
	for _, j := range cfg.Journals {
		names[j.Name] = true
	}
	for _, want := range []string{"Cell", "Nature", "Science"} {
		if !names[want] {
			t.Errorf("default journals missing %s", want)
		}
	}
}

func TestConfig_Validate_TrimsFeedLinkSlash(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FeedLink = "https://example.org/feed/"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.FeedLink != "https://example.org/feed" {
		t.Errorf("FeedLink = %q, want trailing slash removed", cfg.FeedLink)
	}
}

func TestConfig_ArtifactAbsPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RepoDir = "/srv/feeds"
	cfg.OutputPath = "feed.xml"
	if got := cfg.ArtifactAbsPath(); got != "/srv/feeds/feed.xml" {
		t.Errorf("ArtifactAbsPath() = %q", got)
	}
}
