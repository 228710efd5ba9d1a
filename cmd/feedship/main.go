package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/qbio/feedship/internal/adapters/git"
	httpadapter "github.com/qbio/feedship/internal/adapters/http"
	logadapter "github.com/qbio/feedship/internal/adapters/log"
	"github.com/qbio/feedship/internal/adapters/proc"
	"github.com/qbio/feedship/internal/app"
	"github.com/qbio/feedship/internal/cliconfig"
	"github.com/qbio/feedship/internal/domain"
	"github.com/qbio/feedship/internal/feed"
	"github.com/qbio/feedship/internal/ports"
)

const helpDescription = `
Scrape configured journal listing pages into an RSS artifact and publish
it to a git remote when the content changed.

Highlights:
  - Built-in scrapers for Cell, Nature, and Science; bring your own
    journals via the config file.
  - Publishes at most one commit per run, dated with the current UTC day,
    and only when the artifact actually changed.
  - Swap the built-in scraper for any external generator command; its
    exit status is the whole contract.

Config precedence: flags > FEEDSHIP_* environment > config file.
`

var exampleUsage = strings.TrimSpace(`
  feedship --repo-dir ~/feeds/biorss
  feedship --config ./feedship.toml --dry-run
  feedship --generator python --generator main.py
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "feedship",
		Short:   "Generate a journal RSS feed and publish it to a git remote",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default ~/.feedship/config.toml),
			// then apply env and flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level := zerolog.InfoLevel
			if cfg.Verbose {
				level = zerolog.DebugLevel
			}
			log = log.Level(level)
			log.Info().
				Str("repo_dir", cfg.RepoDir).
				Str("artifact", cfg.OutputPath).
				Str("remote", cfg.Remote).
				Str("branch", cfg.Branch).
				Bool("dry_run", cfg.DryRun).
				Msg("configuration")

			logger := logadapter.NewZerologAdapter(log)

			repo := git.NewClient(cfg.RepoDir, logger)
			gen, err := buildGenerator(cfg, logger)
			if err != nil {
				return err
			}

			runner := app.NewRunner(app.RunnerConfig{
				ArtifactPath:  cfg.OutputPath,
				RequirePath:   cfg.RequirePath,
				Remote:        cfg.Remote,
				Branch:        cfg.Branch,
				MessagePrefix: cfg.MessagePrefix,
				DryRun:        cfg.DryRun,
			}, gen, repo, logger)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := runner.Run(ctx)
			if err != nil {
				return err
			}

			switch report.Outcome {
			case domain.OutcomeNoChange:
				fmt.Println("no changes")
			case domain.OutcomeDryRun:
				fmt.Println("dry run: changes detected, commit and push skipped")
			case domain.OutcomePublished:
				fmt.Printf("published: %s\n", report.CommitMessage)
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.feedship/config.toml)")
	root.Flags().StringVar(&cfg.RepoDir, "repo-dir", cfg.RepoDir, "git repository containing the artifact")
	root.Flags().StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "artifact path relative to the repository root")
	root.Flags().StringVar(&cfg.RequirePath, "require", cfg.RequirePath, "path that must exist before the run starts")
	root.Flags().StringArrayVar(&cfg.GeneratorCommand, "generator", cfg.GeneratorCommand, "external generator argv (repeat per element; replaces the built-in scraper)")

	root.Flags().StringVar(&cfg.FeedTitle, "feed-title", cfg.FeedTitle, "feed channel title")
	root.Flags().StringVar(&cfg.FeedLink, "feed-link", cfg.FeedLink, "feed channel link")
	root.Flags().StringVar(&cfg.FeedDescription, "feed-description", cfg.FeedDescription, "feed channel description")
	root.Flags().StringVar(&cfg.FeedLanguage, "feed-language", cfg.FeedLanguage, "feed channel language")

	root.Flags().StringVar(&cfg.Remote, "remote", cfg.Remote, "git remote to push to")
	root.Flags().StringVar(&cfg.Branch, "branch", cfg.Branch, "git branch to push")
	root.Flags().StringVar(&cfg.MessagePrefix, "message-prefix", cfg.MessagePrefix, "commit message prefix (UTC date is appended)")

	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout per request")
	root.Flags().IntVar(&cfg.RetryAttempts, "retry-attempts", cfg.RetryAttempts, "fetch attempts per journal page")
	root.Flags().StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "override the browser user agent")

	root.Flags().BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "detect changes but skip commit and push")
	root.Flags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("feedship")
		os.Exit(1)
	}
}

// buildGenerator selects the generator collaborator: the configured
// external command, or the built-in scraper.
func buildGenerator(cfg cliconfig.Config, logger ports.Logger) (ports.Generator, error) {
	if len(cfg.GeneratorCommand) > 0 {
		return proc.NewCommandGenerator(cfg.GeneratorCommand, cfg.RepoDir, logger)
	}

	fetcherCfg := httpadapter.DefaultConfig()
	fetcherCfg.Attempts = cfg.RetryAttempts
	if cfg.UserAgent != "" {
		fetcherCfg.UserAgent = cfg.UserAgent
	}
	fetcher := httpadapter.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, logger, fetcherCfg)

	info := feed.Info{
		Title:       cfg.FeedTitle,
		Link:        cfg.FeedLink,
		Description: cfg.FeedDescription,
		Language:    cfg.FeedLanguage,
	}
	return feed.NewGenerator(cfg.Journals, info, cfg.ArtifactAbsPath(), fetcher, logger), nil
}
