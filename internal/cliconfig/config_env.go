package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (FEEDSHIP_*). It respects flags that have been explicitly set
// (changed map).
//
// FEED_LINK is also honored for the channel link; earlier deployments of
// the feed configured it that way.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("repo-dir", os.Getenv("FEEDSHIP_REPO_DIR"), &cfg.RepoDir)
	s.setString("output", os.Getenv("FEEDSHIP_OUTPUT_PATH"), &cfg.OutputPath)
	s.setString("require", os.Getenv("FEEDSHIP_REQUIRE_PATH"), &cfg.RequirePath)

	s.setString("feed-title", os.Getenv("FEEDSHIP_FEED_TITLE"), &cfg.FeedTitle)
	s.setString("feed-link", os.Getenv("FEED_LINK"), &cfg.FeedLink)
	s.setString("feed-link", os.Getenv("FEEDSHIP_FEED_LINK"), &cfg.FeedLink)
	s.setString("feed-description", os.Getenv("FEEDSHIP_FEED_DESCRIPTION"), &cfg.FeedDescription)
	s.setString("feed-language", os.Getenv("FEEDSHIP_FEED_LANGUAGE"), &cfg.FeedLanguage)

	s.setString("remote", os.Getenv("FEEDSHIP_REMOTE"), &cfg.Remote)
	s.setString("branch", os.Getenv("FEEDSHIP_BRANCH"), &cfg.Branch)
	s.setString("message-prefix", os.Getenv("FEEDSHIP_MESSAGE_PREFIX"), &cfg.MessagePrefix)

	if err := s.setDuration("timeout", os.Getenv("FEEDSHIP_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setIntFromString("retry-attempts", os.Getenv("FEEDSHIP_RETRY_ATTEMPTS"), &cfg.RetryAttempts); err != nil {
		return err
	}
	s.setString("user-agent", os.Getenv("FEEDSHIP_USER_AGENT"), &cfg.UserAgent)

	s.setBoolFromString("dry-run", os.Getenv("FEEDSHIP_DRY_RUN"), &cfg.DryRun)
	s.setBoolFromString("verbose", os.Getenv("FEEDSHIP_VERBOSE"), &cfg.Verbose)

	return nil
}
