// Package app contains the publish pipeline.
//
// A run is a strictly linear sequence: environment precondition check,
// generation, staging, change detection, commit, push. Every step blocks
// until complete and every failure is fatal to the run; there are no
// retries and no rollback. Collaborators are injected as ports so the
// sequence is testable without real git or network operations.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/qbio/feedship/internal/domain"
	"github.com/qbio/feedship/internal/ports"
)

// RunnerConfig holds the settings of the publish pipeline.
type RunnerConfig struct {
	// ArtifactPath is the artifact file path relative to the repository
	// root. The runner never writes this file itself; it only decides
	// whether to persist the generator's output.
	ArtifactPath string

	// RequirePath, when set, must exist before anything else runs.
	RequirePath string

	// Remote and Branch name the push target.
	Remote string
	Branch string

	// MessagePrefix is prepended to the UTC date in commit messages.
	MessagePrefix string

	// DryRun stops after change detection.
	DryRun bool
}

// Runner executes the publish pipeline.
type Runner struct {
	cfg    RunnerConfig
	gen    ports.Generator
	repo   ports.Repository
	logger ports.Logger

	// now is swapped in tests to pin the commit date.
	now func() time.Time
}

// NewRunner creates a runner with the given collaborators.
func NewRunner(cfg RunnerConfig, gen ports.Generator, repo ports.Repository, logger ports.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		gen:    gen,
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Run executes one publish cycle and reports how it ended.
//
// The run advances through domain.RunState values in order; a failure at
// any step returns with the last state reached and no further steps are
// attempted. Concurrent runs are not guarded against; the deployment
// model is a single serialized scheduled job.
func (r *Runner) Run(ctx context.Context) (domain.Report, error) {
	start := r.now()
	report := domain.Report{State: domain.StateIdle}

	r.logger.Info("starting publish run",
		ports.String("artifact", r.cfg.ArtifactPath),
		ports.Bool("dry_run", r.cfg.DryRun),
	)

	if err := r.checkEnvironment(ctx); err != nil {
		return report, err
	}
	report.State = domain.StateEnvChecked

	r.logger.Info("running generator")
	if err := r.gen.Generate(ctx); err != nil {
		return report, err
	}
	report.State = domain.StateGenerated

	if err := r.repo.Stage(ctx, r.cfg.ArtifactPath); err != nil {
		return report, fmt.Errorf("stage %s: %w", r.cfg.ArtifactPath, err)
	}
	report.State = domain.StateStaged

	changed, err := r.repo.HasStagedChanges(ctx, r.cfg.ArtifactPath)
	if err != nil {
		return report, fmt.Errorf("diff %s: %w", r.cfg.ArtifactPath, err)
	}
	if !changed {
		r.logger.Info("no changes to publish", ports.String("artifact", r.cfg.ArtifactPath))
		report.Outcome = domain.OutcomeNoChange
		return r.finish(report, start), nil
	}

	if r.cfg.DryRun {
		r.logger.Info("dry run, skipping commit and push")
		report.Outcome = domain.OutcomeDryRun
		return r.finish(report, start), nil
	}

	message := fmt.Sprintf("%s %s", r.cfg.MessagePrefix, r.now().UTC().Format("2006-01-02"))
	if err := r.repo.Commit(ctx, message); err != nil {
		return report, fmt.Errorf("commit: %w", err)
	}
	report.State = domain.StateCommitted
	report.CommitMessage = message
	r.logger.Info("committed", ports.String("message", message))

	if err := r.repo.Push(ctx, r.cfg.Remote, r.cfg.Branch); err != nil {
		return report, fmt.Errorf("%w: push %s %s: %v", domain.ErrPublish, r.cfg.Remote, r.cfg.Branch, err)
	}
	report.State = domain.StatePushed
	r.logger.Info("pushed",
		ports.String("remote", r.cfg.Remote),
		ports.String("branch", r.cfg.Branch),
	)

	report.Outcome = domain.OutcomePublished
	return r.finish(report, start), nil
}

// finish stamps the run duration and emits the closing log line.
func (r *Runner) finish(report domain.Report, start time.Time) domain.Report {
	report.Duration = r.now().Sub(start)
	r.logger.Info("run finished",
		ports.String("outcome", report.Outcome.String()),
		ports.Duration("duration", report.Duration),
	)
	return report
}

// checkEnvironment verifies the run's preconditions before any side
// effect can occur: the optional required resource must exist and the
// repository directory must be a git work tree.
func (r *Runner) checkEnvironment(ctx context.Context) error {
	if r.cfg.RequirePath != "" {
		if _, err := os.Stat(r.cfg.RequirePath); err != nil {
			return fmt.Errorf("%w: %s", domain.ErrEnvMissing, r.cfg.RequirePath)
		}
	}

	ok, err := r.repo.IsWorkTree(ctx)
	if err != nil {
		return fmt.Errorf("work tree check: %w", err)
	}
	if !ok {
		return domain.ErrNotWorkTree
	}
	return nil
}
