// Package git implements ports.Repository by shelling out to the git
// binary. Version control is sequenced, not reimplemented: every
// operation maps to exactly one git invocation.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/qbio/feedship/internal/ports"
)

var commandContext = exec.CommandContext

// Option configures the client.
type Option func(*Client)

// WithBinary overrides the default git binary name.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// Client wraps the git command line. All commands run with the repository
// directory as working directory.
type Client struct {
	dir    string
	binary string
	logger ports.Logger
}

// NewClient constructs a client for the repository at dir.
func NewClient(dir string, logger ports.Logger, opts ...Option) *Client {
	c := &Client{dir: dir, binary: "git", logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// run executes a git command and returns its combined output.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd := commandContext(ctx, c.binary, args...)
	cmd.Dir = c.dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

// IsWorkTree reports whether the directory is inside a git work tree.
func (c *Client) IsWorkTree(ctx context.Context) (bool, error) {
	out, err := c.run(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, err
	}
	return strings.TrimSpace(out) == "true", nil
}

// Stage adds the file at path to the index.
func (c *Client) Stage(ctx context.Context, path string) error {
	_, err := c.run(ctx, "add", "--", path)
	return err
}

// HasStagedChanges reports whether the staged content of path differs
// from HEAD. Uses `git diff --cached --quiet`, whose exit status encodes
// the answer: 0 means identical, 1 means changed.
func (c *Client) HasStagedChanges(ctx context.Context, path string) (bool, error) {
	cmd := commandContext(ctx, c.binary, "diff", "--cached", "--quiet", "--", path)
	cmd.Dir = c.dir
	out, err := cmd.CombinedOutput()
	if err == nil {
		return false, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, fmt.Errorf("git diff: %w: %s", err, strings.TrimSpace(string(out)))
}

// Commit creates a commit with the given message.
func (c *Client) Commit(ctx context.Context, message string) error {
	out, err := c.run(ctx, "commit", "-m", message)
	if err != nil {
		return err
	}
	c.logger.Debug("git commit", ports.String("output", strings.TrimSpace(out)))
	return nil
}

// Push forwards the current head to the named remote branch.
func (c *Client) Push(ctx context.Context, remote, branch string) error {
	_, err := c.run(ctx, "push", remote, branch)
	return err
}
