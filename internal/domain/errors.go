package domain

import "errors"

// Domain errors represent the failure classes of a publish run.
// These errors are returned wrapped and can be checked with errors.Is.
var (
	// ErrEnvMissing is returned when a required environment resource does
	// not exist. No side effects have occurred when this is returned.
	ErrEnvMissing = errors.New("feedship: required environment resource missing")

	// ErrNotWorkTree is returned when the repository directory is not
	// inside a git work tree.
	ErrNotWorkTree = errors.New("feedship: repository directory is not a git work tree")

	// ErrGenerate is returned when the generation step fails. No staging,
	// commit, or push is attempted after it.
	ErrGenerate = errors.New("feedship: generation step failed")

	// ErrPublish is returned when the push to the remote fails. The local
	// commit is left in place; there is no rollback.
	ErrPublish = errors.New("feedship: push failed")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("feedship: invalid configuration")
)
