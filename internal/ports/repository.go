package ports

import "context"

// Repository abstracts the version-control operations the publish runner
// sequences. Implementations shell out to the git binary; tests use mock
// implementations. Operations are treated as atomic black boxes; the
// runner does not reimplement version control.
type Repository interface {
	// IsWorkTree reports whether the repository directory is inside a git
	// work tree.
	IsWorkTree(ctx context.Context) (bool, error)

	// Stage marks the file at path (relative to the repository root) as a
	// candidate for the next commit.
	Stage(ctx context.Context, path string) error

	// HasStagedChanges reports whether the staged content of path differs
	// byte-for-byte from the last committed version.
	HasStagedChanges(ctx context.Context, path string) (bool, error)

	// Commit creates a commit with the given message from the staged
	// content.
	Commit(ctx context.Context, message string) error

	// Push forwards the current branch head to the named remote branch.
	Push(ctx context.Context, remote, branch string) error
}
