package ports

import "context"

// Generator produces the artifact file as a side effect.
//
// The publish runner owns no knowledge of a generator's internals, only
// its success/failure contract: a nil return means the artifact has been
// (re)written in place and is ready to stage.
type Generator interface {
	// Generate writes the artifact file. Any error is fatal to the run.
	Generate(ctx context.Context) error
}
