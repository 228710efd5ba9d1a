// Package proc implements ports.Generator by invoking an external
// command. The command is a black-box collaborator: it is expected to
// overwrite the artifact file as a side effect and communicate success
// solely via its exit status.
package proc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/qbio/feedship/internal/domain"
	"github.com/qbio/feedship/internal/ports"
)

var commandContext = exec.CommandContext

// CommandGenerator runs a configured argv in the repository directory.
type CommandGenerator struct {
	argv   []string
	dir    string
	logger ports.Logger
}

// NewCommandGenerator constructs a generator for the given argv.
// The argv must be non-empty; the first element is the executable.
func NewCommandGenerator(argv []string, dir string, logger ports.Logger) (*CommandGenerator, error) {
	if len(argv) == 0 {
		return nil, errors.New("proc: empty generator command")
	}
	return &CommandGenerator{argv: argv, dir: dir, logger: logger}, nil
}

// Generate runs the external command, passing its output streams through.
// A non-zero exit is reported as a generation failure.
func (g *CommandGenerator) Generate(ctx context.Context) error {
	g.logger.Info("running external generator", ports.Any("command", g.argv))

	cmd := commandContext(ctx, g.argv[0], g.argv[1:]...)
	cmd.Dir = g.dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrGenerate, g.argv[0], err)
	}
	return nil
}
