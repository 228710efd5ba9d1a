package domain

import "time"

// RunState tracks the linear progression of a publish run.
// A run advances strictly forward; there are no back-edges.
type RunState int

const (
	StateIdle RunState = iota
	StateEnvChecked
	StateGenerated
	StateStaged
	StateCommitted
	StatePushed
)

// String returns a human-readable representation of the state.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateEnvChecked:
		return "EnvChecked"
	case StateGenerated:
		return "Generated"
	case StateStaged:
		return "Staged"
	case StateCommitted:
		return "Committed"
	case StatePushed:
		return "Pushed"
	default:
		return "Unknown"
	}
}

// Outcome classifies how a successful run ended.
type Outcome int

const (
	// OutcomeNoChange means the generated artifact was byte-identical to
	// the last committed version; nothing was committed or pushed.
	OutcomeNoChange Outcome = iota

	// OutcomePublished means a new commit was created and pushed.
	OutcomePublished

	// OutcomeDryRun means a change was detected but commit and push were
	// skipped on request.
	OutcomeDryRun
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoChange:
		return "NoChange"
	case OutcomePublished:
		return "Published"
	case OutcomeDryRun:
		return "DryRun"
	default:
		return "Unknown"
	}
}

// Report summarizes a completed publish run.
type Report struct {
	// Outcome classifies the run.
	Outcome Outcome

	// State is the last state the run reached.
	State RunState

	// CommitMessage is the message of the commit created by this run.
	// Empty for no-op and dry runs.
	CommitMessage string

	// Duration is the wall-clock time of the whole run.
	Duration time.Duration
}
