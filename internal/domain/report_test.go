package domain

import (
	"testing"
	"time"
)

func TestRunState_String(t *testing.T) {
	tests := []struct {
		state RunState
		want  string
	}{
		{StateIdle, "Idle"},
		{StateEnvChecked, "EnvChecked"},
		{StateGenerated, "Generated"},
		{StateStaged, "Staged"},
		{StateCommitted, "Committed"},
		{StatePushed, "Pushed"},
		{RunState(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("RunState(%d).String() = %s, want %s", tt.state, got, tt.want)
		}
	}
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeNoChange, "NoChange"},
		{OutcomePublished, "Published"},
		{OutcomeDryRun, "DryRun"},
		{Outcome(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %s, want %s", tt.outcome, got, tt.want)
		}
	}
}

func TestArticle_PublishedOrEpoch(t *testing.T) {
	undated := Article{Title: "t", Link: "l"}
	if got := undated.PublishedOrEpoch(); !got.Equal(time.Unix(0, 0)) {
		t.Errorf("undated article epoch fallback = %v", got)
	}

	when := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	dated := Article{Title: "t", Link: "l", Published: when}
	if got := dated.PublishedOrEpoch(); !got.Equal(when) {
		t.Errorf("dated article = %v, want %v", got, when)
	}
}

func TestArticle_Valid(t *testing.T) {
	tests := []struct {
		name    string
		article Article
		want    bool
	}{
		{"complete", Article{Title: "t", Link: "l"}, true},
		{"missing title", Article{Link: "l"}, false},
		{"missing link", Article{Title: "t"}, false},
		{"empty", Article{}, false},
	}

	for _, tt := range tests {
		if got := tt.article.Valid(); got != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
