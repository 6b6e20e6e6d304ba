package domain

import "time"

type RunKind string

const (
	RunKindIngestion RunKind = "ingestion"
	RunKindPublish   RunKind = "publish"
)

type RunState string

const (
	RunStateComplete RunState = "complete"
	RunStateFailed   RunState = "failed"
)

// ItemOutcome records what happened to a single post within a run.
type ItemOutcome struct {
	ExternalID string
	OK         bool
	Detail     string
}

// RunResult summarizes one pipeline invocation. It is returned to the
// caller and never persisted; a run failure is reported through State
// and Err, per-item failures through the counters and Outcomes.
type RunResult struct {
	Kind     RunKind
	State    RunState
	Duration time.Duration

	// Ingestion counters.
	Seen    int
	Created int
	Updated int
	Errors  int

	// Publish counters.
	Attempted int
	Succeeded int
	Failed    int

	Outcomes []ItemOutcome
	Err      error `json:"-"`
}

func (r *RunResult) RecordSuccess(externalID string) {
	r.Outcomes = append(r.Outcomes, ItemOutcome{ExternalID: externalID, OK: true})
}

func (r *RunResult) RecordFailure(externalID, detail string) {
	r.Outcomes = append(r.Outcomes, ItemOutcome{ExternalID: externalID, Detail: detail})
}
