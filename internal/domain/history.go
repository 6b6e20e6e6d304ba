package domain

import "time"

// RunHistory is the persisted per-account, per-kind run watermark:
// when the pipeline last ran and what it has done in total. Individual
// RunResults stay ephemeral; this row feeds status displays.
type RunHistory struct {
	ID           int64     `db:"id"`
	AccountID    string    `db:"account_id"`
	Kind         RunKind   `db:"kind"`
	LastRunAt    time.Time `db:"last_run_at"`
	LastState    RunState  `db:"last_state"`
	TotalCreated int64     `db:"total_created"`
	TotalUpdated int64     `db:"total_updated"`
	TotalSynced  int64     `db:"total_synced"`
	TotalErrors  int64     `db:"total_errors"`
}
