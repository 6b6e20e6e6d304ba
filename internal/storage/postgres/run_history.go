package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"gbpsync/internal/domain"
)

type RunHistoryStore struct {
	db *sqlx.DB
}

func NewRunHistoryStore(db *sqlx.DB) *RunHistoryStore {
	return &RunHistoryStore{db: db}
}

func (s *RunHistoryStore) Get(ctx context.Context, accountID string, kind domain.RunKind) (*domain.RunHistory, error) {
	var history domain.RunHistory
	query := `
		SELECT id, account_id, kind, last_run_at, last_state,
		       total_created, total_updated, total_synced, total_errors
		FROM run_history
		WHERE account_id = $1 AND kind = $2`

	err := s.db.GetContext(ctx, &history, query, accountID, kind)
	if err == sql.ErrNoRows {
		// Return empty history for accounts that never ran
		return &domain.RunHistory{
			AccountID: accountID,
			Kind:      kind,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &history, nil
}

func (s *RunHistoryStore) Update(ctx context.Context, history *domain.RunHistory) error {
	query := `
		INSERT INTO run_history (
			account_id, kind, last_run_at, last_state,
			total_created, total_updated, total_synced, total_errors
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (account_id, kind) DO UPDATE SET
			last_run_at = EXCLUDED.last_run_at,
			last_state = EXCLUDED.last_state,
			total_created = EXCLUDED.total_created,
			total_updated = EXCLUDED.total_updated,
			total_synced = EXCLUDED.total_synced,
			total_errors = EXCLUDED.total_errors`

	_, err := s.db.ExecContext(ctx, query,
		history.AccountID,
		history.Kind,
		history.LastRunAt,
		history.LastState,
		history.TotalCreated,
		history.TotalUpdated,
		history.TotalSynced,
		history.TotalErrors,
	)
	return err
}
