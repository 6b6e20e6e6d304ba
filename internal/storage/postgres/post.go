package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gbpsync/internal/domain"
)

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

// Insert creates the record on first sighting of its external id.
// New posts always start unsynced.
func (s *PostStore) Insert(ctx context.Context, post *domain.Post) (int64, error) {
	query := `
		INSERT INTO posts (
			account_id, external_id, media_url, caption, captured_at,
			media_kind, permalink, is_synced
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, false
		)
		RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		post.AccountID,
		post.ExternalID,
		post.MediaURL,
		post.Caption,
		post.CapturedAt,
		post.MediaKind,
		post.Permalink,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateContent refreshes the content fields of an existing record and
// bumps updated_at. is_synced and synced_at are deliberately not part
// of this statement: re-ingestion never regresses publish state.
func (s *PostStore) UpdateContent(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE posts SET
			media_url = $3,
			caption = $4,
			captured_at = $5,
			media_kind = $6,
			permalink = $7,
			updated_at = now()
		WHERE account_id = $1 AND external_id = $2`

	_, err := s.db.ExecContext(ctx, query,
		post.AccountID,
		post.ExternalID,
		post.MediaURL,
		post.Caption,
		post.CapturedAt,
		post.MediaKind,
		post.Permalink,
	)
	return err
}

// GetSyncFlagsByExternalIDs returns, in one round trip, the sync flag
// for every already-known id in the given set. Absent ids are simply
// missing from the map.
func (s *PostStore) GetSyncFlagsByExternalIDs(ctx context.Context, accountID string, ids []string) (map[string]bool, error) {
	if len(ids) == 0 {
		return make(map[string]bool), nil
	}

	query := `SELECT external_id, is_synced FROM posts WHERE account_id = $1 AND external_id = ANY($2)`

	rows, err := s.db.QueryContext(ctx, query, accountID, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]bool)
	for rows.Next() {
		var extID string
		var isSynced bool
		if err := rows.Scan(&extID, &isSynced); err != nil {
			return nil, err
		}
		result[extID] = isSynced
	}

	return result, rows.Err()
}

// GetPublishableByExternalIDs loads the stored records matching the id
// set that are eligible for publishing: publishable media kind and a
// non-blank caption. Ids that do not resolve are silently absent.
func (s *PostStore) GetPublishableByExternalIDs(ctx context.Context, accountID string, ids []string) ([]domain.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	kinds := make([]string, 0, len(domain.PublishableKinds()))
	for _, k := range domain.PublishableKinds() {
		kinds = append(kinds, string(k))
	}

	query := `
		SELECT id, account_id, external_id, media_url, caption, captured_at,
		       media_kind, permalink, is_synced, synced_at, created_at, updated_at
		FROM posts
		WHERE account_id = $1
		  AND external_id = ANY($2)
		  AND media_kind = ANY($3)
		  AND btrim(coalesce(caption, '')) <> ''
		ORDER BY captured_at DESC NULLS LAST`

	var posts []domain.Post
	err := s.db.SelectContext(ctx, &posts, query, accountID, pq.Array(ids), pq.Array(kinds))
	return posts, err
}

// MarkSynced flips the sync flag after a successful publish. The flag
// only ever moves false -> true; updated_at is left alone because no
// content field changed.
func (s *PostStore) MarkSynced(ctx context.Context, accountID, externalID string, syncedAt time.Time) error {
	query := `
		UPDATE posts SET
			is_synced = true,
			synced_at = $3
		WHERE account_id = $1 AND external_id = $2`

	_, err := s.db.ExecContext(ctx, query, accountID, externalID, syncedAt)
	return err
}
