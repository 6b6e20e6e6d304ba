package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"gbpsync/internal/domain"
	"gbpsync/internal/source/instagram"
	"gbpsync/internal/target/gbp"
)

type PostStore interface {
	Insert(ctx context.Context, post *domain.Post) (int64, error)
	UpdateContent(ctx context.Context, post *domain.Post) error
	GetSyncFlagsByExternalIDs(ctx context.Context, accountID string, ids []string) (map[string]bool, error)
	GetPublishableByExternalIDs(ctx context.Context, accountID string, ids []string) ([]domain.Post, error)
	MarkSynced(ctx context.Context, accountID, externalID string, syncedAt time.Time) error
}

type RunHistoryStore interface {
	Get(ctx context.Context, accountID string, kind domain.RunKind) (*domain.RunHistory, error)
	Update(ctx context.Context, history *domain.RunHistory) error
}

type Source interface {
	FetchPosts(ctx context.Context, creds instagram.Credentials) ([]domain.Post, error)
}

type Target interface {
	CreateLocalPost(ctx context.Context, creds gbp.Credentials, post *domain.Post) error
}

type Notifier interface {
	NotifyRun(ctx context.Context, result *domain.RunResult) error
	NotifySynced(ctx context.Context, post *domain.Post) error
	Close() error
}
