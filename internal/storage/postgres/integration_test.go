//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"gbpsync/internal/domain"
	"gbpsync/testdata/utils"
)

const testAccountID = "17840000000000000"

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_posts.up.sql"),
			filepath.Join(migrationsPath, "002_create_run_history.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM posts")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM run_history")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) insertPost(externalID string, kind domain.MediaKind, caption *string, capturedAt *time.Time) int64 {
	store := NewPostStore(s.db)
	id, err := store.Insert(s.ctx, &domain.Post{
		AccountID:  testAccountID,
		ExternalID: externalID,
		MediaURL:   utils.Ptr("https://cdn.example.com/" + externalID + ".jpg"),
		Caption:    caption,
		CapturedAt: capturedAt,
		MediaKind:  kind,
		Permalink:  utils.Ptr("https://www.instagram.com/p/" + externalID + "/"),
	})
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) TestPostStore_Insert() {
	id := s.insertPost("p1", domain.MediaKindImage, utils.Ptr("hello"), utils.Ptr(time.Now().UTC()))
	s.Greater(id, int64(0))

	var post domain.Post
	err := s.db.GetContext(s.ctx, &post, "SELECT * FROM posts WHERE id = $1", id)
	s.NoError(err)
	s.Equal("p1", post.ExternalID)
	s.False(post.IsSynced)
	s.Nil(post.SyncedAt)
	s.False(post.CreatedAt.IsZero())
}

func (s *PostgresIntegrationSuite) TestPostStore_Insert_DuplicateExternalIDRejected() {
	s.insertPost("p1", domain.MediaKindImage, utils.Ptr("first"), nil)

	store := NewPostStore(s.db)
	_, err := store.Insert(s.ctx, &domain.Post{
		AccountID:  testAccountID,
		ExternalID: "p1",
		MediaKind:  domain.MediaKindImage,
	})
	s.Error(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM posts WHERE external_id = $1", "p1"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestPostStore_UpdateContent_LeavesSyncStateAlone() {
	store := NewPostStore(s.db)

	s.insertPost("p1", domain.MediaKindImage, utils.Ptr("old"), nil)
	s.Require().NoError(store.MarkSynced(s.ctx, testAccountID, "p1", time.Now().UTC()))

	err := store.UpdateContent(s.ctx, &domain.Post{
		AccountID:  testAccountID,
		ExternalID: "p1",
		Caption:    utils.Ptr("new"),
		MediaKind:  domain.MediaKindImage,
	})
	s.NoError(err)

	var post domain.Post
	s.NoError(s.db.GetContext(s.ctx, &post, "SELECT * FROM posts WHERE external_id = $1", "p1"))
	s.Require().NotNil(post.Caption)
	s.Equal("new", *post.Caption)
	s.True(post.IsSynced)
	s.NotNil(post.SyncedAt)
}

func (s *PostgresIntegrationSuite) TestPostStore_UpdateContent_BumpsUpdatedAt() {
	store := NewPostStore(s.db)

	id := s.insertPost("p1", domain.MediaKindImage, utils.Ptr("old"), nil)

	var before domain.Post
	s.NoError(s.db.GetContext(s.ctx, &before, "SELECT * FROM posts WHERE id = $1", id))

	time.Sleep(10 * time.Millisecond)

	s.NoError(store.UpdateContent(s.ctx, &domain.Post{
		AccountID:  testAccountID,
		ExternalID: "p1",
		Caption:    utils.Ptr("new"),
		MediaKind:  domain.MediaKindImage,
	}))

	var after domain.Post
	s.NoError(s.db.GetContext(s.ctx, &after, "SELECT * FROM posts WHERE id = $1", id))
	s.True(after.UpdatedAt.After(before.UpdatedAt))
	s.Equal(before.CreatedAt, after.CreatedAt)
}

func (s *PostgresIntegrationSuite) TestPostStore_GetSyncFlags() {
	store := NewPostStore(s.db)

	s.insertPost("p1", domain.MediaKindImage, utils.Ptr("one"), nil)
	s.insertPost("p2", domain.MediaKindImage, utils.Ptr("two"), nil)
	s.Require().NoError(store.MarkSynced(s.ctx, testAccountID, "p2", time.Now().UTC()))

	flags, err := store.GetSyncFlagsByExternalIDs(s.ctx, testAccountID, []string{"p1", "p2", "missing"})
	s.NoError(err)
	s.Len(flags, 2)
	s.Equal(false, flags["p1"])
	s.Equal(true, flags["p2"])
	s.NotContains(flags, "missing")
}

func (s *PostgresIntegrationSuite) TestPostStore_GetSyncFlags_DifferentAccounts() {
	store := NewPostStore(s.db)

	s.insertPost("p1", domain.MediaKindImage, utils.Ptr("mine"), nil)

	_, err := store.Insert(s.ctx, &domain.Post{
		AccountID:  "other-account",
		ExternalID: "p1",
		MediaKind:  domain.MediaKindImage,
	})
	s.NoError(err)

	flags, err := store.GetSyncFlagsByExternalIDs(s.ctx, "other-account", []string{"p1"})
	s.NoError(err)
	s.Len(flags, 1)

	flags, err = store.GetSyncFlagsByExternalIDs(s.ctx, "third-account", []string{"p1"})
	s.NoError(err)
	s.Len(flags, 0)
}

func (s *PostgresIntegrationSuite) TestPostStore_GetPublishable_FiltersAndOrders() {
	store := NewPostStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	s.insertPost("older", domain.MediaKindImage, utils.Ptr("older post"), utils.Ptr(now.Add(-2*time.Hour)))
	s.insertPost("newer", domain.MediaKindVideo, utils.Ptr("newer post"), utils.Ptr(now))
	s.insertPost("no-caption", domain.MediaKindImage, nil, utils.Ptr(now))
	s.insertPost("blank-caption", domain.MediaKindImage, utils.Ptr("   "), utils.Ptr(now))
	s.insertPost("story", domain.MediaKind("STORY"), utils.Ptr("not publishable"), utils.Ptr(now))

	posts, err := store.GetPublishableByExternalIDs(s.ctx, testAccountID,
		[]string{"older", "newer", "no-caption", "blank-caption", "story", "missing"})
	s.NoError(err)
	s.Require().Len(posts, 2)
	s.Equal("newer", posts[0].ExternalID)
	s.Equal("older", posts[1].ExternalID)
}

func (s *PostgresIntegrationSuite) TestPostStore_GetPublishable_EmptySet() {
	store := NewPostStore(s.db)

	posts, err := store.GetPublishableByExternalIDs(s.ctx, testAccountID, nil)
	s.NoError(err)
	s.Len(posts, 0)
}

func (s *PostgresIntegrationSuite) TestPostStore_MarkSynced() {
	store := NewPostStore(s.db)
	syncedAt := time.Now().UTC().Truncate(time.Microsecond)

	s.insertPost("p1", domain.MediaKindImage, utils.Ptr("hello"), nil)
	s.NoError(store.MarkSynced(s.ctx, testAccountID, "p1", syncedAt))

	var post domain.Post
	s.NoError(s.db.GetContext(s.ctx, &post, "SELECT * FROM posts WHERE external_id = $1", "p1"))
	s.True(post.IsSynced)
	s.Require().NotNil(post.SyncedAt)
	s.WithinDuration(syncedAt, *post.SyncedAt, time.Second)
}

func (s *PostgresIntegrationSuite) TestRunHistoryStore_GetNew() {
	store := NewRunHistoryStore(s.db)

	history, err := store.Get(s.ctx, "new-account", domain.RunKindIngestion)
	s.NoError(err)
	s.NotNil(history)
	s.Equal("new-account", history.AccountID)
	s.True(history.LastRunAt.IsZero())
	s.Equal(int64(0), history.TotalCreated)
}

func (s *PostgresIntegrationSuite) TestRunHistoryStore_UpdateAndGet() {
	store := NewRunHistoryStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	history := &domain.RunHistory{
		AccountID:    testAccountID,
		Kind:         domain.RunKindIngestion,
		LastRunAt:    now,
		LastState:    domain.RunStateComplete,
		TotalCreated: 5,
		TotalUpdated: 3,
		TotalErrors:  1,
	}
	s.NoError(store.Update(s.ctx, history))

	retrieved, err := store.Get(s.ctx, testAccountID, domain.RunKindIngestion)
	s.NoError(err)
	s.Equal(domain.RunStateComplete, retrieved.LastState)
	s.Equal(int64(5), retrieved.TotalCreated)
	s.Equal(int64(3), retrieved.TotalUpdated)
	s.WithinDuration(now, retrieved.LastRunAt, time.Second)
}

func (s *PostgresIntegrationSuite) TestRunHistoryStore_KindsTrackedSeparately() {
	store := NewRunHistoryStore(s.db)
	now := time.Now().UTC()

	s.NoError(store.Update(s.ctx, &domain.RunHistory{
		AccountID: testAccountID,
		Kind:      domain.RunKindIngestion,
		LastRunAt: now,
		LastState: domain.RunStateComplete,
	}))
	s.NoError(store.Update(s.ctx, &domain.RunHistory{
		AccountID:   testAccountID,
		Kind:        domain.RunKindPublish,
		LastRunAt:   now,
		LastState:   domain.RunStateFailed,
		TotalSynced: 7,
	}))

	ingestion, err := store.Get(s.ctx, testAccountID, domain.RunKindIngestion)
	s.NoError(err)
	s.Equal(domain.RunStateComplete, ingestion.LastState)

	publish, err := store.Get(s.ctx, testAccountID, domain.RunKindPublish)
	s.NoError(err)
	s.Equal(domain.RunStateFailed, publish.LastState)
	s.Equal(int64(7), publish.TotalSynced)
}
