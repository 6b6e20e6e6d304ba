package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gbpsync/internal/domain"
	"gbpsync/internal/source/instagram"
	"gbpsync/internal/target/gbp"
)

// SyncService orchestrates the two pipeline runs: ingestion (source ->
// store) and publish (store -> target). It holds no run state of its
// own; each invocation returns a fresh RunResult. Callers must not run
// two runs concurrently against the same account.
type SyncService struct {
	source      Source
	target      Target
	posts       PostStore
	history     RunHistoryStore
	notifier    Notifier
	sourceCreds instagram.Credentials
	targetCreds gbp.Credentials
	logger      *slog.Logger
}

func NewSyncService(
	source Source,
	target Target,
	posts PostStore,
	history RunHistoryStore,
	notifier Notifier,
	sourceCreds instagram.Credentials,
	targetCreds gbp.Credentials,
	logger *slog.Logger,
) *SyncService {
	return &SyncService{
		source:      source,
		target:      target,
		posts:       posts,
		history:     history,
		notifier:    notifier,
		sourceCreds: sourceCreds,
		targetCreds: targetCreds,
		logger:      logger.With("account_id", sourceCreds.AccountID),
	}
}

// RunIngestion fetches the account's recent posts and reconciles them
// into the store. The run fails only when the fetch itself fails; a
// write failure on one post is counted and the run moves on.
func (s *SyncService) RunIngestion(ctx context.Context) (*domain.RunResult, error) {
	start := time.Now()
	result := &domain.RunResult{Kind: domain.RunKindIngestion}

	s.logger.Info("starting ingestion run")

	posts, err := s.source.FetchPosts(ctx, s.sourceCreds)
	if err != nil {
		return s.failRun(ctx, result, start, fmt.Errorf("fetch posts: %w", err))
	}
	result.Seen = len(posts)

	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		if p.ExternalID != "" {
			ids = append(ids, p.ExternalID)
		}
	}

	// One bulk lookup for the whole batch, then classify in memory.
	existing, err := s.posts.GetSyncFlagsByExternalIDs(ctx, s.sourceCreds.AccountID, ids)
	if err != nil {
		return s.failRun(ctx, result, start, fmt.Errorf("load known ids: %w", err))
	}

	for i := range posts {
		post := &posts[i]

		if post.ExternalID == "" {
			result.Errors++
			result.RecordFailure("", "missing external id")
			continue
		}

		if _, known := existing[post.ExternalID]; known {
			if err := s.posts.UpdateContent(ctx, post); err != nil {
				s.logger.Warn("failed to update post",
					"external_id", post.ExternalID,
					"error", err,
				)
				result.Errors++
				result.RecordFailure(post.ExternalID, err.Error())
				continue
			}
			result.Updated++
		} else {
			if _, err := s.posts.Insert(ctx, post); err != nil {
				s.logger.Warn("failed to insert post",
					"external_id", post.ExternalID,
					"error", err,
				)
				result.Errors++
				result.RecordFailure(post.ExternalID, err.Error())
				continue
			}
			result.Created++
		}
	}

	result.State = domain.RunStateComplete
	result.Duration = time.Since(start)
	s.recordRun(ctx, result)

	s.logger.Info("ingestion run completed",
		"seen", result.Seen,
		"created", result.Created,
		"updated", result.Updated,
		"errors", result.Errors,
		"duration", result.Duration,
	)

	return result, nil
}

// RunPublish loads the publishable records matching the given ids and
// pushes them to the target one at a time, marking each synced on
// success. Posts are published sequentially; the target API is
// rate-sensitive and one failing post must not block the rest.
func (s *SyncService) RunPublish(ctx context.Context, externalIDs []string) (*domain.RunResult, error) {
	start := time.Now()
	result := &domain.RunResult{Kind: domain.RunKindPublish}

	s.logger.Info("starting publish run", "requested", len(externalIDs))

	if !s.targetCreds.Valid() {
		return s.failRun(ctx, result, start, domain.ErrInvalidCredential)
	}
	if len(externalIDs) == 0 {
		return s.failRun(ctx, result, start, domain.ErrNoRecordsFound)
	}

	posts, err := s.posts.GetPublishableByExternalIDs(ctx, s.sourceCreds.AccountID, externalIDs)
	if err != nil {
		return s.failRun(ctx, result, start, fmt.Errorf("load posts: %w", err))
	}
	if len(posts) == 0 {
		return s.failRun(ctx, result, start, domain.ErrNoRecordsFound)
	}

	for i := range posts {
		post := &posts[i]
		result.Attempted++

		if err := s.target.CreateLocalPost(ctx, s.targetCreds, post); err != nil {
			s.logger.Warn("publish failed",
				"external_id", post.ExternalID,
				"error", err,
			)
			result.Failed++
			result.RecordFailure(post.ExternalID, err.Error())
			continue
		}

		syncedAt := time.Now().UTC()
		if err := s.posts.MarkSynced(ctx, post.AccountID, post.ExternalID, syncedAt); err != nil {
			// The remote post exists at this point; report the store
			// failure rather than publishing again.
			s.logger.Warn("failed to mark post synced",
				"external_id", post.ExternalID,
				"error", err,
			)
			result.Failed++
			result.RecordFailure(post.ExternalID, fmt.Sprintf("mark synced: %v", err))
			continue
		}
		post.IsSynced = true
		post.SyncedAt = &syncedAt

		result.Succeeded++
		result.RecordSuccess(post.ExternalID)

		if s.notifier != nil {
			if err := s.notifier.NotifySynced(ctx, post); err != nil {
				s.logger.Warn("failed to emit synced event",
					"external_id", post.ExternalID,
					"error", err,
				)
			}
		}
	}

	result.State = domain.RunStateComplete
	result.Duration = time.Since(start)
	s.recordRun(ctx, result)

	s.logger.Info("publish run completed",
		"attempted", result.Attempted,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"duration", result.Duration,
	)

	return result, nil
}

func (s *SyncService) failRun(ctx context.Context, result *domain.RunResult, start time.Time, err error) (*domain.RunResult, error) {
	result.State = domain.RunStateFailed
	result.Err = err
	result.Duration = time.Since(start)
	s.recordRun(ctx, result)

	s.logger.Error("run failed", "kind", result.Kind, "error", err)

	return result, err
}

// recordRun persists the run watermark and emits the run event. Both
// are best effort; the run outcome is already decided.
func (s *SyncService) recordRun(ctx context.Context, result *domain.RunResult) {
	history, err := s.history.Get(ctx, s.sourceCreds.AccountID, result.Kind)
	if err != nil {
		s.logger.Warn("failed to load run history", "error", err)
	} else {
		history.LastRunAt = time.Now().UTC()
		history.LastState = result.State
		history.TotalCreated += int64(result.Created)
		history.TotalUpdated += int64(result.Updated)
		history.TotalSynced += int64(result.Succeeded)
		history.TotalErrors += int64(result.Errors + result.Failed)

		if err := s.history.Update(ctx, history); err != nil {
			s.logger.Warn("failed to update run history", "error", err)
		}
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyRun(ctx, result); err != nil {
			s.logger.Warn("failed to emit run event", "error", err)
		}
	}
}
