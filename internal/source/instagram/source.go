package instagram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"gbpsync/internal/domain"
)

const SourceID = "instagram"

// mediaFields is the field selection requested from the media listing
// endpoint; it matches the columns stored on domain.Post.
const mediaFields = "id,media_url,caption,timestamp,media_type,permalink,thumbnail_url"

// graph timestamps carry a colon-less zone offset, e.g. 2024-05-01T09:30:00+0000.
const graphTimeLayout = "2006-01-02T15:04:05-0700"

// Credentials identifies the content account and carries its delegated
// bearer token. Supplied by the caller per fetch, never cached here.
type Credentials struct {
	AccessToken string
	AccountID   string
}

func (c Credentials) Valid() bool {
	return c.AccessToken != "" && c.AccountID != ""
}

type Config struct {
	BaseURL string
	Limit   int
	Timeout time.Duration
}

// Source fetches recent media for an Instagram business account.
type Source struct {
	client  *resty.Client
	baseURL string
	limit   int
	logger  *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	client := resty.New()
	client.SetTimeout(cfg.Timeout)

	return &Source{
		client:  client,
		baseURL: cfg.BaseURL,
		limit:   cfg.Limit,
		logger:  logger.With("source", SourceID),
	}
}

// FetchPosts returns one page of the account's most recent media,
// bounded by the configured limit. It performs no retries; a run that
// fails here is re-invoked by the caller's own cadence.
func (s *Source) FetchPosts(ctx context.Context, creds Credentials) ([]domain.Post, error) {
	if !creds.Valid() {
		return nil, domain.ErrInvalidCredential
	}

	url := fmt.Sprintf("%s/%s/media", s.baseURL, creds.AccountID)

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       mediaFields,
			"limit":        strconv.Itoa(s.limit),
			"access_token": creds.AccessToken,
		}).
		SetResult(&listResponse{}).
		SetError(&errorResponse{}).
		Get(url)
	if err != nil {
		return nil, &domain.UpstreamError{Endpoint: "instagram media", Message: err.Error()}
	}

	if resp.IsError() {
		var msg string
		if apiErr, ok := resp.Error().(*errorResponse); ok && apiErr.Error != nil {
			msg = apiErr.Error.Message
		}
		return nil, &domain.UpstreamError{
			Endpoint: "instagram media",
			Status:   resp.StatusCode(),
			Message:  msg,
		}
	}

	list, ok := resp.Result().(*listResponse)
	if !ok || list == nil {
		return nil, &domain.UpstreamError{Endpoint: "instagram media", Message: "unexpected response body"}
	}

	s.logger.Debug("fetched media page", "count", len(list.Data))

	return s.transform(list.Data, creds.AccountID), nil
}

// transform maps API media to domain posts. Items without an id are kept
// so the reconciler can reject and count them; optional fields stay nil.
func (s *Source) transform(media []Media, accountID string) []domain.Post {
	posts := make([]domain.Post, 0, len(media))

	for _, m := range media {
		post := domain.Post{
			AccountID:  accountID,
			ExternalID: m.ID,
			MediaKind:  domain.MediaKind(m.MediaType),
		}

		if m.MediaURL != "" {
			mediaURL := m.MediaURL
			post.MediaURL = &mediaURL
		}
		if m.Caption != "" {
			caption := m.Caption
			post.Caption = &caption
		}
		if m.Permalink != "" {
			permalink := m.Permalink
			post.Permalink = &permalink
		}

		if m.Timestamp != "" {
			capturedAt, err := parseGraphTime(m.Timestamp)
			if err != nil {
				s.logger.Warn("failed to parse timestamp",
					"external_id", m.ID,
					"timestamp", m.Timestamp,
				)
			} else {
				post.CapturedAt = &capturedAt
			}
		}

		posts = append(posts, post)
	}

	return posts
}

func parseGraphTime(value string) (time.Time, error) {
	t, err := time.Parse(graphTimeLayout, value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
	}
	return t, err
}
