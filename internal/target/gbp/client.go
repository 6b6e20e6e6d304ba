package gbp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"gbpsync/internal/domain"
)

// SummaryLimit bounds the localPost summary, in characters.
const SummaryLimit = 150

// Credentials carries the delegated token and the business location the
// posts are published under. Supplied by the caller per publish.
type Credentials struct {
	AccessToken string
	LocationID  string
}

func (c Credentials) Valid() bool {
	return c.AccessToken != "" && c.LocationID != ""
}

type Config struct {
	BaseURL         string
	LanguageCode    string
	FallbackSummary string
	Timeout         time.Duration
}

// Client publishes posts to the Google Business Profile localPosts API.
type Client struct {
	client          *resty.Client
	baseURL         string
	languageCode    string
	fallbackSummary string
	logger          *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	client := resty.New()
	client.SetTimeout(cfg.Timeout)

	return &Client{
		client:          client,
		baseURL:         cfg.BaseURL,
		languageCode:    cfg.LanguageCode,
		fallbackSummary: cfg.FallbackSummary,
		logger:          logger.With("target", "gbp"),
	}
}

// BuildPayload maps a stored post to the localPost shape: the caption
// truncated to SummaryLimit (or the configured fallback when absent)
// and a single media descriptor tagged by media kind.
func (c *Client) BuildPayload(post *domain.Post) LocalPost {
	summary := c.fallbackSummary
	if post.HasCaption() {
		summary = truncate(*post.Caption, SummaryLimit)
	}

	format := "PHOTO"
	if post.MediaKind == domain.MediaKindVideo {
		format = "VIDEO"
	}

	var sourceURL string
	if post.MediaURL != nil {
		sourceURL = *post.MediaURL
	}

	return LocalPost{
		LanguageCode: c.languageCode,
		Summary:      summary,
		Media: []MediaItem{
			{MediaFormat: format, SourceURL: sourceURL},
		},
	}
}

// CreateLocalPost submits one post to the target location. Any returned
// error is a per-item failure; the caller decides whether to continue.
func (c *Client) CreateLocalPost(ctx context.Context, creds Credentials, post *domain.Post) error {
	if !creds.Valid() {
		return domain.ErrInvalidCredential
	}

	url := fmt.Sprintf("%s/locations/%s/localPosts", c.baseURL, creds.LocationID)

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(creds.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(c.BuildPayload(post)).
		SetError(&errorResponse{}).
		Post(url)
	if err != nil {
		return &domain.UpstreamError{Endpoint: "gbp localPosts", Message: err.Error()}
	}

	if resp.IsError() {
		var msg string
		if apiErr, ok := resp.Error().(*errorResponse); ok && apiErr.Error != nil {
			msg = apiErr.Error.Message
		}
		return &domain.UpstreamError{
			Endpoint: "gbp localPosts",
			Status:   resp.StatusCode(),
			Message:  msg,
		}
	}

	c.logger.Debug("created local post", "external_id", post.ExternalID)

	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
