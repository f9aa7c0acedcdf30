package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"showshelf/internal/config"
	"showshelf/internal/logger"
)

// Client is a thin search gateway to the TMDB REST API. Provider responses
// are relayed as raw JSON; the server never reshapes result payloads.
type Client struct {
	client *resty.Client
	apiKey string

	logger *logger.Logger
}

// APIError is a non-2xx answer from the provider, carrying its HTTP status
// and human-readable status_message for relay to the caller.
type APIError struct {
	StatusCode    int
	StatusMessage string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb api error (http %d): %s", e.StatusCode, e.StatusMessage)
}

// providerError is the body TMDB sends alongside a non-2xx status.
type providerError struct {
	StatusMessage string `json:"status_message"`
}

// NewClient constructs a TMDB client from configuration. The API key may be
// empty; Configured lets callers detect that before issuing a request.
func NewClient(cfg config.TMDB, logger *logger.Logger) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &Client{
		client: client,
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Search performs /search/{mediaType} against the provider and returns the
// raw response body on success.
//
// The query is trimmed before sending; adult content is always excluded.
// A non-2xx provider answer is returned as [*APIError] so the caller can
// relay the provider's status and message. Transport failures (DNS,
// timeout, connection refused) surface as ordinary errors.
func (c *Client) Search(ctx context.Context, query, mediaType string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key":       c.apiKey,
			"query":         strings.TrimSpace(query),
			"include_adult": "false",
		}).
		Get("/search/" + mediaType)
	if err != nil {
		log.Err(err).
			Str("func", "tmdb.Client.Search").
			Str("media_type", mediaType).
			Msg("provider request failed")
		return nil, fmt.Errorf("tmdb request failed: %w", err)
	}

	if resp.IsError() {
		var provider providerError
		if unmarshalErr := json.Unmarshal(resp.Body(), &provider); unmarshalErr != nil || provider.StatusMessage == "" {
			provider.StatusMessage = "Unknown TMDB error"
		}

		log.Warn().
			Int("status", resp.StatusCode()).
			Str("status_message", provider.StatusMessage).
			Msg("provider returned an error")

		return nil, &APIError{
			StatusCode:    resp.StatusCode(),
			StatusMessage: provider.StatusMessage,
		}
	}

	return json.RawMessage(resp.Body()), nil
}
