package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showshelf/internal/tmdb"
)

func TestSearchTMDB_RelaysProviderBody(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.search.configured = true

	providerBody := `{"page":1,"results":[{"id":550,"title":"Fight Club"}],"total_results":1}`
	deps.search.searchFn = func(ctx context.Context, query, mediaType string) (json.RawMessage, error) {
		assert.Equal(t, "fight club", query)
		assert.Equal(t, "movie", mediaType)
		return json.RawMessage(providerBody), nil
	}

	w := doRequest(t, router, http.MethodGet, "/api/tmdb/search?query=fight+club&type=movie", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, providerBody, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestSearchTMDB_KeyNotConfigured(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.search.configured = false

	w := doRequest(t, router, http.MethodGet, "/api/tmdb/search?query=anything&type=movie", "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "TMDB API key is not configured on the server.", decodeMessage(t, w))
}

func TestSearchTMDB_MissingQuery(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.search.configured = true

	for _, target := range []string{
		"/api/tmdb/search?type=movie",
		"/api/tmdb/search?query=&type=movie",
		"/api/tmdb/search?query=++&type=movie",
	} {
		w := doRequest(t, router, http.MethodGet, target, "")

		require.Equal(t, http.StatusBadRequest, w.Code, "target %s", target)
		assert.Equal(t, "Search query string is required.", decodeMessage(t, w))
	}
}

func TestSearchTMDB_InvalidType(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.search.configured = true

	for _, target := range []string{
		"/api/tmdb/search?query=x",
		"/api/tmdb/search?query=x&type=book",
		"/api/tmdb/search?query=x&type=MOVIE",
	} {
		w := doRequest(t, router, http.MethodGet, target, "")

		require.Equal(t, http.StatusBadRequest, w.Code, "target %s", target)
		assert.Equal(t, "Search type must be either 'movie' or 'tv'.", decodeMessage(t, w))
	}
}

func TestSearchTMDB_RelaysProviderError(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.search.configured = true

	deps.search.searchFn = func(ctx context.Context, query, mediaType string) (json.RawMessage, error) {
		return nil, &tmdb.APIError{
			StatusCode:    http.StatusUnauthorized,
			StatusMessage: "Invalid API key: You must be granted a valid key.",
		}
	}

	w := doRequest(t, router, http.MethodGet, "/api/tmdb/search?query=x&type=tv", "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "TMDB API Error: Invalid API key: You must be granted a valid key.", decodeMessage(t, w))
}

func TestSearchTMDB_TransportFailure(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.search.configured = true

	deps.search.searchFn = func(ctx context.Context, query, mediaType string) (json.RawMessage, error) {
		return nil, errors.New("dial tcp: connection refused")
	}

	w := doRequest(t, router, http.MethodGet, "/api/tmdb/search?query=x&type=movie", "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch data from TMDB.", decodeMessage(t, w))
}
