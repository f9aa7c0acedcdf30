package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordRequest(t *testing.T) {
	c := NewCollector()

	c.RecordRequest("GET", "/api/list/{username}", 200, 15*time.Millisecond)
	c.RecordRequest("GET", "/api/list/{username}", 200, 20*time.Millisecond)
	c.RecordRequest("POST", "/api/users", 201, 5*time.Millisecond)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(w, r)

	require.Equal(t, 200, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, `showshelf_http_requests_total{method="GET",route="/api/list/{username}",status="200"} 2`)
	assert.Contains(t, body, `showshelf_http_requests_total{method="POST",route="/api/users",status="201"} 1`)
	assert.True(t, strings.Contains(body, "showshelf_http_request_duration_seconds_bucket"))
}
