package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/database"
	"github.com/linguaflow/linguaflow/pkg/queue"
	testdb "github.com/linguaflow/linguaflow/test/database"
)

// newTestServer builds a server over a real test database.
func newTestServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewServer(":0", client), client
}

// newTestRouter builds a server without a database for handlers that never
// touch it (review bridge, disabled-lexicon paths, middleware).
func newTestRouter(bridges ReviewBridgeSource) *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{bridges: bridges}
	s.engine = gin.New()
	s.engine.Use(requestID(), recovery())
	s.registerRoutes()
	return s
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func unmarshalBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	s, client := newTestServer(t)

	t.Run("healthy database, lexicon disabled", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var health HealthResponse
		unmarshalBody(t, rec, &health)
		assert.Equal(t, healthStatusHealthy, health.Status)
		assert.Equal(t, healthStatusHealthy, health.Checks["database"].Status)
		assert.Equal(t, healthStatusDisabled, health.Checks["lexicon"].Status)
		assert.NotEmpty(t, health.Version)
	})

	t.Run("unstarted pool degrades the report", func(t *testing.T) {
		pool := queue.NewPool("test-pod", client.Client, config.DefaultQueueConfig(), nil, nil)
		s.SetWorkerPool(pool)
		defer s.SetWorkerPool(nil)

		rec := doRequest(t, s, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var health HealthResponse
		unmarshalBody(t, rec, &health)
		assert.Equal(t, healthStatusDegraded, health.Status)
		assert.Equal(t, healthStatusDegraded, health.Checks["worker_pool"].Status)
	})
}
