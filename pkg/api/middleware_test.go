package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	s := newTestRouter(nil)

	t.Run("mints an id when the caller sends none", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/runs/run-1/review", nil)

		got := rec.Header().Get(requestIDHeader)
		assert.NotEmpty(t, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "minted id should be a uuid")
	})

	t.Run("echoes the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/run-1/review", nil)
		req.Header.Set(requestIDHeader, "req-42")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, "req-42", rec.Header().Get(requestIDHeader))
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	s := newTestRouter(nil)
	s.engine.GET("/boom", func(*gin.Context) { panic("kaput") })

	rec := doRequest(t, s, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	unmarshalBody(t, rec, &resp)
	assert.Equal(t, "internal server error", resp.Error)
}
