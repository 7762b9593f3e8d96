// Package api exposes the HTTP control surface: run enqueueing and
// lifecycle, the human-review bridge, lexicon lookups, work statistics and
// health. All state lives in the services and stores handed to the server;
// handlers stay thin.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/linguaflow/linguaflow/pkg/agent/review"
	"github.com/linguaflow/linguaflow/pkg/database"
	"github.com/linguaflow/linguaflow/pkg/lexicon"
	"github.com/linguaflow/linguaflow/pkg/queue"
	"github.com/linguaflow/linguaflow/pkg/services"
)

// ReviewBridgeSource resolves the review bridge of a run processing on this
// pod. *queue.Executor implements it.
type ReviewBridgeSource interface {
	Bridge(runID string) (*review.Bridge, bool)
}

// Server is the HTTP API server.
type Server struct {
	db    *database.Client
	runs  *services.RunService
	works *services.WorkService

	// Optional collaborators, attached via setters before Start.
	lexicon *lexicon.Store
	pool    *queue.Pool
	bridges ReviewBridgeSource

	engine *gin.Engine
	http   *http.Server
}

// NewServer builds the server and registers all routes.
func NewServer(addr string, db *database.Client) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		db:    db,
		runs:  services.NewRunService(db.Client),
		works: services.NewWorkService(db.Client),
	}

	s.engine = gin.New()
	s.engine.Use(requestID(), requestLogger(), recovery())
	s.registerRoutes()

	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// SetWorkerPool attaches the pod's queue pool for in-flight cancellation
// and health reporting.
func (s *Server) SetWorkerPool(pool *queue.Pool) {
	s.pool = pool
}

// SetReviewBridges attaches the source of per-run review bridges.
func (s *Server) SetReviewBridges(src ReviewBridgeSource) {
	s.bridges = src
}

// SetLexicon attaches the terminology index. A nil store disables the term
// endpoints.
func (s *Server) SetLexicon(store *lexicon.Store) {
	s.lexicon = store
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.healthHandler)

	v1 := s.engine.Group("/api/v1")
	v1.POST("/runs", s.createRun)
	v1.GET("/runs", s.listRuns)
	v1.GET("/runs/:id", s.getRun)
	v1.POST("/runs/:id/cancel", s.cancelRun)
	v1.GET("/runs/:id/review", s.getReview)
	v1.POST("/runs/:id/review", s.postReview)
	v1.GET("/works/:id/terms", s.searchTerms)
	v1.POST("/works/:id/terms/:key/confirm", s.confirmTerm)
	v1.GET("/works/:id/stats", s.workStats)
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	slog.Info("API server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// StartWithListener serves on an existing listener, for callers that bind
// to an ephemeral port themselves.
func (s *Server) StartWithListener(ln net.Listener) error {
	slog.Info("API server listening", "addr", ln.Addr().String())
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the router, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
