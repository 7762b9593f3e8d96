// Package e2e boots a complete service instance — queue, executor, HTTP
// API — against a real PostgreSQL schema and drives it the way a client
// would, with the LLM transport replaced by a scripted mock.
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/pkg/api"
	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/database"
	"github.com/linguaflow/linguaflow/pkg/events"
	"github.com/linguaflow/linguaflow/pkg/queue"
	testdb "github.com/linguaflow/linguaflow/test/database"
)

// TestApp boots a complete translation service for e2e testing.
type TestApp struct {
	// Core
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Mocks / test wiring
	LLMClient *ScriptedLLMClient

	// Real infrastructure
	EventPublisher *events.Publisher
	Executor       *queue.Executor
	WorkerPool     *queue.Pool
	Server         *api.Server

	// Runtime
	BaseURL string // e.g. "http://127.0.0.1:54321"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	cfg               *config.Config
	llmClient         *ScriptedLLMClient
	workerCount       int
	maxConcurrentRuns int
	runTimeout        time.Duration
	dbClient          *database.Client // injected DB client (for multi-replica tests)
	podID             string           // custom pod ID (for multi-replica tests)
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom config.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithLLMClient sets a pre-scripted LLM client.
func WithLLMClient(client *ScriptedLLMClient) TestAppOption {
	return func(c *testAppConfig) { c.llmClient = client }
}

// WithWorkerCount sets the number of worker pool goroutines.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithMaxConcurrentRuns sets the global limit of runs processing at once.
func WithMaxConcurrentRuns(n int) TestAppOption {
	return func(c *testAppConfig) { c.maxConcurrentRuns = n }
}

// WithRunTimeout sets the timeout for run execution.
func WithRunTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.runTimeout = d }
}

// WithDBClient injects a pre-created database client, skipping the default
// per-test schema creation. Used for multi-replica tests where multiple
// TestApp instances share the same database schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithPodID overrides the auto-generated pod ID. Required for multi-replica
// tests so each replica gets a distinct identity for run claiming and
// orphan detection.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// NewTestApp creates and starts a full test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	// Apply options.
	tc := &testAppConfig{
		workerCount: 1,
		runTimeout:  60 * time.Second,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.maxConcurrentRuns == 0 {
		tc.maxConcurrentRuns = tc.workerCount
	}

	// Default config if not provided.
	if tc.cfg == nil {
		tc.cfg = defaultTestConfig()
	}

	// Ensure QueueConfig exists with test-appropriate settings.
	if tc.cfg.Queue == nil {
		tc.cfg.Queue = &config.QueueConfig{}
	}
	tc.cfg.Queue.WorkerCount = tc.workerCount
	tc.cfg.Queue.MaxConcurrentRuns = tc.maxConcurrentRuns
	tc.cfg.Queue.PollInterval = 100 * time.Millisecond
	tc.cfg.Queue.PollIntervalJitter = 50 * time.Millisecond
	tc.cfg.Queue.RunTimeout = tc.runTimeout
	tc.cfg.Queue.HeartbeatInterval = 5 * time.Second
	tc.cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	tc.cfg.Queue.OrphanDetectionInterval = 1 * time.Minute
	tc.cfg.Queue.OrphanThreshold = 1 * time.Minute

	// Default LLM client if not provided.
	if tc.llmClient == nil {
		tc.llmClient = NewScriptedLLMClient()
	}

	// 1. Database — per-test schema unless a shared client is injected.
	var dbClient *database.Client
	if tc.dbClient != nil {
		dbClient = tc.dbClient
	} else {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Event publishing — real, backed by the test DB.
	publisher := events.NewPublisher(dbClient.DB())

	// 3. Run executor over the scripted LLM. The lexicon stays nil: a nil
	// store is a valid empty lexicon, and no scenario here asserts term
	// persistence through Elasticsearch.
	executor := queue.NewExecutor(tc.cfg, dbClient, tc.llmClient, nil, publisher)

	// 4. Worker pool.
	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-test-%s", t.Name())
	}
	pool := queue.NewPool(podID, entClient, tc.cfg.Queue, executor, publisher)
	ctx := context.Background()
	require.NoError(t, pool.Start(ctx))

	// 5. HTTP server on a random port.
	server := api.NewServer("127.0.0.1:0", dbClient)
	server.SetWorkerPool(pool)
	server.SetReviewBridges(executor)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = server.StartWithListener(ln)
	}()

	app := &TestApp{
		Config:         tc.cfg,
		DBClient:       dbClient,
		EntClient:      entClient,
		LLMClient:      tc.llmClient,
		EventPublisher: publisher,
		Executor:       executor,
		WorkerPool:     pool,
		Server:         server,
		BaseURL:        fmt.Sprintf("http://%s", ln.Addr().String()),
		t:              t,
	}

	// Register cleanup in reverse-creation order.
	t.Cleanup(func() {
		pool.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		// DB cleanup handled by testdb.NewTestClient/SetupTestDatabase
	})

	return app
}

// defaultTestConfig carries the built-in pipeline over a stub provider; the
// scripted client never dials it.
func defaultTestConfig() *config.Config {
	return &config.Config{
		Pipeline: config.DefaultPipelineConfig(),
		LLM: &config.LLMConfig{
			Addr: "127.0.0.1:0",
			Platform: config.PlatformConfig{
				Provider: "test-provider",
				Model:    "test-model",
			},
		},
	}
}
