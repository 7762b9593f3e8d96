// LinguaFlow orchestrator server — provides the HTTP API, manages queue
// workers, and drives document translation runs end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/linguaflow/linguaflow/pkg/agent"
	"github.com/linguaflow/linguaflow/pkg/api"
	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/database"
	"github.com/linguaflow/linguaflow/pkg/events"
	"github.com/linguaflow/linguaflow/pkg/lexicon"
	"github.com/linguaflow/linguaflow/pkg/queue"
	"github.com/linguaflow/linguaflow/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// setupLogging installs the default text handler at the level named by
// LOG_LEVEL (debug, info, warn, error).
func setupLogging() {
	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			level = slog.LevelInfo
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Full())
		return
	}

	setupLogging()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()

	slog.Info("Starting LinguaFlow",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan requeue: runs this pod held before a crash
	// go back to pending before workers start claiming.
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan will catch them
	}

	// 4. Terminology index. A disabled lexicon yields a nil store, which every
	// caller treats as a valid empty lexicon.
	lex, err := lexicon.New(cfg.Elasticsearch)
	if err != nil {
		slog.Error("Failed to initialize lexicon store", "error", err)
		os.Exit(1)
	}
	if lex != nil {
		if err := lex.EnsureIndex(ctx); err != nil {
			slog.Warn("Lexicon index unavailable, terminology lookups degrade to empty",
				"error", err)
		} else {
			slog.Info("Lexicon index ready", "index", cfg.Elasticsearch.IndexName)
		}
	}

	// 5. LLM sidecar client.
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on
	// first RPC call
	llmClient, err := agent.NewGRPCClient(cfg.LLM.Addr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", cfg.LLM.Addr)

	// 6. Events publisher (persisted rows + pg_notify fan-out)
	eventPublisher := events.NewPublisher(dbClient.DB())

	// 7. Run executor and worker pool (before the HTTP server, so review
	// bridges exist when the first request lands)
	executor := queue.NewExecutor(cfg, dbClient, llmClient, lex, eventPublisher)

	workerPool := queue.NewPool(podID, dbClient.Client, cfg.Queue, executor, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention sweeper for old runs and expired events
	retention := queue.NewRetention(cfg.Retention, dbClient.Client)
	retention.Start(ctx)

	// 9. HTTP server
	httpServer := api.NewServer(cfg.API.Addr, dbClient)
	httpServer.SetWorkerPool(workerPool)
	httpServer.SetReviewBridges(executor)
	httpServer.SetLexicon(lex)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.API.Addr)
		if err := httpServer.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("LinguaFlow started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop accepting requests first, then drain the
	// workers, then the background sweeper.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	retention.Stop()

	slog.Info("Shutdown complete")
}
