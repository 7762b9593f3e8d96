package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL + pgvector.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	// Check if we're in CI with an external database
	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		// CI mode: use external PostgreSQL service container
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		// Local dev mode: use testcontainers. The pgvector image ships the
		// vector extension the schema depends on.
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"pgvector/pgvector:pg16",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		// Get connection string from container
		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	// Open database connection using pgx driver
	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	// Configure connection pool for tests
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// Vector columns need the extension before table creation
	_, err = db.ExecContext(ctx, "CREATE EXTENSION IF NOT EXISTS vector")
	require.NoError(t, err)

	// Create Ent driver from existing database connection
	// Use dialect.Postgres for Ent compatibility while pgx handles the actual connection
	drv := entsql.OpenDB(dialect.Postgres, db)

	// Create Ent client
	entClient := ent.NewClient(ent.Driver(drv))

	// Run migrations (auto-migration for tests)
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	// Create indexes Ent cannot express
	err = CreateVectorIndexes(ctx, drv)
	require.NoError(t, err)
	err = CreateActiveTraceIndex(ctx, drv)
	require.NoError(t, err)

	// Wrap in our client type
	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Test basic connectivity
	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	// Test health check
	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should report milliseconds")
}

func TestActiveTraceUniquePerAtom(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	work, err := client.ProjectWork.Create().
		SetWorkName("en2zh_1714041600").
		SetSourceLang("english").
		SetTargetLang("chinese_simplified").
		Save(ctx)
	require.NoError(t, err)

	doc, err := client.SourceDoc.Create().
		SetWorkID(work.ID).
		SetFilePath("docs/chapter1.txt").
		Save(ctx)
	require.NoError(t, err)

	atom, err := client.ProcessingAtom.Create().
		SetDocID(doc.ID).
		SetPosition(0).
		SetSourceText("Hello world.").
		SetSourceHash("3e25960a79dbc69b674cd4ec67a72c62").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AgentTrace.Create().
		SetAtomID(atom.ID).
		SetAgentRole(agenttrace.AgentRoleTranslator).
		SetActionType(agenttrace.ActionTypeDraft).
		SetContent("你好，世界。").
		SetIsActive(true).
		Save(ctx)
	require.NoError(t, err)

	// A second active trace for the same atom must be rejected by the
	// partial unique index
	_, err = client.AgentTrace.Create().
		SetAtomID(atom.ID).
		SetAgentRole(agenttrace.AgentRoleTranslator).
		SetActionType(agenttrace.ActionTypeRefine).
		SetContent("你好，世界！").
		SetIsActive(true).
		Save(ctx)
	require.Error(t, err)

	// Inactive traces are unrestricted
	_, err = client.AgentTrace.Create().
		SetAtomID(atom.ID).
		SetAgentRole(agenttrace.AgentRoleQualityAssessor).
		SetActionType(agenttrace.ActionTypeEvaluate).
		SetIsActive(false).
		Save(ctx)
	require.NoError(t, err)
}

func TestAtomPositionUniquePerDoc(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	work, err := client.ProjectWork.Create().
		SetWorkName("en2ja_1714041601").
		SetSourceLang("english").
		SetTargetLang("japanese").
		Save(ctx)
	require.NoError(t, err)

	doc, err := client.SourceDoc.Create().
		SetWorkID(work.ID).
		SetFilePath("docs/intro.txt").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ProcessingAtom.Create().
		SetDocID(doc.ID).
		SetPosition(7).
		SetSourceText("First line.").
		SetSourceHash("aa0d383ff1fcff22f1488cbef1a0a782").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ProcessingAtom.Create().
		SetDocID(doc.ID).
		SetPosition(7).
		SetSourceText("Duplicate position.").
		SetSourceHash("a137726914da5dd75ba6b95e3e1aaca1").
		Save(ctx)
	require.Error(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config with defaults",
			envVars: map[string]string{
				"DB_PASSWORD": "test",
			},
			wantErr: false,
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			wantErr: false,
		},
		{
			name: "invalid DB_PORT",
			envVars: map[string]string{
				"DB_PORT":     "invalid",
				"DB_PASSWORD": "test",
			},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name: "invalid DB_MAX_OPEN_CONNS",
			envVars: map[string]string{
				"DB_MAX_OPEN_CONNS": "not_a_number",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name: "invalid DB_CONN_MAX_LIFETIME",
			envVars: map[string]string{
				"DB_CONN_MAX_LIFETIME": "invalid_duration",
				"DB_PASSWORD":          "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:        "missing password",
			envVars:     map[string]string{},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear all DB-related env vars
			envKeys := []string{
				"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
				"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
				"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
			}
			for _, key := range envKeys {
				os.Unsetenv(key)
			}

			// Set test env vars
			for key, val := range tt.envVars {
				if val != "" {
					os.Setenv(key, val)
				}
			}

			// Cleanup after test
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
				if tt.name == "valid config with defaults" {
					assert.Equal(t, "localhost", cfg.Host)
					assert.Equal(t, 5432, cfg.Port)
					assert.Equal(t, 25, cfg.MaxOpenConns)
					assert.Equal(t, 10, cfg.MaxIdleConns)
				}
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Host:         "localhost",
		Port:         5432,
		User:         "test",
		Password:     "test",
		Database:     "test",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing password",
			mutate:  func(c *Config) { c.Password = "" },
			wantErr: true,
		},
		{
			name:    "missing host",
			mutate:  func(c *Config) { c.Host = "" },
			wantErr: true,
		},
		{
			name:    "idle conns exceed max conns",
			mutate:  func(c *Config) { c.MaxIdleConns = 20 },
			wantErr: true,
		},
		{
			name:    "zero max open conns",
			mutate:  func(c *Config) { c.MaxOpenConns = 0 },
			wantErr: true,
		},
		{
			name:    "negative idle conns",
			mutate:  func(c *Config) { c.MaxIdleConns = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
