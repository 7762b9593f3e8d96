package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateVectorIndexes creates pgvector ivfflat indexes for cosine similarity
// search. Ent/Atlas cannot express vector operator classes, so these are
// asserted here on every startup; they must match the definitions in
// 20250612101500_init_schema.up.sql.
func CreateVectorIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Atom semantic vectors (duplicate detection, context retrieval)
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_processing_atoms_semantic_vec
		ON processing_atoms USING ivfflat (semantic_vec vector_cosine_ops)
		WITH (lists = 100)`)
	if err != nil {
		return fmt.Errorf("failed to create atom vector index: %w", err)
	}

	// Knowledge base vectors (RAG retrieval)
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_knowledge_base_vector
		ON knowledge_base USING ivfflat (vector vector_cosine_ops)
		WITH (lists = 100)`)
	if err != nil {
		return fmt.Errorf("failed to create knowledge vector index: %w", err)
	}

	return nil
}

// CreateActiveTraceIndex creates the partial unique index guaranteeing at
// most one active trace per atom. The index also lives in the init migration;
// re-asserting it here protects databases provisioned by external tooling.
func CreateActiveTraceIndex(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS agenttrace_atom_id
		ON agent_traces (atom_id)
		WHERE is_active`)
	if err != nil {
		return fmt.Errorf("failed to create active trace index: %w", err)
	}

	return nil
}
