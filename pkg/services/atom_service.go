package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/pgvector/pgvector-go"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/processingatom"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// AtomService manages processing atoms, the line-level durable units.
type AtomService struct {
	client *ent.Client
}

// NewAtomService creates a new AtomService
func NewAtomService(client *ent.Client) *AtomService {
	return &AtomService{client: client}
}

// SourceHash returns the change-detection hash stored on every atom.
func SourceHash(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// CreateAtomsBatch registers one atom per item in a single bulk insert.
// Returned atoms align index-for-index with the input so callers can record
// the generated IDs. Positions repeat across resumes, so a constraint error
// means the document is already registered.
func (s *AtomService) CreateAtomsBatch(ctx context.Context, docID int, items []*models.Item) ([]*ent.ProcessingAtom, error) {
	if len(items) == 0 {
		return nil, nil
	}

	builders := make([]*ent.ProcessingAtomCreate, len(items))
	for i, it := range items {
		builders[i] = s.client.ProcessingAtom.Create().
			SetDocID(docID).
			SetPosition(it.RowIndex).
			SetSourceText(it.SourceText).
			SetSourceHash(SourceHash(it.SourceText))
	}

	atoms, err := s.client.ProcessingAtom.CreateBulk(builders...).Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create atoms: %w", err)
	}

	return atoms, nil
}

// GetAtom retrieves an atom by ID
func (s *AtomService) GetAtom(ctx context.Context, atomID int) (*ent.ProcessingAtom, error) {
	atom, err := s.client.ProcessingAtom.Get(ctx, atomID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get atom: %w", err)
	}
	return atom, nil
}

// ListAtoms returns a document's atoms in position order.
func (s *AtomService) ListAtoms(ctx context.Context, docID int) ([]*ent.ProcessingAtom, error) {
	atoms, err := s.client.ProcessingAtom.Query().
		Where(processingatom.DocIDEQ(docID)).
		Order(ent.Asc(processingatom.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list atoms: %w", err)
	}
	return atoms, nil
}

// ListByStatus returns a document's atoms with the given status code in
// position order. Resume uses it to find what is still untranslated.
func (s *AtomService) ListByStatus(ctx context.Context, docID, statusCode int) ([]*ent.ProcessingAtom, error) {
	atoms, err := s.client.ProcessingAtom.Query().
		Where(processingatom.DocIDEQ(docID), processingatom.StatusCodeEQ(statusCode)).
		Order(ent.Asc(processingatom.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list atoms by status: %w", err)
	}
	return atoms, nil
}

// UpdateTranslation writes the atom's current translation. The status code
// only ever advances; passing a lower code keeps the stored one.
func (s *AtomService) UpdateTranslation(ctx context.Context, atomID int, text string, statusCode int) error {
	atom, err := s.client.ProcessingAtom.Get(ctx, atomID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get atom: %w", err)
	}

	if statusCode < atom.StatusCode {
		statusCode = atom.StatusCode
	}

	err = s.client.ProcessingAtom.UpdateOne(atom).
		SetTranslatedText(text).
		SetStatusCode(statusCode).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update translation: %w", err)
	}
	return nil
}

// SetQuality records the evaluation outcome on the atom row. The full report
// also lands in an evaluate trace; this copy is for cheap filtering.
func (s *AtomService) SetQuality(ctx context.Context, atomID int, score float64, examination map[string]any) error {
	update := s.client.ProcessingAtom.UpdateOneID(atomID).
		SetQualityScore(score)
	if examination != nil {
		update.SetExamination(examination)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set quality: %w", err)
	}
	return nil
}

// SetContextInfo stores prompt-context metadata (window positions, injected
// terms) for later inspection.
func (s *AtomService) SetContextInfo(ctx context.Context, atomID int, info map[string]any) error {
	err := s.client.ProcessingAtom.UpdateOneID(atomID).
		SetContextInfo(info).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set context info: %w", err)
	}
	return nil
}

// SetSemanticVec stores the source-text embedding for similarity lookups.
func (s *AtomService) SetSemanticVec(ctx context.Context, atomID int, vec pgvector.Vector) error {
	err := s.client.ProcessingAtom.UpdateOneID(atomID).
		SetSemanticVec(vec).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set semantic vec: %w", err)
	}
	return nil
}

// FindSimilar returns the document's nearest atoms by cosine distance to the
// query vector, nearest first. Atoms without embeddings are skipped.
func (s *AtomService) FindSimilar(ctx context.Context, docID int, vec pgvector.Vector, limit int) ([]*ent.ProcessingAtom, error) {
	if limit <= 0 {
		limit = 5
	}

	atoms, err := s.client.ProcessingAtom.Query().
		Where(processingatom.DocIDEQ(docID), processingatom.SemanticVecNotNil()).
		Order(func(sel *sql.Selector) {
			// The vector literal is numeric-only output of pgvector's
			// String(); inlining it avoids placeholder renumbering
			// against the WHERE clause args.
			sel.OrderExpr(sql.Expr(fmt.Sprintf("semantic_vec <=> '%s'::vector", vec.String())))
		}).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search similar atoms: %w", err)
	}
	return atoms, nil
}
