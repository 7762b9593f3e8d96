package services

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/pgvector/pgvector-go"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/knowledgebase"
)

// KnowledgeService manages reference material retrieved during prompt
// assembly: translation memory, glossaries, and style guides.
type KnowledgeService struct {
	client *ent.Client
}

// NewKnowledgeService creates a new KnowledgeService
func NewKnowledgeService(client *ent.Client) *KnowledgeService {
	return &KnowledgeService{client: client}
}

// AddEntry stores one knowledge item. vec may be nil when no embedding is
// available; such entries are excluded from similarity search but still
// listable by type.
func (s *KnowledgeService) AddEntry(ctx context.Context, workID int, content, kbType string, vec *pgvector.Vector, tags []string) (*ent.KnowledgeBase, error) {
	if content == "" {
		return nil, NewValidationError("content", "required")
	}
	entryType := knowledgebase.KBType(kbType)
	if err := knowledgebase.KBTypeValidator(entryType); err != nil {
		return nil, NewValidationError("kb_type", fmt.Sprintf("unknown type %q", kbType))
	}

	builder := s.client.KnowledgeBase.Create().
		SetWorkID(workID).
		SetContent(content).
		SetKBType(entryType)
	if vec != nil {
		builder.SetVector(*vec)
	}
	if len(tags) > 0 {
		builder.SetTags(tags)
	}

	entry, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add knowledge entry: %w", err)
	}
	return entry, nil
}

// SearchSimilar returns the work's nearest knowledge entries by cosine
// distance, nearest first.
func (s *KnowledgeService) SearchSimilar(ctx context.Context, workID int, vec pgvector.Vector, limit int) ([]*ent.KnowledgeBase, error) {
	if limit <= 0 {
		limit = 3
	}

	entries, err := s.client.KnowledgeBase.Query().
		Where(knowledgebase.WorkIDEQ(workID), knowledgebase.VectorNotNil()).
		Order(func(sel *sql.Selector) {
			sel.OrderExpr(sql.Expr(fmt.Sprintf("vector <=> '%s'::vector", vec.String())))
		}).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search knowledge base: %w", err)
	}
	return entries, nil
}

// ListByType returns all entries of one type for a work.
func (s *KnowledgeService) ListByType(ctx context.Context, workID int, kbType string) ([]*ent.KnowledgeBase, error) {
	entries, err := s.client.KnowledgeBase.Query().
		Where(knowledgebase.WorkIDEQ(workID), knowledgebase.KBTypeEQ(knowledgebase.KBType(kbType))).
		Order(ent.Asc(knowledgebase.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge entries: %w", err)
	}
	return entries, nil
}

// CountEntries returns how many knowledge items a work has. The translator
// uses it to skip embedding round-trips when there is nothing to retrieve.
func (s *KnowledgeService) CountEntries(ctx context.Context, workID int) (int, error) {
	n, err := s.client.KnowledgeBase.Query().
		Where(knowledgebase.WorkIDEQ(workID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count knowledge entries: %w", err)
	}
	return n, nil
}
