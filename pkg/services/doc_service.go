package services

import (
	"context"
	"fmt"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
)

// DocService manages source documents under a work.
type DocService struct {
	client *ent.Client
}

// NewDocService creates a new DocService
func NewDocService(client *ent.Client) *DocService {
	return &DocService{client: client}
}

// UpsertDoc returns the document row for (workID, filePath), creating it on
// first sight. Resumed runs land on the existing row.
func (s *DocService) UpsertDoc(ctx context.Context, workID int, filePath string) (*ent.SourceDoc, error) {
	if filePath == "" {
		return nil, NewValidationError("file_path", "required")
	}

	existing, err := s.client.SourceDoc.Query().
		Where(sourcedoc.WorkIDEQ(workID), sourcedoc.FilePathEQ(filePath)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query doc: %w", err)
	}

	doc, err := s.client.SourceDoc.Create().
		SetWorkID(workID).
		SetFilePath(filePath).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.SourceDoc.Query().
				Where(sourcedoc.WorkIDEQ(workID), sourcedoc.FilePathEQ(filePath)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create doc: %w", err)
	}

	return doc, nil
}

// GetDoc retrieves a document by ID
func (s *DocService) GetDoc(ctx context.Context, docID int) (*ent.SourceDoc, error) {
	doc, err := s.client.SourceDoc.Get(ctx, docID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doc: %w", err)
	}
	return doc, nil
}

// ListDocs returns all documents of a work in creation order.
func (s *DocService) ListDocs(ctx context.Context, workID int) ([]*ent.SourceDoc, error) {
	docs, err := s.client.SourceDoc.Query().
		Where(sourcedoc.WorkIDEQ(workID)).
		Order(ent.Asc(sourcedoc.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list docs: %w", err)
	}
	return docs, nil
}

// MarkProcessed flips the document to processed and records how many atoms
// it produced. Called once atom registration for the file is complete.
func (s *DocService) MarkProcessed(ctx context.Context, docID, atomCount int) error {
	err := s.client.SourceDoc.UpdateOneID(docID).
		SetStatus(sourcedoc.StatusProcessed).
		SetAtomCount(atomCount).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark doc processed: %w", err)
	}
	return nil
}
