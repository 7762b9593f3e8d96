package services

import (
	"context"
	"fmt"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// TraceService manages the append-only agent trace log. Traces are never
// updated or deleted; activation moves between them inside one transaction
// so exactly one trace per atom is active at any instant.
type TraceService struct {
	client *ent.Client
}

// NewTraceService creates a new TraceService
func NewTraceService(client *ent.Client) *TraceService {
	return &TraceService{client: client}
}

// AddTrace appends a trace. For content-carrying actions the new trace
// becomes the atom's active translation and the previous active trace is
// deactivated in the same transaction; evaluate traces never activate.
func (s *TraceService) AddTrace(ctx context.Context, req models.AddTraceRequest) (*ent.AgentTrace, error) {
	if req.AtomID == 0 {
		return nil, NewValidationError("atom_id", "required")
	}
	if req.Role == "" {
		return nil, NewValidationError("agent_role", "required")
	}
	if req.Action == "" {
		return nil, NewValidationError("action_type", "required")
	}

	activates := models.ActionActivates(req.Action)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if activates {
		_, err = tx.AgentTrace.Update().
			Where(agenttrace.AtomIDEQ(req.AtomID), agenttrace.IsActiveEQ(true)).
			SetIsActive(false).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to deactivate previous trace: %w", err)
		}
	}

	builder := tx.AgentTrace.Create().
		SetAtomID(req.AtomID).
		SetAgentRole(agenttrace.AgentRole(req.Role)).
		SetActionType(agenttrace.ActionType(req.Action)).
		SetInputTokens(req.InputTokens).
		SetOutputTokens(req.OutputTokens).
		SetIsActive(activates)
	if req.Content != "" {
		builder.SetContent(req.Content)
	}
	if req.QualityReport != nil {
		builder.SetQualityReport(req.QualityReport)
	}
	if req.MetaData != nil {
		builder.SetMetaData(req.MetaData)
	}

	trace, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrConcurrentModification
		}
		return nil, fmt.Errorf("failed to create trace: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return trace, nil
}

// GetActiveTranslation returns the content of the atom's active trace.
func (s *TraceService) GetActiveTranslation(ctx context.Context, atomID int) (string, error) {
	trace, err := s.client.AgentTrace.Query().
		Where(agenttrace.AtomIDEQ(atomID), agenttrace.IsActiveEQ(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get active trace: %w", err)
	}
	return trace.Content, nil
}

// ListTraces returns an atom's full audit log in append order.
func (s *TraceService) ListTraces(ctx context.Context, atomID int) ([]*ent.AgentTrace, error) {
	traces, err := s.client.AgentTrace.Query().
		Where(agenttrace.AtomIDEQ(atomID)).
		Order(ent.Asc(agenttrace.FieldCreatedAt), ent.Asc(agenttrace.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list traces: %w", err)
	}
	return traces, nil
}

// CountActive returns how many active traces the atom has. Used by
// invariant checks in tests; the partial unique index keeps this ≤ 1.
func (s *TraceService) CountActive(ctx context.Context, atomID int) (int, error) {
	n, err := s.client.AgentTrace.Query().
		Where(agenttrace.AtomIDEQ(atomID), agenttrace.IsActiveEQ(true)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active traces: %w", err)
	}
	return n, nil
}
