package services

import (
	"context"
	"fmt"
	"time"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/ent/processingatom"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// WorkService manages project work lifecycle. A work is the durable identity
// of one translation project; runs attach to it and resumes reuse it.
type WorkService struct {
	client *ent.Client
}

// NewWorkService creates a new WorkService
func NewWorkService(client *ent.Client) *WorkService {
	return &WorkService{client: client}
}

// GetOrCreateWork returns the work with the given name, creating it on first
// use. The operation is idempotent: concurrent creators converge on the row
// that won the unique-name race.
func (s *WorkService) GetOrCreateWork(httpCtx context.Context, name, sourceLang, targetLang string, config map[string]any) (*ent.ProjectWork, error) {
	if name == "" {
		return nil, NewValidationError("work_name", "required")
	}
	if sourceLang == "" || targetLang == "" {
		return nil, NewValidationError("source_lang", "source and target language required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.ProjectWork.Query().
		Where(projectwork.WorkNameEQ(name)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query work: %w", err)
	}

	builder := s.client.ProjectWork.Create().
		SetWorkName(name).
		SetSourceLang(sourceLang).
		SetTargetLang(targetLang)
	if config != nil {
		builder.SetConfig(config)
	}

	work, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the creation race; the winner's row is what we want.
			return s.client.ProjectWork.Query().
				Where(projectwork.WorkNameEQ(name)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create work: %w", err)
	}

	return work, nil
}

// GetWork retrieves a work by ID
func (s *WorkService) GetWork(ctx context.Context, workID int) (*ent.ProjectWork, error) {
	work, err := s.client.ProjectWork.Get(ctx, workID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get work: %w", err)
	}
	return work, nil
}

// GetWorkByName retrieves a work by its unique name
func (s *WorkService) GetWorkByName(ctx context.Context, name string) (*ent.ProjectWork, error) {
	work, err := s.client.ProjectWork.Query().
		Where(projectwork.WorkNameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get work by name: %w", err)
	}
	return work, nil
}

// UpdateTopicInfo stores the detected domain/style analysis on the work.
func (s *WorkService) UpdateTopicInfo(ctx context.Context, workID int, topicInfo map[string]any) error {
	err := s.client.ProjectWork.UpdateOneID(workID).
		SetTopicInfo(topicInfo).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update topic info: %w", err)
	}
	return nil
}

// UpdateTranslationGuide stores the generated style guide text.
func (s *WorkService) UpdateTranslationGuide(ctx context.Context, workID int, guide string) error {
	err := s.client.ProjectWork.UpdateOneID(workID).
		SetTranslationGuide(guide).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update translation guide: %w", err)
	}
	return nil
}

// UpdatePromptTemplates stores the per-work prompt template overrides.
func (s *WorkService) UpdatePromptTemplates(ctx context.Context, workID int, templates map[string]any) error {
	err := s.client.ProjectWork.UpdateOneID(workID).
		SetPromptTemplates(templates).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update prompt templates: %w", err)
	}
	return nil
}

// UpdateExtra replaces the work's resume map (doc/atom id mappings, term
// table). Callers own read-modify-write; the pipeline is the only writer.
func (s *WorkService) UpdateExtra(ctx context.Context, workID int, extra map[string]any) error {
	err := s.client.ProjectWork.UpdateOneID(workID).
		SetExtra(extra).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update extra: %w", err)
	}
	return nil
}

// Stats aggregates translation progress across all documents of a work.
func (s *WorkService) Stats(ctx context.Context, workID int) (*models.WorkStats, error) {
	if _, err := s.GetWork(ctx, workID); err != nil {
		return nil, err
	}

	inWork := processingatom.HasDocWith(sourcedoc.WorkIDEQ(workID))

	total, err := s.client.ProcessingAtom.Query().
		Where(inWork).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count atoms: %w", err)
	}

	var statusRows []struct {
		StatusCode int `json:"status_code"`
		Count      int `json:"count"`
	}
	err = s.client.ProcessingAtom.Query().
		Where(inWork).
		GroupBy(processingatom.FieldStatusCode).
		Aggregate(ent.Count()).
		Scan(ctx, &statusRows)
	if err != nil {
		return nil, fmt.Errorf("failed to group atoms by status: %w", err)
	}

	byStatus := make(map[string]int, len(statusRows))
	for _, row := range statusRows {
		byStatus[models.AtomStatusName(row.StatusCode)] = row.Count
	}

	var meanScore float64
	scored, err := s.client.ProcessingAtom.Query().
		Where(inWork, processingatom.QualityScoreNotNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count scored atoms: %w", err)
	}
	if scored > 0 {
		meanScore, err = s.client.ProcessingAtom.Query().
			Where(inWork, processingatom.QualityScoreNotNil()).
			Aggregate(ent.Mean(processingatom.FieldQualityScore)).
			Float64(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to compute mean score: %w", err)
		}
	}

	docCount, err := s.client.SourceDoc.Query().
		Where(sourcedoc.WorkIDEQ(workID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count docs: %w", err)
	}

	var inputTokens, outputTokens int
	traceFilter := agenttrace.HasAtomWith(inWork)
	traceCount, err := s.client.AgentTrace.Query().Where(traceFilter).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count traces: %w", err)
	}
	if traceCount > 0 {
		inputTokens, err = s.client.AgentTrace.Query().
			Where(traceFilter).
			Aggregate(ent.Sum(agenttrace.FieldInputTokens)).
			Int(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to sum input tokens: %w", err)
		}
		outputTokens, err = s.client.AgentTrace.Query().
			Where(traceFilter).
			Aggregate(ent.Sum(agenttrace.FieldOutputTokens)).
			Int(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to sum output tokens: %w", err)
		}
	}

	return &models.WorkStats{
		WorkID:       workID,
		TotalAtoms:   total,
		ByStatus:     byStatus,
		MeanScore:    meanScore,
		DocCount:     docCount,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
	}, nil
}
