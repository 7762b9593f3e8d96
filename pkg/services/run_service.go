package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/translationrun"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// RunService manages translation run queue rows and their lifecycle
// transitions. Claiming is the worker pool's job; everything else goes
// through here.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRun enqueues a new translation run in pending state.
func (s *RunService) CreateRun(httpCtx context.Context, req models.CreateRunRequest) (*ent.TranslationRun, error) {
	if req.ProjectPath == "" {
		return nil, NewValidationError("project_path", "required")
	}
	if req.OutputPath == "" {
		return nil, NewValidationError("output_path", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.TranslationRun.Create().
		SetID(uuid.New().String()).
		SetProjectPath(req.ProjectPath).
		SetOutputPath(req.OutputPath).
		SetStatus(translationrun.StatusPending)
	if req.ConfigOverrides != nil {
		builder.SetConfigOverrides(req.ConfigOverrides)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	return run, nil
}

// GetRun retrieves a run by ID
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.TranslationRun, error) {
	run, err := s.client.TranslationRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns returns runs matching the filters, newest first.
func (s *RunService) ListRuns(ctx context.Context, filters models.RunFilters) (*models.RunListResponse, error) {
	query := s.client.TranslationRun.Query()

	if filters.Status != "" {
		status := translationrun.Status(filters.Status)
		if err := translationrun.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", filters.Status))
		}
		query = query.Where(translationrun.StatusEQ(status))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	runs, err := query.
		Order(ent.Desc(translationrun.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return &models.RunListResponse{
		Runs:       runs,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// SetWorkID links the run to the project work bootstrap resolved.
func (s *RunService) SetWorkID(ctx context.Context, runID string, workID int) error {
	err := s.client.TranslationRun.UpdateOneID(runID).
		SetWorkID(workID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set work id: %w", err)
	}
	return nil
}

// SetStage records the stage the run is currently executing.
func (s *RunService) SetStage(ctx context.Context, runID string, stage models.Stage) error {
	err := s.client.TranslationRun.UpdateOneID(runID).
		SetCurrentStage(string(stage)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set stage: %w", err)
	}
	return nil
}

// SetReviewState flips the run between processing and review while a human
// decision is pending. Only those two states are ever exchanged.
func (s *RunService) SetReviewState(ctx context.Context, runID string, inReview bool) error {
	from, to := translationrun.StatusProcessing, translationrun.StatusReview
	if !inReview {
		from, to = translationrun.StatusReview, translationrun.StatusProcessing
	}

	n, err := s.client.TranslationRun.Update().
		Where(translationrun.IDEQ(runID), translationrun.StatusEQ(from)).
		SetStatus(to).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set review state: %w", err)
	}
	if n == 0 {
		return ErrInvalidState
	}
	return nil
}

// Heartbeat stamps the run's liveness marker. The worker_id guard ensures a
// worker cannot keep alive a run that was requeued and claimed elsewhere.
func (s *RunService) Heartbeat(ctx context.Context, runID, workerID string) error {
	n, err := s.client.TranslationRun.Update().
		Where(
			translationrun.IDEQ(runID),
			translationrun.WorkerIDEQ(workerID),
			translationrun.StatusIn(translationrun.StatusProcessing, translationrun.StatusReview),
		).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat run: %w", err)
	}
	if n == 0 {
		return ErrInvalidState
	}
	return nil
}

// MarkCompleted finalizes a successful run.
func (s *RunService) MarkCompleted(ctx context.Context, runID string) error {
	return s.finish(ctx, runID, translationrun.StatusCompleted, nil)
}

// MarkFailed finalizes a failed run with its error message.
func (s *RunService) MarkFailed(ctx context.Context, runID, errorMessage string) error {
	return s.finish(ctx, runID, translationrun.StatusFailed, &errorMessage)
}

// MarkCancelled finalizes a cancelled run.
func (s *RunService) MarkCancelled(ctx context.Context, runID string) error {
	return s.finish(ctx, runID, translationrun.StatusCancelled, nil)
}

// finish writes a terminal status. Writing a terminal status twice is a
// no-op, so worker crash-retry paths stay idempotent.
func (s *RunService) finish(ctx context.Context, runID string, status translationrun.Status, errorMessage *string) error {
	update := s.client.TranslationRun.Update().
		Where(
			translationrun.IDEQ(runID),
			translationrun.StatusNotIn(
				translationrun.StatusCompleted,
				translationrun.StatusFailed,
				translationrun.StatusCancelled,
			),
		).
		SetStatus(status).
		SetCompletedAt(time.Now()).
		ClearHeartbeatAt()
	if errorMessage != nil {
		update.SetErrorMessage(*errorMessage)
	}

	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// CancelPending flips a pending run straight to cancelled before any worker
// claims it. Returns true when this call performed the transition; false
// means the run is already being processed and needs its stop flag raised.
// Terminal runs return ErrInvalidState.
func (s *RunService) CancelPending(ctx context.Context, runID string) (bool, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return false, err
	}

	switch run.Status {
	case translationrun.StatusCompleted, translationrun.StatusFailed, translationrun.StatusCancelled:
		return false, ErrInvalidState
	}

	n, err := s.client.TranslationRun.Update().
		Where(translationrun.IDEQ(runID), translationrun.StatusEQ(translationrun.StatusPending)).
		SetStatus(translationrun.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to cancel pending run: %w", err)
	}
	return n > 0, nil
}

// CountByStatus returns run counts per status for health reporting.
func (s *RunService) CountByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.TranslationRun.Query().
		GroupBy(translationrun.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
