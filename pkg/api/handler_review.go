package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linguaflow/linguaflow/pkg/agent/review"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// pendingTask resolves the review task currently blocking the run's worker.
// A nil task with a true ok means the run has a bridge but nothing waiting.
func (s *Server) pendingTask(c *gin.Context) (*review.Task, bool) {
	if s.bridges == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "review is not available on this instance"})
		return nil, false
	}

	bridge, ok := s.bridges.Bridge(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no review in progress for this run"})
		return nil, false
	}

	task := bridge.Pending()
	if task == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no review task pending"})
		return nil, false
	}
	return task, true
}

// getReview handles GET /api/v1/runs/:id/review. It returns the task the
// pipeline is blocked on; the worker stays parked until POST answers it.
func (s *Server) getReview(c *gin.Context) {
	task, ok := s.pendingTask(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, task)
}

// postReview handles POST /api/v1/runs/:id/review. The decision is decoded
// into the reply type the blocked agent expects for the task type, then
// delivered through the bridge to wake the worker.
func (s *Server) postReview(c *gin.Context) {
	task, ok := s.pendingTask(c)
	if !ok {
		return
	}

	var req ReviewDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	taskID := req.TaskID
	if taskID == "" {
		taskID = task.ID
	}

	var result any
	switch task.TaskType {
	case models.TaskTerminologyReview:
		result = models.TermReviewResult{ApprovedTerms: req.ApprovedTerms}
	case models.TaskBatchTranslationReview, models.TaskTranslationReview:
		result = models.ReviewResult{Results: req.ReviewResults}
	default:
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "unsupported task type: " + task.TaskType})
		return
	}

	bridge, _ := s.bridges.Bridge(c.Param("id"))
	if bridge == nil || !bridge.Answer(taskID, result) {
		// The task was answered or replaced between GET and POST.
		c.JSON(http.StatusConflict, ErrorResponse{Error: "review task already answered or superseded"})
		return
	}

	slog.Info("Review decision delivered",
		"run_id", c.Param("id"),
		"task_id", taskID,
		"task_type", task.TaskType)
	c.JSON(http.StatusOK, ReviewAnswerResponse{TaskID: taskID, Status: "answered"})
}
