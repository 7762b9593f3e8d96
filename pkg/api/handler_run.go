package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/event"
	"github.com/linguaflow/linguaflow/pkg/events"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// createRun handles POST /api/v1/runs.
func (s *Server) createRun(c *gin.Context) {
	var req models.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	run, err := s.runs.CreateRun(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("Run enqueued",
		"run_id", run.ID,
		"project_path", run.ProjectPath,
		"request_id", c.GetString("request_id"))
	c.JSON(http.StatusCreated, run)
}

// listRuns handles GET /api/v1/runs.
func (s *Server) listRuns(c *gin.Context) {
	filters := models.RunFilters{Status: c.Query("status")}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
			return
		}
		filters.Limit = limit
	}
	if v := c.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid offset"})
			return
		}
		filters.Offset = offset
	}

	resp, err := s.runs.ListRuns(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getRun handles GET /api/v1/runs/:id. The response embeds the latest
// progress snapshot so pollers get status, stage and counters in one call.
func (s *Server) getRun(c *gin.Context) {
	run, err := s.runs.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	detail := RunDetailResponse{TranslationRun: run}
	latest, err := s.db.Event.Query().
		Where(
			event.RunIDEQ(run.ID),
			event.ChannelEQ(events.TaskUpdatesChannel),
		).
		Order(ent.Desc(event.FieldID)).
		First(c.Request.Context())
	switch {
	case err == nil:
		detail.LatestUpdate = latest.Payload
	case !ent.IsNotFound(err):
		slog.Warn("Failed to load latest progress event", "run_id", run.ID, "error", err)
	}

	c.JSON(http.StatusOK, detail)
}

// cancelRun handles POST /api/v1/runs/:id/cancel. A pending run flips to
// cancelled directly; a claimed run is signalled through the pool and stops
// cooperatively at the next batch boundary.
func (s *Server) cancelRun(c *gin.Context) {
	runID := c.Param("id")

	cancelled, err := s.runs.CancelPending(c.Request.Context(), runID)
	if err != nil {
		respondError(c, err)
		return
	}
	if cancelled {
		slog.Info("Pending run cancelled", "run_id", runID)
		c.JSON(http.StatusOK, CancelResponse{RunID: runID, Status: "cancelled"})
		return
	}

	if s.pool != nil && s.pool.CancelRun(runID) {
		slog.Info("Processing run signalled to cancel", "run_id", runID)
		c.JSON(http.StatusAccepted, CancelResponse{RunID: runID, Status: "cancelling"})
		return
	}

	c.JSON(http.StatusConflict, ErrorResponse{Error: "run is processing on another instance"})
}
