package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/linguaflow/linguaflow/pkg/database"
	"github.com/linguaflow/linguaflow/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
	healthStatusDisabled  = "disabled"
)

// healthHandler handles GET /health. Only the database failing makes the
// service unhealthy; a degraded pool or an unreachable lexicon degrades the
// report but keeps the process serving, since translation falls back
// gracefully without them.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	dbHealth, err := database.Health(reqCtx, s.db.DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy, ResponseTimeMS: dbHealth.ResponseTime}
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		if !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := poolHealth.DBError
			if msg == "" {
				msg = "worker pool unhealthy"
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.lexicon == nil {
		checks["lexicon"] = HealthCheck{Status: healthStatusDisabled}
	} else if err := s.lexicon.Ping(reqCtx); err != nil {
		if status == healthStatusHealthy {
			status = healthStatusDegraded
		}
		checks["lexicon"] = HealthCheck{Status: healthStatusDegraded, Message: err.Error()}
	} else {
		checks["lexicon"] = HealthCheck{Status: healthStatusHealthy}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}
