package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// workStats handles GET /api/v1/works/:id/stats.
func (s *Server) workStats(c *gin.Context) {
	workID, ok := workIDParam(c)
	if !ok {
		return
	}

	stats, err := s.works.Stats(c.Request.Context(), workID)
	if err != nil {
		respondError(c, err)
		return
	}

	if s.lexicon != nil {
		stats.TermCount = len(s.lexicon.TableFor(c.Request.Context(), workID))
	}

	c.JSON(http.StatusOK, stats)
}
