package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linguaflow/linguaflow/pkg/lexicon"
)

// workIDParam parses the :id path segment of the works routes.
func workIDParam(c *gin.Context) (int, bool) {
	workID, err := strconv.Atoi(c.Param("id"))
	if err != nil || workID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid work id"})
		return 0, false
	}
	return workID, true
}

// searchTerms handles GET /api/v1/works/:id/terms?q=&domain=&limit=.
func (s *Server) searchTerms(c *gin.Context) {
	if s.lexicon == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "terminology index not configured"})
		return
	}

	workID, ok := workIDParam(c)
	if !ok {
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameter q is required"})
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		var err error
		if limit, err = strconv.Atoi(v); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
			return
		}
	}

	if _, err := s.works.GetWork(c.Request.Context(), workID); err != nil {
		respondError(c, err)
		return
	}

	terms := s.lexicon.SearchTerms(c.Request.Context(), query, workID, c.Query("domain"), limit)
	c.JSON(http.StatusOK, TermListResponse{Terms: terms, Count: len(terms)})
}

// confirmTerm handles POST /api/v1/works/:id/terms/:key/confirm.
func (s *Server) confirmTerm(c *gin.Context) {
	if s.lexicon == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "terminology index not configured"})
		return
	}

	workID, ok := workIDParam(c)
	if !ok {
		return
	}
	entryKey := c.Param("key")

	var req ConfirmTermRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
			return
		}
	}

	if _, err := s.works.GetWork(c.Request.Context(), workID); err != nil {
		respondError(c, err)
		return
	}

	if err := s.lexicon.ConfirmTerm(c.Request.Context(), workID, entryKey, req.Translation); err != nil {
		if errors.Is(err, lexicon.ErrTermNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "term not found"})
			return
		}
		slog.Error("Failed to confirm term", "work_id", workID, "entry_key", entryKey, "error", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "terminology index unavailable"})
		return
	}

	slog.Info("Term confirmed", "work_id", workID, "entry_key", entryKey)
	c.JSON(http.StatusOK, ConfirmTermResponse{EntryKey: entryKey, Status: "confirmed"})
}
