package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quiz-backend/internal/app"
)

// StatsHandler serves the staff-only reporting endpoints.
type StatsHandler struct {
	service *app.StatsService
}

func NewStatsHandler(service *app.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) ListAttempts(c *gin.Context) {
	attempts, err := h.service.ListAttempts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]attemptView, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, toAttemptView(a))
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) Summary(c *gin.Context) {
	summary, err := h.service.AttemptSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *StatsHandler) QuestionAccuracy(c *gin.Context) {
	rows, err := h.service.PerQuestionAccuracy(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
