package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quiz-backend/internal/app"
	"quiz-backend/internal/domain"
)

// QuizHandler exposes the catalog, config and submission endpoints.
type QuizHandler struct {
	service *app.QuizService
}

func NewQuizHandler(service *app.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

func (h *QuizHandler) GetConfig(c *gin.Context) {
	cfg, err := h.service.GetConfig(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateConfig serves both POST and PATCH; only the supplied fields change.
func (h *QuizHandler) UpdateConfig(c *gin.Context) {
	var patch domain.ConfigPatch
	if !bindJSON(c, &patch) {
		return
	}
	cfg, err := h.service.UpdateConfig(c.Request.Context(), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *QuizHandler) ListQuestions(c *gin.Context) {
	questions, err := h.service.ListActiveQuestions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuizHandler) Submit(c *gin.Context) {
	var req submitRequest
	if !bindJSON(c, &req) {
		return
	}

	var caller *domain.User
	if user, ok := currentUser(c); ok {
		caller = &user
	}

	result, err := h.service.Submit(c.Request.Context(), app.Submission{
		Answers:   req.Answers,
		TimeTaken: req.TimeTaken,
		SessionID: req.SessionID,
		Username:  req.Username,
	}, caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
