package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"quiz-backend/internal/app"
)

// Services bundles what the router needs. Feed may be nil, which disables the live endpoint.
type Services struct {
	Quiz  *app.QuizService
	Stats *app.StatsService
	Auth  *app.AuthService
	Feed  app.AttemptFeed
}

func init() {
	// Request bodies are strict: unknown fields are a 400, not silently ignored.
	binding.EnableDecoderDisallowUnknownFields = true
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(s Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), ErrorHandler())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	optionalUser := Authenticate(s.Auth, false)
	requireUser := Authenticate(s.Auth, true)
	staffOnly := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{requireUser, RequireStaff(), h}
	}

	quiz := NewQuizHandler(s.Quiz)
	stats := NewStatsHandler(s.Stats)

	q := r.Group("/api/quiz")
	{
		q.GET("/config", quiz.GetConfig)
		q.POST("/config", staffOnly(quiz.UpdateConfig)...)
		q.PATCH("/config", staffOnly(quiz.UpdateConfig)...)
		q.GET("/questions", quiz.ListQuestions)
		q.POST("/submit", optionalUser, quiz.Submit)
		q.GET("/attempts", staffOnly(stats.ListAttempts)...)
		q.GET("/stats", staffOnly(stats.Summary)...)
		q.GET("/stats/questions", staffOnly(stats.QuestionAccuracy)...)
		if s.Feed != nil {
			feed := NewFeedHandler(s.Feed)
			q.GET("/attempts/live", staffOnly(feed.ServeLive)...)
		}
	}

	auth := NewAuthHandler(s.Auth)
	a := r.Group("/api/auth")
	{
		a.POST("/register", auth.Register)
		a.POST("/login", auth.Login)
		a.POST("/refresh", auth.Refresh)
		a.POST("/logout", requireUser, auth.Logout)
		a.GET("/profile", requireUser, auth.Profile)
		a.POST("/profile", requireUser, auth.UpdateProfile)
		a.POST("/change-password", requireUser, auth.ChangePassword)
	}

	r.NoRoute(func(c *gin.Context) {
		JsonError(c, http.StatusNotFound)
	})
	return r
}
