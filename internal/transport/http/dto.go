package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"quiz-backend/internal/auth"
	"quiz-backend/internal/domain"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JsonError(c *gin.Context, status int, message ...string) {
	msg := ""
	if len(message) > 0 {
		msg = message[0]
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: msg,
	})
}

type submitRequest struct {
	Answers   domain.AnswerSheet `json:"answers"`
	TimeTaken int                `json:"time_taken"`
	SessionID string             `json:"session_id"`
	Username  string             `json:"username"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type userView struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	IsStaff    bool       `json:"is_staff"`
	DateJoined *time.Time `json:"date_joined,omitempty"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

func toUserView(u domain.User, withDates bool) userView {
	v := userView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
	}
	if withDates {
		joined := u.DateJoined
		v.DateJoined = &joined
		v.LastLogin = u.LastLogin
	}
	return v
}

type sessionResponse struct {
	Message string         `json:"message"`
	User    userView       `json:"user"`
	Tokens  auth.TokenPair `json:"tokens"`
}

type userResponse struct {
	Message string   `json:"message,omitempty"`
	User    userView `json:"user"`
}

type attemptView struct {
	ID              int64              `json:"id"`
	User            *int64             `json:"user"`
	Username        string             `json:"username"`
	UsernameDisplay string             `json:"username_display"`
	SessionID       string             `json:"user_session"`
	Score           int                `json:"score"`
	TotalQuestions  int                `json:"total_questions"`
	Percentage      float64            `json:"percentage"`
	TimeTaken       int                `json:"time_taken"`
	CompletedAt     time.Time          `json:"completed_at"`
	UserAnswers     domain.AnswerSheet `json:"user_answers"`
}

func toAttemptView(a domain.QuizAttempt) attemptView {
	return attemptView{
		ID:              a.ID,
		User:            a.UserID,
		Username:        a.Username,
		UsernameDisplay: a.UsernameDisplay(),
		SessionID:       a.SessionID,
		Score:           a.Score,
		TotalQuestions:  a.TotalQuestions,
		Percentage:      a.Percentage,
		TimeTaken:       a.TimeTaken,
		CompletedAt:     a.CompletedAt,
		UserAnswers:     a.UserAnswers,
	}
}
