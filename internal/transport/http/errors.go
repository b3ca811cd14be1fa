package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quiz-backend/internal/domain"
)

// respondError maps service errors onto HTTP statuses. Unknown errors are logged and
// reported as a generic 500.
func respondError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: ve.Message,
			Fields:  ve.Fields,
		})
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrEmailTaken):
		JsonError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		JsonError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrUserInactive):
		JsonError(c, http.StatusUnauthorized, "User account is disabled")
	case errors.Is(err, domain.ErrInvalidToken):
		JsonError(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, domain.ErrForbidden):
		JsonError(c, http.StatusForbidden, err.Error())
	default:
		_ = c.Error(err)
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		JsonError(c, http.StatusInternalServerError)
	}
}

// bindJSON decodes the body into dst, rejecting unknown fields and wrong types with a 400.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, bindError(err))
		return false
	}
	return true
}

func bindError(err error) *domain.ValidationError {
	var (
		ve        *domain.ValidationError
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &ve):
		return ve
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("request body is required")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return domain.NewValidationError("invalid request body").Add(field, "must be of type "+typeErr.Type.String())
	case errors.As(err, &syntaxErr):
		return domain.NewValidationError("malformed JSON")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return domain.NewValidationError("invalid request body").Add(field, "unknown field")
	default:
		return domain.NewValidationError("invalid request body: " + err.Error())
	}
}
