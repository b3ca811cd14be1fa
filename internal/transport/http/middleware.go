package http

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quiz-backend/internal/domain"
)

const userKey = "user"

// Authenticator resolves an access token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (domain.User, error)
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic recovered: %v", err)
				JsonError(c, http.StatusInternalServerError)
			}
		}()

		c.Next()
	}
}

// Authenticate attaches the caller when a bearer token is present. A present but
// invalid token is always rejected; a missing one only when required.
func Authenticate(authn Authenticator, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			if required {
				JsonError(c, http.StatusUnauthorized, "Authentication credentials were not provided")
				return
			}
			c.Next()
			return
		}
		user, err := authn.Authenticate(c.Request.Context(), token)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// RequireStaff must run after Authenticate(…, true).
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			JsonError(c, http.StatusUnauthorized, "Authentication credentials were not provided")
			return
		}
		if !user.IsStaff {
			respondError(c, domain.ErrForbidden)
			return
		}
		c.Next()
	}
}

// bearerToken reads "Authorization: Bearer <token>", falling back to the token query
// parameter because browsers cannot set headers on WebSocket upgrades.
func bearerToken(c *gin.Context) (string, bool) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", false
		}
		return strings.TrimSpace(parts[1]), true
	}
	if token := c.Query("token"); token != "" {
		return token, true
	}
	return "", false
}

func currentUser(c *gin.Context) (domain.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := v.(domain.User)
	return user, ok
}
