package middleware

import (
	"net/http"
	"strings"

	"cinebook/internal/shared/config"
	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionHeader carries the browsing-session identifier. The seat-selection
// and checkout pages of one browsing context share this value, which scopes
// the booking draft.
const SessionHeader = "X-Session-ID"

// SessionID resolves the browsing-session identifier for the request and
// stores it in the gin context. The draft is bound to a single browsing
// context, so there is no fallback to the authenticated user ID.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := strings.TrimSpace(c.GetHeader(SessionHeader))
		if sessionID != "" {
			c.Set("session_id", sessionID)
		}
		c.Next()
	}
}

// RequireSession aborts requests that carry no session identifier. Draft and
// checkout operations are meaningless without one.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			response.RespondError(c, http.StatusBadRequest, "NO_SESSION", "X-Session-ID header is required", nil)
			c.Abort()
			return
		}

		if _, err := uuid.Parse(sessionID); err != nil {
			response.RespondError(c, http.StatusBadRequest, "NO_SESSION", "X-Session-ID must be a UUID", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth validates a JWT token if present but doesn't require it.
// Authentication is owned by an external service; we only read identity
// claims to attach a user to bookings.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})

		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if tokenType, ok := claims["type"]; !ok || tokenType != "access" {
				c.Next()
				return
			}

			c.Set("user_id", claims["user_id"])
			c.Set("user_email", claims["email"])
		}

		c.Next()
	}
}
