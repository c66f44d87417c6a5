package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"slotwise/internal/handler/httperr"
	"slotwise/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware authenticates hosts for the management surface. Guest-facing
// booking endpoints stay public; guests prove identity by booking email.
type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxHostIDKey    = "host_id"
	ctxHostEmailKey = "host_email"
)

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				jwt.ErrInvalidToken, "Access token required", nil)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized,
				err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxHostIDKey, claims.HostID)
		c.Set(ctxHostEmailKey, claims.Email)
		c.Set("jwt_claims", map[string]any{
			"host_id": claims.HostID.String(),
			"email":   claims.Email,
		})
		c.Next()
	}
}

// OptionalHost authenticates when a token is present but never aborts. Used
// on guest endpoints where a logged-in host gets extra privileges.
func (m *AuthMiddleware) OptionalHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.Next()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxHostIDKey, claims.HostID)
		c.Set(ctxHostEmailKey, claims.Email)
		c.Next()
	}
}

func GetHostID(c *gin.Context) (uuid.UUID, bool) {
	hostID, exists := c.Get(ctxHostIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := hostID.(uuid.UUID)
	return id, ok
}
