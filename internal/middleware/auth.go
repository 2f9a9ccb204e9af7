package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vitall-hq/vitall_backend/internal/core/domain"
)

// AuthClaims are the JWT claims issued at login. Organization and role ride in
// the token so the guard can resolve the identity without a user lookup.
type AuthClaims struct {
	jwt.RegisteredClaims
	OrganizationID string `json:"orgId,omitempty"`
	Role           string `json:"role,omitempty"`
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens
// and resolves the request identity.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		tokenString := parts[1]

		// Parse and validate the token
		token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		claims, ok := token.Claims.(*AuthClaims)
		if !ok || !token.Valid || claims.Subject == "" {
			logger.Warn("Invalid token claims or token is not valid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		authUser := &domain.AuthUser{
			UserID:         claims.Subject,
			OrganizationID: claims.OrganizationID,
			Role:           domain.UserRole(claims.Role),
		}

		// Store the identity in the context and enrich the logger with it
		ctx := withAuthUser(c.Request.Context(), authUser)
		enrichedLogger := logger.With(slog.String("user_id", authUser.UserID))
		c.Request = c.Request.WithContext(withLogger(ctx, enrichedLogger))

		c.Next()
	}
}
