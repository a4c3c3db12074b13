package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
	"github.com/cinelog/cinelog-backend/pkg/redis"
	"github.com/cinelog/cinelog-backend/pkg/util"
)

const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
	UserRoleKey = "user_role"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// Authenticate rejects requests without a valid, unrevoked access token.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			apperrors.Unauthorized(c, "missing or malformed authorization header")
			c.Abort()
			return
		}

		claims, err := util.ValidateToken(token, m.jwtSecret)
		if err != nil {
			code := apperrors.AuthTokenInvalid
			if err == util.ErrExpiredToken {
				code = apperrors.AuthTokenExpired
			}
			apperrors.RespondWithError(c, 401, code, "invalid or expired token")
			c.Abort()
			return
		}

		if revoked, err := redis.IsTokenRevoked(c.Request.Context(), token); err == nil && revoked {
			apperrors.RespondWithError(c, 401, apperrors.AuthTokenRevoked, "token has been revoked")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username)
		c.Set(UserRoleKey, claims.Role)
		c.Next()
	}
}

// OptionalAuthenticate attaches identity when a valid token is present
// but lets anonymous requests through.
func (m *AuthMiddleware) OptionalAuthenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}
		claims, err := util.ValidateToken(token, m.jwtSecret)
		if err == nil {
			if revoked, rerr := redis.IsTokenRevoked(c.Request.Context(), token); rerr != nil || !revoked {
				c.Set(UserIDKey, claims.UserID)
				c.Set(UsernameKey, claims.Username)
				c.Set(UserRoleKey, claims.Role)
			}
		}
		c.Next()
	}
}

// RequireRole gates a route group on the authenticated user's role.
// Must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			apperrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		apperrors.RespondWithError(c, 403, apperrors.AuthzAdminOnly, "insufficient permissions")
		c.Abort()
	}
}

// GetUserID reads the authenticated user id set by Authenticate.
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// GetUserRole reads the authenticated role set by Authenticate.
func GetUserRole(c *gin.Context) (model.UserRole, bool) {
	value, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := value.(string)
	if !ok {
		return "", false
	}
	return model.UserRole(role), true
}
