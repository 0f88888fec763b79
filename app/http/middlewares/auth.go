package middlewares

import (
	"strings"
	"time"

	"casamento/app/models/user"
	"casamento/app/repositories"
	"casamento/pkg/config"
	"casamento/pkg/response"
	"casamento/pkg/session"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// AuthSession resolves the bearer token into a user and stores it in the
// request context. The user row is reloaded on every request so that
// deactivation takes effect immediately; nothing about the session is
// trusted from the client beyond the opaque token itself.
func AuthSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Abort401(c)
			return
		}

		store := session.NewStore(sessionTTL())
		userID, err := store.Resolve(token)
		if err != nil {
			response.Abort401(c)
			return
		}

		u, err := repositories.NewUserRepository().GetByID(c.Request.Context(), userID)
		if err != nil {
			response.Abort401(c)
			return
		}
		if !u.Active {
			store.Destroy(token)
			response.Abort401(c, "Este acesso foi revogado")
			return
		}

		c.Set(currentUserKey, *u)
		c.Next()
	}
}

// AuthAdmin allows only admins through. Must run after AuthSession.
func AuthAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := GetCurrentUser(c)
		if !ok || !u.IsAdmin() {
			response.Abort403(c)
			return
		}
		c.Next()
	}
}

// AuthAdminOrPlanner allows admins and planners through. Must run after
// AuthSession.
func AuthAdminOrPlanner() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := GetCurrentUser(c)
		if !ok || !u.IsAdminOrPlanner() {
			response.Abort403(c)
			return
		}
		c.Next()
	}
}

// GetCurrentUser returns the authenticated user set by AuthSession.
func GetCurrentUser(c *gin.Context) (user.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return user.User{}, false
	}
	u, ok := v.(user.User)
	return u, ok
}

// BearerToken exposes the raw token, used by logout.
func BearerToken(c *gin.Context) string {
	return bearerToken(c)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

func sessionTTL() time.Duration {
	return time.Duration(config.GetInt("auth.session_ttl_minutes", 60*24*7)) * time.Minute
}

// SessionTTL exposes the configured TTL for session creation.
func SessionTTL() time.Duration {
	return sessionTTL()
}
