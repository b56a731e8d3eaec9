package middleware

import (
	"context"
	"net/http"

	"DocTrackerGo/config"
	"DocTrackerGo/models"
	"DocTrackerGo/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "uid"
	ContextClaims = "claims"
	ContextUser   = "user"
)

// AuthMiddleware validates the bearer token and stores the user id. revoker may be nil when Redis is not configured.
func AuthMiddleware(revoker utils.TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			abortWithError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		if revoker != nil {
			revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				config.Logger.Errorw("token revocation check failed", "error", err, "uid", claims.UserID)
				abortWithError(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
				return
			}
			if revoked {
				abortWithError(c, http.StatusUnauthorized, "Your session has expired. Please login again")
				return
			}
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// UserLoader finds the account behind an authenticated request.
type UserLoader interface {
	Get(ctx context.Context, userID string) (*models.User, error)
}

// AttachUser loads the authenticated user so handlers can check roles and
// display names. A token for a deleted account is rejected.
func AttachUser(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.Get(c.Request.Context(), c.GetString(ContextUserID))
		if err != nil {
			config.Logger.Warnw("authenticated user not found", "error", err, "uid", c.GetString(ContextUserID))
			abortWithError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the user set by AttachUser.
func CurrentUser(c *gin.Context) *models.User {
	user, _ := c.MustGet(ContextUser).(*models.User)
	return user
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   gin.H{"message": message},
	})
}
