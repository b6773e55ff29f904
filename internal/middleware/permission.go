package middleware

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
	"github.com/noah-isme/walkin-drive-api/pkg/response"
)

type permissionChecker interface {
	Allowed(ctx context.Context, user *models.User, capability string) (bool, error)
}

type accountLoader interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// RequireCapability guards a route behind one capability. The actor's
// account is loaded fresh so role changes, new overrides, and
// deactivation take effect on the next request, not the next login.
func RequireCapability(perms permissionChecker, accounts accountLoader, capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims, ok := claimsValue.(*models.JWTClaims)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		user, err := accounts.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "account no longer exists"))
			} else {
				response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load account"))
			}
			c.Abort()
			return
		}
		if !user.Active {
			response.Error(c, appErrors.ErrInactiveAccount)
			c.Abort()
			return
		}

		allowed, err := perms.Allowed(c.Request.Context(), user, capability)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
