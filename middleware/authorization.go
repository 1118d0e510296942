// middleware/authorization.go
package middleware

import (
	"github.com/gin-gonic/gin"

	clinova_errors "github.com/clinova/api/errors"
	"github.com/clinova/api/model"
	"github.com/clinova/api/util"
)

// Authorize enforces a per-route allow-list of roles. It requires
// Authenticate to have run first. Role comparison is exact and
// case-sensitive. An empty allow-list denies every caller: routes fail
// closed, not open.
func Authorize(allowedRoles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			util.AbortWithError(c, clinova_errors.ErrUnauthenticated)
			return
		}
		if identity.Role == "" {
			util.AbortWithError(c, clinova_errors.ErrRoleMissing)
			return
		}

		for _, role := range allowedRoles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		util.AbortWithError(c, clinova_errors.ErrInsufficientPermissions)
	}
}
