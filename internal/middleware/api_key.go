package middleware

import (
	"context"

	"sara-api/internal/domain"
	"sara-api/internal/shared/contextutil"
	"sara-api/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	HeaderAPIKey = "x-api-key"

	ContextOwner = "owner"
	ContextRole  = "role"
)

type Authenticator interface {
	Authenticate(ctx context.Context, key string) (*domain.Principal, error)
}

// APIKey rejects requests without a known x-api-key and exposes the key's
// owner and role to later handlers.
func APIKey(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := auth.Authenticate(c.Request.Context(), c.GetHeader(HeaderAPIKey))
		if err != nil {
			response.Abort(c, err)
			return
		}

		c.Set(ContextOwner, principal.Owner)
		c.Set(ContextRole, principal.Role)
		ctx := contextutil.WithPrincipal(c.Request.Context(), principal.Owner, principal.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
