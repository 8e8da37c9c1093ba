package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsportal-backend/internal/shared"
)

// CallerFromContext rebuilds the authenticated identity stored by Auth.
// Returns false when the route is not behind Auth or the stored ID is
// malformed.
func CallerFromContext(c *gin.Context) (shared.Caller, bool) {
	rawID, ok := c.Get(CtxUserID)
	if !ok {
		return shared.Caller{}, false
	}

	idStr, ok := rawID.(string)
	if !ok {
		return shared.Caller{}, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return shared.Caller{}, false
	}

	return shared.Caller{
		ID:    id,
		Email: c.GetString(CtxEmail),
		Role:  c.GetString(CtxRole),
	}, true
}
