package utils

import (
	"github.com/ChPurna2003/CravingConnect/entity"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

func SetIdentity(c *gin.Context, ident entity.Identity) {
	c.Set(identityKey, ident)
}

// CurrentIdentity returns the caller placed into the context by the auth
// middleware. ok is false on unauthenticated requests.
func CurrentIdentity(c *gin.Context) (entity.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return entity.Identity{}, false
	}
	ident, ok := v.(entity.Identity)
	return ident, ok
}
