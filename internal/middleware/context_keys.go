package middleware

import "github.com/gin-gonic/gin"

// actorIDKey holds the authenticated actor's id in the Gin context.
const actorIDKey = contextKey("actorID")

// tenantIDKey holds the authenticated actor's tenant id in the Gin context.
const tenantIDKey = contextKey("tenantID")

// GetActorIDFromContext retrieves the authenticated actor id from the Gin
// context. It returns the id and a boolean indicating if it was found.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, actorIDKey)
}

// GetTenantIDFromContext retrieves the authenticated tenant id from the Gin
// context.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, tenantIDKey)
}

func stringFromContext(c *gin.Context, key contextKey) (string, bool) {
	val, exists := c.Get(string(key))
	if !exists {
		// check in the request context as well
		reqVal := c.Request.Context().Value(key)
		if reqVal != nil {
			s, ok := reqVal.(string)
			return s, ok
		}
		return "", false
	}

	s, ok := val.(string)
	if !ok {
		return "", false
	}
	return s, true
}
