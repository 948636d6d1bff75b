package middleware

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"parts-market.backend/pkg/logger"
)

// ActorIDKey is the gin context key holding the acting user's id
const ActorIDKey = "actor_id"

// ActorMiddleware threads a simulated authenticated-actor identity through
// each call. The X-Actor-ID header stands in for a real session; absence is
// allowed since the surface has no authentication requirement.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Actor-ID")
		if raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				c.Set(ActorIDKey, id)
				ctx := context.WithValue(c.Request.Context(), logger.ActorIDKey, id)
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}

// GetActorID returns the acting user's id, or 0 when no actor is present
func GetActorID(c *gin.Context) int64 {
	if v, ok := c.Get(ActorIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
