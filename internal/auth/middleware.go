package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mehlab1/Turf-Booking-POC/internal"
	"github.com/mehlab1/Turf-Booking-POC/internal/storage"
)

// Identity resolves a Bearer token to a user and attaches it to the
// request context. No route requires a token, so an absent or invalid one
// just leaves the request anonymous.
func Identity(provider Provider, users storage.UserRepository, logger internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if id, err := provider.Parse(token); err == nil {
				if user, err := users.GetByID(c.Request.Context(), id); err == nil {
					c.Set("user", user)
				} else {
					logger.Debugf("token for unknown user id %d", id)
				}
			}
		}
		c.Next()
	}
}
