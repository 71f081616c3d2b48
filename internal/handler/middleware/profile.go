package middleware

import (
	"cusco-tours/internal/pkg/config"
	"cusco-tours/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxProfileIDKey = "profile_id"

// ProfileMiddleware assigns every visitor a stable profile id. The cart and
// favorites slots key on it, so anonymous visitors get a working cart before
// they ever sign in.
func ProfileMiddleware(cfg config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, err := uuid.Parse(cookie.GetProfileID(c))
		if err != nil {
			profileID = uuid.New()
			cookie.SetProfileCookie(c, cfg, profileID.String())
		}

		c.Set(ctxProfileIDKey, profileID)
		c.Next()
	}
}

func GetProfileID(c *gin.Context) (uuid.UUID, bool) {
	profileID, exists := c.Get(ctxProfileIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := profileID.(uuid.UUID)
	return id, ok
}
