package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/booth33/studio-backend/auth"
)

type TokenVerifier interface {
	VerifyToken(token string) (auth.User, error)
	FindProfileByID(ctx context.Context, id string) (auth.Profile, error)
}

// TokenAuth validates the bearer token and attaches the caller as "user".
// Profiles are cached so repeated requests skip the lookup; the role always
// comes from the profile row, not the token, so demotions apply within the
// cache TTL.
func TokenAuth(verifier TokenVerifier, profiles *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")

		if !ok || len(token) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		user, err := verifier.VerifyToken(token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		var profile auth.Profile

		if cached, found := profiles.Get(user.ID); found {
			profile = cached.(auth.Profile)
		} else {
			profile, err = verifier.FindProfileByID(c.Request.Context(), user.ID)

			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
				c.Abort()
				return
			}

			profiles.SetDefault(user.ID, profile)
		}

		c.Set("user", auth.User{
			ID:       profile.ID,
			Username: profile.Username,
			Admin:    profile.Role == auth.RoleAdmin,
		})
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(auth.User)

		if !user.Admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}
