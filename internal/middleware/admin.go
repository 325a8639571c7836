package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/stpnv0/EventRegistration/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const adminSessionKey = "admin_session"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.AdminSession, error)
}

// RequireAdmin rejects requests without a valid admin session cookie and
// stores the session for AdminSession.
func RequireAdmin(auth Authenticator, cookieName string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"message": "Unauthorized"})
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.Set("error", err.Error())
			if errors.Is(err, domain.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"message": "Unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"message": "internal server error"})
			return
		}

		c.Set(adminSessionKey, session)
		c.Next()
	}
}

// AdminSession returns the session stored by RequireAdmin, or the zero value
// on routes it does not guard.
func AdminSession(c *ginext.Context) domain.AdminSession {
	s, _ := sessionFrom(c)
	return s
}

func sessionFrom(c *ginext.Context) (domain.AdminSession, bool) {
	v, ok := c.Get(adminSessionKey)
	if !ok {
		return domain.AdminSession{}, false
	}
	s, ok := v.(domain.AdminSession)
	return s, ok
}
