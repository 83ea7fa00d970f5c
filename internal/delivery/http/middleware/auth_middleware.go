package middleware

import (
	"recipebox/internal/delivery/http/response"
	"recipebox/internal/delivery/http/session"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key carrying the authenticated user's id.
const ContextKeyUserID = "userID"

// AuthMiddleware guards endpoints behind the cookie session.
type AuthMiddleware struct {
	sessions *session.Manager
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireSession rejects requests without an authenticated session with a 401
// before any persistence work happens. On success the user id is placed on
// the echo context for handlers to use.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := m.sessions.CurrentUserID(c)
		if !ok {
			return response.Unauthorized(c)
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}
