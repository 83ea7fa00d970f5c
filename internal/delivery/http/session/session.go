// Package session implements the server-side, cookie-backed session used to
// associate requests with an authenticated user id.
package session

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"recipebox/config"
)

// keyUserID is the session value holding the authenticated user's id.
const keyUserID = "user_id"

// Manager reads and writes the authenticated user id in a cookie-backed
// session. Handlers receive it explicitly; there is no ambient global state.
// The backing store is pluggable through the sessions.Store interface.
type Manager struct {
	store      sessions.Store
	cookieName string
}

// NewManager builds a Manager over a signed-cookie store configured from the
// session section of the application config.
func NewManager(cfg *config.Config) *Manager {
	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store:      store,
		cookieName: cfg.Session.CookieName,
	}
}

// NewManagerWithStore builds a Manager over an arbitrary backing store.
func NewManagerWithStore(store sessions.Store, cookieName string) *Manager {
	return &Manager{store: store, cookieName: cookieName}
}

// CurrentUserID returns the authenticated user id from the request's
// session, if any. A missing, expired, or tampered cookie reads as no session.
func (m *Manager) CurrentUserID(c echo.Context) (uuid.UUID, bool) {
	sess, err := m.store.Get(c.Request(), m.cookieName)
	if err != nil {
		return uuid.Nil, false
	}

	raw, ok := sess.Values[keyUserID].(string)
	if !ok || raw == "" {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// SetUserID records the authenticated user id in the session and writes the
// cookie to the response.
func (m *Manager) SetUserID(c echo.Context, id uuid.UUID) error {
	// Get never fails fatally for a cookie store: a bad cookie yields a
	// fresh session, which is what we want on login.
	sess, _ := m.store.Get(c.Request(), m.cookieName)
	sess.Values[keyUserID] = id.String()

	return errors.Wrap(sess.Save(c.Request(), c.Response()), "failed to save session")
}

// Clear removes the authenticated user id from the session.
func (m *Manager) Clear(c echo.Context) error {
	sess, _ := m.store.Get(c.Request(), m.cookieName)
	delete(sess.Values, keyUserID)

	return errors.Wrap(sess.Save(c.Request(), c.Response()), "failed to save session")
}
