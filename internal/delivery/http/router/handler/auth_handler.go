// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"recipebox/internal/delivery/http/response"
	"recipebox/internal/delivery/http/session"
	"recipebox/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the account and session endpoints.
type AuthHandler struct {
	uc       usecase.UserUsecase
	sessions *session.Manager
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, sessions *session.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		sessions: sessions,
		logger:   logger,
	}
}

// Signup handles POST /signup. A malformed body, missing fields, a taken
// username, and persistence failures all answer with the same generic 422.
func (h *AuthHandler) Signup(c echo.Context) error {
	// Bind into a value so an empty or null body degrades to empty fields
	// instead of a nil input.
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.Unprocessable(c)
	}

	output, err := h.uc.Signup(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.sessions.SetUserID(c, output.ID); err != nil {
		h.logger.Error("Failed to save session after signup", "error", err.Error())

		return response.Unprocessable(c)
	}

	return response.JSON(c, http.StatusCreated, output)
}

// Login handles POST /login. The 401 body is identical for an unknown
// username and a wrong password.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusUnauthorized, "Invalid username or password")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.sessions.SetUserID(c, output.ID); err != nil {
		h.logger.Error("Failed to save session after login", "error", err.Error())

		return response.Error(c, http.StatusUnauthorized, "Invalid username or password")
	}

	return response.JSON(c, http.StatusOK, output)
}

// Logout handles DELETE /logout. The session requirement is enforced by the
// RequireSession middleware; here the session's user id is cleared.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Clear(c); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// CheckSession handles GET /check_session. Whether there is no session or the
// session's user no longer exists, the answer is a plain 401.
func (h *AuthHandler) CheckSession(c echo.Context) error {
	userID, ok := h.sessions.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	output, err := h.uc.GetByID(c.Request().Context(), userID)
	if err != nil {
		return response.Unauthorized(c)
	}

	return response.JSON(c, http.StatusOK, output)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
