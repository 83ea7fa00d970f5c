package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "recipebox/internal/domain/errors"
)

func TestSignup_CreatesAccountAndSession(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(http.MethodPost, "/signup", `{
		"username": "ashketchum",
		"password": "pikachu",
		"bio": "Pallet Town trainer",
		"image_url": "https://example.com/ash.png"
	}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ashketchum", body["username"])
	assert.Equal(t, "Pallet Town trainer", body["bio"])
	assert.Equal(t, "https://example.com/ash.png", body["image_url"])
	assert.NotEmpty(t, body["id"])

	// The password must not leak back in any form.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "pikachu")

	// A session cookie comes back with the 201 and authenticates the
	// follow-up session check.
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	check := server.do(http.MethodGet, "/check_session", "", cookies)
	require.Equal(t, http.StatusOK, check.Code)
	assert.Contains(t, check.Body.String(), `"username":"ashketchum"`)
}

func TestSignup_RejectsIncompletePayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing password", body: `{"username": "ash"}`},
		{name: "missing username", body: `{"password": "pikachu"}`},
		{name: "empty object", body: `{}`},
		{name: "empty body", body: ""},
		{name: "null body", body: "null"},
		{name: "malformed json", body: `{"username": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t)

			rec := server.do(http.MethodPost, "/signup", tt.body, nil)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.JSONEq(t, `{"error": "Unprocessable Entity"}`, rec.Body.String())
		})
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	server := newTestServer(t)
	server.signup(t, "ash", "pikachu")

	rec := server.do(http.MethodPost, "/signup", `{"username": "ash", "password": "other"}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error": "Unprocessable Entity"}`, rec.Body.String())
}

func TestLogin_Success(t *testing.T) {
	server := newTestServer(t)
	server.signup(t, "ash", "pikachu")

	rec := server.do(http.MethodPost, "/login", `{"username": "ash", "password": "pikachu"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"ash"`)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	check := server.do(http.MethodGet, "/check_session", "", cookies)
	assert.Equal(t, http.StatusOK, check.Code)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	server := newTestServer(t)
	server.signup(t, "ash", "pikachu")

	unknownUser := server.do(http.MethodPost, "/login", `{"username": "misty", "password": "pikachu"}`, nil)
	wrongPassword := server.do(http.MethodPost, "/login", `{"username": "ash", "password": "charizard"}`, nil)

	// Neither the status nor the body may reveal whether the username exists.
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknownUser.Body.String(), wrongPassword.Body.String())
	assert.JSONEq(t, `{"error": "Invalid username or password"}`, unknownUser.Body.String())
}

func TestLogin_EmptyBody(t *testing.T) {
	server := newTestServer(t)
	server.signup(t, "ash", "pikachu")

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "null body", body: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := server.do(http.MethodPost, "/login", tt.body, nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error": "Invalid username or password"}`, rec.Body.String())
		})
	}
}

func TestCheckSession_WithoutCookie(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(http.MethodGet, "/check_session", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "Unauthorized"}`, rec.Body.String())
}

func TestCheckSession_UserNoLongerExists(t *testing.T) {
	server := newTestServer(t)
	cookies := server.signup(t, "ash", "pikachu")

	// The account behind the session disappears; the stale cookie must read
	// as unauthenticated, not as an internal error.
	server.userUC.getErr = errors.WithStack(domainerrors.ErrUserNotFound)

	rec := server.do(http.MethodGet, "/check_session", "", cookies)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "Unauthorized"}`, rec.Body.String())
}

func TestLogout(t *testing.T) {
	server := newTestServer(t)

	t.Run("without session", func(t *testing.T) {
		rec := server.do(http.MethodDelete, "/logout", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error": "Unauthorized"}`, rec.Body.String())
	})

	t.Run("with session", func(t *testing.T) {
		cookies := server.signup(t, "ash", "pikachu")

		rec := server.do(http.MethodDelete, "/logout", "", cookies)
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())

		// The logout response rewrites the session cookie without the user
		// id, so carrying it forward no longer authenticates.
		loggedOut := rec.Result().Cookies()
		require.NotEmpty(t, loggedOut)

		check := server.do(http.MethodGet, "/check_session", "", loggedOut)
		assert.Equal(t, http.StatusUnauthorized, check.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
