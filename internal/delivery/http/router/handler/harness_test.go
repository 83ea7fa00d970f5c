package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	gorillasessions "github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"recipebox/internal/delivery/http/middleware"
	"recipebox/internal/delivery/http/router"
	"recipebox/internal/delivery/http/router/handler"
	"recipebox/internal/delivery/http/session"
	deliveryvalidator "recipebox/internal/delivery/http/validator"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/usecase"
)

const testCookieName = "recipebox_session"

// validInstructions clears the fifty character minimum.
var validInstructions = strings.Repeat("Chop, season, simmer. ", 3)

// fakeUserUsecase is an in-memory UserUsecase with the same error surface as
// the real service.
type fakeUserUsecase struct {
	mu        sync.Mutex
	users     map[string]*usecase.UserOutput
	passwords map[string]string
	getErr    error
}

func newFakeUserUsecase() *fakeUserUsecase {
	return &fakeUserUsecase{
		users:     make(map[string]*usecase.UserOutput),
		passwords: make(map[string]string),
	}
}

func (f *fakeUserUsecase) Signup(_ context.Context, input *usecase.SignupInput) (*usecase.UserOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if input == nil || input.Username == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrUnprocessable)
	}
	if _, exists := f.users[input.Username]; exists {
		return nil, errors.WithStack(domainerrors.ErrUsernameTaken)
	}

	output := &usecase.UserOutput{
		ID:       uuid.New(),
		Username: input.Username,
		ImageURL: input.ImageURL,
		Bio:      input.Bio,
	}
	f.users[input.Username] = output
	f.passwords[input.Username] = input.Password

	return output, nil
}

func (f *fakeUserUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.UserOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	output, exists := f.users[input.Username]
	if !exists || f.passwords[input.Username] != input.Password {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return output, nil
}

func (f *fakeUserUsecase) GetByID(_ context.Context, id uuid.UUID) (*usecase.UserOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, output := range f.users {
		if output.ID == id {
			return output, nil
		}
	}

	return nil, errors.WithStack(domainerrors.ErrUserNotFound)
}

// fakeRecipeUsecase validates through the recipe entity so the handler sees
// the same pass/fail boundary as in production.
type fakeRecipeUsecase struct {
	mu      sync.Mutex
	recipes map[uuid.UUID][]*usecase.RecipeOutput
	listErr error
}

func newFakeRecipeUsecase() *fakeRecipeUsecase {
	return &fakeRecipeUsecase{recipes: make(map[uuid.UUID][]*usecase.RecipeOutput)}
}

func (f *fakeRecipeUsecase) ListForUser(_ context.Context, userID uuid.UUID) ([]*usecase.RecipeOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}

	// A user without recipes lists as [], never null.
	return append([]*usecase.RecipeOutput{}, f.recipes[userID]...), nil
}

func (f *fakeRecipeUsecase) Create(_ context.Context, userID uuid.UUID, input *usecase.CreateRecipeInput) (*usecase.RecipeOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	recipe, err := entity.NewRecipe(input.Title, input.Instructions, input.MinutesToComplete, userID)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidRecipe)
	}

	output := &usecase.RecipeOutput{
		ID:                uuid.New(),
		Title:             recipe.Title,
		Instructions:      recipe.Instructions,
		MinutesToComplete: recipe.MinutesToComplete,
		UserID:            userID,
	}
	f.recipes[userID] = append(f.recipes[userID], output)

	return output, nil
}

// testServer wires the real router, middleware, and session manager over the
// fake usecases.
type testServer struct {
	echo     *echo.Echo
	userUC   *fakeUserUsecase
	recipeUC *fakeRecipeUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sessions := session.NewManagerWithStore(
		gorillasessions.NewCookieStore([]byte("test-session-secret")),
		testCookieName,
	)

	userUC := newFakeUserUsecase()
	recipeUC := newFakeRecipeUsecase()

	e := echo.New()
	e.Validator = deliveryvalidator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(userUC, sessions, logger),
		RecipeHandler:       handler.NewRecipeHandler(recipeUC),
		AuthMiddleware:      middleware.NewAuthMiddleware(sessions),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger),
	})
	r.RegisterRoutes(e)

	return &testServer{echo: e, userUC: userUC, recipeUC: recipeUC}
}

// do performs a request against the in-process server, attaching any session
// cookies from a previous response.
func (s *testServer) do(method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

// signup registers a user and returns the session cookies from the response.
func (s *testServer) signup(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()

	rec := s.do(http.MethodPost, "/signup", `{"username": "`+username+`", "password": "`+password+`"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup for %q returned %d: %s", username, rec.Code, rec.Body.String())
	}

	return rec.Result().Cookies()
}
