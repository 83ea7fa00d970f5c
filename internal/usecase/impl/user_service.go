// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/domain/service"
	"recipebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates a new account inside a transaction. Missing fields, a taken
// username, and persistence failures all collapse into the generic 422 error.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.UserOutput, error) {
	// A nil input reads as a payload with every field missing.
	if input == nil || strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrUnprocessable, "username and password are required")
	}

	user := &entity.User{
		Username: input.Username,
		Bio:      input.Bio,
		ImageURL: input.ImageURL,
	}
	if err := user.SetPassword(input.Password, srv.hasher); err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to hash password")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			srv.log(ctx).Warn("Signup rejected, username taken", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrUsernameTaken, "signup failed")
		}
		srv.log(ctx).Error("Failed to execute signup transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnprocessable, "signup failed")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", user.ID))

	return toUserOutput(user), nil
}

// Login authenticates a username/password pair. Unknown usernames and wrong
// passwords are indistinguishable in the returned error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.UserOutput, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown username", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !user.Authenticate(input.Password, srv.hasher) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return toUserOutput(user), nil
}

// GetByID resolves a user id to a user.
func (srv *userService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserOutput(user), nil
}

// toUserOutput maps a user entity to its serialized form. The credential is
// left behind here; no output DTO carries it.
func toUserOutput(user *entity.User) *usecase.UserOutput {
	return &usecase.UserOutput{
		ID:       user.ID,
		Username: user.Username,
		ImageURL: user.ImageURL,
		Bio:      user.Bio,
	}
}
