// Package usecase defines the application's business-rule interfaces and the
// DTOs that cross the delivery boundary.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SignupInput carries the signup request payload.
type SignupInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

// LoginInput carries the login request payload.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserOutput is the serialized form of a user. It deliberately has no
// password field of any kind.
type UserOutput struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	ImageURL string    `json:"image_url"`
	Bio      string    `json:"bio"`
}

// UserUsecase defines the account operations.
type UserUsecase interface {
	// Signup creates a new account. Missing fields, a taken username, and
	// persistence failures all surface as the generic unprocessable error.
	Signup(ctx context.Context, input *SignupInput) (*UserOutput, error)

	// Login authenticates a username/password pair. An unknown username and
	// a wrong password return the same invalid-credentials error.
	Login(ctx context.Context, input *LoginInput) (*UserOutput, error)

	// GetByID resolves a user id (typically from the session) to a user.
	GetByID(ctx context.Context, id uuid.UUID) (*UserOutput, error)
}
