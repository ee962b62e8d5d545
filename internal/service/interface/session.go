// Package iface defines service interfaces for the Orbit CLI.
// These interfaces enable dependency injection and mocking for tests.
package iface

import (
	"context"

	"github.com/orbit-hq/orbit-cli/internal/api"
)

// SignInInput carries the credentials for signing in
type SignInInput struct {
	Email    string
	Password string
}

// SignUpInput carries the data for creating an account
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateProfileInput is a partial profile patch; nil fields are left unchanged
type UpdateProfileInput struct {
	Name *string
}

// ChangePasswordInput carries the old and new password
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// SessionService owns the token pair and mediates every call to the
// account API. It is the only component that reads or writes the
// stored tokens.
type SessionService interface {
	// SignIn authenticates and persists the returned token pair.
	// Stored tokens are untouched on failure.
	SignIn(ctx context.Context, in SignInInput) (*api.AuthPayload, error)

	// SignUp creates an account and persists the returned token pair
	SignUp(ctx context.Context, in SignUpInput) (*api.AuthPayload, error)

	// SignOut clears the stored tokens unconditionally, after a
	// best-effort server-side invalidation whose failure is swallowed.
	// It returns an error only if the local clear itself fails.
	SignOut(ctx context.Context) error

	// RefreshToken mints a new access token from the stored refresh
	// token. With no refresh token stored it returns ("", nil) without
	// a network call. On any failure it clears both stored tokens and
	// returns the error: a rejected refresh token is never retried.
	RefreshToken(ctx context.Context) (string, error)

	// CurrentUser fetches the authenticated user's profile
	CurrentUser(ctx context.Context) (*api.User, error)

	// UpdateProfile applies a partial profile update
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*api.User, error)

	// ChangePassword changes the account password
	ChangePassword(ctx context.Context, in ChangePasswordInput) error

	// IsAuthenticated reports whether both tokens are present in
	// storage. It does not validate them against the server.
	IsAuthenticated() bool
}
