package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/orbit-hq/orbit-cli/internal/api"
	"github.com/orbit-hq/orbit-cli/internal/logging"
	iface "github.com/orbit-hq/orbit-cli/internal/service/interface"
	"github.com/orbit-hq/orbit-cli/internal/store"
)

// sessionService implements iface.SessionService
type sessionService struct {
	client *api.Client
	store  store.Store
	log    logging.Logger

	// mu serializes every read-then-write of the token pair, so a
	// sign-in racing a refresh cannot interleave and pair a stale
	// access token with a newer refresh token.
	mu sync.Mutex
}

// NewSessionService creates a new session service
func NewSessionService(client *api.Client, tokenStore store.Store, log logging.Logger) iface.SessionService {
	return &sessionService{
		client: client,
		store:  tokenStore,
		log:    log,
	}
}

// SignIn authenticates and persists the returned token pair
func (s *sessionService) SignIn(ctx context.Context, in iface.SignInInput) (*api.AuthPayload, error) {
	payload, err := s.client.SignIn(ctx, api.SignInRequest{
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveTokens(payload.Tokens.AccessToken, payload.Tokens.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to save session tokens: %w", err)
	}

	return payload, nil
}

// SignUp creates an account and persists the returned token pair
func (s *sessionService) SignUp(ctx context.Context, in iface.SignUpInput) (*api.AuthPayload, error) {
	payload, err := s.client.SignUp(ctx, api.SignUpRequest{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveTokens(payload.Tokens.AccessToken, payload.Tokens.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to save session tokens: %w", err)
	}

	return payload, nil
}

// SignOut clears the stored tokens unconditionally. The server-side
// invalidation is best-effort: its failure is logged, never surfaced.
func (s *sessionService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	refreshToken, err := s.store.RefreshToken()
	if err != nil {
		s.log.Warn(ctx, "could not read stored refresh token", "error", err)
	}

	if refreshToken != "" {
		accessToken, err := s.store.AccessToken()
		if err != nil {
			s.log.Warn(ctx, "could not read stored access token", "error", err)
		}

		if err := s.client.SignOut(ctx, accessToken, refreshToken); err != nil {
			s.log.Warn(ctx, "server-side sign-out failed, clearing local session anyway", "error", err)
		}
	}

	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear stored credentials: %w", err)
	}

	return nil
}

// RefreshToken mints a new access token from the stored refresh token.
// Fail-closed: any failure clears both stored tokens, because a
// rejected refresh token cannot be retried.
func (s *sessionService) RefreshToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	refreshToken, err := s.store.RefreshToken()
	if err != nil {
		return "", fmt.Errorf("failed to read stored refresh token: %w", err)
	}

	if refreshToken == "" {
		return "", nil
	}

	accessToken, err := s.client.RefreshToken(ctx, refreshToken)
	if err != nil {
		if clearErr := s.store.Clear(); clearErr != nil {
			s.log.Error(ctx, "could not clear credentials after failed refresh", "error", clearErr)
		}
		return "", fmt.Errorf("session could not be refreshed: %w", err)
	}

	if err := s.store.SaveAccessToken(accessToken); err != nil {
		return "", fmt.Errorf("failed to save refreshed access token: %w", err)
	}

	return accessToken, nil
}

// CurrentUser fetches the authenticated user's profile
func (s *sessionService) CurrentUser(ctx context.Context) (*api.User, error) {
	accessToken, err := s.requireAccessToken()
	if err != nil {
		return nil, err
	}

	return s.client.CurrentUser(ctx, accessToken)
}

// UpdateProfile applies a partial profile update
func (s *sessionService) UpdateProfile(ctx context.Context, in iface.UpdateProfileInput) (*api.User, error) {
	accessToken, err := s.requireAccessToken()
	if err != nil {
		return nil, err
	}

	return s.client.UpdateProfile(ctx, accessToken, api.UpdateProfileRequest{
		Name: in.Name,
	})
}

// ChangePassword changes the account password
func (s *sessionService) ChangePassword(ctx context.Context, in iface.ChangePasswordInput) error {
	accessToken, err := s.requireAccessToken()
	if err != nil {
		return err
	}

	return s.client.ChangePassword(ctx, accessToken, api.ChangePasswordRequest{
		CurrentPassword: in.CurrentPassword,
		NewPassword:     in.NewPassword,
	})
}

// IsAuthenticated reports whether both tokens are present in storage
func (s *sessionService) IsAuthenticated() bool {
	accessToken, err := s.store.AccessToken()
	if err != nil || accessToken == "" {
		return false
	}

	refreshToken, err := s.store.RefreshToken()
	if err != nil || refreshToken == "" {
		return false
	}

	return true
}

// requireAccessToken returns the stored access token, synthesizing a
// 401 locally when none is stored so no network call is attempted
func (s *sessionService) requireAccessToken() (string, error) {
	accessToken, err := s.store.AccessToken()
	if err != nil {
		return "", fmt.Errorf("failed to read stored access token: %w", err)
	}

	if accessToken == "" {
		return "", &api.APIError{
			Status:  http.StatusUnauthorized,
			Message: "not signed in",
		}
	}

	return accessToken, nil
}
