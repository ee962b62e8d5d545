package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/orbit-hq/orbit-cli/internal/api"
	iface "github.com/orbit-hq/orbit-cli/internal/service/interface"
)

// runAuthenticated executes an authenticated API call. If the server
// rejects the access token with a 401, it refreshes the session once
// and retries the call once. It never loops: a second 401 (or a failed
// refresh) means the session is gone and the user has to sign in again.
func runAuthenticated[T any](ctx context.Context, session iface.SessionService, call func(ctx context.Context) (T, error)) (T, error) {
	out, err := call(ctx)
	if err == nil {
		return out, nil
	}

	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || !apiErr.IsUnauthorized() {
		return out, err
	}

	if _, refreshErr := session.RefreshToken(ctx); refreshErr != nil {
		var zero T
		return zero, fmt.Errorf("session expired, please run 'orbit login' again")
	}

	return call(ctx)
}
