// Package api provides the HTTP client for communicating with the Orbit
// Platform account API. Every exchange uses a uniform JSON envelope and
// failures are normalized into a typed *APIError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is an HTTP client for the Orbit Platform API
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a new API client. Every request is bounded by the
// given timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// Request performs an HTTP request against the API and decodes the
// envelope's data field into result. bearer, if non-empty, is sent as
// an Authorization: Bearer header. Any failure is returned as *APIError.
func (c *Client) Request(ctx context.Context, method, path string, body interface{}, bearer string, result interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return &APIError{
				Status:  http.StatusInternalServerError,
				Message: fmt.Sprintf("failed to marshal request body: %v", err),
			}
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return &APIError{
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("failed to create request: %v", err),
		}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &APIError{
				Status:  http.StatusRequestTimeout,
				Message: "request timed out",
			}
		}
		return &APIError{
			Status:  0,
			Message: fmt.Sprintf("could not reach server: %v", err),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &APIError{
				Status:  http.StatusRequestTimeout,
				Message: "request timed out",
			}
		}
		return &APIError{
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("failed to read response: %v", err),
		}
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return &APIError{
			Status:  http.StatusInternalServerError,
			Message: "unexpected response from server",
		}
	}

	// The envelope reports failure either through the transport status
	// or through its own status field. Either way the error carries the
	// transport status, even when that status is 2xx.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || env.Status == envelopeStatusError {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &APIError{
			Status:  resp.StatusCode,
			Message: msg,
			Errors:  env.Errors,
		}
	}

	if result != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return &APIError{
				Status:  http.StatusInternalServerError,
				Message: "unexpected response from server",
			}
		}
	}

	return nil
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path, bearer string, result interface{}) error {
	return c.Request(ctx, http.MethodGet, path, nil, bearer, result)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body interface{}, bearer string, result interface{}) error {
	return c.Request(ctx, http.MethodPost, path, body, bearer, result)
}

// Put performs a PUT request
func (c *Client) Put(ctx context.Context, path string, body interface{}, bearer string, result interface{}) error {
	return c.Request(ctx, http.MethodPut, path, body, bearer, result)
}

// SignIn authenticates with email and password
func (c *Client) SignIn(ctx context.Context, req SignInRequest) (*AuthPayload, error) {
	var payload AuthPayload
	if err := c.Post(ctx, "/auth/signin", req, "", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SignUp registers a new account
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*AuthPayload, error) {
	var payload AuthPayload
	if err := c.Post(ctx, "/auth/signup", req, "", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SignOut asks the server to invalidate the refresh token
func (c *Client) SignOut(ctx context.Context, accessToken, refreshToken string) error {
	return c.Post(ctx, "/auth/signout", signOutRequest{RefreshToken: refreshToken}, accessToken, nil)
}

// RefreshToken exchanges a refresh token for a new access token
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	var resp refreshResponse
	if err := c.Post(ctx, "/auth/refresh-token", refreshRequest{RefreshToken: refreshToken}, "", &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// CurrentUser fetches the authenticated user's profile
func (c *Client) CurrentUser(ctx context.Context, accessToken string) (*User, error) {
	var user User
	if err := c.Get(ctx, "/auth/me", accessToken, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial profile update
func (c *Client) UpdateProfile(ctx context.Context, accessToken string, req UpdateProfileRequest) (*User, error) {
	var user User
	if err := c.Put(ctx, "/auth/profile", req, accessToken, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword changes the account password
func (c *Client) ChangePassword(ctx context.Context, accessToken string, req ChangePasswordRequest) error {
	return c.Put(ctx, "/auth/change-password", req, accessToken, nil)
}
