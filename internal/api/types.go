package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// envelope is the uniform JSON wrapper the API uses for both success
// and error responses
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  []FieldError    `json:"errors,omitempty"`
}

const (
	envelopeStatusSuccess = "success"
	envelopeStatusError   = "error"
)

// FieldError describes a single validation problem reported by the
// server; Path identifies the offending request field
type FieldError struct {
	Type     string `json:"type,omitempty"`
	Value    string `json:"value,omitempty"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location,omitempty"`
}

// APIError represents a failed API exchange.
//
// Status values:
//
//	0    the transport could not reach the host
//	408  the client-side deadline elapsed before a response arrived
//	401  (local) an authenticated call was attempted with no stored token
//	500  malformed response body or unclassified local failure
//	else the HTTP status reported by the server
type APIError struct {
	Message string
	Status  int
	Errors  []FieldError
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("API error (status %d): %s", e.Status, e.Message)
	}

	details := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		details = append(details, fmt.Sprintf("%s: %s", fe.Path, fe.Msg))
	}
	return fmt.Sprintf("API error (status %d): %s (%s)", e.Status, e.Message, strings.Join(details, "; "))
}

// IsUnauthorized checks if the error is an unauthorized error
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// IsTimeout checks if the error is a client-side timeout
func (e *APIError) IsTimeout() bool {
	return e.Status == http.StatusRequestTimeout
}

// IsNetwork checks if the error is a connectivity failure
func (e *APIError) IsNetwork() bool {
	return e.Status == 0
}

// User is the account profile returned by the server, passed through
// unmodified
type User struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	IsEmailVerified bool   `json:"isEmailVerified"`
	LastLogin       string `json:"lastLogin,omitempty"`
	CreatedAt       string `json:"createdAt,omitempty"`
}

// TokenPair is the credential pair issued on sign-in and sign-up
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthPayload is the success payload of the sign-in and sign-up endpoints
type AuthPayload struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// SignInRequest is the request body for POST /auth/signin
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest is the request body for POST /auth/signup
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signOutRequest is the request body for POST /auth/signout
type signOutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// refreshRequest is the request body for POST /auth/refresh-token
type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// refreshResponse is the success payload of POST /auth/refresh-token
type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// UpdateProfileRequest is the request body for PUT /auth/profile.
// Nil fields are omitted from the patch.
type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty"`
}

// ChangePasswordRequest is the request body for PUT /auth/change-password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
