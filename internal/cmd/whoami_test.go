package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/orbit-hq/orbit-cli/internal/api"
	"github.com/orbit-hq/orbit-cli/internal/config"
	"github.com/orbit-hq/orbit-cli/internal/di"
	iface "github.com/orbit-hq/orbit-cli/internal/service/interface"
)

// MockSessionService is a mock implementation of iface.SessionService
type MockSessionService struct {
	SignInFunc          func(ctx context.Context, in iface.SignInInput) (*api.AuthPayload, error)
	SignUpFunc          func(ctx context.Context, in iface.SignUpInput) (*api.AuthPayload, error)
	SignOutFunc         func(ctx context.Context) error
	RefreshTokenFunc    func(ctx context.Context) (string, error)
	CurrentUserFunc     func(ctx context.Context) (*api.User, error)
	UpdateProfileFunc   func(ctx context.Context, in iface.UpdateProfileInput) (*api.User, error)
	ChangePasswordFunc  func(ctx context.Context, in iface.ChangePasswordInput) error
	IsAuthenticatedFunc func() bool
}

func (m *MockSessionService) SignIn(ctx context.Context, in iface.SignInInput) (*api.AuthPayload, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, in)
	}
	return &api.AuthPayload{}, nil
}

func (m *MockSessionService) SignUp(ctx context.Context, in iface.SignUpInput) (*api.AuthPayload, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, in)
	}
	return &api.AuthPayload{}, nil
}

func (m *MockSessionService) SignOut(ctx context.Context) error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc(ctx)
	}
	return nil
}

func (m *MockSessionService) RefreshToken(ctx context.Context) (string, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx)
	}
	return "", nil
}

func (m *MockSessionService) CurrentUser(ctx context.Context) (*api.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx)
	}
	return &api.User{}, nil
}

func (m *MockSessionService) UpdateProfile(ctx context.Context, in iface.UpdateProfileInput) (*api.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, in)
	}
	return &api.User{}, nil
}

func (m *MockSessionService) ChangePassword(ctx context.Context, in iface.ChangePasswordInput) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, in)
	}
	return nil
}

func (m *MockSessionService) IsAuthenticated() bool {
	if m.IsAuthenticatedFunc != nil {
		return m.IsAuthenticatedFunc()
	}
	return true
}

// executeCommand runs the CLI with the given args against a mock
// session service and captures stdout
func executeCommand(t *testing.T, mock *MockSessionService, args ...string) (string, error) {
	t.Helper()

	container := di.NewContainerWithServices(config.Load(), mock)

	root := NewRootCommand()
	root.SetContainer(container)

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	root.Command().SetArgs(args)
	err := root.Command().Execute()

	w.Close()
	os.Stdout = oldStdout
	var buf bytes.Buffer
	io.Copy(&buf, r)

	return buf.String(), err
}

func TestWhoamiCommand_Run(t *testing.T) {
	user := &api.User{
		ID:              "u-123",
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Role:            "admin",
		IsEmailVerified: true,
		LastLogin:       "2026-08-20T10:00:00Z",
	}

	tests := []struct {
		name         string
		mockUser     *api.User
		mockError    error
		outputFormat string
		wantOutput   []string
		wantErr      bool
	}{
		{
			name:         "shows user in text format",
			mockUser:     user,
			outputFormat: "text",
			wantOutput:   []string{"Ada Lovelace", "ada@example.com", "u-123", "admin", "Email verified: yes"},
		},
		{
			name:         "outputs JSON format",
			mockUser:     user,
			outputFormat: "json",
			wantOutput:   []string{`"id": "u-123"`, `"name": "Ada Lovelace"`, `"isEmailVerified": true`},
		},
		{
			name:      "returns error when service fails",
			mockError: context.DeadlineExceeded,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockSessionService{
				CurrentUserFunc: func(ctx context.Context) (*api.User, error) {
					if tt.mockError != nil {
						return nil, tt.mockError
					}
					return tt.mockUser, nil
				},
			}

			args := []string{"whoami"}
			if tt.outputFormat == "json" {
				args = append(args, "-o", "json")
			}

			output, err := executeCommand(t, mock, args...)

			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			for _, want := range tt.wantOutput {
				if !strings.Contains(output, want) {
					t.Errorf("Output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestWhoamiCommand_RefreshesOnceOnUnauthorized(t *testing.T) {
	userCalls := 0
	refreshCalls := 0

	mock := &MockSessionService{
		CurrentUserFunc: func(ctx context.Context) (*api.User, error) {
			userCalls++
			if userCalls == 1 {
				return nil, &api.APIError{Status: 401, Message: "token expired"}
			}
			return &api.User{ID: "u-123", Name: "Ada"}, nil
		},
		RefreshTokenFunc: func(ctx context.Context) (string, error) {
			refreshCalls++
			return "acc-2", nil
		},
	}

	output, err := executeCommand(t, mock, "whoami")
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if userCalls != 2 {
		t.Errorf("CurrentUser should be called twice (original + retry), got %d", userCalls)
	}
	if refreshCalls != 1 {
		t.Errorf("RefreshToken should be called exactly once, got %d", refreshCalls)
	}
	if !strings.Contains(output, "Ada") {
		t.Errorf("Output should contain the user after retry, got: %s", output)
	}
}

func TestWhoamiCommand_FailedRefreshAsksToLogInAgain(t *testing.T) {
	userCalls := 0

	mock := &MockSessionService{
		CurrentUserFunc: func(ctx context.Context) (*api.User, error) {
			userCalls++
			return nil, &api.APIError{Status: 401, Message: "token expired"}
		},
		RefreshTokenFunc: func(ctx context.Context) (string, error) {
			return "", &api.APIError{Status: 401, Message: "refresh token revoked"}
		},
	}

	_, err := executeCommand(t, mock, "whoami")
	if err == nil {
		t.Fatal("Run() expected an error")
	}

	if userCalls != 1 {
		t.Errorf("CurrentUser should not be retried after a failed refresh, got %d calls", userCalls)
	}
	if !strings.Contains(err.Error(), "orbit login") {
		t.Errorf("Error should point the user at 'orbit login', got: %v", err)
	}
}
