package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/orbit-hq/orbit-cli/internal/api"
	"github.com/spf13/cobra"
)

// WhoamiCommand represents the whoami command
type WhoamiCommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewWhoamiCommand creates a new whoami command
func NewWhoamiCommand(root *RootCommand) *WhoamiCommand {
	w := &WhoamiCommand{
		root: root,
	}

	w.cmd = &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Long: `Show the profile of the currently signed-in user.

If the access token has expired, the session is refreshed once before
giving up.

Examples:
  orbit whoami
  orbit whoami -o json`,
		RunE: w.Run,
	}

	return w
}

// Command returns the underlying cobra command
func (w *WhoamiCommand) Command() *cobra.Command {
	return w.cmd
}

// Run executes the whoami command
func (w *WhoamiCommand) Run(cmd *cobra.Command, args []string) error {
	session := w.root.Container().SessionService()

	user, err := runAuthenticated(cmd.Context(), session, func(ctx context.Context) (*api.User, error) {
		return session.CurrentUser(ctx)
	})
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		return w.outputJSON(user)
	default:
		return w.outputDetail(user)
	}
}

// outputJSON outputs the user in JSON format
func (w *WhoamiCommand) outputJSON(user *api.User) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(user)
}

// outputDetail outputs the user in human-readable format
func (w *WhoamiCommand) outputDetail(user *api.User) error {
	fmt.Printf("Name:  %s\n", user.Name)
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("ID:    %s\n", user.ID)
	fmt.Printf("Role:  %s\n", user.Role)

	verified := "no"
	if user.IsEmailVerified {
		verified = "yes"
	}
	fmt.Printf("Email verified: %s\n", verified)

	if user.LastLogin != "" {
		fmt.Printf("Last login: %s\n", user.LastLogin)
	}
	if user.CreatedAt != "" {
		fmt.Printf("Member since: %s\n", user.CreatedAt)
	}

	return nil
}
