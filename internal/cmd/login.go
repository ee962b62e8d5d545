package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	iface "github.com/orbit-hq/orbit-cli/internal/service/interface"
	"github.com/spf13/cobra"
)

// LoginCommand represents the login command
type LoginCommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewLoginCommand creates a new login command
func NewLoginCommand(root *RootCommand) *LoginCommand {
	l := &LoginCommand{
		root: root,
	}

	l.cmd = &cobra.Command{
		Use:   "login",
		Short: "Sign in to the Orbit Platform",
		Long: `Sign in to the Orbit Platform with your email and password.

After successful authentication, your session tokens are stored locally
and used for subsequent commands.

Examples:
  orbit login
  orbit login --email user@example.com`,
		RunE: l.Run,
	}

	l.cmd.Flags().String("email", "", "Account email (prompted if omitted)")

	return l
}

// Command returns the underlying cobra command
func (l *LoginCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the login command
func (l *LoginCommand) Run(cmd *cobra.Command, args []string) error {
	session := l.root.Container().SessionService()

	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "Email:",
		}, &email, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	var password string
	if err := survey.AskOne(&survey.Password{
		Message: "Password:",
	}, &password, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	payload, err := session.SignIn(cmd.Context(), iface.SignInInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Signed in as %s (%s)\n", payload.User.Name, payload.User.Email)
	return nil
}
