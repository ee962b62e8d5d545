package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	iface "github.com/orbit-hq/orbit-cli/internal/service/interface"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// RegisterCommand represents the register command
type RegisterCommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewRegisterCommand creates a new register command
func NewRegisterCommand(root *RootCommand) *RegisterCommand {
	r := &RegisterCommand{
		root: root,
	}

	r.cmd = &cobra.Command{
		Use:   "register",
		Short: "Create a new Orbit Platform account",
		Long: `Create a new Orbit Platform account with an interactive wizard.

You will be asked for your name, email, and a password. After the account
is created you are signed in immediately.

Example:
  orbit register`,
		RunE: r.Run,
	}

	return r
}

// Command returns the underlying cobra command
func (r *RegisterCommand) Command() *cobra.Command {
	return r.cmd
}

// Run executes the register command with an interactive wizard
func (r *RegisterCommand) Run(cmd *cobra.Command, args []string) error {
	session := r.root.Container().SessionService()

	var name string
	if err := survey.AskOne(&survey.Input{
		Message: "Name:",
	}, &name, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var email string
	if err := survey.AskOne(&survey.Input{
		Message: "Email:",
	}, &email, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var password string
	if err := survey.AskOne(&survey.Password{
		Message: "Password:",
	}, &password, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var confirm string
	if err := survey.AskOne(&survey.Password{
		Message: "Confirm password:",
	}, &confirm, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	payload, err := session.SignUp(cmd.Context(), iface.SignUpInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Account created. Signed in as %s (%s)\n", payload.User.Name, payload.User.Email)

	if !payload.User.IsEmailVerified {
		verifyURL := r.root.Container().Settings().DashboardURL + "/verify-email"

		var open bool
		if err := survey.AskOne(&survey.Confirm{
			Message: "Your email is not verified yet. Open the verification page?",
			Default: true,
		}, &open); err == nil && open {
			if err := browser.OpenURL(verifyURL); err != nil {
				fmt.Printf("Could not open browser. Please visit:\n%s\n", verifyURL)
			}
		}
	}

	return nil
}
