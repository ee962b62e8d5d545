package cmd

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	iface "github.com/orbit-hq/orbit-cli/internal/service/interface"
	"github.com/spf13/cobra"
)

// PasswdCommand represents the passwd command
type PasswdCommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewPasswdCommand creates a new passwd command
func NewPasswdCommand(root *RootCommand) *PasswdCommand {
	p := &PasswdCommand{
		root: root,
	}

	p.cmd = &cobra.Command{
		Use:   "passwd",
		Short: "Change your account password",
		Long: `Change your Orbit Platform account password.

You will be asked for your current password and the new password.
Your stored session stays valid after the change.

Example:
  orbit passwd`,
		RunE: p.Run,
	}

	return p
}

// Command returns the underlying cobra command
func (p *PasswdCommand) Command() *cobra.Command {
	return p.cmd
}

// Run executes the passwd command
func (p *PasswdCommand) Run(cmd *cobra.Command, args []string) error {
	session := p.root.Container().SessionService()

	var current string
	if err := survey.AskOne(&survey.Password{
		Message: "Current password:",
	}, &current, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var next string
	if err := survey.AskOne(&survey.Password{
		Message: "New password:",
	}, &next, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var confirm string
	if err := survey.AskOne(&survey.Password{
		Message: "Confirm new password:",
	}, &confirm, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	if next != confirm {
		return fmt.Errorf("passwords do not match")
	}

	input := iface.ChangePasswordInput{
		CurrentPassword: current,
		NewPassword:     next,
	}

	_, err := runAuthenticated(cmd.Context(), session, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, session.ChangePassword(ctx, input)
	})
	if err != nil {
		return err
	}

	fmt.Println("✓ Password changed.")
	return nil
}
