package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/orbit-hq/orbit-cli/internal/api"
	iface "github.com/orbit-hq/orbit-cli/internal/service/interface"
	"github.com/spf13/cobra"
)

// ProfileCommand represents the profile command group
type ProfileCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	// Subcommands
	updateCmd *ProfileUpdateCommand
}

// NewProfileCommand creates a new profile command
func NewProfileCommand(root *RootCommand) *ProfileCommand {
	p := &ProfileCommand{
		root: root,
	}

	p.cmd = &cobra.Command{
		Use:   "profile",
		Short: "Manage your account profile",
		Long: `Manage your Orbit Platform account profile.

Use subcommands to update profile fields. To view your profile,
use 'orbit whoami'.`,
	}

	p.updateCmd = NewProfileUpdateCommand(p)
	p.cmd.AddCommand(p.updateCmd.Command())

	return p
}

// Command returns the underlying cobra command
func (p *ProfileCommand) Command() *cobra.Command {
	return p.cmd
}

// Root returns the parent root command
func (p *ProfileCommand) Root() *RootCommand {
	return p.root
}

// ProfileUpdateCommand represents the profile update command
type ProfileUpdateCommand struct {
	parent *ProfileCommand
	cmd    *cobra.Command
}

// NewProfileUpdateCommand creates a new profile update command
func NewProfileUpdateCommand(parent *ProfileCommand) *ProfileUpdateCommand {
	u := &ProfileUpdateCommand{
		parent: parent,
	}

	u.cmd = &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		Long: `Update fields of your account profile.

Fields not provided are left unchanged on the server.

Examples:
  orbit profile update --name "Ada Lovelace"
  orbit profile update`,
		RunE: u.Run,
	}

	u.cmd.Flags().String("name", "", "New display name (prompted if omitted)")

	return u
}

// Command returns the underlying cobra command
func (u *ProfileUpdateCommand) Command() *cobra.Command {
	return u.cmd
}

// Run executes the profile update command
func (u *ProfileUpdateCommand) Run(cmd *cobra.Command, args []string) error {
	session := u.parent.Root().Container().SessionService()

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "New name:",
		}, &name, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	input := iface.UpdateProfileInput{Name: &name}

	user, err := runAuthenticated(cmd.Context(), session, func(ctx context.Context) (*api.User, error) {
		return session.UpdateProfile(ctx, input)
	})
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(user)
	default:
		fmt.Printf("✓ Profile updated. Name is now %q.\n", user.Name)
		return nil
	}
}
