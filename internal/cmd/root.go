// Package cmd provides the command-line interface for the Orbit CLI.
// It contains all cobra commands and their implementations.
package cmd

import (
	"fmt"

	"github.com/orbit-hq/orbit-cli/internal/di"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"
)

// RootCommand represents the root CLI command
type RootCommand struct {
	container *di.Container
	cmd       *cobra.Command

	// Subcommands
	loginCmd     *LoginCommand
	registerCmd  *RegisterCommand
	logoutCmd    *LogoutCommand
	whoamiCmd    *WhoamiCommand
	profileCmd   *ProfileCommand
	passwdCmd    *PasswdCommand
	statusCmd    *StatusCommand
	dashboardCmd *DashboardCommand
}

// NewRootCommand creates a new root command
func NewRootCommand() *RootCommand {
	r := &RootCommand{}

	r.cmd = &cobra.Command{
		Use:   "orbit",
		Short: "Orbit CLI - Command line interface for the Orbit Platform",
		Long: `Orbit CLI is a command-line tool for managing your Orbit Platform account.

It lets you sign up, sign in, view and edit your profile, change your
password, and sign out. Credentials are stored locally and refreshed
automatically when they expire.

To get started, run:
  orbit register - Create a new Orbit account
  orbit login    - Sign in to your Orbit account
  orbit whoami   - Show the signed-in user`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.initialize()
		},
	}

	// Global flags
	r.cmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json)")

	// Initialize subcommands (will be wired after container init)
	r.loginCmd = NewLoginCommand(r)
	r.registerCmd = NewRegisterCommand(r)
	r.logoutCmd = NewLogoutCommand(r)
	r.whoamiCmd = NewWhoamiCommand(r)
	r.profileCmd = NewProfileCommand(r)
	r.passwdCmd = NewPasswdCommand(r)
	r.statusCmd = NewStatusCommand(r)
	r.dashboardCmd = NewDashboardCommand(r)

	// Add subcommands
	r.cmd.AddCommand(r.loginCmd.Command())
	r.cmd.AddCommand(r.registerCmd.Command())
	r.cmd.AddCommand(r.logoutCmd.Command())
	r.cmd.AddCommand(r.whoamiCmd.Command())
	r.cmd.AddCommand(r.profileCmd.Command())
	r.cmd.AddCommand(r.passwdCmd.Command())
	r.cmd.AddCommand(r.statusCmd.Command())
	r.cmd.AddCommand(r.dashboardCmd.Command())

	return r
}

// initialize sets up the DI container
func (r *RootCommand) initialize() error {
	// Skip if container is already set (e.g., for testing)
	if r.container != nil {
		return nil
	}

	var err error
	r.container, err = di.NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return nil
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Container returns the DI container
func (r *RootCommand) Container() *di.Container {
	return r.container
}

// SetContainer sets a custom container (for testing)
func (r *RootCommand) SetContainer(c *di.Container) {
	r.container = c
}

// Execute is the main entry point for the CLI
func Execute() error {
	root := NewRootCommand()
	return root.Execute()
}

// outputFormat resolves the global output flag for a (sub)command
func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format, _ = cmd.Root().PersistentFlags().GetString("output")
	}
	return format
}
