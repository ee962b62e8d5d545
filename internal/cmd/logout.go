package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// LogoutCommand represents the logout command
type LogoutCommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewLogoutCommand creates a new logout command
func NewLogoutCommand(root *RootCommand) *LogoutCommand {
	l := &LogoutCommand{
		root: root,
	}

	l.cmd = &cobra.Command{
		Use:   "logout",
		Short: "Sign out from the Orbit Platform",
		Long: `Sign out from the Orbit Platform and clear stored credentials.

The server is asked to invalidate the session, but local credentials are
removed even when the server cannot be reached.

Example:
  orbit logout`,
		RunE: l.Run,
	}

	return l
}

// Command returns the underlying cobra command
func (l *LogoutCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the logout command
func (l *LogoutCommand) Run(cmd *cobra.Command, args []string) error {
	session := l.root.Container().SessionService()

	if err := session.SignOut(cmd.Context()); err != nil {
		return err
	}

	fmt.Println("✓ Signed out. Local credentials cleared.")
	return nil
}
