package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// StatusCommand represents the status command
type StatusCommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewStatusCommand creates a new status command
func NewStatusCommand(root *RootCommand) *StatusCommand {
	s := &StatusCommand{
		root: root,
	}

	s.cmd = &cobra.Command{
		Use:   "status",
		Short: "Show local session status",
		Long: `Show whether a session is stored on this machine.

This is a purely local check: it reports whether credentials are stored,
not whether the server still accepts them.

Examples:
  orbit status
  orbit status -o json`,
		RunE: s.Run,
	}

	return s
}

// Command returns the underlying cobra command
func (s *StatusCommand) Command() *cobra.Command {
	return s.cmd
}

// Run executes the status command
func (s *StatusCommand) Run(cmd *cobra.Command, args []string) error {
	session := s.root.Container().SessionService()

	authenticated := session.IsAuthenticated()

	switch outputFormat(cmd) {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]bool{"authenticated": authenticated})
	default:
		if authenticated {
			fmt.Println("Signed in (local credentials present).")
		} else {
			fmt.Println("Not signed in. Run 'orbit login' to sign in.")
		}
		return nil
	}
}
