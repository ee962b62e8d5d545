package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// DashboardCommand represents the dashboard command
type DashboardCommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewDashboardCommand creates a new dashboard command
func NewDashboardCommand(root *RootCommand) *DashboardCommand {
	d := &DashboardCommand{
		root: root,
	}

	d.cmd = &cobra.Command{
		Use:   "dashboard",
		Short: "Open the Orbit Platform dashboard in your browser",
		Long: `Open the Orbit Platform web dashboard in your default browser.

Example:
  orbit dashboard`,
		RunE: d.Run,
	}

	return d
}

// Command returns the underlying cobra command
func (d *DashboardCommand) Command() *cobra.Command {
	return d.cmd
}

// Run executes the dashboard command
func (d *DashboardCommand) Run(cmd *cobra.Command, args []string) error {
	url := d.root.Container().Settings().DashboardURL

	fmt.Printf("Opening %s ...\n", url)
	if err := browser.OpenURL(url); err != nil {
		fmt.Printf("Could not open browser. Please visit:\n%s\n", url)
	}

	return nil
}
