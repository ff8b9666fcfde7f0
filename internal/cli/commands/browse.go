package commands

import (
	"expview/internal/engine"
	"expview/internal/ui"

	"github.com/spf13/cobra"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	env *environment
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(env *environment) *BrowseCommand {
	return &BrowseCommand{env: env}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := bc.env.config
	session := engine.NewSession()
	session.SetSearch(cfg.Flags.Search)

	browser := ui.NewBrowser(cfg, bc.env.newLoader(nil), session, bc.env.logger)
	browser.Preselect(cfg.Flags.Categories)
	return browser.View()
}
