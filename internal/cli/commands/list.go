package commands

import (
	"expview/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	env       *environment
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(env *environment, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		env:       env,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	session, _, err := lc.env.loadSession(cmd.Context())
	if err != nil {
		return err
	}

	view := session.View()
	lc.formatter.PrintFilterSummary(session.Search(), session.Selection().Selected(), len(view), len(session.Records()))
	lc.formatter.PrintRecords(view)
	return nil
}
