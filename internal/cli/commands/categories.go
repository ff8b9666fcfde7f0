package commands

import (
	"expview/internal/ui"

	"github.com/spf13/cobra"
)

// CategoriesCommand handles the categories command
type CategoriesCommand struct {
	env       *environment
	formatter *ui.Formatter
}

// NewCategoriesCommand creates a new CategoriesCommand
func NewCategoriesCommand(env *environment, formatter *ui.Formatter) *CategoriesCommand {
	return &CategoriesCommand{
		env:       env,
		formatter: formatter,
	}
}

// Execute runs the command
func (cc *CategoriesCommand) Execute(cmd *cobra.Command, args []string) error {
	session, _, err := cc.env.loadSession(cmd.Context())
	if err != nil {
		return err
	}

	cc.formatter.PrintCategoryTree(session.Tree(), true)
	return nil
}
