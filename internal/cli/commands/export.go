package commands

import (
	"fmt"

	"expview/internal/storage"
	"expview/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ExportCommand handles the export command
type ExportCommand struct {
	env       *environment
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(env *environment, formatter *ui.Formatter, st storage.Storage) *ExportCommand {
	return &ExportCommand{
		env:       env,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (ec *ExportCommand) Execute(cmd *cobra.Command, args []string) error {
	session, _, err := ec.env.loadSession(cmd.Context())
	if err != nil {
		return err
	}

	output := storage.BuildExport(ec.env.config, session, ec.env.config.GetSourceName())
	path, err := ec.storage.Save(output)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	color.Green("✓ Exported %d of %d test(s) to %s", output.Meta.Matched, output.Meta.Stats.Total, path)
	return nil
}
