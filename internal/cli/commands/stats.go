package commands

import (
	"expview/internal/ui"

	"github.com/spf13/cobra"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	env       *environment
	formatter *ui.Formatter
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(env *environment, formatter *ui.Formatter) *StatsCommand {
	return &StatsCommand{
		env:       env,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *StatsCommand) Execute(cmd *cobra.Command, args []string) error {
	session, l, err := sc.env.loadSession(cmd.Context())
	if err != nil {
		return err
	}

	sc.formatter.PrintStats(session.Stats(), l.SourceName())
	return nil
}
