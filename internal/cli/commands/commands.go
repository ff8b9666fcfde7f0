package commands

import (
	"context"
	"os"

	"expview/internal/cli"
	"expview/internal/config"
	"expview/internal/engine"
	"expview/internal/loader"
	"expview/internal/parser"
	"expview/internal/source"
	"expview/internal/storage"
	"expview/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Commands holds all CLI commands
type Commands struct {
	Browse     *BrowseCommand
	List       *ListCommand
	Stats      *StatsCommand
	Categories *CategoriesCommand
	Export     *ExportCommand

	env *environment
}

// environment carries what every command needs once flags are parsed
type environment struct {
	config *config.Config
	parser parser.Parser
	logger *zap.Logger
}

// newLoader builds a loader for the configured source. progress may be nil.
func (e *environment) newLoader(progress source.ProgressFunc) *loader.Loader {
	return loader.NewLoader(source.New(e.config, e.logger, progress), e.parser, e.logger)
}

// loadSession fetches the document into a fresh session and applies the filter flags
func (e *environment) loadSession(ctx context.Context) (*engine.Session, *loader.Loader, error) {
	var progress source.ProgressFunc
	if !e.config.Flags.NoProgress {
		progress = ui.DownloadProgress
	}
	l := e.newLoader(progress)

	s := engine.NewSession()
	if err := l.Load(ctx, s); err != nil {
		return nil, nil, err
	}
	applyFilters(s, e.config.Flags, e.logger)
	return s, l, nil
}

// applyFilters selects the requested categories and sets the search term.
// Categories missing from the document are skipped with a warning.
func applyFilters(s *engine.Session, flags config.Flags, logger *zap.Logger) {
	for _, category := range flags.Categories {
		if !s.Categories().Has(category) {
			color.Yellow("Unknown category %q, ignoring", category)
			logger.Warn("unknown category", zap.String("category", category))
			continue
		}
		if !s.Selection().IsSelected(category) {
			s.ToggleCategory(category)
		}
	}
	s.SetSearch(flags.Search)
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	env := &environment{
		config: cfg,
		parser: parser.NewExpectationsParser(),
		logger: zap.NewNop(),
	}
	formatter := ui.NewFormatter(cfg, os.Stdout)
	jsonStorage := storage.NewJSONStorage(cfg)

	return &Commands{
		Browse:     NewBrowseCommand(env),
		List:       NewListCommand(env, formatter),
		Stats:      NewStatsCommand(env, formatter),
		Categories: NewCategoriesCommand(env, formatter),
		Export:     NewExportCommand(env, formatter, jsonStorage),
		env:        env,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	setup := func(interactive bool) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			if err := cfg.LoadEnv(flags.EnvFile); err != nil {
				return err
			}
			cfg.Flags = flags.ToConfigFlags()

			logger, err := cli.NewLogger(cfg.Flags, interactive)
			if err != nil {
				return err
			}
			c.env.logger = logger
			return nil
		}
	}
	teardown := func(cmd *cobra.Command, args []string) {
		_ = c.env.logger.Sync()
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flags.SourceURL, "url", "", "URL of the expectations document (default: WebKit test262 expectations.yaml)")
	persistent.StringVar(&flags.SourceFile, "file", "", "Read the expectations document from a local file instead of the URL")
	persistent.StringVar(&flags.EnvFile, "env-file", config.DefaultEnvFile, "Environment file to load before reading EXPVIEW_* variables")
	persistent.BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	persistent.StringVar(&flags.LogFile, "log-file", "", "Write logs to this file")

	filterFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "Case-insensitive text matched against test paths and error messages")
		cmd.Flags().StringSliceVarP(&flags.Categories, "category", "c", nil, "Category to include, e.g. 'built-ins/Array' (repeatable, any of)")
	}

	// Browse command
	browseCmd := &cobra.Command{
		Use:     "browse",
		Short:   "Browse expectations interactively",
		Long:    "Open the interactive viewer with search, a category tree and per-test error details",
		RunE:    c.Browse.Execute,
		PreRunE: setup(true),
		PostRun: teardown,
	}
	filterFlags(browseCmd)
	rootCmd.AddCommand(browseCmd)

	// Root runs the browser when called without a subcommand
	rootCmd.RunE = c.Browse.Execute
	rootCmd.PreRunE = setup(true)
	rootCmd.PostRun = teardown
	filterFlags(rootCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List expectations matching the filters",
		Long:    "Fetch the expectations document and print the tests matching --search and --category",
		RunE:    c.List.Execute,
		PreRunE: setup(false),
		PostRun: teardown,
	}
	filterFlags(listCmd)
	listCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Do not show the download progress bar")
	rootCmd.AddCommand(listCmd)

	// Stats command
	statsCmd := &cobra.Command{
		Use:     "stats",
		Short:   "Show expectation statistics",
		Long:    "Print the total number of tests and how many fail in default and strict mode",
		RunE:    c.Stats.Execute,
		PreRunE: setup(false),
		PostRun: teardown,
	}
	statsCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Do not show the download progress bar")
	rootCmd.AddCommand(statsCmd)

	// Categories command
	categoriesCmd := &cobra.Command{
		Use:     "categories",
		Short:   "Print the category tree",
		Long:    "Print the categories derived from test paths with the number of tests in each",
		RunE:    c.Categories.Execute,
		PreRunE: setup(false),
		PostRun: teardown,
	}
	categoriesCmd.Flags().StringSliceVarP(&flags.Categories, "category", "c", nil, "Category to mark as selected (repeatable)")
	categoriesCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Do not show the download progress bar")
	rootCmd.AddCommand(categoriesCmd)

	// Export command
	exportCmd := &cobra.Command{
		Use:     "export",
		Short:   "Export matching expectations to JSON",
		Long:    "Write the tests matching --search and --category, with links and statistics, to a JSON file",
		RunE:    c.Export.Execute,
		PreRunE: setup(false),
		PostRun: teardown,
	}
	filterFlags(exportCmd)
	exportCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file (default: "+config.DefaultExportPath+")")
	exportCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Do not show the download progress bar")
	rootCmd.AddCommand(exportCmd)
}
