package ui

import (
	"fmt"
	"io"
	"strings"

	"expview/internal/config"
	"expview/internal/domain"
	"expview/internal/engine"

	"github.com/fatih/color"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		out:    out,
	}
}

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	white  = color.New(color.FgWhite)
	gray   = color.New(color.FgHiBlack)
)

// PrintStats displays the summary statistics of a load
func (f *Formatter) PrintStats(stats domain.Stats, source string) {
	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                  test262 Expectations Summary                 ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Fprintf(f.out, "│ %-31s │ ", "Total tests")
	white.Fprintf(f.out, "%-27d", stats.Total)
	fmt.Fprintln(f.out, " │")
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Fprintf(f.out, "│ %-31s │ ", "Default mode")
	yellow.Fprintf(f.out, "%-27d", stats.DefaultModeCount)
	fmt.Fprintln(f.out, " │")
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Fprintf(f.out, "│ %-31s │ ", "Strict mode")
	red.Fprintf(f.out, "%-27d", stats.StrictModeCount)
	fmt.Fprintln(f.out, " │")

	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	if source != "" {
		gray.Fprintf(f.out, "Source: %s\n", source)
	}
}

// PrintRecords displays records with their links and mode messages
func (f *Formatter) PrintRecords(records []domain.TestRecord) {
	if len(records) == 0 {
		yellow.Fprintln(f.out, "No results found")
		return
	}

	green.Fprintf(f.out, "Found %d test(s):\n\n", len(records))

	for i, record := range records {
		cyan.Fprint(f.out, record.Path)
		for _, mode := range record.ModeNames() {
			fmt.Fprint(f.out, " ")
			modeBadge(mode).Fprintf(f.out, "[%s]", mode)
		}
		fmt.Fprintln(f.out)
		gray.Fprintf(f.out, "  %s\n", f.config.TestURL(record.Path))

		for _, mode := range record.ModeNames() {
			yellow.Fprintf(f.out, "  %s:", mode)
			fmt.Fprintf(f.out, " %s\n", record.Modes[mode])
		}

		if i < len(records)-1 {
			fmt.Fprintln(f.out)
		}
	}
}

// PrintCategoryTree prints the category tree with record counts.
// Collapsed categories hide their children unless expandAll is set.
func (f *Formatter) PrintCategoryTree(nodes []engine.CategoryNode, expandAll bool) {
	if len(nodes) == 0 {
		yellow.Fprintln(f.out, "No categories found")
		return
	}
	f.printTreeNodes(nodes, "", expandAll)
}

func (f *Formatter) printTreeNodes(nodes []engine.CategoryNode, prefix string, expandAll bool) {
	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		marker := "[ ] "
		if node.Selected {
			marker = green.Sprint("[x] ")
		}

		fmt.Fprint(f.out, prefix+connector+marker)
		if engine.Depth(node.Path) == 1 {
			cyan.Fprint(f.out, node.Name)
		} else {
			white.Fprint(f.out, node.Name)
		}
		gray.Fprintf(f.out, " (%d)", node.Count)
		if !expandAll && !node.Expanded && len(node.Children) > 0 {
			gray.Fprint(f.out, " …")
		}
		fmt.Fprintln(f.out)

		if expandAll || node.Expanded {
			f.printTreeNodes(node.Children, childPrefix, expandAll)
		}
	}
}

// PrintFilterSummary describes the active filter above a listing
func (f *Formatter) PrintFilterSummary(search string, categories []string, matched, total int) {
	var parts []string
	if search != "" {
		parts = append(parts, fmt.Sprintf("search %q", search))
	}
	if len(categories) > 0 {
		parts = append(parts, "categories "+strings.Join(categories, ", "))
	}
	if len(parts) == 0 {
		return
	}
	gray.Fprintf(f.out, "Filter: %s (%d of %d)\n", strings.Join(parts, "; "), matched, total)
}

// PrintError displays a failed command
func (f *Formatter) PrintError(err error) {
	red.Fprintf(f.out, "✗ Error: %v\n", err)
}

func modeBadge(mode string) *color.Color {
	if mode == domain.ModeDefault {
		return green
	}
	return yellow
}
