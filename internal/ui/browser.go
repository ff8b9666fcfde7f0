package ui

import (
	"context"
	"fmt"
	"strings"

	"expview/internal/config"
	"expview/internal/domain"
	"expview/internal/engine"
	"expview/internal/loader"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const keyHints = "[yellow]/[white] search  [yellow]space[white] select  [yellow]enter[white] expand  [yellow]c[white] clear  [yellow]r[white] reload  [yellow]tab[white] focus  [yellow]q[white] quit"

// Browser is the interactive expectations viewer. All session access happens on
// the tview event goroutine; loads run in the background and are handed back
// through QueueUpdateDraw, so the last load to finish wins.
type Browser struct {
	config  *config.Config
	loader  *loader.Loader
	session *engine.Session
	logger  *zap.Logger

	app     *tview.Application
	header  *tview.TextView
	status  *tview.TextView
	search  *tview.InputField
	tree    *tview.TreeView
	list    *tview.List
	details *tview.TextView

	current   []domain.TestRecord
	loading   int
	preselect []string
}

// NewBrowser creates a new Browser
func NewBrowser(cfg *config.Config, l *loader.Loader, s *engine.Session, logger *zap.Logger) *Browser {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Browser{
		config:  cfg,
		loader:  l,
		session: s,
		logger:  logger,
		app:     tview.NewApplication(),
	}
	b.build()
	b.search.SetText(s.Search())
	return b
}

// Preselect selects categories once the first load that contains them completes
func (b *Browser) Preselect(categories []string) {
	b.preselect = append(b.preselect, categories...)
}

// View loads the document and runs the TUI until the user quits
func (b *Browser) View() error {
	b.renderAll()
	b.reload()

	if err := b.app.SetRoot(b.layout(), true).SetFocus(b.tree).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func (b *Browser) build() {
	b.header = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	b.status = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	b.search = tview.NewInputField().
		SetLabel("Search: ").
		SetFieldWidth(0).
		SetChangedFunc(b.onSearch).
		SetDoneFunc(func(key tcell.Key) {
			b.app.SetFocus(b.tree)
		})

	root := tview.NewTreeNode("Categories").SetSelectable(false)
	b.tree = tview.NewTreeView().
		SetRoot(root).
		SetTopLevel(1)
	b.tree.SetBorder(true).SetTitle(" Categories ")
	b.tree.SetInputCapture(b.treeKeys)

	b.list = tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true).
		SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
			b.renderDetails(index)
		})
	b.list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)
	b.list.SetBorder(true)

	b.details = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	b.details.SetBorder(true).SetTitle(" Details ")
	b.details.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyLeft || event.Key() == tcell.KeyEsc {
			b.app.SetFocus(b.list)
			return nil
		}
		return event
	})

	b.app.SetInputCapture(b.globalKeys)
}

func (b *Browser) layout() tview.Primitive {
	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(b.list, 0, 2, false).
		AddItem(b.details, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(b.tree, 0, 1, true).
		AddItem(right, 0, 2, false)

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(b.header, 1, 0, false).
		AddItem(b.search, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(b.status, 1, 0, false)
}

func (b *Browser) globalKeys(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyTab:
		b.cycleFocus()
		return nil
	case tcell.KeyRune:
		if b.app.GetFocus() == b.search {
			return event
		}
		switch event.Rune() {
		case '/':
			b.app.SetFocus(b.search)
			return nil
		case 'r', 'R':
			b.reload()
			return nil
		case 'c', 'C':
			b.session.ClearCategories()
			b.renderTree()
			b.renderRecords()
			return nil
		case 'q', 'Q':
			b.app.Stop()
			return nil
		}
	}
	return event
}

func (b *Browser) treeKeys(event *tcell.EventKey) *tcell.EventKey {
	node := b.tree.GetCurrentNode()
	if node == nil {
		return event
	}
	path, ok := node.GetReference().(string)
	if !ok {
		return event
	}

	switch event.Key() {
	case tcell.KeyEnter, tcell.KeyRight:
		if len(node.GetChildren()) > 0 {
			b.session.ToggleExpanded(path)
			b.renderTree()
		}
		return nil
	case tcell.KeyLeft:
		if b.session.Selection().IsExpanded(path) {
			b.session.ToggleExpanded(path)
			b.renderTree()
		}
		return nil
	case tcell.KeyRune:
		if event.Rune() == ' ' {
			b.session.ToggleCategory(path)
			b.renderTree()
			b.renderRecords()
			return nil
		}
	}
	return event
}

func (b *Browser) onSearch(text string) {
	b.session.SetSearch(text)
	b.renderRecords()
}

func (b *Browser) cycleFocus() {
	order := []tview.Primitive{b.search, b.tree, b.list, b.details}
	focus := b.app.GetFocus()
	for i, p := range order {
		if p == focus {
			b.app.SetFocus(order[(i+1)%len(order)])
			return
		}
	}
	b.app.SetFocus(b.tree)
}

// reload fetches in the background; the prior data stays browsable meanwhile
func (b *Browser) reload() {
	b.loading++
	b.renderStatus("")

	go func() {
		records, err := b.loader.Fetch(context.Background())
		b.app.QueueUpdateDraw(func() {
			b.finishLoad(records, err)
		})
	}()
}

func (b *Browser) finishLoad(records []domain.TestRecord, err error) {
	if b.loading > 0 {
		b.loading--
	}
	if err != nil {
		b.logger.Error("load failed", zap.Error(err))
		b.renderStatus(err.Error())
		return
	}

	b.session.Load(records)
	b.applyPreselect()
	b.renderAll()
}

func (b *Browser) applyPreselect() {
	var pending []string
	for _, category := range b.preselect {
		switch {
		case !b.session.Categories().Has(category):
			pending = append(pending, category)
		case !b.session.Selection().IsSelected(category):
			b.session.ToggleCategory(category)
		}
	}
	b.preselect = pending
}

func (b *Browser) renderAll() {
	b.renderStats()
	b.renderTree()
	b.renderRecords()
	b.renderStatus("")
}

func (b *Browser) renderStats() {
	b.header.SetText(StatsLine(b.session.Stats()))
}

func (b *Browser) renderStatus(errMsg string) {
	switch {
	case errMsg != "":
		b.status.SetText("[red]Error: " + tview.Escape(errMsg) + "[white]  " + keyHints)
	case b.loading > 0:
		b.status.SetText("[yellow]Loading expectations…[white]  " + keyHints)
	default:
		b.status.SetText(keyHints)
	}
}

func (b *Browser) renderTree() {
	var currentPath string
	if node := b.tree.GetCurrentNode(); node != nil {
		currentPath, _ = node.GetReference().(string)
	}

	root := b.tree.GetRoot()
	PopulateTree(root, b.session.Tree())

	current := root
	root.Walk(func(node, parent *tview.TreeNode) bool {
		if path, ok := node.GetReference().(string); ok && path == currentPath {
			current = node
			return false
		}
		return true
	})
	if current == root && len(root.GetChildren()) > 0 {
		current = root.GetChildren()[0]
	}
	b.tree.SetCurrentNode(current)
}

func (b *Browser) renderRecords() {
	b.current = b.session.View()
	b.list.Clear()
	b.list.SetTitle(fmt.Sprintf(" Tests (%d of %d) ", len(b.current), len(b.session.Records())))

	if len(b.current) == 0 {
		b.list.AddItem("[gray]No results found", "", 0, nil)
		b.details.SetText("")
		return
	}

	for _, record := range b.current {
		b.list.AddItem(tview.Escape(record.Path), ModeBadges(record), 0, nil)
	}
	b.list.SetCurrentItem(0)
	b.renderDetails(0)
}

func (b *Browser) renderDetails(index int) {
	if index < 0 || index >= len(b.current) {
		b.details.SetText("")
		return
	}
	b.details.SetText(RecordDetails(b.current[index], b.config.TestURL(b.current[index].Path)))
	b.details.ScrollToBeginning()
}

// PopulateTree replaces root's children with tview nodes for the category tree.
// Each node references its category path.
func PopulateTree(root *tview.TreeNode, nodes []engine.CategoryNode) {
	root.ClearChildren()
	for _, node := range nodes {
		child := tview.NewTreeNode(CategoryLabel(node)).
			SetReference(node.Path).
			SetSelectable(true).
			SetExpanded(node.Expanded)
		if depth := engine.Depth(node.Path); depth == 1 {
			child.SetColor(tcell.ColorAqua)
		} else {
			child.SetColor(tview.Styles.PrimaryTextColor)
		}
		PopulateTree(child, node.Children)
		root.AddChild(child)
	}
}

// CategoryLabel renders a tree entry: checkbox, name, count and a collapse marker
func CategoryLabel(node engine.CategoryNode) string {
	box := "[ ]"
	if node.Selected {
		box = "[x]"
	}
	marker := ""
	if len(node.Children) > 0 {
		marker = "▸ "
		if node.Expanded {
			marker = "▾ "
		}
	}
	return fmt.Sprintf("%s %s%s (%d)", box, marker, node.Name, node.Count)
}

// StatsLine renders the statistics header
func StatsLine(stats domain.Stats) string {
	return fmt.Sprintf("[::b]Total tests:[::-] [white]%d[-]   [::b]Default mode:[::-] [yellow]%d[-]   [::b]Strict mode:[::-] [red]%d[-]",
		stats.Total, stats.DefaultModeCount, stats.StrictModeCount)
}

// ModeBadges renders a record's modes as colored badges
func ModeBadges(record domain.TestRecord) string {
	badges := make([]string, 0, len(record.Modes))
	for _, mode := range record.ModeNames() {
		tag := "yellow"
		if mode == domain.ModeDefault {
			tag = "green"
		}
		badges = append(badges, fmt.Sprintf("[%s]%s[-]", tag, tview.Escape("["+mode+"]")))
	}
	return "  " + strings.Join(badges, " ")
}

// RecordDetails renders the details pane for a record
func RecordDetails(record domain.TestRecord, url string) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[cyan]%s[-]\n", tview.Escape(record.Path))
	fmt.Fprintf(&builder, "[gray]%s[-]\n\n", tview.Escape(url))

	for _, mode := range record.ModeNames() {
		fmt.Fprintf(&builder, "[yellow]%s:[-] %s\n", tview.Escape(mode), tview.Escape(record.Modes[mode]))
	}

	return builder.String()
}
