package engine

import "expview/internal/domain"

// Session owns the state of one browsing session: the loaded records, the category
// tree derived from them, the selection and the current search term.
// Every mutation recomputes the filtered view except expansion toggles.
// A Session is not safe for concurrent use; callers serialize access.
type Session struct {
	store      *Store
	categories Categories
	stats      domain.Stats
	selection  *Selection
	search     string
	view       []domain.TestRecord
}

// NewSession creates an empty Session
func NewSession() *Session {
	s := &Session{
		store:      NewStore(),
		categories: ExtractCategories(nil),
		selection:  NewSelection(),
	}
	s.refresh()
	return s
}

// Load replaces the records and everything derived from them in one step.
// Selected or expanded categories that disappear are dropped.
func (s *Session) Load(records []domain.TestRecord) {
	cats := ExtractCategories(records)
	stats := ComputeStats(records)

	s.store.Load(records)
	s.categories = cats
	s.stats = stats
	s.selection.prune(cats)
	s.refresh()
}

// SetSearch changes the free-text term and recomputes the view
func (s *Session) SetSearch(term string) []domain.TestRecord {
	s.search = term
	s.refresh()
	return s.view
}

// ToggleCategory flips a category filter and recomputes the view
func (s *Session) ToggleCategory(category string) []domain.TestRecord {
	s.selection.ToggleSelected(category)
	s.refresh()
	return s.view
}

// ClearCategories drops every category filter and recomputes the view
func (s *Session) ClearCategories() []domain.TestRecord {
	s.selection.ClearSelected()
	s.refresh()
	return s.view
}

// ToggleExpanded flips whether a category's children are shown. The view is untouched.
func (s *Session) ToggleExpanded(category string) bool {
	return s.selection.ToggleExpanded(category)
}

// View returns the current filtered records
func (s *Session) View() []domain.TestRecord { return s.view }

// Records returns every loaded record
func (s *Session) Records() []domain.TestRecord { return s.store.All() }

// Categories returns the category tree of the current load
func (s *Session) Categories() Categories { return s.categories }

// Stats returns statistics over the whole load, independent of filters
func (s *Session) Stats() domain.Stats { return s.stats }

// Search returns the current search term
func (s *Session) Search() string { return s.search }

// Selection exposes the selection state for rendering
func (s *Session) Selection() *Selection { return s.selection }

// Tree returns the category tree annotated with selection and expansion state
func (s *Session) Tree() []CategoryNode {
	return BuildTree(s.categories, s.selection)
}

func (s *Session) refresh() {
	s.view = Apply(s.store.All(), s.search, s.selection.selected)
}
