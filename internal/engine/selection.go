package engine

import "sort"

// Selection tracks which categories filter the view and which are expanded in the tree.
// The two sets are independent; expansion never affects filtering.
type Selection struct {
	selected map[string]struct{}
	expanded map[string]struct{}
}

// NewSelection creates an empty Selection
func NewSelection() *Selection {
	return &Selection{
		selected: make(map[string]struct{}),
		expanded: make(map[string]struct{}),
	}
}

// ToggleSelected flips filter membership of a category and returns the new state
func (s *Selection) ToggleSelected(category string) bool {
	return toggle(s.selected, category)
}

// ToggleExpanded flips the expansion of a category and returns the new state
func (s *Selection) ToggleExpanded(category string) bool {
	return toggle(s.expanded, category)
}

// IsSelected reports whether a category is an active filter
func (s *Selection) IsSelected(category string) bool {
	_, ok := s.selected[category]
	return ok
}

// IsExpanded reports whether a category's children are shown
func (s *Selection) IsExpanded(category string) bool {
	_, ok := s.expanded[category]
	return ok
}

// Selected returns the selected categories in lexical order
func (s *Selection) Selected() []string {
	return sortedKeys(s.selected)
}

// ClearSelected drops every category filter
func (s *Selection) ClearSelected() {
	clear(s.selected)
}

// prune removes categories that are no longer part of cats
func (s *Selection) prune(cats Categories) {
	for category := range s.selected {
		if !cats.Has(category) {
			delete(s.selected, category)
		}
	}
	for category := range s.expanded {
		if !cats.Has(category) {
			delete(s.expanded, category)
		}
	}
}

func toggle(set map[string]struct{}, key string) bool {
	if _, ok := set[key]; ok {
		delete(set, key)
		return false
	}
	set[key] = struct{}{}
	return true
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
