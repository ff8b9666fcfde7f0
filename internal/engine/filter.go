package engine

import (
	"strings"

	"expview/internal/domain"
)

// Apply returns the records that pass both the category and the text constraint,
// in input order. An empty search term or an empty selection places no constraint.
func Apply(records []domain.TestRecord, search string, selected map[string]struct{}) []domain.TestRecord {
	filtered := make([]domain.TestRecord, 0, len(records))
	term := strings.ToLower(search)

	for _, record := range records {
		if !MatchesCategories(record.Path, selected) {
			continue
		}
		if !matchesTerm(record, term) {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}

// MatchesCategories reports whether a path falls under any of the selected categories
func MatchesCategories(path string, selected map[string]struct{}) bool {
	if len(selected) == 0 {
		return true
	}

	normalized := strings.TrimPrefix(path, rootSegment+"/")
	for category := range selected {
		if normalized == category || strings.HasPrefix(normalized, category+"/") {
			return true
		}
	}
	return false
}

// MatchesSearch reports whether the path or any mode message contains the search term,
// ignoring case
func MatchesSearch(record domain.TestRecord, search string) bool {
	return matchesTerm(record, strings.ToLower(search))
}

// matchesTerm expects term to be lower-cased already
func matchesTerm(record domain.TestRecord, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(record.Path), term) {
		return true
	}
	for _, message := range record.Modes {
		if strings.Contains(strings.ToLower(message), term) {
			return true
		}
	}
	return false
}
