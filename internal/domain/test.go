package domain

import "sort"

const (
	// ModeDefault is the mode name for a failure under the default (sloppy) run
	ModeDefault = "default"
	// ModeStrict is the mode name for a failure under the strict mode run
	ModeStrict = "strict mode"
)

// TestRecord is a single expectation entry: a test file path and the modes it fails in
type TestRecord struct {
	Path  string            `json:"path"`
	Modes map[string]string `json:"modes"` // mode name -> error message
}

// HasMode reports whether the record carries an entry for the given mode
func (r TestRecord) HasMode(mode string) bool {
	_, ok := r.Modes[mode]
	return ok
}

// ModeNames returns the record's modes with the default mode first, the rest sorted
func (r TestRecord) ModeNames() []string {
	names := make([]string, 0, len(r.Modes))
	for mode := range r.Modes {
		names = append(names, mode)
	}
	sort.Slice(names, func(i, j int) bool {
		if (names[i] == ModeDefault) != (names[j] == ModeDefault) {
			return names[i] == ModeDefault
		}
		return names[i] < names[j]
	})
	return names
}
