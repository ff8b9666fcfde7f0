package engine

import (
	"testing"

	"expview/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func TestApply(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name     string
		search   string
		selected map[string]struct{}
		expected []string
	}{
		{
			name:     "no filters returns all",
			expected: []string{"test/language/types/boolean/S8.5_A1.js", "test/built-ins/Array/foo.js"},
		},
		{
			name:     "single category",
			selected: set("language"),
			expected: []string{"test/language/types/boolean/S8.5_A1.js"},
		},
		{
			name:     "two categories are OR-ed",
			selected: set("language", "built-ins"),
			expected: []string{"test/language/types/boolean/S8.5_A1.js", "test/built-ins/Array/foo.js"},
		},
		{
			name:     "search matches a message",
			search:   "e2",
			expected: []string{"test/built-ins/Array/foo.js"},
		},
		{
			name:     "search is case insensitive on path",
			search:   "ARRAY",
			expected: []string{"test/built-ins/Array/foo.js"},
		},
		{
			name:     "search and category intersect",
			search:   "e2",
			selected: set("language"),
			expected: []string{},
		},
		{
			name:     "category prefix must end at a segment",
			selected: set("built-ins/Arr"),
			expected: []string{},
		},
		{
			name:     "deep category",
			selected: set("language/types/boolean"),
			expected: []string{"test/language/types/boolean/S8.5_A1.js"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paths(Apply(records, tt.search, tt.selected))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatchesCategories(t *testing.T) {
	t.Run("exact path equal to category", func(t *testing.T) {
		if !MatchesCategories("test/built-ins/Array", set("built-ins/Array")) {
			t.Error("expected normalized path equal to category to match")
		}
	})

	t.Run("path without root segment", func(t *testing.T) {
		if !MatchesCategories("harness/a.js", set("harness")) {
			t.Error("expected match without root segment")
		}
	})

	t.Run("empty selection passes everything", func(t *testing.T) {
		if !MatchesCategories("anything", nil) {
			t.Error("expected empty selection to pass")
		}
	})
}

func TestApply_PreservesOrder(t *testing.T) {
	records := widerRecords()
	got := Apply(records, "error", nil)

	next := 0
	for _, r := range got {
		for next < len(records) && records[next].Path != r.Path {
			next++
		}
		if next == len(records) {
			t.Fatalf("output is not an ordered subsequence of input: %v", paths(got))
		}
		next++
	}
}

func TestApply_IsIntersection(t *testing.T) {
	records := widerRecords()
	searches := []string{"", "error", "array", "syntax", "nothing-matches"}
	selections := []map[string]struct{}{
		nil,
		set("built-ins"),
		set("language/expressions", "intl402"),
		set("built-ins/Array/from"),
	}

	for _, search := range searches {
		for _, selected := range selections {
			combined := set(paths(Apply(records, search, selected))...)
			textOnly := set(paths(Apply(records, search, nil))...)
			catOnly := set(paths(Apply(records, "", selected))...)

			want := make(map[string]struct{})
			for p := range textOnly {
				if _, ok := catOnly[p]; ok {
					want[p] = struct{}{}
				}
			}
			if diff := cmp.Diff(want, combined); diff != "" {
				t.Errorf("search %q selection %v (-want +got):\n%s", search, selected, diff)
			}
		}
	}
}

func TestMatchesSearch(t *testing.T) {
	record := domain.TestRecord{
		Path:  "test/built-ins/RegExp/d.js",
		Modes: map[string]string{domain.ModeDefault: "Test262Error: Expected SameValue"},
	}
	for _, term := range []string{"", "regexp", "samevalue", "TEST262"} {
		if !MatchesSearch(record, term) {
			t.Errorf("expected %q to match", term)
		}
	}
	if MatchesSearch(record, "strict") {
		t.Error("mode names are not searched")
	}
}
