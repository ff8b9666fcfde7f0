package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelection_Toggle(t *testing.T) {
	sel := NewSelection()

	t.Run("double toggle restores selection", func(t *testing.T) {
		sel.ToggleSelected("built-ins")
		before := sel.Selected()
		if !sel.ToggleSelected("language") {
			t.Fatal("expected language to become selected")
		}
		if sel.ToggleSelected("language") {
			t.Fatal("expected language to become unselected")
		}
		if diff := cmp.Diff(before, sel.Selected()); diff != "" {
			t.Errorf("selection changed (-want +got):\n%s", diff)
		}
	})

	t.Run("expansion is independent of selection", func(t *testing.T) {
		sel.ToggleExpanded("intl402")
		if sel.IsSelected("intl402") {
			t.Error("expanding must not select")
		}
		if !sel.IsExpanded("intl402") {
			t.Error("expected intl402 to be expanded")
		}
		sel.ToggleExpanded("intl402")
		if sel.IsExpanded("intl402") {
			t.Error("expected double toggle to collapse")
		}
	})

	t.Run("clear selected keeps expansion", func(t *testing.T) {
		sel.ToggleExpanded("built-ins")
		sel.ClearSelected()
		if len(sel.Selected()) != 0 {
			t.Errorf("expected no selection, got %v", sel.Selected())
		}
		if !sel.IsExpanded("built-ins") {
			t.Error("expected expansion to survive clearing selection")
		}
	})
}
