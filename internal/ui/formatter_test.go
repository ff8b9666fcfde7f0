package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"expview/internal/config"
	"expview/internal/domain"
	"expview/internal/engine"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func sampleSession() *engine.Session {
	s := engine.NewSession()
	s.Load([]domain.TestRecord{
		{Path: "test/language/types/boolean/S8.5_A1.js", Modes: map[string]string{domain.ModeDefault: "e1"}},
		{Path: "test/built-ins/Array/foo.js", Modes: map[string]string{domain.ModeStrict: "e2", domain.ModeDefault: "e3"}},
	})
	return s
}

func TestFormatter_PrintStats(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(config.New(), &buf)
	f.PrintStats(domain.Stats{Total: 2, DefaultModeCount: 1, StrictModeCount: 1}, "expectations.yaml")

	out := buf.String()
	for _, want := range []string{"Total tests", "Default mode", "Strict mode", "Source: expectations.yaml"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestFormatter_PrintRecords(t *testing.T) {
	t.Run("records with links and modes", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewFormatter(config.New(), &buf)
		f.PrintRecords(sampleSession().View())

		out := buf.String()
		for _, want := range []string{
			"Found 2 test(s)",
			"test/built-ins/Array/foo.js [default] [strict mode]",
			config.DefaultBaseURL + "test/built-ins/Array/foo.js",
			"  strict mode: e2",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q:\n%s", want, out)
			}
		}
		if strings.Index(out, "default: e3") > strings.Index(out, "strict mode: e2") {
			t.Error("expected default mode to be listed first")
		}
	})

	t.Run("no results", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(config.New(), &buf).PrintRecords(nil)
		if !strings.Contains(buf.String(), "No results found") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})
}

func TestFormatter_PrintCategoryTree(t *testing.T) {
	s := sampleSession()
	s.ToggleCategory("built-ins/Array")

	t.Run("expand all", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(config.New(), &buf).PrintCategoryTree(s.Tree(), true)

		expected := strings.Join([]string{
			"├── [ ] built-ins (1)",
			"│   └── [x] Array (1)",
			"└── [ ] language (1)",
			"    └── [ ] types (1)",
			"        └── [ ] boolean (1)",
			"",
		}, "\n")
		if buf.String() != expected {
			t.Errorf("expected:\n%s\ngot:\n%s", expected, buf.String())
		}
	})

	t.Run("collapsed", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(config.New(), &buf).PrintCategoryTree(s.Tree(), false)
		if strings.Contains(buf.String(), "Array") {
			t.Errorf("collapsed tree should hide children:\n%s", buf.String())
		}
	})
}

func TestFormatter_PrintError(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(config.New(), &buf).PrintError(errors.New("fetch failed"))
	if got := buf.String(); !strings.Contains(got, "Error: fetch failed") {
		t.Errorf("unexpected error output %q", got)
	}
}
