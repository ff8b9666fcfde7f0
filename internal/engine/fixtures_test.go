package engine

import "expview/internal/domain"

func sampleRecords() []domain.TestRecord {
	return []domain.TestRecord{
		{Path: "test/language/types/boolean/S8.5_A1.js", Modes: map[string]string{domain.ModeDefault: "e1"}},
		{Path: "test/built-ins/Array/foo.js", Modes: map[string]string{domain.ModeStrict: "e2"}},
	}
}

func widerRecords() []domain.TestRecord {
	return []domain.TestRecord{
		{Path: "test/built-ins/Array/from/iter-close.js", Modes: map[string]string{domain.ModeDefault: "Test262Error: expected close"}},
		{Path: "test/language/expressions/class/elements/a.js", Modes: map[string]string{domain.ModeDefault: "SyntaxError", domain.ModeStrict: "SyntaxError"}},
		{Path: "test/built-ins/Array/prototype/map/b.js", Modes: map[string]string{domain.ModeStrict: "TypeError: not a function"}},
		{Path: "test/intl402/DateTimeFormat/c.js", Modes: map[string]string{domain.ModeDefault: "RangeError"}},
		{Path: "test/built-ins/RegExp/d.js", Modes: map[string]string{domain.ModeDefault: "Test262Error"}},
		{Path: "test/language/expressions/e.js", Modes: map[string]string{domain.ModeStrict: "ReferenceError"}},
	}
}

func paths(records []domain.TestRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Path)
	}
	return out
}

func set(keys ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}
