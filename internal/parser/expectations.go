package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"expview/internal/domain"

	"gopkg.in/yaml.v3"
)

// DecodeError reports a malformed expectations document
type DecodeError struct {
	Line int // 0 when the position is unknown
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("decode expectations: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("decode expectations: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ExpectationsParser decodes the YAML expectations document:
//
//	test/built-ins/Array/foo.js:
//	  default: 'Test262Error: ...'
//	  strict mode: 'Test262Error: ...'
//
// Records come back in document order and duplicate paths are kept.
type ExpectationsParser struct{}

// NewExpectationsParser creates a new ExpectationsParser
func NewExpectationsParser() *ExpectationsParser {
	return &ExpectationsParser{}
}

// Parse decodes raw into records
func (p *ExpectationsParser) Parse(raw []byte) ([]domain.TestRecord, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(raw))

	var doc yaml.Node
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.TestRecord{}, nil
		}
		return nil, &DecodeError{Err: err}
	}

	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, &DecodeError{Err: err}
		}
		return nil, &DecodeError{Line: extra.Line, Err: errors.New("expected a single document")}
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return []domain.TestRecord{}, nil
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return []domain.TestRecord{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &DecodeError{Line: root.Line, Err: errors.New("document root is not a mapping")}
	}

	records := make([]domain.TestRecord, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], resolveAlias(root.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return nil, &DecodeError{Line: key.Line, Err: errors.New("test path is not a scalar")}
		}

		modes, err := parseModes(key.Value, value)
		if err != nil {
			return nil, err
		}
		records = append(records, domain.TestRecord{Path: key.Value, Modes: modes})
	}

	return records, nil
}

func parseModes(path string, node *yaml.Node) (map[string]string, error) {
	if node.Kind != yaml.MappingNode {
		return nil, &DecodeError{Line: node.Line, Err: fmt.Errorf("modes of %s are not a mapping", path)}
	}

	modes := make(map[string]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolveAlias(node.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return nil, &DecodeError{Line: key.Line, Err: fmt.Errorf("mode name of %s is not a scalar", path)}
		}
		if value.Kind != yaml.ScalarNode {
			return nil, &DecodeError{Line: value.Line, Err: fmt.Errorf("message for %s (%s) is not a scalar", path, key.Value)}
		}

		message := value.Value
		if value.Tag == "!!null" {
			message = ""
		}
		modes[key.Value] = message
	}

	if len(modes) == 0 {
		return nil, &DecodeError{Line: node.Line, Err: fmt.Errorf("%s has no modes", path)}
	}

	return modes, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
