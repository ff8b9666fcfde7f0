package parser

import "expview/internal/domain"

// Parser decodes a raw expectations document into records
type Parser interface {
	Parse(raw []byte) ([]domain.TestRecord, error)
}
