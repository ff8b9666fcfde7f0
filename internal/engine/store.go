package engine

import "expview/internal/domain"

// Store holds the records of the current load in document order
type Store struct {
	records []domain.TestRecord
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{}
}

// Load replaces the entire record set
func (s *Store) Load(records []domain.TestRecord) {
	s.records = append([]domain.TestRecord(nil), records...)
}

// All returns the records in insertion order
func (s *Store) All() []domain.TestRecord {
	return s.records
}
