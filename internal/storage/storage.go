package storage

import (
	"expview/internal/config"
	"expview/internal/domain"
)

// Storage writes filtered views out of the session (e.g. for sharing a triage list).
type Storage interface {
	Save(output *domain.ExportOutput) (string, error)
	Load() (*domain.ExportOutput, error)
}

// JSONStorage stores exports in a JSON file at the configured export path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's export path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
