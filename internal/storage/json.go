package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"expview/internal/config"
	"expview/internal/domain"
	"expview/internal/engine"
)

// BuildExport assembles the export document for the session's current view.
func BuildExport(cfg *config.Config, s *engine.Session, sourceName string) *domain.ExportOutput {
	view := s.View()
	details := make([]domain.ExportedRecord, 0, len(view))
	for _, record := range view {
		details = append(details, domain.ExportedRecord{
			Path:  record.Path,
			URL:   cfg.TestURL(record.Path),
			Modes: record.Modes,
		})
	}

	return &domain.ExportOutput{
		Meta: domain.ExportMeta{
			Source:     sourceName,
			Search:     s.Search(),
			Categories: s.Selection().Selected(),
			Matched:    len(view),
			Stats:      s.Stats(),
			Timestamp:  time.Now().Format(time.RFC3339),
		},
		Details: details,
	}
}

// Save writes the export to the configured JSON output file and returns its path.
func (s *JSONStorage) Save(output *domain.ExportOutput) (string, error) {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}

	path := s.cfg.GetExportPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// Load reads an export back from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.ExportOutput, error) {
	path := s.cfg.GetExportPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export file: %w", err)
	}
	var output domain.ExportOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return &output, nil
}
