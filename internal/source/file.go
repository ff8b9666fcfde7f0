package source

import (
	"context"
	"os"

	"go.uber.org/zap"
)

// FileSource reads the document from a local file
type FileSource struct {
	path   string
	logger *zap.Logger
}

// NewFileSource creates a FileSource
func NewFileSource(path string, logger *zap.Logger) *FileSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSource{path: path, logger: logger}
}

// Name returns the file path
func (s *FileSource) Name() string {
	return s.path
}

// Fetch reads the whole file
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{URL: s.path, Err: err}
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &FetchError{URL: s.path, Err: err}
	}
	s.logger.Debug("read expectations file", zap.String("path", s.path), zap.Int("bytes", len(data)))
	return data, nil
}
