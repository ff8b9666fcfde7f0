package loader

import (
	"context"
	"time"

	"expview/internal/domain"
	"expview/internal/engine"
	"expview/internal/parser"
	"expview/internal/source"

	"go.uber.org/zap"
)

// Loader runs the load sequence: fetch the document, decode it, install it
type Loader struct {
	source source.Source
	parser parser.Parser
	logger *zap.Logger
}

// NewLoader creates a Loader
func NewLoader(src source.Source, p parser.Parser, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{source: src, parser: p, logger: logger}
}

// SourceName describes where documents come from
func (l *Loader) SourceName() string {
	return l.source.Name()
}

// Fetch retrieves and decodes the document without touching any session.
// Errors are *source.FetchError or *parser.DecodeError.
func (l *Loader) Fetch(ctx context.Context) ([]domain.TestRecord, error) {
	start := time.Now()

	raw, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	records, err := l.parser.Parse(raw)
	if err != nil {
		l.logger.Warn("decode failed", zap.String("source", l.source.Name()), zap.Error(err))
		return nil, err
	}

	l.logger.Info("loaded expectations",
		zap.String("source", l.source.Name()),
		zap.Int("records", len(records)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return records, nil
}

// Load fetches and installs into s. On error s keeps its previous state.
func (l *Loader) Load(ctx context.Context, s *engine.Session) error {
	records, err := l.Fetch(ctx)
	if err != nil {
		return err
	}
	s.Load(records)
	return nil
}
