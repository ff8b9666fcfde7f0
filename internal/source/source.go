package source

import (
	"context"
	"fmt"
	"net/http"

	"expview/internal/config"

	"go.uber.org/zap"
)

// Source retrieves the raw expectations document
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	// Name identifies the source in messages and exports
	Name() string
}

// FetchError reports an unreachable source or a non-success response.
// Status is the HTTP status code, or 0 when no response was received.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to fetch %s: %d %s", e.URL, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// New returns the Source selected by cfg: a local file when one is configured,
// the remote URL otherwise
func New(cfg *config.Config, logger *zap.Logger, progress ProgressFunc) Source {
	if file := cfg.GetSourceFile(); file != "" {
		return NewFileSource(file, logger)
	}
	return NewHTTPSource(cfg.GetSourceURL(), cfg.Token, cfg.Timeout, logger, progress)
}
