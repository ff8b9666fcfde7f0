package source

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// rawAccept asks the GitHub contents API for the file body instead of JSON metadata
const rawAccept = "application/vnd.github.v3.raw"

// ProgressFunc returns a writer that observes downloaded bytes. total is -1 when unknown.
type ProgressFunc func(total int64) io.Writer

// HTTPSource fetches the document over HTTP
type HTTPSource struct {
	url      string
	token    string
	client   *http.Client
	logger   *zap.Logger
	progress ProgressFunc
}

// NewHTTPSource creates an HTTPSource. token and progress are optional.
func NewHTTPSource(url, token string, timeout time.Duration, logger *zap.Logger, progress ProgressFunc) *HTTPSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPSource{
		url:      url,
		token:    token,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
		progress: progress,
	}
}

// Name returns the document URL
func (s *HTTPSource) Name() string {
	return s.url
}

// Fetch downloads the document body
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &FetchError{URL: s.url, Err: err}
	}
	req.Header.Set("Accept", rawAccept)
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	start := time.Now()
	s.logger.Debug("fetching expectations", zap.String("url", s.url))

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("fetch failed", zap.String("url", s.url), zap.Error(err))
		return nil, &FetchError{URL: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn("fetch returned failure status",
			zap.String("url", s.url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &FetchError{URL: s.url, Status: resp.StatusCode}
	}

	var buf bytes.Buffer
	var dst io.Writer = &buf
	var progress io.Writer
	if s.progress != nil {
		if progress = s.progress(resp.ContentLength); progress != nil {
			dst = io.MultiWriter(&buf, progress)
		}
	}
	_, err = io.Copy(dst, resp.Body)
	if f, ok := progress.(interface{ Finish() }); ok {
		f.Finish()
	}
	if err != nil {
		return nil, &FetchError{URL: s.url, Status: resp.StatusCode, Err: err}
	}

	s.logger.Info("fetched expectations",
		zap.String("url", s.url),
		zap.Int("bytes", buf.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return buf.Bytes(), nil
}
