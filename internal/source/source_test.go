package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"expview/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = "test/built-ins/Array/foo.js:\n  strict mode: 'e2'\n"

func TestHTTPSource_Fetch(t *testing.T) {
	var gotAccept, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, sampleDoc)
	}))
	defer server.Close()

	var progress bytes.Buffer
	var total int64
	src := NewHTTPSource(server.URL, "tok", time.Second, nil, func(n int64) io.Writer {
		total = n
		return &progress
	})

	data, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleDoc, string(data))
	assert.Equal(t, rawAccept, gotAccept)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, int64(len(sampleDoc)), total)
	assert.Equal(t, sampleDoc, progress.String())
	assert.Equal(t, server.URL, src.Name())
}

func TestHTTPSource_NoTokenNoAuthHeader(t *testing.T) {
	var hadAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
	}))
	defer server.Close()

	_, err := NewHTTPSource(server.URL, "", time.Second, nil, nil).Fetch(context.Background())
	require.NoError(t, err)
	assert.False(t, hadAuth)
}

func TestHTTPSource_FailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewHTTPSource(server.URL, "", time.Second, nil, nil).Fetch(context.Background())
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusForbidden, fetchErr.Status)
	assert.Contains(t, err.Error(), "403")
}

func TestHTTPSource_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewHTTPSource(url, "", time.Second, nil, nil).Fetch(context.Background())
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, 0, fetchErr.Status)
	assert.NotNil(t, fetchErr.Unwrap())
}

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expectations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0644))

	data, err := NewFileSource(path, nil).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleDoc, string(data))

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.yaml"), nil).Fetch(context.Background())
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestNew(t *testing.T) {
	cfg := config.New()
	_, isHTTP := New(cfg, nil, nil).(*HTTPSource)
	assert.True(t, isHTTP)

	cfg.Flags.SourceFile = "local.yaml"
	src := New(cfg, nil, nil)
	_, isFile := src.(*FileSource)
	assert.True(t, isFile)
	assert.Equal(t, "local.yaml", src.Name())
}
