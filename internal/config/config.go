package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Source settings
	SourceURL  string
	SourceFile string
	Token      string
	Timeout    time.Duration

	// Presentation settings
	BaseURL string

	// Output settings
	ExportPath string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	SourceURL  string
	SourceFile string
	Search     string
	Categories []string
	Output     string
	Verbose    bool
	LogFile    string
	NoProgress bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		SourceURL:  DefaultSourceURL,
		BaseURL:    DefaultBaseURL,
		Timeout:    DefaultTimeout,
		ExportPath: DefaultExportPath,
	}
}

// LoadEnv reads envFile (if present) into the process environment and applies
// EXPVIEW_* and GITHUB_TOKEN overrides. Variables already set win over the file.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	if v, ok := os.LookupEnv(EnvSourceURL); ok && v != "" {
		c.SourceURL = v
	}
	if v, ok := os.LookupEnv(EnvSourceFile); ok && v != "" {
		c.SourceFile = v
	}
	if v, ok := os.LookupEnv(EnvBaseURL); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvToken); ok {
		c.Token = v
	}
	if v, ok := os.LookupEnv(EnvTimeout); ok && v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		c.Timeout = timeout
	}

	return nil
}

// GetSourceURL returns the document URL, using the flag if provided
func (c *Config) GetSourceURL() string {
	if c.Flags.SourceURL != "" {
		return c.Flags.SourceURL
	}
	return c.SourceURL
}

// GetSourceFile returns the local document path, using the flag if provided.
// A non-empty result takes precedence over the URL.
func (c *Config) GetSourceFile() string {
	if c.Flags.SourceFile != "" {
		return c.Flags.SourceFile
	}
	return c.SourceFile
}

// GetSourceName describes where documents are loaded from
func (c *Config) GetSourceName() string {
	if file := c.GetSourceFile(); file != "" {
		return file
	}
	return c.GetSourceURL()
}

// GetExportPath returns the absolute export file path, using the flag if provided
func (c *Config) GetExportPath() string {
	p := c.ExportPath
	if c.Flags.Output != "" {
		p = c.Flags.Output
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// TestURL returns the browser link for a test path
func (c *Config) TestURL(path string) string {
	return c.BaseURL + path
}
