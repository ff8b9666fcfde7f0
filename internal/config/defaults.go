package config

import "time"

const (
	// DefaultSourceURL is the GitHub contents API URL of the WebKit test262 expectations file
	DefaultSourceURL = "https://api.github.com/repos/WebKit/WebKit/contents/JSTests/test262/expectations.yaml"
	// DefaultBaseURL is prefixed to a test path to link it in the test262 repository
	DefaultBaseURL = "https://github.com/tc39/test262/blob/main/"
	// DefaultTimeout bounds a single fetch of the expectations document
	DefaultTimeout = 30 * time.Second
	// DefaultExportPath is the default output file of the export command
	DefaultExportPath = "expectations-export.json"
	// DefaultEnvFile is loaded from the working directory when present
	DefaultEnvFile = ".env"
)

// Environment variables read on top of the defaults
const (
	EnvSourceURL  = "EXPVIEW_SOURCE_URL"
	EnvSourceFile = "EXPVIEW_SOURCE_FILE"
	EnvBaseURL    = "EXPVIEW_BASE_URL"
	EnvTimeout    = "EXPVIEW_TIMEOUT"
	EnvToken      = "GITHUB_TOKEN"
)
