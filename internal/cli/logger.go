package cli

import (
	"fmt"

	"expview/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. Interactive sessions own the terminal, so
// they only log when a log file is given.
func NewLogger(flags config.Flags, interactive bool) (*zap.Logger, error) {
	if interactive && flags.LogFile == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if flags.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if flags.LogFile != "" {
		cfg.OutputPaths = []string{flags.LogFile}
		cfg.ErrorOutputPaths = []string{flags.LogFile}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
