// Package logging builds the zap logger shared by the CLI and the widget.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where logs go. An empty Path with Stderr false disables logging.
type Options struct {
	Path    string
	Stderr  bool
	Verbose bool
}

// New builds a JSON logger tagged with a fresh run id.
func New(opts Options) (*zap.Logger, error) {
	var outputs []string
	if opts.Stderr {
		outputs = append(outputs, "stderr")
	}
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		outputs = append(outputs, opts.Path)
	}
	if len(outputs) == 0 {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = outputs
	config.ErrorOutputPaths = outputs
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Sampling = nil
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("run_id", uuid.NewString())), nil
}
