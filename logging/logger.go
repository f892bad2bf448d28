package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

const DefaultLevel = "warn"

// NewLogger creates a logger writing plain text to output, stderr when
// output is nil.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}
	if level == "" {
		level = DefaultLevel
	}

	opts := &hclog.LoggerOptions{
		Name:            name,
		Level:           hclog.LevelFromString(level),
		Output:          output,
		DisableTime:     true,
		IncludeLocation: false,
	}

	return hclog.New(opts)
}

// OrNull lets library code accept a nil logger.
func OrNull(logger hclog.Logger) hclog.Logger {
	if logger == nil {
		return hclog.NewNullLogger()
	}
	return logger
}
