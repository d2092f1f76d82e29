// Package logging builds the structured logger used by every command.
//
// Logs are produced by zap and handed around as a logr.Logger. Debug output
// is logr verbosity 1.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/imamik/kafka-topology/internal/config"
)

// Options selects level, encoding and destination.
type Options struct {
	Level  string
	Format string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// New returns a logger and a function flushing buffered entries.
func New(opts Options) (logr.Logger, func(), error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return logr.Discard(), func() {}, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if ResolveFormat(opts.Format, out) == config.LogFormatConsole {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(out), zap.NewAtomicLevelAt(level))
	z := zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))

	return zapr.NewLogger(z), func() { _ = z.Sync() }, nil
}

// ParseLevel maps a level name to a zap level. An empty name is info.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	if !config.ValidLogLevels[name] {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
	var level zapcore.Level
	if err := level.Set(name); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q: %w", name, err)
	}
	return level, nil
}

// ResolveFormat turns "auto" into console for terminals and json otherwise.
func ResolveFormat(format string, out io.Writer) string {
	if format != "" && format != config.LogFormatAuto {
		return format
	}
	if IsTerminal(out) {
		return config.LogFormatConsole
	}
	return config.LogFormatJSON
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
