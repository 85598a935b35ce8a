// Package logger is the structured logger shared by the theme loader and
// the CLI.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel applies when Options.Level is empty.
const DefaultLevel = zerolog.WarnLevel

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Fields are attached to every entry of a derived logger.
type Fields map[string]any

// Logger wraps zerolog. A nil *Logger discards everything, so components
// accept an optional logger without checking it.
type Logger struct {
	zl zerolog.Logger
}

// New creates a Logger writing to opts.Writer, or stderr so that stdout stays
// free for rendered output.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return &Logger{zl: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

func parseLevel(name string) (zerolog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return DefaultLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
}

// Component tags entries with the emitting component.
func (l *Logger) Component(name string) *Logger {
	return l.WithFields(Fields{"component": name})
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields Fields) *Logger {
	if l == nil {
		return nil
	}

	ctx := l.zl.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{zl: ctx.Logger()}
}

func (l *Logger) Debug(msg string) { l.write(zerolog.DebugLevel, nil, msg) }

func (l *Logger) Info(msg string) { l.write(zerolog.InfoLevel, nil, msg) }

func (l *Logger) Warn(msg string) { l.write(zerolog.WarnLevel, nil, msg) }

// Error logs msg with err attached under the "error" key.
func (l *Logger) Error(err error, msg string) { l.write(zerolog.ErrorLevel, err, msg) }

func (l *Logger) write(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.zl.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
