// Package logging registers a stderr sink for github.com/strongo/log.
package logging

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"

	"github.com/strongo/log"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

var levelNames = map[Level]string{
	LevelDebug:    "DEBUG",
	LevelInfo:     "INFO",
	LevelWarning:  "WARNING",
	LevelError:    "ERROR",
	LevelCritical: "CRITICAL",
}

// ParseLevel maps a config value to a Level; unknown values fall back to
// info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	case "critical":
		return LevelCritical
	}
	return LevelInfo
}

func (l Level) String() string {
	return levelNames[l]
}

// Writer is a strongo/log Logger writing plain lines to an io.Writer.
type Writer struct {
	min Level
	out *stdlog.Logger
}

func NewWriter(w io.Writer, min Level) *Writer {
	return &Writer{
		min: min,
		out: stdlog.New(w, "", stdlog.LstdFlags|stdlog.Lmicroseconds),
	}
}

func (w *Writer) Name() string { return "stderr" }

func (w *Writer) logf(level Level, format string, args ...interface{}) {
	if level < w.min {
		return
	}
	w.out.Printf("%-8s %s", level, fmt.Sprintf(format, args...))
}

func (w *Writer) Debugf(_ context.Context, format string, args ...interface{}) {
	w.logf(LevelDebug, format, args...)
}

func (w *Writer) Infof(_ context.Context, format string, args ...interface{}) {
	w.logf(LevelInfo, format, args...)
}

func (w *Writer) Warningf(_ context.Context, format string, args ...interface{}) {
	w.logf(LevelWarning, format, args...)
}

func (w *Writer) Errorf(_ context.Context, format string, args ...interface{}) {
	w.logf(LevelError, format, args...)
}

func (w *Writer) Criticalf(_ context.Context, format string, args ...interface{}) {
	w.logf(LevelCritical, format, args...)
}

var setupOnce sync.Once

// Setup registers a stderr Writer with the given minimum level. Only the
// first call has an effect.
func Setup(level string) {
	setupOnce.Do(func() {
		log.AddLogger(NewWriter(os.Stderr, ParseLevel(level)))
	})
}
