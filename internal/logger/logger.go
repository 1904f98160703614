package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

type sessionKey struct{}

type implLogger struct {
	logger *log.Logger
	level  string
}

// New creates a new Logger instance writing text to stdout
func New(level string) Logger {
	return NewWithFormat(level, "text", os.Stdout)
}

// NewWithFormat creates a Logger with the given format ("text" or "json").
func NewWithFormat(level, format string, w io.Writer) Logger {
	level = strings.ToLower(level)
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	formatter := log.TextFormatter
	if strings.EqualFold(format, "json") {
		formatter = log.JSONFormatter
	}

	return &implLogger{
		logger: log.NewWithOptions(w, log.Options{
			Level:           lvl,
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
			Formatter:       formatter,
		}),
		level: level,
	}
}

// Discard returns a Logger that drops everything. Used by tests.
func Discard() Logger {
	return NewWithFormat("error", "text", io.Discard)
}

// WithSession attaches a session identifier that is logged with every entry.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// SessionFromContext returns the session identifier stored by WithSession.
func SessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

func (l *implLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) with(ctx context.Context) *log.Logger {
	if id := SessionFromContext(ctx); id != "" {
		return l.logger.With("session", id)
	}
	return l.logger
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.with(ctx).Debugf(msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.with(ctx).Infof(msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.with(ctx).Warnf(msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.with(ctx).Errorf(msg, args...)
	}
}
