// pkg/log/log.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a thin wrapper around slog.Logger. All of its methods may be
// called on a nil *Logger, in which case they do nothing; this lets
// packages take an optional logger without checking for nil everywhere.
type Logger struct {
	*slog.Logger
	LogFile string
	Start   time.Time
}

// New returns a Logger that writes JSON records to a rotating log file in
// dir (or the user's config directory if dir is empty). Records at Warn
// and above are also echoed to stderr in text form.
func New(level string, dir string) *Logger {
	if dir == "" {
		if cd, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(cd, "glfwbridge")
		} else {
			dir = "."
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "%s: unable to create log directory: %v\n", dir, err)
	}

	fn := filepath.Join(dir, "glfwbridge.slog")
	lj := &lumberjack.Logger{
		Filename:   fn,
		MaxSize:    32, // MB
		MaxBackups: 1,
	}

	lvl := ParseLevel(level)
	h := &teeHandler{
		handlers: []slog.Handler{
			slog.NewJSONHandler(lj, &slog.HandlerOptions{Level: lvl}),
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: max(lvl, slog.LevelWarn)}),
		},
	}

	l := &Logger{
		Logger:  slog.New(h),
		LogFile: fn,
		Start:   time.Now(),
	}
	l.Info("Hello logging", slog.Time("start", l.Start), slog.String("goos", runtime.GOOS),
		slog.String("goarch", runtime.GOARCH))
	return l
}

// NewWriter returns a Logger that writes text records at the given level
// to w; it is mostly useful in tests.
func NewWriter(level string, w io.Writer) *Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return &Logger{Logger: slog.New(h), Start: time.Now()}
}

// ParseLevel maps a level name to a slog.Level; unknown names give Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	if l != nil {
		l.Logger.Debug(msg, args...)
	}
}

func (l *Logger) Debugf(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelDebug) {
		l.Logger.Debug(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil {
		l.Logger.Info(msg, args...)
	}
}

func (l *Logger) Infof(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelInfo) {
		l.Logger.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Warn(msg string, args ...any) {
	if l != nil {
		l.Logger.Warn(msg, args...)
	}
}

func (l *Logger) Warnf(msg string, args ...any) {
	if l != nil {
		l.Logger.Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Error(msg string, args ...any) {
	if l != nil {
		l.Logger.Error(msg, args...)
	}
}

func (l *Logger) Errorf(msg string, args ...any) {
	if l != nil {
		l.Logger.Error(fmt.Sprintf(msg, args...))
	}
}

// With returns a Logger that adds the given attributes to each record.
func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{Logger: l.Logger.With(args...), LogFile: l.LogFile, Start: l.Start}
}

///////////////////////////////////////////////////////////////////////////
// teeHandler

// teeHandler fans records out to multiple handlers, each of which applies
// its own level filter.
type teeHandler struct {
	handlers []slog.Handler
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	for _, h := range t.handlers {
		if h.Enabled(ctx, r.Level) {
			if herr := h.Handle(ctx, r.Clone()); herr != nil && err == nil {
				err = herr
			}
		}
	}
	return err
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		hs[i] = h.WithAttrs(attrs)
	}
	return &teeHandler{handlers: hs}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		hs[i] = h.WithGroup(name)
	}
	return &teeHandler{handlers: hs}
}
