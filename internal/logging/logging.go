// Package logging builds the process-wide logger: one per-day
// append-only log file capturing everything at DEBUG, echoed to the
// console at INFO with a shorter format. The logger is created once at
// startup and shared by reference.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Options configures the logger. Zero values use the defaults below.
type Options struct {
	Dir          string     // log directory, default "logs"
	FileLevel    slog.Level // default slog.LevelDebug
	ConsoleLevel slog.Level // default slog.LevelInfo
	Console      io.Writer  // default os.Stderr
}

// Logger is a slog.Logger bound to its backing log file, with
// accessors the GUI's log panel uses for operator debugging.
type Logger struct {
	*slog.Logger

	filePath string
	file     *os.File
}

var (
	setupOnce sync.Once
	shared    *Logger
	setupErr  error
)

// Setup creates the shared process logger on first call and returns the
// same instance afterwards, so reinitialization cannot register
// duplicate sinks.
func Setup(opts Options) (*Logger, error) {
	setupOnce.Do(func() {
		shared, setupErr = New(opts)
	})
	return shared, setupErr
}

// New creates an independent logger. Most callers want Setup; New
// exists so tests can build throwaway instances.
func New(opts Options) (*Logger, error) {
	if opts.Dir == "" {
		opts.Dir = "logs"
	}
	if opts.Console == nil {
		opts.Console = os.Stderr
	}
	if opts.FileLevel == 0 {
		opts.FileLevel = slog.LevelDebug
	}
	if opts.ConsoleLevel == 0 {
		opts.ConsoleLevel = slog.LevelInfo
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("uccharana_%s.log", time.Now().Format("20060102"))
	path := filepath.Join(opts.Dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := &splitHandler{
		mu:           &sync.Mutex{},
		file:         file,
		console:      opts.Console,
		fileLevel:    opts.FileLevel,
		consoleLevel: opts.ConsoleLevel,
	}

	return &Logger{
		Logger:   slog.New(handler),
		filePath: path,
		file:     file,
	}, nil
}

// FilePath returns the path of the backing log file.
func (l *Logger) FilePath() string {
	return l.filePath
}

// Size returns the current size of the log file in bytes.
func (l *Logger) Size() (int64, error) {
	info, err := os.Stat(l.filePath)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Tail returns the most recent n lines of the log file.
func (l *Logger) Tail(n int) ([]string, error) {
	content, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// Close closes the backing log file.
func (l *Logger) Close() error {
	return l.file.Close()
}

// splitHandler fans one record out to the file sink and the console
// sink, each with its own level and format. The file line format is
//
//	2006-01-02 15:04:05 | LEVEL    | func:line | message key=value
//
// while the console gets the terser "LEVEL: message".
type splitHandler struct {
	mu           *sync.Mutex
	file         io.Writer
	console      io.Writer
	fileLevel    slog.Level
	consoleLevel slog.Level
	attrs        []slog.Attr
}

func (h *splitHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.fileLevel || level >= h.consoleLevel
}

func (h *splitHandler) Handle(_ context.Context, r slog.Record) error {
	var attrs strings.Builder
	for _, a := range h.attrs {
		fmt.Fprintf(&attrs, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&attrs, " %s=%v", a.Key, a.Value)
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	if r.Level >= h.fileLevel {
		line := fmt.Sprintf("%s | %-8s | %s | %s%s\n",
			r.Time.Format("2006-01-02 15:04:05"),
			r.Level.String(),
			callerOf(r),
			r.Message,
			attrs.String(),
		)
		if _, err := io.WriteString(h.file, line); err != nil {
			return err
		}
	}

	if r.Level >= h.consoleLevel {
		line := fmt.Sprintf("%s: %s%s\n", r.Level.String(), r.Message, attrs.String())
		if _, err := io.WriteString(h.console, line); err != nil {
			return err
		}
	}
	return nil
}

func (h *splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *splitHandler) WithGroup(string) slog.Handler {
	// Groups are not used anywhere in this codebase.
	return h
}

// callerOf resolves the record's PC to "function:line".
func callerOf(r slog.Record) string {
	if r.PC == 0 {
		return "?:0"
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	fn := frame.Function
	if i := strings.LastIndex(fn, "."); i >= 0 {
		fn = fn[i+1:]
	}
	return fmt.Sprintf("%s:%d", fn, frame.Line)
}
