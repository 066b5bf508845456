// Package log is the dispatcher's file logger. Lines look like
//
//	[2026-03-01 10:00:00] WARN: dispatch: build: switch 'fast' is not known to command 'build'
//
// and the logs command parses that shape back.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/footprint-tools/shellshell/internal/domain"
)

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLevel reads a log_level value, case insensitively. Anything it does
// not recognize is LevelWarn, the default of the log_level key.
func ParseLevel(s string) Level {
	for level, name := range levelNames {
		if strings.EqualFold(s, name) {
			return level
		}
	}
	return LevelWarn
}

// DefaultMaxSize is the size at which the log file is rotated.
const DefaultMaxSize = 1 << 20

const timestampLayout = "2006-01-02 15:04:05"

// Logger appends leveled lines to a file. It is safe for concurrent use.
//
// When a write would grow the file past the size limit, the file is renamed
// to <path>.1 (replacing an older backup) and a fresh one is started.
type Logger struct {
	mu       sync.Mutex
	path     string
	file     *os.File
	size     int64
	maxSize  int64
	minLevel Level
	enabled  bool
	now      func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithMaxSize sets the rotation threshold in bytes. Zero or less disables
// rotation.
func WithMaxSize(n int64) Option {
	return func(l *Logger) { l.maxSize = n }
}

// WithClock replaces the time source of the line timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// New opens logPath for appending. The file and its directory are created
// with owner-only permissions, and an existing file is tightened to 0600.
func New(logPath string, minLevel Level, opts ...Option) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	l := &Logger{
		path:     logPath,
		maxSize:  DefaultMaxSize,
		minLevel: minLevel,
		enabled:  true,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.open(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Logger) open() error {
	if info, err := os.Stat(l.path); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(l.path, 0600); err != nil {
			return fmt.Errorf("chmod existing log file: %w", err)
		}
	}

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("stat log file: %w", err)
	}

	l.file = file
	l.size = info.Size()
	return nil
}

// rotate moves the current file to the backup slot. Called with mu held.
func (l *Logger) rotate() error {
	if err := l.file.Close(); err != nil {
		return err
	}
	if err := os.Rename(l.path, l.path+".1"); err != nil {
		return err
	}
	return l.open()
}

// Path returns the file the logger writes to.
func (l *Logger) Path() string { return l.path }

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// SetEnabled turns logging on or off.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// SetLevel changes the minimum level written.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel || l.file == nil {
		return
	}

	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	line := fmt.Sprintf("[%s] %s: %s\n", l.now().Format(timestampLayout), level, message)

	if l.maxSize > 0 && l.size > 0 && l.size+int64(len(line)) > l.maxSize {
		if err := l.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "logger: rotate failed: %v\n", err)
			if l.file == nil {
				return
			}
		}
	}

	n, err := l.file.WriteString(line)
	l.size += int64(n)
	if err != nil && level >= LevelError {
		fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// The package-level logger serves code that runs before the application is
// wired, such as reading the config file. It discards until SetDefault.
var (
	defaultMu     sync.RWMutex
	defaultLogger domain.Logger = NopLogger{}
)

// SetDefault replaces the package-level logger. A nil logger restores the
// discarding one.
func SetDefault(l domain.Logger) {
	if l == nil {
		l = NopLogger{}
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Default returns the package-level logger.
func Default() domain.Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Warn logs to the package-level logger.
func Warn(format string, args ...any) { Default().Warn(format, args...) }

// Debug logs to the package-level logger.
func Debug(format string, args ...any) { Default().Debug(format, args...) }

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var (
	_ domain.Logger = (*Logger)(nil)
	_ domain.Logger = NopLogger{}
)
