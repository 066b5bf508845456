// Package domain holds the types shared by the dispatcher, the built-in
// commands and the infrastructure behind them.
package domain

import (
	"io"
	"time"
)

// ConfigProvider reads and writes the user's config file. Get falls back to
// the key's default; the bool is false only for unknown keys.
type ConfigProvider interface {
	Get(key string) (string, bool)
	GetAll() (map[string]string, error)
	Set(key, value string) error
	Unset(key string) error
}

// Logger receives printf-style messages at four levels.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// OutputWriter is where commands print. Pager sends long content through
// the configured pager when stdout is a terminal and prints it otherwise.
type OutputWriter interface {
	io.Writer
	Printf(format string, args ...any) (int, error)
	Println(args ...any) (int, error)
	Pager(content string)
}

// Styler colors text by role. With styling disabled every method returns
// its input unchanged.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}

// InvocationStatus is the outcome of an executed command.
type InvocationStatus string

const (
	InvocationSucceeded InvocationStatus = "ok"
	InvocationFailed    InvocationStatus = "failed"
)

// Invocation is one recorded command execution. Args holds the tokens as
// typed, command name included.
type Invocation struct {
	ID        string
	Command   string
	Args      []string
	Status    InvocationStatus
	Error     string
	Duration  time.Duration
	CreatedAt time.Time
}

// HistoryStore persists invocations.
type HistoryStore interface {
	Record(inv Invocation) error
	// Recent returns at most limit invocations, newest first.
	Recent(limit int) ([]Invocation, error)
	// Clear deletes every invocation and returns how many were removed.
	Clear() (int64, error)
	Close() error
}

// Application bundles what the command tree needs at run time. History is
// nil when recording is disabled.
type Application struct {
	Config  ConfigProvider
	Logger  Logger
	Output  OutputWriter
	Styler  Styler
	History HistoryStore
	// LogPath is where the logger writes, whether or not logging is enabled.
	LogPath string
}
