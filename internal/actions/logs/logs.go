// Package logs implements the logs command, which shows, follows or clears
// the dispatcher's log file.
package logs

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/footprint-tools/shellshell/internal/dispatchers"
)

const DefaultLimit = 50

// Command returns the action of the logs command for the log file at logPath.
func Command(logPath string) dispatchers.Action {
	return func(res *dispatchers.Resolution) error {
		d := res.Dispatcher()
		deps := DefaultDeps(logPath, d.Output(), d.Styler())

		switch {
		case res.Has("clear"):
			return clearLog(deps)
		case res.Has("follow"):
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return follow(ctx, deps, 500*time.Millisecond)
		}

		limit, err := res.GetParameterAsInt("limit")
		if err != nil {
			return err
		}
		return view(limit, res.Has("json"), deps)
	}
}

func view(limit int, jsonOutput bool, deps Deps) error {
	info, err := deps.Stat(deps.LogPath)
	if os.IsNotExist(err) {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(deps.Styler.Muted("No log file found at " + deps.LogPath))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	if info.Size() == 0 {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(deps.Styler.Muted("Log file is empty"))
		}
		return nil
	}

	content, err := deps.ReadFile(deps.LogPath)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	if jsonOutput {
		return viewJSON(lines, deps)
	}
	for _, line := range lines {
		_, _ = deps.Println(colorize(line, deps))
	}
	return nil
}

// entryRegex matches lines like: [2026-01-29 10:30:45] WARN: dispatch: message
var entryRegex = regexp.MustCompile(`^\[([^\]]+)\]\s+(DEBUG|INFO|WARN|ERROR):\s*(.*)$`)

type entry struct {
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level,omitempty"`
	Message   string `json:"message"`
}

func parseLine(line string) entry {
	m := entryRegex.FindStringSubmatch(line)
	if m == nil {
		return entry{Message: line}
	}
	return entry{Timestamp: m[1], Level: m[2], Message: m[3]}
}

func viewJSON(lines []string, deps Deps) error {
	entries := make([]entry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		entries = append(entries, parseLine(line))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = deps.Println(string(data))
	return nil
}

// follow prints lines appended to the log file until ctx is done. It wakes
// on file system write events and, as a fallback, every interval. A file
// that shrinks is read again from the start; one replaced by rotation is
// reopened.
func follow(ctx context.Context, deps Deps, interval time.Duration) error {
	t := &tail{deps: deps}
	if err := t.open(); err != nil {
		return err
	}
	defer t.close()
	if err := t.seekEnd(); err != nil {
		return err
	}

	var (
		events <-chan fsnotify.Event
		errs   <-chan error
	)
	if watcher, err := fsnotify.NewWatcher(); err == nil {
		defer func() { _ = watcher.Close() }()
		if err := watcher.Add(deps.LogPath); err == nil {
			events, errs = watcher.Events, watcher.Errors
			t.watcher = watcher
		}
	}

	_, _ = deps.Println(deps.Styler.Muted("Following " + deps.LogPath + " (Ctrl+C to stop)"))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := t.drain(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				events = nil
			}
		case _, ok := <-errs:
			if !ok {
				errs = nil
			}
		case <-ticker.C:
		}

		if err := t.sync(); err != nil {
			return err
		}
	}
}

// tail reads complete lines from the log file, tracking the offset it has
// consumed so truncation and rotation can be detected.
type tail struct {
	deps    Deps
	file    *os.File
	reader  *bufio.Reader
	offset  int64
	partial strings.Builder
	watcher *fsnotify.Watcher
}

func (t *tail) open() error {
	file, err := t.deps.OpenFile(t.deps.LogPath, os.O_RDONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	t.file = file
	t.reader = bufio.NewReader(file)
	t.offset = 0
	t.partial.Reset()
	return nil
}

func (t *tail) close() {
	if t.file != nil {
		_ = t.file.Close()
	}
}

func (t *tail) seekEnd() error {
	end, err := t.file.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}
	t.reader.Reset(t.file)
	t.offset = end
	return nil
}

// drain prints every complete line available.
func (t *tail) drain() error {
	for {
		line, err := t.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}
		t.offset += int64(len(line))
		t.partial.WriteString(line)
		if err != nil {
			return nil
		}
		_, _ = t.deps.Println(colorize(strings.TrimSuffix(t.partial.String(), "\n"), t.deps))
		t.partial.Reset()
	}
}

// sync rewinds after truncation and reopens after rotation.
func (t *tail) sync() error {
	current, err := t.deps.Stat(t.deps.LogPath)
	if err != nil {
		// Rotated away and not recreated yet.
		return nil
	}
	opened, err := t.file.Stat()
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	if !os.SameFile(current, opened) {
		t.close()
		if err := t.open(); err != nil {
			return err
		}
		if t.watcher != nil {
			_ = t.watcher.Add(t.deps.LogPath)
		}
		return nil
	}

	if current.Size() < t.offset {
		if _, err := t.file.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("seek log file: %w", err)
		}
		t.reader.Reset(t.file)
		t.offset = 0
		t.partial.Reset()
	}
	return nil
}

func clearLog(deps Deps) error {
	if err := deps.WriteFile(deps.LogPath, []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}
	_, _ = deps.Println(deps.Styler.Success("Log file cleared"))
	return nil
}

func colorize(line string, deps Deps) string {
	switch parseLine(line).Level {
	case "ERROR":
		return deps.Styler.Error(line)
	case "WARN":
		return deps.Styler.Warning(line)
	case "INFO":
		return deps.Styler.Info(line)
	case "DEBUG":
		return deps.Styler.Muted(line)
	}
	return line
}
