package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/log"
	"github.com/footprint-tools/shellshell/internal/paths"
)

// ErrLockTimeout is returned when another process keeps the config lock
// past the lock timeout.
var ErrLockTimeout = errors.New("config: lock timeout")

const (
	defaultLockTimeout = 5 * time.Second
	defaultStaleAfter  = 30 * time.Second
	lockPollInterval   = 50 * time.Millisecond
)

// File is a key=value config file. Writers serialize through a lock file
// next to it (<path>.lock) holding the owner's PID.
type File struct {
	path        string
	lockTimeout time.Duration
	staleAfter  time.Duration
}

// NewFile returns the config file at path.
func NewFile(path string) *File {
	return &File{
		path:        path,
		lockTimeout: defaultLockTimeout,
		staleAfter:  defaultStaleAfter,
	}
}

// DefaultFile returns ~/.shellshellrc.
func DefaultFile() (*File, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}
	return NewFile(path), nil
}

// Path returns the location of the file.
func (f *File) Path() string { return f.path }

func (f *File) lockPath() string { return f.path + ".lock" }

// ReadLines returns the raw lines of the file with CR stripped. A missing or
// empty file is created and seeded with the visible defaults.
func (f *File) ReadLines() ([]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if len(data) == 0 {
		lines := initializeDefaults()
		if err := f.WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
		return lines, nil
	}

	if info, err := os.Stat(f.path); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(f.path, 0600); err != nil {
			log.Warn("config: could not set permissions on %s: %v", f.path, err)
		}
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

// Load parses the file into a key/value map.
func (f *File) Load() (map[string]string, error) {
	lines, err := f.ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}

// WriteLines replaces the file content. The lines go to a temporary file
// in the same directory that is renamed over the original.
func (f *File) WriteLines(lines []string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp.*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0600); err != nil {
		return err
	}

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err = w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// WithLock runs fn while holding the lock file. A lock older than the stale
// limit, or one whose owner PID no longer runs, is taken over.
func (f *File) WithLock(fn func() error) error {
	lock, err := f.acquire()
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Close()
		_ = os.Remove(f.lockPath())
	}()
	return fn()
}

// Edit reads the lines, applies fn and writes the result, under the lock.
func (f *File) Edit(fn func([]string) []string) error {
	return f.WithLock(func() error {
		lines, err := f.ReadLines()
		if err != nil {
			return err
		}
		return f.WriteLines(fn(lines))
	})
}

func (f *File) acquire() (*os.File, error) {
	deadline := time.Now().Add(f.lockTimeout)
	for {
		lock, err := os.OpenFile(f.lockPath(), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = lock.WriteString(strconv.Itoa(os.Getpid()))
			return lock, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("config: create lock: %w", err)
		}

		if f.stale() {
			log.Warn("config: removing stale lock %s", f.lockPath())
			_ = os.Remove(f.lockPath())
			continue
		}

		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		time.Sleep(lockPollInterval)
	}
}

func (f *File) stale() bool {
	info, err := os.Stat(f.lockPath())
	if err != nil {
		return false
	}
	if time.Since(info.ModTime()) > f.staleAfter {
		return true
	}

	data, err := os.ReadFile(f.lockPath())
	if err != nil {
		return false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return false
	}
	return !processRunning(pid)
}

// initializeDefaults creates config lines with default values for visible keys.
func initializeDefaults() []string {
	lines := []string{
		"# shellshell configuration",
		"# Edit values below or use: shellshell config set <key> <value>",
	}

	for _, section := range domain.Sections {
		lines = append(lines, "", "# "+string(section))
		for _, key := range domain.ConfigKeysIn(section) {
			// Optional overrides stay commented out.
			if key.Optional && key.Default == "" {
				lines = append(lines, "# "+key.Name+"=")
				continue
			}
			lines = append(lines, key.Name+"="+quoteValue(key.Default))
		}
	}

	return lines
}
