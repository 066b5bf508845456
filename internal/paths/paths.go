// Package paths locates the files shellshell keeps on disk.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "shellshell"

// EnvDataDir, when set, holds both the log and the history database instead
// of the per-OS directories.
const EnvDataDir = "SHELLSHELL_DATA_DIR"

// AppDataDir is where the log lives: os.UserConfigDir()/shellshell. It is
// created on first use; "." is returned when no base directory is known.
func AppDataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return ensureDir(dir)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return ensureDir(filepath.Join(base, appDirName))
}

// AppLocalDataDir is where the history database lives:
//   - macOS: ~/Library/Application Support/shellshell
//   - Windows: %LOCALAPPDATA%\shellshell
//   - elsewhere: $XDG_DATA_HOME/shellshell or ~/.local/share/shellshell
func AppLocalDataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}

	base, fallback := "", []string{".local", "share"}
	switch runtime.GOOS {
	case "darwin":
		fallback = []string{"Library", "Application Support"}
	case "windows":
		base, fallback = os.Getenv("LOCALAPPDATA"), []string{"AppData", "Local"}
	default:
		base = os.Getenv("XDG_DATA_HOME")
	}

	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns ~/.shellshellrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".shellshellrc"), nil
}

func LogFilePath() string {
	return filepath.Join(AppDataDir(), "shellshell.log")
}

// HistoryDBPath returns the history database path, creating its directory.
func HistoryDBPath() string {
	return filepath.Join(ensureDir(AppLocalDataDir()), "history.db")
}

// ExecutableDir returns the directory of the running binary with symlinks
// resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func ensureDir(dir string) string {
	_ = os.MkdirAll(dir, 0o700)
	return dir
}
