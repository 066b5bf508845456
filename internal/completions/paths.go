package completions

import (
	"fmt"
	"os"
	"path/filepath"
)

// BinaryPath returns the running executable with symlinks resolved, or
// fallback when it cannot be determined.
func BinaryPath(fallback string) string {
	exe, err := os.Executable()
	if err != nil {
		return fallback
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved
	}
	return exe
}

// SourceInstructions returns the line that loads completions from an rc file.
func SourceInstructions(shell Shell, bin string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions %s)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completions fish | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoInstallPath returns the path where completions can be auto-loaded from.
// Returns empty string if auto-install is not supported for this shell.
func AutoInstallPath(shell Shell, program string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	switch shell {
	case ShellFish:
		// Fish always auto-loads from this directory
		return filepath.Join(home, ".config", "fish", "completions", program+".fish")
	case ShellBash:
		if IsBashCompletionInstalled() {
			return filepath.Join(home, ".local", "share", "bash-completion", "completions", program)
		}
		return ""
	default:
		return ""
	}
}

// IsBashCompletionInstalled reports whether the bash-completion package is
// present, which is what loads the per-user completions directory.
func IsBashCompletionInstalled() bool {
	for _, p := range []string{
		"/usr/share/bash-completion/bash_completion",
		"/etc/bash_completion",
		"/usr/local/etc/profile.d/bash_completion.sh",
		"/opt/homebrew/etc/profile.d/bash_completion.sh",
	} {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}

// Install writes the script to AutoInstallPath, creating parent directories.
// It returns the path written.
func Install(shell Shell, s Script) (string, error) {
	target := AutoInstallPath(shell, s.Program)
	if target == "" {
		return "", fmt.Errorf("automatic install is not supported for %s; add this line to %s:\n  %s",
			shell, RcFile(shell), SourceInstructions(shell, BinaryPath(s.Program)))
	}

	script, err := Generate(shell, s)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(target, []byte(script), 0644); err != nil {
		return "", err
	}
	return target, nil
}
