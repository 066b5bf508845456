package completions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Shell identifies a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// SupportedShells lists the shells a script can be generated for.
var SupportedShells = []Shell{ShellBash, ShellZsh, ShellFish}

// ParseShell validates a shell name.
func ParseShell(name string) (Shell, error) {
	for _, s := range SupportedShells {
		if strings.EqualFold(name, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unsupported shell: %s (expected bash, zsh or fish)", name)
}

// DetectShell guesses the user's shell from $SHELL.
func DetectShell() (Shell, bool) {
	return detectShell(os.Getenv("SHELL"))
}

func detectShell(shellPath string) (Shell, bool) {
	if shellPath == "" {
		return "", false
	}
	s, err := ParseShell(filepath.Base(shellPath))
	if err != nil {
		return "", false
	}
	return s, true
}
