// Package addpath implements the addpath command. It prints the shell
// statement that puts the program's directory on PATH; the environment of
// the calling shell is never changed.
package addpath

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/shellshell/internal/dispatchers"
)

// AddPath prints an export statement for eval, or with /check reports
// whether the directory is already on PATH.
func AddPath(res *dispatchers.Resolution) error {
	d := res.Dispatcher()
	return addPath(res.Has("check"), DefaultDeps(d.Output(), d.Styler()))
}

func addPath(check bool, deps Deps) error {
	dir, err := deps.ExecutableDir()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	sep := string(filepath.ListSeparator)
	if deps.GOOS == "windows" {
		sep = ";"
	}
	current := deps.Getenv("PATH")

	if check {
		if containsEntry(current, dir, sep, deps.GOOS == "windows") {
			_, _ = deps.Printf("%s %s is on PATH\n", deps.Styler.Success("ok"), dir)
		} else {
			_, _ = deps.Printf("%s %s is not on PATH\n", deps.Styler.Warning("missing"), dir)
		}
		return nil
	}

	updated := computePath(current, dir, sep, deps.GOOS == "windows")
	if deps.GOOS == "windows" {
		_, _ = deps.Printf("$env:Path = \"%s\"\n", updated)
		return nil
	}
	_, _ = deps.Printf("export PATH=\"%s\"\n", strings.ReplaceAll(updated, `"`, `\"`))
	return nil
}

// computePath appends dir to the PATH value current unless an equal entry is
// already present. Trailing separators on entries are ignored, and Windows
// entries compare case-insensitively.
func computePath(current, dir, sep string, foldCase bool) string {
	if containsEntry(current, dir, sep, foldCase) {
		return current
	}
	if current == "" {
		return dir
	}
	return strings.TrimSuffix(current, sep) + sep + dir
}

func containsEntry(current, dir, sep string, foldCase bool) bool {
	want := normalizeEntry(dir, foldCase)
	for _, entry := range strings.Split(current, sep) {
		if entry != "" && normalizeEntry(entry, foldCase) == want {
			return true
		}
	}
	return false
}

func normalizeEntry(entry string, foldCase bool) string {
	entry = strings.TrimRight(entry, `/\`)
	if foldCase {
		entry = strings.ToLower(entry)
	}
	return entry
}
