package store

import "github.com/footprint-tools/shellshell/internal/paths"

// DBPath returns the location of the invocation history database.
func DBPath() string {
	return paths.HistoryDBPath()
}
