//go:build windows

package config

// processRunning cannot probe other processes without extra privileges, so
// only the age of the lock decides staleness.
func processRunning(int) bool { return true }
