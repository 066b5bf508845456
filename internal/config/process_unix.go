//go:build !windows

package config

import (
	"errors"
	"os"
	"syscall"
)

// processRunning reports whether pid names a live process. A process owned
// by another user still counts as running.
func processRunning(pid int) bool {
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = p.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}
