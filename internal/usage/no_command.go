package usage

import (
	"fmt"
	"strings"
)

// NoCommandSelected is returned when no token names a registered command and
// no default command is available. An empty command means no token was given.
func NoCommandSelected(command string, suggestions ...string) *Error {
	msg := "no command selected"
	if command != "" {
		msg = fmt.Sprintf("'%s' is not a known command", command)
	}
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{
		Kind:    ErrNoCommandSelected,
		Message: msg,
		Name:    command,
	}
}
