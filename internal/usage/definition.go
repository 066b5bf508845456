package usage

import "fmt"

// DuplicateDefinition is returned when a switch or parameter name is already
// registered in the given scope (a command name, or "global").
func DuplicateDefinition(scope, kind, name string) *Error {
	return &Error{
		Kind:    ErrDuplicateDefinition,
		Message: fmt.Sprintf("there is already a %s named '%s' in %s", kind, name, scope),
		Name:    name,
	}
}

// CommandAlreadyConfigured is returned when a command name (or alias) is
// already present on the dispatcher.
func CommandAlreadyConfigured(name string) *Error {
	return &Error{
		Kind:    ErrCommandAlreadyConfigured,
		Message: fmt.Sprintf("the command '%s' is already configured", name),
		Name:    name,
	}
}

// InvalidConfiguration reports a dispatcher setting that cannot be used.
func InvalidConfiguration(format string, args ...any) *Error {
	return &Error{
		Kind:    ErrInvalidConfiguration,
		Message: fmt.Sprintf(format, args...),
	}
}
