package usage

import (
	"fmt"
	"strings"
)

// UnknownSwitch is returned when a switch is not registered on the command.
func UnknownSwitch(command, name string) *Error {
	return &Error{
		Kind:    ErrUnknownSwitch,
		Message: fmt.Sprintf("switch '%s' is not known to command '%s'", name, command),
		Name:    name,
	}
}

// UnknownParameter is returned when a parameter is neither global nor
// registered on the command.
func UnknownParameter(command, name string) *Error {
	return &Error{
		Kind:    ErrUnknownParameter,
		Message: fmt.Sprintf("parameter '%s' is not recognized by command '%s'", name, command),
		Name:    name,
	}
}

// MissingParameterValue is returned when a named parameter token has no value
// token after it. The token is reported as typed, marker included.
func MissingParameterValue(token string) *Error {
	return &Error{
		Kind:    ErrMissingParameterValue,
		Message: fmt.Sprintf("missing value for parameter '%s'", token),
		Name:    token,
	}
}

// MissingMandatoryParameters lists every mandatory parameter left unset.
func MissingMandatoryParameters(names []string) *Error {
	return &Error{
		Kind:    ErrMissingMandatoryParameters,
		Message: fmt.Sprintf("the following parameters are mandatory and were not set: %s", strings.Join(names, ", ")),
		Names:   names,
	}
}

// InvalidParameterType is returned when a value cannot be read as an integer.
func InvalidParameterType(name, value string) *Error {
	return &Error{
		Kind:    ErrInvalidParameterType,
		Message: fmt.Sprintf("value '%s' for parameter '%s' is not a valid integer", value, name),
		Name:    name,
	}
}
