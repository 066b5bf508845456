package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrDuplicateDefinition
	ErrCommandAlreadyConfigured
	ErrNoCommandSelected
	ErrUnknownSwitch
	ErrUnknownParameter
	ErrMissingParameterValue
	ErrMissingMandatoryParameters
	ErrInvalidParameterType
	ErrInvalidConfiguration
)

func (k ErrorKind) String() string {
	switch k {
	case ErrDuplicateDefinition:
		return "duplicate definition"
	case ErrCommandAlreadyConfigured:
		return "command already configured"
	case ErrNoCommandSelected:
		return "no command selected"
	case ErrUnknownSwitch:
		return "unknown switch"
	case ErrUnknownParameter:
		return "unknown parameter"
	case ErrMissingParameterValue:
		return "missing parameter value"
	case ErrMissingMandatoryParameters:
		return "missing mandatory parameters"
	case ErrInvalidParameterType:
		return "invalid parameter type"
	case ErrInvalidConfiguration:
		return "invalid configuration"
	default:
		return "unknown"
	}
}

// Exit codes:
//
//	Exit 1: Programming/configuration errors
//	  - Unknown errors
//	  - Duplicate definition
//	  - Command already configured
//	  - No command selected
//	  - Invalid configuration
//
//	Exit 2: User input errors
//	  - Unknown switch
//	  - Unknown parameter
//	  - Missing parameter value
//	  - Missing mandatory parameters
//	  - Invalid parameter type
var exitCodes = map[ErrorKind]int{
	ErrUnknown:                    1,
	ErrDuplicateDefinition:        1,
	ErrCommandAlreadyConfigured:   1,
	ErrNoCommandSelected:          1,
	ErrUnknownSwitch:              2,
	ErrUnknownParameter:           2,
	ErrMissingParameterValue:      2,
	ErrMissingMandatoryParameters: 2,
	ErrInvalidParameterType:       2,
	ErrInvalidConfiguration:       1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
	// Name is the offending switch, parameter or command name, if any.
	Name string
	// Names lists every outstanding name for ErrMissingMandatoryParameters.
	Names    []string
	ExitCode int // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// KindOf returns the kind of the first *Error in err's chain,
// or ErrUnknown when there is none.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ErrUnknown
}

// IsKind reports whether err carries a usage error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.Kind == kind
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
