package usage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		kind     ErrorKind
		exitCode int
		message  string
	}{
		{"duplicate", DuplicateDefinition("command 'deploy'", "switch", "dry"), ErrDuplicateDefinition, 1, "there is already a switch named 'dry' in command 'deploy'"},
		{"already configured", CommandAlreadyConfigured("ship"), ErrCommandAlreadyConfigured, 1, "the command 'ship' is already configured"},
		{"no command", NoCommandSelected(""), ErrNoCommandSelected, 1, "no command selected"},
		{"unknown command", NoCommandSelected("biuld"), ErrNoCommandSelected, 1, "'biuld' is not a known command"},
		{"unknown switch", UnknownSwitch("build", "fast"), ErrUnknownSwitch, 2, "switch 'fast' is not known to command 'build'"},
		{"unknown parameter", UnknownParameter("build", "speed"), ErrUnknownParameter, 2, "parameter 'speed' is not recognized by command 'build'"},
		{"missing value", MissingParameterValue("-env"), ErrMissingParameterValue, 2, "missing value for parameter '-env'"},
		{"missing mandatory", MissingMandatoryParameters([]string{"env", "region"}), ErrMissingMandatoryParameters, 2, "the following parameters are mandatory and were not set: env, region"},
		{"invalid type", InvalidParameterType("jobs", "many"), ErrInvalidParameterType, 2, "value 'many' for parameter 'jobs' is not a valid integer"},
		{"invalid configuration", InvalidConfiguration("marker %q is empty", "switch"), ErrInvalidConfiguration, 1, `marker "switch" is empty`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.err.Kind)
			require.Equal(t, tt.exitCode, tt.err.GetExitCode())
			require.Equal(t, tt.message, tt.err.Error())
			require.NotEqual(t, "unknown", tt.kind.String())
		})
	}
}

func TestError_Names(t *testing.T) {
	require.Equal(t, "-env", MissingParameterValue("-env").Name)
	require.Equal(t, []string{"env", "region"}, MissingMandatoryParameters([]string{"env", "region"}).Names)
}

func TestError_ExplicitExitCode(t *testing.T) {
	err := &Error{Kind: ErrUnknownSwitch, ExitCode: 64}
	require.Equal(t, 64, err.GetExitCode())

	require.Equal(t, 1, (&Error{Kind: ErrorKind(99)}).GetExitCode())
	require.Equal(t, "unknown", ErrorKind(99).String())
}

func TestNoCommandSelected_Suggestions(t *testing.T) {
	err := NoCommandSelected("biuld", "build", "guild")

	require.Equal(t, "'biuld' is not a known command\n\nThe most similar commands are\n\tbuild\n\tguild", err.Error())
	require.Equal(t, "biuld", err.Name)
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("resolving: %w", UnknownSwitch("build", "fast"))

	require.Equal(t, ErrUnknownSwitch, KindOf(wrapped))
	require.True(t, IsKind(wrapped, ErrUnknownSwitch))
	require.False(t, IsKind(wrapped, ErrUnknownParameter))

	require.Equal(t, ErrUnknown, KindOf(errors.New("plain")))
	require.Equal(t, ErrUnknown, KindOf(nil))
	require.False(t, IsKind(nil, ErrUnknown))
}
