package main

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/shellshell/internal/dispatchers"
	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/usage"
)

func TestSplitAppFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantFlags  appFlags
		wantTokens []string
	}{
		{"empty", []string{}, appFlags{}, []string{}},
		{"only tokens", []string{"deploy", "/dry", "-env", "qa"}, appFlags{}, []string{"deploy", "/dry", "-env", "qa"}},
		{"no color", []string{"--no-color", "help"}, appFlags{noColor: true}, []string{"help"}},
		{"no pager", []string{"help", "--no-pager"}, appFlags{noPager: true}, []string{"help"}},
		{"pager override", []string{"--pager=more", "help"}, appFlags{pager: "more"}, []string{"help"}},
		{"lookalike kept", []string{"--pager", "more"}, appFlags{}, []string{"--pager", "more"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, tokens := splitAppFlags(tt.args)
			require.Equal(t, tt.wantFlags, flags)
			require.Equal(t, tt.wantTokens, tokens)
		})
	}
}

func TestExitCode(t *testing.T) {
	require.Equal(t, 2, exitCode(usage.UnknownSwitch("deploy", "x")))
	require.Equal(t, 1, exitCode(usage.NoCommandSelected("")))
	require.Equal(t, 2, exitCode(fmt.Errorf("wrapped: %w", usage.MissingParameterValue("-env"))))
	require.Equal(t, 1, exitCode(errors.New("boom")))
}

func testDispatcher(t *testing.T) *dispatchers.Dispatcher {
	d := dispatchers.New()
	cmd := dispatchers.NewCommand("deploy", func(*dispatchers.Resolution) error { return nil },
		dispatchers.WithAliases("ship"))
	require.NoError(t, cmd.ConfigureParameter("env", false, ""))
	require.NoError(t, d.ConfigureCommand(cmd))
	require.NoError(t, d.ConfigureCommand(dispatchers.NewCommand("history", func(*dispatchers.Resolution) error { return nil })))
	d.SetUseDefaultCommand(true)
	d.SetDefaultCommand("deploy")
	return d
}

func TestInvocationFor(t *testing.T) {
	d := testDispatcher(t)

	t.Run("named command", func(t *testing.T) {
		tokens := []string{"ship", "prod"}
		res, err := d.Resolve(tokens)
		require.NoError(t, err)

		inv, ok := invocationFor(d, res, tokens, nil, 5*time.Millisecond)
		require.True(t, ok)
		require.Equal(t, res.ID, inv.ID)
		require.Equal(t, "deploy", inv.Command)
		require.Equal(t, []string{"prod"}, inv.Args)
		require.Equal(t, domain.InvocationSucceeded, inv.Status)
		require.Equal(t, 5*time.Millisecond, inv.Duration)
	})

	t.Run("default command keeps tokens", func(t *testing.T) {
		tokens := []string{"prod"}
		res, err := d.Resolve(tokens)
		require.NoError(t, err)

		inv, ok := invocationFor(d, res, tokens, nil, 0)
		require.True(t, ok)
		require.Equal(t, "deploy", inv.Command)
		require.Equal(t, []string{"prod"}, inv.Args)
	})

	t.Run("failure", func(t *testing.T) {
		tokens := []string{"deploy", "/nope"}
		res, err := d.Resolve(tokens)
		require.Error(t, err)

		inv, ok := invocationFor(d, res, tokens, err, 0)
		require.True(t, ok)
		require.Equal(t, domain.InvocationFailed, inv.Status)
		require.Contains(t, inv.Error, "nope")
	})

	t.Run("unresolved", func(t *testing.T) {
		inv, ok := invocationFor(d, nil, []string{"nosuch", "x"}, usage.NoCommandSelected("nosuch"), 0)
		require.True(t, ok)
		require.Equal(t, "nosuch", inv.Command)
		require.Equal(t, []string{"x"}, inv.Args)
	})

	t.Run("history skipped", func(t *testing.T) {
		tokens := []string{"history"}
		res, err := d.Resolve(tokens)
		require.NoError(t, err)

		_, ok := invocationFor(d, res, tokens, nil, 0)
		require.False(t, ok)
	})
}
