package demo

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/shellshell/internal/dispatchers"
	"github.com/footprint-tools/shellshell/internal/ui"
	"github.com/footprint-tools/shellshell/internal/ui/style"
	"github.com/footprint-tools/shellshell/internal/usage"
)

func newTestDeps(out *strings.Builder) Deps {
	return Deps{
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(out, format, a...)
		},
		Styler: style.NopStyler{},
	}
}

func TestDeploy(t *testing.T) {
	var out strings.Builder
	require.NoError(t, deploy("prod", "us-east-1", "ops", false, newTestDeps(&out)))
	require.Equal(t, "Deploying to prod in us-east-1 (profile ops)\n", out.String())

	out.Reset()
	require.NoError(t, deploy("prod", "us-east-1", "ops", true, newTestDeps(&out)))
	require.Equal(t, "[dry run] Would deploy to prod in us-east-1 (profile ops)\n", out.String())
}

func TestBuild(t *testing.T) {
	var out strings.Builder
	require.NoError(t, build(2, "default", true, newTestDeps(&out)))

	require.Equal(t, "Building with 2 job(s) (profile default)\n"+
		"  [1/4] fetch (worker 1)\n"+
		"  [2/4] compile (worker 2)\n"+
		"  [3/4] link (worker 1)\n"+
		"  [4/4] package (worker 2)\n"+
		"Build complete\n", out.String())
}

func TestBuild_RejectsZeroJobs(t *testing.T) {
	var out strings.Builder
	require.ErrorContains(t, build(0, "default", false, newTestDeps(&out)), "at least 1")
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		target string
		mode   string
		extra  []string
		want   string
	}{
		{"nothing", "", "", nil, "Nothing to run\n"},
		{"target only", "api", "", nil, "Running api (profile p)\n"},
		{"target and mode", "api", "watch", nil, "Running api in watch mode (profile p)\n"},
		{"extra args", "api", "once", []string{"a", "b"}, "Running api in once mode with a b (profile p)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			require.NoError(t, run(tt.target, tt.mode, tt.extra, "p", newTestDeps(&out)))
			require.Equal(t, tt.want, out.String())
		})
	}
}

func newDemoDispatcher(t *testing.T, buf *bytes.Buffer) *dispatchers.Dispatcher {
	t.Helper()
	d := dispatchers.New(dispatchers.WithOutput(ui.NewWriterTo(buf)))
	require.NoError(t, d.ConfigureGlobalParameter("profile", false, "default"))

	deployCmd := dispatchers.NewCommand("deploy", Deploy)
	require.NoError(t, deployCmd.ConfigureParameter("env", true, ""))
	require.NoError(t, deployCmd.ConfigureParameter("region", false, "eu-west-1"))
	require.NoError(t, deployCmd.ConfigureSwitch("dry", false))
	require.NoError(t, d.ConfigureCommand(deployCmd))

	buildCmd := dispatchers.NewCommand("build", Build)
	require.NoError(t, buildCmd.ConfigureParameter("jobs", false, "1"))
	require.NoError(t, buildCmd.ConfigureSwitch("verbose", false))
	require.NoError(t, d.ConfigureCommand(buildCmd))

	runCmd := dispatchers.NewCommand("run", Run, dispatchers.WithLenientParameters())
	require.NoError(t, runCmd.ConfigureParameter("target", false, ""))
	require.NoError(t, runCmd.ConfigureParameter("mode", false, ""))
	require.NoError(t, d.ConfigureCommand(runCmd))

	return d
}

func TestThroughDispatcher(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"deploy defaults", []string{"deploy", "prod"}, "Deploying to prod in eu-west-1 (profile default)\n"},
		{"deploy named with global", []string{"deploy", "/dry", "-region", "ap-south-1", "-env", "qa", "-profile", "ci"},
			"[dry run] Would deploy to qa in ap-south-1 (profile ci)\n"},
		{"build jobs", []string{"build", "-jobs", " 3 "}, "Building with 3 job(s) (profile default)\nBuild complete\n"},
		{"run lenient extras", []string{"run", "api", "once", "x", "y"}, "Running api in once mode with x y (profile default)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, newDemoDispatcher(t, &buf).Run(tt.tokens))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestBuild_InvalidJobs(t *testing.T) {
	var buf bytes.Buffer
	err := newDemoDispatcher(t, &buf).Run([]string{"build", "-jobs", "four"})

	require.True(t, usage.IsKind(err, usage.ErrInvalidParameterType))
	require.Empty(t, buf.String())
}

func TestDeploy_MissingEnv(t *testing.T) {
	var buf bytes.Buffer
	err := newDemoDispatcher(t, &buf).Run([]string{"deploy", "/dry"})

	require.True(t, usage.IsKind(err, usage.ErrMissingMandatoryParameters))
}
