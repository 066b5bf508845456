package dispatchers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/shellshell/internal/ui"
	"github.com/footprint-tools/shellshell/internal/usage"
)

func newHelpDispatcher(t *testing.T, out *bytes.Buffer) *Dispatcher {
	t.Helper()
	d := New(WithProgramName("tool"), WithOutput(ui.NewWriterTo(out)))

	deploy := NewCommand("deploy", nopAction,
		WithDescription("Deploy the service"),
		WithAliases("ship"),
		WithCategory("release"),
	)
	require.NoError(t, deploy.ConfigureParameterWithDescription("env", true, "", "Target environment"))
	require.NoError(t, deploy.ConfigureParameterWithDescription("region", false, "eu-west-1", "Region"))
	require.NoError(t, deploy.ConfigureSwitchWithDescription("dry", false, "Print without deploying"))
	require.NoError(t, d.ConfigureCommand(deploy))

	require.NoError(t, d.ConfigureCommand(NewCommand("misc", nopAction)))
	require.NoError(t, d.ConfigureGlobalParameterWithDescription("profile", false, "default", "Profile to use"))
	return d
}

func TestUsageLine(t *testing.T) {
	d := newHelpDispatcher(t, &bytes.Buffer{})
	deploy, _ := d.Command("deploy")

	require.Equal(t, "tool deploy <env> [region] [/dry]", d.UsageLine(deploy))

	require.NoError(t, d.SetMarkers("--", "-"))
	require.Equal(t, "tool deploy <env> [region] [--dry]", d.UsageLine(deploy))
}

func TestRenderCommandList(t *testing.T) {
	out := newHelpDispatcher(t, &bytes.Buffer{}).RenderCommandList()

	require.Contains(t, out, "tool <command> [parameters] [switches]")
	require.Contains(t, out, "BUILT-IN COMMANDS")
	require.Contains(t, out, "RELEASE")
	require.Contains(t, out, "OTHER COMMANDS")
	require.Contains(t, out, "Deploy the service")
	require.Contains(t, out, "GLOBAL PARAMETERS")
	require.Contains(t, out, "-profile <value>")
	require.Contains(t, out, "(default: default)")
	require.Contains(t, out, "See 'tool help <command>'")

	require.Less(t, bytes.Index([]byte(out), []byte("RELEASE")), bytes.Index([]byte(out), []byte("OTHER COMMANDS")))
}

func TestRenderCommandHelp(t *testing.T) {
	d := newHelpDispatcher(t, &bytes.Buffer{})
	deploy, _ := d.Command("ship")

	out := d.RenderCommandHelp(deploy)

	require.Contains(t, out, "deploy - Deploy the service")
	require.Contains(t, out, "tool deploy <env> [region] [/dry]")
	require.Contains(t, out, "ALIASES\n   ship")
	require.Contains(t, out, "-env <value>")
	require.Contains(t, out, "Target environment (mandatory)")
	require.Contains(t, out, "Region (default: eu-west-1)")
	require.Contains(t, out, "/dry")
	require.Contains(t, out, "Print without deploying")
}

func TestRenderCommandHelp_NoSections(t *testing.T) {
	d := newHelpDispatcher(t, &bytes.Buffer{})
	misc, _ := d.Command("misc")

	out := d.RenderCommandHelp(misc)

	require.NotContains(t, out, "ALIASES")
	require.NotContains(t, out, "PARAMETERS")
	require.NotContains(t, out, "SWITCHES")
}

func TestHelpCommand(t *testing.T) {
	var buf bytes.Buffer
	d := newHelpDispatcher(t, &buf)

	require.NoError(t, d.Run([]string{"help"}))
	require.Contains(t, buf.String(), "GLOBAL PARAMETERS")

	buf.Reset()
	require.NoError(t, d.Run([]string{"help", "ship"}))
	require.Contains(t, buf.String(), "deploy - Deploy the service")

	buf.Reset()
	require.NoError(t, d.Run([]string{"help", "-cmd", "misc"}))
	require.Contains(t, buf.String(), "USAGE\n   tool misc")
}

func TestHelpCommand_UnknownCommand(t *testing.T) {
	var buf bytes.Buffer
	d := newHelpDispatcher(t, &buf)

	err := d.Run([]string{"help", "deplyo"})

	require.True(t, usage.IsKind(err, usage.ErrNoCommandSelected))
	require.Contains(t, err.Error(), "deploy")
	require.Empty(t, buf.String())
}

func TestHelpCommand_IgnoresMandatoryGlobals(t *testing.T) {
	var buf bytes.Buffer
	d := newHelpDispatcher(t, &buf)
	require.NoError(t, d.ConfigureGlobalParameter("token", true, ""))

	require.NoError(t, d.Run([]string{"help"}))
	require.NotEmpty(t, buf.String())
}
