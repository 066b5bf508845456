package completions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/shellshell/internal/dispatchers"
)

func nop(*dispatchers.Resolution) error { return nil }

func buildTestDispatcher(t *testing.T) *dispatchers.Dispatcher {
	t.Helper()

	d := dispatchers.New(dispatchers.WithProgramName("ss"))
	require.NoError(t, d.ConfigureGlobalParameterWithDescription("profile", false, "default", "Settings profile"))

	deploy := dispatchers.NewCommand("deploy", nop,
		dispatchers.WithDescription("Deploy a build"),
		dispatchers.WithAliases("ship"),
	)
	require.NoError(t, deploy.ConfigureParameterWithDescription("target", true, "", "Where to deploy"))
	require.NoError(t, deploy.ConfigureSwitchWithDescription("dry", false, "Print the plan only"))
	require.NoError(t, d.ConfigureCommand(deploy))

	build := dispatchers.NewCommand("build", nop, dispatchers.WithDescription("Compile the project"))
	require.NoError(t, build.ConfigureSwitch("verbose", false))
	require.NoError(t, d.ConfigureCommand(build))

	return d
}

func TestExtract(t *testing.T) {
	s := Extract(buildTestDispatcher(t))

	require.Equal(t, "ss", s.Program)
	require.Equal(t, []OptionInfo{{Token: "-profile", Description: "Settings profile"}}, s.Globals)
	require.Len(t, s.Commands, 3)
	require.Equal(t, "help", s.Commands[0].Name)

	deploy := FindCommand(s.Commands, "deploy")
	require.NotNil(t, deploy)
	require.Equal(t, []string{"ship"}, deploy.Aliases)
	require.Equal(t, "Deploy a build", deploy.Summary)
	require.Equal(t, []OptionInfo{{Token: "-target", Description: "Where to deploy"}}, deploy.Parameters)
	require.Equal(t, []OptionInfo{{Token: "/dry", Description: "Print the plan only"}}, deploy.Switches)
}

func TestExtract_UsesCurrentMarkers(t *testing.T) {
	d := buildTestDispatcher(t)
	require.NoError(t, d.SetSwitchMarker("+"))
	require.NoError(t, d.SetParamMarker("--"))

	s := Extract(d)
	deploy := FindCommand(s.Commands, "deploy")
	require.NotNil(t, deploy)
	require.Equal(t, "--target", deploy.Parameters[0].Token)
	require.Equal(t, "+dry", deploy.Switches[0].Token)
	require.Equal(t, "--profile", s.Globals[0].Token)
}

func TestFindCommand(t *testing.T) {
	commands := []CommandInfo{
		{Name: "deploy", Aliases: []string{"ship"}},
		{Name: "build"},
	}

	require.Equal(t, "deploy", FindCommand(commands, "ship").Name)
	require.Equal(t, "build", FindCommand(commands, "build").Name)
	require.Nil(t, FindCommand(commands, "nonexistent"))
}

func TestParseShell(t *testing.T) {
	for _, name := range []string{"bash", "ZSH", "fish"} {
		_, err := ParseShell(name)
		require.NoError(t, err, name)
	}

	_, err := ParseShell("powershell")
	require.Error(t, err)
}

func TestDetectShell(t *testing.T) {
	s, ok := detectShell("/usr/bin/zsh")
	require.True(t, ok)
	require.Equal(t, ShellZsh, s)

	_, ok = detectShell("")
	require.False(t, ok)

	_, ok = detectShell("/bin/tcsh")
	require.False(t, ok)
}

func TestSourceInstructions(t *testing.T) {
	require.Equal(t, `eval "$(/bin/ss completions bash)"`, SourceInstructions(ShellBash, "/bin/ss"))
	require.Equal(t, `/bin/ss completions fish | source`, SourceInstructions(ShellFish, "/bin/ss"))
	require.Empty(t, SourceInstructions(Shell("csh"), "/bin/ss"))
}

func TestAutoInstallPath_Fish(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.Equal(t, home+"/.config/fish/completions/ss.fish", AutoInstallPath(ShellFish, "ss"))
	require.Empty(t, AutoInstallPath(ShellZsh, "ss"))
}

func TestInstall_Fish(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	target, err := Install(ShellFish, Extract(buildTestDispatcher(t)))
	require.NoError(t, err)
	require.FileExists(t, target)
}

func TestInstall_ZshUnsupported(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Install(ShellZsh, Extract(buildTestDispatcher(t)))
	require.ErrorContains(t, err, "~/.zshrc")
}
