package dispatchers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/footprint-tools/shellshell/internal/usage"
)

// newScenarioDispatcher registers deploy (mandatory env, optional region,
// switch dry), build (switch verbose, parameter jobs) and run (positional
// target and mode).
func newScenarioDispatcher(t *testing.T, opts ...Option) *Dispatcher {
	t.Helper()
	d := New(opts...)

	deploy := NewCommand("deploy", nopAction, WithAliases("ship"))
	require.NoError(t, deploy.ConfigureParameter("env", true, ""))
	require.NoError(t, deploy.ConfigureParameter("region", false, "eu-west-1"))
	require.NoError(t, deploy.ConfigureSwitch("dry", false))
	require.NoError(t, d.ConfigureCommand(deploy))

	build := NewCommand("build", nopAction)
	require.NoError(t, build.ConfigureSwitch("verbose", false))
	require.NoError(t, build.ConfigureParameter("jobs", false, "1"))
	require.NoError(t, d.ConfigureCommand(build))

	run := NewCommand("run", nopAction)
	require.NoError(t, run.ConfigureParameter("target", false, ""))
	require.NoError(t, run.ConfigureParameter("mode", false, ""))
	require.NoError(t, d.ConfigureCommand(run))

	return d
}

func mustString(t *testing.T, res *Resolution, name string) string {
	t.Helper()
	v, err := res.GetParameterAsString(name)
	require.NoError(t, err)
	return v
}

func TestResolve_NamedMandatory(t *testing.T) {
	res, err := newScenarioDispatcher(t).Resolve([]string{"deploy", "-env", "prod"})

	require.NoError(t, err)
	require.Equal(t, "deploy", res.Command().Name())
	require.Equal(t, "prod", mustString(t, res, "env"))
	require.Equal(t, "eu-west-1", mustString(t, res, "region"))
	require.NotEmpty(t, res.ID)
}

func TestResolve_MissingMandatory(t *testing.T) {
	_, err := newScenarioDispatcher(t).Resolve([]string{"deploy"})

	require.True(t, usage.IsKind(err, usage.ErrMissingMandatoryParameters))
	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, []string{"env"}, ue.Names)
	require.Contains(t, err.Error(), "env")
}

func TestResolve_MissingMandatoryListsAll(t *testing.T) {
	d := New()
	c := NewCommand("login", nopAction)
	require.NoError(t, c.ConfigureParameter("user", true, ""))
	require.NoError(t, c.ConfigureParameter("host", true, ""))
	require.NoError(t, d.ConfigureCommand(c))
	require.NoError(t, d.ConfigureGlobalParameter("token", true, ""))

	_, err := d.Resolve([]string{"login"})

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, []string{"token", "user", "host"}, ue.Names)
}

func TestResolve_Switch(t *testing.T) {
	res, err := newScenarioDispatcher(t).Resolve([]string{"build", "/verbose"})

	require.NoError(t, err)
	v, err := res.GetSwitch("verbose")
	require.NoError(t, err)
	require.True(t, v)
}

func TestResolve_NoTokensNoDefault(t *testing.T) {
	res, err := newScenarioDispatcher(t).Resolve([]string{})

	require.True(t, usage.IsKind(err, usage.ErrNoCommandSelected))
	require.Nil(t, res)
}

func TestResolve_Positional(t *testing.T) {
	res, err := newScenarioDispatcher(t).Resolve([]string{"run", "web", "fast"})

	require.NoError(t, err)
	require.Equal(t, "web", mustString(t, res, "target"))
	require.Equal(t, "fast", mustString(t, res, "mode"))
	require.Equal(t, []string{"web", "fast"}, res.Positional())
}

func TestResolve_MissingValueAtEnd(t *testing.T) {
	_, err := newScenarioDispatcher(t).Resolve([]string{"run", "-missing"})

	require.True(t, usage.IsKind(err, usage.ErrMissingParameterValue))
	require.Contains(t, err.Error(), "-missing")
}

func TestResolve_MissingValueBeforeMarker(t *testing.T) {
	d := newScenarioDispatcher(t)

	_, err := d.Resolve([]string{"deploy", "-env", "/dry"})
	require.True(t, usage.IsKind(err, usage.ErrMissingParameterValue))

	_, err = d.Resolve([]string{"deploy", "-env", "-region", "x"})
	require.True(t, usage.IsKind(err, usage.ErrMissingParameterValue))
}

func TestResolve_InterleavedForms(t *testing.T) {
	res, err := newScenarioDispatcher(t).Resolve([]string{"run", "-mode", "slow", "/dry", "api"})

	// run has no dry switch
	require.True(t, usage.IsKind(err, usage.ErrUnknownSwitch))
	require.NotNil(t, res)

	res, err = newScenarioDispatcher(t).Resolve([]string{"run", "-mode", "slow", "api"})
	require.NoError(t, err)
	require.Equal(t, "api", mustString(t, res, "target"), "named tokens do not advance the position")
	require.Equal(t, "slow", mustString(t, res, "mode"))
}

func TestResolve_SwitchesAnywhere(t *testing.T) {
	res, err := newScenarioDispatcher(t).Resolve([]string{"deploy", "/dry", "prod", "ap-south-1"})

	require.NoError(t, err)
	require.True(t, res.Has("dry"))
	require.Equal(t, "prod", mustString(t, res, "env"))
	require.Equal(t, "ap-south-1", mustString(t, res, "region"))
}

func TestResolve_NamedValueMayLookLikeCommand(t *testing.T) {
	res, err := newScenarioDispatcher(t).Resolve([]string{"deploy", "-env", "build"})

	require.NoError(t, err)
	require.Equal(t, "build", mustString(t, res, "env"))
}

func TestResolve_UnknownNames(t *testing.T) {
	d := newScenarioDispatcher(t)

	_, err := d.Resolve([]string{"build", "/fast"})
	require.True(t, usage.IsKind(err, usage.ErrUnknownSwitch))
	require.Contains(t, err.Error(), "fast")

	_, err = d.Resolve([]string{"build", "-speed", "9"})
	require.True(t, usage.IsKind(err, usage.ErrUnknownParameter))

	_, err = d.Resolve([]string{"build", "4", "surplus"})
	require.True(t, usage.IsKind(err, usage.ErrUnknownParameter), "surplus positional on a strict command")
}

func TestResolve_LenientCommand(t *testing.T) {
	d := New()
	c := NewCommand("exec", nopAction, WithLenientSwitches(), WithLenientParameters())
	require.NoError(t, c.ConfigureParameter("target", false, ""))
	require.NoError(t, d.ConfigureCommand(c))

	res, err := d.Resolve([]string{"exec", "/quiet", "-speed", "9", "api", "a", "b"})

	require.NoError(t, err)
	require.Equal(t, "api", mustString(t, res, "target"))
	require.Equal(t, []string{"a", "b"}, res.Extra())
	require.False(t, res.Has("quiet"))
}

func TestResolve_SelectsByAlias(t *testing.T) {
	res, err := newScenarioDispatcher(t).Resolve([]string{"ship", "prod"})

	require.NoError(t, err)
	require.Equal(t, "deploy", res.Command().Name())
}

func TestResolve_FirstTokenWinsOverDefault(t *testing.T) {
	for _, useDefault := range []bool{false, true} {
		t.Run(fmt.Sprint(useDefault), func(t *testing.T) {
			d := newScenarioDispatcher(t, WithUseDefaultCommand(useDefault), WithDefaultCommand("run"))

			res, err := d.Resolve([]string{"build", "/verbose"})
			require.NoError(t, err)
			require.Equal(t, "build", res.Command().Name())
		})
	}
}

func TestResolve_DefaultCommand(t *testing.T) {
	d := newScenarioDispatcher(t, WithUseDefaultCommand(true), WithDefaultCommand("run"))

	res, err := d.Resolve(nil)
	require.NoError(t, err)
	require.Equal(t, "run", res.Command().Name())

	res, err = d.Resolve([]string{"web", "fast"})
	require.NoError(t, err)
	require.Equal(t, "run", res.Command().Name())
	require.Equal(t, "web", mustString(t, res, "target"), "unmatched first token is not consumed")
	require.Equal(t, "fast", mustString(t, res, "mode"))
}

func TestResolve_DefaultOnLeadingSwitch(t *testing.T) {
	d := newScenarioDispatcher(t, WithUseDefaultCommand(true), WithDefaultCommand("build"))

	res, err := d.Resolve([]string{"/verbose"})
	require.NoError(t, err)
	require.Equal(t, "build", res.Command().Name())
	require.True(t, res.Has("verbose"))
}

func TestResolve_DefaultIsFirstRegistered(t *testing.T) {
	d := newScenarioDispatcher(t, WithUseDefaultCommand(true))

	res, err := d.Resolve(nil)
	require.NoError(t, err)
	require.Equal(t, HelpCommandName, res.Command().Name())
}

func TestResolve_UnknownCommandSuggests(t *testing.T) {
	_, err := newScenarioDispatcher(t).Resolve([]string{"biuld"})

	require.True(t, usage.IsKind(err, usage.ErrNoCommandSelected))
	require.Contains(t, err.Error(), "'biuld' is not a known command")
	require.Contains(t, err.Error(), "build")
}

func TestResolve_GlobalShadowsLocal(t *testing.T) {
	d := New()
	require.NoError(t, d.ConfigureGlobalParameter("env", false, "global-default"))
	c := NewCommand("deploy", nopAction)
	require.NoError(t, c.ConfigureParameter("env", false, "local-default"))
	require.NoError(t, d.ConfigureCommand(c))

	res, err := d.Resolve([]string{"deploy", "-env", "prod"})
	require.NoError(t, err)

	require.Equal(t, "prod", mustString(t, res, "env"))
	local, err := res.Command().GetParameterAsString("env")
	require.NoError(t, err)
	require.Equal(t, "local-default", local, "the local slot is unreachable by name")
}

func TestResolve_PositionalSkipsGlobals(t *testing.T) {
	d := New()
	require.NoError(t, d.ConfigureGlobalParameter("profile", false, "default"))
	c := NewCommand("run", nopAction)
	require.NoError(t, c.ConfigureParameter("target", false, ""))
	require.NoError(t, d.ConfigureCommand(c))

	res, err := d.Resolve([]string{"run", "api"})
	require.NoError(t, err)
	require.Equal(t, "api", mustString(t, res, "target"))
	require.Equal(t, "default", mustString(t, res, "profile"))
}

func TestResolve_HelpExemptFromGlobalMandatory(t *testing.T) {
	d := newScenarioDispatcher(t)
	require.NoError(t, d.ConfigureGlobalParameter("token", true, ""))

	_, err := d.Resolve([]string{"help"})
	require.NoError(t, err)

	_, err = d.Resolve([]string{"build"})
	require.True(t, usage.IsKind(err, usage.ErrMissingMandatoryParameters))

	d.AddGlobalMandatoryException("build")
	_, err = d.Resolve([]string{"build"})
	require.NoError(t, err)

	res, err := d.Resolve([]string{"build", "-token", "abc"})
	require.NoError(t, err)
	require.Equal(t, "abc", mustString(t, res, "token"))
}

func TestResolve_MandatoryWithDefaultIsSatisfied(t *testing.T) {
	d := New()
	c := NewCommand("deploy", nopAction)
	require.NoError(t, c.ConfigureParameter("env", true, "staging"))
	require.NoError(t, d.ConfigureCommand(c))

	res, err := d.Resolve([]string{"deploy"})
	require.NoError(t, err)
	require.Equal(t, "staging", mustString(t, res, "env"))
}

func TestResolve_PartialValuesKeptOnFailure(t *testing.T) {
	res, err := newScenarioDispatcher(t).Resolve([]string{"deploy", "/dry", "-region", "us-east-1", "-bogus", "x"})

	require.True(t, usage.IsKind(err, usage.ErrUnknownParameter))
	require.NotNil(t, res)
	require.True(t, res.Has("dry"))
	require.Equal(t, "us-east-1", mustString(t, res, "region"))
}

func TestResolve_DoesNotMutateConfiguration(t *testing.T) {
	d := newScenarioDispatcher(t)

	_, err := d.Resolve([]string{"deploy", "/dry", "-env", "prod"})
	require.NoError(t, err)

	deploy, _ := d.Command("deploy")
	dry, err := deploy.GetSwitch("dry")
	require.NoError(t, err)
	require.False(t, dry)
	env, err := deploy.GetParameterAsString("env")
	require.NoError(t, err)
	require.Empty(t, env)

	res, err := d.Resolve([]string{"deploy", "qa"})
	require.NoError(t, err)
	require.False(t, res.Has("dry"), "values never leak between resolutions")
}

func TestResolve_MarkerChangeAppliesToRegisteredCommands(t *testing.T) {
	d := newScenarioDispatcher(t)
	require.NoError(t, d.SetMarkers("--", "+"))

	res, err := d.Resolve([]string{"deploy", "--dry", "+env", "prod"})
	require.NoError(t, err)
	require.True(t, res.Has("dry"))
	require.Equal(t, "prod", mustString(t, res, "env"))

	res, err = d.Resolve([]string{"deploy", "/dry", "prod"})
	require.NoError(t, err)
	require.Equal(t, "/dry", mustString(t, res, "env"), "old marker is now a plain token")
	require.Equal(t, "prod", mustString(t, res, "region"))
}

func TestResolve_Concurrent(t *testing.T) {
	d := newScenarioDispatcher(t)

	var g errgroup.Group
	for i := range 50 {
		g.Go(func() error {
			env := fmt.Sprintf("env-%d", i)
			res, err := d.Resolve([]string{"deploy", "-env", env})
			if err != nil {
				return err
			}
			if got, _ := res.GetParameterAsString("env"); got != env {
				return fmt.Errorf("got %q want %q", got, env)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestResolution_SetAndGet(t *testing.T) {
	d := newScenarioDispatcher(t)
	require.NoError(t, d.ConfigureGlobalParameter("profile", false, "default"))

	res, err := d.Resolve([]string{"build"})
	require.NoError(t, err)

	require.NoError(t, res.SetParameter("jobs", "3"))
	n, err := res.GetParameterAsInt("jobs")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	require.NoError(t, res.SetParameter("profile", "ops"))
	require.Equal(t, "ops", mustString(t, res, "profile"))

	require.NoError(t, res.SetSwitch("verbose", true))
	require.True(t, res.Has("verbose"))

	require.True(t, usage.IsKind(res.SetParameter("nope", "x"), usage.ErrUnknownParameter))
	require.Equal(t, "fallback", res.String("nope", "fallback"))
	require.False(t, res.Has("nope"))
	require.Equal(t, []string{"build"}, res.Tokens())
}

func TestExecute(t *testing.T) {
	d := New()
	var got string
	c := NewCommand("greet", func(res *Resolution) error {
		got = res.String("name", "world")
		return nil
	})
	require.NoError(t, c.ConfigureParameter("name", false, ""))
	require.NoError(t, d.ConfigureCommand(c))

	require.NoError(t, d.Run([]string{"greet", "gopher"}))
	require.Equal(t, "gopher", got)

	require.NoError(t, d.Run([]string{"greet"}))
	require.Equal(t, "world", got)
}

func TestExecute_PropagatesActionError(t *testing.T) {
	d := New()
	boom := errors.New("boom")
	require.NoError(t, d.ConfigureCommand(NewCommand("fail", func(*Resolution) error { return boom })))

	require.ErrorIs(t, d.Run([]string{"fail"}), boom)
}

func TestExecute_WithoutResolution(t *testing.T) {
	d := New()

	require.True(t, usage.IsKind(d.Execute(nil), usage.ErrNoCommandSelected))

	var res *Resolution
	require.True(t, usage.IsKind(res.Execute(), usage.ErrNoCommandSelected))
}

func TestRun_StopsOnResolveError(t *testing.T) {
	d := New()
	called := false
	c := NewCommand("deploy", func(*Resolution) error { called = true; return nil })
	require.NoError(t, c.ConfigureParameter("env", true, ""))
	require.NoError(t, d.ConfigureCommand(c))

	err := d.Run([]string{"deploy"})
	require.True(t, usage.IsKind(err, usage.ErrMissingMandatoryParameters))
	require.False(t, called)
}
