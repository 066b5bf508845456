// Package demo holds sample commands that exercise every binding rule of the
// dispatcher: mandatory and optional parameters, integer parameters,
// switches, positional binding, lenient extras and the global profile.
package demo

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/shellshell/internal/dispatchers"
	"github.com/footprint-tools/shellshell/internal/domain"
)

type Deps struct {
	Printf func(string, ...any) (int, error)
	Styler domain.Styler
}

func DefaultDeps(res *dispatchers.Resolution) Deps {
	d := res.Dispatcher()
	return Deps{
		Printf: d.Output().Printf,
		Styler: d.Styler(),
	}
}

// Deploy prints the deployment plan for env and region.
func Deploy(res *dispatchers.Resolution) error {
	env, err := res.GetParameterAsString("env")
	if err != nil {
		return err
	}
	return deploy(env, res.String("region", ""), res.String("profile", "default"), res.Has("dry"), DefaultDeps(res))
}

func deploy(env, region, profile string, dry bool, deps Deps) error {
	verb := "Deploying"
	if dry {
		verb = deps.Styler.Warning("[dry run]") + " Would deploy"
	}
	_, _ = deps.Printf("%s to %s in %s %s\n", verb, deps.Styler.Info(env), region, deps.Styler.Muted("(profile "+profile+")"))
	return nil
}

// Build prints the build steps, split over jobs workers.
func Build(res *dispatchers.Resolution) error {
	jobs, err := res.GetParameterAsInt("jobs")
	if err != nil {
		return err
	}
	return build(jobs, res.String("profile", "default"), res.Has("verbose"), DefaultDeps(res))
}

var buildSteps = []string{"fetch", "compile", "link", "package"}

func build(jobs int, profile string, verbose bool, deps Deps) error {
	if jobs < 1 {
		return fmt.Errorf("build: jobs must be at least 1, got %d", jobs)
	}

	_, _ = deps.Printf("Building with %d job(s) %s\n", jobs, deps.Styler.Muted("(profile "+profile+")"))
	if verbose {
		for i, step := range buildSteps {
			_, _ = deps.Printf("  [%d/%d] %s (worker %d)\n", i+1, len(buildSteps), step, i%jobs+1)
		}
	}
	_, _ = deps.Printf("%s\n", deps.Styler.Success("Build complete"))
	return nil
}

// Run prints the target and mode bound by position. Tokens beyond them are
// passed through as arguments.
func Run(res *dispatchers.Resolution) error {
	return run(res.String("target", ""), res.String("mode", ""), res.Extra(), res.String("profile", "default"), DefaultDeps(res))
}

func run(target, mode string, extra []string, profile string, deps Deps) error {
	if target == "" {
		_, _ = deps.Printf("%s\n", deps.Styler.Muted("Nothing to run"))
		return nil
	}

	line := "Running " + deps.Styler.Info(target)
	if mode != "" {
		line += " in " + mode + " mode"
	}
	if len(extra) > 0 {
		line += " with " + strings.Join(extra, " ")
	}
	_, _ = deps.Printf("%s %s\n", line, deps.Styler.Muted("(profile "+profile+")"))
	return nil
}
