package actions

import (
	"github.com/footprint-tools/shellshell/internal/app"
	"github.com/footprint-tools/shellshell/internal/dispatchers"
)

type actionDependencies struct {
	Printf  func(format string, a ...any) (n int, err error)
	Program string
	Version func() string
}

func defaultDeps(res *dispatchers.Resolution) actionDependencies {
	d := res.Dispatcher()
	return actionDependencies{
		Printf:  d.Output().Printf,
		Program: d.ProgramName(),
		Version: func() string { return app.Version },
	}
}
