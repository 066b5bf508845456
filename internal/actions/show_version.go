package actions

import "github.com/footprint-tools/shellshell/internal/dispatchers"

// ShowVersion prints the program version.
func ShowVersion(res *dispatchers.Resolution) error {
	return showVersion(defaultDeps(res))
}

func showVersion(deps actionDependencies) error {
	_, _ = deps.Printf("%s version %v\n", deps.Program, deps.Version())
	return nil
}
