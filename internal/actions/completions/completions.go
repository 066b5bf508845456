// Package completions implements the completions command.
package completions

import (
	"fmt"

	"github.com/footprint-tools/shellshell/internal/completions"
	"github.com/footprint-tools/shellshell/internal/dispatchers"
)

type mode int

const (
	modeScript mode = iota
	modeInstall
	modeInstructions
)

// Completions prints the completion script for the shell parameter (or the
// detected shell). /install writes it to the shell's auto-load directory and
// /instructions explains how to load it.
func Completions(res *dispatchers.Resolution) error {
	d := res.Dispatcher()

	m := modeScript
	switch {
	case res.Has("install"):
		m = modeInstall
	case res.Has("instructions"):
		m = modeInstructions
	}

	return completionsCmd(res.String("shell", ""), m, completions.Extract(d), DefaultDeps(d.Output(), d.Styler()))
}

func completionsCmd(shellName string, m mode, script completions.Script, deps Deps) error {
	shell, err := resolveShell(shellName, script.Program, deps)
	if err != nil {
		return err
	}

	switch m {
	case modeInstall:
		target, err := deps.Install(shell, script)
		if err != nil {
			return err
		}
		_, _ = deps.Printf("%s %s completions to %s\n", deps.Styler.Success("Installed"), shell, target)
		_, _ = deps.Println("Restart your shell or run: exec $SHELL")
		return nil

	case modeInstructions:
		printInstructions(shell, script.Program, deps)
		return nil

	default:
		out, err := deps.Generate(shell, script)
		if err != nil {
			return err
		}
		_, _ = deps.Printf("%s", out)
		return nil
	}
}

func resolveShell(name, program string, deps Deps) (completions.Shell, error) {
	if name != "" {
		return completions.ParseShell(name)
	}
	shell, ok := deps.DetectShell()
	if !ok {
		return "", fmt.Errorf("could not detect shell, specify one: %s completions <bash|zsh|fish>", program)
	}
	return shell, nil
}

func printInstructions(shell completions.Shell, program string, deps Deps) {
	evalLine := completions.SourceInstructions(shell, deps.BinaryPath(program))
	rcFile := completions.RcFile(shell)
	autoPath := deps.AutoInstallPath(shell, program)

	_, _ = deps.Println("To enable completions, choose one of the following:")
	_, _ = deps.Println()

	optionNum := 1

	if autoPath != "" {
		_, _ = deps.Printf("%d. Write to auto-load directory:\n", optionNum)
		_, _ = deps.Printf("   %s completions %s > %s\n", program, shell, autoPath)
		_, _ = deps.Println()
		optionNum++
	}

	_, _ = deps.Printf("%d. Add to %s:\n", optionNum, rcFile)
	_, _ = deps.Printf("   %s\n", evalLine)
	_, _ = deps.Println()

	_, _ = deps.Println("Then restart your shell or run: exec $SHELL")
}
