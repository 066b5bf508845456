package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/footprint-tools/shellshell/internal/app"
	"github.com/footprint-tools/shellshell/internal/cli"
	"github.com/footprint-tools/shellshell/internal/dispatchers"
	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	flags, tokens := splitAppFlags(args)

	opts := app.DefaultOptions()
	opts.StyleEnabled = term.IsTerminal(int(os.Stdout.Fd())) && !flags.noColor
	opts.PagerDisabled = flags.noPager
	opts.PagerOverride = flags.pager

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	defer func() { _ = app.Close(application) }()

	d, err := cli.BuildDispatcher(application)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitCode(err)
	}

	start := time.Now()
	res, err := d.Resolve(tokens)
	if err == nil {
		err = d.Execute(res)
	}

	if application.History != nil {
		if inv, ok := invocationFor(d, res, tokens, err, time.Since(start)); ok {
			if recErr := application.History.Record(inv); recErr != nil {
				application.Logger.Warn("history: record %s: %v", inv.Command, recErr)
			}
		}
	}

	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitCode(err)
	}
	return 0
}

// appFlags are handled before dispatch and never reach the dispatcher.
type appFlags struct {
	noColor bool
	noPager bool
	pager   string
}

func splitAppFlags(args []string) (appFlags, []string) {
	var flags appFlags
	tokens := make([]string, 0, len(args))

	for _, a := range args {
		switch {
		case a == "--no-color":
			flags.noColor = true
		case a == "--no-pager":
			flags.noPager = true
		case strings.HasPrefix(a, "--pager="):
			flags.pager = strings.TrimPrefix(a, "--pager=")
		default:
			tokens = append(tokens, a)
		}
	}
	return flags, tokens
}

// invocationFor builds the history entry of one run. The history command
// itself is not recorded.
func invocationFor(d *dispatchers.Dispatcher, res *dispatchers.Resolution, tokens []string, err error, elapsed time.Duration) (domain.Invocation, bool) {
	inv := domain.Invocation{
		Args:     tokens,
		Status:   domain.InvocationSucceeded,
		Duration: elapsed,
	}

	if res != nil {
		inv.ID = res.ID
		inv.Command = res.Command().Name()
		if len(tokens) > 0 {
			if cmd, ok := d.Command(tokens[0]); ok && cmd.Name() == inv.Command {
				inv.Args = tokens[1:]
			}
		}
	} else if len(tokens) > 0 {
		inv.Command = tokens[0]
		inv.Args = tokens[1:]
	}

	if inv.Command == "history" {
		return domain.Invocation{}, false
	}

	if err != nil {
		inv.Status = domain.InvocationFailed
		inv.Error = err.Error()
	}
	return inv, true
}

func exitCode(err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}
