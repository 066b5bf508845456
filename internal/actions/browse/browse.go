// Package browse implements an interactive terminal browser over the
// registered commands, their parameters and switches.
package browse

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/shellshell/internal/dispatchers"
	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/ui/style"
)

type Deps struct {
	IsTerminal func() bool
	Run        func(tea.Model) error
	Colors     style.ColorConfig
}

func DefaultDeps(styler domain.Styler) Deps {
	return Deps{
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		Run: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
			return err
		},
		Colors: style.ColorsOf(styler),
	}
}

// ErrNotInteractive is returned when stdin or stdout is not a terminal.
var ErrNotInteractive = errors.New("browse requires an interactive terminal; use help instead")

func Browse(res *dispatchers.Resolution) error {
	d := res.Dispatcher()
	return browse(d, DefaultDeps(d.Styler()))
}

func browse(d *dispatchers.Dispatcher, deps Deps) error {
	if !deps.IsTerminal() {
		return ErrNotInteractive
	}

	items := buildSidebarItems(d.CommandGroups())
	return deps.Run(newModel(items, d.RenderCommandHelp, deps.Colors))
}
