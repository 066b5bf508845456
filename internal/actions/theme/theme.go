// Package theme implements the theme command: list the built-in color
// themes with a preview, or store one in the theme config key.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/shellshell/internal/dispatchers"
	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/ui/style"
	"github.com/footprint-tools/shellshell/internal/usage"
)

const (
	OpList = "list"
	OpSet  = "set"
)

// Command returns the action of the theme command. It reads the positional
// parameters op and name.
func Command(provider domain.ConfigProvider) dispatchers.Action {
	return func(res *dispatchers.Resolution) error {
		d := res.Dispatcher()
		deps := DefaultDeps(provider, d.Output(), d.Styler(), d.ProgramName())

		switch op := res.String("op", OpList); op {
		case OpList:
			return list(deps)
		case OpSet:
			return setTheme(res.String("name", ""), deps)
		default:
			return fmt.Errorf("theme: unknown operation %q (expected %s or %s)", op, OpList, OpSet)
		}
	}
}

func list(deps Deps) error {
	current, _ := deps.Get("theme")
	if current == "" {
		current = "default"
	}
	current = deps.ResolveName(current)

	_, _ = deps.Println("Available themes (* = current)")
	_, _ = deps.Println("")

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == current {
			marker = deps.Styler.Success("* ")
		}
		preview := ""
		if deps.Styler.Enabled() {
			preview = "  " + renderPreview(deps.Themes[name])
		}
		_, _ = deps.Printf("%s%-14s%s\n", marker, name, preview)
	}

	_, _ = deps.Println("")
	_, _ = deps.Printf("Use '%s theme set <name>' to change. A name without -dark or -light follows the terminal background.\n", deps.Program)
	return nil
}

// renderPreview returns colored samples of a theme's semantic colors.
func renderPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("warning ", cfg.Warning) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted", cfg.Muted)
}

func setTheme(name string, deps Deps) error {
	if name == "" {
		return usage.MissingMandatoryParameters([]string{"name"})
	}
	if !known(name, deps) {
		return fmt.Errorf("theme: unknown theme %q (available: %s)", name, strings.Join(deps.ThemeNames, ", "))
	}

	if err := deps.Set("theme", name); err != nil {
		return fmt.Errorf("theme: write config: %w", err)
	}

	_, _ = deps.Printf("theme set to %s\n", deps.Styler.Success(name))
	return nil
}

// known accepts a full variant name or a base name.
func known(name string, deps Deps) bool {
	if _, ok := deps.Themes[name]; ok {
		return true
	}
	for _, variant := range deps.ThemeNames {
		if variant == name+"-dark" || variant == name+"-light" {
			return true
		}
	}
	return false
}
