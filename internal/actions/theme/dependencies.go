package theme

import (
	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/ui/style"
)

type Deps struct {
	Get         func(string) (string, bool)
	Set         func(string, string) error
	Printf      func(string, ...any) (int, error)
	Println     func(...any) (int, error)
	ResolveName func(string) string
	ThemeNames  []string
	Themes      map[string]style.ColorConfig
	Styler      domain.Styler
	Program     string
}

func DefaultDeps(provider domain.ConfigProvider, out domain.OutputWriter, styler domain.Styler, program string) Deps {
	return Deps{
		Get:         provider.Get,
		Set:         provider.Set,
		Printf:      out.Printf,
		Println:     out.Println,
		ResolveName: style.ResolveThemeName,
		ThemeNames:  style.ThemeNames(),
		Themes:      style.Themes,
		Styler:      styler,
		Program:     program,
	}
}
