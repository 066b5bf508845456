package completions

import (
	"github.com/footprint-tools/shellshell/internal/completions"
	"github.com/footprint-tools/shellshell/internal/domain"
)

type Deps struct {
	DetectShell     func() (completions.Shell, bool)
	Generate        func(completions.Shell, completions.Script) (string, error)
	Install         func(completions.Shell, completions.Script) (string, error)
	AutoInstallPath func(completions.Shell, string) string
	BinaryPath      func(string) string
	Printf          func(string, ...any) (int, error)
	Println         func(...any) (int, error)
	Styler          domain.Styler
}

func DefaultDeps(out domain.OutputWriter, styler domain.Styler) Deps {
	return Deps{
		DetectShell:     completions.DetectShell,
		Generate:        completions.Generate,
		Install:         completions.Install,
		AutoInstallPath: completions.AutoInstallPath,
		BinaryPath:      completions.BinaryPath,
		Printf:          out.Printf,
		Println:         out.Println,
		Styler:          styler,
	}
}
