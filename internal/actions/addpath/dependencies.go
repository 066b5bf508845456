package addpath

import (
	"os"
	"runtime"

	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/paths"
)

type Deps struct {
	ExecutableDir func() (string, error)
	Getenv        func(string) string
	GOOS          string
	Printf        func(string, ...any) (int, error)
	Styler        domain.Styler
}

func DefaultDeps(out domain.OutputWriter, styler domain.Styler) Deps {
	return Deps{
		ExecutableDir: paths.ExecutableDir,
		Getenv:        os.Getenv,
		GOOS:          runtime.GOOS,
		Printf:        out.Printf,
		Styler:        styler,
	}
}
