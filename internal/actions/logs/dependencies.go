package logs

import (
	"os"

	"github.com/footprint-tools/shellshell/internal/domain"
)

type Deps struct {
	LogPath   string
	Println   func(...any) (int, error)
	ReadFile  func(string) ([]byte, error)
	WriteFile func(string, []byte, os.FileMode) error
	Stat      func(string) (os.FileInfo, error)
	OpenFile  func(string, int, os.FileMode) (*os.File, error)
	Styler    domain.Styler
}

func DefaultDeps(logPath string, out domain.OutputWriter, styler domain.Styler) Deps {
	return Deps{
		LogPath:   logPath,
		Println:   out.Println,
		ReadFile:  os.ReadFile,
		WriteFile: os.WriteFile,
		Stat:      os.Stat,
		OpenFile:  os.OpenFile,
		Styler:    styler,
	}
}
