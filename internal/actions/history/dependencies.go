package history

import (
	"time"

	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/format"
)

type Deps struct {
	Recent     func(int) ([]domain.Invocation, error)
	Clear      func() (int64, error)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	FormatTime func(time.Time) string
	Styler     domain.Styler
}

func DefaultDeps(hs domain.HistoryStore, out domain.OutputWriter, styler domain.Styler) Deps {
	return Deps{
		Recent:     hs.Recent,
		Clear:      hs.Clear,
		Printf:     out.Printf,
		Println:    out.Println,
		FormatTime: format.DateTime,
		Styler:     styler,
	}
}
