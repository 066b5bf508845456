// Package style renders semantic terminal styles (success, warning, error,
// info, muted, header) with lipgloss. It is the only package that picks
// colors; everything else goes through domain.Styler.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/footprint-tools/shellshell/internal/domain"
)

// Styler implements domain.Styler for one color configuration.
type Styler struct {
	enabled bool
	colors  ColorConfig

	success lipgloss.Style
	warning lipgloss.Style
	danger  lipgloss.Style
	info    lipgloss.Style
	muted   lipgloss.Style
	header  lipgloss.Style
}

// New returns a Styler for the theme and color keys in cfg. A nil cfg uses
// the default theme. NO_COLOR or SHELLSHELL_NO_COLOR, set to anything,
// disable styling whatever enable says.
func New(enable bool, cfg map[string]string) *Styler {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("SHELLSHELL_NO_COLOR") != "" {
		enable = false
	}
	if !enable {
		return &Styler{}
	}

	colors := LoadColorConfig(cfg)
	r := lipgloss.NewRenderer(os.Stdout)
	// 256 colors regardless of TTY detection: output may be paged.
	r.SetColorProfile(termenv.ANSI256)

	return &Styler{
		enabled: true,
		colors:  colors,
		success: makeStyle(r, colors.Success),
		warning: makeStyle(r, colors.Warning),
		danger:  makeStyle(r, colors.Error),
		info:    makeStyle(r, colors.Info),
		muted:   makeStyle(r, colors.Muted),
		header:  makeStyle(r, colors.Header),
	}
}

// makeStyle reads "bold" or an ANSI color number (0-255).
func makeStyle(r *lipgloss.Renderer, value string) lipgloss.Style {
	if value == "bold" {
		return r.NewStyle().Bold(true)
	}
	return r.NewStyle().Foreground(lipgloss.Color(value))
}

// Colors returns the active configuration, empty when styling is off.
func (s *Styler) Colors() ColorConfig { return s.colors }

func (s *Styler) Enabled() bool { return s.enabled }

func (s *Styler) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func (s *Styler) Success(text string) string { return s.render(s.success, text) }
func (s *Styler) Warning(text string) string { return s.render(s.warning, text) }
func (s *Styler) Error(text string) string   { return s.render(s.danger, text) }
func (s *Styler) Info(text string) string    { return s.render(s.info, text) }
func (s *Styler) Muted(text string) string   { return s.render(s.muted, text) }
func (s *Styler) Header(text string) string  { return s.render(s.header, text) }

// ColorsOf returns the colors behind a domain.Styler, or the zero config
// for stylers that are not a *Styler.
func ColorsOf(s domain.Styler) ColorConfig {
	if st, ok := s.(*Styler); ok {
		return st.Colors()
	}
	return ColorConfig{}
}

// NopStyler returns text unchanged.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }

var (
	_ domain.Styler = (*Styler)(nil)
	_ domain.Styler = NopStyler{}
)
