// Package splitpanel renders a bordered two-pane layout: a narrow sidebar
// and a main content pane, each with its own scrollbar.
package splitpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/shellshell/internal/ui/style"
)

// chrome is the horizontal space a pane spends on border, padding and scrollbar.
const chrome = 6

// Panel is the visible content of one pane.
type Panel struct {
	Lines      []string // already scrolled to the visible window
	ScrollPos  int
	TotalItems int // zero means len(Lines)
}

// Config bounds the sidebar width.
type Config struct {
	SidebarWidthPercent float64
	SidebarMinWidth     int
	SidebarMaxWidth     int
}

// Layout holds the computed pane widths for one terminal width.
type Layout struct {
	Width        int
	SidebarWidth int
	ContentWidth int
	FocusSidebar bool
	Colors       style.ColorConfig
}

func NewLayout(width int, cfg Config, colors style.ColorConfig) *Layout {
	sidebarWidth := int(float64(width) * cfg.SidebarWidthPercent)
	sidebarWidth = max(sidebarWidth, cfg.SidebarMinWidth)
	sidebarWidth = min(sidebarWidth, cfg.SidebarMaxWidth)

	return &Layout{
		Width:        width,
		SidebarWidth: sidebarWidth,
		ContentWidth: width - sidebarWidth,
		FocusSidebar: true,
		Colors:       colors,
	}
}

func (l *Layout) SetFocus(focusSidebar bool) {
	l.FocusSidebar = focusSidebar
}

// Render draws both panes side by side, height rows tall.
func (l *Layout) Render(sidebar, content Panel, height int) string {
	active := lipgloss.Color(l.Colors.UIActive)
	dim := lipgloss.Color(l.Colors.UIDim)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		buildPanel(sidebar, l.SidebarWidth, height, l.FocusSidebar, active, dim),
		buildPanel(content, l.ContentWidth, height, !l.FocusSidebar, active, dim),
	)
}

func buildPanel(panel Panel, width, height int, focused bool, active, dim lipgloss.Color) string {
	contentWidth := max(width-chrome, 1)
	visibleHeight := max(height-2, 1)

	lines := panel.Lines
	if len(lines) > visibleHeight {
		lines = lines[:visibleHeight]
	}
	for len(lines) < visibleHeight {
		lines = append(lines, "")
	}

	total := panel.TotalItems
	if total == 0 {
		total = len(panel.Lines)
	}
	scrollbar := BuildScrollbar(visibleHeight, total, panel.ScrollPos, active, dim, focused)

	rows := make([]string, 0, len(lines))
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w > contentWidth {
			line = truncate(line, contentWidth)
		} else if w < contentWidth {
			line += strings.Repeat(" ", contentWidth-w)
		}

		bar := " "
		if i < len(scrollbar) {
			bar = scrollbar[i]
		}
		rows = append(rows, line+" "+bar)
	}

	border := dim
	if focused {
		border = active
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
}

// truncate shortens s to maxWidth cells with an ellipsis.
func truncate(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes); i > 0; i-- {
		candidate := string(runes[:i])
		if lipgloss.Width(candidate) <= maxWidth-3 {
			return candidate + "..."
		}
	}
	return "..."
}

// SidebarContentWidth is the usable text width of the sidebar.
func (l *Layout) SidebarContentWidth() int {
	return l.SidebarWidth - chrome
}

// MainContentWidth is the usable text width of the content pane.
func (l *Layout) MainContentWidth() int {
	return l.ContentWidth - chrome
}
