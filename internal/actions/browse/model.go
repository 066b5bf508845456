package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/shellshell/internal/dispatchers"
	"github.com/footprint-tools/shellshell/internal/ui/splitpanel"
	"github.com/footprint-tools/shellshell/internal/ui/style"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	footerHeight  = 1
)

var layoutConfig = splitpanel.Config{
	SidebarWidthPercent: 0.25,
	SidebarMinWidth:     22,
	SidebarMaxWidth:     34,
}

type sidebarItem struct {
	Label   string
	Heading bool
	Command *dispatchers.Command
}

func buildSidebarItems(groups []dispatchers.CommandGroup) []sidebarItem {
	var items []sidebarItem
	for _, g := range groups {
		items = append(items, sidebarItem{Label: strings.ToUpper(g.Heading), Heading: true})
		for _, cmd := range g.Commands {
			label := cmd.Name()
			if aliases := cmd.Aliases(); len(aliases) > 0 {
				label += " (" + strings.Join(aliases, ", ") + ")"
			}
			items = append(items, sidebarItem{Label: label, Command: cmd})
		}
	}
	return items
}

type model struct {
	items        []sidebarItem
	cursor       int
	scroll       int
	focusContent bool

	width  int
	height int

	render   func(*dispatchers.Command) string
	viewport viewport.Model
	keys     keyMap
	help     help.Model
	colors   style.ColorConfig
}

func newModel(items []sidebarItem, render func(*dispatchers.Command) string, colors style.ColorConfig) model {
	m := model{
		items:    items,
		render:   render,
		viewport: viewport.New(defaultWidth, defaultHeight),
		keys:     defaultKeyMap(),
		help:     help.New(),
		colors:   colors,
	}
	m.cursor = m.firstSelectable()
	m.resize(defaultWidth, defaultHeight)
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize(m.width, m.height)
			return m, nil

		case key.Matches(msg, m.keys.Focus):
			m.focusContent = !m.focusContent
			return m, nil

		case key.Matches(msg, m.keys.PageUp):
			m.viewport.HalfViewUp()
			return m, nil

		case key.Matches(msg, m.keys.PageDown):
			m.viewport.HalfViewDown()
			return m, nil
		}

		if m.focusContent {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.First):
			m.cursor = m.firstSelectable()
			m.refreshContent()
		case key.Matches(msg, m.keys.Last):
			m.cursor = m.lastSelectable()
			m.refreshContent()
		}
	}

	return m, nil
}

// moveCursor steps over headings and wraps around at either end.
func (m *model) moveCursor(delta int) {
	if m.firstSelectable() < 0 {
		return
	}
	next := m.cursor
	for {
		next = (next + delta + len(m.items)) % len(m.items)
		if !m.items[next].Heading {
			break
		}
	}
	m.cursor = next
	m.refreshContent()
}

func (m model) firstSelectable() int {
	for i, item := range m.items {
		if !item.Heading {
			return i
		}
	}
	return -1
}

func (m model) lastSelectable() int {
	for i := len(m.items) - 1; i >= 0; i-- {
		if !m.items[i].Heading {
			return i
		}
	}
	return -1
}

func (m model) selected() *dispatchers.Command {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return m.items[m.cursor].Command
}

func (m *model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	layout := splitpanel.NewLayout(width, layoutConfig, m.colors)
	m.viewport.Width = max(layout.MainContentWidth(), 1)
	m.viewport.Height = max(m.mainHeight()-2, 1)
	m.refreshContent()
}

// refreshContent shows the selected command and keeps it inside the
// sidebar's visible window.
func (m *model) refreshContent() {
	visible := max(m.mainHeight()-2, 1)
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
	m.scroll = max(m.scroll, 0)

	cmd := m.selected()
	if cmd == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.render(cmd))
	m.viewport.GotoTop()
}

func (m model) mainHeight() int {
	footer := footerHeight
	if m.help.ShowAll {
		footer = len(m.keys.FullHelp()[0])
	}
	return max(m.height-footer, 3)
}

func (m model) View() string {
	layout := splitpanel.NewLayout(m.width, layoutConfig, m.colors)
	layout.SetFocus(!m.focusContent)

	height := m.mainHeight()
	sidebar := m.sidebarPanel(height - 2)
	content := splitpanel.Panel{
		Lines:      strings.Split(m.viewport.View(), "\n"),
		ScrollPos:  m.viewport.YOffset,
		TotalItems: max(m.viewport.TotalLineCount(), m.viewport.Height),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		layout.Render(sidebar, content, height),
		m.help.View(m.keys),
	)
}

func (m model) sidebarPanel(visible int) splitpanel.Panel {
	heading := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted)).Bold(true)
	current := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Info)).Bold(true)

	var lines []string
	for i := m.scroll; i < len(m.items) && len(lines) < visible; i++ {
		item := m.items[i]
		switch {
		case item.Heading:
			lines = append(lines, heading.Render(item.Label))
		case i == m.cursor:
			lines = append(lines, current.Render("▸ "+item.Label))
		default:
			lines = append(lines, "  "+item.Label)
		}
	}

	return splitpanel.Panel{Lines: lines, ScrollPos: m.scroll, TotalItems: len(m.items)}
}
