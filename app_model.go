package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"stet.codes/styleguide/pages"
)

// flusher is an optional interface for pages with unsaved state to write
// out before the program quits.
type flusher interface {
	FlushCmd() tea.Cmd
}

// titleBarer is an optional interface for pages that lay out their own
// title bar.
type titleBarer interface {
	TitleBar() string
}

var quitKey = key.NewBinding(
	key.WithKeys("ctrl+c", "q"),
	key.WithHelp("q", "quit"),
)

// AppModel is the root Bubble Tea model. It mounts a single page.
type AppModel struct {
	page   pages.Page
	help   help.Model
	width  int
	height int
}

// NewAppModel creates the application model around its only page.
func NewAppModel(page pages.Page) AppModel {
	h := help.New()
	h.ShortSeparator = " · "

	return AppModel{
		page: page,
		help: h,
	}
}

// renderTitle renders the header title for the page.
func (m AppModel) renderTitle() string {
	if tb, ok := m.page.(titleBarer); ok {
		return tb.TitleBar()
	}
	width := pages.DefaultWidth
	if m.width > 0 {
		width = m.width - docStyle.GetHorizontalFrameSize()
	}
	return pages.RenderTitleBar(m.page.Title(), width)
}

func (m AppModel) Init() tea.Cmd {
	if pi, ok := m.page.(pages.PageInitializer); ok {
		return pi.InitCmd()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(m.width-docStyle.GetHorizontalFrameSize(), 0)
		m.page.SetSize(m.width, m.height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			if f, ok := m.page.(flusher); ok {
				if cmd := f.FlushCmd(); cmd != nil {
					return m, tea.Sequence(cmd, tea.Quit)
				}
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	var b strings.Builder

	// View title
	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	// View contents from the page
	b.WriteString(m.page.View())
	b.WriteString("\n\n")

	// Key help
	bindings := append(m.page.KeyMap(), quitKey)
	b.WriteString(m.help.ShortHelpView(bindings))

	// Size the outer container to exactly match the terminal window.
	s := docStyle
	if m.width > 0 {
		s = s.Width(m.width)
	}
	if m.height > 0 {
		s = s.Height(m.height)
	}
	return s.Render(b.String())
}
