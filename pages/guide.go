package pages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stet.codes/styleguide/content"
	"stet.codes/styleguide/progress"
)

const (
	scrollDebounceInterval = 500 * time.Millisecond
	storeTimeout           = 2 * time.Second

	// guideChromeHeight is the number of window rows not available to the
	// viewport: frame padding, title bar and gap, indicator and error line,
	// help gap and help line.
	guideChromeHeight = 8
	minViewportHeight = 3
	defaultHeight     = 24
)

// PositionStore loads and saves reading positions.
type PositionStore interface {
	Load(ctx context.Context, documentID string) (progress.Position, error)
	Save(ctx context.Context, documentID string, pos progress.Position) error
}

// Message types for reading position persistence.
type positionLoadedMsg struct {
	pos progress.Position
}

type positionLoadFailedMsg struct {
	err error
}

type positionSavedMsg struct {
	pos progress.Position
}

type positionSaveFailedMsg struct {
	err error
}

type scrollDebounceTickMsg struct {
	version int
}

// guideKeyMap defines key bindings for the guide page.
type guideKeyMap struct {
	Scroll      key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Top         key.Binding
	Bottom      key.Binding
}

var guideKeys = guideKeyMap{
	Scroll: key.NewBinding(
		key.WithKeys("up", "down", "j", "k"),
		key.WithHelp("↑/↓", "scroll"),
	),
	NextSection: key.NewBinding(
		key.WithKeys("n", "]"),
		key.WithHelp("n", "next section"),
	),
	PrevSection: key.NewBinding(
		key.WithKeys("p", "["),
		key.WithHelp("p", "prev section"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
}

var (
	indicatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

// GuidePage shows the style guide in a scrollable viewport.
type GuidePage struct {
	cfg       Config
	doc       content.Document
	positions PositionStore

	view     View
	viewport viewport.Model
	sections paginator.Model

	ready         bool
	pending       *progress.Position // loaded before the first SetSize
	scrollVersion int
	lastSaved     progress.Position

	width  int
	height int
	err    error
}

// NewGuidePage creates the guide page. positions may be nil to disable
// reading position persistence.
func NewGuidePage(cfg Config, doc content.Document, positions PositionStore) *GuidePage {
	view := Render(cfg, doc, DefaultWidth)

	vp := viewport.New(DefaultWidth, defaultHeight-guideChromeHeight)
	vp.KeyMap.Left.SetEnabled(false)
	vp.KeyMap.Right.SetEnabled(false)
	vp.SetContent(view.Body)

	sections := paginator.New()
	sections.Type = paginator.Dots
	sections.ActiveDot = lipgloss.NewStyle().Foreground(cfg.Theme.Color()).Render("•")
	sections.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "238"}).Render("•")
	sections.KeyMap = paginator.KeyMap{
		PrevPage: guideKeys.PrevSection,
		NextPage: guideKeys.NextSection,
	}
	sections.SetTotalPages(doc.Len())

	return &GuidePage{
		cfg:       cfg,
		doc:       doc,
		positions: positions,
		view:      view,
		viewport:  vp,
		sections:  sections,
	}
}

func (p *GuidePage) ID() PageID {
	return GuidePageID
}

func (p *GuidePage) Title() Title {
	return Title{
		Text:  p.cfg.Title,
		Color: p.cfg.Theme.Color(),
	}
}

// TitleBar returns the title bar laid out for the current width.
func (p *GuidePage) TitleBar() string {
	return p.view.TitleBar
}

func (p *GuidePage) SetSize(width, height int) {
	p.width = width
	p.height = height

	contentWidth := max(width-DocStyle.GetHorizontalFrameSize(), 1)
	viewportHeight := max(height-guideChromeHeight, minViewportHeight)

	pos := p.position()
	if !p.ready && p.pending != nil {
		pos = *p.pending
		p.pending = nil
	}
	p.ready = true

	p.view = Render(p.cfg, p.doc, contentWidth)
	p.viewport.Width = contentWidth
	p.viewport.Height = viewportHeight
	p.viewport.SetContent(p.view.Body)
	p.restore(pos)
}

// InitCmd loads the saved reading position.
func (p *GuidePage) InitCmd() tea.Cmd {
	if p.positions == nil {
		return nil
	}
	return loadPositionCmd(p.positions, p.doc.ID())
}

// FlushCmd saves the current position if it changed since the last save.
func (p *GuidePage) FlushCmd() tea.Cmd {
	if p.positions == nil {
		return nil
	}
	pos := p.position()
	if samePosition(pos, p.lastSaved) {
		return nil
	}
	return savePositionCmd(p.positions, p.doc.ID(), pos)
}

func (p *GuidePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case positionLoadedMsg:
		p.lastSaved = msg.pos
		if p.ready {
			// The reader already moved; their position wins.
			if p.scrollVersion == 0 {
				p.restore(msg.pos)
			}
		} else {
			pos := msg.pos
			p.pending = &pos
		}
		return p, nil

	case positionLoadFailedMsg:
		p.err = msg.err
		return p, nil

	case positionSavedMsg:
		p.lastSaved = msg.pos
		return p, nil

	case positionSaveFailedMsg:
		p.err = msg.err
		return p, nil

	case scrollDebounceTickMsg:
		if msg.version != p.scrollVersion {
			return p, nil
		}
		return p, p.FlushCmd()

	case tea.KeyMsg:
		return p.handleKeyMsg(msg)
	}

	// Mouse wheel and anything else the viewport understands.
	prevOffset := p.viewport.YOffset
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	if p.viewport.YOffset != prevOffset {
		p.syncSection()
		return p, tea.Batch(cmd, p.scrolled())
	}
	return p, cmd
}

func (p *GuidePage) handleKeyMsg(msg tea.KeyMsg) (Page, tea.Cmd) {
	prevOffset := p.viewport.YOffset
	prevSection := p.sections.Page

	var cmds []tea.Cmd
	switch {
	case key.Matches(msg, guideKeys.Top):
		p.viewport.GotoTop()
		p.syncSection()
	case key.Matches(msg, guideKeys.Bottom):
		p.viewport.GotoBottom()
		p.syncSection()
	default:
		var pageCmd tea.Cmd
		p.sections, pageCmd = p.sections.Update(msg)
		cmds = append(cmds, pageCmd)

		if p.sections.Page != prevSection {
			// Jumped: the chosen section stays active even if the viewport
			// cannot scroll its heading all the way to the top.
			p.viewport.SetYOffset(p.view.Offsets[p.sections.Page])
		} else {
			var vpCmd tea.Cmd
			p.viewport, vpCmd = p.viewport.Update(msg)
			cmds = append(cmds, vpCmd)
			p.syncSection()
		}
	}

	if p.viewport.YOffset != prevOffset || p.sections.Page != prevSection {
		cmds = append(cmds, p.scrolled())
	}
	return p, tea.Batch(cmds...)
}

// scrolled restarts the save debounce.
func (p *GuidePage) scrolled() tea.Cmd {
	if p.positions == nil {
		return nil
	}
	p.scrollVersion++
	return startScrollDebounceCmd(p.scrollVersion)
}

func (p *GuidePage) syncSection() {
	p.sections.Page = p.view.SectionAt(p.viewport.YOffset)
}

// position reports the active section and how far below its heading the
// viewport top is. Relative offsets survive re-wrapping at a new width.
func (p *GuidePage) position() progress.Position {
	s := p.sections.Page
	if s < 0 || s >= len(p.view.Offsets) {
		return progress.Position{}
	}
	return progress.Position{
		Section: s,
		YOffset: max(p.viewport.YOffset-p.view.Offsets[s], 0),
	}
}

func (p *GuidePage) restore(pos progress.Position) {
	s := pos.Section
	if s < 0 || s >= len(p.view.Offsets) {
		return
	}
	y := p.view.Offsets[s] + max(pos.YOffset, 0)
	if s+1 < len(p.view.Offsets) {
		y = min(y, p.view.Offsets[s+1]-1)
	}
	p.viewport.SetYOffset(y)
	p.sections.Page = s
}

func (p *GuidePage) KeyMap() []key.Binding {
	return []key.Binding{
		guideKeys.Scroll,
		guideKeys.NextSection,
		guideKeys.PrevSection,
		guideKeys.Top,
		guideKeys.Bottom,
	}
}

func (p *GuidePage) View() string {
	var b strings.Builder

	b.WriteString(p.viewport.View())
	b.WriteString("\n")

	// Section dots, active section title and scroll percentage
	active := p.view.SectionTitles[p.sections.Page]
	scrollPercent := int(p.viewport.ScrollPercent() * 100)
	b.WriteString(p.sections.View())
	b.WriteString("  ")
	b.WriteString(indicatorStyle.Render(fmt.Sprintf("%s · %d%%", active, scrollPercent)))

	if p.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", p.err)))
	}

	return b.String()
}

func samePosition(a, b progress.Position) bool {
	return a.Section == b.Section && a.YOffset == b.YOffset
}

// Store commands

func loadPositionCmd(store PositionStore, documentID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		pos, err := store.Load(ctx, documentID)
		if err != nil {
			return positionLoadFailedMsg{err: err}
		}
		return positionLoadedMsg{pos: pos}
	}
}

func savePositionCmd(store PositionStore, documentID string, pos progress.Position) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if err := store.Save(ctx, documentID, pos); err != nil {
			return positionSaveFailedMsg{err: err}
		}
		return positionSavedMsg{pos: pos}
	}
}

func startScrollDebounceCmd(version int) tea.Cmd {
	return tea.Tick(scrollDebounceInterval, func(t time.Time) tea.Msg {
		return scrollDebounceTickMsg{version: version}
	})
}
