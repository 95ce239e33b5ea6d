package pages

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"stet.codes/styleguide/content"
)

// DefaultWidth is the layout width used when none is known yet.
const DefaultWidth = 80

const ellipsis = "…"

var (
	titleBarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	proseStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"})

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("#555555")).
			PaddingLeft(1)

	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

// View is a fully laid out guide page.
type View struct {
	// Title is the plain title bar text.
	Title string
	// TitleBar is Title styled with the theme color.
	TitleBar string
	// SectionTitles lists section titles in display order.
	SectionTitles []string
	// Offsets holds the body line where each section's heading starts.
	Offsets []int
	// Body is the scrollable region content.
	Body string
}

// LineCount returns the number of lines in Body.
func (v View) LineCount() int {
	if v.Body == "" {
		return 0
	}
	return strings.Count(v.Body, "\n") + 1
}

// SectionAt returns the index of the section shown at body line y.
func (v View) SectionAt(y int) int {
	idx := 0
	for i, off := range v.Offsets {
		if off > y {
			break
		}
		idx = i
	}
	return idx
}

// Render lays out doc for a content area width cells wide.
// It has no side effects: identical inputs produce identical Views.
func Render(cfg Config, doc content.Document, width int) View {
	if width <= 0 {
		width = DefaultWidth
	}

	v := View{
		Title:         cfg.Title,
		TitleBar:      RenderTitleBar(Title{Text: cfg.Title, Color: cfg.Theme.Color()}, width),
		SectionTitles: doc.Titles(),
		Offsets:       make([]int, 0, doc.Len()),
	}

	headingStyle := lipgloss.NewStyle().Bold(true).Foreground(cfg.Theme.Color())

	var lines []string
	for i, section := range doc.Sections() {
		if i > 0 {
			lines = append(lines, "")
		}
		v.Offsets = append(v.Offsets, len(lines))

		heading := ansi.Truncate(section.Title(), width, ellipsis)
		lines = append(lines,
			headingStyle.Render(heading),
			dividerStyle.Render(strings.Repeat("─", min(width, max(lipgloss.Width(heading), 1)))),
		)

		for _, block := range section.Blocks() {
			lines = append(lines, "")
			lines = append(lines, renderBlock(block, width)...)
		}
	}

	v.Body = strings.Join(lines, "\n")
	return v
}

// RenderTitleBar renders t on its color, truncated to fit width cells.
func RenderTitleBar(t Title, width int) string {
	limit := max(width-titleBarStyle.GetHorizontalFrameSize(), 1)
	return titleBarStyle.
		Background(t.Color).
		Render(ansi.Truncate(t.Text, limit, ellipsis))
}

func renderBlock(b content.Block, width int) []string {
	switch b.Kind {
	case content.CodeBlock:
		inner := max(width-codeStyle.GetHorizontalFrameSize(), 1)
		src := strings.Split(strings.TrimRight(b.Text, "\n"), "\n")
		for i, line := range src {
			src[i] = ansi.Truncate(line, inner, ellipsis)
		}
		return strings.Split(codeStyle.Render(strings.Join(src, "\n")), "\n")
	default:
		wrapped := ansi.Wrap(b.Text, width, "")
		return strings.Split(proseStyle.Render(wrapped), "\n")
	}
}
