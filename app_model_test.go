package main

import (
	"context"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stet.codes/styleguide/content"
	"stet.codes/styleguide/pages"
	"stet.codes/styleguide/progress"
)

type memoryPositions struct {
	saved map[string]progress.Position
}

func (m *memoryPositions) Load(ctx context.Context, documentID string) (progress.Position, error) {
	return m.saved[documentID], nil
}

func (m *memoryPositions) Save(ctx context.Context, documentID string, pos progress.Position) error {
	m.saved[documentID] = pos
	return nil
}

func newTestApp(positions pages.PositionStore) AppModel {
	cfg := pages.Config{Title: "Effective Dart Style", Theme: pages.ThemeBlue}
	doc := content.NewDocument("test",
		content.NewSection("Style", content.Text("Name types using UpperCamelCase.")),
		content.NewSection("Usage", content.Text("Prefer collection literals.")),
		content.NewSection("Design", content.Text("Use terms consistently.")),
	)
	return NewAppModel(pages.NewGuidePage(cfg, doc, positions))
}

func resize(t *testing.T, m AppModel, width, height int) AppModel {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return next.(AppModel)
}

func TestAppModel_ViewShowsTitleAndSectionsInOrder(t *testing.T) {
	m := resize(t, newTestApp(nil), 80, 40)

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.Greater(t, len(lines), 1)
	assert.Equal(t, "Effective Dart Style", strings.TrimSpace(lines[1]))

	// Headings occupy whole lines; the frame pads each line to the window.
	var headings []string
	for _, line := range lines {
		switch title := strings.TrimSpace(line); title {
		case "Style", "Usage", "Design":
			headings = append(headings, title)
		}
	}
	assert.Equal(t, []string{"Style", "Usage", "Design"}, headings)
}

func TestAppModel_TitleBarComesFromRenderedView(t *testing.T) {
	cfg := pages.Config{Title: "Effective Dart Style", Theme: pages.ThemeGreen}
	doc := content.NewDocument("test", content.NewSection("Style", content.Text("Body.")))
	page := pages.NewGuidePage(cfg, doc, nil)
	m := resize(t, NewAppModel(page), 60, 24)

	want := pages.Render(cfg, doc, 60-docStyle.GetHorizontalFrameSize()).TitleBar
	assert.Equal(t, want, page.TitleBar())
	assert.Equal(t, want, m.renderTitle())
}

func TestAppModel_QuitKeys(t *testing.T) {
	m := resize(t, newTestApp(nil), 80, 24)

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, msg.String())
		assert.IsType(t, tea.QuitMsg{}, cmd(), msg.String())
	}
}

// runSequence executes the steps of a tea.Sequence command in order and
// returns the messages they produce.
func runSequence(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	seq := reflect.ValueOf(cmd())
	require.Equal(t, reflect.Slice, seq.Kind(), "expected a sequence of commands")

	var msgs []tea.Msg
	for i := 0; i < seq.Len(); i++ {
		step, ok := seq.Index(i).Interface().(tea.Cmd)
		require.True(t, ok)
		if step != nil {
			msgs = append(msgs, step())
		}
	}
	return msgs
}

func TestAppModel_QuitFlushesPosition(t *testing.T) {
	positions := &memoryPositions{saved: map[string]progress.Position{}}
	m := resize(t, newTestApp(positions), 80, 12)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = next.(AppModel)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)

	msgs := runSequence(t, cmd)
	require.Len(t, msgs, 2)
	assert.IsType(t, tea.QuitMsg{}, msgs[1])

	saved, ok := positions.saved["test"]
	require.True(t, ok)
	assert.Equal(t, 1, saved.Section)
	assert.Equal(t, 0, saved.YOffset)
}

func TestAppModel_InitLoadsPosition(t *testing.T) {
	positions := &memoryPositions{saved: map[string]progress.Position{}}
	m := newTestApp(positions)

	assert.NotNil(t, m.Init())
	assert.Nil(t, newTestApp(nil).Init())
}

func TestAppModel_TitleIsTruncatedToWindow(t *testing.T) {
	m := resize(t, newTestApp(nil), 16, 24)

	title := ansi.Strip(m.renderTitle())
	assert.LessOrEqual(t, ansi.StringWidth(title), 16-docStyle.GetHorizontalFrameSize())
	assert.Contains(t, title, "…")
}
