package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tokwalk/internal/source"
	"tokwalk/internal/unit"
	"tokwalk/internal/walk"
)

type keyMap struct {
	Back    key.Binding
	Forward key.Binding
	Home    key.Binding
	Quit    key.Binding
}

var defaultKeys = keyMap{
	Back: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous token"),
	),
	Forward: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next token"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first token"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type exploreModel struct {
	fs    *source.FileSet
	unit  *unit.Unit
	cur   walk.Cursor
	keys  keyMap
	width int
	atEnd bool
	done  bool
}

// NewExploreModel returns a Bubble Tea model that walks the unit's token
// stream under arrow keys. The model owns the cursor and closes it when
// the program quits.
func NewExploreModel(fs *source.FileSet, u *unit.Unit) tea.Model {
	cur := walk.New(u, source.Loc{File: u.File().ID, Off: 0})
	return &exploreModel{
		fs:    fs,
		unit:  u,
		cur:   cur,
		keys:  defaultKeys,
		width: 80,
	}
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			m.cur.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.stepBack()
			return m, nil
		case key.Matches(msg, m.keys.Forward):
			m.stepForward()
			return m, nil
		case key.Matches(msg, m.keys.Home):
			m.cur.Close()
			m.cur = walk.New(m.unit, source.Loc{File: m.unit.File().ID, Off: 0})
			m.atEnd = false
			return m, nil
		}
	}
	return m, nil
}

func (m *exploreModel) stepBack() {
	if !m.cur.Valid() || m.cur.Extent().Start == 0 {
		return
	}
	m.cur.Retreat()
	m.atEnd = false
}

// stepForward advances a probe clone first, so the live cursor never turns
// into a sentinel: the last token is the far edge of the walk.
func (m *exploreModel) stepForward() {
	if !m.cur.Valid() {
		return
	}
	probe := m.cur.Clone()
	probe.Advance()
	if !probe.Valid() {
		probe.Close()
		m.atEnd = true
		return
	}
	m.cur.Close()
	m.cur = probe
}

var (
	exploreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	exploreLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	exploreTokenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3"))
	exploreEdgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	exploreHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m *exploreModel) View() string {
	if m.done {
		return ""
	}
	file := m.unit.File()

	var b strings.Builder
	b.WriteString(exploreTitleStyle.Render(truncate(file.Path, m.width)))
	b.WriteString("\n\n")

	if !m.cur.Valid() {
		b.WriteString("  (no tokens)\n")
		b.WriteString("\n" + exploreHelpStyle.Render(helpLine(m.keys)) + "\n")
		return b.String()
	}

	h := m.cur.Handle()
	span := m.cur.Extent()
	startPos, endPos := m.fs.Resolve(span)

	fmt.Fprintf(&b, "  %s %s\n", exploreLabelStyle.Render("kind:"), m.unit.KindOf(h))
	fmt.Fprintf(&b, "  %s %q\n", exploreLabelStyle.Render("text:"), m.unit.TextOf(h))
	fmt.Fprintf(&b, "  %s %d:%d-%d:%d (bytes %d-%d)\n",
		exploreLabelStyle.Render("span:"),
		startPos.Line, startPos.Col, endPos.Line, endPos.Col,
		span.Start, span.End)
	b.WriteString("\n")

	b.WriteString(renderSourceLine(file, startPos, endPos, m.width))

	if m.atEnd {
		b.WriteString("\n" + exploreEdgeStyle.Render("  end of stream") + "\n")
	}
	b.WriteString("\n" + exploreHelpStyle.Render(helpLine(m.keys)) + "\n")
	return b.String()
}

// renderSourceLine shows the token's first line with the token itself
// highlighted. Multi-line tokens highlight to the end of the line.
func renderSourceLine(file *source.File, startPos, endPos source.LineCol, width int) string {
	line := file.GetLine(startPos.Line)
	gutter := fmt.Sprintf("%4d | ", startPos.Line)

	from := int(startPos.Col) - 1
	to := len(line)
	if endPos.Line == startPos.Line {
		to = int(endPos.Col) - 1
	}
	if from > len(line) {
		from = len(line)
	}
	if to > len(line) {
		to = len(line)
	}
	if to < from {
		to = from
	}

	// Truncate the raw line before styling: runewidth cannot measure a
	// string that already carries ANSI escapes.
	avail := width - len(gutter)
	if avail > 0 && runewidth.StringWidth(line) > avail {
		cut := truncate(line, avail)
		if to > len(cut) {
			to = len(cut)
		}
		if from > len(cut) {
			from = len(cut)
		}
		line = cut
	}

	rendered := line[:from] + exploreTokenStyle.Render(line[from:to]) + line[to:]
	return gutter + rendered + "\n"
}

func helpLine(keys keyMap) string {
	parts := make([]string, 0, 4)
	for _, b := range []key.Binding{keys.Back, keys.Forward, keys.Home, keys.Quit} {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return "  " + strings.Join(parts, " • ")
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
