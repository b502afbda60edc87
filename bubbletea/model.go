// Package bubbletea implements the interactive selection UI using the
// bubbletea framework. The model owns no domain logic: it dispatches
// toggle operations to the document and re-reads the summary after
// every mutation.
package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffshot"
)

// ExportFunc renders the document's current selection with the
// session's current display options and writes it somewhere, returning
// a user-visible confirmation message.
type ExportFunc func(doc *diffshot.Document, opts diffshot.RenderOptions) (string, error)

// row addresses one visible line of the selection list: a file row
// (hunk == -1) or a hunk row.
type row struct {
	file int
	hunk int
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	None    key.Binding
	Dark    key.Binding
	Numbers key.Binding
	Export  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		All:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		None:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "select none")),
		Dark:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode")),
		Numbers: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "line numbers")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type styles struct {
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Path     lipgloss.Style
	Hunk     lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style
	Error    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Title:    r.NewStyle().Bold(true),
		Cursor:   r.NewStyle().Foreground(lipgloss.Color("212")),
		Path:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Hunk:     r.NewStyle().Foreground(lipgloss.Color("245")),
		Selected: r.NewStyle().Foreground(lipgloss.Color("42")),
		Dim:      r.NewStyle().Foreground(lipgloss.Color("241")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// Option configures a Model.
type Option func(*Model)

// WithExport wires the export action.
func WithExport(fn ExportFunc) Option {
	return func(m *Model) { m.export = fn }
}

// WithRenderer sets the lipgloss renderer, which tests use to pin the
// color profile.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) { m.styles = newStyles(r) }
}

// WithOptions sets the initial display options; the d and l keys flip
// them during the session.
func WithOptions(opts diffshot.RenderOptions) Option {
	return func(m *Model) { m.opts = opts }
}

// Model is the bubbletea model for interactive hunk selection.
type Model struct {
	doc         *diffshot.Document
	rows        []row
	cursor      int
	viewport    viewport.Model
	keys        keyMap
	styles      styles
	export      ExportFunc
	opts        diffshot.RenderOptions
	status      string
	statusIsErr bool
	width       int
	ready       bool
	quitting    bool
}

// NewModel creates a selection model over doc.
func NewModel(doc *diffshot.Document, opts ...Option) Model {
	m := Model{
		doc:    doc,
		rows:   flatten(doc),
		keys:   defaultKeyMap(),
		styles: newStyles(lipgloss.DefaultRenderer()),
		opts:   diffshot.DefaultRenderOptions(),
		width:  80,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// flatten lists every file row followed by its hunk rows, in document
// order.
func flatten(doc *diffshot.Document) []row {
	var rows []row
	for fi, f := range doc.Files {
		rows = append(rows, row{file: fi, hunk: -1})
		for hi := range f.Hunks {
			rows = append(rows, row{file: fi, hunk: hi})
		}
	}
	return rows
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		// One line each for the title and the status bar.
		vh := msg.Height - 2
		if vh < 1 {
			vh = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vh)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vh
		}
		m.viewport.SetContent(m.renderRows())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			m.toggle()

		case key.Matches(msg, m.keys.All):
			m.doc.SelectAll(true)
			m.setStatus("", false)

		case key.Matches(msg, m.keys.None):
			m.doc.SelectAll(false)
			m.setStatus("", false)

		case key.Matches(msg, m.keys.Dark):
			m.opts.DarkMode = !m.opts.DarkMode
			m.setStatus("dark mode "+onOff(m.opts.DarkMode), false)

		case key.Matches(msg, m.keys.Numbers):
			m.opts.ShowLineNumbers = !m.opts.ShowLineNumbers
			m.setStatus("line numbers "+onOff(m.opts.ShowLineNumbers), false)

		case key.Matches(msg, m.keys.Export):
			m.doExport()
		}

		if m.ready {
			m.viewport.SetContent(m.renderRows())
			m.scrollToCursor()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) toggle() {
	if len(m.rows) == 0 {
		return
	}
	r := m.rows[m.cursor]
	f := m.doc.Files[r.file]
	if r.hunk < 0 {
		m.doc.ToggleFile(f.ID)
	} else {
		m.doc.ToggleHunk(f.ID, f.Hunks[r.hunk].ID)
	}
	m.setStatus("", false)
}

func (m *Model) doExport() {
	if m.export == nil {
		m.setStatus("export not configured", true)
		return
	}
	msg, err := m.export(m.doc, m.opts)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(msg, false)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusIsErr = isErr
}

func (m *Model) scrollToCursor() {
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.styles.Title.Render("diffshot")
	if len(m.doc.Files) == 0 {
		return title + "\n\nno changes detected\n"
	}

	body := m.renderRows()
	if m.ready {
		body = m.viewport.View()
	}
	return title + "\n" + body + "\n" + m.statusLine()
}

func (m Model) renderRows() string {
	var b strings.Builder
	for i, r := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}

		f := m.doc.Files[r.file]
		var line string
		if r.hunk < 0 {
			line = fmt.Sprintf("%s%s %s %s",
				cursor,
				m.checkbox(f.Selected),
				m.styles.Path.Render(f.Path),
				m.styles.Dim.Render(fmt.Sprintf("(%d hunks)", len(f.Hunks))),
			)
		} else {
			h := f.Hunks[r.hunk]
			line = fmt.Sprintf("%s    %s %s",
				cursor,
				m.checkbox(h.Selected),
				m.styles.Hunk.Render(Truncate(h.Header, m.width-10)),
			)
		}
		b.WriteString(line)
		if i < len(m.rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) checkbox(selected bool) string {
	if selected {
		return m.styles.Selected.Render("[x]")
	}
	return m.styles.Dim.Render("[ ]")
}

func (m Model) statusLine() string {
	s := m.doc.Summarize()
	summary := fmt.Sprintf("%d/%d files, %d/%d hunks selected",
		s.SelectedFiles, s.TotalFiles, s.SelectedHunks, s.TotalHunks)

	help := m.styles.Dim.Render("space toggle · a all · n none · d dark · l numbers · e export · q quit")
	out := summary + "  " + help
	if m.status != "" {
		st := m.styles.Dim
		if m.statusIsErr {
			st = m.styles.Error
		}
		out += "  " + st.Render(m.status)
	}
	return out
}
