// Package multiselect implements a searchable multi-select form field.
//
// The field is a controlled component: the host owns the authoritative
// selection. Selecting or removing a value never mutates the model's
// selection directly — the model emits a ChangedMsg command carrying the
// complete next selection, and the host is expected to store it and feed
// it back with SetSelected.
package multiselect

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"formkit/theme"
)

const defaultPlaceholder = "Select options"

// ChangedMsg carries the complete next selection after an add or remove.
// The host stores it and feeds it back through SetSelected.
type ChangedMsg struct {
	Values []string
}

// Model is the multi-select field state. Create instances with New.
type Model struct {
	// KeyMap holds the key bindings. Replaceable by the host.
	KeyMap KeyMap

	// Placeholder is shown in place of chips when nothing is selected
	// and the picker is closed.
	Placeholder string

	// MaxVisible caps the number of option rows rendered at once; the
	// window scrolls to keep the cursor visible.
	MaxVisible int

	styles *theme.Styles

	options  []string // candidate set, host supplied
	selected []string // controlled by the host via SetSelected
	errMsg   string

	open    bool
	focused bool
	input   textinput.Model
	cursor  int // index into the visible option list
	offset  int // first visible row of the scroll window

	// Screen anchor of the field's last render, reported by the host
	// for mouse hit-testing.
	x, y  int
	width int
}

// New creates a multi-select field over the given candidate set. The
// picker starts closed with an empty search term.
func New(options []string) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type to filter"

	m := Model{
		KeyMap:     DefaultKeyMap,
		MaxVisible: 5,
		options:    options,
		input:      input,
		width:      40,
	}
	m.SetStyles(theme.DefaultStyles())
	return m
}

// SetStyles replaces the style set and restyles the search input.
func (m *Model) SetStyles(s *theme.Styles) {
	m.styles = s
	m.input.PromptStyle = s.Prompt
	m.input.PlaceholderStyle = s.Placeholder
}

// SetOptions replaces the candidate set.
func (m *Model) SetOptions(options []string) {
	m.options = options
	m.clampCursor()
}

// SetSelected replaces the selection. This is the host's feedback path
// after a ChangedMsg; the field never calls it on its own behalf.
func (m *Model) SetSelected(values []string) {
	m.selected = values
	m.clampCursor()
}

// Selected returns the current selection as last fed by the host.
func (m Model) Selected() []string {
	return m.selected
}

// SetError sets the error line rendered below the field. A non-empty
// error also switches the border to the error palette. Presentational
// only: it does not affect interaction.
func (m *Model) SetError(msg string) {
	m.errMsg = msg
}

// Error returns the current error line.
func (m Model) Error() string {
	return m.errMsg
}

// Focus gives the field keyboard focus. If the picker is already open
// the returned command restores the search input's cursor blink.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	if m.open {
		return m.input.Focus()
	}
	return nil
}

// Blur removes keyboard focus and closes the picker.
func (m *Model) Blur() {
	m.focused = false
	m.closePicker()
}

// Focused reports whether the field has keyboard focus.
func (m Model) Focused() bool {
	return m.focused
}

// IsOpen reports whether the picker overlay is showing.
func (m Model) IsOpen() bool {
	return m.open
}

// SetPosition records the field's top-left screen coordinate. The host
// calls this after layout so mouse presses can be classified as inside
// or outside the field.
func (m *Model) SetPosition(x, y int) {
	m.x = x
	m.y = y
}

// SetWidth sets the rendered width of the field, border included.
func (m *Model) SetWidth(w int) {
	m.width = w
	m.input.Width = w - 6
}

// Remove emits a ChangedMsg with every occurrence of value filtered out
// of the selection. Open/closed state is unchanged. Removing a value
// that is not selected emits the selection unchanged.
func (m Model) Remove(value string) tea.Cmd {
	return changedCmd(removeValue(m.selected, value))
}

// VisibleOptions returns the candidates currently offered by the picker:
// the candidate set minus the selection, filtered by the search term.
func (m Model) VisibleOptions() []string {
	return visibleOptions(m.options, m.selected, m.input.Value())
}

// SearchTerm returns the current free-text filter.
func (m Model) SearchTerm() string {
	return m.input.Value()
}

// Update handles key and mouse input. Keyboard input is ignored unless
// the field is focused; mouse presses are always considered so an open
// picker can be dismissed from anywhere on screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.contains(msg.X, msg.Y) {
			if !m.open {
				m.focused = true
				return m, m.openPicker()
			}
			return m, nil
		}
		// Press outside the field's subtree: dismiss without touching
		// the selection.
		if m.open {
			m.closePicker()
		}
		return m, nil
	}

	// Cursor blink and other component messages reach the search input
	// while the picker is open.
	if m.open {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.open {
		if key.Matches(msg, m.KeyMap.Open) {
			return m, m.openPicker()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.KeyMap.Close):
		m.closePicker()
		return m, nil

	case key.Matches(msg, m.KeyMap.Select):
		return m, m.selectCurrent()

	case key.Matches(msg, m.KeyMap.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.KeyMap.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.KeyMap.RemoveLast) && m.input.Value() == "":
		if len(m.selected) == 0 {
			return m, nil
		}
		last := m.selected[len(m.selected)-1]
		return m, changedCmd(removeValue(m.selected, last))
	}

	// Everything else edits the search term.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.clampCursor()
	return m, cmd
}

// openPicker transitions Closed → Open: the search term resets and the
// returned command focuses the input. Focus arrives through the command
// channel, after the render that shows the picker has committed.
func (m *Model) openPicker() tea.Cmd {
	m.open = true
	m.cursor = 0
	m.offset = 0
	m.input.Reset()
	return m.input.Focus()
}

func (m *Model) closePicker() {
	m.open = false
	m.input.Blur()
	m.input.Reset()
	m.cursor = 0
	m.offset = 0
}

// selectCurrent emits the selection with the highlighted candidate
// appended. The picker stays open and the search term resets so the
// user can keep adding values.
func (m *Model) selectCurrent() tea.Cmd {
	visible := m.VisibleOptions()
	if len(visible) == 0 {
		return nil
	}
	value := visible[m.cursor]
	next := append(slices.Clone(m.selected), value)
	m.input.Reset()
	m.cursor = 0
	m.offset = 0
	return changedCmd(next)
}

func (m *Model) moveCursor(delta int) {
	n := len(m.VisibleOptions())
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
	m.scrollToCursor(n)
}

func (m *Model) clampCursor() {
	n := len(m.VisibleOptions())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollToCursor(n)
}

func (m *Model) scrollToCursor(n int) {
	if m.MaxVisible <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.MaxVisible {
		m.offset = m.cursor - m.MaxVisible + 1
	}
	if max := n - m.MaxVisible; m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// contains reports whether a screen coordinate falls inside the field's
// last rendered rectangle.
func (m Model) contains(x, y int) bool {
	view := m.View()
	w := lipgloss.Width(view)
	h := lipgloss.Height(view)
	return x >= m.x && x < m.x+w && y >= m.y && y < m.y+h
}

// View renders the field. Closed: chips (or the placeholder) inside a
// border. Open: chips, the search input, and the visible option window.
// An error line renders below the border in the error palette.
func (m Model) View() string {
	var rows []string

	if len(m.selected) > 0 {
		chips := make([]string, len(m.selected))
		for i, value := range m.selected {
			chips[i] = m.styles.Chip.Render(value)
		}
		rows = append(rows, strings.Join(chips, " "))
	} else if !m.open {
		rows = append(rows, m.styles.Placeholder.Render(m.placeholderText()))
	}

	if m.open {
		rows = append(rows, m.input.View())
		rows = append(rows, m.optionRows()...)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	out := m.borderStyle().Width(m.width).Render(content)
	if m.errMsg != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, out, m.styles.ErrorText.Render(m.errMsg))
	}
	return out
}

func (m Model) optionRows() []string {
	visible := m.VisibleOptions()
	if len(visible) == 0 {
		if m.input.Value() != "" {
			return []string{m.styles.EmptyNotice.Render("No options found")}
		}
		return []string{m.styles.EmptyNotice.Render("No options available")}
	}

	end := len(visible)
	if m.MaxVisible > 0 && m.offset+m.MaxVisible < end {
		end = m.offset + m.MaxVisible
	}

	rows := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			rows = append(rows, m.styles.OptionSelected.Render("> "+visible[i]))
		} else {
			rows = append(rows, m.styles.Option.Render("  "+visible[i]))
		}
	}
	return rows
}

func (m Model) borderStyle() lipgloss.Style {
	switch {
	case m.errMsg != "":
		return m.styles.BorderError
	case m.focused:
		return m.styles.BorderFocused
	default:
		return m.styles.Border
	}
}

func (m Model) placeholderText() string {
	if m.Placeholder != "" {
		return m.Placeholder
	}
	return defaultPlaceholder
}

func changedCmd(values []string) tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{Values: values}
	}
}
