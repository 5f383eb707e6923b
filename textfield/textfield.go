// Package textfield implements a labeled multi-line text field with an
// optional error line.
package textfield

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"formkit/theme"
)

// Model is the text field state. The text content is owned by the
// embedded textarea; the label and error line are presentational.
type Model struct {
	Label string

	area   textarea.Model
	styles *theme.Styles
	errMsg string
}

// New creates a text field with the given label.
func New(label string) Model {
	area := textarea.New()
	area.ShowLineNumbers = false
	area.SetHeight(3)

	m := Model{
		Label: label,
		area:  area,
	}
	m.SetStyles(theme.DefaultStyles())
	return m
}

// SetStyles replaces the style set and restyles the textarea.
func (m *Model) SetStyles(s *theme.Styles) {
	m.styles = s
	m.area.FocusedStyle.Placeholder = s.Placeholder
	m.area.BlurredStyle.Placeholder = s.Placeholder
}

// SetPlaceholder sets the textarea placeholder text.
func (m *Model) SetPlaceholder(p string) {
	m.area.Placeholder = p
}

// SetError sets the error line rendered below the field. A non-empty
// error switches the border to the error palette. Presentational only.
func (m *Model) SetError(msg string) {
	m.errMsg = msg
}

// Error returns the current error line.
func (m Model) Error() string {
	return m.errMsg
}

// Value returns the current text content.
func (m Model) Value() string {
	return m.area.Value()
}

// SetValue replaces the text content.
func (m *Model) SetValue(v string) {
	m.area.SetValue(v)
}

// SetCharLimit caps the number of characters accepted.
func (m *Model) SetCharLimit(n int) {
	m.area.CharLimit = n
}

// SetWidth sets the rendered width of the field, border included.
func (m *Model) SetWidth(w int) {
	m.area.SetWidth(w - 4)
}

// SetHeight sets the number of text rows.
func (m *Model) SetHeight(h int) {
	m.area.SetHeight(h)
}

// Focus gives the textarea keyboard focus. The returned command starts
// the cursor blink.
func (m *Model) Focus() tea.Cmd {
	return m.area.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.area.Blur()
}

// Focused reports whether the textarea has keyboard focus.
func (m Model) Focused() bool {
	return m.area.Focused()
}

// Update forwards input to the textarea while it is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.area.Focused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

// View renders the label, the bordered textarea and, when set, the
// error line.
func (m Model) View() string {
	rows := []string{
		m.styles.Label.Render(m.Label),
		m.borderStyle().Render(m.area.View()),
	}
	if m.errMsg != "" {
		rows = append(rows, m.styles.ErrorText.Render(m.errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) borderStyle() lipgloss.Style {
	switch {
	case m.errMsg != "":
		return m.styles.BorderError
	case m.area.Focused():
		return m.styles.BorderFocused
	default:
		return m.styles.Border
	}
}
