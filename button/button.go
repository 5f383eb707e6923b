// Package button implements a focusable action button.
package button

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"formkit/theme"
)

// Variant selects the button's visual treatment.
type Variant int

const (
	Primary Variant = iota
	Secondary
	Danger
)

// PressedMsg is emitted when the button is activated. Label identifies
// the button when a form hosts several.
type PressedMsg struct {
	Label string
}

// KeyMap defines the key bindings for a button.
type KeyMap struct {
	Press key.Binding
}

// DefaultKeyMap activates on Enter or Space.
var DefaultKeyMap = KeyMap{
	Press: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "press"),
	),
}

// Model is the button state.
type Model struct {
	Label    string
	Variant  Variant
	Disabled bool
	KeyMap   KeyMap

	styles  *theme.Styles
	focused bool

	x, y int // screen anchor for mouse hit-testing
}

// New creates a button with the given label and the primary variant.
func New(label string) Model {
	return Model{
		Label:  label,
		KeyMap: DefaultKeyMap,
		styles: theme.DefaultStyles(),
	}
}

// SetStyles replaces the style set.
func (m *Model) SetStyles(s *theme.Styles) {
	m.styles = s
}

// Focus gives the button keyboard focus.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the button has keyboard focus.
func (m Model) Focused() bool {
	return m.focused
}

// SetPosition records the button's top-left screen coordinate for mouse
// hit-testing.
func (m *Model) SetPosition(x, y int) {
	m.x = x
	m.y = y
}

// Update handles activation. Disabled buttons consume input without
// emitting anything.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused || m.Disabled {
			return m, nil
		}
		if key.Matches(msg, m.KeyMap.Press) {
			return m, m.pressCmd()
		}

	case tea.MouseMsg:
		if m.Disabled {
			return m, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.contains(msg.X, msg.Y) {
			m.focused = true
			return m, m.pressCmd()
		}
	}
	return m, nil
}

// View renders the button label inside its variant style.
func (m Model) View() string {
	if m.Disabled {
		return m.styles.ButtonDisabled.Render(m.Label)
	}
	style := m.variantStyle()
	if m.focused {
		style = style.Inherit(m.styles.ButtonFocused)
	}
	return style.Render(m.Label)
}

func (m Model) variantStyle() lipgloss.Style {
	switch m.Variant {
	case Secondary:
		return m.styles.ButtonSecondary
	case Danger:
		return m.styles.ButtonDanger
	default:
		return m.styles.ButtonPrimary
	}
}

func (m Model) contains(x, y int) bool {
	view := m.View()
	w := lipgloss.Width(view)
	h := lipgloss.Height(view)
	return x >= m.x && x < m.x+w && y >= m.y && y < m.y+h
}

func (m Model) pressCmd() tea.Cmd {
	label := m.Label
	return func() tea.Msg {
		return PressedMsg{Label: label}
	}
}
