package button

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestPressEmitsPressedMsg(t *testing.T) {
	t.Parallel()

	m := New("Submit")
	m.Focus()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(PressedMsg)
	require.True(t, ok)
	require.Equal(t, "Submit", msg.Label)
}

func TestUnfocusedButtonIgnoresKeys(t *testing.T) {
	t.Parallel()

	m := New("Submit")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
}

func TestDisabledButtonEmitsNothing(t *testing.T) {
	t.Parallel()

	m := New("Submit")
	m.Disabled = true
	m.Focus()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)

	_, cmd = m.Update(tea.MouseMsg{
		X:      1,
		Y:      0,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	require.Nil(t, cmd)
}

func TestClickInsideBoundsPresses(t *testing.T) {
	t.Parallel()

	m := New("Submit")
	m.SetPosition(0, 0)

	m, cmd := m.Update(tea.MouseMsg{
		X:      1,
		Y:      0,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	require.NotNil(t, cmd)
	require.True(t, m.Focused(), "clicking also focuses the button")

	_, ok := cmd().(PressedMsg)
	require.True(t, ok)
}

func TestClickOutsideBoundsIgnored(t *testing.T) {
	t.Parallel()

	m := New("Submit")
	m.SetPosition(0, 0)

	_, cmd := m.Update(tea.MouseMsg{
		X:      90,
		Y:      40,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	require.Nil(t, cmd)
}

func TestViewRendersLabelForAllVariants(t *testing.T) {
	t.Parallel()

	for _, variant := range []Variant{Primary, Secondary, Danger} {
		m := New("Save")
		m.Variant = variant
		require.Contains(t, m.View(), "Save")
	}
}
