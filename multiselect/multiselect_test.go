package multiselect

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyPress(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func openField(t *testing.T, m Model) Model {
	t.Helper()
	m.Focus()
	m, cmd := m.Update(keyPress(tea.KeyEnter))
	require.True(t, m.IsOpen())
	require.NotNil(t, cmd, "opening should request input focus via a command")
	return m
}

func TestStartsClosedWithEmptySearch(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red", "Green"})
	require.False(t, m.IsOpen())
	require.Empty(t, m.SearchTerm())
}

func TestOpenResetsSearchTerm(t *testing.T) {
	t.Parallel()

	m := openField(t, New([]string{"Red", "Green"}))
	m = typeText(m, "re")
	require.Equal(t, "re", m.SearchTerm())

	// Close and reopen: the term must reset to empty.
	m, _ = m.Update(keyPress(tea.KeyEsc))
	require.False(t, m.IsOpen())
	m = openField(t, m)
	require.Empty(t, m.SearchTerm())
}

func TestVisibleIsOptionsMinusSelected(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red", "Green", "Blue"})
	m.SetSelected([]string{"Green"})
	m = openField(t, m)
	require.Equal(t, []string{"Red", "Blue"}, m.VisibleOptions())
}

func TestSearchSelectScenario(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red", "Green", "Blue"})
	m = openField(t, m)
	m = typeText(m, "re")
	require.Equal(t, []string{"Red"}, m.VisibleOptions())

	m, cmd := m.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg, ok := cmd().(ChangedMsg)
	require.True(t, ok)
	require.Equal(t, []string{"Red"}, msg.Values)

	// The field itself never mutates the selection; the host feeds the
	// new slice back.
	require.Empty(t, m.Selected())
	m.SetSelected(msg.Values)

	require.True(t, m.IsOpen(), "picker stays open for multi-selection")
	require.Empty(t, m.SearchTerm(), "search term resets after selection")
	require.Equal(t, []string{"Green", "Blue"}, m.VisibleOptions())
}

func TestSelectAppendsToEndOfSelection(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red", "Green", "Blue"})
	m.SetSelected([]string{"Blue"})
	m = openField(t, m)

	_, cmd := m.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg := cmd().(ChangedMsg)
	require.Equal(t, []string{"Blue", "Red"}, msg.Values)
}

func TestSelectWithNoVisibleOptionsIsNoop(t *testing.T) {
	t.Parallel()

	m := New(nil)
	m = openField(t, m)
	m, cmd := m.Update(keyPress(tea.KeyEnter))
	require.Nil(t, cmd)
	require.True(t, m.IsOpen())
}

func TestRemoveScenario(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red", "Green", "Blue"})
	m.SetSelected([]string{"Red", "Green"})

	cmd := m.Remove("Red")
	require.NotNil(t, cmd)
	msg := cmd().(ChangedMsg)
	require.Equal(t, []string{"Green"}, msg.Values)
	require.False(t, m.IsOpen(), "removal does not change open/closed state")
}

func TestBackspaceWithEmptySearchRemovesLastValue(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red", "Green", "Blue"})
	m.SetSelected([]string{"Red", "Green"})
	m = openField(t, m)

	m, cmd := m.Update(keyPress(tea.KeyBackspace))
	require.NotNil(t, cmd)
	msg := cmd().(ChangedMsg)
	require.Equal(t, []string{"Red"}, msg.Values)
	require.True(t, m.IsOpen())
}

func TestBackspaceWithSearchTermEditsTerm(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red"})
	m.SetSelected([]string{"Red"})
	m = openField(t, m)
	m = typeText(m, "ab")

	m, cmd := m.Update(keyPress(tea.KeyBackspace))
	if cmd != nil {
		_, isChange := cmd().(ChangedMsg)
		require.False(t, isChange, "backspace must edit the term, not the selection")
	}
	require.Equal(t, "a", m.SearchTerm())
}

func TestEscCloses(t *testing.T) {
	t.Parallel()

	m := openField(t, New([]string{"Red"}))
	m, _ = m.Update(keyPress(tea.KeyEsc))
	require.False(t, m.IsOpen())
}

func TestOutsidePressClosesWithoutChangingSelection(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red", "Green"})
	m.SetSelected([]string{"Red"})
	m.SetPosition(0, 0)
	m = openField(t, m)

	m, cmd := m.Update(tea.MouseMsg{
		X:      120,
		Y:      80,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	require.Nil(t, cmd)
	require.False(t, m.IsOpen())
	require.Equal(t, []string{"Red"}, m.Selected())
}

func TestInsidePressOpens(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red"})
	m.SetPosition(0, 0)

	m, cmd := m.Update(tea.MouseMsg{
		X:      1,
		Y:      1,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	require.True(t, m.IsOpen())
	require.NotNil(t, cmd)
}

func TestCursorNavigationWraps(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red", "Green", "Blue"})
	m = openField(t, m)

	m, _ = m.Update(keyPress(tea.KeyUp))
	_, cmd := m.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg := cmd().(ChangedMsg)
	require.Equal(t, []string{"Blue"}, msg.Values, "up from the top wraps to the last option")
}

func TestWindowScrollsToCursor(t *testing.T) {
	t.Parallel()

	options := []string{"one", "two", "three", "four", "five", "six", "seven"}
	m := New(options)
	m.MaxVisible = 3
	m = openField(t, m)

	for i := 0; i < 6; i++ {
		m, _ = m.Update(keyPress(tea.KeyDown))
	}

	view := m.View()
	require.Contains(t, view, "> seven")
	require.NotContains(t, view, "one")
}

func TestChipsRenderInSelectionOrder(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red", "Green", "Blue"})
	m.SetSelected([]string{"Green", "Red"})

	view := m.View()
	require.Less(t, strings.Index(view, "Green"), strings.Index(view, "Red"))
}

func TestPlaceholderShownWhenClosedAndEmpty(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red"})
	m.Placeholder = "Pick some colors"
	require.Contains(t, m.View(), "Pick some colors")

	m.SetSelected([]string{"Red"})
	require.NotContains(t, m.View(), "Pick some colors")
}

func TestEmptyStateMessages(t *testing.T) {
	t.Parallel()

	// No candidates at all: "No options available" regardless of term.
	m := New(nil)
	m = openField(t, m)
	require.Contains(t, m.View(), "No options available")

	// Candidates exist but none match the term: "No options found".
	m = New([]string{"Red", "Green"})
	m = openField(t, m)
	m = typeText(m, "zzz")
	require.Contains(t, m.View(), "No options found")
	require.NotContains(t, m.View(), "No options available")

	// All candidates already selected, no term.
	m = New([]string{"Red"})
	m.SetSelected([]string{"Red"})
	m = openField(t, m)
	require.Contains(t, m.View(), "No options available")
}

func TestErrorLineRendered(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red"})
	m.SetError("Pick at least one")
	require.Contains(t, m.View(), "Pick at least one")
	require.Equal(t, "Pick at least one", m.Error())
}

func TestKeyboardIgnoredWhenBlurred(t *testing.T) {
	t.Parallel()

	m := New([]string{"Red"})
	m, cmd := m.Update(keyPress(tea.KeyEnter))
	require.Nil(t, cmd)
	require.False(t, m.IsOpen())
}

func TestBlurClosesPicker(t *testing.T) {
	t.Parallel()

	m := openField(t, New([]string{"Red"}))
	m.Blur()
	require.False(t, m.IsOpen())
	require.False(t, m.Focused())
}
