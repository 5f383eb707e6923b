package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"formkit/button"
	"formkit/internal/config"
	"formkit/internal/eventbus"
	"formkit/multiselect"
	"formkit/textfield"
	"formkit/theme"
)

// Focus order, cycled with tab/shift+tab
const (
	focusDescription = iota
	focusTags
	focusSubmit
	focusCount
)

// savedMsg is sent by main when a submission has been persisted
type savedMsg struct {
	path string
}

type formKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

var defaultFormKeys = formKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp implements help.KeyMap
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, multiselect.DefaultKeyMap.Open, k.Quit}
}

// FullHelp implements help.KeyMap
func (k formKeyMap) FullHelp() [][]key.Binding {
	rows := [][]key.Binding{{k.Next, k.Prev, k.Quit}}
	return append(rows, multiselect.DefaultKeyMap.FullHelp()...)
}

// formModel hosts the three fields. It owns the authoritative tag
// selection: the multiselect emits ChangedMsg and the new slice is
// stored here and fed back with SetSelected.
type formModel struct {
	bus    eventbus.EventBus
	cfg    *config.Config
	styles *theme.Styles

	description textfield.Model
	tags        multiselect.Model
	submit      button.Model

	selectedTags []string

	focus  int
	keys   formKeyMap
	help   help.Model
	width  int
	height int
	status string
}

func newFormModel(bus eventbus.EventBus, cfg *config.Config, styles *theme.Styles, tagOptions []string) formModel {
	description := textfield.New("Description")
	description.SetStyles(styles)
	description.SetPlaceholder("What is this about?")
	description.SetCharLimit(500)

	tags := multiselect.New(tagOptions)
	tags.SetStyles(styles)
	tags.Placeholder = "Select tags"

	submit := button.New("Submit")
	submit.SetStyles(styles)

	m := formModel{
		bus:         bus,
		cfg:         cfg,
		styles:      styles,
		description: description,
		tags:        tags,
		submit:      submit,
		keys:        defaultFormKeys,
		help:        help.New(),
	}
	m.setWidth(60)
	return m
}

// Init implements tea.Model
func (m formModel) Init() tea.Cmd {
	return m.description.Focus()
}

// Update implements tea.Model
func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - 4
		if w > 60 {
			w = 60
		}
		m.setWidth(w)
		m.updateAnchors()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Next) {
			return m.cycleFocus(1)
		}
		if key.Matches(msg, m.keys.Prev) {
			return m.cycleFocus(-1)
		}
		return m.routeToFocused(msg)

	case tea.MouseMsg:
		return m.routeMouse(msg)

	case multiselect.ChangedMsg:
		// Close the controlled loop: store the new selection and feed
		// it back into the field.
		m.selectedTags = msg.Values
		m.tags.SetSelected(msg.Values)
		if len(msg.Values) > 0 {
			m.tags.SetError("")
		}
		m.bus.Publish(eventbus.FieldChangedEvent{Field: "tags", Values: msg.Values})
		m.updateAnchors()
		return m, nil

	case button.PressedMsg:
		return m.handleSubmit()

	case savedMsg:
		m.status = "Saved to " + msg.path
		return m, nil
	}

	return m.routeToFocused(msg)
}

func (m formModel) cycleFocus(delta int) (tea.Model, tea.Cmd) {
	m.blurAll()
	m.focus = (m.focus + delta + focusCount) % focusCount
	cmd := m.focusCurrent()
	m.updateAnchors()
	return m, cmd
}

func (m *formModel) blurAll() {
	m.description.Blur()
	m.tags.Blur()
	m.submit.Blur()
}

func (m *formModel) focusCurrent() tea.Cmd {
	switch m.focus {
	case focusDescription:
		return m.description.Focus()
	case focusTags:
		return m.tags.Focus()
	case focusSubmit:
		m.submit.Focus()
	}
	return nil
}

func (m formModel) routeToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusDescription:
		before := m.description.Value()
		m.description, cmd = m.description.Update(msg)
		if after := m.description.Value(); after != before {
			m.description.SetError("")
			m.bus.Publish(eventbus.FieldChangedEvent{Field: "description", Text: after})
		}
	case focusTags:
		m.tags, cmd = m.tags.Update(msg)
	case focusSubmit:
		m.submit, cmd = m.submit.Update(msg)
	}
	m.updateAnchors()
	return m, cmd
}

// routeMouse forwards presses to every field; each one hit-tests
// against its own recorded position. A press that opens the tag picker
// or lands on the button also moves focus there.
func (m formModel) routeMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	wasOpen := m.tags.IsOpen()

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.tags, cmd = m.tags.Update(msg)
	cmds = append(cmds, cmd)
	m.submit, cmd = m.submit.Update(msg)
	cmds = append(cmds, cmd)

	if !wasOpen && m.tags.IsOpen() && m.focus != focusTags {
		m.description.Blur()
		m.submit.Blur()
		m.focus = focusTags
	}
	m.updateAnchors()
	return m, tea.Batch(cmds...)
}

func (m formModel) handleSubmit() (tea.Model, tea.Cmd) {
	valid := true
	if m.description.Value() == "" {
		m.description.SetError("Description is required")
		valid = false
	}
	if len(m.selectedTags) == 0 {
		m.tags.SetError("Pick at least one tag")
		valid = false
	}
	if !valid {
		m.status = ""
		m.updateAnchors()
		return m, nil
	}

	m.bus.Publish(eventbus.FormSubmittedEvent{
		Fields: map[string]any{
			"description": m.description.Value(),
			"tags":        m.selectedTags,
		},
	})
	m.status = "Submitted"
	m.updateAnchors()
	return m, nil
}

// setWidth propagates the layout width to every field
func (m *formModel) setWidth(w int) {
	m.description.SetWidth(w)
	m.tags.SetWidth(w)
	m.updateAnchors()
}

// updateAnchors recomputes each field's screen position from the
// current sub-view heights so mouse hit-testing stays accurate.
func (m *formModel) updateAnchors() {
	y := 2 // title + blank line
	y += lipgloss.Height(m.description.View()) + 1
	m.tags.SetPosition(0, y)
	y += lipgloss.Height(m.tags.View()) + 1
	m.submit.SetPosition(0, y)
}

// View implements tea.Model
func (m formModel) View() string {
	sections := []string{
		m.styles.Label.Render("formkit demo"),
		"",
		m.description.View(),
		"",
		m.tags.View(),
		"",
		m.submit.View(),
	}
	if m.status != "" {
		sections = append(sections, "", m.styles.Help.Render(m.status))
	}
	if m.cfg.UISettings.ShowHelp {
		sections = append(sections, "", m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
