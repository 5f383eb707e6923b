package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the color scheme shared by all form components. Values are
// lipgloss color strings: ANSI-256 numbers or hex.
type Palette struct {
	Accent      string `toml:"accent"`       // focused borders, prompts, primary button
	Muted       string `toml:"muted"`        // blurred borders, help text
	Error       string `toml:"error"`        // error text and error borders
	Danger      string `toml:"danger"`       // danger button background
	Secondary   string `toml:"secondary"`    // secondary button background
	ChipBg      string `toml:"chip_bg"`      // selected-value chip background
	ChipFg      string `toml:"chip_fg"`      // selected-value chip foreground
	SelectionBg string `toml:"selection_bg"` // highlighted option row background
	SelectionFg string `toml:"selection_fg"` // highlighted option row foreground
	Placeholder string `toml:"placeholder"`  // placeholder and empty-state text
	ButtonFg    string `toml:"button_fg"`    // button label foreground
}

// DefaultPalette returns the built-in color scheme.
func DefaultPalette() Palette {
	return Palette{
		Accent:      "99",  // purple
		Muted:       "241", // gray
		Error:       "203", // red
		Danger:      "160",
		Secondary:   "238",
		ChipBg:      "57",
		ChipFg:      "255",
		SelectionBg: "238",
		SelectionFg: "255",
		Placeholder: "241",
		ButtonFg:    "255",
	}
}

// Styles contains all the style definitions used by the form components
type Styles struct {
	Label       lipgloss.Style
	Placeholder lipgloss.Style
	Help        lipgloss.Style
	ErrorText   lipgloss.Style

	// Field container borders for the three presentational states.
	Border        lipgloss.Style
	BorderFocused lipgloss.Style
	BorderError   lipgloss.Style

	// Multi-select internals.
	Chip           lipgloss.Style
	Prompt         lipgloss.Style
	Option         lipgloss.Style
	OptionSelected lipgloss.Style
	EmptyNotice    lipgloss.Style

	// Button variants.
	ButtonPrimary   lipgloss.Style
	ButtonSecondary lipgloss.Style
	ButtonDanger    lipgloss.Style
	ButtonFocused   lipgloss.Style
	ButtonDisabled  lipgloss.Style
}

// Styles derives the lipgloss styles for a palette.
func (p Palette) Styles() *Styles {
	return &Styles{
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Accent)),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Placeholder)),
		Help:        lipgloss.NewStyle().Faint(true),
		ErrorText:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Muted)).
			Padding(0, 1),
		BorderFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Accent)).
			Padding(0, 1),
		BorderError: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Error)).
			Padding(0, 1),
		Chip: lipgloss.NewStyle().
			Background(lipgloss.Color(p.ChipBg)).
			Foreground(lipgloss.Color(p.ChipFg)).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Accent)),
		Option: lipgloss.NewStyle(),
		OptionSelected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.SelectionBg)).
			Foreground(lipgloss.Color(p.SelectionFg)),
		EmptyNotice: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Placeholder)).
			Italic(true),
		ButtonPrimary: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Accent)).
			Foreground(lipgloss.Color(p.ButtonFg)).
			Padding(0, 2),
		ButtonSecondary: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Secondary)).
			Foreground(lipgloss.Color(p.ButtonFg)).
			Padding(0, 2),
		ButtonDanger: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Danger)).
			Foreground(lipgloss.Color(p.ButtonFg)).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Bold(true).
			Underline(true),
		ButtonDisabled: lipgloss.NewStyle().
			Faint(true).
			Padding(0, 2),
	}
}

// DefaultStyles returns the styles for the built-in palette.
func DefaultStyles() *Styles {
	return DefaultPalette().Styles()
}
