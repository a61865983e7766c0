// Package style holds the lipgloss palette and styles shared by the member
// list UI. Colors are package variables so SetTheme can swap them at runtime.
package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors, initialized to dark theme defaults. Updated via SetTheme().
var (
	Primary   color.Color = lipgloss.Color("#7C3AED")
	Secondary color.Color = lipgloss.Color("#06B6D4")
	Success   color.Color = lipgloss.Color("#22C55E")
	Warning   color.Color = lipgloss.Color("#F59E0B")
	Error     color.Color = lipgloss.Color("#EF4444")
	Muted     color.Color = lipgloss.Color("#6B7280")
	Dim       color.Color = lipgloss.Color("#374151")
	Border    color.Color = lipgloss.Color("#4B5563")

	HeaderBgColor    color.Color = lipgloss.Color("#1F2937")
	SelectionBgColor color.Color = lipgloss.Color("#312E81")
	StripeBgColor    color.Color = lipgloss.Color("#111827")

	GradColorA color.Color = lipgloss.Color("#7C3AED")
	GradColorB color.Color = lipgloss.Color("#06B6D4")
)

// CurrentThemeName is the name of the theme last applied with SetTheme.
var CurrentThemeName = "dark"

// Base styles, rebuilt when the theme changes via rebuildStyles().
var (
	Bold      lipgloss.Style
	Faint     lipgloss.Style
	ErrorText lipgloss.Style

	// Page header
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Table
	ColumnHeader lipgloss.Style
	Row          lipgloss.Style
	RowStripe    lipgloss.Style
	RowSelected  lipgloss.Style
	RowKey       lipgloss.Style
	TierGold     lipgloss.Style
	TierSilver   lipgloss.Style
	TierBasic    lipgloss.Style

	// Placeholders (empty dataset / loading)
	Placeholder  lipgloss.Style
	SpinnerStyle lipgloss.Style

	// Search
	PromptChar lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusValue lipgloss.Style

	// Hint text
	Hint    lipgloss.Style
	HintKey lipgloss.Style

	// Help overlay
	ModalBorder lipgloss.Style

	// Scrollbar
	ScrollbarThumb lipgloss.Style
	ScrollbarTrack lipgloss.Style
)

func init() {
	rebuildStyles()
}

// SetTheme applies a named theme, updating all color vars and rebuilding styles.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentThemeName = name
	Primary = t.Primary
	Secondary = t.Secondary
	Success = t.Success
	Warning = t.Warning
	Error = t.Error
	Muted = t.Muted
	Dim = t.Dim
	Border = t.Border
	HeaderBgColor = t.HeaderBg
	SelectionBgColor = t.SelectionBg
	StripeBgColor = t.StripeBg
	GradColorA = t.GradA
	GradColorB = t.GradB
	rebuildStyles()
	return true
}

// IsDark returns whether the current theme is dark.
func IsDark() bool {
	return CurrentThemeName != "light"
}

func rebuildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)
	Faint = lipgloss.NewStyle().Foreground(Muted)
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)

	Title = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Subtitle = lipgloss.NewStyle().Foreground(Muted)

	ColumnHeader = lipgloss.NewStyle().Background(HeaderBgColor).Foreground(Secondary).Bold(true)
	Row = lipgloss.NewStyle()
	RowStripe = lipgloss.NewStyle().Background(StripeBgColor)
	RowSelected = lipgloss.NewStyle().Background(SelectionBgColor).Bold(true)
	RowKey = lipgloss.NewStyle().Foreground(Muted)
	TierGold = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	TierSilver = lipgloss.NewStyle().Foreground(Secondary)
	TierBasic = lipgloss.NewStyle().Foreground(Muted)

	Placeholder = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	SpinnerStyle = lipgloss.NewStyle().Foreground(Primary)

	PromptChar = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	StatusBar = lipgloss.NewStyle().Foreground(Muted)
	StatusValue = lipgloss.NewStyle().Foreground(Secondary)

	Hint = lipgloss.NewStyle().Foreground(Muted)
	HintKey = lipgloss.NewStyle().Foreground(Secondary).Bold(true)

	ModalBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	ScrollbarThumb = lipgloss.NewStyle().Foreground(Primary)
	ScrollbarTrack = lipgloss.NewStyle().Foreground(Dim)
}
