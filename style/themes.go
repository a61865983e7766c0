package style

import (
	"image/color"
	"sort"

	"charm.land/lipgloss/v2"
)

// Theme defines a complete color palette for the member list.
type Theme struct {
	Name                                        string
	Primary, Secondary, Success, Warning, Error color.Color
	Muted, Dim, Border                          color.Color

	HeaderBg    color.Color // column header strip
	SelectionBg color.Color // selected row
	StripeBg    color.Color // every other row

	// Gradient endpoints for the loading spinner (A=from, B=to)
	GradA color.Color
	GradB color.Color
}

// Built-in themes.
var (
	darkTheme = Theme{
		Name:        "dark",
		Primary:     lipgloss.Color("#7C3AED"),
		Secondary:   lipgloss.Color("#06B6D4"),
		Success:     lipgloss.Color("#22C55E"),
		Warning:     lipgloss.Color("#F59E0B"),
		Error:       lipgloss.Color("#EF4444"),
		Muted:       lipgloss.Color("#6B7280"),
		Dim:         lipgloss.Color("#374151"),
		Border:      lipgloss.Color("#4B5563"),
		HeaderBg:    lipgloss.Color("#1F2937"),
		SelectionBg: lipgloss.Color("#312E81"),
		StripeBg:    lipgloss.Color("#111827"),
		GradA:       lipgloss.Color("#7C3AED"),
		GradB:       lipgloss.Color("#06B6D4"),
	}

	lightTheme = Theme{
		Name:        "light",
		Primary:     lipgloss.Color("#6D28D9"),
		Secondary:   lipgloss.Color("#0891B2"),
		Success:     lipgloss.Color("#16A34A"),
		Warning:     lipgloss.Color("#D97706"),
		Error:       lipgloss.Color("#DC2626"),
		Muted:       lipgloss.Color("#9CA3AF"),
		Dim:         lipgloss.Color("#D1D5DB"),
		Border:      lipgloss.Color("#9CA3AF"),
		HeaderBg:    lipgloss.Color("#F3F4F6"),
		SelectionBg: lipgloss.Color("#DDD6FE"),
		StripeBg:    lipgloss.Color("#F9FAFB"),
		GradA:       lipgloss.Color("#6D28D9"),
		GradB:       lipgloss.Color("#0891B2"),
	}

	tokyoNightTheme = Theme{
		Name:        "tokyo-night",
		Primary:     lipgloss.Color("#7AA2F7"),
		Secondary:   lipgloss.Color("#7DCFFF"),
		Success:     lipgloss.Color("#9ECE6A"),
		Warning:     lipgloss.Color("#E0AF68"),
		Error:       lipgloss.Color("#F7768E"),
		Muted:       lipgloss.Color("#565F89"),
		Dim:         lipgloss.Color("#3B4261"),
		Border:      lipgloss.Color("#414868"),
		HeaderBg:    lipgloss.Color("#1A1B26"),
		SelectionBg: lipgloss.Color("#283457"),
		StripeBg:    lipgloss.Color("#16161E"),
		GradA:       lipgloss.Color("#7AA2F7"),
		GradB:       lipgloss.Color("#7DCFFF"),
	}
)

// Themes is the registry of built-in themes keyed by name.
var Themes = map[string]Theme{
	darkTheme.Name:       darkTheme,
	lightTheme.Name:      lightTheme,
	tokyoNightTheme.Name: tokyoNightTheme,
}

// ThemeNames returns the registered theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for n := range Themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
