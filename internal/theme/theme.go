// Package theme provides color schemes for the VATScope table display
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines a color scheme for the table display
type Theme struct {
	Name        string
	Description string

	// Text colors
	Text    lipgloss.Color
	TextDim lipgloss.Color

	// Table elements
	HeaderBg  lipgloss.Color
	HeaderFg  lipgloss.Color
	Highlight lipgloss.Color

	// Tab selector
	TabActiveBg lipgloss.Color
	TabActiveFg lipgloss.Color

	// UI elements
	Border lipgloss.Color
	Title  lipgloss.Color
	Accent lipgloss.Color
	Error  lipgloss.Color
}

// themes contains all available theme definitions
var themes = map[string]*Theme{
	"classic": {
		Name:        "Classic",
		Description: "Blue headers with a green active tab",
		Text:        lipgloss.Color("252"), // light_grey
		TextDim:     lipgloss.Color("242"), // grey
		HeaderBg:    lipgloss.Color("4"),   // blue
		HeaderFg:    lipgloss.Color("231"), // bright_white
		Highlight:   lipgloss.Color("226"), // bright_yellow
		TabActiveBg: lipgloss.Color("10"),  // light_green
		TabActiveFg: lipgloss.Color("0"),   // black
		Border:      lipgloss.Color("252"), // light_grey
		Title:       lipgloss.Color("231"), // bright_white
		Accent:      lipgloss.Color("51"),  // bright_cyan
		Error:       lipgloss.Color("196"), // bright_red
	},
	"amber": {
		Name:        "Amber",
		Description: "Vintage amber monochrome display",
		Text:        lipgloss.Color("178"), // yellow
		TextDim:     lipgloss.Color("130"), // dark_orange
		HeaderBg:    lipgloss.Color("130"), // dark_orange
		HeaderFg:    lipgloss.Color("231"), // bright_white
		Highlight:   lipgloss.Color("226"), // bright_yellow
		TabActiveBg: lipgloss.Color("178"), // yellow
		TabActiveFg: lipgloss.Color("0"),   // black
		Border:      lipgloss.Color("178"), // yellow
		Title:       lipgloss.Color("226"), // bright_yellow
		Accent:      lipgloss.Color("214"), // orange
		Error:       lipgloss.Color("196"), // bright_red
	},
	"matrix": {
		Name:        "Matrix",
		Description: "Green phosphor terminal",
		Text:        lipgloss.Color("28"),  // green
		TextDim:     lipgloss.Color("22"),  // dark_green
		HeaderBg:    lipgloss.Color("22"),  // dark_green
		HeaderFg:    lipgloss.Color("46"),  // bright_green
		Highlight:   lipgloss.Color("46"),  // bright_green
		TabActiveBg: lipgloss.Color("46"),  // bright_green
		TabActiveFg: lipgloss.Color("0"),   // black
		Border:      lipgloss.Color("28"),  // green
		Title:       lipgloss.Color("46"),  // bright_green
		Accent:      lipgloss.Color("40"),  // green3
		Error:       lipgloss.Color("196"), // bright_red
	},
	"ice": {
		Name:        "Ice Blue",
		Description: "Cool blue and white tones",
		Text:        lipgloss.Color("117"), // sky_blue
		TextDim:     lipgloss.Color("24"),  // deep_blue
		HeaderBg:    lipgloss.Color("24"),  // deep_blue
		HeaderFg:    lipgloss.Color("231"), // bright_white
		Highlight:   lipgloss.Color("231"), // bright_white
		TabActiveBg: lipgloss.Color("51"),  // bright_cyan
		TabActiveFg: lipgloss.Color("0"),   // black
		Border:      lipgloss.Color("31"),  // cyan_blue
		Title:       lipgloss.Color("159"), // pale_cyan
		Accent:      lipgloss.Color("87"),  // light_cyan
		Error:       lipgloss.Color("203"), // soft_red
	},
	"ocean": {
		Name:        "Ocean",
		Description: "Deep sea blues and teals",
		Text:        lipgloss.Color("44"),  // teal
		TextDim:     lipgloss.Color("23"),  // dark_teal
		HeaderBg:    lipgloss.Color("23"),  // dark_teal
		HeaderFg:    lipgloss.Color("123"), // light_teal
		Highlight:   lipgloss.Color("123"), // light_teal
		TabActiveBg: lipgloss.Color("44"),  // teal
		TabActiveFg: lipgloss.Color("0"),   // black
		Border:      lipgloss.Color("30"),  // sea_green
		Title:       lipgloss.Color("86"),  // aquamarine
		Accent:      lipgloss.Color("50"),  // bright_teal
		Error:       lipgloss.Color("196"), // bright_red
	},
	"high_contrast": {
		Name:        "High Contrast",
		Description: "Maximum visibility black and white",
		Text:        lipgloss.Color("231"), // bright_white
		TextDim:     lipgloss.Color("250"), // light_grey
		HeaderBg:    lipgloss.Color("231"), // bright_white
		HeaderFg:    lipgloss.Color("0"),   // black
		Highlight:   lipgloss.Color("226"), // bright_yellow
		TabActiveBg: lipgloss.Color("226"), // bright_yellow
		TabActiveFg: lipgloss.Color("0"),   // black
		Border:      lipgloss.Color("231"), // bright_white
		Title:       lipgloss.Color("231"), // bright_white
		Accent:      lipgloss.Color("226"), // bright_yellow
		Error:       lipgloss.Color("196"), // bright_red
	},
}

// themeOrder is the display order for listings
var themeOrder = []string{"classic", "amber", "matrix", "ice", "ocean", "high_contrast"}

// Get returns a theme by name, falling back to classic
func Get(name string) *Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["classic"]
}

// List returns all available theme names
func List() []string {
	names := make([]string, 0, len(themes))
	for _, name := range themeOrder {
		if _, ok := themes[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// ThemeInfo provides display information about a theme
type ThemeInfo struct {
	Key         string
	Name        string
	Description string
}

// GetInfo returns information about all themes in display order
func GetInfo() []ThemeInfo {
	info := make([]ThemeInfo, 0, len(themeOrder))
	for _, key := range themeOrder {
		if t, ok := themes[key]; ok {
			info = append(info, ThemeInfo{
				Key:         key,
				Name:        t.Name,
				Description: t.Description,
			})
		}
	}
	return info
}

// TextStyle returns a style using the theme's text color
func (t *Theme) TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

// TextDimStyle returns a style using the theme's dim text color
func (t *Theme) TextDimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.TextDim)
}

// BorderStyle returns a style using the theme's border color
func (t *Theme) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Border)
}

// TitleStyle returns a bold style using the theme's title color
func (t *Theme) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Title).Bold(true)
}

// HeaderStyle returns the table header row style
func (t *Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.HeaderBg).Foreground(t.HeaderFg).Bold(true)
}

// HighlightStyle returns the selected row style
func (t *Theme) HighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Highlight).Reverse(true).Bold(true)
}

// TabActiveStyle returns the active tab label style
func (t *Theme) TabActiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.TabActiveBg).Foreground(t.TabActiveFg).Bold(true)
}

// AccentStyle returns a style using the theme's accent color
func (t *Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent)
}

// ErrorStyle returns a style using the theme's error color
func (t *Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}
