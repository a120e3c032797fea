// Package colors holds the built-in board color presets
package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the header, selections, highlights)
	Accent string `yaml:"accent"`

	Background       string `yaml:"background"`
	ColumnBackground string `yaml:"column_background"`

	// Semantic colors
	Create string `yaml:"create"` // add bar
	Edit   string `yaml:"edit"`   // inline editor
	Delete string `yaml:"delete"` // reset confirmation

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	DropBorder     string `yaml:"drop_border"` // column under a dragged card
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	LiftedBorder   string `yaml:"lifted_border"`
	LiftedBg       string `yaml:"lifted_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// Presets lists every built-in preset name
var Presets = []string{"default", "monochrome", "wave", "dragon", "lotus"}

// GetPreset returns a preset color scheme by name.
// Unknown names fall back to the default preset.
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.eachField(preset, func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	})
}

// MergeFrom overrides colors with every non-empty value in other.
// A preset in other replaces the base preset before the explicit colors are applied.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}
	c.eachField(&other, func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	})
}

// eachField pairs every color of c with the same color of other
func (c *ColorScheme) eachField(other *ColorScheme, fn func(dst *string, src string)) {
	fn(&c.Accent, other.Accent)
	fn(&c.Background, other.Background)
	fn(&c.ColumnBackground, other.ColumnBackground)
	fn(&c.Create, other.Create)
	fn(&c.Edit, other.Edit)
	fn(&c.Delete, other.Delete)
	fn(&c.ColumnBorder, other.ColumnBorder)
	fn(&c.DropBorder, other.DropBorder)
	fn(&c.CardBorder, other.CardBorder)
	fn(&c.CardBackground, other.CardBackground)
	fn(&c.SelectedBorder, other.SelectedBorder)
	fn(&c.LiftedBorder, other.LiftedBorder)
	fn(&c.LiftedBg, other.LiftedBg)
	fn(&c.Title, other.Title)
	fn(&c.Subtle, other.Subtle)
	fn(&c.Normal, other.Normal)
	fn(&c.InfoFg, other.InfoFg)
	fn(&c.InfoBg, other.InfoBg)
	fn(&c.WarningFg, other.WarningFg)
	fn(&c.WarningBg, other.WarningBg)
	fn(&c.ErrorFg, other.ErrorFg)
	fn(&c.ErrorBg, other.ErrorBg)
}
