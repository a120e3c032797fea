// Package theme holds the active colors, set once from the config at startup
package theme

import "github.com/thenoetrevino/minitrello/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight        string
	Background       string
	ColumnBackground string
	Subtle           string
	Normal           string
	Title            string
	Create           string
	Edit             string
	Delete           string
	ColumnBorder     string
	DropBorder       string
	CardBorder       string
	CardBg           string
	SelectedBorder   string
	LiftedBorder     string
	LiftedBg         string
	InfoFg           string
	InfoBg           string
	WarningFg        string
	WarningBg        string
	ErrorFg          string
	ErrorBg          string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Background = colors.Background
	ColumnBackground = colors.ColumnBackground
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	ColumnBorder = colors.ColumnBorder
	DropBorder = colors.DropBorder
	CardBorder = colors.CardBorder
	CardBg = colors.CardBackground
	SelectedBorder = colors.SelectedBorder
	LiftedBorder = colors.LiftedBorder
	LiftedBg = colors.LiftedBg
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
