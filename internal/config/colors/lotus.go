package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: palette.lotusViolet4,

		Background:       palette.lotusWhite3,
		ColumnBackground: palette.lotusWhite4,

		Create: palette.lotusGreen,
		Edit:   palette.lotusBlue4,
		Delete: palette.lotusRed,

		ColumnBorder:   palette.lotusGray3,
		DropBorder:     palette.lotusGreen,
		CardBorder:     palette.lotusWhite5,
		CardBackground: palette.lotusWhite2,
		SelectedBorder: palette.lotusAqua,
		LiftedBorder:   palette.lotusYellow3,
		LiftedBg:       palette.lotusCyan,

		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray3,
		Normal: palette.lotusInk1,

		InfoFg:    palette.lotusBlue4,
		InfoBg:    palette.lotusCyan,
		WarningFg: palette.lotusYellow3,
		WarningBg: palette.lotusWhite5,
		ErrorFg:   palette.lotusRed,
		ErrorBg:   palette.lotusPink,
	}
}
