package colors

// Wave returns the Kanagawa Wave color scheme (the default dark Kanagawa theme)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: palette.oniViolet,

		Background:       palette.sumiInk3,
		ColumnBackground: palette.sumiInk4,

		Create: palette.springGreen,
		Edit:   palette.crystalBlue,
		Delete: palette.peachRed,

		ColumnBorder:   palette.sumiInk6,
		DropBorder:     palette.springGreen,
		CardBorder:     palette.sumiInk5,
		CardBackground: palette.sumiInk4,
		SelectedBorder: palette.springBlue,
		LiftedBorder:   palette.carpYellow,
		LiftedBg:       palette.waveBlue2,

		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		InfoFg:    palette.springBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,
	}
}
