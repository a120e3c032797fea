package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCard    string `yaml:"add_card"`
	EditCard   string `yaml:"edit_card"`
	DeleteCard string `yaml:"delete_card"`

	// Dragging with the keyboard: grab a card, carry it, drop it
	GrabCard      string `yaml:"grab_card"`
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`

	// Forms
	SaveForm   string `yaml:"save_form"`
	CancelForm string `yaml:"cancel_form"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	ResetBoard string `yaml:"reset_board"`
	ShowHelp   string `yaml:"show_help"`
	Quit       string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddCard:    "a",
		EditCard:   "e",
		DeleteCard: "d",

		GrabCard:      "space",
		MoveCardLeft:  "H",
		MoveCardRight: "L",

		SaveForm:   "enter",
		CancelForm: "esc",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		// Other
		ResetBoard: "R",
		ShowHelp:   "?",
		Quit:       "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.AddCard, defaults.AddCard)
	fill(&k.EditCard, defaults.EditCard)
	fill(&k.DeleteCard, defaults.DeleteCard)
	fill(&k.GrabCard, defaults.GrabCard)
	fill(&k.MoveCardLeft, defaults.MoveCardLeft)
	fill(&k.MoveCardRight, defaults.MoveCardRight)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.CancelForm, defaults.CancelForm)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevCard, defaults.PrevCard)
	fill(&k.NextCard, defaults.NextCard)
	fill(&k.ResetBoard, defaults.ResetBoard)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
