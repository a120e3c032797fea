package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/minitrello/internal/config"
	"github.com/thenoetrevino/minitrello/internal/tui/state"
)

// KeyMap holds the bindings shown by the help views.
// Dispatch itself matches msg.String() against config.KeyMappings.
type KeyMap struct {
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Grab      key.Binding
	Drop      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Save      key.Binding
	Cancel    key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// NewKeyMap builds the help bindings from the configured keys
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Add:       key.NewBinding(key.WithKeys(km.AddCard), key.WithHelp(km.AddCard, "add")),
		Edit:      key.NewBinding(key.WithKeys(km.EditCard), key.WithHelp(km.EditCard, "edit")),
		Delete:    key.NewBinding(key.WithKeys(km.DeleteCard), key.WithHelp(km.DeleteCard, "delete")),
		Grab:      key.NewBinding(key.WithKeys(km.GrabCard), key.WithHelp(km.GrabCard, "grab")),
		Drop:      key.NewBinding(key.WithKeys(km.GrabCard, km.SaveForm), key.WithHelp(km.GrabCard, "drop")),
		MoveLeft:  key.NewBinding(key.WithKeys(km.MoveCardLeft, km.PrevColumn, "left"), key.WithHelp(km.MoveCardLeft, "carry left")),
		MoveRight: key.NewBinding(key.WithKeys(km.MoveCardRight, km.NextColumn, "right"), key.WithHelp(km.MoveCardRight, "carry right")),
		Left:      key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "prev column")),
		Right:     key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next column")),
		Up:        key.NewBinding(key.WithKeys(km.PrevCard, "up"), key.WithHelp(km.PrevCard+"/↑", "prev card")),
		Down:      key.NewBinding(key.WithKeys(km.NextCard, "down"), key.WithHelp(km.NextCard+"/↓", "next card")),
		Save:      key.NewBinding(key.WithKeys(km.SaveForm), key.WithHelp(km.SaveForm, "save")),
		Cancel:    key.NewBinding(key.WithKeys(km.CancelForm), key.WithHelp(km.CancelForm, "cancel")),
		Reset:     key.NewBinding(key.WithKeys(km.ResetBoard), key.WithHelp(km.ResetBoard, "reset board")),
		Help:      key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:      key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Grab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Add, k.Edit, k.Delete, k.Reset},
		{k.Grab, k.MoveLeft, k.MoveRight, k.Drop},
		{k.Save, k.Cancel, k.Help, k.Quit},
	}
}

// ModeHelp returns the bindings worth showing in the status bar for mode
func (k KeyMap) ModeHelp(mode state.Mode) []key.Binding {
	switch mode {
	case state.AddMode, state.EditMode:
		return []key.Binding{k.Save, k.Cancel}
	case state.DragMode:
		return []key.Binding{k.MoveLeft, k.MoveRight, k.Drop}
	case state.ResetConfirmMode:
		return []key.Binding{
			key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "reset")),
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "keep")),
		}
	case state.HelpMode:
		return []key.Binding{k.Help}
	default:
		return k.ShortHelp()
	}
}
