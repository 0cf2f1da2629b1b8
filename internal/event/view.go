package event

import (
	"fmt"
	"strings"
)

// ViewID identifies one of the application's views.
type ViewID uint8

const (
	// MainMenu is the start view listing the other modes.
	MainMenu ViewID = iota
	// CharacterEditor is the command-line driven editor.
	CharacterEditor
	// CombatTracker is the combat view.
	CombatTracker

	viewCount
)

// Views lists every ViewID in declaration order.
func Views() []ViewID {
	return []ViewID{MainMenu, CharacterEditor, CombatTracker}
}

// Valid reports whether v names a known view.
func (v ViewID) Valid() bool {
	return v < viewCount
}

// String returns the view name.
func (v ViewID) String() string {
	switch v {
	case MainMenu:
		return "main_menu"
	case CharacterEditor:
		return "character_editor"
	case CombatTracker:
		return "combat_tracker"
	default:
		return fmt.Sprintf("ViewID(%d)", v)
	}
}

var viewNames = map[string]ViewID{
	"menu":             MainMenu,
	"main_menu":        MainMenu,
	"editor":           CharacterEditor,
	"character_editor": CharacterEditor,
	"tracker":          CombatTracker,
	"combat_tracker":   CombatTracker,
}

// ParseViewID returns the view for a short or full name, case-insensitively.
func ParseViewID(name string) (ViewID, bool) {
	v, ok := viewNames[strings.ToLower(name)]
	return v, ok
}
