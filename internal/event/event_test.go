package event

import (
	"errors"
	"testing"

	"github.com/dshills/tabletop/internal/input/key"
)

func TestConstructors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		ev   Event
		kind Kind
		str  string
	}{
		{"exit", Exit(), KindExit, "exit"},
		{"change view", ChangeView(CharacterEditor), KindChangeView, "change_view(character_editor)"},
		{"submit", Submit(), KindSubmit, "submit"},
		{"next", Next(), KindNext, "next"},
		{"previous", Previous(), KindPrevious, "previous"},
		{"undo", Undo(), KindUndo, "undo"},
		{"input", Input(key.NewSpecialEvent(key.KeyEnter, key.ModNone)), KindInput, "input(<CR>)"},
		{"redraw", Redraw(), KindRedraw, "redraw"},
		{"reload", Reload(), KindReload, "reload"},
		{"fault", Fault(boom), KindFault, "fault(boom)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ev.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.ev.Kind, tt.kind)
			}
			if got := tt.ev.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestParseViewID(t *testing.T) {
	tests := []struct {
		in   string
		want ViewID
		ok   bool
	}{
		{"menu", MainMenu, true},
		{"MAIN_MENU", MainMenu, true},
		{"editor", CharacterEditor, true},
		{"character_editor", CharacterEditor, true},
		{"Tracker", CombatTracker, true},
		{"combat_tracker", CombatTracker, true},
		{"inventory", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseViewID(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseViewID(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestViewID_Valid(t *testing.T) {
	for _, v := range Views() {
		if !v.Valid() {
			t.Errorf("%v.Valid() = false", v)
		}
		if back, ok := ParseViewID(v.String()); !ok || back != v {
			t.Errorf("ParseViewID(%q) = %v, %v", v.String(), back, ok)
		}
	}
	if ViewID(99).Valid() {
		t.Error("ViewID(99).Valid() = true")
	}
}
