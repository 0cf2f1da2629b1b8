// Package key defines the keyboard input model shared by the terminal backend,
// the dispatcher and the views.
//
// An Event carries the key code, the rune for character keys, the modifier set
// and the kind of the transition (press, release or repeat). Terminals driven
// through tcell only ever report presses, but the kind is kept so that views can
// rely on the dispatcher filtering everything else out.
//
// # Key Specifications
//
// Keymaps in the configuration file name keys with specification strings:
//
//   - Simple keys: "a", "j", "Enter", "Esc", "Down"
//   - With modifiers: "Ctrl+Z", "Alt+Enter"
//   - Vim-style: "<C-z>", "<CR>", "<Esc>"
//
// Parse turns a specification into an Event that can be compared against
// incoming input with Event.Matches.
package key
