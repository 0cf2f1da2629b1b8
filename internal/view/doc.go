// Package view implements the three screens of tabletop: the main menu,
// the character editor and the combat tracker.
//
// Views are driven by the dispatcher goroutine only. They draw into a
// renderer.Frame and react to events; anything they want to happen next is
// sent back through an event.Sender rather than done directly.
package view
