// Package renderer draws views into an in-memory Frame and flushes frames to
// a terminal backend.
//
// Views never touch the backend. Each render pass the Renderer resets its
// Frame, lets the active view draw into it with the widgets in this package
// (Block, List, Text), and then writes only the cells that changed since the
// previous pass:
//
//	view.Draw(frame) ──▶ Frame ──diff──▶ backend.SetCell ──▶ backend.Show
//
// Drawing is a pure function of view state, so two passes without an
// intervening event produce identical frames.
package renderer
