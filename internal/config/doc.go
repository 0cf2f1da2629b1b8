// Package config loads the tabletop configuration file and watches it for
// changes.
//
// The format is chosen by file extension: .toml or .yaml/.yml. Fields left
// out of the file keep their default values, and a missing file is not an
// error. Unknown keys are rejected so typos surface at startup.
//
//	exit_policy = "menu"   # or "quit"
//	watch = true
//
//	[log]
//	level = "info"
//	file = ""
//
//	[keys]
//	next = ["Down", "j"]
//	previous = ["Up", "k"]
//	submit = ["Enter"]
//	exit = ["Esc"]
//	undo = ["<C-z>"]
//
//	[commands]
//	script = "aliases.lua"
package config
