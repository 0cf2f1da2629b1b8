// Package script runs Lua files that extend the editor command table.
//
// A script sees a small sandbox: the base, table, string and math
// libraries plus two functions.
//
//	alias("quit", "exit")           -- quit behaves like exit
//	alias("tracker", "view", "tracker")
//	log("aliases loaded")
//
// Extra arguments to alias are fixed in front of whatever the user types.
// Strings become words and integers in [-127, 127] become numbers. The io,
// os, debug and package libraries are not opened.
package script
