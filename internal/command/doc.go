// Package command turns a line typed into the character editor into an
// application event.
//
// The pipeline has two stages. Lex splits the line into Word and Number
// tokens and rejects any character that cannot start or end a token. A
// Table then parses the tokens: the first token must be a word naming a
// registered command, and the remaining tokens are that command's
// arguments.
//
//	line := word (ws+ token)*
//	token := word | ['-'] digit+
//
// Numbers are 8-bit signed integers. A literal that does not fit (including
// -128, since the magnitude is parsed before negation) is dropped from the
// token stream rather than reported as an error; set Lexer.Overflow to
// observe such drops.
//
// Commands are table driven. New commands are added with Table.Register or
// Table.Alias and never require lexer changes:
//
//	t := command.DefaultTable()
//	_ = t.Alias("quit", "exit")
//	_ = t.Alias("combat", "view", command.Word("tracker"))
package command
