/*
Command sitelen converts toki pona between romanized text and sitelen pona
glyphs.

	sitelen [flags] [from | to]

Direction "from" (the default) reads romanized text from stdin and writes
glyphs, direction "to" converts glyphs back to romanized text. Input is
processed line by line; output is flushed after every line, so sitelen may
be used in a pipe with interactive tools.

Flags:

	-trace level     trace level for all sitelen packages [Debug|Info|Error]
	-i               interactive mode
	-lexer scan|dfa  scanner for romanized text
	-close-scopes    close a long pi left open at the end of a line
	-version         print the vocabulary fingerprint and exit

Configuration is read from NestedText files for application tag "sitelen"
(e.g., $XDG_CONFIG_HOME/sitelen/config.nt). Flags take precedence.

	direction: to
	lexer: dfa
	tracelevel:
	  root: Info
	  sitelen: Info
	  sitelen.render: Debug

In interactive mode, lines are converted as they are typed. Lines starting
with a colon are commands:

	:from           convert romanized text to glyphs
	:to             convert glyphs to romanized text
	:tokens <text>  show the tokens of romanized text
	:quit           leave (as does <ctrl>D)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sitelen.cli'
func tracer() tracing.Trace {
	return tracing.Select("sitelen.cli")
}
