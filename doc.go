/*
Package sitelen transliterates toki pona between romanized text ("sitelen
Lasina") and the glyph script "sitelen pona", encoded in the private use area
of Unicode (UCSUR).

Package structure is as follows:

■ vocab: the fixed tables of words and modifiers with their glyph code points.

■ lasina: a scanner for romanized text, producing a lazy sequence of tokens.
Package lasina/lexmach is an alternative scanner built on a compiled DFA.

■ render: the generator turning a token sequence into glyph text. It handles
the "pi (…)" construct (long pi) and the spacing between glyphs.

■ reverse: conversion of glyph text back to romanized text.

The base package bundles these into entry points for a line-oriented
converter; command sitelen is such a converter.

	glyphs := sitelen.Transliterate("toki pona")
	text := sitelen.Reverse(glyphs)   // "toki pona "

All functions may be called concurrently. The vocabulary is immutable and every
call owns its scanner and generator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sitelen
