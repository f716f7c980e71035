/*
Package lasina scans romanized ("sitelen Lasina") text into tokens.

Scanning is a single pass without backtracking. At each position the scanner
reads the longest run of runes sharing one category:

	■ punctuation: one of ( ) [ ] { } + - _ . : (always a single rune)
	■ spaces: the literal space character U+0020
	■ letters: the 14-letter alphabet a e i j k l m n o p s t u w, either case
	■ anything else

A run of letters is a Word token if it spells a vocabulary word, a Lasina
token if it is lower-case only, and an Other token otherwise. Every token
carries enough information to reproduce its input text (see Token.Literal).

NextToken is the primitive operation. Tokens wraps it into a lazy sequence,
which is what the renderer consumes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lasina

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sitelen.lasina'.
func tracer() tracing.Trace {
	return tracing.Select("sitelen.lasina")
}
