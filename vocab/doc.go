/*
Package vocab holds the fixed vocabulary of the sitelen transliterator.

There are two tables: words and modifiers. Every word has a canonical
(lower-case) romanized spelling and a glyph code point in the private use
area, starting at WordBase. Modifiers are structural markers like cartouche
brackets, joiners and long-glyph markers; their glyphs start at ModifierBase.
A subset of modifiers has a single ASCII punctuation character as its
romanized counterpart.

Both tables are static. They are built once at package initialization and
never mutated afterwards, so they may be shared between goroutines freely.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vocab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sitelen.vocab'.
func tracer() tracing.Trace {
	return tracing.Select("sitelen.vocab")
}
