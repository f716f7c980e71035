/*
Package reverse converts glyph text ("sitelen pona") back to romanized text.

Conversion is context free. Every rune is looked up as a modifier glyph, then
as a word glyph. A match is replaced by its romanized literal followed by a
single space, as glyph text carries no word boundaries. Everything else is
copied unchanged.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reverse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sitelen.reverse'.
func tracer() tracing.Trace {
	return tracing.Select("sitelen.reverse")
}
