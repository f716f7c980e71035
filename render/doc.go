/*
Package render transduces a stream of romanized tokens into glyph text.

Most tokens translate one-to-one: words to their glyphs, punctuation to the
glyphs of the corresponding modifiers, everything else verbatim. Two rules
need context:

Spacing. Word glyphs separate themselves, so a run of spaces following a word
loses one space.

Long pi. "pi" followed by an opening parenthesis (possibly with spaces in
between) renders as a single start-of-long-pi glyph; the parenthesis is
swallowed. The matching closing parenthesis ends the long glyph. Spaces inside
a long pi render as long pi extensions, one per two spaces.

If the input ends while a long pi is still open, the scope is dropped
silently. Setting configuration flag "close-unmatched-scopes" (or using option
CloseUnmatchedScopes) makes the generator close open scopes instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sitelen.render'.
func tracer() tracing.Trace {
	return tracing.Select("sitelen.render")
}
