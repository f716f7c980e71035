package vocab

import (
	"fmt"

	"github.com/emirpasic/gods/maps/hashbidimap"
)

// ModifierBase is the code point of the glyph for modifier 0.
const ModifierBase rune = 0xf1990

// ModifierCount is the number of modifiers.
const ModifierCount = 14

// Modifier is a structural marker glyph (brackets, joiners, long glyphs, …).
type Modifier uint8

// Modifiers, in code order. The glyph of a modifier is ModifierBase + Modifier.
const (
	StartOfCartouche Modifier = iota
	EndOfCartouche
	CombiningCartoucheExtension
	StartOfLongPi
	CombiningLongPiExtension
	StackingJoiner
	ScalingJoiner
	StartOfLongGlyph
	EndOfLongGlyph
	CombiningLongGlyphExtension
	StartOfReverseLongGlyph
	EndOfReverseLongGlyph
	MiddleDot
	Colon
)

var modifierNames = [ModifierCount]string{
	"StartOfCartouche", "EndOfCartouche", "CombiningCartoucheExtension",
	"StartOfLongPi", "CombiningLongPiExtension", "StackingJoiner",
	"ScalingJoiner", "StartOfLongGlyph", "EndOfLongGlyph",
	"CombiningLongGlyphExtension", "StartOfReverseLongGlyph",
	"EndOfReverseLongGlyph", "MiddleDot", "Colon",
}

// Punctuation lists the ASCII characters having a modifier counterpart.
const Punctuation = "()[]{}+-_.:"

// punctIndex maps punctuation runes to modifiers and back.
var punctIndex = hashbidimap.New()

// longPiLasina is what a start-of-long-pi glyph stands for in romanized text.
const longPiLasina = "pi ("

func init() {
	for r, m := range map[rune]Modifier{
		'[': StartOfCartouche,
		']': EndOfCartouche,
		'(': StartOfLongGlyph,
		')': EndOfLongGlyph,
		'{': StartOfReverseLongGlyph,
		'}': EndOfReverseLongGlyph,
		'-': StackingJoiner,
		'+': ScalingJoiner,
		'_': CombiningLongGlyphExtension,
		'.': MiddleDot,
		':': Colon,
	} {
		punctIndex.Put(r, m)
	}
	tracer().Debugf("vocabulary has %d words, %d modifiers (%d with punctuation)",
		WordCount, ModifierCount, punctIndex.Size())
}

// ModifierForPunct returns the modifier for an ASCII punctuation character.
func ModifierForPunct(r rune) (Modifier, bool) {
	m, found := punctIndex.Get(r)
	if !found {
		return 0, false
	}
	return m.(Modifier), true
}

// IsPunct is a predicate: does r have a modifier counterpart?
func IsPunct(r rune) bool {
	_, found := punctIndex.Get(r)
	return found
}

// ModifierFromSitelen returns the modifier for a glyph code point, if r lies
// within the modifier range.
func ModifierFromSitelen(r rune) (Modifier, bool) {
	if r < ModifierBase || r >= ModifierBase+ModifierCount {
		return 0, false
	}
	return Modifier(r - ModifierBase), true
}

// Valid is a predicate: is m a known modifier?
func (m Modifier) Valid() bool {
	return int(m) < ModifierCount
}

// Sitelen returns the glyph code point of m.
func (m Modifier) Sitelen() rune {
	return ModifierBase + rune(m)
}

// Punct returns the ASCII punctuation character for m, if there is one.
func (m Modifier) Punct() (rune, bool) {
	r, found := punctIndex.GetKey(m)
	if !found {
		return 0, false
	}
	return r.(rune), true
}

// Lasina returns the romanized text m stands for. StartOfLongPi is
// represented as "pi (". The combining extensions for cartouches and long pi
// have no romanized form.
func (m Modifier) Lasina() (string, bool) {
	if r, ok := m.Punct(); ok {
		return string(r), true
	}
	if m == StartOfLongPi {
		return longPiLasina, true
	}
	return "", false
}

func (m Modifier) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Modifier(%d)", uint8(m))
	}
	return modifierNames[m]
}
