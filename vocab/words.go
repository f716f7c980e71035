package vocab

import (
	"fmt"

	"github.com/emirpasic/gods/maps/hashbidimap"
)

// WordBase is the code point of the glyph for word 0 ("a").
const WordBase rune = 0xf1900

// WordCount is the number of words in the vocabulary.
const WordCount = 137

// Word is a word of the vocabulary, identified by its position in the
// word list. The glyph of a word is WordBase + Word.
type Word uint8

// Pi is the word "pi". It is the only word with special treatment during
// rendering (long pi).
const Pi Word = 0x4d

// The order of this list is significant: it determines the glyph code points.
var spellings = [WordCount]string{
	"a", "akesi", "ala", "alasa", "ale", "anpa", "ante", "anu",
	"awen", "e", "en", "esun", "ijo", "ike", "ilo", "insa",
	"jaki", "jan", "jelo", "jo", "kala", "kalama", "kama", "kasi",
	"ken", "kepeken", "kili", "kiwen", "ko", "kon", "kule", "kulupu",
	"kute", "la", "lape", "laso", "lawa", "len", "lete", "li",
	"lili", "linja", "lipu", "loje", "lon", "luka", "lukin", "lupa",
	"ma", "mama", "mani", "meli", "mi", "mije", "moku", "moli",
	"monsi", "mu", "mun", "musi", "mute", "nanpa", "nasa", "nasin",
	"nena", "ni", "nimi", "noka", "o", "olin", "ona", "open",
	"pakala", "pali", "palisa", "pan", "pana", "pi", "pilin", "pimeja",
	"pini", "pipi", "poka", "poki", "pona", "pu", "sama", "seli",
	"selo", "seme", "sewi", "sijelo", "sike", "sin", "sina", "sinpin",
	"sitelen", "sona", "soweli", "suli", "suno", "supa", "suwi", "tan",
	"taso", "tawa", "telo", "tenpo", "toki", "tomo", "tu", "unpa",
	"uta", "utala", "walo", "wan", "waso", "wawa", "weka", "wile",
	"namako", "kin", "oko", "kipisi", "leko", "monsuta", "tonsi", "jasima",
	"kijetesantakalu", "soko", "meso", "epiku", "kokosila", "lanpan", "n", "misikeke",
	"ku",
}

// spellingIndex maps spellings to words and back. It is filled once in init()
// and read-only thereafter.
var spellingIndex = hashbidimap.New()

func init() {
	for i, s := range spellings {
		if _, dup := spellingIndex.Get(s); dup {
			panic(fmt.Sprintf("vocabulary: duplicate spelling %q", s))
		}
		spellingIndex.Put(s, Word(i))
	}
	if w, ok := LookupWord("pi"); !ok || w != Pi {
		panic("vocabulary: word list out of sync with constant Pi")
	}
}

// LookupWord finds the word for a romanized spelling. Matching is exact and
// case-sensitive against the canonical lower-case spelling.
func LookupWord(spelling string) (Word, bool) {
	w, found := spellingIndex.Get(spelling)
	if !found {
		return 0, false
	}
	return w.(Word), true
}

// WordFromSitelen returns the word for a glyph code point, if r lies within
// the word range [WordBase, WordBase+WordCount).
func WordFromSitelen(r rune) (Word, bool) {
	if r < WordBase || r >= WordBase+WordCount {
		return 0, false
	}
	return Word(r - WordBase), true
}

// Valid is a predicate: is w a word of the vocabulary?
func (w Word) Valid() bool {
	return int(w) < WordCount
}

// Lasina returns the canonical romanized spelling of w.
func (w Word) Lasina() string {
	if !w.Valid() {
		return ""
	}
	return spellings[w]
}

// Sitelen returns the glyph code point of w.
func (w Word) Sitelen() rune {
	return WordBase + rune(w)
}

func (w Word) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Word(%d)", uint8(w))
	}
	return spellings[w]
}

// Words returns the spellings of all words, ordered by word code.
func Words() []string {
	s := make([]string, WordCount)
	copy(s, spellings[:])
	return s
}
