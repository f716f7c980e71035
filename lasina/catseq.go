package lasina

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/sitelen/vocab"
)

// --- Category codes --------------------------------------------------------

// CatCode is the category of a rune. Runs of runes of equal category form
// the raw material for tokens.
type CatCode int8

const (
	IllegalCatCode CatCode = iota
	CatPunct               // one of vocab.Punctuation
	CatSpace               // U+0020
	CatLetter              // alphabet letter, either case
	CatOther               // everything else
)

// RuneCategorizer assigns categories to runes. Loners are runes which do not
// form sequences with their neighbours.
type RuneCategorizer interface {
	Cat(r rune) (cat CatCode, isLoner bool)
}

// CatSeq is a run of runes sharing one category.
type CatSeq struct {
	Cat    CatCode // catcode of all runes in this sequence
	Length int     // length of sequence in terms of runes
	Size   int     // length of sequence in bytes
}

// NextCatSeq reads the longest prefix of input consisting of runes of the same
// category. Loners end a sequence after one rune. For empty input the zero
// CatSeq is returned.
//
// Input is decoded rune by rune, so a sequence never ends in the middle of a
// multi-byte encoding. Invalid bytes are treated as runes of their own.
func NextCatSeq(input string, rc RuneCategorizer) (csq CatSeq) {
	for csq.Size < len(input) {
		r, sz := utf8.DecodeRuneInString(input[csq.Size:])
		cat, isLoner := rc.Cat(r)
		if csq.Length == 0 {
			csq.Cat = cat
		} else if cat != csq.Cat {
			break
		}
		csq.Length++
		csq.Size += sz
		if isLoner { // rune category is not allowed to form sequences
			break
		}
	}
	return
}

// --- Categories of romanized text ------------------------------------------

// Alphabet is the set of letters words are made of.
const Alphabet = "aeijklmnopstuw"

type lasinaCategorizer struct{}

// Categorizer is the RuneCategorizer for romanized text.
var Categorizer RuneCategorizer = lasinaCategorizer{}

func (lasinaCategorizer) Cat(r rune) (CatCode, bool) {
	switch {
	case r == ' ':
		return CatSpace, false
	case IsAlphabetLetter(r):
		return CatLetter, false
	case vocab.IsPunct(r):
		return CatPunct, true
	}
	return CatOther, false
}

// IsAlphabetLetter is a predicate: is r a letter of the alphabet, in upper or
// lower case?
func IsAlphabetLetter(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return r >= 'a' && r <= 'z' && strings.IndexRune(Alphabet, r) >= 0
}

// isLowerAlphabet is true if every rune of s is a lower-case alphabet letter.
func isLowerAlphabet(s string) bool {
	for _, r := range s {
		if r > 'z' || strings.IndexRune(Alphabet, r) < 0 {
			return false
		}
	}
	return true
}
