package lasina

import (
	"unicode/utf8"

	"github.com/npillmayer/sitelen/vocab"
)

// NextToken scans the first token of input and returns it together with the
// unconsumed rest of input. Every call on non-empty input consumes at least
// one rune.
//
// For empty input NextToken returns an empty Space token and an empty rest.
// This sentinel signals exhaustion; callers should stop iterating.
func NextToken(input string) (Token, string) {
	if input == "" {
		return MakeSpace(""), ""
	}
	csq := NextCatSeq(input, Categorizer)
	text, rest := input[:csq.Size], input[csq.Size:]
	switch csq.Cat {
	case CatPunct:
		r, _ := utf8.DecodeRuneInString(text)
		if tok, ok := MakePunct(r); ok {
			return tok, rest
		}
		tracer().Errorf("punctuation category for non-punctuation %#U", r)
	case CatSpace:
		return MakeSpace(text), rest
	case CatLetter:
		return Classify(text), rest
	}
	return MakeOther(text), rest
}

// Classify makes a token from a run of alphabet letters: a Word token for a
// vocabulary word, a Lasina token if all letters are lower-case, and an Other
// token otherwise.
func Classify(run string) Token {
	if w, ok := vocab.LookupWord(run); ok {
		return MakeWord(w)
	}
	if isLowerAlphabet(run) {
		return MakeLasina(run)
	}
	return MakeOther(run)
}
