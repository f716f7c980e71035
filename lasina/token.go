package lasina

import (
	"fmt"
	"strings"

	"github.com/npillmayer/sitelen/vocab"
)

// TokKind is the category of a token.
type TokKind int8

// Token kinds. The punctuation kinds come first, in the order of
// vocab.Punctuation.
const (
	LParen      TokKind = iota // (
	RParen                     // )
	LBrack                     // [
	RBrack                     // ]
	LBrace                     // {
	RBrace                     // }
	Plus                       // +
	Minus                      // -
	Underscore                 // _
	Dot                        // .
	Colon                      // :
	WordToken                  // a vocabulary word
	LasinaToken                // lower-case alphabet run which is not a word
	SpaceToken                 // run of spaces
	OtherToken                 // anything else
)

var kindNames = []string{
	"LParen", "RParen", "LBrack", "RBrack", "LBrace", "RBrace",
	"Plus", "Minus", "Underscore", "Dot", "Colon",
	"Word", "Lasina", "Space", "Other",
}

func (k TokKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("TokKind(%d)", int8(k))
	}
	return kindNames[k]
}

// IsPunct is a predicate: is k one of the punctuation kinds?
func (k TokKind) IsPunct() bool {
	return k >= LParen && k <= Colon
}

// Token is a token of romanized text. Word tokens carry a vocabulary word,
// Lasina, Space and Other tokens carry their input text. Punctuation tokens
// are fully described by their kind.
//
// Tokens are comparable with ==.
type Token struct {
	Kind TokKind
	Word vocab.Word
	Text string
}

// MakeWord creates a Word token.
func MakeWord(w vocab.Word) Token {
	return Token{Kind: WordToken, Word: w}
}

// MakeLasina creates a Lasina token for text.
func MakeLasina(text string) Token {
	return Token{Kind: LasinaToken, Text: text}
}

// MakeSpace creates a Space token for a run of spaces.
func MakeSpace(text string) Token {
	return Token{Kind: SpaceToken, Text: text}
}

// MakeOther creates an Other token for text.
func MakeOther(text string) Token {
	return Token{Kind: OtherToken, Text: text}
}

// MakePunct creates a punctuation token for r. It returns false if r is not
// one of vocab.Punctuation.
func MakePunct(r rune) (Token, bool) {
	if r > 0x7f {
		return Token{}, false
	}
	i := strings.IndexRune(vocab.Punctuation, r)
	if i < 0 {
		return Token{}, false
	}
	return Token{Kind: TokKind(i)}, true
}

// IsSpace is a predicate: is t a Space token?
func (t Token) IsSpace() bool {
	return t.Kind == SpaceToken
}

// IsOther is a predicate: is t an Other token?
func (t Token) IsOther() bool {
	return t.Kind == OtherToken
}

// IsWordLike is true for Word and Lasina tokens.
func (t Token) IsWordLike() bool {
	return t.Kind == WordToken || t.Kind == LasinaToken
}

// IsPunct is a predicate: is t a punctuation token?
func (t Token) IsPunct() bool {
	return t.Kind.IsPunct()
}

// Punct returns the punctuation character of a punctuation token.
func (t Token) Punct() (rune, bool) {
	if !t.IsPunct() {
		return 0, false
	}
	return rune(vocab.Punctuation[t.Kind]), true
}

// Modifier returns the modifier a punctuation token stands for.
func (t Token) Modifier() (vocab.Modifier, bool) {
	r, ok := t.Punct()
	if !ok {
		return 0, false
	}
	return vocab.ModifierForPunct(r)
}

// Literal reconstructs the input text of t.
func (t Token) Literal() string {
	switch {
	case t.Kind == WordToken:
		return t.Word.Lasina()
	case t.IsPunct():
		r, _ := t.Punct()
		return string(r)
	}
	return t.Text
}

// String is a debug Stringer for tokens.
func (t Token) String() string {
	switch t.Kind {
	case WordToken:
		return fmt.Sprintf("Word(%s)", t.Word)
	case SpaceToken:
		return fmt.Sprintf("Space(%d)", len(t.Text))
	case LasinaToken, OtherToken:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
	return t.Kind.String()
}
