package lasina

// Sequence is a lazy, finite stream of tokens. Next returns false once the
// stream is exhausted.
type Sequence interface {
	Next() (Token, bool)
}

// Scanner is a Sequence over romanized input text. Scanners are single-pass;
// to scan an input again, create a new one with Tokens.
type Scanner struct {
	input string // unconsumed input
	pos   uint64 // byte position of input within the original text
	span  Span   // extent of the last token
}

var _ Sequence = (*Scanner)(nil)

// Tokens creates a scanner for input.
func Tokens(input string) *Scanner {
	return &Scanner{input: input}
}

// Next returns the next token of the input.
func (s *Scanner) Next() (Token, bool) {
	if s.Done() {
		return Token{}, false
	}
	token, rest := NextToken(s.input)
	consumed := uint64(len(s.input) - len(rest))
	s.span = Span{s.pos, s.pos + consumed}
	s.pos = s.span.To()
	s.input = rest
	tracer().Debugf("token %v @%v", token, s.span)
	return token, true
}

// Done returns true if all of the input has been consumed.
func (s *Scanner) Done() bool {
	return s == nil || s.input == ""
}

// Span returns the extent of the token returned last, as byte offsets into
// the input.
func (s *Scanner) Span() Span {
	return s.span
}

// --- Helpers ---------------------------------------------------------------

type sliceSeq struct {
	tokens []Token
}

// FromSlice wraps a slice of tokens into a Sequence.
func FromSlice(tokens []Token) Sequence {
	return &sliceSeq{tokens: tokens}
}

func (seq *sliceSeq) Next() (Token, bool) {
	if len(seq.tokens) == 0 {
		return Token{}, false
	}
	t := seq.tokens[0]
	seq.tokens = seq.tokens[1:]
	return t, true
}

// All drains a sequence into a slice.
func All(seq Sequence) []Token {
	var tokens []Token
	for t, ok := seq.Next(); ok; t, ok = seq.Next() {
		tokens = append(tokens, t)
	}
	return tokens
}

// Join concatenates the literals of tokens, reproducing the scanned text.
func Join(tokens []Token) string {
	var n int
	for _, t := range tokens {
		n += len(t.Literal())
	}
	b := make([]byte, 0, n)
	for _, t := range tokens {
		b = append(b, t.Literal()...)
	}
	return string(b)
}
