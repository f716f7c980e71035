package render

import (
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/sitelen/lasina"
	"github.com/npillmayer/sitelen/vocab"
)

// ConfigCloseScopes is the configuration key for closing scopes left open at
// the end of input.
const ConfigCloseScopes = "close-unmatched-scopes"

// Scope is a construct which changes rendering until it is closed.
type Scope int8

const (
	PiScope Scope = iota // long pi
)

func (s Scope) String() string {
	switch s {
	case PiScope:
		return "pi"
	}
	return "?"
}

// Generator renders a token sequence to glyph text. A generator is used for a
// single sequence and must not be shared between goroutines.
type Generator struct {
	seq        lasina.Sequence
	scopes     *arraystack.Stack      // of Scope
	lookahead  *doublylinkedlist.List // of lasina.Token
	prevIsWord bool                   // last token written was a word glyph
	closeOpen  bool                   // close unmatched scopes at end of input
}

// Option configures a generator.
type Option func(*Generator)

// CloseUnmatchedScopes overrides configuration flag "close-unmatched-scopes".
func CloseUnmatchedScopes(b bool) Option {
	return func(g *Generator) {
		g.closeOpen = b
	}
}

// NewGenerator creates a generator reading tokens from seq.
func NewGenerator(seq lasina.Sequence, opts ...Option) *Generator {
	g := &Generator{
		seq:       seq,
		scopes:    arraystack.New(),
		lookahead: doublylinkedlist.New(),
		closeOpen: gconf.GetBool(ConfigCloseScopes),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WriteTokens renders all tokens of seq to w. Errors of w are returned
// unmodified.
func WriteTokens(w io.Writer, seq lasina.Sequence, opts ...Option) error {
	return NewGenerator(seq, opts...).WriteTokens(w)
}

// Render renders all tokens of seq and returns the glyph text.
func Render(seq lasina.Sequence, opts ...Option) string {
	var sb strings.Builder
	_ = WriteTokens(&sb, seq, opts...) // strings.Builder does not fail
	return sb.String()
}

// WriteTokens renders the generator's token sequence to w.
func (g *Generator) WriteTokens(w io.Writer) error {
	for token, ok := g.nextToken(); ok; token, ok = g.nextToken() {
		if token.Kind == lasina.WordToken && token.Word == vocab.Pi {
			handled, err := g.handlePi(w)
			if err != nil {
				return err
			}
			if handled {
				g.prevIsWord = true
				continue
			}
		}
		if token.Kind == lasina.RParen && g.popScope(PiScope) {
			if err := writeRune(w, vocab.EndOfLongGlyph.Sitelen()); err != nil {
				return err
			}
			continue
		}
		if token.IsSpace() {
			// spaces never register as the previous token
			if err := g.writeSpaces(w, token.Text); err != nil {
				return err
			}
			continue
		}
		if err := writeToken(w, token); err != nil {
			return err
		}
		g.prevIsWord = token.IsWordLike()
	}
	return g.finish(w)
}

// handlePi looks for an opening parenthesis behind "pi", skipping spaces. If
// there is one, it is removed from the lookahead and a long pi is started.
// Returns false if "pi" is to be treated as a regular word.
func (g *Generator) handlePi(w io.Writer) (bool, error) {
	i := 0
	t, ok := g.peek(i)
	for ok && t.IsSpace() {
		i++
		t, ok = g.peek(i)
	}
	if !ok || t.Kind != lasina.LParen {
		return false, nil
	}
	g.peekRemove(i)
	g.pushScope(PiScope)
	return true, writeRune(w, vocab.StartOfLongPi.Sitelen())
}

// writeSpaces writes a run of spaces. After a word one space is dropped, as
// word glyphs need no separator. Within a long pi, spaces are rendered as long
// pi extensions, one for every two spaces of the input.
func (g *Generator) writeSpaces(w io.Writer, spaces string) error {
	if top, ok := g.topScope(); ok && top == PiScope {
		n := len(spaces) / 2
		tracer().Debugf("%d spaces within long pi, %d extensions", len(spaces), n)
		ext := string(vocab.CombiningLongPiExtension.Sitelen())
		_, err := io.WriteString(w, strings.Repeat(ext, n))
		return err
	}
	n := len(spaces)
	if g.prevIsWord && n > 0 {
		n--
	}
	_, err := io.WriteString(w, strings.Repeat(" ", n))
	return err
}

// finish handles scopes still open at the end of input.
func (g *Generator) finish(w io.Writer) error {
	for !g.scopes.Empty() {
		s, _ := g.scopes.Pop()
		if !g.closeOpen {
			tracer().Debugf("dropping unmatched scope %v at end of input", s)
			continue
		}
		tracer().Debugf("closing unmatched scope %v at end of input", s)
		if err := writeRune(w, vocab.EndOfLongGlyph.Sitelen()); err != nil {
			return err
		}
	}
	return nil
}

// --- Lookahead -------------------------------------------------------------

func (g *Generator) nextToken() (lasina.Token, bool) {
	if !g.lookahead.Empty() {
		t, _ := g.lookahead.Get(0)
		g.lookahead.Remove(0)
		return t.(lasina.Token), true
	}
	return g.seq.Next()
}

// peek returns the token at position index of the lookahead, reading tokens
// from the sequence as needed.
func (g *Generator) peek(index int) (lasina.Token, bool) {
	for g.lookahead.Size() <= index {
		t, ok := g.seq.Next()
		if !ok {
			return lasina.Token{}, false
		}
		g.lookahead.Add(t)
	}
	t, _ := g.lookahead.Get(index)
	return t.(lasina.Token), true
}

// peekRemove removes the token at position index from the lookahead.
func (g *Generator) peekRemove(index int) {
	g.lookahead.Remove(index)
}

// --- Scopes ----------------------------------------------------------------

func (g *Generator) pushScope(s Scope) {
	tracer().Debugf("enter scope %v", s)
	g.scopes.Push(s)
}

func (g *Generator) topScope() (Scope, bool) {
	s, ok := g.scopes.Peek()
	if !ok {
		return 0, false
	}
	return s.(Scope), true
}

// popScope pops the top scope if it is s.
func (g *Generator) popScope(s Scope) bool {
	if top, ok := g.topScope(); !ok || top != s {
		return false
	}
	g.scopes.Pop()
	tracer().Debugf("leave scope %v", s)
	return true
}

// ---------------------------------------------------------------------------

// writeToken writes the glyph form of a token which needs no context.
func writeToken(w io.Writer, t lasina.Token) error {
	switch {
	case t.Kind == lasina.WordToken:
		return writeRune(w, t.Word.Sitelen())
	case t.IsPunct():
		if m, ok := t.Modifier(); ok {
			return writeRune(w, m.Sitelen())
		}
	}
	_, err := io.WriteString(w, t.Literal())
	return err
}

func writeRune(w io.Writer, r rune) error {
	_, err := io.WriteString(w, string(r))
	return err
}
