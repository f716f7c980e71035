package lexmach

import (
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sitelen/lasina"
	"github.com/npillmayer/sitelen/vocab"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'sitelen.lasina'.
func tracer() tracing.Trace {
	return tracing.Select("sitelen.lasina")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a tokenizer for
// romanized text.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

var (
	defaultAdapter *LMAdapter
	defaultErr     error
	initOnce       sync.Once
)

// Default returns the shared adapter, compiling the DFA on first use.
func Default() (*LMAdapter, error) {
	initOnce.Do(func() {
		defaultAdapter, defaultErr = NewLMAdapter()
	})
	return defaultAdapter, defaultErr
}

// NewLMAdapter creates a new lexmachine adapter and compiles its DFA.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter() (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range vocab.Punctuation {
		tok, _ := lasina.MakePunct(lit)
		adapter.Lexer.Add([]byte(`\`+string(lit)), constToken(tok))
	}
	letters := lasina.Alphabet + strings.ToUpper(lasina.Alphabet)
	adapter.Lexer.Add([]byte(` +`), makeToken(lasina.MakeSpace))
	adapter.Lexer.Add([]byte(`[`+letters+`]+`), makeToken(lasina.Classify))
	adapter.Lexer.Add([]byte(`[^`+letters+` `+escaped(vocab.Punctuation)+`]+`), makeToken(lasina.MakeOther))
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

func escaped(chars string) string {
	return `\` + strings.Join(strings.Split(chars, ""), `\`)
}

// Scanner creates a scanner for a given input. The scanner implements
// lasina.Sequence.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// Tokens creates a scanner for input, using the default adapter.
func Tokens(input string) (*LMScanner, error) {
	lm, err := Default()
	if err != nil {
		return nil, err
	}
	return lm.Scanner(input)
}

// LMScanner is a scanner type for lexmachine scanners.
type LMScanner struct {
	scanner *lexmachine.Scanner
	span    lasina.Span
	Error   func(error)
}

var _ lasina.Sequence = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Next is part of the lasina.Sequence interface.
func (lms *LMScanner) Next() (lasina.Token, bool) {
	if lms.scanner == nil {
		return lasina.Token{}, false
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return lasina.Token{}, false
	}
	token := tok.(*lexmachine.Token)
	lms.span = lasina.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))}
	tracer().Debugf("DFA token %v @%v", token.Value, lms.span)
	return token.Value.(lasina.Token), true
}

// Span returns the extent of the token returned last.
func (lms *LMScanner) Span() lasina.Span {
	return lms.span
}

// ---------------------------------------------------------------------------

// makeToken is an action which turns the scanned match into a token by
// calling mk on the matched text.
func makeToken(mk func(string) lasina.Token) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		t := mk(string(m.Bytes))
		return s.Token(int(t.Kind), t, m), nil
	}
}

// constToken is an action which always produces tok.
func constToken(tok lasina.Token) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(tok.Kind), tok, m), nil
	}
}
