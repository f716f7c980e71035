package sitelen

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sitelen/lasina"
	"github.com/npillmayer/sitelen/lasina/lexmach"
	"github.com/npillmayer/sitelen/render"
	"github.com/npillmayer/sitelen/reverse"
)

// tracer traces with key 'sitelen'.
func tracer() tracing.Trace {
	return tracing.Select("sitelen")
}

// Configuration keys read by this package.
const (
	ConfigDirection = "direction" // "from" | "to"
	ConfigLexer     = "lexer"     // "scan" | "dfa"
)

// Direction selects the direction of a conversion.
type Direction int8

const (
	From Direction = iota // romanized to glyphs
	To                    // glyphs to romanized
)

func (d Direction) String() string {
	switch d {
	case From:
		return "from"
	case To:
		return "to"
	}
	return fmt.Sprintf("Direction(%d)", int8(d))
}

// ParseDirection parses a direction name, which is either "from" or "to".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "from":
		return From, nil
	case "to":
		return To, nil
	}
	return From, fmt.Errorf("unknown direction %q, expected \"from\" or \"to\"", s)
}

// ConfiguredDirection returns the direction set in the global configuration.
// If none is set, the direction is From.
func ConfiguredDirection() (Direction, error) {
	name := gconf.GetString(ConfigDirection)
	if name == "" {
		return From, nil
	}
	d, err := ParseDirection(name)
	if err != nil {
		return d, fmt.Errorf("configuration %q: %w", ConfigDirection, err)
	}
	return d, nil
}

// Tokenize splits romanized text into tokens.
func Tokenize(text string) []lasina.Token {
	return lasina.All(Tokens(text))
}

// Tokens returns a lazy token sequence for romanized text. If configuration
// key "lexer" is set to "dfa", the lexmachine scanner is used; if it cannot
// be set up, Tokens falls back to the default scanner.
func Tokens(text string) lasina.Sequence {
	if gconf.GetString(ConfigLexer) != "dfa" {
		return lasina.Tokens(text)
	}
	seq, err := lexmach.Tokens(text)
	if err != nil {
		tracer().Errorf("cannot use DFA scanner: %v", err)
		return lasina.Tokens(text)
	}
	return seq
}

// Render renders tokens to glyph text.
func Render(tokens []lasina.Token, opts ...render.Option) string {
	return render.Render(lasina.FromSlice(tokens), opts...)
}

// Transliterate converts romanized text to glyph text.
func Transliterate(text string, opts ...render.Option) string {
	return render.Render(Tokens(text), opts...)
}

// Reverse converts glyph text to romanized text.
func Reverse(text string) string {
	return reverse.Reverse(text)
}

// Convert converts a line of text in direction dir and writes the result to
// w. Errors of w are returned unmodified.
func Convert(w io.Writer, line string, dir Direction, opts ...render.Option) error {
	switch dir {
	case From:
		return render.WriteTokens(w, Tokens(line), opts...)
	case To:
		return reverse.Write(w, line)
	}
	return fmt.Errorf("cannot convert in direction %v", dir)
}
