package reverse

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/sitelen/vocab"
)

// Lasina returns the romanized literal for a single glyph rune. It returns
// false if r is not a glyph with a romanized form.
func Lasina(r rune) (string, bool) {
	if m, ok := vocab.ModifierFromSitelen(r); ok {
		if s, ok := m.Lasina(); ok {
			return s, true
		}
		tracer().Debugf("modifier %v has no romanized form", m)
		return "", false
	}
	if w, ok := vocab.WordFromSitelen(r); ok {
		return w.Lasina(), true
	}
	return "", false
}

// Reverse converts glyph text to romanized text.
func Reverse(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) * 2)
	_ = write(&sb, text) // strings.Builder does not fail
	return sb.String()
}

// Write converts glyph text to romanized text and writes it to w. Errors of w
// are returned unmodified.
func Write(w io.Writer, text string) error {
	bw := bufio.NewWriter(w)
	if err := write(bw, text); err != nil {
		return err
	}
	return bw.Flush()
}

type runeWriter interface {
	io.StringWriter
	WriteRune(rune) (int, error)
}

// write copies runes without a romanized form byte by byte, so invalid UTF-8
// survives unchanged.
func write(w runeWriter, text string) error {
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		raw := text[:size]
		text = text[size:]
		s, ok := Lasina(r)
		if !ok {
			if _, err := w.WriteString(raw); err != nil {
				return err
			}
			continue
		}
		if _, err := w.WriteString(s); err != nil {
			return err
		}
		if _, err := w.WriteRune(' '); err != nil {
			return err
		}
	}
	return nil
}
