package sitelen

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sitelen/lasina"
	"github.com/npillmayer/sitelen/render"
	"github.com/npillmayer/sitelen/vocab"
)

func glyphs(t *testing.T, words ...string) string {
	var rr []rune
	for _, s := range words {
		w, ok := vocab.LookupWord(s)
		if !ok {
			t.Fatalf("test setup: %q is not a word", s)
		}
		rr = append(rr, w.Sitelen())
	}
	return string(rr)
}

func TestParseDirection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sitelen")
	defer teardown()
	//
	for _, test := range []struct {
		name string
		dir  Direction
		ok   bool
	}{
		{"from", From, true},
		{"to", To, true},
		{"TO", From, false},
		{" to", From, false},
		{"", From, false},
		{"sideways", From, false},
	} {
		dir, err := ParseDirection(test.name)
		if (err == nil) != test.ok {
			t.Errorf("%q: unexpected error state: %v", test.name, err)
		}
		if err == nil && dir != test.dir {
			t.Errorf("%q: expected direction %v, have %v", test.name, test.dir, dir)
		}
	}
	if From.String() != "from" || To.String() != "to" {
		t.Errorf("direction names do not parse back")
	}
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sitelen")
	defer teardown()
	//
	tokens := Tokenize("pi pona")
	pi, _ := vocab.LookupWord("pi")
	pona, _ := vocab.LookupWord("pona")
	expected := []lasina.Token{lasina.MakeWord(pi), lasina.MakeSpace(" "), lasina.MakeWord(pona)}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %v, have %v", expected, tokens)
	}
	for i := range tokens {
		if tokens[i] != expected[i] {
			t.Errorf("token %d: expected %v, have %v", i, expected[i], tokens[i])
		}
	}
}

func TestTransliterate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sitelen")
	defer teardown()
	//
	out := Transliterate("toki pona")
	if expected := glyphs(t, "toki", "pona"); out != expected {
		t.Errorf("expected %+q, have %+q", expected, out)
	}
	if out != Render(Tokenize("toki pona")) {
		t.Errorf("Transliterate differs from Render(Tokenize(…))")
	}
	lp := string(vocab.StartOfLongPi.Sitelen())
	end := string(vocab.EndOfLongGlyph.Sitelen())
	if out := Transliterate("pi (pona"); out != lp+glyphs(t, "pona") {
		t.Errorf("unmatched long pi renders as %+q", out)
	}
	if out := Transliterate("pi (pona", render.CloseUnmatchedScopes(true)); out != lp+glyphs(t, "pona")+end {
		t.Errorf("closed long pi renders as %+q", out)
	}
}

// Reversing inserts a space after every glyph. For text made of words this is
// absorbed when rendering again; after punctuation it is not.
func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sitelen")
	defer teardown()
	//
	for _, input := range []string{
		"toki pona",
		"mi moku e kili",
		"sina  sona e toki pona",
		"pi (pona mute) li ike",
	} {
		back := Reverse(Transliterate(input))
		if again := Transliterate(back); again != Transliterate(input) {
			t.Errorf("%q: glyphs differ after round trip via %q", input, back)
		}
	}
}

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sitelen")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := Convert(&buf, "toki pona\n", From); err != nil {
		t.Fatal(err)
	}
	if expected := glyphs(t, "toki", "pona") + "\n"; buf.String() != expected {
		t.Errorf("expected %+q, have %+q", expected, buf.String())
	}
	buf.Reset()
	if err := Convert(&buf, glyphs(t, "toki", "pona")+"\n", To); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "toki pona \n" {
		t.Errorf("expected %+q, have %+q", "toki pona \n", buf.String())
	}
	if err := Convert(&buf, "x", Direction(7)); err == nil {
		t.Errorf("expected error for invalid direction")
	}
}

func TestConfiguredLexerAndDirection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sitelen")
	defer teardown()
	defer gconf.Initialize(testconfig.Conf{})
	//
	input := "jan [sona] li pona:  pi  (pona mute)  12 ☺"
	expected := Transliterate(input)
	gconf.Initialize(testconfig.Conf{ConfigLexer: "dfa", ConfigDirection: "to"})
	if out := Transliterate(input); out != expected {
		t.Errorf("DFA scanner renders %+q, expected %+q", out, expected)
	}
	if _, ok := Tokens(input).(*lasina.Scanner); ok {
		t.Errorf("expected DFA scanner to be configured")
	}
	if dir, err := ConfiguredDirection(); err != nil || dir != To {
		t.Errorf("expected configured direction 'to', have %v, %v", dir, err)
	}
	gconf.Initialize(testconfig.Conf{})
	if dir, err := ConfiguredDirection(); err != nil || dir != From {
		t.Errorf("expected default direction 'from', have %v, %v", dir, err)
	}
	gconf.Initialize(testconfig.Conf{ConfigDirection: "up"})
	if _, err := ConfiguredDirection(); err == nil {
		t.Errorf("expected error for invalid configured direction")
	}
}

func TestConcurrentTransliteration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sitelen")
	defer teardown()
	defer gconf.Initialize(testconfig.Conf{})
	//
	inputs := []string{
		"toki pona",
		"pi (pona  mute) li ike",
		"jan [sona] li pona: 12 ☺",
		"kijetesantakalu+soweli_ale{}",
	}
	expected := make([]string, len(inputs))
	reversed := make([]string, len(inputs))
	for i, input := range inputs {
		expected[i] = Transliterate(input)
		reversed[i] = Reverse(expected[i])
	}
	gconf.Initialize(testconfig.Conf{ConfigLexer: "dfa"})
	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan string, workers*len(inputs))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range inputs {
				k := (i + w) % len(inputs)
				if out := Transliterate(inputs[k]); out != expected[k] {
					errs <- fmt.Sprintf("worker %d: %q renders as %+q, expected %+q", w, inputs[k], out, expected[k])
				}
				if back := Reverse(expected[k]); back != reversed[k] {
					errs <- fmt.Sprintf("worker %d: %+q reverses to %q, expected %q", w, expected[k], back, reversed[k])
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}
