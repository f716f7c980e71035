package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sitelen/lasina"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

var inputStrings = []string{
	"pi pona",
	"toki pona li pona  mute",
	"pi (lipu [jan Sonja]) li suli.",
	"abc 123 😀:",
	"kijetesantakalu+soweli_ale{}",
	"ptk Toki",
}

var tokenCounts = []int{3, 9, 16, 7, 7, 3}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sitelen.lasina")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := Tokens(input)
		if err != nil {
			t.Fatal(err)
		}
		count := 0
		for token, ok := sc.Next(); ok; token, ok = sc.Next() {
			t.Logf(" %4d | %15s | @%5d", token.Kind, token, sc.Span().From())
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMAgreesWithScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sitelen.lasina")
	defer teardown()
	//
	for i, input := range append(inputStrings, "", "   ", "ÄÖü a\n", "((pi  (") {
		sc, err := Tokens(input)
		if err != nil {
			t.Fatal(err)
		}
		dfa := lasina.All(sc)
		hand := lasina.All(lasina.Tokens(input))
		if len(dfa) != len(hand) {
			t.Errorf("input #%d: DFA has %v, scanner has %v", i, dfa, hand)
			continue
		}
		for j := range dfa {
			if dfa[j] != hand[j] {
				t.Errorf("input #%d, token #%d: DFA has %v, scanner has %v", i, j, dfa[j], hand[j])
			}
		}
	}
}

func TestLMSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sitelen.lasina")
	defer teardown()
	//
	sc, err := Tokens("mi  😀")
	if err != nil {
		t.Fatal(err)
	}
	spans := []lasina.Span{{0, 2}, {2, 4}, {4, 8}}
	for i, want := range spans {
		token, ok := sc.Next()
		if !ok {
			t.Fatalf("expected token #%d", i)
		}
		if sc.Span() != want {
			t.Errorf("token #%d: expected span %v, is %v", i, want, sc.Span())
		}
		if sc.Span().Len() != uint64(len(token.Literal())) {
			t.Errorf("token #%d: span %v does not cover literal %q", i, sc.Span(), token.Literal())
		}
	}
}

func TestLMErrorHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sitelen.lasina")
	defer teardown()
	//
	lexer := lexmachine.NewLexer() // matches letters only
	lexer.Add([]byte(`[a-z]+`), makeToken(lasina.Classify))
	if err := lexer.Compile(); err != nil {
		t.Fatal(err)
	}
	lm := &LMAdapter{Lexer: lexer}
	sc, err := lm.Scanner("pona 1 mute")
	if err != nil {
		t.Fatal(err)
	}
	var unconsumed []int
	sc.SetErrorHandler(func(e error) {
		ui, ok := e.(*machines.UnconsumedInput)
		if !ok {
			t.Errorf("expected unconsumed input error, have %v", e)
			return
		}
		unconsumed = append(unconsumed, ui.StartTC)
	})
	tokens := lasina.All(sc)
	if len(tokens) != 2 || tokens[0].String() != "Word(pona)" || tokens[1].String() != "Word(mute)" {
		t.Errorf("expected scanning to resume behind unmatched input, have %v", tokens)
	}
	// the DFA skips one byte per error, " 1 " is reported three times
	if len(unconsumed) != 3 {
		t.Errorf("expected 3 errors for unmatched \" 1 \", have %v", unconsumed)
	}
	for i, pos := range unconsumed {
		if pos < 4 || pos > 6 || (i > 0 && pos <= unconsumed[i-1]) {
			t.Errorf("error #%d at unexpected position %d", i, pos)
		}
	}
	if sc.Span() != (lasina.Span{7, 11}) {
		t.Errorf("expected span of 'mute' to be (7…11), is %v", sc.Span())
	}
}
