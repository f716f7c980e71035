package vocab

import (
	"github.com/cnf/structhash"
)

// fingerprintVersion is bumped whenever the layout of tableShape changes.
const fingerprintVersion = 1

type tableShape struct {
	WordBase     int32
	Words        []string
	ModifierBase int32
	Modifiers    []string
	Punctuation  map[string]string
}

// Fingerprint returns a structural hash of the word and modifier tables,
// e.g. "v1_6b0e…". Two builds with equal fingerprints transliterate
// identically.
func Fingerprint() string {
	shape := tableShape{
		WordBase:     int32(WordBase),
		Words:        spellings[:],
		ModifierBase: int32(ModifierBase),
		Modifiers:    modifierNames[:],
		Punctuation:  make(map[string]string, punctIndex.Size()),
	}
	for _, k := range punctIndex.Keys() {
		m, _ := punctIndex.Get(k)
		shape.Punctuation[string(k.(rune))] = m.(Modifier).String()
	}
	h, err := structhash.Hash(shape, fingerprintVersion)
	if err != nil {
		tracer().Errorf("cannot hash vocabulary: %v", err)
		return ""
	}
	return h
}
