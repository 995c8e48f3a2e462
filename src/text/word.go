package text

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rivo/uniseg"
)

// Word is a finite ordered sequence of Characters built from an input
// string, plus byte-level summaries used by the fast path: the
// concatenation of the folded-case forms and a 256-bit presence bitmap over
// its bytes. The bitmap is a cheap necessary condition for a match — a
// query whose bitmap is not a subset of a word's cannot be a subsequence
// of it.
type Word struct {
	text         string
	characters   []*Character
	foldedText   string
	bytesPresent byteBitmap
}

type byteBitmap [4]uint64

func (b *byteBitmap) set(c byte) {
	b[c>>6] |= 1 << (c & 63)
}

// subsetOf reports whether every byte present in b is present in other.
func (b *byteBitmap) subsetOf(other *byteBitmap) bool {
	for i := range b {
		if b[i]&^other[i] != 0 {
			return false
		}
	}
	return true
}

// NewWord segments text into extended grapheme clusters, interns each
// cluster and precomputes the byte summaries.
func NewWord(text string) (*Word, error) {
	if !utf8.ValidString(text) {
		return nil, errors.Wrapf(ErrInvalidUTF8, "word %q", text)
	}

	var clusters []string
	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		clusters = append(clusters, graphemes.Str())
	}

	characters, err := Characters().GetOrCreate(clusters)
	if err != nil {
		return nil, err
	}

	w := &Word{text: text, characters: characters}
	var folded []byte
	for _, character := range characters {
		folded = append(folded, character.FoldedCase()...)
	}
	w.foldedText = string(folded)
	for _, b := range folded {
		w.bytesPresent.set(b)
	}
	return w, nil
}

// Text returns the original input string.
func (w *Word) Text() string { return w.text }

// Characters returns the grapheme clusters of the word.
func (w *Word) Characters() []*Character { return w.characters }

// Length returns the number of grapheme clusters.
func (w *Word) Length() int { return len(w.characters) }

// FoldedText returns the concatenated folded-case form of the word.
func (w *Word) FoldedText() string { return w.foldedText }

// IsEmpty reports whether the word has no characters.
func (w *Word) IsEmpty() bool { return len(w.characters) == 0 }

// ContainsBytes reports whether every byte value present in the folded
// form of query also appears in the folded form of w.
func (w *Word) ContainsBytes(query *Word) bool {
	return query.bytesPresent.subsetOf(&w.bytesPresent)
}
