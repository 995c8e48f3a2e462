package text

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidUTF8 is the cause of every error returned for input that is not
// well-formed UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// CodePoint is a single Unicode scalar together with the table row backing
// it: its canonical decomposition, case forms, combining class, grapheme
// break property, and classification flags. CodePoints are immutable and
// interned; compare them by pointer or with Less.
type CodePoint struct {
	scalar         rune
	normal         string
	foldedCase     string
	swappedCase    string
	combiningClass uint8
	breakProperty  BreakProperty
	letter         bool
	punctuation    bool
	uppercase      bool
}

// newCodePoint builds the table row for the single scalar encoded in s.
func newCodePoint(s string) (*CodePoint, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size < 2 || size != len(s) {
		return nil, errors.Wrapf(ErrInvalidUTF8, "code point %q", s)
	}

	// norm's tables are pre-expanded to fixed point, so a single NFD pass
	// yields the full canonical decomposition.
	normal := norm.NFD.String(s)
	return &CodePoint{
		scalar:         r,
		normal:         normal,
		foldedCase:     cases.Fold().String(normal),
		swappedCase:    swapCase(normal),
		combiningClass: norm.NFD.PropertiesString(s).CCC(),
		breakProperty:  lookupBreakProperty(r),
		letter:         unicode.IsLetter(r),
		punctuation:    unicode.IsPunct(r),
		uppercase:      unicode.IsUpper(r),
	}, nil
}

func swapCase(s string) string {
	return string(mapRunes(s, func(r rune) rune {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return unicode.ToLower(r)
		}
		if unicode.IsLower(r) {
			return unicode.ToUpper(r)
		}
		return r
	}))
}

func mapRunes(s string, f func(rune) rune) []rune {
	runes := make([]rune, 0, len(s))
	for _, r := range s {
		runes = append(runes, f(r))
	}
	return runes
}

// Scalar returns the Unicode scalar value.
func (cp *CodePoint) Scalar() rune { return cp.scalar }

// Normal returns the canonical decomposition in UTF-8.
func (cp *CodePoint) Normal() string { return cp.normal }

// FoldedCase returns the case-folded form of the decomposition.
func (cp *CodePoint) FoldedCase() string { return cp.foldedCase }

// SwappedCase returns the decomposition with the case of every letter
// flipped.
func (cp *CodePoint) SwappedCase() string { return cp.swappedCase }

// CombiningClass returns the canonical combining class.
func (cp *CodePoint) CombiningClass() uint8 { return cp.combiningClass }

// Break returns the grapheme cluster break property.
func (cp *CodePoint) Break() BreakProperty { return cp.breakProperty }

// IsLetter reports whether the code point is a letter.
func (cp *CodePoint) IsLetter() bool { return cp.letter }

// IsPunctuation reports whether the code point is punctuation.
func (cp *CodePoint) IsPunctuation() bool { return cp.punctuation }

// IsUppercase reports whether the code point is uppercase.
func (cp *CodePoint) IsUppercase() bool { return cp.uppercase }

// Less orders code points by combining class, then by scalar value. This is
// the order required by the Canonical Reordering Algorithm.
func (cp *CodePoint) Less(other *CodePoint) bool {
	if cp.combiningClass != other.combiningClass {
		return cp.combiningClass < other.combiningClass
	}
	return cp.scalar < other.scalar
}

// BreakIntoCodePoints decomposes a UTF-8 string into its sequence of
// interned code points.
func BreakIntoCodePoints(s string) ([]*CodePoint, error) {
	if !utf8.ValidString(s) {
		return nil, errors.Wrapf(ErrInvalidUTF8, "text %q", s)
	}
	keys := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		keys = append(keys, string(r))
	}
	return CodePoints().GetOrCreate(keys)
}
