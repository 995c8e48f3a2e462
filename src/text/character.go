package text

import "sort"

// Character is a grapheme cluster normalized through canonical
// decomposition (NFD) and canonical reordering. Characters are immutable
// and interned; two equivalent spellings of a cluster (e.g. "é" and
// "é") produce the same normalized forms.
type Character struct {
	normal      string
	foldedCase  string
	swappedCase string
	base        string
	isBase      bool
	letter      bool
	punctuation bool
	uppercase   bool
}

// canonicalSort reorders contiguous runs of non-starter code points
// (combining class != 0) according to the Canonical Ordering Algorithm.
// The sort must be stable: code points with equal combining classes keep
// their relative order.
func canonicalSort(codePoints []*CodePoint) []*CodePoint {
	start := 0
	for start < len(codePoints) {
		if codePoints[start].CombiningClass() == 0 {
			start++
			continue
		}
		end := start + 1
		for end < len(codePoints) && codePoints[end].CombiningClass() != 0 {
			end++
		}
		run := codePoints[start:end]
		sort.SliceStable(run, func(i, j int) bool {
			return run[i].Less(run[j])
		})
		start = end + 1
	}
	return codePoints
}

// canonicalDecompose breaks text into code points, substitutes canonical
// decompositions to fixed point and reorders the result.
func canonicalDecompose(text string) ([]*CodePoint, error) {
	codePoints, err := BreakIntoCodePoints(text)
	if err != nil {
		return nil, err
	}
	var normal []byte
	for _, cp := range codePoints {
		normal = append(normal, cp.Normal()...)
	}
	decomposed, err := BreakIntoCodePoints(string(normal))
	if err != nil {
		return nil, err
	}
	return canonicalSort(decomposed), nil
}

// newCharacter builds a Character from the UTF-8 text of one grapheme
// cluster.
func newCharacter(character string) (*Character, error) {
	codePoints, err := canonicalDecompose(character)
	if err != nil {
		return nil, err
	}

	c := &Character{isBase: true}
	for _, cp := range codePoints {
		c.normal += cp.Normal()
		c.foldedCase += cp.FoldedCase()
		c.swappedCase += cp.SwappedCase()
		c.letter = c.letter || cp.IsLetter()
		c.punctuation = c.punctuation || cp.IsPunctuation()
		c.uppercase = c.uppercase || cp.IsUppercase()
		switch cp.Break() {
		case BreakPrepend, BreakExtend, BreakSpacingMark:
			c.isBase = false
		default:
			c.base += cp.FoldedCase()
		}
	}
	return c, nil
}

// Normal returns the normalized cluster text.
func (c *Character) Normal() string { return c.normal }

// FoldedCase returns the case-folded cluster text.
func (c *Character) FoldedCase() string { return c.foldedCase }

// SwappedCase returns the cluster text with the case of every letter
// flipped.
func (c *Character) SwappedCase() string { return c.swappedCase }

// Base returns the case-folded cluster text with combining marks removed.
func (c *Character) Base() string { return c.base }

// IsBase reports whether the cluster is free of prepend, extend and
// spacing marks.
func (c *Character) IsBase() bool { return c.isBase }

// IsLetter reports whether any code point in the cluster is a letter.
func (c *Character) IsLetter() bool { return c.letter }

// IsPunctuation reports whether any code point in the cluster is
// punctuation.
func (c *Character) IsPunctuation() bool { return c.punctuation }

// IsUppercase reports whether any code point in the cluster is uppercase.
func (c *Character) IsUppercase() bool { return c.uppercase }

// EqualsIgnoreCase reports whether two characters are equal after case
// folding.
func (c *Character) EqualsIgnoreCase(other *Character) bool {
	return c.foldedCase == other.foldedCase
}

// EqualsBase reports whether two characters share the same base, i.e. are
// equal once case and combining marks are ignored.
func (c *Character) EqualsBase(other *Character) bool {
	return c.base == other.base
}

// Matches reports whether a query character matches a text character:
// either case-insensitively or, failing that, on the bases so that "e"
// matches "é".
func (c *Character) Matches(other *Character) bool {
	return c.foldedCase == other.foldedCase || c.base == other.base
}
