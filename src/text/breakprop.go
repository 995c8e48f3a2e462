// Code generated by gen_breakprop.go from GraphemeBreakProperty.txt and
// emoji-data.txt. DO NOT EDIT.

package text

import "unicode"

// BreakProperty is the Grapheme_Cluster_Break property of a code point,
// extended with Extended_Pictographic.
type BreakProperty int

const (
	BreakOther BreakProperty = iota
	BreakCR
	BreakLF
	BreakControl
	BreakExtend
	BreakRegionalIndicator
	BreakPrepend
	BreakSpacingMark
	BreakL
	BreakV
	BreakT
	BreakLV
	BreakLVT
	BreakZWJ
	BreakExtendedPictographic
)

// Code points with Grapheme_Extend=Yes outside the Mn and Me categories.
var otherGraphemeExtend = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x09be, 0x09be, 1},
		{0x09d7, 0x09d7, 1},
		{0x0b3e, 0x0b3e, 1},
		{0x0b57, 0x0b57, 1},
		{0x0bbe, 0x0bbe, 1},
		{0x0bd7, 0x0bd7, 1},
		{0x0cc2, 0x0cc2, 1},
		{0x0cd5, 0x0cd6, 1},
		{0x0d3e, 0x0d3e, 1},
		{0x0d57, 0x0d57, 1},
		{0x0dcf, 0x0dcf, 1},
		{0x0ddf, 0x0ddf, 1},
		{0x200c, 0x200c, 1},
		{0x302e, 0x302f, 1},
		{0xff9e, 0xff9f, 1},
	},
	R32: []unicode.Range32{
		{0x1d165, 0x1d165, 1},
		{0x1d16e, 0x1d172, 1},
	},
}

var prepend = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0600, 0x0605, 1},
		{0x06dd, 0x06dd, 1},
		{0x070f, 0x070f, 1},
		{0x08e2, 0x08e2, 1},
		{0x0d4e, 0x0d4e, 1},
	},
	R32: []unicode.Range32{
		{0x110bd, 0x110bd, 1},
		{0x111c2, 0x111c3, 1},
		{0x11a3a, 0x11a3a, 1},
		{0x11a86, 0x11a89, 1},
		{0x11d46, 0x11d46, 1},
	},
}

// Lo code points that nevertheless carry Grapheme_Cluster_Break=SpacingMark.
var spacingMarkExtra = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0e33, 0x0e33, 1},
		{0x0eb3, 0x0eb3, 1},
	},
}

// Mc code points excluded from SpacingMark.
var spacingMarkExclusions = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x102b, 0x102c, 1},
		{0x1038, 0x1038, 1},
		{0x1062, 0x1064, 1},
		{0x1067, 0x106d, 1},
		{0x1083, 0x1083, 1},
		{0x1087, 0x108c, 1},
		{0x108f, 0x108f, 1},
		{0x109a, 0x109c, 1},
		{0x1a61, 0x1a61, 1},
		{0x1a63, 0x1a64, 1},
		{0xaa7b, 0xaa7b, 1},
		{0xaa7d, 0xaa7d, 1},
	},
	R32: []unicode.Range32{
		{0x11720, 0x11721, 1},
	},
}

var extendedPictographic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x00a9, 0x00a9, 1},
		{0x00ae, 0x00ae, 1},
		{0x203c, 0x203c, 1},
		{0x2049, 0x2049, 1},
		{0x2122, 0x2122, 1},
		{0x2139, 0x2139, 1},
		{0x2194, 0x2199, 1},
		{0x21a9, 0x21aa, 1},
		{0x231a, 0x231b, 1},
		{0x2328, 0x2328, 1},
		{0x2388, 0x2388, 1},
		{0x23cf, 0x23cf, 1},
		{0x23e9, 0x23f3, 1},
		{0x23f8, 0x23fa, 1},
		{0x24c2, 0x24c2, 1},
		{0x25aa, 0x25ab, 1},
		{0x25b6, 0x25b6, 1},
		{0x25c0, 0x25c0, 1},
		{0x25fb, 0x25fe, 1},
		{0x2600, 0x2605, 1},
		{0x2607, 0x2612, 1},
		{0x2614, 0x2685, 1},
		{0x2690, 0x2705, 1},
		{0x2708, 0x2712, 1},
		{0x2714, 0x2714, 1},
		{0x2716, 0x2716, 1},
		{0x271d, 0x271d, 1},
		{0x2721, 0x2721, 1},
		{0x2728, 0x2728, 1},
		{0x2733, 0x2734, 1},
		{0x2744, 0x2744, 1},
		{0x2747, 0x2747, 1},
		{0x274c, 0x274c, 1},
		{0x274e, 0x274e, 1},
		{0x2753, 0x2755, 1},
		{0x2757, 0x2757, 1},
		{0x2763, 0x2767, 1},
		{0x2795, 0x2797, 1},
		{0x27a1, 0x27a1, 1},
		{0x27b0, 0x27b0, 1},
		{0x27bf, 0x27bf, 1},
		{0x2934, 0x2935, 1},
		{0x2b05, 0x2b07, 1},
		{0x2b1b, 0x2b1c, 1},
		{0x2b50, 0x2b50, 1},
		{0x2b55, 0x2b55, 1},
		{0x3030, 0x3030, 1},
		{0x303d, 0x303d, 1},
		{0x3297, 0x3297, 1},
		{0x3299, 0x3299, 1},
	},
	R32: []unicode.Range32{
		{0x1f000, 0x1f0ff, 1},
		{0x1f10d, 0x1f10f, 1},
		{0x1f12f, 0x1f12f, 1},
		{0x1f16c, 0x1f171, 1},
		{0x1f17e, 0x1f17f, 1},
		{0x1f18e, 0x1f18e, 1},
		{0x1f191, 0x1f19a, 1},
		{0x1f1ad, 0x1f1e5, 1},
		{0x1f201, 0x1f20f, 1},
		{0x1f21a, 0x1f21a, 1},
		{0x1f22f, 0x1f22f, 1},
		{0x1f232, 0x1f23a, 1},
		{0x1f23c, 0x1f23f, 1},
		{0x1f249, 0x1f3fa, 1},
		{0x1f400, 0x1f53d, 1},
		{0x1f546, 0x1f64f, 1},
		{0x1f680, 0x1f6ff, 1},
		{0x1f774, 0x1f77f, 1},
		{0x1f7d5, 0x1f7ff, 1},
		{0x1f80c, 0x1f80f, 1},
		{0x1f848, 0x1f84f, 1},
		{0x1f85a, 0x1f85f, 1},
		{0x1f888, 0x1f88f, 1},
		{0x1f8ae, 0x1f8ff, 1},
		{0x1f90c, 0x1f93a, 1},
		{0x1f93c, 0x1f945, 1},
		{0x1f947, 0x1faff, 1},
		{0x1fc00, 0x1fffd, 1},
	},
}

// lookupBreakProperty classifies a single code point. Hangul syllables are
// classified arithmetically instead of being carried in the table.
func lookupBreakProperty(r rune) BreakProperty {
	switch {
	case r == '\r':
		return BreakCR
	case r == '\n':
		return BreakLF
	case r == 0x200d:
		return BreakZWJ
	case r >= 0x1f1e6 && r <= 0x1f1ff:
		return BreakRegionalIndicator
	}

	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) ||
		unicode.Is(otherGraphemeExtend, r) {
		return BreakExtend
	}
	if unicode.Is(prepend, r) {
		return BreakPrepend
	}
	if unicode.Is(spacingMarkExtra, r) ||
		unicode.Is(unicode.Mc, r) && !unicode.Is(spacingMarkExclusions, r) {
		return BreakSpacingMark
	}
	if unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Cf, r) ||
		unicode.Is(unicode.Zl, r) || unicode.Is(unicode.Zp, r) {
		return BreakControl
	}

	switch {
	case r >= 0x1100 && r <= 0x115f || r >= 0xa960 && r <= 0xa97c:
		return BreakL
	case r >= 0x1160 && r <= 0x11a7 || r >= 0xd7b0 && r <= 0xd7c6:
		return BreakV
	case r >= 0x11a8 && r <= 0x11ff || r >= 0xd7cb && r <= 0xd7fb:
		return BreakT
	case r >= 0xac00 && r <= 0xd7a3:
		if (r-0xac00)%28 == 0 {
			return BreakLV
		}
		return BreakLVT
	}

	if unicode.Is(extendedPictographic, r) {
		return BreakExtendedPictographic
	}
	return BreakOther
}
