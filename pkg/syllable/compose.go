package syllable

// Hangul syllable blocks are arithmetic over lead (choseong), medial
// (jungseong) and tail (jongseong) indices:
//
//	block = 0xAC00 + (lead*21+medial)*28 + tail
//
// The glyph tables in pkg/phoneme mix compatibility jamo (ㅂ, ㅏ, ...)
// with positional jamo (ᄉ, ᆫ, ...), matching how the stimuli are
// spelled, so both forms are accepted here.

const (
	hangulBase = 0xAC00
	leadBase   = 0x1100 // ᄀ..ᄒ
	medialBase = 0x1161 // ᅡ..ᅵ
	tailBase   = 0x11A7 // tail index 1 is U+11A8 ᆨ
)

// Compatibility consonants in lead-index order ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ.
var compatLead = map[rune]int{
	'ㄱ': 0, 'ㄲ': 1, 'ㄴ': 2, 'ㄷ': 3, 'ㄸ': 4, 'ㄹ': 5, 'ㅁ': 6,
	'ㅂ': 7, 'ㅃ': 8, 'ㅅ': 9, 'ㅆ': 10, 'ㅇ': 11, 'ㅈ': 12, 'ㅉ': 13,
	'ㅊ': 14, 'ㅋ': 15, 'ㅌ': 16, 'ㅍ': 17, 'ㅎ': 18,
}

func leadIndex(r rune) (int, bool) {
	if r >= leadBase && r <= 0x1112 {
		return int(r - leadBase), true
	}
	i, ok := compatLead[r]
	return i, ok
}

func medialIndex(r rune) (int, bool) {
	if r >= medialBase && r <= 0x1175 {
		return int(r - medialBase), true
	}
	// Compatibility vowels ㅏ..ㅣ run in medial-index order.
	if r >= 0x314F && r <= 0x3163 {
		return int(r - 0x314F), true
	}
	return 0, false
}

func tailIndex(r rune) (int, bool) {
	if r >= 0x11A8 && r <= 0x11C2 {
		return int(r - tailBase), true
	}
	return 0, false
}

// composeBlock assembles one syllable block from a lead, a medial and an
// optional tail glyph (0 for none). The second result is false when the
// glyphs do not form a block; callers treat that as an expected
// non-result, not an error.
func composeBlock(lead, medial, tail rune) (rune, bool) {
	l, ok := leadIndex(lead)
	if !ok {
		return 0, false
	}
	v, ok := medialIndex(medial)
	if !ok {
		return 0, false
	}
	t := 0
	if tail != 0 {
		t, ok = tailIndex(tail)
		if !ok {
			return 0, false
		}
	}
	return rune(hangulBase + (l*21+v)*28 + t), true
}
