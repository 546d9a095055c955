// Package roman transliterates composed Hangul into a phonemic Latin
// romanization (Revised Romanization letter values, no sandhi rules).
// It fills the external-romanizer role behind syllable.Romanizer.
package roman

import "fmt"

const (
	hangulBase = 0xAC00
	hangulEnd  = 0xD7A3
)

var leads = [19]string{
	"g", "kk", "n", "d", "tt", "r", "m", "b", "pp", "s",
	"ss", "", "j", "jj", "ch", "k", "t", "p", "h",
}

var medials = [21]string{
	"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o", "wa",
	"wae", "oe", "yo", "u", "wo", "we", "wi", "yu", "eu", "ui", "i",
}

// Finals use their unreleased pronunciation values, so ㅅ and ㅈ codas
// both come out as t.
var tails = [28]string{
	"", "k", "k", "k", "n", "n", "n", "t", "l", "k",
	"m", "p", "t", "t", "p", "l", "m", "p", "p", "t",
	"t", "ng", "t", "t", "k", "t", "p", "t",
}

// Phonemic romanizes full Hangul syllable blocks. Any rune outside the
// syllable range makes the whole input unmappable.
type Phonemic struct{}

// Romanize transliterates s block by block. The empty string romanizes
// to the empty string.
func (Phonemic) Romanize(s string) (string, error) {
	out := ""
	for _, r := range s {
		if r < hangulBase || r > hangulEnd {
			return "", fmt.Errorf("roman: %q is not a Hangul syllable", r)
		}
		idx := int(r - hangulBase)
		out += leads[idx/588] + medials[(idx%588)/28] + tails[idx%28]
	}
	return out, nil
}
