// Package phoneme holds the fixed phoneme inventories and jamo glyph
// tables for the Korean stimulus experiment. The inventories are
// process-wide constants; lookups outside their domain are programming
// errors and panic rather than returning a recoverable error.
package phoneme

import "fmt"

// Onsets.
// /c/ <ㅈ>: more precisely /t͡ɕ/.
// /cʰ/ <ㅊ>: more precisely /t͡ɕʰ/.
var (
	PlainStopOnsets     = []string{"p", "t", "c", "k"}
	AspiratedStopOnsets = []string{"pʰ", "tʰ", "cʰ", "kʰ"}
	StopOnsets          = concat(PlainStopOnsets, AspiratedStopOnsets)
	NasalOnsets         = []string{"m", "n"}
	SimpleOnsets        = concat(StopOnsets, []string{"s"}, NasalOnsets)
)

// Vowels. /e/ poses transcription problems and is left out.
var (
	FrontVowels = []string{"i", "a"}
	BackVowels  = []string{"o", "u"}
	Vowels      = concat(FrontVowels, BackVowels)
)

var (
	NasalCodas = []string{"m", "n", "ŋ"}
	StopCodas  = []string{"p̚", "t̚", "k̚"}
	Codas      = concat(NasalCodas, StopCodas)
)

var onsetJamo = map[string]string{
	"p":  "ㅂ",
	"t":  "ㄷ",
	"c":  "ㅈ",
	"k":  "ㄱ",
	"pʰ": "ㅍ",
	"tʰ": "ㅌ",
	"cʰ": "ㅊ",
	"kʰ": "ㅋ",
	"s":  "ᄉ", // Has an allophone [ʃ] before /i/.
	"m":  "ᄆ",
	"n":  "ᄂ",
}

var nucleusJamo = map[string]string{
	"a":  "ㅏ",
	"o":  "ㅗ",
	"u":  "ㅜ",
	"i":  "ㅣ",
	"wa": "ㅘ",
	"wi": "ㅟ", // More precisely /ɰi/.
}

var codaJamo = map[string]string{
	"p̚": "ᆸ",
	"t̚": "ᆮ",
	"k̚": "ᆨ",
	"m":  "ᆷ",
	"n":  "ᆫ",
	"ŋ":  "ᆼ",
}

// OnsetJamo returns the jamo glyph for an onset phoneme.
// It panics on an onset outside the inventory.
func OnsetJamo(onset string) string {
	g, ok := onsetJamo[onset]
	if !ok {
		panic(fmt.Sprintf("phoneme: no jamo for onset %q", onset))
	}
	return g
}

// NucleusJamo returns the jamo glyph for a nucleus, including the
// glide-prefixed nuclei wa and wi. It panics on an unknown nucleus.
func NucleusJamo(nucleus string) string {
	g, ok := nucleusJamo[nucleus]
	if !ok {
		panic(fmt.Sprintf("phoneme: no jamo for nucleus %q", nucleus))
	}
	return g
}

// CodaJamo returns the jamo glyph for a coda phoneme.
// It panics on a coda outside the inventory.
func CodaJamo(coda string) string {
	g, ok := codaJamo[coda]
	if !ok {
		panic(fmt.Sprintf("phoneme: no jamo for coda %q", coda))
	}
	return g
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
