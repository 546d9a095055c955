// Package syllable builds phonemic syllable descriptors and renders
// them to jamo, composed Hangul and a romanization. Descriptors are
// immutable value records; all derived spellings are computed once at
// construction.
package syllable

import (
	"fmt"

	"github.com/jmseok/stimgen/pkg/phoneme"
)

// Romanizer transliterates composed Hangul to Latin script. It is an
// external collaborator; a failed transliteration means "no
// romanization available" rather than a pipeline error.
type Romanizer interface {
	Romanize(hangul string) (string, error)
}

// Monosyllable is one syllable with its derived spellings. Coda is ""
// for open syllables. For the cluster shapes (NCV*, CNV*) Onset holds
// the two-phoneme cluster string.
type Monosyllable struct {
	Onset   string
	Nucleus string
	Coda    string
	Shape   phoneme.Shape

	Jamo         string
	Hangul       string
	Romanization string
}

// Bisyllable is two composed syllables under a disyllable shape tag.
type Bisyllable struct {
	Syl1  Monosyllable
	Syl2  Monosyllable
	Shape phoneme.Shape

	Jamo         string
	Hangul       string
	Romanization string
}

// Composer renders descriptors using the fixed glyph tables and the
// given romanizer.
type Composer struct {
	rom Romanizer
}

// NewComposer returns a Composer. rom may be nil, in which case all
// romanizations are empty.
func NewComposer(rom Romanizer) *Composer {
	return &Composer{rom: rom}
}

// Mono builds a monosyllable descriptor and its derived spellings.
// coda is "" for open syllables. Passing a disyllabic shape or a
// phoneme outside the inventory is a programming error and panics.
func (c *Composer) Mono(onset, nucleus, coda string, shape phoneme.Shape) Monosyllable {
	lead, medial, tail := jamoParts(onset, nucleus, coda, shape)

	m := Monosyllable{
		Onset:   onset,
		Nucleus: nucleus,
		Coda:    coda,
		Shape:   shape,
		Jamo:    lead + medial + tail,
	}

	// Cluster onsets spell as two lead glyphs, which cannot occupy a
	// single block; composition then has no result.
	leadRunes := []rune(lead)
	if len(leadRunes) == 1 {
		var tailRune rune
		if tail != "" {
			tailRune = []rune(tail)[0]
		}
		if block, ok := composeBlock(leadRunes[0], []rune(medial)[0], tailRune); ok {
			m.Hangul = string(block)
		}
	}
	m.Romanization = c.romanize(m.Hangul)
	return m
}

// Bi combines two monosyllables under a disyllable shape. The combined
// Hangul is empty whenever either syllable failed to compose.
func (c *Composer) Bi(syl1, syl2 Monosyllable, shape phoneme.Shape) Bisyllable {
	b := Bisyllable{
		Syl1:  syl1,
		Syl2:  syl2,
		Shape: shape,
		Jamo:  syl1.Jamo + syl2.Jamo,
	}
	if syl1.Hangul != "" && syl2.Hangul != "" {
		b.Hangul = syl1.Hangul + syl2.Hangul
	}
	b.Romanization = c.romanize(b.Hangul)
	return b
}

func (c *Composer) romanize(hangul string) string {
	if hangul == "" || c.rom == nil {
		return ""
	}
	r, err := c.rom.Romanize(hangul)
	if err != nil {
		return ""
	}
	return r
}

// jamoParts spells the descriptor as (lead, medial, tail) glyph
// strings. The shape decides how the onset decomposes: atomic for the
// C* shapes, nasal+stop for NCV*, stop+nasal for CNV*. The nasal
// member of a cluster is always a single byte.
func jamoParts(onset, nucleus, coda string, shape phoneme.Shape) (lead, medial, tail string) {
	switch shape {
	case phoneme.CV, phoneme.CVC, phoneme.CwV, phoneme.CwVC:
		lead = phoneme.OnsetJamo(onset)
	case phoneme.NCV, phoneme.NCVC:
		lead = phoneme.OnsetJamo(onset[:1]) + phoneme.OnsetJamo(onset[1:])
	case phoneme.CNV, phoneme.CNVC:
		lead = phoneme.OnsetJamo(onset[:len(onset)-1]) + phoneme.OnsetJamo(onset[len(onset)-1:])
	default:
		panic(fmt.Sprintf("syllable: shape %s is not monosyllabic", shape))
	}
	medial = phoneme.NucleusJamo(nucleus)
	if coda != "" {
		tail = phoneme.CodaJamo(coda)
	}
	return lead, medial, tail
}
