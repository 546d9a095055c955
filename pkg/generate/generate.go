// Package generate enumerates the candidate stimuli: every well-typed
// monosyllable and disyllable over the fixed inventories, minus the
// phonotactically excluded combinations.
package generate

import (
	"iter"
	"strings"

	"github.com/jmseok/stimgen/pkg/phoneme"
	"github.com/jmseok/stimgen/pkg/syllable"
)

// Generator drives a Composer over the four monosyllable and four
// disyllable shape families. The sequences it returns are finite,
// restartable, and emitted in a fixed nested-loop order so downstream
// seeded sampling stays reproducible; the order itself carries no
// meaning.
type Generator struct {
	c *syllable.Composer
}

// New returns a Generator rendering through c.
func New(c *syllable.Composer) *Generator {
	return &Generator{c: c}
}

// codaClash reports whether the coda shares the governing stop's place
// of articulation, which rules out syllables like /pip̚/. The place
// symbol is the onset's leading byte, always ASCII in this inventory.
func codaClash(coda, onset string) bool {
	return strings.HasPrefix(coda, onset[:1])
}

// onsetsAlike reports whether one onset is a prefix of the other, the
// cross-syllable dissimilation rule (blocks e.g. /p/ against /pʰ/).
func onsetsAlike(a, b string) bool {
	return strings.HasPrefix(a, b) || strings.HasPrefix(b, a)
}

// Monosyllables yields every admissible closed monosyllable.
func (g *Generator) Monosyllables() iter.Seq[syllable.Monosyllable] {
	return func(yield func(syllable.Monosyllable) bool) {
		// Plain.
		for _, onset := range phoneme.SimpleOnsets {
			for _, vowel := range phoneme.Vowels {
				for _, coda := range phoneme.Codas {
					if codaClash(coda, onset) {
						continue
					}
					if !yield(g.c.Mono(onset, vowel, coda, phoneme.CVC)) {
						return
					}
				}
			}
		}
		// Cw. The glide belongs to the nucleus because that is how it
		// is spelled.
		for _, onset := range phoneme.StopOnsets {
			for _, vowel := range phoneme.FrontVowels {
				for _, coda := range phoneme.Codas {
					if codaClash(coda, onset) {
						continue
					}
					if !yield(g.c.Mono(onset, "w"+vowel, coda, phoneme.CwVC)) {
						return
					}
				}
			}
		}
		// Prenasal.
		for _, stop := range phoneme.StopOnsets {
			for _, nasal := range phoneme.NasalOnsets {
				onset := nasal + stop
				for _, vowel := range phoneme.Vowels {
					for _, coda := range phoneme.StopCodas {
						if codaClash(coda, stop) {
							continue
						}
						if !yield(g.c.Mono(onset, vowel, coda, phoneme.NCVC)) {
							return
						}
					}
				}
			}
		}
		// Postnasal.
		for _, stop := range phoneme.StopOnsets {
			for _, nasal := range phoneme.NasalOnsets {
				onset := stop + nasal
				for _, vowel := range phoneme.Vowels {
					for _, coda := range phoneme.StopCodas {
						if codaClash(coda, stop) {
							continue
						}
						if !yield(g.c.Mono(onset, vowel, coda, phoneme.CNVC)) {
							return
						}
					}
				}
			}
		}
	}
}

// Disyllables yields every admissible disyllable: an open first
// syllable against a closed second one, with the dissimilation rule on
// the onset pair and the coda exclusion on the second syllable.
func (g *Generator) Disyllables() iter.Seq[syllable.Bisyllable] {
	return func(yield func(syllable.Bisyllable) bool) {
		// Plain.
		for _, onset1 := range phoneme.SimpleOnsets {
			for _, onset2 := range phoneme.SimpleOnsets {
				if onset2 == onset1 || onsetsAlike(onset1, onset2) {
					continue
				}
				for _, vowel1 := range phoneme.Vowels {
					for _, vowel2 := range phoneme.Vowels {
						if vowel2 == vowel1 {
							continue
						}
						syl1 := g.c.Mono(onset1, vowel1, "", phoneme.CV)
						for _, coda := range phoneme.Codas {
							if codaClash(coda, onset2) {
								continue
							}
							syl2 := g.c.Mono(onset2, vowel2, coda, phoneme.CVC)
							if !yield(g.c.Bi(syl1, syl2, phoneme.CVCVC)) {
								return
							}
						}
					}
				}
			}
		}
		// Cw.
		for _, onset1 := range phoneme.SimpleOnsets {
			for _, onset2 := range phoneme.SimpleOnsets {
				if onset2 == onset1 || onsetsAlike(onset1, onset2) {
					continue
				}
				for _, vowel1 := range phoneme.FrontVowels {
					for _, vowel2 := range phoneme.Vowels {
						syl1 := g.c.Mono(onset1, "w"+vowel1, "", phoneme.CwV)
						for _, coda := range phoneme.Codas {
							if codaClash(coda, onset2) {
								continue
							}
							syl2 := g.c.Mono(onset2, vowel2, coda, phoneme.CVC)
							if !yield(g.c.Bi(syl1, syl2, phoneme.CwVCVC)) {
								return
							}
						}
					}
				}
			}
		}
		// Prenasal.
		for _, stop := range phoneme.StopOnsets {
			for _, nasal := range phoneme.NasalOnsets {
				onset1 := nasal + stop
				for _, vowel1 := range phoneme.Vowels {
					for _, vowel2 := range phoneme.Vowels {
						if vowel2 == vowel1 {
							continue
						}
						syl1 := g.c.Mono(onset1, vowel1, "", phoneme.NCV)
						if !g.yieldClusterSeconds(yield, syl1, stop, vowel2, phoneme.NCVCVC) {
							return
						}
					}
				}
			}
		}
		// Postnasal.
		for _, stop := range phoneme.StopOnsets {
			for _, nasal := range phoneme.NasalOnsets {
				onset1 := stop + nasal
				for _, vowel1 := range phoneme.Vowels {
					for _, vowel2 := range phoneme.Vowels {
						if vowel2 == vowel1 {
							continue
						}
						syl1 := g.c.Mono(onset1, vowel1, "", phoneme.CNV)
						if !g.yieldClusterSeconds(yield, syl1, stop, vowel2, phoneme.CNVCVC) {
							return
						}
					}
				}
			}
		}
	}
}

// yieldClusterSeconds emits every admissible second syllable after a
// cluster-initial first syllable: the cluster's stop rules out any
// second onset it prefixes, on top of the usual coda exclusion.
func (g *Generator) yieldClusterSeconds(yield func(syllable.Bisyllable) bool, syl1 syllable.Monosyllable, stop, vowel2 string, shape phoneme.Shape) bool {
	for _, onset2 := range phoneme.SimpleOnsets {
		if strings.HasPrefix(onset2, stop) {
			continue
		}
		for _, coda := range phoneme.Codas {
			if codaClash(coda, onset2) {
				continue
			}
			syl2 := g.c.Mono(onset2, vowel2, coda, phoneme.CVC)
			if !yield(g.c.Bi(syl1, syl2, shape)) {
				return false
			}
		}
	}
	return true
}
