package generate

import (
	"strings"
	"testing"

	"github.com/jmseok/stimgen/pkg/phoneme"
	"github.com/jmseok/stimgen/pkg/roman"
	"github.com/jmseok/stimgen/pkg/syllable"
)

func testGenerator() *Generator {
	return New(syllable.NewComposer(roman.Phonemic{}))
}

func TestMonosyllableCountsByShape(t *testing.T) {
	counts := make(map[phoneme.Shape]int)
	for m := range testGenerator().Monosyllables() {
		counts[m.Shape]++
	}
	want := map[phoneme.Shape]int{
		phoneme.CVC:  232,
		phoneme.CwVC: 84,
		phoneme.NCVC: 144,
		phoneme.CNVC: 144,
	}
	for shape, n := range want {
		if counts[shape] != n {
			t.Errorf("shape %s: got %d, want %d", shape, counts[shape], n)
		}
	}
	if len(counts) != len(want) {
		t.Errorf("unexpected shapes in output: %v", counts)
	}
}

// governingStop extracts the stop whose place of articulation
// constrains the coda.
func governingStop(m syllable.Monosyllable) string {
	switch m.Shape {
	case phoneme.NCV, phoneme.NCVC:
		return m.Onset[1:]
	case phoneme.CNV, phoneme.CNVC:
		return m.Onset[:len(m.Onset)-1]
	}
	return m.Onset
}

func TestCodaPlaceExclusion(t *testing.T) {
	for m := range testGenerator().Monosyllables() {
		stop := governingStop(m)
		if strings.HasPrefix(m.Coda, stop[:1]) {
			t.Fatalf("generated %+v: coda %q shares the onset stop's place", m, m.Coda)
		}
	}
}

func TestSpecificExclusions(t *testing.T) {
	sawPan := false
	for m := range testGenerator().Monosyllables() {
		if m.Onset == "p" && m.Nucleus == "a" && m.Coda == "p̚" {
			t.Fatal("generated /pap̚/, which the place exclusion forbids")
		}
		if m.Onset == "p" && m.Nucleus == "a" && m.Coda == "n" && m.Shape == phoneme.CVC {
			sawPan = true
		}
	}
	if !sawPan {
		t.Error("expected /pan/ in generator output")
	}
}

func TestDisyllableOnsetDissimilation(t *testing.T) {
	sawPT := false
	for b := range testGenerator().Disyllables() {
		o1, o2 := b.Syl1.Onset, b.Syl2.Onset
		if strings.HasPrefix(o1, o2) || strings.HasPrefix(o2, o1) {
			t.Fatalf("generated onset pair (%q, %q): one prefixes the other", o1, o2)
		}
		if o1 == "p" && o2 == "t" {
			sawPT = true
		}
	}
	if !sawPT {
		t.Error("expected an onset pair (p, t) in disyllable output")
	}
}

func TestDisyllableSecondSyllableCodaExclusion(t *testing.T) {
	for b := range testGenerator().Disyllables() {
		if strings.HasPrefix(b.Syl2.Coda, b.Syl2.Onset[:1]) {
			t.Fatalf("second syllable of %+v violates the coda exclusion", b)
		}
	}
}

func TestClusterStopExcludesSecondOnset(t *testing.T) {
	for b := range testGenerator().Disyllables() {
		if b.Shape != phoneme.NCVCVC && b.Shape != phoneme.CNVCVC {
			continue
		}
		stop := governingStop(b.Syl1)
		if strings.HasPrefix(b.Syl2.Onset, stop) {
			t.Fatalf("second onset %q repeats the cluster stop %q in %+v", b.Syl2.Onset, stop, b)
		}
	}
}

// Every admissible coda variant is emitted for the plain family, one
// Bisyllable per coda.
func TestPlainFamilyYieldsEveryCoda(t *testing.T) {
	codas := make(map[string]bool)
	for b := range testGenerator().Disyllables() {
		if b.Shape == phoneme.CVCVC &&
			b.Syl1.Onset == "p" && b.Syl1.Nucleus == "a" &&
			b.Syl2.Onset == "t" && b.Syl2.Nucleus == "i" {
			if codas[b.Syl2.Coda] {
				t.Fatalf("coda %q emitted twice for the same frame", b.Syl2.Coda)
			}
			codas[b.Syl2.Coda] = true
		}
	}
	// All codas except t̚, which shares /t/'s place.
	want := []string{"m", "n", "ŋ", "p̚", "k̚"}
	if len(codas) != len(want) {
		t.Fatalf("got codas %v, want %v", codas, want)
	}
	for _, c := range want {
		if !codas[c] {
			t.Errorf("missing coda %q", c)
		}
	}
}

func TestSequencesAreRestartable(t *testing.T) {
	g := testGenerator()

	monos := g.Monosyllables()
	first := collectMono(monos)
	second := collectMono(monos)
	if len(first) != len(second) {
		t.Fatalf("monosyllable reruns differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("monosyllable %d differs between reruns", i)
		}
	}

	dis := g.Disyllables()
	n1, n2 := 0, 0
	for range dis {
		n1++
	}
	for range dis {
		n2++
	}
	if n1 == 0 || n1 != n2 {
		t.Fatalf("disyllable reruns differ: %d vs %d", n1, n2)
	}
}

func TestEarlyBreak(t *testing.T) {
	n := 0
	for range testGenerator().Disyllables() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("expected to stop after 3, got %d", n)
	}
}

func collectMono(seq func(func(syllable.Monosyllable) bool)) []syllable.Monosyllable {
	var out []syllable.Monosyllable
	for m := range seq {
		out = append(out, m)
	}
	return out
}
