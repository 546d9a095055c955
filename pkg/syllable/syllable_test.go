package syllable

import (
	"testing"

	"github.com/jmseok/stimgen/pkg/phoneme"
	"github.com/jmseok/stimgen/pkg/roman"
)

func testComposer() *Composer {
	return NewComposer(roman.Phonemic{})
}

func TestMonoCVC(t *testing.T) {
	m := testComposer().Mono("p", "a", "n", phoneme.CVC)
	if m.Jamo != "ㅂㅏᆫ" {
		t.Errorf("jamo: got %q, want %q", m.Jamo, "ㅂㅏᆫ")
	}
	if m.Hangul != "반" {
		t.Errorf("hangul: got %q, want %q", m.Hangul, "반")
	}
	if m.Romanization != "ban" {
		t.Errorf("romanization: got %q, want %q", m.Romanization, "ban")
	}
}

func TestMonoOpenSyllable(t *testing.T) {
	m := testComposer().Mono("s", "i", "", phoneme.CV)
	if m.Hangul != "시" {
		t.Errorf("hangul: got %q, want %q", m.Hangul, "시")
	}
	if m.Romanization != "si" {
		t.Errorf("romanization: got %q, want %q", m.Romanization, "si")
	}
}

func TestMonoGlideNucleus(t *testing.T) {
	m := testComposer().Mono("k", "wa", "ŋ", phoneme.CwVC)
	if m.Jamo != "ㄱㅘᆼ" {
		t.Errorf("jamo: got %q, want %q", m.Jamo, "ㄱㅘᆼ")
	}
	if m.Hangul != "광" {
		t.Errorf("hangul: got %q, want %q", m.Hangul, "광")
	}
}

func TestClusterOnsetsSpellTwoGlyphsAndDoNotCompose(t *testing.T) {
	c := testComposer()

	pre := c.Mono("mp", "i", "t̚", phoneme.NCVC)
	if pre.Jamo != "ᄆㅂㅣᆮ" {
		t.Errorf("prenasal jamo: got %q, want %q", pre.Jamo, "ᄆㅂㅣᆮ")
	}
	if pre.Hangul != "" || pre.Romanization != "" {
		t.Errorf("prenasal should not compose, got hangul %q romanization %q", pre.Hangul, pre.Romanization)
	}

	post := c.Mono("pʰm", "o", "k̚", phoneme.CNVC)
	if post.Jamo != "ㅍᄆㅗᆨ" {
		t.Errorf("postnasal jamo: got %q, want %q", post.Jamo, "ㅍᄆㅗᆨ")
	}
	if post.Hangul != "" {
		t.Errorf("postnasal should not compose, got %q", post.Hangul)
	}
}

func TestMonoDeterministic(t *testing.T) {
	c := testComposer()
	a := c.Mono("tʰ", "u", "m", phoneme.CVC)
	b := c.Mono("tʰ", "u", "m", phoneme.CVC)
	if a != b {
		t.Fatalf("repeated composition differs: %+v vs %+v", a, b)
	}
}

func TestBisyllable(t *testing.T) {
	c := testComposer()
	syl1 := c.Mono("p", "a", "", phoneme.CV)
	syl2 := c.Mono("t", "o", "n", phoneme.CVC)
	b := c.Bi(syl1, syl2, phoneme.CVCVC)
	if b.Hangul != "바톤" {
		t.Errorf("hangul: got %q, want %q", b.Hangul, "바톤")
	}
	if b.Romanization != "baton" {
		t.Errorf("romanization: got %q, want %q", b.Romanization, "baton")
	}
	if b.Jamo != syl1.Jamo+syl2.Jamo {
		t.Errorf("jamo: got %q, want concatenation %q", b.Jamo, syl1.Jamo+syl2.Jamo)
	}
}

func TestBisyllableEmptyWhenEitherSyllableFails(t *testing.T) {
	c := testComposer()
	syl1 := c.Mono("mp", "a", "", phoneme.NCV) // cluster, cannot compose
	syl2 := c.Mono("t", "o", "n", phoneme.CVC)
	b := c.Bi(syl1, syl2, phoneme.NCVCVC)
	if b.Hangul != "" || b.Romanization != "" {
		t.Errorf("expected empty hangul and romanization, got %q / %q", b.Hangul, b.Romanization)
	}
	if b.Jamo == "" {
		t.Error("jamo should still concatenate")
	}
}

func TestMonoPanicsOnDisyllabicShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for disyllabic shape")
		}
	}()
	testComposer().Mono("p", "a", "n", phoneme.CVCVC)
}

func TestNilRomanizer(t *testing.T) {
	m := NewComposer(nil).Mono("p", "a", "n", phoneme.CVC)
	if m.Hangul != "반" {
		t.Errorf("hangul: got %q, want %q", m.Hangul, "반")
	}
	if m.Romanization != "" {
		t.Errorf("romanization should be empty without a romanizer, got %q", m.Romanization)
	}
}
