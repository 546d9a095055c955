package lexicon

import (
	"slices"
	"strings"
	"testing"

	"github.com/jmseok/stimgen/pkg/phoneme"
	"github.com/jmseok/stimgen/pkg/roman"
	"github.com/jmseok/stimgen/pkg/syllable"
)

func TestLoadSkipsUnromanizableEntries(t *testing.T) {
	in := "바톤\ta baton\nabc\tnot hangul\n반\tclass\n"
	lex, err := Load(strings.NewReader(in), roman.Phonemic{}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lex.Len() != 2 {
		t.Fatalf("expected 2 entries (abc dropped), got %d", lex.Len())
	}
	if !lex.Contains("baton") {
		t.Error("expected lexicon to contain baton")
	}
	if !lex.Contains("ban") {
		t.Error("expected lexicon to contain ban")
	}
	if lex.Contains("abc") {
		t.Error("unromanizable entry should have been dropped")
	}
}

func TestContainsEmptyNeverMatches(t *testing.T) {
	lex, err := Load(strings.NewReader("반\tclass\n"), roman.Phonemic{}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lex.Contains("") {
		t.Error("empty romanization must never match")
	}
}

func TestFilterDisyllables(t *testing.T) {
	c := syllable.NewComposer(roman.Phonemic{})
	lexical := c.Bi(
		c.Mono("p", "a", "", phoneme.CV),
		c.Mono("t", "o", "n", phoneme.CVC),
		phoneme.CVCVC,
	) // romanizes to baton
	nonce := c.Bi(
		c.Mono("p", "a", "", phoneme.CV),
		c.Mono("c", "i", "n", phoneme.CVC),
		phoneme.CVCVC,
	)
	uncomposable := c.Bi(
		c.Mono("mp", "a", "", phoneme.NCV),
		c.Mono("t", "o", "n", phoneme.CVC),
		phoneme.NCVCVC,
	) // empty romanization, must pass through

	lex, err := Load(strings.NewReader("바톤\ta baton\n"), roman.Phonemic{}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	kept, suppressed := lex.FilterDisyllables(slices.Values([]syllable.Bisyllable{lexical, nonce, uncomposable}))
	if len(suppressed) != 1 || suppressed[0].Romanization != "baton" {
		t.Fatalf("expected exactly the lexical item suppressed, got %v", suppressed)
	}
	if len(kept) != 2 {
		t.Fatalf("expected 2 kept, got %d", len(kept))
	}
	if kept[0].Romanization != nonce.Romanization || kept[1].Hangul != "" {
		t.Errorf("kept the wrong items: %v", kept)
	}
}
