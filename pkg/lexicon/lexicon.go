// Package lexicon suppresses generated disyllables that happen to be
// real words. The reference word list is romanized once into a lookup
// set; candidates are matched on their own romanization.
package lexicon

import (
	"fmt"
	"io"
	"iter"
	"log"

	"github.com/jmseok/stimgen/pkg/syllable"
	"github.com/jmseok/stimgen/pkg/table"
)

// Lexicon is the romanized lookup set built from the word list.
type Lexicon struct {
	set    map[string]struct{}
	logger *log.Logger
}

// Load reads a two-column (word, gloss) tab-delimited word list and
// romanizes the first column of every row. Entries the romanizer
// cannot map are dropped; that is routine for a broad lexicon, so it is
// only reported as a count. logger may be nil for silence.
func Load(r io.Reader, rom syllable.Romanizer, logger *log.Logger) (*Lexicon, error) {
	rows, err := table.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	lex := &Lexicon{set: make(map[string]struct{}), logger: logger}
	skipped := 0
	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			skipped++
			continue
		}
		romanized, err := rom.Romanize(row[0])
		if err != nil {
			skipped++
			continue
		}
		lex.set[romanized] = struct{}{}
	}
	if logger != nil && skipped > 0 {
		logger.Printf("%d lexicon entries skipped", skipped)
	}
	return lex, nil
}

// Len returns the number of distinct romanizations in the lookup set.
func (l *Lexicon) Len() int { return len(l.set) }

// Contains reports whether a romanization collides with a real word.
// The empty romanization never matches.
func (l *Lexicon) Contains(romanization string) bool {
	if romanization == "" {
		return false
	}
	_, ok := l.set[romanization]
	return ok
}

// FilterDisyllables splits the candidate stream into the forms to keep
// and the lexical forms to suppress. Each suppression is logged with
// its Hangul and romanization for the audit trail.
func (l *Lexicon) FilterDisyllables(seq iter.Seq[syllable.Bisyllable]) (kept, suppressed []syllable.Bisyllable) {
	for b := range seq {
		if l.Contains(b.Romanization) {
			if l.logger != nil {
				l.logger.Printf("%s (%s) is lexical", b.Hangul, b.Romanization)
			}
			suppressed = append(suppressed, b)
			continue
		}
		kept = append(kept, b)
	}
	return kept, suppressed
}
