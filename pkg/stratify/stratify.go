// Package stratify draws the two balanced experimental lists from the
// annotated stimulus tables. Sampling is seeded and order-disciplined
// so a rerun reproduces the published lists byte for byte.
package stratify

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/jmseok/stimgen/pkg/phoneme"
	"github.com/jmseok/stimgen/pkg/table"
)

// Seed is the fixed seed for list construction. Changing it changes
// the experimental lists.
const Seed = 1568

// illFormed is the annotation sentinel for rows judged ungrammatical.
// The lists are built entirely from these nonce items.
const illFormed = "FALSE"

// Record is one stimulus row in the unified column layout. Monosyllable
// rows leave Onset1 and Nucleus1 empty.
type Record struct {
	Onset1       string
	Nucleus1     string
	Onset2       string
	Nucleus2     string
	Coda         string
	Shape        phoneme.Shape
	Jamo         string
	Hangul       string
	Romanization string

	// Transcription is the concatenated phonemic columns, derived on
	// read. It uniquely identifies a stimulus across both lists.
	Transcription string
}

// Header is the column layout of the output lists.
var Header = []string{
	"onset1", "nucleus1", "onset2", "nucleus2", "coda",
	"shape", "jamo", "hangul", "romanization", "transcription",
}

var requiredColumns = []string{
	"onset1", "nucleus1", "onset2", "nucleus2", "coda",
	"shape", "jamo", "hangul", "romanization", "lexicality", "memo",
}

// ReadAnnotated consumes an annotated table and returns the rows judged
// ill-formed, with the lexicality and memo columns dropped and the
// transcription derived. Rows with any other lexicality value are the
// real or questionable words the lists must not contain.
func ReadAnnotated(r io.Reader) ([]Record, error) {
	rows, err := table.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read annotated table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("annotated table has no header row")
	}
	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("annotated table is missing column %q", name)
		}
	}

	var records []Record
	for i, row := range rows[1:] {
		field := func(name string) string {
			idx := col[name]
			if idx >= len(row) {
				return ""
			}
			return row[idx]
		}
		if field("lexicality") != illFormed {
			continue
		}
		shape, err := phoneme.ParseShape(field("shape"))
		if err != nil {
			return nil, fmt.Errorf("annotated table row %d: %w", i+2, err)
		}
		rec := Record{
			Onset1:       field("onset1"),
			Nucleus1:     field("nucleus1"),
			Onset2:       field("onset2"),
			Nucleus2:     field("nucleus2"),
			Coda:         field("coda"),
			Shape:        shape,
			Jamo:         field("jamo"),
			Hangul:       field("hangul"),
			Romanization: field("romanization"),
		}
		rec.Transcription = rec.Onset1 + rec.Nucleus1 + rec.Onset2 + rec.Nucleus2 + rec.Coda
		records = append(records, rec)
	}
	return records, nil
}

// drawSize is the per-list draw for one shape group: the four
// coda-bearing monosyllable shapes contribute 5 rows each, everything
// else 10.
func drawSize(s phoneme.Shape) int {
	switch s {
	case phoneme.CVC, phoneme.CwVC, phoneme.CNVC, phoneme.NCVC:
		return 5
	}
	return 10
}

// GroupSizeError reports a shape group too small to fill both lists.
type GroupSizeError struct {
	Shape phoneme.Shape
	Need  int // total rows required, 2x the per-list draw
	Have  int
}

func (e *GroupSizeError) Error() string {
	return fmt.Sprintf("shape %s has %d candidates, need %d", e.Shape, e.Have, e.Need)
}

// Sampler draws the two lists from a single explicitly seeded source.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler over its own deterministic source.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample partitions the records into two disjoint balanced lists.
//
// The source is consumed in a fixed order that is part of the contract:
// one shuffle per shape group, in first-seen group order, then one
// shuffle of each accumulated list, list 1 before list 2. Within a
// group the first drawSize shuffled rows go to list 1 and the next
// drawSize to list 2; the rest are discarded.
func (s *Sampler) Sample(records []Record) (list1, list2 []Record, err error) {
	groups := make(map[phoneme.Shape][]Record)
	var order []phoneme.Shape
	for _, rec := range records {
		if _, seen := groups[rec.Shape]; !seen {
			order = append(order, rec.Shape)
		}
		groups[rec.Shape] = append(groups[rec.Shape], rec)
	}

	for _, shape := range order {
		group := groups[shape]
		size := drawSize(shape)
		if len(group) < 2*size {
			return nil, nil, &GroupSizeError{Shape: shape, Need: 2 * size, Have: len(group)}
		}
		s.shuffle(group)
		list1 = append(list1, group[:size]...)
		list2 = append(list2, group[size:2*size]...)
	}
	s.shuffle(list1)
	s.shuffle(list2)
	return list1, list2, nil
}

func (s *Sampler) shuffle(recs []Record) {
	s.rng.Shuffle(len(recs), func(i, j int) {
		recs[i], recs[j] = recs[j], recs[i]
	})
}

// WriteList writes one sampled list under the unified header.
func WriteList(w io.Writer, records []Record) error {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{
			rec.Onset1, rec.Nucleus1, rec.Onset2, rec.Nucleus2, rec.Coda,
			rec.Shape.String(), rec.Jamo, rec.Hangul, rec.Romanization, rec.Transcription,
		}
	}
	return table.Write(w, Header, rows)
}
