// Command stimgen builds the stimulus lists for the Korean phonology
// experiment in two passes: -generate enumerates the candidate
// syllables and filters out real words, -stratify draws the two
// balanced lists from the manually annotated tables.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmseok/stimgen/pkg/db"
	"github.com/jmseok/stimgen/pkg/generate"
	"github.com/jmseok/stimgen/pkg/lexicon"
	"github.com/jmseok/stimgen/pkg/roman"
	"github.com/jmseok/stimgen/pkg/stratify"
	"github.com/jmseok/stimgen/pkg/syllable"
	"github.com/jmseok/stimgen/pkg/table"

	_ "github.com/mattn/go-sqlite3"
)

var monoHeader = []string{"onset", "nucleus", "coda", "shape", "jamo", "hangul", "romanization"}

var diHeader = []string{"onset1", "nucleus1", "onset2", "nucleus2", "coda", "shape", "jamo", "hangul", "romanization"}

func main() {
	generateFlag := flag.Bool("generate", false, "Generate candidate stimuli and filter lexical disyllables")
	stratifyFlag := flag.Bool("stratify", false, "Draw the two balanced lists from the annotated tables")

	monoFlag := flag.String("mono", "monosyllables.tsv", "Generated monosyllable table")
	diFlag := flag.String("di", "disyllables.tsv", "Generated disyllable table")
	lexiconFlag := flag.String("lexicon", "kor_hang_narrow.tsv", "Romanizable word list used to suppress real words")
	dbFlag := flag.String("db", "stimuli.db", "Path to SQLite audit database (empty to disable)")

	monoAnnFlag := flag.String("mono-annotated", "monosyllables-annotated.tsv", "Annotated monosyllable table")
	diAnnFlag := flag.String("di-annotated", "disyllables-annotated.tsv", "Annotated disyllable table")
	list1Flag := flag.String("list1", "kor-list-1.tsv", "First output list")
	list2Flag := flag.String("list2", "kor-list-2.tsv", "Second output list")
	flag.Parse()

	switch {
	case *generateFlag:
		runGenerate(*monoFlag, *diFlag, *lexiconFlag, *dbFlag)
	case *stratifyFlag:
		runStratify(*monoAnnFlag, *diAnnFlag, *list1Flag, *list2Flag)
	default:
		log.Fatal("Please provide -generate or -stratify")
	}
}

func runGenerate(monoPath, diPath, lexiconPath, dbPath string) {
	comp := syllable.NewComposer(roman.Phonemic{})
	gen := generate.New(comp)

	var conn *sql.DB
	var runID int64
	if dbPath != "" {
		var err error
		conn, err = sql.Open("sqlite3", dbPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer conn.Close()
		if err := db.InitDB(conn); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		if runID, err = db.BeginRun(conn, "generate"); err != nil {
			log.Fatalf("Failed to record run: %v", err)
		}
		fmt.Printf("Audit database initialized at %s\n", dbPath)
	}

	// Monosyllables.
	var monoRows [][]string
	var stimuli []db.Stimulus
	for m := range gen.Monosyllables() {
		monoRows = append(monoRows, []string{
			m.Onset, m.Nucleus, m.Coda, m.Shape.String(), m.Jamo, m.Hangul, m.Romanization,
		})
		if conn != nil {
			stimuli = append(stimuli, db.MonoStimulus(m))
		}
	}
	if err := table.WriteFile(monoPath, monoHeader, monoRows); err != nil {
		log.Fatalf("Failed to write monosyllables: %v", err)
	}
	log.Printf("%d monosyllables", len(monoRows))

	// Lexicon. It probably could be cleverer and focus just on
	// disyllable-length words.
	lexFile, err := os.Open(lexiconPath)
	if err != nil {
		log.Fatalf("Failed to open lexicon: %v", err)
	}
	lex, err := lexicon.Load(lexFile, roman.Phonemic{}, log.Default())
	lexFile.Close()
	if err != nil {
		log.Fatalf("Failed to load lexicon: %v", err)
	}
	log.Printf("%d lexicon entries", lex.Len())

	// Disyllables, minus accidental real words.
	kept, suppressed := lex.FilterDisyllables(gen.Disyllables())
	diRows := make([][]string, len(kept))
	for i, b := range kept {
		diRows[i] = []string{
			b.Syl1.Onset, b.Syl1.Nucleus, b.Syl2.Onset, b.Syl2.Nucleus, b.Syl2.Coda,
			b.Shape.String(), b.Jamo, b.Hangul, b.Romanization,
		}
	}
	if err := table.WriteFile(diPath, diHeader, diRows); err != nil {
		log.Fatalf("Failed to write disyllables: %v", err)
	}
	log.Printf("%d disyllables filtered", len(suppressed))

	if conn != nil {
		for _, b := range kept {
			stimuli = append(stimuli, db.BiStimulus(b))
		}
		if err := db.InsertStimuli(conn, runID, stimuli); err != nil {
			log.Fatalf("Failed to record stimuli: %v", err)
		}
		for _, b := range suppressed {
			if err := db.RecordSuppression(conn, runID, b.Hangul, b.Romanization); err != nil {
				log.Fatalf("Failed to record suppression: %v", err)
			}
		}
	}
}

func runStratify(monoAnnPath, diAnnPath, list1Path, list2Path string) {
	records, err := readAnnotatedFile(monoAnnPath)
	if err != nil {
		log.Fatalf("Failed to read annotated monosyllables: %v", err)
	}
	diRecords, err := readAnnotatedFile(diAnnPath)
	if err != nil {
		log.Fatalf("Failed to read annotated disyllables: %v", err)
	}
	records = append(records, diRecords...)

	sampler := stratify.NewSampler(stratify.Seed)
	list1, list2, err := sampler.Sample(records)
	if err != nil {
		log.Fatalf("Cannot balance lists: %v", err)
	}

	if err := writeListFile(list1Path, list1); err != nil {
		log.Fatalf("Failed to write %s: %v", list1Path, err)
	}
	if err := writeListFile(list2Path, list2); err != nil {
		log.Fatalf("Failed to write %s: %v", list2Path, err)
	}
	log.Printf("wrote %d + %d stimuli", len(list1), len(list2))
}

func readAnnotatedFile(path string) ([]stratify.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return stratify.ReadAnnotated(f)
}

func writeListFile(path string, records []stratify.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := stratify.WriteList(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
