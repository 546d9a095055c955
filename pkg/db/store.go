package db

import (
	"database/sql"
	"fmt"

	"github.com/jmseok/stimgen/pkg/syllable"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// Stimulus is one audited stimulus row in the unified column layout;
// monosyllables leave Onset1 and Nucleus1 empty.
type Stimulus struct {
	Kind         string
	Onset1       string
	Nucleus1     string
	Onset2       string
	Nucleus2     string
	Coda         string
	Shape        string
	Jamo         string
	Hangul       string
	Romanization string
}

// MonoStimulus maps a monosyllable onto the unified layout.
func MonoStimulus(m syllable.Monosyllable) Stimulus {
	return Stimulus{
		Kind:         "monosyllable",
		Onset2:       m.Onset,
		Nucleus2:     m.Nucleus,
		Coda:         m.Coda,
		Shape:        m.Shape.String(),
		Jamo:         m.Jamo,
		Hangul:       m.Hangul,
		Romanization: m.Romanization,
	}
}

// BiStimulus maps a disyllable onto the unified layout. The coda column
// carries the second syllable's coda; the first syllable is open.
func BiStimulus(b syllable.Bisyllable) Stimulus {
	return Stimulus{
		Kind:         "disyllable",
		Onset1:       b.Syl1.Onset,
		Nucleus1:     b.Syl1.Nucleus,
		Onset2:       b.Syl2.Onset,
		Nucleus2:     b.Syl2.Nucleus,
		Coda:         b.Syl2.Coda,
		Shape:        b.Shape.String(),
		Jamo:         b.Jamo,
		Hangul:       b.Hangul,
		Romanization: b.Romanization,
	}
}

// BeginRun records a new pipeline stage invocation and returns its id.
func BeginRun(db DBExecutor, stage string) (int64, error) {
	if stage == "" {
		return 0, fmt.Errorf("stage must be non-empty")
	}
	var id int64
	err := db.QueryRow(`INSERT INTO runs (stage) VALUES (?) RETURNING id`, stage).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// InsertStimuli writes a batch of stimuli in a single transaction, so a
// failed run leaves no partial audit trail.
func InsertStimuli(conn *sql.DB, runID int64, stimuli []Stimulus) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin stimuli tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	stmt, err := tx.Prepare(`INSERT INTO stimuli
		(run_id, kind, onset1, nucleus1, onset2, nucleus2, coda, shape, jamo, hangul, romanization)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare stimuli insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range stimuli {
		if _, err := stmt.Exec(runID, s.Kind, s.Onset1, s.Nucleus1, s.Onset2, s.Nucleus2,
			s.Coda, s.Shape, s.Jamo, s.Hangul, s.Romanization); err != nil {
			return fmt.Errorf("insert stimulus %s/%s: %w", s.Shape, s.Jamo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %d stimuli: %w", len(stimuli), err)
	}
	return nil
}

// RecordSuppression notes a disyllable removed because it is a real word.
func RecordSuppression(db DBExecutor, runID int64, hangul, romanization string) error {
	_, err := db.Exec(`INSERT INTO suppressions (run_id, hangul, romanization) VALUES (?, ?, ?)`,
		runID, hangul, romanization)
	return err
}

// CountStimuli returns how many stimuli of the given kind a run recorded.
func CountStimuli(db DBExecutor, runID int64, kind string) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM stimuli WHERE run_id = ? AND kind = ?`, runID, kind).Scan(&n)
	return n, err
}

// CountByShape returns the per-shape stimulus counts for a run.
func CountByShape(db DBExecutor, runID int64) (map[string]int, error) {
	rows, err := db.Query(`SELECT shape, COUNT(*) FROM stimuli WHERE run_id = ? GROUP BY shape`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var shape string
		var n int
		if err := rows.Scan(&shape, &n); err != nil {
			return nil, err
		}
		out[shape] = n
	}
	return out, rows.Err()
}

// CountSuppressions returns how many lexical collisions a run recorded.
func CountSuppressions(db DBExecutor, runID int64) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM suppressions WHERE run_id = ?`, runID).Scan(&n)
	return n, err
}
