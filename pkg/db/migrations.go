package db

// migrationsSQL is the embedded schema for the stimulus audit store.
// Statements are split on ";" and applied in order by InitDB.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	stage TEXT NOT NULL,
	started_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS stimuli (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id INTEGER NOT NULL REFERENCES runs(id),
	kind TEXT NOT NULL CHECK (kind IN ('monosyllable', 'disyllable')),
	onset1 TEXT NOT NULL DEFAULT '',
	nucleus1 TEXT NOT NULL DEFAULT '',
	onset2 TEXT NOT NULL,
	nucleus2 TEXT NOT NULL,
	coda TEXT NOT NULL DEFAULT '',
	shape TEXT NOT NULL,
	jamo TEXT NOT NULL,
	hangul TEXT NOT NULL DEFAULT '',
	romanization TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_stimuli_shape ON stimuli(run_id, shape);

CREATE TABLE IF NOT EXISTS suppressions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id INTEGER NOT NULL REFERENCES runs(id),
	hangul TEXT NOT NULL,
	romanization TEXT NOT NULL
)
`
