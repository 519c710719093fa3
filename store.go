package heredity

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/carbocation/pfx"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS person (
	position INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	mother   TEXT NOT NULL DEFAULT '',
	father   TEXT NOT NULL DEFAULT '',
	trait    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS run (
	run_id      TEXT PRIMARY KEY,
	source      TEXT NOT NULL,
	people      INTEGER NOT NULL,
	worlds      INTEGER NOT NULL,
	tables_json TEXT NOT NULL,
	created_at  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS posterior (
	run_id      TEXT NOT NULL,
	position    INTEGER NOT NULL,
	name        TEXT NOT NULL,
	gene_0      REAL NOT NULL,
	gene_1      REAL NOT NULL,
	gene_2      REAL NOT NULL,
	trait_false REAL NOT NULL,
	trait_true  REAL NOT NULL,
	PRIMARY KEY (run_id, position),
	FOREIGN KEY (run_id) REFERENCES run(run_id)
);
`

// Store is a SQLite database holding a pedigree in its person table and the
// final posteriors of completed inference runs. Nothing about a run is
// written until the run has finished.
type Store struct {
	DB *sqlx.DB
}

// Run describes one stored inference run.
type Run struct {
	RunID      string `db:"run_id"`
	Source     string `db:"source"`
	People     int    `db:"people"`
	Worlds     int64  `db:"worlds"`
	TablesJSON string `db:"tables_json"`
	CreatedAt  Time   `db:"created_at"`
}

// Tables decodes the tables the run was computed with.
func (r Run) Tables() (Tables, error) {
	var t Tables
	if err := json.Unmarshal([]byte(r.TablesJSON), &t); err != nil {
		return Tables{}, pfx.Err(err)
	}
	return t, nil
}

// posteriorRow conforms to the rows of the posterior table.
type posteriorRow struct {
	RunID      string  `db:"run_id"`
	Position   int     `db:"position"`
	Name       string  `db:"name"`
	Gene0      float64 `db:"gene_0"`
	Gene1      float64 `db:"gene_1"`
	Gene2      float64 `db:"gene_2"`
	TraitFalse float64 `db:"trait_false"`
	TraitTrue  float64 `db:"trait_true"`
}

// OpenStore opens (creating if needed) the SQLite database at path with
// whichever driver this binary was built with.
func OpenStore(path string) (*Store, error) {
	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html . It seems that sqlite3 permitted
	// URI filenames without the file: prefix, but that is not standard.
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect(whichSQLiteDriver, path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, pfx.Err(err)
	}

	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

// ImportPeople replaces the person table with the given records, keeping
// their order.
func (s *Store) ImportPeople(people []Person) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return pfx.Err(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM person`); err != nil {
		return pfx.Err(err)
	}
	stmt, err := tx.Preparex(`INSERT INTO person (position, name, mother, father, trait) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return pfx.Err(err)
	}
	defer stmt.Close()

	for i, p := range people {
		if _, err := stmt.Exec(i, p.Name, p.Mother, p.Father, p.Trait); err != nil {
			return pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// openStoreReadOnly opens an existing database for reading without creating
// the file or touching its schema.
func openStoreReadOnly(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, pfx.Err(err)
	}

	db, err := sqlx.Connect(whichSQLiteDriver, "file:"+path+"?mode=ro")
	if err != nil {
		return nil, pfx.Err(err)
	}

	return &Store{DB: db}, nil
}

// personRow conforms to the rows of the person table. The trait is read as
// text so that a bad literal is reported against the record it belongs to.
type personRow struct {
	Name   string `db:"name"`
	Mother string `db:"mother"`
	Father string `db:"father"`
	Trait  string `db:"trait"`
}

// People reads the person table in its stored order. A database without a
// person table, or with an unrecognized trait literal, is a *ValidationError.
func (s *Store) People() ([]Person, error) {
	var tables int
	if err := s.DB.Get(&tables, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'person'`); err != nil {
		return nil, pfx.Err(err)
	}
	if tables == 0 {
		return nil, invalid("", "database has no person table")
	}

	rows := make([]personRow, 0)
	if err := s.DB.Select(&rows, `SELECT name, mother, father, trait FROM person ORDER BY position ASC`); err != nil {
		return nil, pfx.Err(err)
	}

	people := make([]Person, 0, len(rows))
	for _, row := range rows {
		trait, err := ParseObservation(strings.TrimSpace(row.Trait))
		if err != nil {
			return nil, invalid(row.Name, "%v", err)
		}
		people = append(people, Person{
			Name:   row.Name,
			Mother: row.Mother,
			Father: row.Father,
			Trait:  trait,
		})
	}

	return people, nil
}

// SaveRun records the posteriors of a completed run under a new run ID.
func (s *Store) SaveRun(source string, t Tables, result Result) (Run, error) {
	tablesJSON, err := json.Marshal(t)
	if err != nil {
		return Run{}, pfx.Err(err)
	}

	run := Run{
		RunID:      uuid.New().String(),
		Source:     source,
		People:     len(result.Distributions),
		Worlds:     int64(result.Worlds),
		TablesJSON: string(tablesJSON),
		CreatedAt:  Time(time.Now().UTC().Truncate(time.Second)),
	}

	tx, err := s.DB.Beginx()
	if err != nil {
		return Run{}, pfx.Err(err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(`INSERT INTO run (run_id, source, people, worlds, tables_json, created_at)
		VALUES (:run_id, :source, :people, :worlds, :tables_json, :created_at)`, &run)
	if err != nil {
		return Run{}, pfx.Err(err)
	}

	for i, d := range result.Distributions {
		row := posteriorRow{
			RunID:      run.RunID,
			Position:   i,
			Name:       d.Name,
			Gene0:      d.Gene[NoCopies],
			Gene1:      d.Gene[OneCopy],
			Gene2:      d.Gene[TwoCopies],
			TraitFalse: d.LacksTrait(),
			TraitTrue:  d.HasTrait(),
		}
		_, err = tx.NamedExec(`INSERT INTO posterior (run_id, position, name, gene_0, gene_1, gene_2, trait_false, trait_true)
			VALUES (:run_id, :position, :name, :gene_0, :gene_1, :gene_2, :trait_false, :trait_true)`, &row)
		if err != nil {
			return Run{}, pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, pfx.Err(err)
	}

	return run, nil
}

// Runs lists stored runs, oldest first.
func (s *Store) Runs() ([]Run, error) {
	runs := make([]Run, 0)
	if err := s.DB.Select(&runs, `SELECT * FROM run ORDER BY created_at ASC, run_id ASC`); err != nil {
		return nil, pfx.Err(err)
	}
	return runs, nil
}

// Posteriors reads back the result of one run.
func (s *Store) Posteriors(runID string) (Result, error) {
	var run Run
	if err := s.DB.Get(&run, `SELECT * FROM run WHERE run_id = ?`, runID); err != nil {
		return Result{}, pfx.Err(err)
	}

	rows := make([]posteriorRow, 0, run.People)
	if err := s.DB.Select(&rows, `SELECT * FROM posterior WHERE run_id = ? ORDER BY position ASC`, runID); err != nil {
		return Result{}, pfx.Err(err)
	}

	result := Result{
		Distributions: make([]Distribution, 0, len(rows)),
		Worlds:        uint64(run.Worlds),
	}
	for _, row := range rows {
		result.Distributions = append(result.Distributions, Distribution{
			Name:  row.Name,
			Gene:  [3]float64{row.Gene0, row.Gene1, row.Gene2},
			Trait: [2]float64{row.TraitFalse, row.TraitTrue},
		})
	}

	return result, nil
}
