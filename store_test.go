package heredity

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "heredity.db")
	s, err := OpenStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestStorePeople(t *testing.T) {
	s, _ := tempStore(t)
	p := familyPedigree(t)

	require.NoError(t, s.ImportPeople(p.People()))
	people, err := s.People()
	require.NoError(t, err)
	assert.Equal(t, p.People(), people)

	// A second import replaces the first.
	require.NoError(t, s.ImportPeople(p.People()[:1]))
	people, err = s.People()
	require.NoError(t, err)
	assert.Len(t, people, 1)
}

func TestOpenDatabase(t *testing.T) {
	s, path := tempStore(t)
	require.NoError(t, s.ImportPeople(familyPedigree(t).People()))

	p, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, familyPedigree(t).People(), p.People())
}

func TestOpenDatabaseLeavesSchemaAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.db")
	db, err := sqlx.Connect(whichSQLiteDriver, "file:"+path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE sample (id TEXT PRIMARY KEY)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open(path)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "got %v", err)
	assert.Contains(t, validationErr.Reason, "person table")

	db, err = sqlx.Connect(whichSQLiteDriver, "file:"+path)
	require.NoError(t, err)
	defer db.Close()
	var tables []string
	require.NoError(t, db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`))
	assert.Equal(t, []string{"sample"}, tables)
}

func TestStorePeopleRejectsBadTrait(t *testing.T) {
	s, path := tempStore(t)
	require.NoError(t, s.ImportPeople(familyPedigree(t).People()))
	_, err := s.DB.Exec(`UPDATE person SET trait = 'yes' WHERE position = 1`)
	require.NoError(t, err)

	people, err := s.People()
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "got %v", err)
	assert.Equal(t, familyPedigree(t).People()[1].Name, validationErr.Person)
	assert.Nil(t, people)

	_, err = Open(path)
	assert.True(t, errors.As(err, &validationErr), "got %v", err)
}

func TestStoreRuns(t *testing.T) {
	s, _ := tempStore(t)
	p := familyPedigree(t)
	tables := DefaultTables()

	result, err := Infer(context.Background(), p, tables, DefaultOptions())
	require.NoError(t, err)

	run, err := s.SaveRun("family.csv", tables, result)
	require.NoError(t, err)
	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, p.Len(), run.People)

	runs, err := s.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run, runs[0])

	stored, err := runs[0].Tables()
	require.NoError(t, err)
	assert.Equal(t, tables, stored)

	got, err := s.Posteriors(run.RunID)
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestStorePosteriorsUnknownRun(t *testing.T) {
	s, _ := tempStore(t)
	_, err := s.Posteriors("no-such-run")
	assert.Error(t, err)
}
