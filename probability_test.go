package heredity

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesAreValid(t *testing.T) {
	require.NoError(t, DefaultTables().Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := map[string]func(*Tables){
		"negative prior":     func(t *Tables) { t.Gene = [3]float64{1.1, -0.1, 0} },
		"prior does not sum": func(t *Tables) { t.Gene[NoCopies] = 0.5 },
		"trait above one":    func(t *Tables) { t.Trait[TwoCopies] = 1.5 },
		"negative mutation":  func(t *Tables) { t.Mutation = -0.01 },
		"mutation above one": func(t *Tables) { t.Mutation = 2 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			tables := DefaultTables()
			mutate(&tables)
			err := tables.Validate()
			assert.True(t, errors.Is(err, ErrInvalidTables), "got %v", err)
		})
	}
}

func TestTransmission(t *testing.T) {
	tables := DefaultTables()
	assert.Equal(t, 0.99, tables.Transmission(TwoCopies))
	assert.Equal(t, 0.5, tables.Transmission(OneCopy))
	assert.Equal(t, 0.01, tables.Transmission(NoCopies))
}

func TestInheritanceIsMendelianWithoutMutation(t *testing.T) {
	tables := DefaultTables()
	tables.Mutation = 0

	assert.Equal(t, [3]float64{0, 1, 0}, tables.Inheritance(NoCopies, TwoCopies))
	assert.Equal(t, [3]float64{0, 1, 0}, tables.Inheritance(TwoCopies, NoCopies))
	assert.Equal(t, [3]float64{0, 0, 1}, tables.Inheritance(TwoCopies, TwoCopies))
	assert.Equal(t, [3]float64{1, 0, 0}, tables.Inheritance(NoCopies, NoCopies))
	assert.Equal(t, [3]float64{0.25, 0.5, 0.25}, tables.Inheritance(OneCopy, OneCopy))
}

func TestInheritanceSumsToOne(t *testing.T) {
	tables := DefaultTables()
	for _, m := range GeneCounts {
		for _, f := range GeneCounts {
			dist := tables.Inheritance(m, f)
			assert.InDelta(t, 1, dist[0]+dist[1]+dist[2], 1e-12, "mother=%s father=%s", m, f)
		}
	}
}

func TestLoadTables(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		return path
	}

	t.Run("file not found", func(t *testing.T) {
		_, err := LoadTables(filepath.Join(dir, "404.json"))
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "404.json")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := LoadTables(write("garbage.json", "koala"))
		if assert.Error(t, err) {
			assert.Regexp(t, `^error decoding JSON value in .*/garbage\.json: `, err.Error())
		}
	})

	t.Run("null", func(t *testing.T) {
		_, err := LoadTables(write("null.json", "null"))
		if assert.Error(t, err) {
			assert.Regexp(t, `^loading .*/null\.json resulted in nil tables$`, err.Error())
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadTables(write("unknown.json", `{"roflcopter": true}`))
		assert.Error(t, err)
	})

	t.Run("more", func(t *testing.T) {
		_, err := LoadTables(write("more.json", "{}{}"))
		if assert.Error(t, err) {
			assert.Regexp(t, `^found unexpected data after tables in .*/more\.json$`, err.Error())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := LoadTables(write("invalid.json", `{"mutation": 3}`))
		assert.True(t, errors.Is(err, ErrInvalidTables), "got %v", err)
	})

	t.Run("partial override", func(t *testing.T) {
		tables, err := LoadTables(write("mutation.json", `{"mutation": 0.05}`))
		require.NoError(t, err)

		want := DefaultTables()
		want.Mutation = 0.05
		assert.Equal(t, want, tables)
	})

	t.Run("full", func(t *testing.T) {
		tables, err := LoadTables(write("full.json", `{
			"gene": [0.5, 0.25, 0.25],
			"trait": [0, 0.5, 1],
			"mutation": 0
		}`))
		require.NoError(t, err)
		assert.Equal(t, Tables{
			Gene:     [3]float64{0.5, 0.25, 0.25},
			Trait:    [3]float64{0, 0.5, 1},
			Mutation: 0,
		}, tables)
	})
}
