// Package heredity computes exact posterior distributions over the hidden
// gene counts and traits of the people in a family pedigree, given what is
// known about who expresses the trait.
//
// Each person carries 0, 1 or 2 copies of an allele. Founders draw their
// count from a prior; children inherit one copy from each parent, subject to
// mutation. Whether a person expresses the trait depends only on their own
// count. Inference enumerates every world consistent with the evidence,
// scores it, and sums the scores into per-person marginals, so it is exact
// but exponential in the number of people.
package heredity

import (
	"context"
	"path/filepath"
	"strings"
)

// databaseExtensions are loaded with OpenStore rather than parsed as CSV.
var databaseExtensions = map[string]struct{}{
	".db":      {},
	".sqlite":  {},
	".sqlite3": {},
}

// Open loads and validates a pedigree from path. See OpenContext.
func Open(path string) (*Pedigree, error) {
	return OpenContext(context.Background(), path)
}

// OpenContext loads and validates a pedigree. path may be a local CSV file,
// a gs://bucket/object CSV, either of them gzip or zstd compressed, or a
// SQLite database whose person table holds the records.
func OpenContext(ctx context.Context, path string) (*Pedigree, error) {
	if _, isDB := databaseExtensions[strings.ToLower(filepath.Ext(path))]; isDB && !strings.HasPrefix(path, gcsPrefix) {
		return openDatabase(path)
	}

	src, err := openSource(ctx, path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	r, _, err := Decompress(src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	people, err := ReadPeople(r)
	if err != nil {
		return nil, err
	}

	return NewPedigree(people)
}

func openDatabase(path string) (*Pedigree, error) {
	store, err := openStoreReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	people, err := store.People()
	if err != nil {
		return nil, err
	}

	return NewPedigree(people)
}
