package main

import (
	"flag"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/heredity"
	"github.com/carbocation/pfx"
	log "github.com/sirupsen/logrus"
)

func main() {
	dbPath := flag.String("db", "", "SQLite database holding pedigrees and runs")
	importPath := flag.String("import", "", "CSV pedigree to load into the database's person table")
	runID := flag.String("run", "", "Print the posteriors of this run")
	flag.Parse()

	if *dbPath == "" {
		flag.PrintDefaults()
		log.Fatalln("No database given")
	}

	*dbPath = expandHome(*dbPath)

	log.Println("Opening store:", *dbPath, "with driver", heredity.WhichSQLiteDriver())
	store, err := heredity.OpenStore(*dbPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer store.Close()

	if *importPath != "" {
		// Validate through the regular loader so that only a consistent
		// pedigree is ever imported.
		pedigree, err := heredity.Open(expandHome(*importPath))
		if err != nil {
			log.Fatalln(err)
		}
		if err := store.ImportPeople(pedigree.People()); err != nil {
			log.Fatalln(err)
		}
		log.Println("Imported", pedigree.Len(), "people")
	}

	if *runID != "" {
		result, err := store.Posteriors(*runID)
		if err != nil {
			log.Fatalln(err)
		}
		if err := heredity.WriteReport(os.Stdout, result); err != nil {
			log.Fatalln(err)
		}
		return
	}

	runs, err := store.Runs()
	if err != nil {
		log.Fatalln(err)
	}
	for i, run := range runs {
		fmt.Printf("%d) %s %s people=%d worlds=%d source=%s\n", i, run.RunID, run.CreatedAt, run.People, run.Worlds, run.Source)
	}

	log.Println("Saw", len(runs), "runs")
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	usr, err := user.Current()
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	return filepath.Join(usr.HomeDir, path[2:])
}
