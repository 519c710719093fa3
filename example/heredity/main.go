package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/heredity"
	"github.com/carbocation/pfx"
	log "github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status: 0 on success, 1 when
// the pedigree could not be inferred, 2 on bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)

	opts := heredity.DefaultOptions()

	fs := flag.NewFlagSet(filepath.Base(args[0]), flag.ContinueOnError)
	fs.SetOutput(stderr)
	tablesPath := fs.String("tables", "", "Optional JSON file overriding the probability tables")
	dbPath := fs.String("db", "", "Optional SQLite database in which to record the run")
	fs.IntVar(&opts.Workers, "workers", opts.Workers, "Number of concurrent workers")
	fs.IntVar(&opts.MaxPeople, "max-people", opts.MaxPeople, "Refuse pedigrees larger than this (0 disables the check)")
	verbose := fs.Bool("v", false, "Log progress")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] data.csv\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	path, err := expandHome(fs.Arg(0))
	if err != nil {
		log.Errorln(err)
		return 1
	}

	tables := heredity.DefaultTables()
	if *tablesPath != "" {
		tablesFile, err := expandHome(*tablesPath)
		if err != nil {
			log.Errorln(err)
			return 1
		}
		tables, err = heredity.LoadTables(tablesFile)
		if err != nil {
			log.Errorln(err)
			return 1
		}
	}

	pedigree, err := heredity.Open(path)
	if err != nil {
		var validationErr *heredity.ValidationError
		if errors.As(err, &validationErr) {
			log.Errorln("Pedigree rejected:", validationErr)
			return 1
		}
		log.Errorln(err)
		return 1
	}
	log.WithFields(log.Fields{
		"path":   path,
		"people": pedigree.Len(),
	}).Debug("Loaded pedigree")

	result, err := heredity.Infer(context.Background(), pedigree, tables, opts)
	if err != nil {
		var inferenceErr *heredity.InferenceError
		if errors.As(err, &inferenceErr) {
			log.Errorln("Evidence is impossible under the tables:", inferenceErr)
			return 1
		}
		log.Errorln(err)
		return 1
	}

	if err := heredity.WriteReport(stdout, result); err != nil {
		log.Errorln(err)
		return 1
	}

	if *dbPath != "" {
		storePath, err := expandHome(*dbPath)
		if err != nil {
			log.Errorln(err)
			return 1
		}
		store, err := heredity.OpenStore(storePath)
		if err != nil {
			log.Errorln(err)
			return 1
		}
		defer store.Close()

		saved, err := store.SaveRun(path, tables, result)
		if err != nil {
			log.Errorln(err)
			return 1
		}
		log.WithField("run_id", saved.RunID).Info("Recorded run")
	}

	return 0
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	usr, err := user.Current()
	if err != nil {
		return "", pfx.Err(err)
	}
	return filepath.Join(usr.HomeDir, path[2:]), nil
}
