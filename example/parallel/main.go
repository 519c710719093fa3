package main

import (
	"context"
	"flag"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/carbocation/heredity"
	"github.com/carbocation/pfx"
	log "github.com/sirupsen/logrus"
)

// Runs inference on one pedigree with 1, 2, 4, ... workers up to the number
// of CPUs, reporting timings and checking that every worker count gives the
// same answer.
func main() {
	path := flag.String("pedigree", "", "Filename of the pedigree to process")
	maxPeople := flag.Int("max-people", 16, "Refuse pedigrees larger than this")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree file found")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	pedigree, err := heredity.Open(*path)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Loaded", pedigree.Len(), "people;", heredity.WorldCount(pedigree.Len(), pedigree.Unobserved()), "worlds to score")

	tables := heredity.DefaultTables()
	var baseline heredity.Result
	for workers := 1; workers <= runtime.NumCPU(); workers *= 2 {
		opts := heredity.DefaultOptions()
		opts.Workers = workers
		opts.MaxPeople = *maxPeople

		start := time.Now()
		result, err := heredity.Infer(context.Background(), pedigree, tables, opts)
		if err != nil {
			log.Fatalln(err)
		}
		log.Println("Workers:", workers, "elapsed:", time.Since(start))

		if workers == 1 {
			baseline = result
			continue
		}
		for i, d := range result.Distributions {
			if d != baseline.Distributions[i] {
				log.Fatalf("%s differs with %d workers: %+v vs %+v\n", d.Name, workers, d, baseline.Distributions[i])
			}
		}
	}
}
