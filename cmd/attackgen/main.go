// Command attackgen generates the precomputed attack table files: one per
// jump piece kind and four per slider, all in the dense 64-record format.
// It can also record the generated files in the manifest database and later
// verify a table directory against those records.
//
// On success nothing is written to stdout, so the tool composes with build
// scripts; progress and problems go to stderr.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/hailam/attacktables/internal/board"
	"github.com/hailam/attacktables/internal/manifest"
	"github.com/hailam/attacktables/internal/table"
)

var (
	piece       = flag.String("piece", "all", "piece to generate: king, knight, wpawn, bpawn, rook, bishop or all")
	outDir      = flag.String("out", "", "output directory for table files (default: platform data directory)")
	record      = flag.Bool("manifest", false, "record generated files in the manifest database")
	manifestDir = flag.String("manifest-dir", "", "manifest database directory (default: platform data directory)")
	verify      = flag.Bool("verify", false, "verify table files against the manifest instead of generating")
	verbose     = flag.Bool("v", false, "log each file as it is written")
)

func main() {
	flag.Parse()

	dir := *outDir
	if dir == "" {
		var err error
		dir, err = manifest.TableDir()
		if err != nil {
			log.Fatalf("attackgen: resolve table directory: %v", err)
		}
	}

	if *verify {
		if !verifyTables(dir) {
			os.Exit(1)
		}
		return
	}

	jobs, err := selectJobs(*piece)
	if err != nil {
		log.Fatalf("attackgen: %v", err)
	}

	written := generate(jobs, dir)

	if *record {
		recordFiles(dir, written)
	}
}

// job is one unit of generation work: a jump kind or a whole slider.
type job struct {
	name  string
	files func(dir string) ([]string, error)
}

func selectJobs(piece string) ([]job, error) {
	if piece == "all" {
		var jobs []job
		for _, k := range board.Kinds {
			jobs = append(jobs, kindJob(k))
		}
		for _, s := range board.Sliders {
			jobs = append(jobs, sliderJob(s))
		}
		return jobs, nil
	}

	if k, err := board.ParseKind(piece); err == nil {
		return []job{kindJob(k)}, nil
	}
	if s, err := board.ParseSlider(piece); err == nil {
		return []job{sliderJob(s)}, nil
	}
	return nil, fmt.Errorf("unknown piece %q", piece)
}

func kindJob(k board.Kind) job {
	return job{name: k.String(), files: func(dir string) ([]string, error) {
		name := table.FileName(k)
		if err := table.GenerateKind(k).WriteFile(filepath.Join(dir, name)); err != nil {
			return nil, err
		}
		return []string{name}, nil
	}}
}

func sliderJob(s board.Slider) job {
	return job{name: s.String(), files: func(dir string) ([]string, error) {
		if err := table.GenerateSlider(s).WriteDir(dir); err != nil {
			return nil, err
		}
		var names []string
		for _, d := range s.Directions() {
			names = append(names, table.RayFileName(s, d))
		}
		return names, nil
	}}
}

// generate runs every job concurrently; the jobs write disjoint files and
// each write is atomic, so they need no coordination beyond the result
// collection. Any failure aborts the run.
func generate(jobs []job, dir string) []string {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("attackgen: %v", err)
	}

	var (
		mu      sync.Mutex
		written []string
		wg      sync.WaitGroup
	)
	errs := make(chan error, len(jobs))

	for _, j := range jobs {
		wg.Add(1)
		go func(j job) {
			defer wg.Done()
			names, err := j.files(dir)
			if err != nil {
				errs <- fmt.Errorf("%s: %w", j.name, err)
				return
			}
			mu.Lock()
			written = append(written, names...)
			mu.Unlock()
			if *verbose {
				for _, n := range names {
					log.Printf("wrote %s", filepath.Join(dir, n))
				}
			}
		}(j)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		log.Fatalf("attackgen: %v", err)
	}

	sort.Strings(written)
	return written
}

func openStore() (*manifest.Store, error) {
	if *manifestDir != "" {
		return manifest.Open(*manifestDir)
	}
	return manifest.OpenDefault()
}

func recordFiles(dir string, names []string) {
	store, err := openStore()
	if err != nil {
		log.Fatalf("attackgen: open manifest: %v", err)
	}
	defer store.Close()

	for _, name := range names {
		rec, err := store.RecordFile(filepath.Join(dir, name))
		if err != nil {
			log.Fatalf("attackgen: record %s: %v", name, err)
		}
		if *verbose {
			log.Printf("recorded %s sha256=%s", rec.File, rec.SHA256)
		}
	}
}

// verifyTables reports every manifest record whose file under dir is
// missing or altered. It returns false when any table fails.
func verifyTables(dir string) bool {
	store, err := openStore()
	if err != nil {
		log.Fatalf("attackgen: open manifest: %v", err)
	}
	defer store.Close()

	problems, err := store.Verify(dir)
	if err != nil {
		log.Fatalf("attackgen: verify: %v", err)
	}
	for _, p := range problems {
		log.Printf("attackgen: %s: %s", p.File, p.Reason)
	}
	if len(problems) > 0 {
		return false
	}

	if *verbose {
		recs, err := store.All()
		if err != nil {
			log.Fatalf("attackgen: %v", err)
		}
		log.Printf("verified %d table files in %s", len(recs), dir)
	}
	return true
}
