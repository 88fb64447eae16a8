package ingest

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// dirWorkers bounds how many sources a directory ingest reads at once.
const dirWorkers = 4

// Dir ingests every *.csv file (case-insensitive extension) directly inside
// dir, non-recursive. Sources are read concurrently, but results are joined
// in lexicographic filename order so the concatenation is deterministic;
// report line numbers stay local to each source.
//
// An unreadable source is logged and contributes empty results; only a
// failure to list the directory itself is returned as an error.
func Dir(ctx context.Context, dir string) (Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	parts := make([]Result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(dirWorkers)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			res, err := File(ctx, filepath.Join(dir, name))
			if err != nil {
				// Soft-fail this source and continue with the rest.
				log.Printf("skipping %s: %v", name, err)
				return nil
			}
			parts[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var all Result
	for _, p := range parts {
		all.Records = append(all.Records, p.Records...)
		all.ErrorLines = append(all.ErrorLines, p.ErrorLines...)
	}
	return all, nil
}
