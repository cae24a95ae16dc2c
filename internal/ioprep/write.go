package ioprep

import (
	"cmp"
	"encoding/csv"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/gnames/gbifprep/pkg/prep"
	"golang.org/x/sync/errgroup"
)

// writeArtifacts serializes both sets in deterministic sorted order.
// The two files are written concurrently; the first failure wins and
// is fatal. A partial first file is possible when the second write
// fails, there is no rollback.
func writeArtifacts(
	searchSet map[string]struct{},
	pairSet map[prep.Pair]struct{},
	searchPath, pairsPath string,
) error {
	var g errgroup.Group

	g.Go(func() error {
		return writeSearchList(searchSet, searchPath)
	})
	g.Go(func() error {
		return writePairs(pairSet, pairsPath)
	})

	return g.Wait()
}

// writeSearchList writes one name per line, deduplicated and sorted
// in ascending code-point order.
func writeSearchList(set map[string]struct{}, path string) error {
	names := slices.Sorted(maps.Keys(set))

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}

// writePairs writes tab-separated species-kingdom rows without a
// header, sorted by (species, kingdom).
func writePairs(set map[prep.Pair]struct{}, path string) error {
	pairs := slices.SortedFunc(maps.Keys(set),
		func(a, b prep.Pair) int {
			if c := cmp.Compare(a.Species, b.Species); c != 0 {
				return c
			}
			return cmp.Compare(a.Kingdom, b.Kingdom)
		})

	f, err := os.Create(path)
	if err != nil {
		return WriteFileError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	for _, pair := range pairs {
		if err := w.Write([]string{pair.Species, pair.Kingdom}); err != nil {
			return WriteFileError(path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return WriteFileError(path, err)
	}

	return nil
}
