// Package prep defines the public types and the interface of the
// checklist preparation pipeline. The implementation lives in
// internal/ioprep.
package prep

import "context"

// Row is one input record reduced to the three resolved columns.
// Field values are trimmed of surrounding whitespace.
type Row struct {
	Species string
	Genus   string
	Kingdom string
}

// Pair links a species name to the kingdom it was recorded under.
// Both fields are always non-empty.
type Pair struct {
	Species string
	Kingdom string
}

// Summary reports the outcome of a preparation run.
type Summary struct {
	// RowsRead is the number of data rows consumed from the input.
	RowsRead int

	// SearchNames is the number of unique names in the search list.
	SearchNames int

	// Pairs is the number of unique species-kingdom pairs.
	Pairs int

	// SearchFile is the path of the generated search list.
	SearchFile string

	// PairsFile is the path of the generated species-kingdom table.
	PairsFile string
}

// Preparer converts a GBIF occurrence or checklist download into the
// search list and the species-kingdom table.
type Preparer interface {
	// Prep runs the whole pipeline: delimiter detection, column
	// resolution, aggregation and writing of both artifacts.
	Prep(ctx context.Context) (*Summary, error)
}
