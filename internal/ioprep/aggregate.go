package ioprep

import (
	"strings"

	"github.com/gnames/gbifprep/pkg/parserpool"
	"github.com/gnames/gbifprep/pkg/prep"
	"github.com/gnames/gnlib/ent/nomcode"
)

// aggregator accumulates the two deduplicated sets during the single
// pass over the input. It is local to one run and never shared
// between runs.
type aggregator struct {
	cols      *columns
	canonical bool
	pool      parserpool.Pool

	searchSet map[string]struct{}
	pairSet   map[prep.Pair]struct{}
	rowsRead  int
}

func newAggregator(
	cols *columns,
	canonical bool,
	pool parserpool.Pool,
) *aggregator {
	return &aggregator{
		cols:      cols,
		canonical: canonical,
		pool:      pool,
		searchSet: make(map[string]struct{}),
		pairSet:   make(map[prep.Pair]struct{}),
	}
}

// addRecord consumes one data row. Rows never fail: sparse or blank
// rows are counted and skipped, malformed UTF-8 bytes are replaced
// with the Unicode replacement character.
func (a *aggregator) addRecord(record []string) {
	a.rowsRead++

	row := prep.Row{
		Species: cleanField(field(record, a.cols.species)),
		Genus:   cleanField(field(record, a.cols.genus)),
		Kingdom: cleanField(field(record, a.cols.kingdom)),
	}

	switch {
	case row.Species != "":
		sp := row.Species
		if a.canonical {
			sp = a.canonicalName(sp, row.Kingdom)
		}
		a.searchSet[sp] = struct{}{}
		if row.Kingdom != "" {
			pair := prep.Pair{Species: sp, Kingdom: row.Kingdom}
			a.pairSet[pair] = struct{}{}
		}
	case row.Genus != "":
		// Genus is the fallback identifier when species is
		// unrecorded. Such rows never contribute kingdom pairs.
		a.searchSet[row.Genus] = struct{}{}
	}
}

// canonicalName reduces a species name to its simple canonical form.
// The nomenclatural code is picked from the kingdom of the row:
// Animalia parses under the zoological code, everything else under
// the botanical one. Names gnparser cannot parse stay verbatim.
func (a *aggregator) canonicalName(name, kingdom string) string {
	if a.pool == nil {
		return name
	}

	code := nomcode.Botanical
	if strings.EqualFold(kingdom, "Animalia") {
		code = nomcode.Zoological
	}

	parsed, err := a.pool.Parse(name, code)
	if err != nil || !parsed.Parsed || parsed.Canonical == nil {
		return name
	}
	if parsed.Canonical.Simple == "" {
		return name
	}
	return parsed.Canonical.Simple
}

// cleanField trims surrounding whitespace and substitutes invalid
// UTF-8 sequences instead of raising them.
func cleanField(s string) string {
	s = strings.ToValidUTF8(s, "\ufffd")
	return strings.TrimSpace(s)
}
