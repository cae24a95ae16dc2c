// Package ioprep implements the Preparer interface for converting
// GBIF occurrence and checklist downloads into search-list and
// species-kingdom artifacts. This is an impure I/O package that
// streams the input file and writes both outputs.
package ioprep

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/gnames/gbifprep/pkg/config"
	"github.com/gnames/gbifprep/pkg/parserpool"
	"github.com/gnames/gbifprep/pkg/prep"
)

var bomBytes = []byte{0xEF, 0xBB, 0xBF}

// ctxCheckRows is how often the row loop checks for cancellation.
const ctxCheckRows = 10_000

// preparer implements the prep.Preparer interface.
type preparer struct {
	cfg  *config.Config
	pool parserpool.Pool
}

// New creates a new Preparer. The parser pool may be nil when
// canonical simplification is off.
func New(cfg *config.Config, pool parserpool.Pool) prep.Preparer {
	return &preparer{cfg: cfg, pool: pool}
}

// Prep runs the whole pipeline in one pass: delimiter detection,
// header resolution, row aggregation, and the writing of both
// artifacts.
func (p *preparer) Prep(ctx context.Context) (*prep.Summary, error) {
	inPath := p.cfg.Prep.InputPath

	info, err := os.Stat(inPath)
	if err != nil {
		return nil, InputNotFoundError(inPath, err)
	}

	f, err := os.Open(inPath)
	if err != nil {
		return nil, InputNotFoundError(inPath, err)
	}
	defer f.Close()

	delim, err := p.delimiter(f)
	if err != nil {
		return nil, err
	}
	slog.Info("Detected input dialect",
		"path", inPath,
		"delimiter", string(delim),
	)

	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return nil, ReadRowError(inPath, err)
	}

	bar := newProgressBar(info.Size(), "reading ")
	defer bar.Finish()

	br := bufio.NewReader(bar.NewProxyReader(f))
	skipBOM(br)

	r := csv.NewReader(br)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, EmptyInputError(inPath)
	}
	if err != nil {
		return nil, ReadRowError(inPath, err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	agg := newAggregator(cols, p.cfg.Prep.Canonical, p.pool)
	for {
		if agg.rowsRead%ctxCheckRows == 0 {
			select {
			case <-ctx.Done():
				return nil, CancelledError(ctx.Err())
			default:
			}
		}

		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ReadRowError(inPath, err)
		}
		agg.addRecord(record)
	}
	bar.Finish()

	searchPath := p.cfg.Prep.OutputPrefix + "_species_search.txt"
	pairsPath := p.cfg.Prep.OutputPrefix + "_species_kingdom.tsv"

	slog.Info("Aggregation finished",
		"rows", agg.rowsRead,
		"search_names", len(agg.searchSet),
		"pairs", len(agg.pairSet),
	)

	err = writeArtifacts(agg.searchSet, agg.pairSet, searchPath, pairsPath)
	if err != nil {
		return nil, err
	}

	return &prep.Summary{
		RowsRead:    agg.rowsRead,
		SearchNames: len(agg.searchSet),
		Pairs:       len(agg.pairSet),
		SearchFile:  searchPath,
		PairsFile:   pairsPath,
	}, nil
}

// delimiter returns the configured field separator, detecting it
// from the first line of the file when the setting is 'auto'. The
// file position is left unchanged for 'comma' and 'tab'; callers
// seek back to the start after 'auto'.
func (p *preparer) delimiter(f *os.File) (rune, error) {
	switch p.cfg.Prep.Delimiter {
	case "comma":
		return ',', nil
	case "tab":
		return '\t', nil
	case "auto", "":
	default:
		return 0, BadDelimiterError(p.cfg.Prep.Delimiter)
	}

	br := bufio.NewReader(f)
	line, err := br.ReadString('\n')
	if line == "" {
		if err == nil || errors.Is(err, io.EOF) {
			return 0, EmptyInputError(f.Name())
		}
		return 0, ReadRowError(f.Name(), err)
	}

	return detectDelimiter(stripBOM(line)), nil
}

// skipBOM discards a UTF-8 byte order mark at the current position.
func skipBOM(br *bufio.Reader) {
	b, err := br.Peek(len(bomBytes))
	if err == nil && bytes.Equal(b, bomBytes) {
		_, _ = br.Discard(len(bomBytes))
	}
}
