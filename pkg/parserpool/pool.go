// Package parserpool provides a pool of gnparser instances for
// concurrent name parsing. This is a pure package - parsing is
// computation, not I/O.
package parserpool

import (
	"fmt"
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides gnparser instances for concurrent parsing.
// It maintains separate pools for botanical and zoological
// nomenclatural codes.
type Pool interface {
	// Parse parses a scientific name string using the specified
	// nomenclatural code. Safe for concurrent use.
	Parse(nameString string, code nomcode.Code) (parsed.Parsed, error)

	// Close shuts down the parser pools and releases resources.
	// After calling Close, the pool should not be used.
	Close()
}

// PoolImpl implements the Pool interface using gnparser.NewPool.
type PoolImpl struct {
	pools    map[nomcode.Code]chan gnparser.GNparser
	poolSize int
}

// NewPool creates a new parser pool with the specified number of
// workers per nomenclatural code. If jobsNum is 0, it defaults to
// runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize == 0 {
		poolSize = runtime.NumCPU()
	}

	pools := make(map[nomcode.Code]chan gnparser.GNparser)
	for _, code := range []nomcode.Code{
		nomcode.Botanical, nomcode.Zoological,
	} {
		cfg := gnparser.NewConfig(gnparser.OptCode(code))
		pools[code] = gnparser.NewPool(cfg, poolSize)
	}

	return &PoolImpl{pools: pools, poolSize: poolSize}
}

// Parse retrieves a parser for the given code, parses the name, and
// returns the parser to the pool.
func (p *PoolImpl) Parse(
	nameString string, code nomcode.Code,
) (parsed.Parsed, error) {
	ch, ok := p.pools[code]
	if !ok {
		return parsed.Parsed{},
			fmt.Errorf("unsupported nomenclatural code: %v", code)
	}

	parser := <-ch
	result := parser.ParseName(nameString)
	ch <- parser

	return result, nil
}

// Close shuts down the parser pools and drains remaining parsers.
func (p *PoolImpl) Close() {
	for _, ch := range p.pools {
		close(ch)
		for range ch {
		}
	}
}
