package prep_test

import (
	"testing"

	"github.com/gnames/gbifprep/internal/ioprep"
	"github.com/gnames/gbifprep/pkg/config"
	"github.com/gnames/gbifprep/pkg/prep"
	"github.com/stretchr/testify/assert"
)

// TestPreparerContract ensures that the ioprep implementation
// satisfies the prep.Preparer interface. This is a compile-time
// check; the test will not build if the contract is broken.
func TestPreparerContract(t *testing.T) {
	var _ prep.Preparer = ioprep.New(config.New(), nil)

	assert.True(t, true,
		"ioprep.New should return a prep.Preparer")
}
