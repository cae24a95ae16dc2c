package ioprep_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gbifprep/internal/ioprep"
	"github.com/gnames/gbifprep/pkg/config"
	"github.com/gnames/gbifprep/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prepRun writes the given content to a temp input file and runs the
// whole pipeline over it.
func prepRun(
	t *testing.T,
	content string,
	opts ...config.Option,
) (*config.Config, error) {
	t.Helper()
	dir := t.TempDir()

	inPath := filepath.Join(dir, "gbif_download.csv")
	require.NoError(t, os.WriteFile(inPath, []byte(content), 0644))

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptPrepInputPath(inPath),
		config.OptPrepOutputPrefix(filepath.Join(dir, "out")),
	})
	cfg.Update(opts)

	preparer := ioprep.New(cfg, nil)
	_, err := preparer.Prep(context.Background())
	return cfg, err
}

func TestPrepEndToEnd(t *testing.T) {
	input := "species,genus,kingdom\n" +
		"Panthera leo,Panthera,Animalia\n" +
		",Quercus,Plantae\n" +
		"Panthera leo,Panthera,Animalia\n"

	dir := t.TempDir()
	inPath := filepath.Join(dir, "gbif_download.csv")
	require.NoError(t, os.WriteFile(inPath, []byte(input), 0644))

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptPrepInputPath(inPath),
		config.OptPrepOutputPrefix(filepath.Join(dir, "out")),
	})

	preparer := ioprep.New(cfg, nil)
	summary, err := preparer.Prep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.RowsRead)
	assert.Equal(t, 2, summary.SearchNames)
	assert.Equal(t, 1, summary.Pairs)

	search, err := os.ReadFile(summary.SearchFile)
	require.NoError(t, err)
	assert.Equal(t, "Panthera leo\nQuercus\n", string(search))

	pairs, err := os.ReadFile(summary.PairsFile)
	require.NoError(t, err)
	assert.Equal(t, "Panthera leo\tAnimalia\n", string(pairs))
}

func TestPrepTabSeparated(t *testing.T) {
	input := "species\tgenus\tkingdom\n" +
		"Salmo trutta\tSalmo\tAnimalia\n" +
		"\tAmanita\tFungi\n"

	cfg, err := prepRun(t, input)
	require.NoError(t, err)

	search, err := os.ReadFile(
		cfg.Prep.OutputPrefix + "_species_search.txt")
	require.NoError(t, err)
	assert.Equal(t, "Amanita\nSalmo trutta\n", string(search))
}

func TestPrepBOMAndCase(t *testing.T) {
	input := "\ufeffSpecies,Genus,Kingdom\n" +
		"Rosa canina,Rosa,Plantae\n"

	cfg, err := prepRun(t, input)
	require.NoError(t, err)

	pairs, err := os.ReadFile(
		cfg.Prep.OutputPrefix + "_species_kingdom.tsv")
	require.NoError(t, err)
	assert.Equal(t, "Rosa canina\tPlantae\n", string(pairs))
}

func TestPrepExtraAndMissingFields(t *testing.T) {
	// Extra columns are ignored; short rows are padded with empty
	// strings.
	input := "gbifID,kingdom,genus,species,countryCode\n" +
		"1,Animalia,Puma,Puma concolor,US\n" +
		"2,Plantae,Quercus\n"

	cfg, err := prepRun(t, input)
	require.NoError(t, err)

	search, err := os.ReadFile(
		cfg.Prep.OutputPrefix + "_species_search.txt")
	require.NoError(t, err)
	assert.Equal(t, "Puma concolor\nQuercus\n", string(search))
}

func TestPrepEmptyInput(t *testing.T) {
	_, err := prepRun(t, "")
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.PrepEmptyInputError, gnErr.Code)
}

func TestPrepMissingColumns(t *testing.T) {
	input := "taxon,genus,kingdom\n" +
		"Panthera leo,Panthera,Animalia\n"

	cfg, err := prepRun(t, input)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.PrepMissingColumnsError, gnErr.Code)

	// Header validation blocks all output.
	_, statErr := os.Stat(cfg.Prep.OutputPrefix + "_species_search.txt")
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(cfg.Prep.OutputPrefix + "_species_kingdom.tsv")
	assert.True(t, os.IsNotExist(statErr))
}

func TestPrepInputNotFound(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptPrepInputPath(
			filepath.Join(t.TempDir(), "no_such_file.csv")),
		config.OptPrepOutputPrefix("out"),
	})

	preparer := ioprep.New(cfg, nil)
	_, err := preparer.Prep(context.Background())
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.PrepInputNotFoundError, gnErr.Code)
}

func TestPrepDelimiterOverride(t *testing.T) {
	// A comma header forced to tab resolves to a single column and
	// fails column validation.
	input := "species,genus,kingdom\n"

	_, err := prepRun(t, input, config.OptPrepDelimiter("tab"))
	require.Error(t, err)

	gnErr := err.(*gn.Error)
	assert.Equal(t, errcode.PrepMissingColumnsError, gnErr.Code)
}

func TestPrepCancelled(t *testing.T) {
	input := "species,genus,kingdom\n" +
		"Panthera leo,Panthera,Animalia\n"

	dir := t.TempDir()
	inPath := filepath.Join(dir, "gbif_download.csv")
	require.NoError(t, os.WriteFile(inPath, []byte(input), 0644))

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptPrepInputPath(inPath),
		config.OptPrepOutputPrefix(filepath.Join(dir, "out")),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	preparer := ioprep.New(cfg, nil)
	_, err := preparer.Prep(ctx)
	require.Error(t, err)
}

func TestPrepIdempotent(t *testing.T) {
	input := "species,genus,kingdom\n" +
		"Quercus robur,Quercus,Plantae\n" +
		"Panthera leo,Panthera,Animalia\n"

	dir := t.TempDir()
	inPath := filepath.Join(dir, "gbif_download.csv")
	require.NoError(t, os.WriteFile(inPath, []byte(input), 0644))

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptPrepInputPath(inPath),
		config.OptPrepOutputPrefix(filepath.Join(dir, "out")),
	})

	preparer := ioprep.New(cfg, nil)

	s1, err := preparer.Prep(context.Background())
	require.NoError(t, err)
	first, err := os.ReadFile(s1.SearchFile)
	require.NoError(t, err)

	s2, err := preparer.Prep(context.Background())
	require.NoError(t, err)
	second, err := os.ReadFile(s2.SearchFile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
