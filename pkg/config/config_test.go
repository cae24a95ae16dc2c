package config_test

import (
	"runtime"
	"testing"

	"github.com/gnames/gbifprep/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "auto", cfg.Prep.Delimiter)
	assert.False(t, cfg.Prep.Canonical)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)
	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	assert.Empty(t, cfg.HomeDir)
}

func TestUpdateOptions(t *testing.T) {
	cfg := config.New()

	cfg.Update([]config.Option{
		config.OptPrepDelimiter("tab"),
		config.OptPrepCanonical(true),
		config.OptPrepInputPath("in.csv"),
		config.OptPrepOutputPrefix("out"),
		config.OptLogLevel("debug"),
		config.OptLogFormat("text"),
		config.OptLogDestination("stderr"),
		config.OptJobsNumber(4),
		config.OptHomeDir("/home/u"),
	})

	assert.Equal(t, "tab", cfg.Prep.Delimiter)
	assert.True(t, cfg.Prep.Canonical)
	assert.Equal(t, "in.csv", cfg.Prep.InputPath)
	assert.Equal(t, "out", cfg.Prep.OutputPrefix)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)
	assert.Equal(t, 4, cfg.JobsNumber)
	assert.Equal(t, "/home/u", cfg.HomeDir)
}

func TestUpdateRejectsInvalid(t *testing.T) {
	cfg := config.New()

	cfg.Update([]config.Option{
		config.OptPrepDelimiter("pipe"),
		config.OptLogLevel("verbose"),
		config.OptJobsNumber(-1),
		config.OptPrepInputPath("  "),
	})

	// Invalid options are rejected, config keeps defaults.
	assert.Equal(t, "auto", cfg.Prep.Delimiter)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	assert.Empty(t, cfg.Prep.InputPath)
}

func TestDelimiterNormalized(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptPrepDelimiter(" COMMA ")})
	assert.Equal(t, "comma", cfg.Prep.Delimiter)
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptPrepDelimiter("comma"),
		config.OptPrepCanonical(true),
		config.OptLogLevel("warn"),
		config.OptJobsNumber(2),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Equal(t, cfg.Prep.Delimiter, clone.Prep.Delimiter)
	assert.Equal(t, cfg.Prep.Canonical, clone.Prep.Canonical)
	assert.Equal(t, cfg.Log, clone.Log)
	assert.Equal(t, cfg.JobsNumber, clone.JobsNumber)
}

func TestToOptionsExcludesRuntimeFields(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptPrepInputPath("in.csv"),
		config.OptPrepOutputPrefix("out"),
		config.OptHomeDir("/home/u"),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Empty(t, clone.Prep.InputPath)
	assert.Empty(t, clone.Prep.OutputPrefix)
	assert.Empty(t, clone.HomeDir)
}

func TestPaths(t *testing.T) {
	home := "/home/u"
	assert.Equal(t, "/home/u/.config/gbifprep",
		config.ConfigDir(home))
	assert.Equal(t, "/home/u/.config/gbifprep/config.yaml",
		config.ConfigFilePath(home))
	assert.Equal(t, "/home/u/.local/share/gbifprep/logs",
		config.LogDir(home))
}
