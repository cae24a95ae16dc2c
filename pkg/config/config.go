// Package config provides configuration management for gbifprep.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults
//
// # Design Principles
//
//   - Default config (from New()) is always valid - no validation needed
//   - All mutations go through Option functions - the only way to modify
//     Config
//   - Invalid options are rejected with gn.Warn() - config remains in a
//     valid state
//   - ToOptions() converts persistent fields (those in config.yaml)
//   - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Prep: delimiter, canonical
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI only):
//   - Prep.InputPath, Prep.OutputPrefix (positional arguments)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GBIFPREP_ prefix with underscores for nesting:
//
//	GBIFPREP_PREP_DELIMITER=tab
//	GBIFPREP_LOG_LEVEL=info
//	GBIFPREP_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete gbifprep configuration.
type Config struct {
	// Prep contains settings for the checklist preparation run.
	Prep PrepConfig `mapstructure:"prep" yaml:"prep"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of parser workers used when canonical
	// name simplification is enabled. Defaults to the number of
	// available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories
	// reside. It must be set by CLI during init, there is no default
	// value for it.
	HomeDir string
}

// PrepConfig contains settings for one preparation run.
type PrepConfig struct {
	// Delimiter selects the field separator of the input file.
	// Valid values: "auto", "comma", "tab". With "auto" the separator
	// is detected from the header line.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`

	// Canonical is true when species names should be reduced to their
	// simple canonical form with gnparser before deduplication.
	// Names that cannot be parsed are kept verbatim.
	Canonical bool `mapstructure:"canonical" yaml:"canonical"`

	// InputPath is the GBIF occurrence or checklist file to read.
	// Set from the first positional argument.
	InputPath string

	// OutputPrefix is prepended to the names of both generated files.
	// Set from the second positional argument.
	OutputPrefix string
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Prep: PrepConfig{
			Delimiter: "auto",
			Canonical: false,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
