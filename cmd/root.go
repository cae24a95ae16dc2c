package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gbifprep/internal/iofs"
	"github.com/gnames/gbifprep/internal/iologger"
	app "github.com/gnames/gbifprep/pkg"
	"github.com/gnames/gbifprep/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
)

// rootCmd represents the base command. gbifprep has a single
// purpose, so the root command does all the work itself.
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "gbifprep [flags] INPUT_FILE OUT_PREFIX",
	Short:   "Prepares GBIF downloads for name resolution",
	Long: `gbifprep converts a GBIF occurrence or checklist download (CSV or
TSV with 'species', 'genus' and 'kingdom' columns) into two artifacts:

  OUT_PREFIX_species_search.txt   deduplicated, sorted taxon names for
                                  downstream name-resolution searches
  OUT_PREFIX_species_kingdom.tsv  species to kingdom lookup table used
                                  by a later splitting step

The field separator is detected from the header line (comma vs tab)
and the three required columns are matched case-insensitively. Rows
with an empty species fall back to the genus name in the search list.

Configuration precedence (highest to lowest):
  1. CLI flags (--delimiter, --canonical, --jobs)
  2. Environment variables (GBIFPREP_*)
  3. Config file (~/.config/gbifprep/config.yaml)
  4. Built-in defaults`,
	PersistentPreRunE: bootstrap,
	RunE:              runRoot,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		gn.Warn(
			"Expected 2 arguments (INPUT_FILE, OUT_PREFIX), got <em>%d</em>",
			len(args),
		)
		_ = cmd.Usage()
		return fmt.Errorf("wrong number of arguments: %d", len(args))
	}

	err := runPrep(cmd, args[0], args[1])
	if err != nil {
		gn.PrintErrorMessage(err)
	}
	return err
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings.
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "gbifprep version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gbifprep")

	rootCmd.Flags().StringP("delimiter", "d", "auto",
		"field separator of the input file (auto, comma, tab)")
	rootCmd.Flags().BoolP("canonical", "c", false,
		"reduce species names to their simple canonical form")
	rootCmd.Flags().IntP("jobs", "j", 0,
		"number of parser workers for canonical simplification")
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables
	// are allowed. These match the fields included in
	// config.ToOptions() - i.e., persistent configuration that can be
	// stored in config.yaml.
	v.SetEnvPrefix("GBIFPREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Prep configuration
	v.BindEnv("prep.delimiter", "PREP_DELIMITER")
	v.BindEnv("prep.canonical", "PREP_CANONICAL")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "JOBS_NUMBER")

	v.AutomaticEnv()
}
