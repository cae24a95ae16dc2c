package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gbifprep/internal/ioprep"
	"github.com/gnames/gbifprep/pkg/config"
	"github.com/gnames/gbifprep/pkg/parserpool"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// runPrep wires flags into the config, builds the preparer and runs
// the pipeline, then prints the completion report.
func runPrep(cmd *cobra.Command, inputPath, outPrefix string) error {
	ctx := context.Background()

	opts := []config.Option{
		config.OptPrepInputPath(inputPath),
		config.OptPrepOutputPrefix(outPrefix),
	}

	if cmd.Flags().Changed("delimiter") {
		delimiter, _ := cmd.Flags().GetString("delimiter")
		opts = append(opts, config.OptPrepDelimiter(delimiter))
	}
	if cmd.Flags().Changed("canonical") {
		canonical, _ := cmd.Flags().GetBool("canonical")
		opts = append(opts, config.OptPrepCanonical(canonical))
	}
	if cmd.Flags().Changed("jobs") {
		jobs, _ := cmd.Flags().GetInt("jobs")
		opts = append(opts, config.OptJobsNumber(jobs))
	}

	cfg.Update(opts)

	var pool parserpool.Pool
	if cfg.Prep.Canonical {
		gn.Info("Canonical simplification is on, starting <em>%d</em> parsers",
			cfg.JobsNumber)
		pool = parserpool.NewPool(cfg.JobsNumber)
		defer pool.Close()
	}

	preparer := ioprep.New(cfg, pool)

	gn.Info("Processing <em>%s</em>", cfg.Prep.InputPath)
	start := time.Now()

	summary, err := preparer.Prep(ctx)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	slog.Info("Prep complete",
		"rows", summary.RowsRead,
		"search_names", summary.SearchNames,
		"pairs", summary.Pairs,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)

	gn.Info(`GBIF prep complete in <em>%s</em>
  Rows read from input    : %s
  Unique names for search : %s -> <em>%s</em>
  Unique species-kingdom  : %s -> <em>%s</em>`,
		gnfmt.TimeString(duration.Seconds()),
		humanize.Comma(int64(summary.RowsRead)),
		humanize.Comma(int64(summary.SearchNames)),
		summary.SearchFile,
		humanize.Comma(int64(summary.Pairs)),
		summary.PairsFile,
	)

	return nil
}
