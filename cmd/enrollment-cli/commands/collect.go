package commands

import (
	"log/slog"
	"time"

	"enrollment-backend/lib/telemetry"
	"enrollment-backend/lib/util/serviceutil"
	"enrollment-backend/services/enrollment"

	"github.com/spf13/cobra"
)

var collectStartYear *int
var collectNumYears *int
var collectOutputPath *string
var collectMinCatNo *int

func init() {
	collectStartYear = collectCmd.Flags().IntP("start-year", "s", 0, "Year to start collecting (0 means the current year).")
	collectNumYears = collectCmd.Flags().IntP("number-of-years", "n", 10, "Number of years to collect.")
	collectOutputPath = collectCmd.Flags().StringP("output-path", "o", "enrollment.csv", "Output file path, empty disables the file.")
	collectMinCatNo = collectCmd.Flags().IntP("minimum-catalog-number", "m", 1000, "Minimum catalog number, 0 disables the filter.")
	rootCmd.AddCommand(collectCmd)
}

var collectCmd = &cobra.Command{
	Use:   "collect [-s <year>] [-n <years>] [-o <path/to/output.csv>] [-m <cat_no>]",
	Short: "Collects merged enrollment counts over a range of academic years and writes them to a CSV file.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		startYear := *collectStartYear
		if startYear == 0 {
			startYear = time.Now().UTC().Year()
		}

		telemetry.InstrumentPerfStats(cmd.Context())

		collector := enrollment.NewCollector(enrollment.CollectorOptions{
			Fetcher:              createClient(cfg),
			PrimarySubject:       cfg.PrimarySubject,
			SecondarySubject:     cfg.SecondarySubject,
			ReferenceYear:        startYear,
			YearSpan:             *collectNumYears,
			MinimumCatalogNumber: *collectMinCatNo,
		})

		slog.Info(
			"collecting enrollment",
			"primary", cfg.PrimarySubject,
			"secondary", cfg.SecondarySubject,
			"start_year", startYear,
			"years", *collectNumYears,
		)

		t1 := time.Now()
		table, err := collector.Collect(cmd.Context())
		if err != nil {
			serviceutil.Fatal("collection aborted", err)
		}
		slog.Info("collection time", "seconds", time.Since(t1).Seconds(), "rows", len(table.Rows))

		table.Render()

		if *collectOutputPath != "" {
			err := table.WriteCSV(*collectOutputPath)
			if err != nil {
				serviceutil.Fatal("failed to write enrollment table", err)
			}
			slog.Info("wrote enrollment table", "path", *collectOutputPath)
		}
	},
}
