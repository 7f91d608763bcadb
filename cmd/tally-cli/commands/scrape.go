package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"noticeboard-tally/cmd/tally-cli/render"
	"noticeboard-tally/lib/restyutil"
	"noticeboard-tally/lib/scrapers/noticeboard"
	"noticeboard-tally/lib/serviceutil"
	"noticeboard-tally/lib/sqliteutil"
	"noticeboard-tally/services/tally"
	"noticeboard-tally/services/tally/db"

	"github.com/spf13/cobra"
)

type reportOptions struct {
	OutDir string
	// sqlite snapshot path, empty to skip
	DbPath string
	// similar company threshold, 0 to skip
	Similar float64
}

var (
	scrapeMode     string
	scrapeDumpHttp string
	scrapeReport   reportOptions
)

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeMode, "mode", "m", "", "Which results to count, ppo or intern.")
	scrapeCmd.MarkFlagRequired("mode")
	scrapeCmd.Flags().StringVar(&scrapeReport.OutDir, "out", ".", "Directory the <mode>_results.csv export is written to.")
	scrapeCmd.Flags().StringVar(&scrapeReport.DbPath, "db", "", "Also write the results into this sqlite database.")
	scrapeCmd.Flags().Float64Var(&scrapeReport.Similar, "similar", 0, "Report company names at least this similar (0-1), e.g. 0.9.")
	scrapeCmd.Flags().StringVar(&scrapeDumpHttp, "dump-http", "", "Write every request and response into this directory (needs --verbose).")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape --mode ppo|intern [--out <dir>] [--db <path/to/output.db>] [--similar <threshold>] [--dump-http <dir>]",
	Short: "Scrapes the notice board and counts the offers posted per company.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := tally.ParseMode(scrapeMode)
		if err != nil {
			return err
		}
		if scrapeReport.Similar < 0 || scrapeReport.Similar > 1 {
			return fmt.Errorf("--similar must be between 0 and 1, got %v", scrapeReport.Similar)
		}

		cfg, err := loadConfig()
		if err != nil {
			serviceutil.Fatal("failed to load config", err)
		}

		var output restyutil.InstrumentOutput
		if scrapeDumpHttp != "" {
			fsOutput, err := restyutil.NewFilesystemOutput(scrapeDumpHttp)
			if err != nil {
				serviceutil.Fatal("failed to create http dump directory", err)
			}
			output = fsOutput
		}

		client, err := noticeboard.NewClient(cfg.ClientOptions(output))
		if err != nil {
			serviceutil.Fatal("failed to initialize notice board client", err)
		}
		defer client.Close()

		t1 := time.Now()
		result, err := tally.Scrape(cmd.Context(), client, tally.DefaultOptions(mode))
		if errors.Is(err, context.Canceled) {
			slog.Warn("scrape interrupted, reporting partial results", "pages", result.PagesVisited)
		} else if err != nil {
			return err
		}
		t2 := time.Now()
		slog.Info(
			"scraping done",
			"seconds", t2.Sub(t1).Seconds(),
			"pages", result.PagesVisited,
			"threads", result.ThreadsChecked,
		)

		// the interrupted command context can no longer be used for the export
		return writeReport(context.WithoutCancel(cmd.Context()), cmd.OutOrStdout(), result, scrapeReport, t2)
	},
}

func writeReport(ctx context.Context, out io.Writer, result tally.Result, opts reportOptions, finishedAt time.Time) error {
	render.Table(out, result)
	err := render.Totals(out, result.Totals)
	if err != nil {
		return err
	}

	if opts.Similar > 0 {
		render.SimilarPairs(out, tally.SimilarCompanies(result.SortedCompanies(), opts.Similar))
	}

	csvPath, err := writeCSV(opts.OutDir, result)
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	slog.Info("wrote csv export", "path", csvPath)

	if opts.DbPath == "" {
		return nil
	}
	database, err := sqliteutil.OpenDB(db.Schema, opts.DbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer database.Close()

	runId, err := tally.SaveSnapshot(ctx, database, result, finishedAt)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	slog.Info("wrote db snapshot", "path", opts.DbPath, "run", runId)
	return nil
}

func writeCSV(dir string, result tally.Result) (string, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_results.csv", result.Mode))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	err = render.CSV(f, result)
	return path, errors.Join(err, f.Close())
}
