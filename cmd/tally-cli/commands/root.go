package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"noticeboard-tally/lib/telemetry"

	"github.com/spf13/cobra"
)

var verbose bool

var tel telemetry.Telemetry

var rootCmd = &cobra.Command{
	Use:           "tally-cli",
	Short:         "tally-cli counts internship and PPO offers posted on the placement notice board.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		var err error
		tel, err = telemetry.SetupFromEnv(cmd.Context(), "tally-cli")
		if err != nil {
			slog.Warn("failed to setup telemetry, continuing without it", "err", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
}

// ExecuteContext runs the command line and flushes telemetry before
// returning the command's error.
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	return errors.Join(err, tel.Shutdown(shutdownCtx))
}
