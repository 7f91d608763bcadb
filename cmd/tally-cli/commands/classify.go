package commands

import (
	"fmt"
	"os"

	"noticeboard-tally/cmd/tally-cli/render"
	"noticeboard-tally/services/tally"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify <thread.html>",
	Short: "Counts the roll numbers of a saved thread page without touching the network.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		doc, err := goquery.NewDocumentFromReader(f)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		return render.Totals(cmd.OutOrStdout(), tally.Classify(doc))
	},
}
