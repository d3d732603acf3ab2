package cmd

import (
	"github.com/spf13/cobra"

	"triage/internal/config"
	"triage/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [tasks-file]",
	Short: "Browse the ranking interactively",
	Long: `Tui opens an interactive ranking browser for a task file. Move the cursor
through the ranked tasks to inspect each score breakdown, cycle through
weighting strategies with 's', and toggle the suggestion notes with tab.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringP("file", "f", "", "task file (default from config)")
	tuiCmd.Flags().StringP("strategy", "s", "", "weighting strategy (default from config)")
	tuiCmd.Flags().String("date", "", "reference date, YYYY-MM-DD (default today)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	strategy := resolveStrategy(cmd, cfg)
	ref, err := resolveReference(cmd)
	if err != nil {
		return err
	}

	_, records, err := loadBatch(cmd, args, cfg)
	if err != nil {
		return err
	}

	return tui.Run(records, strategy, ref)
}
