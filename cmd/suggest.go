package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"triage/internal/api"
	"triage/internal/config"
	"triage/internal/engine"
	"triage/internal/telemetry"
	"triage/internal/ui"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [tasks-file]",
	Short: "Suggest the top three tasks to tackle first",
	Long: `Suggest runs the same analysis as analyze and distills it to the three
highest-ranked tasks, each with the factor that put it there and a short
reason to start it today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringP("file", "f", "", "task file (default from config)")
	suggestCmd.Flags().StringP("strategy", "s", "", "weighting strategy (default from config)")
	suggestCmd.Flags().String("date", "", "reference date, YYYY-MM-DD (default today)")
	suggestCmd.Flags().Bool("json", false, "emit machine-readable JSON instead of cards")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	printer := ui.New()

	strategy := resolveStrategy(cmd, cfg)
	ref, err := resolveReference(cmd)
	if err != nil {
		return err
	}

	_, records, err := loadBatch(cmd, args, cfg)
	if err != nil {
		return err
	}

	res, err := engine.Suggest(records, strategy, ref)
	if err != nil {
		return err
	}

	emitter, err := openEmitter(cfg)
	if err != nil {
		return err
	}
	defer emitter.Close()
	if err := emitter.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindSuggestDone,
		Strategy:  strategy,
		Tasks:     res.TasksAnalyzed,
		Invalid:   len(res.Errors),
		Cycles:    len(res.CycleGroups),
	}); err != nil {
		printer.Info(fmt.Sprintf("telemetry: %v", err))
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(api.ToSuggestResponse(res))
	}

	printer.CycleWarning(res.CycleGroups)
	printer.ValidationErrors(res.Errors)
	printer.Suggestions(res)
	return nil
}
