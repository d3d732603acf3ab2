package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"triage/internal/api"
	"triage/internal/config"
	"triage/internal/engine"
	"triage/internal/task"
	"triage/internal/taskfile"
	"triage/internal/telemetry"
	"triage/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [tasks-file]",
	Short: "Score and rank a batch of tasks",
	Long: `Analyze reads tasks from a TOML or JSON file, validates them, scores each
one against the reference date under the chosen strategy, and prints the
full ranking with per-factor score breakdowns. Records that fail validation
are reported and skipped; circular dependencies are flagged but never block
the ranking.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringP("file", "f", "", "task file (default from config)")
	analyzeCmd.Flags().StringP("strategy", "s", "", "weighting strategy (default from config)")
	analyzeCmd.Flags().String("date", "", "reference date, YYYY-MM-DD (default today)")
	analyzeCmd.Flags().Bool("json", false, "emit machine-readable JSON instead of a table")
	analyzeCmd.Flags().BoolP("watch", "w", false, "re-analyze whenever the task file changes")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	printer := ui.New()

	strategy := resolveStrategy(cmd, cfg)
	ref, err := resolveReference(cmd)
	if err != nil {
		return err
	}

	path, records, err := loadBatch(cmd, args, cfg)
	if err != nil {
		return err
	}

	emitter, err := openEmitter(cfg)
	if err != nil {
		return err
	}
	defer emitter.Close()

	asJSON, _ := cmd.Flags().GetBool("json")
	run := func(records []task.Record) error {
		res, err := engine.Analyze(records, strategy, ref)
		if err != nil {
			return err
		}
		if err := emitter.Emit(telemetry.Event{
			Timestamp: time.Now().UTC(),
			Kind:      telemetry.KindAnalyzeDone,
			Strategy:  strategy,
			Tasks:     res.TotalTasks(),
			Invalid:   len(res.Errors),
			Cycles:    len(res.CycleGroups),
		}); err != nil {
			printer.Info(fmt.Sprintf("telemetry: %v", err))
		}
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(api.ToAnalyzeResponse(res))
		}
		printer.CycleWarning(res.CycleGroups)
		printer.ValidationErrors(res.Errors)
		printer.Ranking(res)
		return nil
	}

	if err := run(records); err != nil {
		return err
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		return watchAndRerun(path, printer, run)
	}
	return nil
}

// watchAndRerun blocks, reloading and re-running the batch every time the
// task file changes, until interrupted.
func watchAndRerun(path string, printer *ui.Printer, run func([]task.Record) error) error {
	w, err := taskfile.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	defer w.Stop()

	printer.Info(fmt.Sprintf("watching %s (ctrl-c to stop)", path))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	for {
		select {
		case <-sig:
			return nil
		case <-w.Changes:
			records, err := taskfile.Load(path)
			if err != nil {
				printer.Error(err.Error())
				continue
			}
			if err := run(records); err != nil {
				printer.Error(err.Error())
			}
		}
	}
}

// openEmitter creates the telemetry emitter when a path is configured. The
// nil emitter it returns otherwise is a valid no-op.
func openEmitter(cfg config.Config) (*telemetry.Emitter, error) {
	if cfg.TelemetryPath == "" {
		return nil, nil
	}
	e, err := telemetry.NewEmitter(cfg.TelemetryPath)
	if err != nil {
		return nil, fmt.Errorf("opening telemetry log: %w", err)
	}
	return e, nil
}
