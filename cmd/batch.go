package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"triage/internal/config"
	"triage/internal/task"
	"triage/internal/taskfile"
)

// resolveTaskFile picks the task file for a run: positional argument first,
// then the --file flag, then the configured default.
func resolveTaskFile(cmd *cobra.Command, args []string, cfg config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		return file
	}
	return cfg.TasksFile
}

// loadBatch reads the raw records for a run.
func loadBatch(cmd *cobra.Command, args []string, cfg config.Config) (string, []task.Record, error) {
	path := resolveTaskFile(cmd, args, cfg)
	records, err := taskfile.Load(path)
	if err != nil {
		return path, nil, fmt.Errorf("loading tasks from %s: %w", path, err)
	}
	return path, records, nil
}

// resolveStrategy picks the strategy for a run: the --strategy flag when
// set, otherwise the configured default.
func resolveStrategy(cmd *cobra.Command, cfg config.Config) string {
	if s, _ := cmd.Flags().GetString("strategy"); s != "" {
		return s
	}
	return cfg.Strategy
}

// resolveReference parses the --date flag, defaulting to today.
func resolveReference(cmd *cobra.Command) (task.Date, error) {
	raw, _ := cmd.Flags().GetString("date")
	if raw == "" {
		return task.Today(), nil
	}
	ref, err := task.ParseDate(raw)
	if err != nil {
		return task.Date{}, fmt.Errorf("invalid --date %q: %w", raw, err)
	}
	return ref, nil
}
