package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"triage/internal/engine"
	"triage/internal/ui"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the built-in weighting strategies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(engine.Strategies())
		}
		ui.New().Strategies(engine.Strategies())
		return nil
	},
}

func init() {
	strategiesCmd.Flags().Bool("json", false, "emit the catalog as JSON")
	rootCmd.AddCommand(strategiesCmd)
}
