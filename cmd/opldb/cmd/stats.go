package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// StatsOutput is the JSON output format for the stats command.
type StatsOutput struct {
	Lifters int `json:"lifters"`
	Meets   int `json:"meets"`
	Entries int `json:"entries"`
}

func newStatsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dataset size statistics",
		Long:  `Load the configured CSV tables and report how many lifters, meets, and entries they contain.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runStats(cmd *cobra.Command, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := loadDatabase(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := StatsOutput{
		Lifters: db.NumLifters(),
		Meets:   db.NumMeets(),
		Entries: db.NumEntries(),
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Lifters: %s\n", humanize.Comma(int64(out.Lifters)))
	fmt.Fprintf(w, "Meets:   %s\n", humanize.Comma(int64(out.Meets)))
	fmt.Fprintf(w, "Entries: %s\n", humanize.Comma(int64(out.Entries)))

	return nil
}
