package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/gingerlifts/opldb/internal/opltypes"
	"github.com/gingerlifts/opldb/internal/output"
)

// searchHit is the JSON shape of one `opldb search` match.
type searchHit struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Meet     string `json:"meet"`
}

func newSearchCmd() *cobra.Command {
	var jsonOutput bool
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search entries by lifter name, username, or Instagram handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], limit, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of matches to return")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, limit int, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := loadDatabase(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	ranking := make([]opltypes.EntryID, db.NumEntries())
	for i := range ranking {
		ranking[i] = opltypes.EntryID(i)
	}

	var hits []searchHit
	start := 0
	for len(hits) < limit {
		i, found := db.Search(ranking, start, query)
		if !found {
			break
		}

		entryID := ranking[i]
		entry, _ := db.Entry(entryID)
		lifter, _ := db.Lifter(entry.LifterID)
		meet, _ := db.Meet(entry.MeetID)

		hits = append(hits, searchHit{
			Username: lifter.Username,
			Name:     lifter.Name,
			Meet:     meetName(meet),
		})

		start = i + 1
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	w := output.New(cmd.OutOrStdout())
	if len(hits) == 0 {
		w.NoMatches()
		return nil
	}
	for _, h := range hits {
		w.SearchHit(h.Username, h.Name, h.Meet)
	}

	return nil
}
