package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	oplerrors "github.com/gingerlifts/opldb/internal/errors"
	"github.com/gingerlifts/opldb/internal/opltypes"
)

// lifterEntry is the JSON shape of one competition result in `opldb
// lifter` output.
type lifterEntry struct {
	Meet     string `json:"meet"`
	Date     string `json:"date"`
	Equipment string `json:"equipment"`
	Event     string `json:"event"`
	TotalKg   string `json:"total_kg"`
	Place     string `json:"place"`
}

func newLifterCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "lifter <username>",
		Short: "Look up a lifter by username and list their results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifter(cmd, args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runLifter(cmd *cobra.Command, username string, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := loadDatabase(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	id, ok := db.LifterID(username)
	if !ok {
		return oplerrors.New(oplerrors.ErrCodeInvalidInput, fmt.Sprintf("no lifter with username %q", username), nil)
	}

	lifter, ok := db.Lifter(id)
	if !ok {
		return oplerrors.New(oplerrors.ErrCodeInternal, "username index pointed at a missing lifter", nil)
	}

	entries := db.EntriesForLifter(id)
	results := make([]lifterEntry, 0, len(entries))
	for _, e := range entries {
		meet, _ := db.Meet(e.MeetID)
		results = append(results, lifterEntry{
			Meet:      meetName(meet),
			Date:      meetDate(meet),
			Equipment: e.Equipment.String(),
			Event:     e.Event.String(),
			TotalKg:   e.TotalKg.String(),
			Place:     e.Place.String(),
		})
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Name    string        `json:"name"`
			Results []lifterEntry `json:"results"`
		}{Name: lifter.Name, Results: results})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s (%s)\n", lifter.Name, username)
	for _, r := range results {
		fmt.Fprintf(w, "  %-10s %-24s %-10s %-8s %skg  %s\n", r.Date, r.Meet, r.Equipment, r.Event, r.TotalKg, r.Place)
	}

	return nil
}

func meetName(m *opltypes.Meet) string {
	if m == nil {
		return "?"
	}
	return m.Name
}

func meetDate(m *opltypes.Meet) string {
	if m == nil {
		return "?"
	}
	return m.Date.String()
}
