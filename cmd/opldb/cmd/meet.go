package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	oplerrors "github.com/gingerlifts/opldb/internal/errors"
	"github.com/gingerlifts/opldb/internal/opltypes"
)

// meetEntryRow is the JSON shape of one entry in `opldb meet` output.
type meetEntryRow struct {
	Lifter    string `json:"lifter"`
	Sex       string `json:"sex"`
	Equipment string `json:"equipment"`
	Event     string `json:"event"`
	TotalKg   string `json:"total_kg"`
	Place     string `json:"place"`
}

func newMeetCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "meet <path>",
		Short: "Look up a meet by its path slug and list its entries",
		Long:  `Look up a meet by its path slug (e.g. "uspa/1234") and list its entries.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeet(cmd, args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runMeet(cmd *cobra.Command, path string, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := loadDatabase(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	id, ok := db.MeetID(path)
	if !ok {
		return oplerrors.New(oplerrors.ErrCodeInvalidInput, fmt.Sprintf("no meet with path %q", path), nil)
	}

	meet, ok := db.Meet(id)
	if !ok {
		return oplerrors.New(oplerrors.ErrCodeInternal, "path index pointed at a missing meet", nil)
	}

	entries := db.EntriesForMeet(id)
	rows := make([]meetEntryRow, 0, len(entries))
	for _, e := range entries {
		lifter, _ := db.Lifter(e.LifterID)
		rows = append(rows, meetEntryRow{
			Lifter:    lifterName(lifter),
			Sex:       e.Sex.String(),
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
			Name    string         `json:"name"`
			Entries []meetEntryRow `json:"entries"`
		}{Name: meet.Name, Entries: rows})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s (%s)\n", meet.Name, path)
	for _, r := range rows {
		fmt.Fprintf(w, "  %-24s %-4s %-10s %-8s %skg  %s\n", r.Lifter, r.Sex, r.Equipment, r.Event, r.TotalKg, r.Place)
	}

	return nil
}

func lifterName(l *opltypes.Lifter) string {
	if l == nil {
		return "?"
	}
	return l.Name
}
