package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gingerlifts/opldb/internal/config"
	oplerrors "github.com/gingerlifts/opldb/internal/errors"
	"github.com/gingerlifts/opldb/internal/oplsort"
	"github.com/gingerlifts/opldb/internal/opltypes"
	"github.com/gingerlifts/opldb/internal/output"
	"github.com/gingerlifts/opldb/internal/query"
)

// rankingsRow is the JSON shape of one `opldb rankings` result.
type rankingsRow struct {
	Rank      int    `json:"rank"`
	Lifter    string `json:"lifter"`
	Username  string `json:"username"`
	Meet      string `json:"meet"`
	Equipment string `json:"equipment"`
	TotalKg   string `json:"total_kg"`
	Points    string `json:"points"`
}

func newRankingsCmd() *cobra.Command {
	var (
		equipmentFlag     string
		orderingFlag      string
		sexFlag           string
		yearFlag          int
		ageClassFlag      string
		eventFlag         string
		weightclassFlags  []string
		federationFlag    string
		metaFederationFlag string
		stateFlag         string
		page              int
		pageSize          int
		jsonOutput        bool
	)

	cmd := &cobra.Command{
		Use:   "rankings",
		Short: "List ranked entries under a conjunction of filters",
		Long: `List the top entries ordered by total, a single lift, or a points
formula, filtered by equipment, sex, year, age class, event, weight
class, federation, and state.`,
		Example: `  # Raw men, ranked by total
  opldb rankings --equipment Raw --sex M

  # Wilks-ordered women in the 2023 season
  opldb rankings --ordering Wilks --sex F --year 2023

  # Paginate: page 2, 10 per page
  opldb rankings --page 2 --page-size 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRankings(cmd, rankingsOptions{
				equipment:      equipmentFlag,
				ordering:       orderingFlag,
				sex:            sexFlag,
				year:           yearFlag,
				ageClass:       ageClassFlag,
				event:          eventFlag,
				weightclasses:  weightclassFlags,
				federation:     federationFlag,
				metaFederation: metaFederationFlag,
				state:          stateFlag,
				page:           page,
				pageSize:       pageSize,
				jsonOutput:     jsonOutput,
			})
		},
	}

	cmd.Flags().StringVar(&equipmentFlag, "equipment", "", "Equipment bucket: Raw, Wraps, RawAndWraps, Single-ply, Multi-ply, Unlimited (default from config)")
	cmd.Flags().StringVar(&orderingFlag, "ordering", "", "Ordering: Total, Squat, Bench, Deadlift, or a points formula like Wilks (default from config)")
	cmd.Flags().StringVar(&sexFlag, "sex", "", "Sex: M or F (default: all)")
	cmd.Flags().IntVar(&yearFlag, "year", 0, "Restrict to meets held in this year (default: all years)")
	cmd.Flags().StringVar(&ageClassFlag, "ageclass", "", "Age class, e.g. 24-34 (default: all)")
	cmd.Flags().StringVar(&eventFlag, "event", "", "Event: SBD, BD, B, S, D (default: all)")
	cmd.Flags().StringSliceVar(&weightclassFlags, "weightclass", nil, `Weight class range, e.g. "74-83" or "120+" (repeatable; default: all)`)
	cmd.Flags().StringVar(&federationFlag, "federation", "", "Restrict to a single federation by code, e.g. USPA")
	cmd.Flags().StringVar(&metaFederationFlag, "metafederation", "", "Restrict to a named MetaFederation, e.g. AllIPFAffiliated")
	cmd.Flags().StringVar(&stateFlag, "state", "", `State, as COUNTRY-CODE, e.g. "USA-CA" (default: all)`)
	cmd.Flags().IntVar(&page, "page", 1, "1-indexed page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Results per page (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

type rankingsOptions struct {
	equipment      string
	ordering       string
	sex            string
	year           int
	ageClass       string
	event          string
	weightclasses  []string
	federation     string
	metaFederation string
	state          string
	page           int
	pageSize       int
	jsonOutput     bool
}

func runRankings(cmd *cobra.Command, opts rankingsOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := loadDatabase(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	q, err := buildRankingsQuery(cfg, opts)
	if err != nil {
		return err
	}

	pageSize := opts.pageSize
	if pageSize <= 0 {
		pageSize = cfg.Query.DefaultPageSize
	}
	page := opts.page
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize

	ids := db.Rankings(q, start, end)

	rows := make([]rankingsRow, 0, len(ids))
	for i, id := range ids {
		entry, ok := db.Entry(id)
		if !ok {
			continue
		}
		lifter, _ := db.Lifter(entry.LifterID)
		meet, _ := db.Meet(entry.MeetID)
		rows = append(rows, rankingsRow{
			Rank:      start + i + 1,
			Lifter:    lifterName(lifter),
			Username:  lifterUsername(lifter),
			Meet:      meetName(meet),
			Equipment: entry.Equipment.String(),
			TotalKg:   entry.TotalKg.String(),
			Points:    pointsFor(q.Ordering, entry),
		})
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	w := output.New(cmd.OutOrStdout())
	for _, r := range rows {
		w.RankingsRow(r.Rank, r.Lifter, r.Equipment, r.Meet, r.TotalKg, r.Points)
	}

	return nil
}

func pointsFor(o oplsort.Ordering, e *opltypes.Entry) string {
	switch o {
	case oplsort.OrderWilks:
		return e.Wilks.String()
	case oplsort.OrderMcCulloch:
		return e.McCulloch.String()
	case oplsort.OrderGlossbrenner:
		return e.Glossbrenner.String()
	case oplsort.OrderGoodlift:
		return e.Goodlift.String()
	case oplsort.OrderIPFPoints:
		return e.IPFPoints.String()
	case oplsort.OrderDots:
		return e.Dots.String()
	default:
		return ""
	}
}

func lifterUsername(l *opltypes.Lifter) string {
	if l == nil {
		return "?"
	}
	return l.Username
}

func buildRankingsQuery(cfg *config.Config, opts rankingsOptions) (*query.RankingsQuery, error) {
	equipmentStr := opts.equipment
	if equipmentStr == "" {
		equipmentStr = cfg.Query.DefaultEquipment
	}
	equipment, err := opltypes.ParseEquipmentBucket(equipmentStr)
	if err != nil {
		return nil, oplerrors.Wrap(oplerrors.ErrCodeInvalidQuery, err).WithDetail("flag", "--equipment")
	}

	orderingStr := opts.ordering
	if orderingStr == "" {
		orderingStr = cfg.Query.DefaultOrdering
	}
	ordering, err := oplsort.ParseOrdering(orderingStr)
	if err != nil {
		return nil, oplerrors.Wrap(oplerrors.ErrCodeInvalidQuery, err).WithDetail("flag", "--ordering")
	}

	q := &query.RankingsQuery{
		Equipment: equipment,
		Ordering:  ordering,
	}

	if opts.sex != "" {
		sex, err := opltypes.ParseSex(opts.sex)
		if err != nil {
			return nil, oplerrors.Wrap(oplerrors.ErrCodeInvalidQuery, err).WithDetail("flag", "--sex")
		}
		q.Sex = &sex
	}

	if opts.year != 0 {
		year := opts.year
		q.Year = &year
	}

	if opts.ageClass != "" {
		ac, err := opltypes.ParseAgeClass(opts.ageClass)
		if err != nil {
			return nil, oplerrors.Wrap(oplerrors.ErrCodeInvalidQuery, err).WithDetail("flag", "--ageclass")
		}
		q.AgeClass = &ac
	}

	if opts.event != "" {
		ev, err := opltypes.ParseEvent(opts.event)
		if err != nil {
			return nil, oplerrors.Wrap(oplerrors.ErrCodeInvalidQuery, err).WithDetail("flag", "--event")
		}
		q.Event = &ev
	}

	for _, wc := range opts.weightclasses {
		w, err := parseWeightclassFlag(wc)
		if err != nil {
			return nil, oplerrors.Wrap(oplerrors.ErrCodeInvalidQuery, err).WithDetail("flag", "--weightclass")
		}
		q.Weightclasses = append(q.Weightclasses, w)
	}

	switch {
	case opts.federation != "" && opts.metaFederation != "":
		return nil, oplerrors.New(oplerrors.ErrCodeInvalidQuery, "--federation and --metafederation are mutually exclusive", nil)
	case opts.federation != "":
		fed, err := opltypes.ParseFederation(opts.federation)
		if err != nil {
			return nil, oplerrors.Wrap(oplerrors.ErrCodeInvalidQuery, err).WithDetail("flag", "--federation")
		}
		q.Federation = query.FederationFilter{Kind: query.FederationOne, One: fed}
	case opts.metaFederation != "":
		q.Federation = query.FederationFilter{Kind: query.FederationMeta, Meta: opts.metaFederation}
	}

	if opts.state != "" {
		country, code, ok := strings.Cut(opts.state, "-")
		if !ok {
			return nil, oplerrors.New(oplerrors.ErrCodeInvalidQuery, `--state must be "COUNTRY-CODE", e.g. "USA-CA"`, nil).
				WithDetail("flag", "--state")
		}
		c, err := opltypes.ParseCountry(country)
		if err != nil {
			return nil, oplerrors.Wrap(oplerrors.ErrCodeInvalidQuery, err).WithDetail("flag", "--state")
		}
		st, err := opltypes.ParseState(code, c)
		if err != nil {
			return nil, oplerrors.Wrap(oplerrors.ErrCodeInvalidQuery, err).WithDetail("flag", "--state")
		}
		q.State = &st
	}

	return q, nil
}

// parseWeightclassFlag parses a "lo-hi" bounded range or "lo+" open range
// into the half-open (Lo, Hi] form query.Weightclass expects.
func parseWeightclassFlag(s string) (query.Weightclass, error) {
	if strings.HasSuffix(s, "+") {
		lo, err := strconv.ParseFloat(strings.TrimSuffix(s, "+"), 64)
		if err != nil {
			return query.Weightclass{}, fmt.Errorf("invalid open weight class %q: %w", s, err)
		}
		return query.Weightclass{Lo: opltypes.WeightFromF32(lo).AsKg(), OpenHi: true}, nil
	}

	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return query.Weightclass{}, fmt.Errorf(`invalid weight class %q: expected "lo-hi" or "lo+"`, s)
	}
	loF, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return query.Weightclass{}, fmt.Errorf("invalid weight class %q: %w", s, err)
	}
	hiF, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return query.Weightclass{}, fmt.Errorf("invalid weight class %q: %w", s, err)
	}

	return query.Weightclass{Lo: opltypes.WeightFromF32(loF).AsKg(), Hi: opltypes.WeightFromF32(hiF).AsKg()}, nil
}
