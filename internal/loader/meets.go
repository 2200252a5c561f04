package loader

import (
	"io"

	"github.com/gingerlifts/opldb/internal/opltypes"
)

var meetColumns = []string{
	"MeetPath", "Federation", "Date", "MeetCountry", "MeetState", "MeetTown", "MeetName", "RuleSet",
}

func loadMeets(file string, r io.Reader, progress Progress) ([]opltypes.Meet, error) {
	cr := openReader(r)
	if err := readHeader(file, cr, meetColumns); err != nil {
		return nil, err
	}

	var meets []opltypes.Meet
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapIOErr(file, err)
		}
		line++

		fed, err := opltypes.ParseFederation(rec[1])
		if err != nil {
			return nil, parseErrAt(file, line, "Federation", rec[1], err)
		}
		date, err := opltypes.ParseDate(rec[2])
		if err != nil {
			return nil, parseErrAt(file, line, "Date", rec[2], err)
		}
		country, err := opltypes.ParseCountry(rec[3])
		if err != nil {
			return nil, parseErrAt(file, line, "MeetCountry", rec[3], err)
		}
		state, err := opltypes.ParseState(rec[4], country)
		if err != nil {
			return nil, parseErrAt(file, line, "MeetState", rec[4], err)
		}
		ruleSet, err := opltypes.ParseRuleSet(rec[7])
		if err != nil {
			return nil, parseErrAt(file, line, "RuleSet", rec[7], err)
		}

		meets = append(meets, opltypes.Meet{
			ID:         opltypes.MeetID(len(meets)),
			Path:       rec[0],
			Federation: fed,
			Date:       date,
			Country:    country,
			State:      state,
			Town:       rec[5],
			Name:       rec[6],
			RuleSet:    ruleSet,
		})

		if progress != nil && line%reportEvery(len(meets)+1) == 0 {
			progress(StageMeets, len(meets), 0)
		}
	}
	if progress != nil {
		progress(StageMeets, len(meets), len(meets))
	}
	return meets, nil
}
