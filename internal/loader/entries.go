package loader

import (
	"io"
	"strconv"

	"github.com/gingerlifts/opldb/internal/loader/loaderr"
	"github.com/gingerlifts/opldb/internal/opltypes"
)

var entryColumns = []string{
	"MeetID", "LifterID", "Sex", "Event", "Equipment", "Age", "Division",
	"BodyweightKg", "WeightClassKg",
	"Squat1Kg", "Squat2Kg", "Squat3Kg", "Squat4Kg",
	"Bench1Kg", "Bench2Kg", "Bench3Kg", "Bench4Kg",
	"Deadlift1Kg", "Deadlift2Kg", "Deadlift3Kg", "Deadlift4Kg",
	"Best3SquatKg", "Best3BenchKg", "Best3DeadliftKg", "TotalKg",
	"Place", "Wilks", "McCulloch", "Glossbrenner", "Goodlift", "IPFPoints", "Dots",
	"Tested", "AgeClass", "BirthYearClass", "Country", "State",
}

// entryWeightColumn binds a CSV column index to the Entry field it fills.
type entryWeightColumn struct {
	index int
	name  string
	set   func(e *opltypes.Entry, w opltypes.WeightKg)
}

func weightColumns() []entryWeightColumn {
	return []entryWeightColumn{
		{9, "Squat1Kg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Squat1Kg = w }},
		{10, "Squat2Kg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Squat2Kg = w }},
		{11, "Squat3Kg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Squat3Kg = w }},
		{12, "Squat4Kg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Squat4Kg = w }},
		{13, "Bench1Kg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Bench1Kg = w }},
		{14, "Bench2Kg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Bench2Kg = w }},
		{15, "Bench3Kg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Bench3Kg = w }},
		{16, "Bench4Kg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Bench4Kg = w }},
		{17, "Deadlift1Kg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Deadlift1Kg = w }},
		{18, "Deadlift2Kg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Deadlift2Kg = w }},
		{19, "Deadlift3Kg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Deadlift3Kg = w }},
		{20, "Deadlift4Kg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Deadlift4Kg = w }},
		{21, "Best3SquatKg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Best3SquatKg = w }},
		{22, "Best3BenchKg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Best3BenchKg = w }},
		{23, "Best3DeadliftKg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.Best3DeadliftKg = w }},
		{24, "TotalKg", func(e *opltypes.Entry, w opltypes.WeightKg) { e.TotalKg = w }},
	}
}

type entryPointsColumn struct {
	index int
	name  string
	set   func(e *opltypes.Entry, p opltypes.Points)
}

func pointsColumns() []entryPointsColumn {
	return []entryPointsColumn{
		{26, "Wilks", func(e *opltypes.Entry, p opltypes.Points) { e.Wilks = p }},
		{27, "McCulloch", func(e *opltypes.Entry, p opltypes.Points) { e.McCulloch = p }},
		{28, "Glossbrenner", func(e *opltypes.Entry, p opltypes.Points) { e.Glossbrenner = p }},
		{29, "Goodlift", func(e *opltypes.Entry, p opltypes.Points) { e.Goodlift = p }},
		{30, "IPFPoints", func(e *opltypes.Entry, p opltypes.Points) { e.IPFPoints = p }},
		{31, "Dots", func(e *opltypes.Entry, p opltypes.Points) { e.Dots = p }},
	}
}

func loadEntries(file string, r io.Reader, numLifters, numMeets int, progress Progress) ([]opltypes.Entry, error) {
	cr := openReader(r)
	if err := readHeader(file, cr, entryColumns); err != nil {
		return nil, err
	}

	wcols := weightColumns()
	pcols := pointsColumns()

	var entries []opltypes.Entry
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

		meetIdx, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, parseErrAt(file, line, "MeetID", rec[0], err)
		}
		if meetIdx < 0 || meetIdx >= numMeets {
			return nil, loaderr.Referential(file, line, "MeetID", rec[0])
		}
		lifterIdx, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, parseErrAt(file, line, "LifterID", rec[1], err)
		}
		if lifterIdx < 0 || lifterIdx >= numLifters {
			return nil, loaderr.Referential(file, line, "LifterID", rec[1])
		}

		sex, err := opltypes.ParseSex(rec[2])
		if err != nil {
			return nil, parseErrAt(file, line, "Sex", rec[2], err)
		}
		event, err := opltypes.ParseEvent(rec[3])
		if err != nil {
			return nil, parseErrAt(file, line, "Event", rec[3], err)
		}
		equipment, err := opltypes.ParseEquipment(rec[4])
		if err != nil {
			return nil, parseErrAt(file, line, "Equipment", rec[4], err)
		}
		age, err := opltypes.ParseAge(rec[5])
		if err != nil {
			return nil, parseErrAt(file, line, "Age", rec[5], err)
		}
		bw, err := opltypes.ParseWeightKg(rec[7])
		if err != nil {
			return nil, parseErrAt(file, line, "BodyweightKg", rec[7], err)
		}
		wc, err := opltypes.ParseWeightClassKg(rec[8])
		if err != nil {
			return nil, parseErrAt(file, line, "WeightClassKg", rec[8], err)
		}
		place, err := opltypes.ParsePlace(rec[25])
		if err != nil {
			return nil, parseErrAt(file, line, "Place", rec[25], err)
		}
		ageClass, _ := opltypes.ParseAgeClass(rec[33])
		birthYearClass, _ := opltypes.ParseBirthYearClass(rec[34])
		country, err := opltypes.ParseCountry(rec[35])
		if err != nil {
			return nil, parseErrAt(file, line, "Country", rec[35], err)
		}
		state, err := opltypes.ParseState(rec[36], country)
		if err != nil {
			return nil, parseErrAt(file, line, "State", rec[36], err)
		}

		e := opltypes.Entry{
			ID:             opltypes.EntryID(len(entries)),
			MeetID:         opltypes.MeetID(meetIdx),
			LifterID:       opltypes.LifterID(lifterIdx),
			Sex:            sex,
			Event:          event,
			Equipment:      equipment,
			Age:            age,
			AgeClass:       ageClass,
			BirthYearClass: birthYearClass,
			Division:       rec[6],
			BodyweightKg:   bw,
			WeightClassKg:  wc,
			Place:          place,
			Tested:         rec[32] == "Yes",
			LifterCountry:  country,
			LifterState:    state,
		}

		for _, c := range wcols {
			w, err := opltypes.ParseWeightKg(rec[c.index])
			if err != nil {
				return nil, parseErrAt(file, line, c.name, rec[c.index], err)
			}
			c.set(&e, w)
		}
		for _, c := range pcols {
			p, err := opltypes.ParsePoints(rec[c.index])
			if err != nil {
				return nil, parseErrAt(file, line, c.name, rec[c.index], err)
			}
			c.set(&e, p)
		}

		entries = append(entries, e)

		if progress != nil && line%reportEvery(len(entries)+1) == 0 {
			progress(StageEntries, len(entries), 0)
		}
	}
	if progress != nil {
		progress(StageEntries, len(entries), len(entries))
	}
	return entries, nil
}
