package loader

import (
	"io"

	"github.com/gingerlifts/opldb/internal/loader/loaderr"
	"github.com/gingerlifts/opldb/internal/opltypes"
)

var lifterColumns = []string{
	"Name", "CyrillicName", "GreekName", "JapaneseName", "KoreanName",
	"Username", "Instagram", "VKontakte", "Color", "Flair",
}

func loadLifters(file string, r io.Reader, progress Progress) ([]opltypes.Lifter, error) {
	cr := openReader(r)
	if err := readHeader(file, cr, lifterColumns); err != nil {
		return nil, err
	}

	var lifters []opltypes.Lifter
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

		lifters = append(lifters, opltypes.Lifter{
			ID:           opltypes.LifterID(len(lifters)),
			Name:         rec[0],
			CyrillicName: rec[1],
			GreekName:    rec[2],
			JapaneseName: rec[3],
			KoreanName:   rec[4],
			Username:     rec[5],
			Instagram:    rec[6],
			Vkontakte:    rec[7],
			Color:        rec[8],
			Flair:        rec[9],
		})

		if progress != nil && line%reportEvery(len(lifters)+1) == 0 {
			progress(StageLifters, len(lifters), 0)
		}
	}
	if progress != nil {
		progress(StageLifters, len(lifters), len(lifters))
	}
	return lifters, nil
}

func wrapIOErr(file string, err error) error {
	return loaderr.IO(file, err)
}
