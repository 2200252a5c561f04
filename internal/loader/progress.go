package loader

// Stage names one phase of a CSV load, reported through a Progress
// callback.
type Stage string

const (
	StageLifters Stage = "lifters"
	StageMeets   Stage = "meets"
	StageEntries Stage = "entries"
	StageIndex   Stage = "index"
)

// Progress is called periodically during FromCSV so a caller can render a
// bar. Done and Total are row
// counts within the current Stage; Total is 0 when not yet known (e.g.
// reading from an io.Reader of unknown length before the first pass
// completes).
type Progress func(stage Stage, done, total int)

func reportEvery(n int) int {
	if n < 1000 {
		return 100
	}
	return n / 20
}
