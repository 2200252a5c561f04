package loader

import (
	"encoding/csv"
	"io"

	"github.com/gingerlifts/opldb/internal/loader/loaderr"
)

// openReader wraps an io.Reader in the stdlib CSV reader configured the
// way spec.md §6.1 describes the input files: comma-separated, optional
// quoting, variable field counts are rejected (encoding/csv does this by
// default once FieldsPerRecord is set from the header). No third-party
// CSV library exists anywhere in the retrieved corpus, so this is the one
// deliberate stdlib-only load-bearing component; see DESIGN.md.
func openReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	return cr
}

// readHeader consumes the header row and validates it against want. The
// field names in want are checked positionally and by count.
func readHeader(file string, cr *csv.Reader, want []string) error {
	got, err := cr.Read()
	if err == io.EOF {
		return loaderr.Schema(file, "empty file, expected header row")
	}
	if err != nil {
		return loaderr.IO(file, err)
	}
	if len(got) != len(want) {
		return loaderr.Schema(file, "column count mismatch")
	}
	for i, name := range want {
		if got[i] != name {
			return loaderr.Schema(file, "unexpected column "+got[i]+", expected "+name)
		}
	}
	return nil
}

func parseErrAt(file string, line int, column, raw string, cause error) error {
	return loaderr.Parse(file, line, column, raw, cause)
}
