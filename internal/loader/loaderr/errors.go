// Package loaderr provides the structured error type returned when a CSV
// triple fails to load into a Database. Error codes are organized by Kind
// the way internal/errors organizes OplError codes by Category, but
// trimmed to the concerns a pure in-memory load can actually hit: there is
// no network and nothing to retry.
package loaderr

import "fmt"

// Kind classifies why a load failed.
type Kind string

const (
	// KindIO means the CSV source could not be read at all.
	KindIO Kind = "IO"
	// KindSchema means the CSV header did not match the expected column
	// set for the table.
	KindSchema Kind = "SCHEMA"
	// KindParse means a single cell failed to parse into its column type.
	KindParse Kind = "PARSE"
	// KindReferential means a row referenced a lifter or meet ID that
	// does not exist in the corresponding table.
	KindReferential Kind = "REFERENTIAL"
	// KindInvariant means the fully loaded database failed one of the
	// global consistency checks run after all three tables are read.
	KindInvariant Kind = "INVARIANT"
)

// LoadError is returned by loader.FromCSV and its helpers. File is set for
// IO, Schema, Parse and Referential failures; Line/Column/Raw are set only
// for Parse and Referential failures, which are tied to one cell. Invariant
// failures leave all four zero.
type LoadError struct {
	Kind    Kind
	File    string
	Line    int
	Column  string
	Raw     string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s[%s]: %s (raw=%q)", e.File, e.Line, e.Kind, e.Column, e.Message, e.Raw)
	}
	return fmt.Sprintf("%s: %s: %s", e.File, e.Kind, e.Message)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// IO builds a KindIO error for a source that could not be opened or read.
func IO(file string, cause error) *LoadError {
	return &LoadError{Kind: KindIO, File: file, Message: "failed to read source", Cause: cause}
}

// Schema builds a KindSchema error for a malformed header row.
func Schema(file string, message string) *LoadError {
	return &LoadError{Kind: KindSchema, File: file, Message: message}
}

// Parse builds a KindParse error for a single cell.
func Parse(file string, line int, column, raw string, cause error) *LoadError {
	return &LoadError{
		Kind: KindParse, File: file, Line: line, Column: column, Raw: raw,
		Message: "could not parse value", Cause: cause,
	}
}

// Referential builds a KindReferential error for a dangling foreign key.
func Referential(file string, line int, column, raw string) *LoadError {
	return &LoadError{
		Kind: KindReferential, File: file, Line: line, Column: column, Raw: raw,
		Message: "referenced row does not exist",
	}
}

// Invariant builds a KindInvariant error for a failed post-load check.
func Invariant(message string) *LoadError {
	return &LoadError{Kind: KindInvariant, Message: message}
}
