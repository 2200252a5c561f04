package opltypes

// AgeClass and BirthYearClass are federation-reported classification
// bands (e.g. "24-34", "Open", "Juniors"). Unlike Age itself, these are
// not computed by the core — they are read verbatim from the CSV, since
// the bands differ by federation and the mapping from exact age to band
// is a checker-pipeline concern (out of scope, spec.md §1).
type AgeClass string

// BirthYearClass is the birth-year-banded analogue of AgeClass.
type BirthYearClass string

// ParseAgeClass and ParseBirthYearClass accept any string, including
// empty (no class reported).
func ParseAgeClass(s string) (AgeClass, error) { return AgeClass(s), nil }

func ParseBirthYearClass(s string) (BirthYearClass, error) { return BirthYearClass(s), nil }

func (a AgeClass) String() string      { return string(a) }
func (b BirthYearClass) String() string { return string(b) }
