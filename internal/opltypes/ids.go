// Package opltypes defines the compact value types and row layouts used
// throughout the OpenPowerlifting database: weights, dates, ages, the
// closed enums for equipment/sex/event/place/ruleset/federation, and the
// Lifter/Meet/Entry row records that reference each other by ID.
package opltypes

// LifterID is a stable index into a Database's lifter vector.
type LifterID uint32

// MeetID is a stable index into a Database's meet vector.
type MeetID uint32

// EntryID is a stable index into a Database's entry vector.
type EntryID uint32
