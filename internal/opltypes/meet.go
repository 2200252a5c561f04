package opltypes

// Meet is a single row of meets.csv.
type Meet struct {
	ID MeetID

	Path        string // Unique slug, e.g. "uspa/1234".
	Federation  Federation
	Date        Date
	Country     Country
	State       State
	Town        string
	Name        string
	RuleSet     RuleSet

	// NumUniqueLifters is backfilled by the loader after every entry has
	// been read, by counting distinct LifterIDs that reference this meet.
	NumUniqueLifters uint32
}
