package metafed

import "github.com/gingerlifts/opldb/internal/opltypes"

// ipfAffiliates lists the federations treated as IPF or a national/
// regional IPF affiliate for AllIPFAffiliated, data-driven the way
// internal/opltypes/federation.go's own tables are: extending the roster
// is adding a line here, not touching the predicate.
var ipfAffiliates = map[opltypes.Federation]bool{
	opltypes.FedIPF:            true,
	opltypes.FedUSAPL:          true,
	opltypes.FedNIPF:           true,
	opltypes.FedIrishPF:        true,
	opltypes.FedBP:             true,
	opltypes.FedEPF:            true,
	opltypes.FedNAPF:           true,
	opltypes.FedAsianPF:        true,
	opltypes.FedAfricanPF:      true,
	opltypes.FedOceaniaPF:      true,
	opltypes.FedCommonwealthPF: true,
}

// Defs returns the standard MetaFederation roster built into every
// Database: "every drug-tested entry regardless of federation", "IPF and
// its national/regional affiliates", and "IPF, its affiliates, and any
// federation whose default points on the meet's date are IPF Points". A
// corpus-specific caller can pass its own slice to
// metafed.Build instead of this one if it needs a different roster.
func Defs() []Def {
	return []Def{
		{
			Name:      "AllTested",
			Gate:      func(m *opltypes.Meet) bool { return true },
			Predicate: func(e *opltypes.Entry, m *opltypes.Meet) bool { return e.Tested },
		},
		{
			Name: "AllIPFAffiliated",
			Gate: func(m *opltypes.Meet) bool { return ipfAffiliates[m.Federation] },
			Predicate: func(e *opltypes.Entry, m *opltypes.Meet) bool {
				return ipfAffiliates[m.Federation]
			},
		},
		{
			Name: "AllIPFSanctionedOnDate",
			Gate: func(m *opltypes.Meet) bool {
				return ipfAffiliates[m.Federation] || m.Federation.IsFullyTested()
			},
			Predicate: func(e *opltypes.Entry, m *opltypes.Meet) bool {
				return ipfAffiliates[m.Federation] || m.Federation.DefaultPoints(m.Date) == opltypes.PointsIPFPoints
			},
		},
	}
}
