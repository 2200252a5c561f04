// Package metafed implements the MetaFederation engine from spec.md §4.7:
// a logical federation defined as a predicate over (Entry, Meet), made
// fast by precomputing a per-meet over-approximation bitset at load time
// so the exact predicate only has to run within meets that could possibly
// match.
package metafed

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/gingerlifts/opldb/internal/opltypes"
)

// Predicate decides whether one entry, at the meet it was recorded at,
// belongs to a MetaFederation.
type Predicate func(e *opltypes.Entry, m *opltypes.Meet) bool

// MeetGate cheaply over-approximates Predicate at the meet level: if it
// returns false for a meet, no entry of that meet can match; if true, the
// meet's entries still need the exact Predicate applied.
type MeetGate func(m *opltypes.Meet) bool

// Def is one named MetaFederation.
type Def struct {
	Name      string
	Gate      MeetGate
	Predicate Predicate
}

// Cache holds the precomputed per-meet gate bitset for every registered
// MetaFederation, built once at load time.
type Cache struct {
	defs    map[string]Def
	meetBit map[string]*roaring.Bitmap
}

// Build evaluates every def's MeetGate against every meet once and
// records the result in a bitset keyed by MeetID.
func Build(meets []opltypes.Meet, defs []Def) *Cache {
	c := &Cache{
		defs:    make(map[string]Def, len(defs)),
		meetBit: make(map[string]*roaring.Bitmap, len(defs)),
	}
	for _, d := range defs {
		bm := roaring.New()
		for i := range meets {
			if d.Gate(&meets[i]) {
				bm.Add(uint32(i))
			}
		}
		bm.RunOptimize()
		c.defs[d.Name] = d
		c.meetBit[d.Name] = bm
	}
	return c
}

// Names lists every registered MetaFederation. The order of the returned
// names is not defined.
func (c *Cache) Names() []string {
	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, name)
	}
	return names
}

// Matches reports whether an entry belongs to the named MetaFederation. It
// is false (not an error) for an unknown name.
func (c *Cache) Matches(name string, e *opltypes.Entry, m *opltypes.Meet) bool {
	def, ok := c.defs[name]
	if !ok {
		return false
	}
	if !c.meetBit[name].Contains(uint32(e.MeetID)) {
		return false
	}
	return def.Predicate(e, m)
}

// MeetMayMatch reports whether a meet's gate bit is set for a
// MetaFederation, without running the exact per-entry predicate. Matches
// makes the same check before it runs the predicate.
func (c *Cache) MeetMayMatch(name string, meetID opltypes.MeetID) bool {
	bm, ok := c.meetBit[name]
	return ok && bm.Contains(uint32(meetID))
}
