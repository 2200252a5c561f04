package opltypes

import (
	"fmt"
	"strings"
)

// Sex is the lifter's competing sex.
type Sex uint8

const (
	SexM Sex = iota
	SexF
)

// ParseSex parses the Sex CSV column.
func ParseSex(s string) (Sex, error) {
	switch strings.ToUpper(s) {
	case "M":
		return SexM, nil
	case "F":
		return SexF, nil
	default:
		return 0, fmt.Errorf("invalid sex %q", s)
	}
}

func (s Sex) String() string {
	if s == SexF {
		return "F"
	}
	return "M"
}

// Equipment is the supportive gear category an entry competed under.
type Equipment uint8

const (
	EquipmentRaw Equipment = iota
	EquipmentWraps
	EquipmentSingle
	EquipmentMulti
	EquipmentUnlimited
	EquipmentStraps
)

var equipmentNames = map[Equipment]string{
	EquipmentRaw:       "Raw",
	EquipmentWraps:     "Wraps",
	EquipmentSingle:    "Single-ply",
	EquipmentMulti:     "Multi-ply",
	EquipmentUnlimited: "Unlimited",
	EquipmentStraps:    "Straps",
}

var equipmentByName = func() map[string]Equipment {
	m := make(map[string]Equipment, len(equipmentNames))
	for k, v := range equipmentNames {
		m[strings.ToLower(v)] = k
	}
	return m
}()

// ParseEquipment parses the Equipment CSV column.
func ParseEquipment(s string) (Equipment, error) {
	if e, ok := equipmentByName[strings.ToLower(s)]; ok {
		return e, nil
	}
	return 0, fmt.Errorf("invalid equipment %q", s)
}

func (e Equipment) String() string { return equipmentNames[e] }

// Event is a bitset of the three competed lifts.
type Event uint8

const (
	EventSquat Event = 1 << iota
	EventBench
	EventDeadlift
)

// ParseEvent parses an Event CSV column such as "SBD", "BD", "S".
func ParseEvent(s string) (Event, error) {
	var e Event
	for _, c := range s {
		switch c {
		case 'S':
			e |= EventSquat
		case 'B':
			e |= EventBench
		case 'D':
			e |= EventDeadlift
		default:
			return 0, fmt.Errorf("invalid event letter %q in %q", c, s)
		}
	}
	if e == 0 {
		return 0, fmt.Errorf("empty event %q", s)
	}
	return e, nil
}

func (e Event) String() string {
	var b strings.Builder
	if e&EventSquat != 0 {
		b.WriteByte('S')
	}
	if e&EventBench != 0 {
		b.WriteByte('B')
	}
	if e&EventDeadlift != 0 {
		b.WriteByte('D')
	}
	return b.String()
}

// IsFullPower reports whether the event is Squat-Bench-Deadlift.
func (e Event) IsFullPower() bool { return e == EventSquat|EventBench|EventDeadlift }

// IsPushPull reports whether the event is Bench-Deadlift.
func (e Event) IsPushPull() bool { return e == EventBench|EventDeadlift }

// IsSquatOnly reports whether the event is Squat alone.
func (e Event) IsSquatOnly() bool { return e == EventSquat }

// IsBenchOnly reports whether the event is Bench alone.
func (e Event) IsBenchOnly() bool { return e == EventBench }

// IsDeadliftOnly reports whether the event is Deadlift alone.
func (e Event) IsDeadliftOnly() bool { return e == EventDeadlift }

// Place is the final placing of an entry: a numeric place, a guest
// placing, a disqualification, a doping disqualification, or
// not-started.
type Place struct {
	kind placeKind
	n    uint16
}

type placeKind uint8

const (
	placeNumbered placeKind = iota
	placeGuest
	placeDQ
	placeDopingDQ
	placeNotStarted
)

// PlaceNumbered constructs a numeric placing (1st, 2nd, ...).
func PlaceNumbered(n uint16) Place { return Place{kind: placeNumbered, n: n} }

// PlaceGuest, PlaceDQ, PlaceDopingDQ, and PlaceNotStarted are the
// non-numeric placings.
var (
	PlaceGuest       = Place{kind: placeGuest}
	PlaceDQ          = Place{kind: placeDQ}
	PlaceDopingDQ    = Place{kind: placeDopingDQ}
	PlaceNotStarted  = Place{kind: placeNotStarted}
)

// ParsePlace parses the Place CSV column.
func ParsePlace(s string) (Place, error) {
	switch s {
	case "G":
		return PlaceGuest, nil
	case "DQ":
		return PlaceDQ, nil
	case "DD":
		return PlaceDopingDQ, nil
	case "NS":
		return PlaceNotStarted, nil
	default:
		var n uint16
		if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
			return Place{}, fmt.Errorf("invalid place %q", s)
		}
		return PlaceNumbered(n), nil
	}
}

// IsDQ reports whether the place is any disqualification (doping or not).
func (p Place) IsDQ() bool { return p.kind == placeDQ || p.kind == placeDopingDQ }

func (p Place) String() string {
	switch p.kind {
	case placeGuest:
		return "G"
	case placeDQ:
		return "DQ"
	case placeDopingDQ:
		return "DD"
	case placeNotStarted:
		return "NS"
	default:
		return fmt.Sprintf("%d", p.n)
	}
}

// RuleSet names the competition rules a meet was held under (e.g. "Single
// Ply Equipped"). The corpus treats this as free text scoped per
// federation, so it is kept as a plain string rather than a closed enum.
type RuleSet string

// ParseRuleSet accepts any cell, including an empty one, and never fails.
func ParseRuleSet(s string) (RuleSet, error) {
	return RuleSet(s), nil
}

func (r RuleSet) String() string { return string(r) }
