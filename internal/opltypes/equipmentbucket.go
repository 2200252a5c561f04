package opltypes

import "fmt"

// EquipmentBucket is the coarser equipment grouping rankings are filtered
// and precomputed by, distinct from the per-entry Equipment column: most
// notably it merges Raw and Wraps into RawAndWraps, matching how meets
// are conventionally ranked together. EquipmentStraps has no bucket of
// its own and never appears in a precomputed ranking; it is still a valid
// per-entry Equipment value, but no rankings query selects it, since
// queries filter by bucket only.
type EquipmentBucket uint8

const (
	BucketRaw EquipmentBucket = iota
	BucketWraps
	BucketRawAndWraps
	BucketSingle
	BucketMulti
	BucketUnlimited
)

// AllEquipmentBuckets lists the six buckets the constant-time cache
// precomputes a ranked list for, in a stable order.
func AllEquipmentBuckets() []EquipmentBucket {
	return []EquipmentBucket{BucketRaw, BucketWraps, BucketRawAndWraps, BucketSingle, BucketMulti, BucketUnlimited}
}

// Members returns the per-entry Equipment values a bucket includes.
func (b EquipmentBucket) Members() []Equipment {
	switch b {
	case BucketRaw:
		return []Equipment{EquipmentRaw}
	case BucketWraps:
		return []Equipment{EquipmentWraps}
	case BucketRawAndWraps:
		return []Equipment{EquipmentRaw, EquipmentWraps}
	case BucketSingle:
		return []Equipment{EquipmentSingle}
	case BucketMulti:
		return []Equipment{EquipmentMulti}
	case BucketUnlimited:
		return []Equipment{EquipmentUnlimited}
	default:
		return nil
	}
}

// ParseEquipmentBucket parses a bucket name as used in CLI flags and
// query strings (case-sensitive, matching String's output).
func ParseEquipmentBucket(s string) (EquipmentBucket, error) {
	switch s {
	case "Raw":
		return BucketRaw, nil
	case "Wraps":
		return BucketWraps, nil
	case "RawAndWraps":
		return BucketRawAndWraps, nil
	case "Single-ply":
		return BucketSingle, nil
	case "Multi-ply":
		return BucketMulti, nil
	case "Unlimited":
		return BucketUnlimited, nil
	default:
		return 0, fmt.Errorf("unrecognized equipment bucket %q", s)
	}
}

func (b EquipmentBucket) String() string {
	switch b {
	case BucketRaw:
		return "Raw"
	case BucketWraps:
		return "Wraps"
	case BucketRawAndWraps:
		return "RawAndWraps"
	case BucketSingle:
		return "Single-ply"
	case BucketMulti:
		return "Multi-ply"
	case BucketUnlimited:
		return "Unlimited"
	default:
		return "Unknown"
	}
}
