package indexset

// PossiblyOwned holds either a borrowed reference to a cached slice or a
// freshly materialized one, so callers on the query planner's fast and
// slow paths can share one return type without the fast path paying for a
// copy it doesn't need.
type PossiblyOwned[T any] struct {
	borrowed []T
	owned    []T
	isOwned  bool
}

// Borrow wraps an existing slice without copying it. Callers must not
// mutate the slice through either the original or the returned value.
func Borrow[T any](s []T) PossiblyOwned[T] {
	return PossiblyOwned[T]{borrowed: s}
}

// Owned wraps a slice the caller just built; ownership transfers to the
// wrapper.
func Owned[T any](s []T) PossiblyOwned[T] {
	return PossiblyOwned[T]{owned: s, isOwned: true}
}

// Slice returns the underlying data, whichever form it's in.
func (p PossiblyOwned[T]) Slice() []T {
	if p.isOwned {
		return p.owned
	}
	return p.borrowed
}

// IsOwned reports whether the data was freshly materialized for this call
// rather than borrowed from a shared cache.
func (p PossiblyOwned[T]) IsOwned() bool { return p.isOwned }

// Len returns the length of the underlying slice.
func (p PossiblyOwned[T]) Len() int { return len(p.Slice()) }
