package cmpx

import "cmp"

// Between reports whether lo <= v <= hi.
func Between[T cmp.Ordered](v, lo, hi T) bool {
	return BetweenBounds(v, lo, true, hi, true)
}

// BetweenBounds reports whether v lies between lo and hi, with each bound
// inclusive or exclusive as requested.
func BetweenBounds[T cmp.Ordered](v, lo T, loInclusive bool, hi T, hiInclusive bool) bool {
	return BetweenFunc(v, lo, loInclusive, hi, hiInclusive, cmp.Compare[T])
}

// BetweenFunc is BetweenBounds with a caller-supplied three-way comparison.
func BetweenFunc[T any](v, lo T, loInclusive bool, hi T, hiInclusive bool, compare func(a, b T) int) bool {
	cl := compare(v, lo)
	ch := compare(v, hi)
	return (cl > 0 || loInclusive && cl == 0) && (ch < 0 || hiInclusive && ch == 0)
}

// LimitHigh caps v at maximum.
func LimitHigh[T cmp.Ordered](v, maximum T) T {
	if cmp.Less(v, maximum) {
		return v
	}
	return maximum
}

// LimitLow raises v to minimum.
func LimitLow[T cmp.Ordered](v, minimum T) T {
	if cmp.Less(v, minimum) {
		return minimum
	}
	return v
}

// Limit clamps v into [lo, hi]. When lo > hi the low bound wins.
func Limit[T cmp.Ordered](v, lo, hi T) T {
	if cmp.Less(v, lo) {
		return lo
	}
	if cmp.Less(hi, v) {
		return hi
	}
	return v
}

// HasValueAndEquals reports whether p is non-nil and points at v.
func HasValueAndEquals[T comparable](p *T, v T) bool {
	return p != nil && *p == v
}

// IsNilOrZero reports whether p is nil or points at T's zero value.
func IsNilOrZero[T comparable](p *T) bool {
	var zero T
	return p == nil || *p == zero
}
