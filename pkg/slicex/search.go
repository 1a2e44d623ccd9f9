package slicex

import (
	"cmp"
	"fmt"
	"slices"
)

// BinarySearch searches the sorted slice s for v. It returns the index of
// a matching element, or the bitwise complement (^i) of the index of the
// first element greater than v when there is no match.
func BinarySearch[S ~[]T, T cmp.Ordered](s S, v T) int {
	return BinarySearchFunc(s, v, cmp.Compare[T])
}

// BinarySearchFunc is BinarySearch with a custom three-way comparison.
func BinarySearchFunc[S ~[]T, T any](s S, v T, compare func(a, b T) int) int {
	return searchRange(s, 0, len(s), v, compare)
}

// BinarySearchRange searches the sorted window s[index:index+length].
// The returned index, or its complement, is relative to s, not the window.
func BinarySearchRange[S ~[]T, T cmp.Ordered](s S, index, length int, v T) (int, error) {
	if index < 0 || length < 0 {
		return 0, fmt.Errorf("binary search [%d,+%d): negative bound: %w", index, length, ErrInvalidRange)
	}
	if len(s)-index < length {
		return 0, fmt.Errorf("binary search [%d,+%d) past len %d: %w", index, length, len(s), ErrInvalidRange)
	}
	return searchRange(s, index, length, v, cmp.Compare[T]), nil
}

func searchRange[S ~[]T, T any](s S, index, length int, v T, compare func(a, b T) int) int {
	lo, hi := index, index+length-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		c := compare(s[mid], v)
		switch {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return ^lo
}

// AddSorted inserts v into the sorted slice s, keeping it sorted. Values
// not less than the last element are appended and values not greater than
// the first are prepended without searching.
func AddSorted[S ~[]T, T cmp.Ordered](s S, v T) S {
	return AddSortedFunc(s, v, cmp.Compare[T])
}

// AddSortedFunc is AddSorted with a custom three-way comparison.
func AddSortedFunc[S ~[]T, T any](s S, v T, compare func(a, b T) int) S {
	switch {
	case len(s) == 0, compare(v, s[len(s)-1]) >= 0:
		return append(s, v)
	case compare(v, s[0]) <= 0:
		return slices.Insert(s, 0, v)
	}
	i := BinarySearchFunc(s, v, compare)
	if i < 0 {
		i = ^i
	}
	return slices.Insert(s, i, v)
}
