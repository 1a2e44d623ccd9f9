package slicex

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrIndexOutOfRange is returned when an index does not address an element.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidRange is returned for a negative or overlong index/length pair.
	ErrInvalidRange = errors.New("invalid range")
)

// RemoveAtFast removes s[i] by overwriting it with the last element and
// truncating, so it runs in O(1). The order of the remaining elements is
// not preserved; use it on unordered slices only.
func RemoveAtFast[S ~[]T, T any](s S, i int) (S, error) {
	if i < 0 || i >= len(s) {
		return s, fmt.Errorf("remove at %d (len %d): %w", i, len(s), ErrIndexOutOfRange)
	}
	last := len(s) - 1
	s[i] = s[last]
	var zero T
	s[last] = zero
	return s[:last], nil
}

// RemoveAllFast removes every element matching pred using RemoveAtFast and
// returns the shortened slice and the number of removed elements.
func RemoveAllFast[S ~[]T, T any](s S, pred func(T) bool) (S, int) {
	removed := 0
	for i := 0; i < len(s); {
		if !pred(s[i]) {
			i++
			continue
		}
		s, _ = RemoveAtFast(s, i)
		removed++
	}
	return s, removed
}

// RemoveAll removes every element matching pred, keeping the survivors in
// their original order.
func RemoveAll[S ~[]T, T any](s S, pred func(T) bool) (S, int) {
	before := len(s)
	s = slices.DeleteFunc(s, pred)
	return s, before - len(s)
}

// AddUnique appends v unless s already contains it.
func AddUnique[S ~[]T, T comparable](s S, v T) (S, bool) {
	if slices.Contains(s, v) {
		return s, false
	}
	return append(s, v), true
}

// AddUniqueFunc appends v unless an element of s is equal to it under eq.
func AddUniqueFunc[S ~[]T, T any](s S, v T, eq func(a, b T) bool) (S, bool) {
	if slices.ContainsFunc(s, func(e T) bool { return eq(e, v) }) {
		return s, false
	}
	return append(s, v), true
}

// AddRangeUnique calls AddUnique for each of vs and reports whether any
// element was added. Duplicates within vs are collapsed too.
func AddRangeUnique[S ~[]T, T comparable](s S, vs ...T) (S, bool) {
	added := false
	for _, v := range vs {
		var ok bool
		s, ok = AddUnique(s, v)
		added = added || ok
	}
	return s, added
}

// AddRangeUniqueFunc is AddRangeUnique with a custom equality.
func AddRangeUniqueFunc[S ~[]T, T any](s S, eq func(a, b T) bool, vs ...T) (S, bool) {
	added := false
	for _, v := range vs {
		var ok bool
		s, ok = AddUniqueFunc(s, v, eq)
		added = added || ok
	}
	return s, added
}

// InsertRange inserts vs at index i, which may equal len(s).
func InsertRange[S ~[]T, T any](s S, i int, vs ...T) (S, error) {
	if i < 0 || i > len(s) {
		return s, fmt.Errorf("insert at %d (len %d): %w", i, len(s), ErrIndexOutOfRange)
	}
	return slices.Insert(s, i, vs...), nil
}

// Move removes the element at from and inserts it at to, shifting the
// elements in between. Like a remove followed by an insert, moving an
// element forward lands it one slot before to.
func Move[S ~[]T, T any](s S, from, to int) error {
	if from == to {
		return nil
	}
	if from < 0 || from >= len(s) {
		return fmt.Errorf("move from %d (len %d): %w", from, len(s), ErrIndexOutOfRange)
	}
	if to < 0 || to >= len(s) {
		return fmt.Errorf("move to %d (len %d): %w", to, len(s), ErrIndexOutOfRange)
	}
	v := s[from]
	if to > from {
		to--
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = v
	return nil
}
