package enumx

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"fortio.org/safecast"
)

// ErrUndefined is returned when a value is not one of the set's members.
var ErrUndefined = errors.New("undefined enum value")

// Integer is the set of types usable as enum bases.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Set is the closed list of values of an enum type. Go enums are typed
// constants, so a Set is how a program says which values exist.
type Set[T Integer] struct {
	values []T
	names  map[T]string
}

// NewSet registers values in the given order. Duplicates are ignored.
func NewSet[T Integer](values ...T) *Set[T] {
	s := &Set[T]{names: make(map[T]string, len(values))}
	for _, v := range values {
		if _, dup := s.names[v]; dup {
			continue
		}
		s.values = append(s.values, v)
		s.names[v] = ""
	}
	return s
}

// NewNamedSet registers values with display names, ordered by value.
func NewNamedSet[T Integer](names map[T]string) *Set[T] {
	s := &Set[T]{names: make(map[T]string, len(names))}
	for v, name := range names {
		s.values = append(s.values, v)
		s.names[v] = name
	}
	slices.SortFunc(s.values, cmp.Compare[T])
	return s
}

// Values returns the members in registration order.
func (s *Set[T]) Values() []T {
	return slices.Clone(s.values)
}

// Contains reports whether v is a member.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.names[v]
	return ok
}

// Checked converts v to T. It fails if v does not fit in T's base type or
// is not a member.
func (s *Set[T]) Checked(v int) (T, error) {
	e, err := safecast.Conv[T](v)
	if err != nil {
		return 0, fmt.Errorf("enum %T from %d: %w", e, v, err)
	}
	if !s.Contains(e) {
		return 0, fmt.Errorf("enum %T from %d: %w", e, v, ErrUndefined)
	}
	return e, nil
}

// TryConvert is Checked without the error. On failure it returns the first
// registered member (or zero for an empty set) and false.
func (s *Set[T]) TryConvert(v int) (T, bool) {
	e, err := s.Checked(v)
	if err != nil {
		if len(s.values) > 0 {
			return s.values[0], false
		}
		return 0, false
	}
	return e, true
}

// Name returns v's registered display name, or its decimal form when the
// member has no name or v is not a member.
func (s *Set[T]) Name(v T) string {
	if name := s.names[v]; name != "" {
		return name
	}
	return fmt.Sprintf("%d", v)
}

// Parse finds the member whose name matches name case-insensitively.
func (s *Set[T]) Parse(name string) (T, error) {
	for _, v := range s.values {
		if n := s.names[v]; n != "" && strings.EqualFold(n, name) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("enum name %q: %w", name, ErrUndefined)
}
