package seqx

import (
	"iter"
)

// Equality pairs an equality test with an optional hash. Hash must agree
// with Equal: equal values have equal hashes. A nil Hash puts every value
// in one bucket, which is correct but quadratic.
type Equality[T any] struct {
	Equal func(a, b T) bool
	Hash  func(T) uint64
}

func (e Equality[T]) hash(v T) uint64 {
	if e.Hash == nil {
		return 0
	}
	return e.Hash(v)
}

// set is a bucketed set keyed by Equality.hash.
type set[T any] struct {
	eq      Equality[T]
	buckets map[uint64][]T
}

func newSet[T any](eq Equality[T]) *set[T] {
	return &set[T]{eq: eq, buckets: make(map[uint64][]T)}
}

// add inserts v and reports whether it was absent.
func (s *set[T]) add(v T) bool {
	h := s.eq.hash(v)
	for _, existing := range s.buckets[h] {
		if s.eq.Equal(existing, v) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], v)
	return true
}

// ContainsFunc reports whether seq yields a value equal to v under eq.
func ContainsFunc[T any](seq iter.Seq[T], v T, eq func(a, b T) bool) bool {
	for e := range seq {
		if eq(e, v) {
			return true
		}
	}
	return false
}

// Distinct yields the first occurrence of every value in seq.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// DistinctFunc yields the first occurrence of every value in seq, comparing
// values with eq.
func DistinctFunc[T any](seq iter.Seq[T], eq Equality[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := newSet(eq)
		for v := range seq {
			if seen.add(v) && !yield(v) {
				return
			}
		}
	}
}

// DistinctBy yields the first value for every distinct key.
func DistinctBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// MaxFunc returns the greatest value of seq under compare. The first of
// several equal maxima wins. ok is false for an empty seq.
func MaxFunc[T any](seq iter.Seq[T], compare func(a, b T) int) (best T, ok bool) {
	for v := range seq {
		if !ok || compare(best, v) < 0 {
			best, ok = v, true
		}
	}
	return best, ok
}

// MinFunc returns the least value of seq under compare. The first of
// several equal minima wins. ok is false for an empty seq.
func MinFunc[T any](seq iter.Seq[T], compare func(a, b T) int) (best T, ok bool) {
	for v := range seq {
		if !ok || compare(best, v) > 0 {
			best, ok = v, true
		}
	}
	return best, ok
}

// PickFirst pulls the first value of seq and returns the remaining values
// as a new sequence without consuming them. The rest sequence can be
// ranged over once; stop releases the underlying iterator and must be
// called if rest is not drained.
func PickFirst[T any](seq iter.Seq[T]) (first T, ok bool, rest iter.Seq[T], stop func()) {
	next, stop := iter.Pull(seq)
	first, ok = next()
	rest = func(yield func(T) bool) {
		if !ok {
			return
		}
		for {
			v, more := next()
			if !more || !yield(v) {
				return
			}
		}
	}
	return first, ok, rest, stop
}

// AreAllEqual reports whether every value of seq equals the first one.
// An empty or single-valued seq is all-equal.
func AreAllEqual[T comparable](seq iter.Seq[T]) bool {
	return AreAllEqualFunc(seq, Equality[T]{Equal: func(a, b T) bool { return a == b }})
}

// AreAllEqualFunc is AreAllEqual under eq. When eq.Hash is set, values with
// different hashes are unequal without calling Equal.
func AreAllEqualFunc[T any](seq iter.Seq[T], eq Equality[T]) bool {
	var (
		first     T
		firstHash uint64
		started   bool
	)
	for v := range seq {
		if !started {
			first, firstHash, started = v, eq.hash(v), true
			continue
		}
		if eq.hash(v) != firstHash || !eq.Equal(first, v) {
			return false
		}
	}
	return true
}

// In reports whether v is one of candidates.
func In[T comparable](v T, candidates ...T) bool {
	for _, c := range candidates {
		if c == v {
			return true
		}
	}
	return false
}

// InFunc reports whether v equals one of candidates under eq.
func InFunc[T any](v T, eq func(a, b T) bool, candidates ...T) bool {
	for _, c := range candidates {
		if eq(v, c) {
			return true
		}
	}
	return false
}

// EnqueueAll appends every value of seq to the back of queue.
func EnqueueAll[Q ~[]T, T any](queue Q, seq iter.Seq[T]) Q {
	for v := range seq {
		queue = append(queue, v)
	}
	return queue
}
