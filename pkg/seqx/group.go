package seqx

import "iter"

// Group is one key of a GroupBy result with its values in input order.
type Group[K comparable, T any] struct {
	Key    K
	Values []T
}

// GroupBy collects the values of seq by key. Groups come back in the order
// their key was first seen; values keep their input order.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) []Group[K, T] {
	return GroupByNormalized(seq, key, nil)
}

// GroupByNormalized is GroupBy where keys are canonicalised by normalize
// before comparison (e.g. strings.ToLower). The first key seen in its raw
// form is kept as the group's Key. A nil normalize compares keys as is.
func GroupByNormalized[T any, K comparable](seq iter.Seq[T], key func(T) K, normalize func(K) K) []Group[K, T] {
	index := make(map[K]int)
	var groups []Group[K, T]
	for v := range seq {
		k := key(v)
		nk := k
		if normalize != nil {
			nk = normalize(k)
		}
		i, ok := index[nk]
		if !ok {
			i = len(groups)
			index[nk] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Values = append(groups[i].Values, v)
	}
	return groups
}

// ToMap turns groups into a map. Groups whose keys collide after
// normalisation are merged in order; a nil normalize uses the keys as is.
func ToMap[K comparable, T any](groups []Group[K, T], normalize func(K) K) map[K][]T {
	out := make(map[K][]T, len(groups))
	for _, g := range groups {
		k := g.Key
		if normalize != nil {
			k = normalize(k)
		}
		out[k] = append(out[k], g.Values...)
	}
	return out
}
