package hierarchy

import "errors"

// SkipChildren may be returned by a Walk visitor to skip the descendants of
// the node it was called with.
var SkipChildren = errors.New("skip children")

// Walk visits every node reachable from roots depth-first in pre-order.
// children returns the direct children of a node in display order. A visit
// error other than SkipChildren stops the walk and is returned.
func Walk[N any](roots []N, children func(N) []N, visit func(n N, depth int) error) error {
	for _, r := range roots {
		if err := walkRec(r, 0, children, visit); err != nil {
			return err
		}
	}
	return nil
}

func walkRec[N any](n N, depth int, children func(N) []N, visit func(N, int) error) error {
	if err := visit(n, depth); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, c := range children(n) {
		if err := walkRec(c, depth+1, children, visit); err != nil {
			return err
		}
	}
	return nil
}

// Flatten walks the forest and returns every node in pre-order. It is the
// inverse of Link for callers that need the flat list back.
func Flatten[N any](roots []N, children func(N) []N) []N {
	var out []N
	_ = Walk(roots, children, func(n N, _ int) error {
		out = append(out, n)
		return nil
	})
	return out
}

// Count returns the number of nodes reachable from roots.
func Count[N any](roots []N, children func(N) []N) int {
	n := 0
	_ = Walk(roots, children, func(N, int) error {
		n++
		return nil
	})
	return n
}

// Depth returns the length of the longest root-to-leaf path. An empty
// forest has depth 0; a forest of lone roots has depth 1.
func Depth[N any](roots []N, children func(N) []N) int {
	deepest := 0
	_ = Walk(roots, children, func(_ N, d int) error {
		if d+1 > deepest {
			deepest = d + 1
		}
		return nil
	})
	return deepest
}
