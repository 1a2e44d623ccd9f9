package slicex

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRemoveAtFast(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	s, err := RemoveAtFast(s, 1)
	if err != nil {
		t.Fatalf("RemoveAtFast: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "d", "c"}, s); diff != "" {
		t.Fatalf("after remove (-want +got):\n%s", diff)
	}

	s, err = RemoveAtFast(s, 2)
	if err != nil {
		t.Fatalf("RemoveAtFast last: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "d"}, s); diff != "" {
		t.Fatalf("after remove last (-want +got):\n%s", diff)
	}

	for _, i := range []int{-1, 2} {
		if _, err := RemoveAtFast(s, i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("RemoveAtFast(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestRemoveAtFastKeepsOtherElements(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for trial := 0; trial < 200; trial++ {
		n := 1 + r.IntN(40)
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}
		idx := r.IntN(n)

		got, err := RemoveAtFast(slices.Clone(s), idx)
		if err != nil {
			t.Fatalf("RemoveAtFast: %v", err)
		}
		want := slices.Delete(slices.Clone(s), idx, idx+1)
		slices.Sort(got)
		if !slices.Equal(got, want) {
			t.Fatalf("trial %d: remaining = %v, want %v", trial, got, want)
		}
	}
}

func TestRemoveAll(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	s, n := RemoveAll([]int{1, 2, 3, 4, 5, 6}, even)
	if n != 3 {
		t.Fatalf("RemoveAll removed %d, want 3", n)
	}
	if diff := cmp.Diff([]int{1, 3, 5}, s); diff != "" {
		t.Fatalf("RemoveAll (-want +got):\n%s", diff)
	}

	s, n = RemoveAllFast([]int{2, 1, 4, 3, 6}, even)
	if n != 3 {
		t.Fatalf("RemoveAllFast removed %d, want 3", n)
	}
	slices.Sort(s)
	if diff := cmp.Diff([]int{1, 3}, s); diff != "" {
		t.Fatalf("RemoveAllFast (-want +got):\n%s", diff)
	}
}

func TestAddUnique(t *testing.T) {
	s, ok := AddUnique([]int{1, 2}, 2)
	if ok || len(s) != 2 {
		t.Fatalf("AddUnique existing = %v, %v", s, ok)
	}
	s, ok = AddUnique(s, 3)
	if !ok || !slices.Equal(s, []int{1, 2, 3}) {
		t.Fatalf("AddUnique new = %v, %v", s, ok)
	}

	s, ok = AddRangeUnique(s, 3, 4, 4, 5)
	if !ok {
		t.Fatal("AddRangeUnique reported nothing added")
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, s); diff != "" {
		t.Fatalf("AddRangeUnique (-want +got):\n%s", diff)
	}
	if _, ok := AddRangeUnique(s, 1, 5); ok {
		t.Fatal("AddRangeUnique of existing values reported added")
	}

	fold := func(a, b string) bool { return strings.EqualFold(a, b) }
	names, ok := AddUniqueFunc([]string{"Alice"}, "alice", fold)
	if ok || len(names) != 1 {
		t.Fatalf("AddUniqueFunc = %v, %v", names, ok)
	}
	names, ok = AddRangeUniqueFunc(names, fold, "BOB", "bob", "ALICE")
	if !ok {
		t.Fatal("AddRangeUniqueFunc reported nothing added")
	}
	if diff := cmp.Diff([]string{"Alice", "BOB"}, names); diff != "" {
		t.Fatalf("AddRangeUniqueFunc (-want +got):\n%s", diff)
	}
}

func TestInsertRange(t *testing.T) {
	s, err := InsertRange([]int{1, 4}, 1, 2, 3)
	if err != nil {
		t.Fatalf("InsertRange: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4}, s); diff != "" {
		t.Fatalf("InsertRange (-want +got):\n%s", diff)
	}
	s, err = InsertRange(s, len(s), 5)
	if err != nil || s[len(s)-1] != 5 {
		t.Fatalf("InsertRange at end = %v, %v", s, err)
	}
	if _, err := InsertRange(s, 9, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("InsertRange error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "same index", from: 2, to: 2, want: []string{"a", "b", "c", "d"}},
		{name: "forward", from: 0, to: 2, want: []string{"b", "a", "c", "d"}},
		{name: "forward to end", from: 0, to: 3, want: []string{"b", "c", "a", "d"}},
		{name: "adjacent forward", from: 1, to: 2, want: []string{"a", "b", "c", "d"}},
		{name: "backward", from: 3, to: 0, want: []string{"d", "a", "b", "c"}},
		{name: "adjacent backward", from: 2, to: 1, want: []string{"a", "c", "b", "d"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := []string{"a", "b", "c", "d"}
			if err := Move(s, tc.from, tc.to); err != nil {
				t.Fatalf("Move: %v", err)
			}
			if diff := cmp.Diff(tc.want, s); diff != "" {
				t.Fatalf("Move(%d, %d) (-want +got):\n%s", tc.from, tc.to, diff)
			}
		})
	}

	if err := Move([]int{1, 2}, 0, 5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Move error = %v, want ErrIndexOutOfRange", err)
	}
	if err := Move([]int{1, 2}, -1, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Move error = %v, want ErrIndexOutOfRange", err)
	}
}
