package fn

import (
	"strconv"
	"strings"
	"testing"
)

func TestY(t *testing.T) {
	fact := Y(func(self func(int) int) func(int) int {
		return func(n int) int {
			if n <= 1 {
				return 1
			}
			return n * self(n-1)
		}
	})
	tests := []struct{ in, want int }{{0, 1}, {1, 1}, {5, 120}, {10, 3628800}}
	for _, tc := range tests {
		if got := fact(tc.in); got != tc.want {
			t.Errorf("fact(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}

	fib := Y(func(self func(uint) uint64) func(uint) uint64 {
		return func(n uint) uint64 {
			if n < 2 {
				return uint64(n)
			}
			return self(n-1) + self(n-2)
		}
	})
	if got := fib(20); got != 6765 {
		t.Fatalf("fib(20) = %d, want 6765", got)
	}
}

func TestBindAndCompose(t *testing.T) {
	calls := 0
	double := func(n int) int { calls++; return n * 2 }
	bound := Bind(double, 21)
	if calls != 0 {
		t.Fatal("Bind evaluated eagerly")
	}
	if got := bound(); got != 42 {
		t.Fatalf("bound() = %d, want 42", got)
	}

	toLabel := Compose(double, strconv.Itoa)
	if got := toLabel(4); got != "8" {
		t.Fatalf("Compose = %q, want 8", got)
	}
}

func TestCurryRoundTrip(t *testing.T) {
	join2 := func(a, b string) string { return a + b }
	if got := Curry2(join2)("x")("y"); got != "xy" {
		t.Fatalf("Curry2 = %q", got)
	}
	if got := Uncurry2(Curry2(join2))("x", "y"); got != "xy" {
		t.Fatalf("Uncurry2 = %q", got)
	}

	repeat := func(s string, n int, sep string) string {
		return strings.TrimSuffix(strings.Repeat(s+sep, n), sep)
	}
	comma := Curry3(repeat)("ab")(3)
	if got := comma(","); got != "ab,ab,ab" {
		t.Fatalf("Curry3 = %q", got)
	}
	if got := Uncurry3(Curry3(repeat))("z", 2, "-"); got != "z-z" {
		t.Fatalf("Uncurry3 = %q", got)
	}

	sum4 := func(a, b, c, d int) int { return a*1000 + b*100 + c*10 + d }
	if got := Curry4(sum4)(1)(2)(3)(4); got != 1234 {
		t.Fatalf("Curry4 = %d", got)
	}
	if got := Uncurry4(Curry4(sum4))(4, 3, 2, 1); got != 4321 {
		t.Fatalf("Uncurry4 = %d", got)
	}
}
