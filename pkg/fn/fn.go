package fn

// Y returns the fixed point of f: a function that calls f with itself as
// the recursive step. It lets an anonymous function recurse without naming
// itself.
//
//	fact := fn.Y(func(self func(int) int) func(int) int {
//		return func(n int) int {
//			if n <= 1 {
//				return 1
//			}
//			return n * self(n-1)
//		}
//	})
func Y[A, R any](f func(func(A) R) func(A) R) func(A) R {
	g := func(r recursive[A, R]) func(A) R {
		return func(a A) R { return f(r(r))(a) }
	}
	return g(g)
}

type recursive[A, R any] func(recursive[A, R]) func(A) R

// Bind fixes the only argument of f.
func Bind[A, R any](f func(A) R, a A) func() R {
	return func() R { return f(a) }
}

// Compose returns a function applying f then g.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Curry2 turns f(a, b) into f(a)(b).
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R { return f(a, b) }
	}
}

// Curry3 turns f(a, b, c) into f(a)(b)(c).
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R { return f(a, b, c) }
		}
	}
}

// Curry4 turns f(a, b, c, d) into f(a)(b)(c)(d).
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R { return f(a, b, c, d) }
			}
		}
	}
}

// Uncurry2 reverses Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R { return f(a)(b) }
}

// Uncurry3 reverses Curry3.
func Uncurry3[A, B, C, R any](f func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R { return f(a)(b)(c) }
}

// Uncurry4 reverses Curry4.
func Uncurry4[A, B, C, D, R any](f func(A) func(B) func(C) func(D) R) func(A, B, C, D) R {
	return func(a A, b B, c C, d D) R { return f(a)(b)(c)(d) }
}
