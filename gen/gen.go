// Package gen provides a small set of built-in arbitraries.
//
// The engine itself is agnostic to value domains; these generators exist so
// properties can be written and the engine exercised without an external
// generator library. Integer shrinking bisects toward the simplest value in
// range (zero when the range contains it, the low bound otherwise).
package gen

import (
	"github.com/roach88/falsify/arbitrary"
	"github.com/roach88/falsify/source"
)

// Const always generates v, with no shrinking.
func Const[T any](v T) arbitrary.Arbitrary[T] {
	return arbitrary.Fn[T](func(_ *source.Source) arbitrary.Value[T] {
		return arbitrary.NoShrink(v)
	})
}

// Bool generates true or false. True shrinks to false.
func Bool() arbitrary.Arbitrary[bool] {
	return arbitrary.Fn[bool](func(src *source.Source) arbitrary.Value[bool] {
		if src.Int64N(2) == 0 {
			return arbitrary.NoShrink(false)
		}
		return arbitrary.Value[bool]{
			V: true,
			Shrinks: func() arbitrary.Shrink[bool] {
				done := false
				return func() (arbitrary.Value[bool], bool) {
					if done {
						return arbitrary.Value[bool]{}, false
					}
					done = true
					return arbitrary.NoShrink(false), true
				}
			},
		}
	})
}

// Int64 generates a non-negative 63-bit integer, shrinking toward zero.
func Int64() arbitrary.Arbitrary[int64] {
	return arbitrary.Fn[int64](func(src *source.Source) arbitrary.Value[int64] {
		return int64Value(src.Int64(), 0)
	})
}

// Int64Range generates an integer in [low, high], inclusive. Panics if
// low > high.
func Int64Range(low, high int64) arbitrary.Arbitrary[int64] {
	if low > high {
		panic("gen: Int64Range requires low <= high")
	}
	target := low
	if low <= 0 && high >= 0 {
		target = 0
	}
	return arbitrary.Fn[int64](func(src *source.Source) arbitrary.Value[int64] {
		span := high - low // may overflow for extreme ranges; callers keep ranges sane
		v := low + src.Int64N(span+1)
		return int64Value(v, target)
	})
}

// int64Value wraps v with a bisection shrink sequence toward target.
//
// Candidates step from target toward v, halving the remaining distance,
// so the simplest alternative is tried first. Each candidate carries its
// own sequence toward the same target, letting the search descend.
func int64Value(v, target int64) arbitrary.Value[int64] {
	if v == target {
		return arbitrary.NoShrink(v)
	}
	return arbitrary.Value[int64]{
		V: v,
		Shrinks: func() arbitrary.Shrink[int64] {
			// Distances from v, halved each step: v-target, (v-target)/2, ...
			// emitted as candidates v-d ending just short of v itself.
			d := v - target
			return func() (arbitrary.Value[int64], bool) {
				if d == 0 {
					return arbitrary.Value[int64]{}, false
				}
				cand := v - d
				d /= 2
				return int64Value(cand, target), true
			}
		},
	}
}
