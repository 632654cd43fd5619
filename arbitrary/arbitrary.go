// Package arbitrary defines the generator and shrink contracts the engine
// consumes.
//
// An Arbitrary produces a Value: the generated value itself plus a lazy,
// possibly infinite sequence of strictly simpler alternatives. The engine
// never inspects what "simpler" means for a domain; it only walks the
// sequence, always under a caller-imposed step bound.
package arbitrary

import "github.com/roach88/falsify/source"

// Shrink is a stateful pull iterator over progressively simpler values.
//
// Each call returns the next candidate and true, or a zero Value and false
// once the sequence is exhausted. The sequence may be infinite; callers
// bound how far they walk it.
type Shrink[T any] func() (Value[T], bool)

// Value couples a generated value with its shrink alternatives.
//
// Shrinks, when non-nil, returns a fresh iterator each call, so a Value can
// be re-shrunk any number of times (replay depends on this). A nil Shrinks
// means the value is terminal.
type Value[T any] struct {
	V       T
	Shrinks func() Shrink[T]
}

// NoShrink wraps v as a terminal Value.
func NoShrink[T any](v T) Value[T] {
	return Value[T]{V: v}
}

// Arbitrary generates values of type T from a random source.
type Arbitrary[T any] interface {
	Generate(src *source.Source) Value[T]
}

// Fn adapts a plain generation function to the Arbitrary interface.
type Fn[T any] func(src *source.Source) Value[T]

func (f Fn[T]) Generate(src *source.Source) Value[T] {
	return f(src)
}

// Untyped is the erased form the property composer works with.
type Untyped = Arbitrary[any]

// Erase adapts a typed Arbitrary to the untyped form, preserving the
// shrink sequence.
func Erase[T any](arb Arbitrary[T]) Untyped {
	return Fn[any](func(src *source.Source) Value[any] {
		return eraseValue(arb.Generate(src))
	})
}

func eraseValue[T any](v Value[T]) Value[any] {
	out := Value[any]{V: v.V}
	if v.Shrinks != nil {
		shrinks := v.Shrinks
		out.Shrinks = func() Shrink[any] {
			it := shrinks()
			return func() (Value[any], bool) {
				next, ok := it()
				if !ok {
					return Value[any]{}, false
				}
				return eraseValue(next), true
			}
		}
	}
	return out
}
