// Package testutil provides deterministic arbitrary.Value constructors for
// engine tests.
//
// Production shrink sequences come from real arbitraries; tests instead
// need hand-built values whose shrink behavior is fully scripted, so that
// shrink searches, execution forests and replayed paths can be asserted
// exactly.
package testutil

import (
	"github.com/roach88/falsify/arbitrary"
	"github.com/roach88/falsify/source"
)

// Leaf builds a terminal value with no shrink alternatives.
func Leaf(v any) arbitrary.Value[any] {
	return arbitrary.NoShrink(v)
}

// Node builds a value whose shrink sequence yields exactly the given
// children, in order. Each call to Shrinks returns a fresh iterator.
func Node(v any, children ...arbitrary.Value[any]) arbitrary.Value[any] {
	return arbitrary.Value[any]{
		V: v,
		Shrinks: func() arbitrary.Shrink[any] {
			i := 0
			return func() (arbitrary.Value[any], bool) {
				if i >= len(children) {
					return arbitrary.Value[any]{}, false
				}
				next := children[i]
				i++
				return next, true
			}
		},
	}
}

// Chain builds a value that shrinks through the given values one step at a
// time: v shrinks to vs[0], which shrinks to vs[1], and so on.
func Chain(v any, vs ...any) arbitrary.Value[any] {
	if len(vs) == 0 {
		return Leaf(v)
	}
	return Node(v, Chain(vs[0], vs[1:]...))
}

// Script is an Arbitrary that returns pre-built values in order, ignoring
// the random source. It panics when exhausted; tests size their runs to
// the script.
type Script struct {
	values []arbitrary.Value[any]
	next   int
}

// NewScript builds a Script over the given values.
func NewScript(values ...arbitrary.Value[any]) *Script {
	return &Script{values: values}
}

func (s *Script) Generate(_ *source.Source) arbitrary.Value[any] {
	if s.next >= len(s.values) {
		panic("testutil: script exhausted")
	}
	v := s.values[s.next]
	s.next++
	return v
}

// Reset rewinds the script so the same values replay from the start.
func (s *Script) Reset() {
	s.next = 0
}
