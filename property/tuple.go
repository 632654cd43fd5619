package property

import (
	"slices"

	"github.com/roach88/falsify/arbitrary"
)

// tupleValue packages per-position generated values as one tuple value.
//
// The tuple shrinks component-wise: position 0's alternatives are tried
// first with every other position held fixed, then position 1's, and so
// on. Each emitted tuple is itself shrinkable, so the search can keep
// descending into whichever position last moved.
func tupleValue(parts []arbitrary.Value[any]) arbitrary.Value[[]any] {
	vs := make([]any, len(parts))
	for i, p := range parts {
		vs[i] = p.V
	}

	shrinkable := false
	for _, p := range parts {
		if p.Shrinks != nil {
			shrinkable = true
			break
		}
	}

	v := arbitrary.Value[[]any]{V: vs}
	if !shrinkable {
		return v
	}
	v.Shrinks = func() arbitrary.Shrink[[]any] {
		pos := 0
		var inner arbitrary.Shrink[any]
		return func() (arbitrary.Value[[]any], bool) {
			for pos < len(parts) {
				if inner == nil {
					if parts[pos].Shrinks == nil {
						pos++
						continue
					}
					inner = parts[pos].Shrinks()
				}
				cand, ok := inner()
				if !ok {
					inner = nil
					pos++
					continue
				}
				next := slices.Clone(parts)
				next[pos] = cand
				return tupleValue(next), true
			}
			return arbitrary.Value[[]any]{}, false
		}
	}
	return v
}
