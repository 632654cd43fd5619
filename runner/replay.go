package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/falsify/arbitrary"
	"github.com/roach88/falsify/property"
	"github.com/roach88/falsify/source"
	"github.com/roach88/falsify/stringify"
)

// FormatPath encodes a shrink path as "t:i1:i2:...": the zero-based trial
// index followed by the candidate index chosen at each shrink level.
func FormatPath(indices []int) string {
	parts := make([]string, len(indices))
	for i, n := range indices {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ":")
}

// ParsePath decodes a path produced by FormatPath.
func ParsePath(path string) ([]int, error) {
	if path == "" {
		return nil, fmt.Errorf("empty counterexample path")
	}
	parts := strings.Split(path, ":")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid counterexample path %q: segment %q", path, p)
		}
		out[i] = n
	}
	return out, nil
}

// Replay regenerates the exact value a seed and counterexample path point
// at: it re-draws trials 0..t from a fresh source seeded with seed (so the
// random sequence matches the original run), then follows the recorded
// candidate index at each shrink level.
//
// Replay fails when the path reaches past a value's shrink sequence, which
// happens when the property's generators changed since the path was
// recorded.
func Replay(prop property.Property, seed int64, path string) (arbitrary.Value[[]any], error) {
	indices, err := ParsePath(path)
	if err != nil {
		return arbitrary.Value[[]any]{}, err
	}

	src := source.New(seed)
	var val arbitrary.Value[[]any]
	for t := 0; t <= indices[0]; t++ {
		val = prop.Generate(src)
	}

	for level, want := range indices[1:] {
		if val.Shrinks == nil {
			return arbitrary.Value[[]any]{}, fmt.Errorf(
				"path %q: value at level %d has no shrink alternatives", path, level)
		}
		it := val.Shrinks()
		var cand arbitrary.Value[[]any]
		ok := false
		for k := 0; k <= want; k++ {
			cand, ok = it()
			if !ok {
				return arbitrary.Value[[]any]{}, fmt.Errorf(
					"path %q: shrink sequence at level %d ends before index %d", path, level, want)
			}
		}
		val = cand
	}
	return val, nil
}

func renderTuple(args []any) string {
	return stringify.Tuple(args)
}
