// Package stringify renders arbitrary values as stable, single-purpose
// text for reports.
//
// The same formatter is used for counterexamples, execution-summary nodes
// and flattened failure lists, so all report surfaces agree on how a value
// reads. Strings are NFC-normalized before quoting so that visually equal
// inputs render byte-identically; this keeps golden comparisons of report
// text stable across producers.
package stringify

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// maxDepth bounds recursion into nested containers. Cyclic or exotic
// values degrade to a summary form rather than failing.
const maxDepth = 8

// Any renders v as text. Never panics.
func Any(v any) (s string) {
	defer func() {
		// Formatting must stay total even when an exotic value misbehaves
		// under reflection.
		if recover() != nil {
			s = fmt.Sprintf("%T(unprintable)", v)
		}
	}()
	return render(reflect.ValueOf(v), 0)
}

func render(rv reflect.Value, depth int) string {
	if !rv.IsValid() {
		return "<nil>"
	}
	if depth > maxDepth {
		return "..."
	}
	switch rv.Kind() {
	case reflect.String:
		return fmt.Sprintf("%q", norm.NFC.String(rv.String()))
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "<nil>"
		}
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = render(rv.Index(i), depth+1)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case reflect.Map:
		if rv.IsNil() {
			return "<nil>"
		}
		keys := rv.MapKeys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = render(k, depth+1) + ":" + render(rv.MapIndex(k), depth+1)
		}
		sort.Strings(parts)
		return "{" + strings.Join(parts, ",") + "}"
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "<nil>"
		}
		return render(rv.Elem(), depth+1)
	case reflect.Struct:
		t := rv.Type()
		parts := make([]string, 0, rv.NumField())
		for i := 0; i < rv.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			parts = append(parts, t.Field(i).Name+":"+render(rv.Field(i), depth+1))
		}
		return t.Name() + "{" + strings.Join(parts, ",") + "}"
	default:
		return fmt.Sprintf("%v", rv.Interface())
	}
}

// Tuple renders a generated argument tuple. A single-element tuple renders
// as its sole value; wider tuples render bracketed in positional order.
func Tuple(args []any) string {
	if len(args) == 1 {
		return Any(args[0])
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Any(a)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
