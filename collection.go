package argfmt

import (
	"reflect"
	"sort"
	"strings"
)

// formatList renders a slice or array through the safe path: iteration is
// repeatable and side-effect free by construction.
func formatList(rv reflect.Value, depth int) string {
	if depth >= maxDepth {
		return "[" + Ellipsis + "]"
	}
	n := rv.Len()
	parts := make([]string, 0, min(n, maxItems)+1)
	for i := 0; i < n && i < maxItems; i++ {
		e := rv.Index(i).Interface()
		parts = append(parts, formatValue(e, elementDepth(e, depth)))
	}
	if n > maxItems {
		parts = append(parts, Ellipsis)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatSeq renders a replayable sequence. It pulls at most maxItems+1
// elements: five to render and one to detect overflow.
func formatSeq(s Seqer, depth int) string {
	if depth >= maxDepth {
		return "[" + Ellipsis + "]"
	}
	var parts []string
	for e := range s.Seq() {
		if len(parts) == maxItems {
			parts = append(parts, Ellipsis)
			break
		}
		parts = append(parts, formatValue(e, elementDepth(e, depth)))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatOpaque renders a sequence of unknown repeatability without ever
// iterating it, so a single-use source is not consumed.
func formatOpaque(v any) string {
	return typeName(v) + " [" + Ellipsis + "]"
}

// formatMap renders map entries as pairs, sorted by the formatted key so
// output is deterministic despite Go's randomized map iteration.
func formatMap(rv reflect.Value, depth int) string {
	if depth >= maxDepth {
		return "[" + Ellipsis + "]"
	}
	keys := rv.MapKeys()
	type entry struct {
		key reflect.Value
		fk  string
	}
	entries := make([]entry, len(keys))
	for i, k := range keys {
		entries[i] = entry{key: k, fk: formatValue(k.Interface(), depth+1)}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].fk < entries[j].fk })

	parts := make([]string, 0, min(len(entries), maxItems)+1)
	for i := 0; i < len(entries) && i < maxItems; i++ {
		fv := formatValue(rv.MapIndex(entries[i].key).Interface(), depth+1)
		parts = append(parts, "["+entries[i].fk+"] = "+fv)
	}
	if len(entries) > maxItems {
		parts = append(parts, Ellipsis)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatTuple renders all positions of a fixed-arity container. Elements
// recurse at depth+1, so chained (or self-referential) tuples terminate
// at the depth cap like any other container.
func formatTuple(t Tupler, depth int) string {
	if depth >= maxDepth {
		return "Tuple (" + Ellipsis + ")"
	}
	parts := make([]string, t.Len())
	for i := range parts {
		parts[i] = formatValue(t.At(i), depth+1)
	}
	return "Tuple (" + strings.Join(parts, ", ") + ")"
}

func formatPair(key, value any, depth int) string {
	if depth >= maxDepth {
		return "[" + Ellipsis + "] = " + Ellipsis
	}
	return "[" + formatValue(key, depth+1) + "] = " + formatValue(value, depth+1)
}

// elementDepth descends only for elements that are themselves sequences;
// scalars inside a collection render at the collection's own depth.
func elementDepth(e any, depth int) int {
	if isSequence(e) {
		return depth + 1
	}
	return depth
}

func isSequence(e any) bool {
	if e == nil {
		return false
	}
	if _, ok := e.(Seqer); ok {
		return true
	}
	switch reflect.ValueOf(e).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Chan:
		return true
	}
	return false
}
