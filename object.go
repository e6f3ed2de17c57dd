package argfmt

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync/atomic"
)

// Member is a named accessor discovered on a composite value. Get is
// invoked inside a per-member failure boundary, so a panicking accessor
// spoils only its own slot.
type Member struct {
	Name string
	Get  func() any
}

// Described supplies computed members for a value. Described members are
// merged with the value's exported fields and sorted by name.
type Described interface {
	Describe() []Member
}

type fieldMeta struct {
	name  string
	index int
}

// cache is a copy-on-write map behind an atomic pointer. Reads are
// lock-free; writes copy the whole map. Losing a racing write only costs
// a recomputation.
type cache[K comparable, V any] struct {
	ptr atomic.Pointer[map[K]V]
}

func makeCache[K comparable, V any]() *cache[K, V] {
	c := &cache[K, V]{}
	m := make(map[K]V)
	c.ptr.Store(&m)
	return c
}

func (c *cache[K, V]) get(k K) (V, bool) {
	v, ok := (*c.ptr.Load())[k]
	return v, ok
}

func (c *cache[K, V]) set(k K, v V) {
	old := *c.ptr.Load()
	next := make(map[K]V, len(old)+1)
	for k, v := range old {
		next[k] = v
	}
	next[k] = v
	c.ptr.Store(&next)
}

var fieldCache = makeCache[reflect.Type, []fieldMeta]()

func structFields(t reflect.Type) []fieldMeta {
	if fm, ok := fieldCache.get(t); ok {
		return fm
	}
	var fm []fieldMeta
	for i := range t.NumField() {
		if f := t.Field(i); f.IsExported() {
			fm = append(fm, fieldMeta{name: f.Name, index: i})
		}
	}
	sort.Slice(fm, func(i, j int) bool { return fm[i].name < fm[j].name })
	fieldCache.set(t, fm)
	return fm
}

// formatObject renders a composite value's members as
// "<TypeName> { A = ..., B = ... }". Unnamed struct types omit the
// type-name prefix.
func formatObject(v any, rv reflect.Value, depth int) string {
	t := rv.Type()
	prefix := ""
	if t.Name() != "" {
		prefix = FormatTypeName(t, false) + " "
	}
	if depth >= maxDepth {
		return prefix + "{ " + Ellipsis + " }"
	}

	members := objectMembers(v, rv, t)
	if len(members) == 0 {
		return prefix + "{ }"
	}

	parts := make([]string, 0, min(len(members), maxMembers)+1)
	for i := 0; i < len(members) && i < maxMembers; i++ {
		parts = append(parts, members[i].Name+" = "+renderMember(members[i], depth))
	}
	if len(members) > maxMembers {
		parts = append(parts, Ellipsis)
	}
	return prefix + "{ " + strings.Join(parts, ", ") + " }"
}

// objectMembers merges exported fields with Described members, sorted by
// name. The sort is stable so a field and a described member sharing a
// name keep a fixed relative order.
func objectMembers(v any, rv reflect.Value, t reflect.Type) []Member {
	fm := structFields(t)
	members := make([]Member, 0, len(fm))
	for _, f := range fm {
		members = append(members, Member{
			Name: f.name,
			Get: func() any {
				return rv.Field(f.index).Interface()
			},
		})
	}
	if d, ok := v.(Described); ok {
		members = append(members, d.Describe()...)
		sort.SliceStable(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	}
	return members
}

// renderMember invokes one accessor inside its own failure boundary. A
// panic is terminal only for this member; siblings keep rendering.
func renderMember(m Member, depth int) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = "(throws " + panicKind(r) + ")"
		}
	}()
	return formatValue(m.Get(), depth+1)
}

// panicKind names the kind of a recovered panic value: the display name
// of its type, unwrapped to the innermost cause for wrapped errors.
func panicKind(r any) string {
	if err, ok := r.(error); ok {
		for {
			next := errors.Unwrap(err)
			if next == nil {
				break
			}
			err = next
		}
		return FormatTypeName(reflect.TypeOf(err), false)
	}
	t := reflect.TypeOf(r)
	if t == nil {
		return "nil"
	}
	return FormatTypeName(t, false)
}
