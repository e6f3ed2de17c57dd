package argfmt

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Bounds applied to every rendering. They keep diagnostic output readable
// no matter how large or deeply nested the input is.
const (
	maxDepth   = 3  // nested containers/objects beyond this collapse to a placeholder
	maxItems   = 5  // elements rendered per collection
	maxMembers = 5  // members rendered per object
	maxString  = 50 // runes rendered per string
)

// Ellipsis marks output that was truncated by one of the formatter's bounds.
const Ellipsis = "⋯"

// --- Capability Interfaces ---

// Enumer identifies enumeration values. Enum returns the declared constant
// name, or a ", "-separated list of names for flag combinations; the
// formatter rewrites the separators to " | ".
type Enumer interface {
	Enum() string
}

// Rune opts a value into character rendering. A bare rune is an alias of
// int32 and renders as a number.
type Rune rune

// Tracked is a self-describing sequence, typically a pull-based or
// streaming source where generic collection rendering would be unsafe.
// The formatter delegates rendering entirely to FormatStart.
type Tracked interface {
	Seq() iter.Seq[any]
	Close() error
	FormatStart(depth int) string
}

// Seqer exposes element iteration. Iteration is assumed single-use and
// possibly destructive unless the type also implements [Replayable], so a
// plain Seqer is never iterated by the formatter.
type Seqer interface {
	Seq() iter.Seq[any]
}

// Replayable marks a [Seqer] whose iteration is side-effect free and can
// be restarted. Only then does the formatter enumerate elements.
type Replayable interface {
	Replayable()
}

// Tupler is a positional container with a fixed element count. Detection
// is structural: any value with this method set renders as
// "Tuple (e0, e1, ...)".
type Tupler interface {
	Len() int
	At(i int) any
}

// KV is a key/value pair. It renders as "[key] = value" with both halves
// formatted recursively. Map entries render through the same shape.
type KV struct {
	Key   any
	Value any
}

// awaiter matches asynchronous computation handles, context.Context
// included. Checked structurally so future-like types qualify.
type awaiter interface {
	Done() <-chan struct{}
	Err() error
}

// Format renders v as a bounded, human-readable diagnostic string. It is
// total: it returns a string for every input and never panics.
func Format(v any) string {
	return FormatDepth(v, 1)
}

// FormatDepth is [Format] starting at an explicit recursion depth. It is
// intended for [Tracked] implementations that re-enter the formatter from
// FormatStart. Depth 1 is the outermost level; at depth 3 containers and
// objects collapse to placeholders.
func FormatDepth(v any, depth int) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("%s was thrown formatting an object of type %q", panicKind(r), typeName(v))
		}
	}()
	return formatValue(v, depth)
}

// formatValue is the dispatcher. Classification is ordered and
// first-match-wins; the order matters because the categories overlap
// (a type can be both a Seqer and a Tupler).
func formatValue(v any, depth int) string {
	if v == nil {
		return "null"
	}

	switch x := v.(type) {
	case reflect.Type:
		return "typeof(" + FormatTypeName(x, true) + ")"
	case Enumer:
		return strings.ReplaceAll(x.Enum(), ", ", " | ")
	case Rune:
		return formatRune(rune(x))
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case string:
		return formatString(x)
	case Tracked:
		return x.FormatStart(depth)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return "null"
		}
	}

	switch rv.Kind() {
	case reflect.Map:
		return formatMap(rv, depth)
	case reflect.Slice, reflect.Array:
		return formatList(rv, depth)
	case reflect.Chan:
		// Receiving would consume; channels always take the opaque path.
		return formatOpaque(v)
	}

	if s, ok := v.(Seqer); ok {
		if _, ok := v.(Replayable); ok {
			return formatSeq(s, depth)
		}
		return formatOpaque(v)
	}

	if tup, ok := v.(Tupler); ok {
		return formatTuple(tup, depth)
	}

	if kv, ok := v.(KV); ok {
		return formatPair(kv.Key, kv.Value, depth)
	}

	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		// A named scalar type with its own display conversion keeps it:
		// time.Duration renders "5ns", not "5".
		if s, ok := v.(fmt.Stringer); ok {
			return s.String()
		}
		return formatScalar(rv)
	}

	if aw, ok := v.(awaiter); ok {
		return formatAwaiter(aw)
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	if err, ok := v.(error); ok {
		return err.Error()
	}

	if rv.Kind() == reflect.Pointer {
		return formatValue(rv.Elem().Interface(), depth)
	}
	if rv.Kind() == reflect.Struct {
		return formatObject(v, rv, depth)
	}

	return typeName(v)
}

func formatScalar(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.String:
		return formatString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 64)
	default:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 128)
	}
}

func formatAwaiter(v awaiter) string {
	status := "running"
	select {
	case <-v.Done():
		switch err := v.Err(); {
		case err == nil:
			status = "completed"
		case errors.Is(err, context.Canceled):
			status = "canceled"
		case errors.Is(err, context.DeadlineExceeded):
			status = "deadline exceeded"
		default:
			status = "faulted"
		}
	default:
	}
	return typeName(v) + " { Status = " + status + " }"
}

// typeName is the display name of v's dynamic type.
func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	return FormatTypeName(t, false)
}
