// Package argfmt renders arbitrary runtime values into bounded,
// human-readable diagnostic strings for test-failure messages.
//
// The central entry point is [Format], which accepts any value and always
// returns a string: it never panics, regardless of input. Output size is
// bounded no matter how large or deeply nested the value is, and sources
// that may not be safely iterable are never consumed. [Format] is invoked
// on the failure path only and is not tuned for throughput.
//
// # Bounds
//
// Four fixed bounds keep diagnostics readable:
//
//   - nesting collapses to a placeholder at depth 3
//   - collections render at most 5 elements
//   - objects render at most 5 members
//   - strings render at most 50 runes
//
// Truncated output carries the [Ellipsis] marker: a long slice renders as
// "[1, 2, 3, 4, 5, ⋯]", a deeply nested container as "[⋯]", a deeply
// nested object as "T { ⋯ }".
//
// # Classification
//
// Values classify by capability first, then by reflection. The checks are
// ordered and first-match-wins, because the categories overlap:
//
//   - nil → "null"
//   - [reflect.Type] → typeof(...)
//   - [Enumer] → constant names with " | " between flags
//   - [Rune] → quoted character ('a', '\t') or hex fallback
//   - floats → shortest round-trip form
//   - [time.Time] → RFC 3339 with nanoseconds
//   - strings → quoted, escaped, truncated
//   - [Tracked] → delegated to the value's own FormatStart
//   - maps, slices, arrays → bounded element rendering
//   - [Seqer] without [Replayable], and channels → "<T> [⋯]", never iterated
//   - [Tupler] → "Tuple (e0, e1, ...)"
//   - remaining scalars → strconv rendering; [KV] → "[key] = value"
//   - async handles (Done/Err, e.g. [context.Context]) → "<T> { Status = ... }"
//   - [fmt.Stringer] and error → their own conversion
//   - structs → reflected members, sorted by name
//
// # Sequence Safety
//
// Iteration is assumed destructive unless a type says otherwise. A type
// implementing [Seqer] alone renders as "<TypeName> [⋯]" without a single
// element being pulled; adding the [Replayable] marker opts into element
// rendering, which pulls at most six elements. [Tracked] sources bypass
// generic rendering entirely and describe themselves.
//
// # Failure Isolation
//
// Failures are contained at two granularities. A panicking member
// accessor renders that member as "(throws <Kind>)" while its siblings
// render normally. Anything else panicking during a call (a Stringer,
// say) is caught once and the whole call renders as a placeholder naming
// the panic kind and the value's type. No error ever reaches the caller.
//
// # Type Names
//
// [FormatTypeName] renders display names for types without a value in
// hand, used by message builders for "expected a <T>" phrasing. [Format]
// uses it for typeof(...), opaque sequences, and object prefixes.
package argfmt
