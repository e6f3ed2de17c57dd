package argfmt

import (
	"reflect"
	"strconv"
)

// aliases is the closed set of predeclared scalar spellings. Named types
// over the same kinds keep their own names.
var aliases = map[reflect.Kind]string{
	reflect.Bool:       "bool",
	reflect.Int:        "int",
	reflect.Int8:       "int8",
	reflect.Int16:      "int16",
	reflect.Int32:      "int32",
	reflect.Int64:      "int64",
	reflect.Uint:       "uint",
	reflect.Uint8:      "uint8",
	reflect.Uint16:     "uint16",
	reflect.Uint32:     "uint32",
	reflect.Uint64:     "uint64",
	reflect.Uintptr:    "uintptr",
	reflect.Float32:    "float32",
	reflect.Float64:    "float64",
	reflect.Complex64:  "complex64",
	reflect.Complex128: "complex128",
	reflect.String:     "string",
}

// FormatTypeName renders a type's display name. Pointer and unnamed
// slice/array shells are stripped first and reattached as Go-style
// prefixes (*, [], [N]). The element resolves through the primitive alias
// table, then by short or fully package-path-qualified name depending on
// full; unnamed composites use reflect's spelling. Generic instantiations
// keep reflect's bracketed argument list.
func FormatTypeName(t reflect.Type, full bool) string {
	if t == nil {
		return "nil"
	}
	prefix := ""
shells:
	for {
		switch {
		case t.Kind() == reflect.Pointer:
			prefix += "*"
			t = t.Elem()
		case t.Kind() == reflect.Slice && t.Name() == "":
			prefix += "[]"
			t = t.Elem()
		case t.Kind() == reflect.Array && t.Name() == "":
			prefix += "[" + strconv.Itoa(t.Len()) + "]"
			t = t.Elem()
		default:
			break shells
		}
	}
	if alias, ok := aliases[t.Kind()]; ok && t.PkgPath() == "" && t.Name() != "" {
		return prefix + alias
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return prefix + t.String()
	}
	if full {
		return prefix + t.PkgPath() + "." + t.Name()
	}
	return prefix + t.String()
}
