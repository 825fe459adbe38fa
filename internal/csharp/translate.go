package csharp

import "strings"

var primitiveTable = map[string]string{
	"u8":  "byte",
	"i8":  "sbyte",
	"u16": "ushort",
	"i16": "short",
	"u32": "uint",
	"i32": "int",
	"u64": "ulong",
	"i64": "long",
	"f32": "float",
	"f64": "double",
	"f16": "ushort",
}

// OpaqueStructs and OpaqueEnums are consulted by TranslateArg to pick the
// EXPORTED_OPAQUE_STRUCT / EXPORTED_OPAQUE_ENUM rows of the translation
// table (spec §4.7).
type TypeSets struct {
	OpaqueStructs map[string]bool
	OpaqueEnums   map[string]bool
}

// TranslateArg maps a dialect argument type to its C# equivalent per the
// table in spec §4.7. mode selects between the pointer-of-struct and
// opaque argument-translation modes used for public vs. opaque exports.
func TranslateArg(dialectType string, mode ArgMode, sets TypeSets) (string, bool) {
	t := strings.TrimSpace(dialectType)

	if cs, ok := primitiveTable[t]; ok {
		return cs, true
	}
	switch t {
	case "void*":
		return "IntPtr", true
	case "const char*":
		return "[MarshalAs(UnmanagedType.LPStr)] string", true
	case "char*":
		return "byte*", true
	}

	if strings.HasSuffix(t, "*") {
		base := strings.TrimSuffix(t, "*")
		if sets.OpaqueStructs[base] {
			if mode == ModeOpaque {
				return base + "*", true
			}
			return "unsafe " + base + "*", true
		}
		return "ref " + base, true
	}

	if sets.OpaqueEnums[t] {
		return "uint", true
	}

	return "", false
}
