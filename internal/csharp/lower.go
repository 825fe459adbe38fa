package csharp

import (
	"fmt"
	"strings"
)

// Lower renders a file's accumulated C# emission records to text in a
// single final pass, matching spec §9's "tagged emission records ...
// lowered to text in a single final pass" design note.
func Lower(records []Record, lib string) []string {
	var out []string
	for i := 0; i < len(records); i++ {
		r := records[i]
		switch r.Kind {
		case KindRaw:
			out = append(out, r.Text)

		case KindEnum:
			if r.EnumOpaque {
				out = append(out, fmt.Sprintf("public enum %s : uint {}", r.EnumName))
			} else {
				out = append(out, fmt.Sprintf("public enum %s {}", r.EnumName))
			}

		case KindStructBegin:
			out = append(out, "[StructLayout(LayoutKind.Sequential)]")
			out = append(out, fmt.Sprintf("public class %s {", r.StructName))
			out = append(out, "    internal IntPtr handle;")
			if r.HasNew {
				out = append(out, lowerDllImport(lib, r.StructName+"_new", "IntPtr", []Arg{{CSharpType: "IntPtr", Name: "self"}})...)
				out = append(out, fmt.Sprintf("    public %s() { handle = %s_new(IntPtr.Zero); }", r.StructName, r.StructName))
			}
			if r.HasDelete {
				entry := r.DeleteNative
				if entry == "" {
					entry = r.StructName + "_delete"
				}
				out = append(out, lowerDllImport(lib, entry, "void", []Arg{{CSharpType: "IntPtr", Name: "h"}})...)
				out = append(out, fmt.Sprintf("    ~%s() { %s(handle); }", r.StructName, entry))
			}

		case KindStructEnd:
			out = append(out, "}")

		case KindDelegate:
			out = append(out, fmt.Sprintf("public delegate %s %s(%s);", r.ReturnType, r.DelegateName, joinArgs(r.DelegateArgs)))

		case KindMethod:
			if r.SkipDllImport {
				continue
			}
			entry := r.EntryPoint
			if entry == "" {
				entry = r.MethodName
			}
			libName := r.Lib
			if libName == "" {
				libName = lib
			}
			out = append(out, fmt.Sprintf("[DllImport(%q, EntryPoint=%q)]", libName, entry))
			out = append(out, fmt.Sprintf("extern public static %s %s(%s);", r.MethodReturn, r.MethodName, joinArgs(r.MethodArgs)))
		}
	}
	return out
}

func lowerDllImport(lib, entry, ret string, args []Arg) []string {
	return []string{
		fmt.Sprintf("    [DllImport(%q, EntryPoint=%q)]", lib, entry),
		fmt.Sprintf("    extern static %s %s(%s);", ret, entry, joinArgs(args)),
	}
}

func joinArgs(args []Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if a.Name == "" {
			parts[i] = a.CSharpType
		} else {
			parts[i] = a.CSharpType + " " + a.Name
		}
	}
	return strings.Join(parts, ", ")
}
