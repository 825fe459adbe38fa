package assemble

import (
	"strings"

	"github.com/aulang/aulang/internal/csharp"
	"github.com/aulang/aulang/internal/errcode"
	"github.com/aulang/aulang/internal/source"
)

// Options configures one file's assembly.
type Options struct {
	Pretty       bool
	StaticPrefix string // embedded prefix header content (spec §6)
	Lib          string // library name baked into the C# façade's DllImport entries
}

// Outputs is the fully assembled text for one translated file.
type Outputs struct {
	IntermediateC      string // <base>.au.c
	IntermediateHeader string // <base>.au.h (module header)
	PublicHeader       string // <base>.dll.h (only for exported files)
	CSharpFacade       string // <base>.dll.cs (only for files with CSharp records)
}

// Assemble composes a file's four header/body streams plus its C#
// surface into the final output text, per spec §4.9.
func Assemble(file *source.File, peerIncludes []string, opt Options) (Outputs, *errcode.Report) {
	guard := IncludeGuard(file.Path)

	moduleBody := PostProcessHeader(append(file.Module.Lines(), file.ModulePost.Lines()...))
	moduleHeader := strings.Join(WrapHeaderGuard(guard, moduleBody), "\n")

	var publicHeader string
	publicLines := append(append([]string{}, file.Public.Lines()...), file.PublicPost.Lines()...)
	if len(publicLines) > 0 {
		publicGuard := IncludeGuard(file.Path + ".dll")
		publicHeader = strings.Join(WrapHeaderGuard(publicGuard, PostProcessHeader(publicLines)), "\n")
	}

	var body []string
	body = append(body, strings.Split(opt.StaticPrefix, "\n")...)
	for _, peer := range peerIncludes {
		body = append(body, "#include \""+peer+".au.h\"")
	}
	body = append(body, file.Local.Lines()...)
	body = append(body, file.LocalPost.Lines()...)
	body = append(body, InterleaveLines(file.Path, file.Body.Emissions, opt.Pretty)...)

	var csharpText string
	if len(file.CSharp) > 0 {
		lib := opt.Lib
		if lib == "" {
			lib = strings.TrimSuffix(baseName(file.Path), ".au")
		}
		csharpText = strings.Join(csharp.Lower(file.CSharp, lib), "\n")
	}

	return Outputs{
		IntermediateC:      strings.Join(body, "\n"),
		IntermediateHeader: moduleHeader,
		PublicHeader:       publicHeader,
		CSharpFacade:       csharpText,
	}, nil
}

func baseName(path string) string {
	slash := strings.LastIndexAny(path, "/\\")
	return path[slash+1:]
}
