// Package rewrite implements the line-oriented translation passes:
// struct/enum lifting, member-function lowering, type-lexicon
// extraction, and public-signature extraction (spec §4.3-§4.6).
package rewrite

import (
	"strconv"
	"strings"

	"github.com/aulang/aulang/internal/csharp"
	"github.com/aulang/aulang/internal/directive"
	"github.com/aulang/aulang/internal/errcode"
	"github.com/aulang/aulang/internal/source"
	"github.com/aulang/aulang/internal/symtab"
)

// maxRewritesPerLine bounds the declaration-extraction/rewrite restart
// loop described in spec §4.5, guaranteeing termination.
const maxRewritesPerLine = 20

// Options configures a single file's translation.
type Options struct {
	Target   directive.Target
	IsRoot   bool // root files abort on a malformed #template; inner files warn
	TypeSets csharp.TypeSets
}

// TranslateFile runs the directive, struct/enum, member, and signature
// passes over every line of file, mutating its streams, variable table,
// symbol flags, and CSharp record list in place. It returns every
// diagnostic encountered; a fatal one (Report.Fatal) means translation of
// this file stopped early.
func TranslateFile(file *source.File, dirs *symtab.Directives, opt Options) []*errcode.Report {
	var reports []*errcode.Report
	gate := directive.NewGate(opt.Target)
	var openAgg *OpenAggregate

	for i, raw := range file.Lines {
		lineNo := i + 1
		pos := errcode.Pos{File: file.Path, Line: lineNo}

		if openAgg != nil {
			if openAgg.Feed(raw) {
				openAgg.Close(file)
				openAgg = nil
			}
			continue
		}

		cls := directive.Classify(raw)
		switch cls.Kind {
		case directive.KindConditional:
			gate.Feed(source.Trim(raw))
			file.Body.Emit(lineNo, raw)
			continue

		case directive.KindCopyright:
			if gate.Active() {
				file.Body.Emit(lineNo, "// Copyright (C) "+cls.Payload)
				holder := cls.Payload
				if at := strings.IndexByte(holder, '<'); at != -1 {
					holder = source.Trim(holder[:at])
				}
				dirs.AddCopyright(holder)
			}
			continue
		case directive.KindLink:
			if gate.Active() {
				dirs.AddLib(cls.Payload)
			}
			continue
		case directive.KindVendor:
			if gate.Active() {
				dirs.AddVendor(cls.Payload)
			}
			continue
		case directive.KindProduct:
			if gate.Active() {
				dirs.SetProduct(cls.Payload)
			}
			continue
		case directive.KindDetail:
			if gate.Active() {
				dirs.SetDetails(cls.Payload)
			}
			continue
		case directive.KindVersion:
			if gate.Active() {
				dirs.SetVersion(cls.Payload)
			}
			continue
		case directive.KindIcon:
			if gate.Active() {
				dirs.SetIcon(cls.Payload)
			}
			continue
		case directive.KindManifest:
			if gate.Active() {
				dirs.SetManifest(cls.Payload)
			}
			continue

		case directive.KindTemplate:
			name, params, ok := parseTemplateDirective(cls.Payload)
			if !ok {
				code := "DIR001"
				fatal := opt.IsRoot
				if !fatal {
					code = "DIR002"
				}
				reports = append(reports, &errcode.Report{
					Schema: "aulang.diag/v1", Code: code, Phase: "parse",
					Message: "malformed #template directive", Pos: &pos, Fatal: fatal,
				})
				if fatal {
					return reports
				}
				continue
			}
			file.TemplateName, file.TemplateParams = name, params
			continue

		case directive.KindPublicDirective:
			rewritten := directive.RewritePublicGlobal(cls.Payload)
			file.Public.Emit(lineNo, rewritten)
			file.Module.Emit(lineNo, rewritten)
			file.Local.Emit(lineNo, rewritten)
			file.Body.Emit(lineNo, rewritten)
			continue

		case directive.KindGlobalDirective:
			rewritten := directive.RewritePublicGlobal(cls.Payload)
			file.Module.Emit(lineNo, rewritten)
			file.Local.Emit(lineNo, rewritten)
			file.Body.Emit(lineNo, rewritten)
			continue

		case directive.KindPreprocessor:
			file.Body.Emit(lineNo, cls.Payload)
			continue
		}

		mods, rest := directive.ParseModifiers(raw)

		if kind, name, ok := DetectAggregateOpen(rest); ok {
			openAgg = NewOpenAggregate(kind, name, mods, lineNo, rest)
			if mods.Public || mods.Opaque {
				file.Flags.Set(name, symtab.ExportedOpaqueStruct)
				if kind == AggEnum {
					file.Flags.Set(name, symtab.ExportedOpaqueEnum)
				}
				if opt.TypeSets.OpaqueStructs != nil && kind == AggStruct {
					opt.TypeSets.OpaqueStructs[name] = true
				}
				if opt.TypeSets.OpaqueEnums != nil && kind == AggEnum {
					opt.TypeSets.OpaqueEnums[name] = true
				}
			}
			continue
		}

		rewritten, rep := processCodeLine(file, rest, mods, lineNo, opt)
		if rep != nil {
			reports = append(reports, rep)
			if rep.Fatal {
				return reports
			}
		}
		if rewritten != "" {
			file.Body.Emit(lineNo, rewritten)
		}
	}

	if openAgg != nil {
		reports = append(reports, errcode.New("rewrite", "STR001",
			errcode.Pos{File: file.Path, Line: openAgg.StartLine},
			"unterminated %s %s", aggKeyword(openAgg.Kind), openAgg.Name))
	}

	finalizeCSharpStructs(file)

	return reports
}

// finalizeCSharpStructs synthesizes StructBegin/StructEnd C# records for
// every exported struct once the whole file has been scanned for its
// new/delete member definitions, and marks those two methods as already
// covered so emitMethodRecord's plain DllImport entry is skipped (spec
// §4.7: "omitting the synthesized new/delete stubs already generated by
// the struct treatment").
func finalizeCSharpStructs(file *source.File) {
	if len(file.ExportedStructs) == 0 {
		return
	}
	exported := make(map[string]bool, len(file.ExportedStructs))
	for _, name := range file.ExportedStructs {
		exported[name] = true
	}
	for i := range file.CSharp {
		r := &file.CSharp[i]
		if r.Kind != csharp.KindMethod {
			continue
		}
		for name := range exported {
			if r.MethodName == name+"_new" || r.MethodName == name+"_delete" {
				r.SkipDllImport = true
			}
		}
	}

	var structRecords []csharp.Record
	for _, name := range file.ExportedStructs {
		hasNew := file.Flags.Has(name+"_new", symtab.DefinedHere)
		hasDelete := file.Flags.Has(name+"_delete", symtab.DefinedHere)
		structRecords = append(structRecords,
			csharp.Record{Kind: csharp.KindStructBegin, StructName: name, HasNew: hasNew, HasDelete: hasDelete},
			csharp.Record{Kind: csharp.KindStructEnd, StructName: name},
		)
	}
	file.CSharp = append(structRecords, file.CSharp...)
}

func aggKeyword(k AggKind) string {
	if k == AggEnum {
		return "enum"
	}
	return "struct"
}

// parseTemplateDirective parses "NAME<T1,T2,...>".
func parseTemplateDirective(payload string) (name string, params []string, ok bool) {
	payload = source.Trim(payload)
	lt := strings.Index(payload, "<")
	if lt < 0 || !strings.HasSuffix(payload, ">") {
		return "", nil, false
	}
	name = source.Trim(payload[:lt])
	if name == "" {
		return "", nil, false
	}
	inner := payload[lt+1 : len(payload)-1]
	for _, p := range strings.Split(inner, ",") {
		p = source.Trim(p)
		if p == "" {
			return "", nil, false
		}
		params = append(params, p)
	}
	return name, params, true
}

func processCodeLine(file *source.File, line string, mods directive.Modifiers, lineNo int, opt Options) (string, *errcode.Report) {
	pos := errcode.Pos{File: file.Path, Line: lineNo}

	RecordDeclarations(line, file.Vars, file.Flags)

	if sig, ok := ParseMemberSignature(line); ok && mods.Custom {
		file.Vars[sig.Receiver+"_"+sig.Method] = symtab.Custom
	}

	for i := 0; i < maxRewritesPerLine; i++ {
		next := RewriteNewCall(line)
		next, rep := RewriteDeleteStmt(next, file.Vars, pos)
		if rep != nil {
			return "", rep
		}
		if next == line {
			break
		}
		line = next
		RecordDeclarations(line, file.Vars, file.Flags)
	}

	for i := 0; i < maxRewritesPerLine; i++ {
		sites := FindCallSites(line)
		if len(sites) == 0 {
			break
		}
		next, rep := RewriteCallSite(line, sites[0], file.Vars, pos)
		if rep != nil {
			return "", rep
		}
		if next == line {
			break
		}
		line = next
	}

	if sig, ok := ParseMemberSignature(line); ok {
		isCtor := sig.Method == "new"
		header, body := RewriteDefinition(line, sig, mods, isCtor)
		if isCtor && !mods.Custom {
			body = insertAllocate(body, sig.Receiver)
		}
		routing := RouteSignature(header, mods)
		applySignatureRouting(file, routing, lineNo)
		file.Flags.Set(sig.Receiver+"_"+sig.Method, symtab.DefinedHere)
		if routing.Exported {
			emitMethodRecord(file, header, routing, opt.TypeSets)
		}
		return body, nil
	}

	if IsFunctionDefinition(line) {
		decl := FunctionSignature(line)
		routing := RouteSignature(decl, mods)
		applySignatureRouting(file, routing, lineNo)
		if routing.Exported {
			emitMethodRecord(file, decl, routing, opt.TypeSets)
		}
		return routing.BodyPrefix + line, nil
	}

	if IsTypedefLine(line) {
		file.Module.Emit(lineNo, line)
		if name, ok := IsFunctionPointerTypedef(line); ok {
			emitDelegateRecord(file, line, name)
		}
		return "", nil
	}

	return line, nil
}

func insertAllocate(body, typeName string) string {
	idx := strings.Index(body, "{")
	if idx < 0 {
		return body
	}
	alloc := "if (!this) this = allocate(sizeof(" + typeName + "));"
	return body[:idx+1] + "\n    " + alloc + body[idx+1:]
}

func applySignatureRouting(file *source.File, routing SignatureRouting, lineNo int) {
	if routing.ModulePostExport != "" {
		file.ModulePost.Emit(lineNo, routing.ModulePostExport)
	}
	if routing.PublicPostImport != "" {
		file.PublicPost.Emit(lineNo, routing.PublicPostImport)
	}
	if routing.LocalDecl != "" {
		file.LocalPost.Emit(lineNo, routing.LocalDecl)
	}
	if routing.ModuleDecl != "" {
		file.Module.Emit(lineNo, routing.ModuleDecl)
	}
}

func emitMethodRecord(file *source.File, decl string, routing SignatureRouting, sets csharp.TypeSets) {
	parsed, ok := ParseDecl(decl)
	if !ok {
		return
	}
	mode := csharp.ModePointerStruct
	if routing.Opaque {
		mode = csharp.ModeOpaque
	}
	retCS, _ := csharp.TranslateArg(parsed.ReturnType, mode, sets)
	if retCS == "" {
		retCS = "void"
	}
	args := make([]csharp.Arg, 0, len(parsed.Params))
	for i, p := range parsed.Params {
		cs, ok := csharp.TranslateArg(p.Type, mode, sets)
		if !ok {
			cs = "IntPtr"
		}
		name := p.Name
		if name == "" {
			name = "arg" + strconv.Itoa(i)
		}
		args = append(args, csharp.Arg{DialectType: p.Type, CSharpType: cs, Name: name})
	}
	file.CSharp = append(file.CSharp, csharp.Record{
		Kind:         csharp.KindMethod,
		MethodName:   parsed.Name,
		EntryPoint:   parsed.Name,
		MethodArgs:   args,
		MethodReturn: retCS,
	})
}

func emitDelegateRecord(file *source.File, line, name string) {
	file.CSharp = append(file.CSharp, csharp.Record{
		Kind:         csharp.KindDelegate,
		DelegateName: name,
		ReturnType:   "IntPtr",
	})
}
