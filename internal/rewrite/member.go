package rewrite

import (
	"strings"

	"github.com/aulang/aulang/internal/directive"
	"github.com/aulang/aulang/internal/errcode"
	"github.com/aulang/aulang/internal/source"
	"github.com/aulang/aulang/internal/symtab"
)

// IsMemberDefinition reports whether a code line declares a member
// function via Type::method(...) syntax (spec §4.4).
func IsMemberDefinition(line string) bool {
	return strings.Contains(line, "::")
}

// MemberSignature is a parsed "Type::method(args) { ... }" definition.
type MemberSignature struct {
	Receiver string
	Method   string
	ArgsOpen int // index of the "(" following the method name
}

// ParseMemberSignature extracts the receiver type preceding "::" and the
// method name between "::" and the next "(".
func ParseMemberSignature(line string) (MemberSignature, bool) {
	idx := strings.Index(line, "::")
	if idx < 0 {
		return MemberSignature{}, false
	}
	receiver := source.ReadIdentifierBackwards(line, idx)
	if receiver == "" {
		return MemberSignature{}, false
	}
	afterColons := idx + 2
	parenIdx := strings.Index(line[afterColons:], "(")
	if parenIdx < 0 {
		return MemberSignature{}, false
	}
	method := source.Trim(line[afterColons : afterColons+parenIdx])
	if method == "" {
		return MemberSignature{}, false
	}
	return MemberSignature{Receiver: receiver, Method: method, ArgsOpen: afterColons + parenIdx}, true
}

// RewriteDefinition rewrites a member-function signature into a flat C
// function, per the receiver-parameter table in spec §4.4. header is the
// forward-declaration form; body is the in-source definition form.
func RewriteDefinition(line string, sig MemberSignature, mods directive.Modifiers, isConstructor bool) (header, body string) {
	before := line[:strings.Index(line, "::")]
	retType := source.Trim(strings.TrimSuffix(before, sig.Receiver))
	argsAndRest := line[sig.ArgsOpen:]

	funcName := sig.Receiver + "_" + sig.Method

	var headerParam, bodyParam string
	switch {
	case mods.Static:
		headerParam, bodyParam = "", ""
	case mods.Const:
		headerParam = "const " + sig.Receiver + "* this"
		bodyParam = "const " + sig.Receiver + "* restrict this"
	default:
		headerParam = sig.Receiver + "* this"
		if isConstructor {
			bodyParam = sig.Receiver + "* this"
		} else {
			bodyParam = sig.Receiver + "* restrict this"
		}
	}

	header = retType + " " + funcName + withFirstParam(argsAndRest, headerParam, true)
	body = retType + " " + funcName + withFirstParam(argsAndRest, bodyParam, false)
	return header, body
}

// withFirstParam inserts param as the first argument of a "(args) { ... }"
// or "(args);" tail, producing a ";"-terminated header form or leaving the
// body tail (brace and all) untouched for the definition form.
func withFirstParam(tail, param string, asHeader bool) string {
	closeIdx := matchingParen(tail)
	if closeIdx < 0 {
		return tail
	}
	args := source.Trim(tail[1:closeIdx])
	var combined string
	switch {
	case param == "" && args == "":
		combined = ""
	case param == "":
		combined = args
	case args == "":
		combined = param
	default:
		combined = param + ", " + args
	}
	rest := tail[closeIdx+1:]
	if asHeader {
		return "(" + combined + ");"
	}
	return "(" + combined + ")" + rest
}

// matchingParen returns the index of the "(" tail's matching ")".
func matchingParen(tail string) int {
	if len(tail) == 0 || tail[0] != '(' {
		return -1
	}
	depth := 0
	for i, c := range tail {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// RewriteNewCall rewrites "new Type(args)" to "Type_new(0, args)" or
// "Type_new(0)".
func RewriteNewCall(line string) string {
	for {
		idx := strings.Index(line, "new ")
		if idx < 0 {
			return line
		}
		rest := line[idx+4:]
		typeName := source.ReadIdentifierForwards(rest, 0)
		if typeName == "" {
			return line
		}
		afterType := rest[len(typeName):]
		trimmedAfter := strings.TrimLeft(afterType, " \t")
		if !strings.HasPrefix(trimmedAfter, "(") {
			return line
		}
		closeIdx := matchingParen(trimmedAfter)
		if closeIdx < 0 {
			return line
		}
		args := source.Trim(trimmedAfter[1:closeIdx])
		var replacement string
		if args == "" {
			replacement = typeName + "_new(0)"
		} else {
			replacement = typeName + "_new(0, " + args + ")"
		}
		consumedLen := len(afterType) - len(trimmedAfter) + (closeIdx + 1)
		line = line[:idx] + replacement + rest[len(typeName)+consumedLen:]
	}
}

// RewriteDeleteStmt rewrites "delete obj;" per the variable's canonical
// type: "T_delete(&obj);" for value types, "T_delete(obj); free(obj);"
// for pointer types (unless T_delete is flagged custom, which suppresses
// the free).
func RewriteDeleteStmt(line string, vars symtab.VariableTypes, pos errcode.Pos) (string, *errcode.Report) {
	idx := strings.Index(line, "delete ")
	if idx < 0 {
		return line, nil
	}
	rest := line[idx+len("delete "):]
	semi := strings.Index(rest, ";")
	if semi < 0 {
		return line, nil
	}
	obj := source.Trim(rest[:semi])
	tail := rest[semi+1:]

	canonical, known := vars[obj]
	if !known || canonical == symtab.Unknown {
		return line, errcode.New("rewrite", "MEM003", pos, "unknown type for delete target %q", obj)
	}

	baseType := canonical
	isPointer := symtab.IsPointer(canonical)
	if isPointer {
		baseType = symtab.BaseType(canonical)
	}
	deleteName := baseType + "_delete"
	custom := vars[deleteName] == symtab.Custom

	var replacement string
	if isPointer {
		if custom {
			replacement = deleteName + "(" + obj + ");"
		} else {
			replacement = deleteName + "(" + obj + "); free(" + obj + ");"
		}
	} else {
		replacement = deleteName + "(&" + obj + ");"
	}

	return line[:idx] + replacement + tail, nil
}

// CallSite is a detected obj.method(...) / obj->method(...) call.
type CallSite struct {
	OperatorIsArrow bool
	Receiver        string
	Method          string
	ParenStart      int
	ParenEnd        int
}

// FindCallSites scans every "(" in a line looking back for the nearest
// "->" or "." (tie-broken to the rightmost), per spec §4.4.
func FindCallSites(line string) []CallSite {
	var sites []CallSite
	for i := 0; i < len(line); i++ {
		if line[i] != '(' {
			continue
		}
		methodEnd := i
		method := source.ReadIdentifierBackwards(line, methodEnd)
		if method == "" {
			continue
		}
		methodStart := methodEnd - trailingSpaces(line[:methodEnd]) - len(method)
		opEnd := methodStart
		arrowIdx := strings.LastIndex(line[:opEnd], "->")
		dotIdx := strings.LastIndex(line[:opEnd], ".")
		isArrow := false
		opIdx := -1
		switch {
		case arrowIdx < 0 && dotIdx < 0:
			continue
		case arrowIdx >= dotIdx:
			opIdx, isArrow = arrowIdx, true
		default:
			opIdx, isArrow = dotIdx, false
		}
		opLen := 1
		if isArrow {
			opLen = 2
		}
		receiver := source.ReadIdentifierBackwards(line, opIdx)
		if receiver == "" {
			continue
		}
		closeIdx := matchingParen(line[i:])
		if closeIdx < 0 {
			continue
		}
		sites = append(sites, CallSite{
			OperatorIsArrow: isArrow,
			Receiver:        receiver,
			Method:          method,
			ParenStart:      i,
			ParenEnd:        i + closeIdx,
		})
		_ = opLen
	}
	return sites
}

func trailingSpaces(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && (s[i] == ' ' || s[i] == '\t'); i-- {
		n++
	}
	return n
}

// RewriteCallSite rewrites one call site to Type_method(receiver, ...),
// validating that the operator (-> vs .) agrees with the receiver's
// pointer-ness.
func RewriteCallSite(line string, cs CallSite, vars symtab.VariableTypes, pos errcode.Pos) (string, *errcode.Report) {
	canonical, known := vars[cs.Receiver]
	if !known {
		return line, errcode.New("rewrite", "MEM001", pos, "undeclared identifier %q used as member-call receiver", cs.Receiver)
	}
	isPointer := symtab.IsPointer(canonical)

	if isPointer && !cs.OperatorIsArrow {
		return line, errcode.New("rewrite", "MEM002", pos, "%q is a pointer, use -> for member calls", cs.Receiver)
	}
	if !isPointer && cs.OperatorIsArrow {
		return line, errcode.New("rewrite", "MEM002", pos, "%q is not a pointer, use . for member calls", cs.Receiver)
	}

	baseType := canonical
	if isPointer {
		baseType = symtab.BaseType(canonical)
	}
	funcName := baseType + "_" + cs.Method

	receiverExpr := cs.Receiver
	if !isPointer {
		receiverExpr = "&" + cs.Receiver
	}

	args := source.Trim(line[cs.ParenStart+1 : cs.ParenEnd])
	var newArgs string
	if args == "" {
		newArgs = receiverExpr
	} else {
		newArgs = receiverExpr + ", " + args
	}

	// Find the start of "recv.method(" or "recv->method(" to replace the
	// whole call expression in one slice.
	opLen := 1
	if cs.OperatorIsArrow {
		opLen = 2
	}
	recvStart := strings.LastIndex(line[:cs.ParenStart], cs.Receiver)
	_ = opLen
	if recvStart < 0 {
		return line, errcode.New("rewrite", "MEM001", pos, "could not locate receiver %q", cs.Receiver)
	}

	return line[:recvStart] + funcName + "(" + newArgs + ")" + line[cs.ParenEnd+1:], nil
}
