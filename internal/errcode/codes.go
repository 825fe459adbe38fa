// Package errcode provides centralized error code definitions for the
// aulang translator. Codes follow a consistent taxonomy so diagnostics
// stay greppable across phases.
package errcode

// Error code constants organized by phase. Each constant represents a
// specific error condition with structured reporting (see report.go).
const (
	// ============================================================
	// Lexical errors (LEX###)
	// ============================================================

	// LEX001 indicates a file could not be opened or read.
	LEX001 = "LEX001"

	// ============================================================
	// Directive errors (DIR###)
	// ============================================================

	// DIR001 indicates a malformed #template directive.
	DIR001 = "DIR001"

	// DIR002 indicates a malformed #template directive in a non-root file
	// (reported as a warning, not fatal).
	DIR002 = "DIR002"

	// ============================================================
	// Struct/enum rewriter errors (STR###)
	// ============================================================

	// STR001 indicates an unterminated struct/enum body (no matching
	// close brace found before end of file).
	STR001 = "STR001"

	// ============================================================
	// Member-function resolver errors (MEM###)
	// ============================================================

	// MEM001 indicates use of an undeclared identifier as a method
	// receiver.
	MEM001 = "MEM001"

	// MEM002 indicates a pointer/value operator mismatch at a call site
	// ("obj is a pointer, use -> for member calls" or its inverse).
	MEM002 = "MEM002"

	// MEM003 indicates delete of a value whose type is unknown.
	MEM003 = "MEM003"

	// MEM004 indicates an unrecognized `this` receiver modifier
	// (reported as a warning).
	MEM004 = "MEM004"

	// ============================================================
	// Public-signature extractor errors (SIG###)
	// ============================================================

	// SIG001 indicates a function definition with no closing paren
	// before its opening brace.
	SIG001 = "SIG001"

	// ============================================================
	// C# surface errors (CSH###)
	// ============================================================

	// CSH001 indicates an argument type with no known C# translation.
	CSH001 = "CSH001"

	// ============================================================
	// Cross-file solver errors (LNK###)
	// ============================================================

	// LNK001 indicates the solver exhausted its bounded iteration count
	// without converging (reported as a warning; the tentative ordering
	// is kept).
	LNK001 = "LNK001"

	// ============================================================
	// Build planner errors (PLN###)
	// ============================================================

	// PLN001 indicates a file's rebuild status could not be determined
	// (mtime probe failed).
	PLN001 = "PLN001"

	// ============================================================
	// Output assembler errors (ASM###)
	// ============================================================

	// ASM001 indicates a lifted declaration has no corresponding forward
	// declaration in any header channel.
	ASM001 = "ASM001"

	// ============================================================
	// I/O errors (IOX###)
	// ============================================================

	// IOX001 indicates an intermediate file could not be written.
	IOX001 = "IOX001"
)
