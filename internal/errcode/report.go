package errcode

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Pos is a source coordinate within a translated file.
type Pos struct {
	File string
	Line int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Report is the canonical structured diagnostic type for the translator.
// Every pass that fails returns a *Report rather than a bare error, so
// callers can distinguish fatal errors from warnings without string
// matching.
type Report struct {
	Schema  string         `json:"schema"` // always "aulang.diag/v1"
	Code    string         `json:"code"`
	Phase   string         `json:"phase"` // "parse", "rewrite", "solve", "plan", "assemble", "io"
	Message string         `json:"message"`
	Pos     *Pos           `json:"pos,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Fatal   bool           `json:"fatal"`
}

// ReportError wraps a Report as an error so it survives errors.As
// unwrapping through ordinary Go error-handling code.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	if e.Rep.Pos != nil {
		return fmt.Sprintf("%s: %s: %s", e.Rep.Pos, e.Rep.Code, e.Rep.Message)
	}
	return fmt.Sprintf("%s: %s", e.Rep.Code, e.Rep.Message)
}

// AsReport extracts a Report from an error chain.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// Wrap wraps a Report as an error.
func Wrap(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// New builds a fatal Report at a source position, matching the
// "path:line: error: message" diagnostic format spec.md §7 requires.
func New(phase, code string, pos Pos, format string, args ...any) *Report {
	return &Report{
		Schema:  "aulang.diag/v1",
		Code:    code,
		Phase:   phase,
		Message: fmt.Sprintf(format, args...),
		Pos:     &pos,
		Fatal:   true,
	}
}

// NewWarning builds a non-fatal Report.
func NewWarning(phase, code string, pos *Pos, format string, args ...any) *Report {
	return &Report{
		Schema:  "aulang.diag/v1",
		Code:    code,
		Phase:   phase,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		Fatal:   false,
	}
}

// ToJSON renders the report deterministically: fields in struct
// declaration order, Data map keys sorted.
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
