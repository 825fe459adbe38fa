// validate_manifest.go runs every "working" scenario in a translation
// acceptance manifest and diffs the actual translator output against
// the scenario's golden expectations. It keeps the manifest honest the
// same way the teacher's own validate_manifest.go kept its documented
// examples honest, applied to translator golden fixtures instead of
// REPL transcripts.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/aulang/aulang/internal/assemble"
	"github.com/aulang/aulang/internal/csharp"
	"github.com/aulang/aulang/internal/directive"
	"github.com/aulang/aulang/internal/link"
	"github.com/aulang/aulang/internal/manifest"
	"github.com/aulang/aulang/internal/rewrite"
	"github.com/aulang/aulang/internal/source"
	"github.com/aulang/aulang/internal/symtab"
	"github.com/aulang/aulang/scripts/internal/reporttypes"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		manifestPath = flag.String("manifest", "testdata/manifest.yaml", "path to the scenario manifest")
		jsonOut      = flag.String("json", "", "write a JSON verification report to this path")
		ciMode       = flag.Bool("ci", false, "exit nonzero on any scenario failure")
	)
	flag.Parse()

	m, err := manifest.Load(*manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s loading manifest: %v\n", red("error:"), err)
		os.Exit(1)
	}

	scenarios := m.Working()
	fmt.Printf("%s manifest: %s (%d working scenarios of %d total)\n\n",
		bold("aulang scenario validator"), *manifestPath, len(scenarios), len(m.Scenarios))

	report := reporttypes.VerificationReport{TotalScenarios: len(scenarios)}
	failed := 0

	for _, s := range scenarios {
		start := time.Now()
		result := reporttypes.ScenarioResult{Name: s.Name}

		if err := runScenario(s); err != nil {
			result.Status = "failed"
			result.Error = err.Error()
			report.Failed++
			failed++
			fmt.Printf("%s %s: %v\n", red("FAIL"), s.Name, err)
		} else {
			result.Status = "passed"
			report.Passed++
			fmt.Printf("%s %s\n", green("PASS"), s.Name)
		}
		result.Duration = time.Since(start)
		report.Results = append(report.Results, result)
	}

	fmt.Printf("\n%d passed, %d failed\n", report.Passed, report.Failed)

	if *jsonOut != "" {
		data, _ := json.MarshalIndent(report, "", "  ")
		if err := os.WriteFile(*jsonOut, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "%s writing report: %v\n", yellow("warning:"), err)
		}
	}

	if *ciMode && failed > 0 {
		os.Exit(1)
	}
}

func runScenario(s manifest.Scenario) error {
	var files []*source.File
	for _, in := range s.Inputs {
		files = append(files, source.NewFile(in.Path, source.SplitLines([]byte(in.Content))))
	}
	if len(files) == 0 {
		return fmt.Errorf("scenario has no inputs")
	}

	dirs := symtab.NewDirectives()
	sets := csharp.TypeSets{OpaqueStructs: map[string]bool{}, OpaqueEnums: map[string]bool{}}
	target := directive.Target{Platform: "OS_LINUX", Build: "BUILD_EXE"}

	for i, f := range files {
		for _, rep := range rewrite.TranslateFile(f, dirs, rewrite.Options{Target: target, IsRoot: i == 0, TypeSets: sets}) {
			if rep.Fatal {
				return fmt.Errorf("translating %s: %s", f.Path, rep.Message)
			}
		}
	}

	result := link.Solve(files)
	if len(s.Expected.Order) > 0 {
		var gotOrder []string
		for _, idx := range result.Order {
			gotOrder = append(gotOrder, files[idx].Path)
		}
		if diff := cmp.Diff(s.Expected.Order, gotOrder); diff != "" {
			return fmt.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	}

	root := files[0]
	others := make([]string, 0, len(files)-1)
	for _, f := range files[1:] {
		others = append(others, f.Path)
	}
	outputs, rep := assemble.Assemble(root, others, assemble.Options{})
	if rep != nil {
		return fmt.Errorf("assembling %s: %s", root.Path, rep.Message)
	}

	if s.Expected.Body != "" {
		if diff := cmp.Diff(s.Expected.Body, outputs.IntermediateC); diff != "" {
			return fmt.Errorf("body mismatch (-want +got):\n%s", diff)
		}
	}
	if s.Expected.ModuleHeader != "" {
		if diff := cmp.Diff(s.Expected.ModuleHeader, outputs.IntermediateHeader); diff != "" {
			return fmt.Errorf("module header mismatch (-want +got):\n%s", diff)
		}
	}
	if s.Expected.PublicHeader != "" {
		if diff := cmp.Diff(s.Expected.PublicHeader, outputs.PublicHeader); diff != "" {
			return fmt.Errorf("public header mismatch (-want +got):\n%s", diff)
		}
	}
	if s.Expected.CSharp != "" {
		if diff := cmp.Diff(s.Expected.CSharp, outputs.CSharpFacade); diff != "" {
			return fmt.Errorf("csharp facade mismatch (-want +got):\n%s", diff)
		}
	}
	return nil
}
