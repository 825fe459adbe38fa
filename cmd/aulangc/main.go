package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/aulang/aulang/internal/assemble"
	"github.com/aulang/aulang/internal/config"
	"github.com/aulang/aulang/internal/csharp"
	"github.com/aulang/aulang/internal/errcode"
	"github.com/aulang/aulang/internal/link"
	"github.com/aulang/aulang/internal/plan"
	"github.com/aulang/aulang/internal/rewrite"
	"github.com/aulang/aulang/internal/source"
	"github.com/aulang/aulang/internal/symtab"
	"github.com/aulang/aulang/internal/watch"
)

var (
	// Version info - set by ldflags during build
	Version = "dev"
	Commit  = "unknown"

	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		out     = flag.String("o", "", "output binary path")
		dir     = flag.String("d", "build", "build directory")
		osFlag  = flag.String("m", "linux", "target OS: windows, linux, darwin")
		dll     = flag.Bool("shared", false, "build a shared library instead of an executable")
		debug   = flag.Bool("g", false, "debug build")
		verbose = flag.Bool("v", false, "verbose output")
		pretty  = flag.Bool("pretty", false, "omit #line directives from generated C")
		watch   = flag.Bool("watch", false, "interactively re-translate on keypress")
		version = flag.Bool("version", false, "print version information")
	)
	flag.Parse()

	if *version {
		fmt.Printf("aulangc %s (%s)\n", bold(Version), Commit)
		return
	}
	if flag.NArg() == 0 {
		printHelp()
		os.Exit(1)
	}

	cfg := config.Config{
		Out: *out, Dir: *dir, OS: *osFlag, DLL: *dll,
		Debug: *debug, Verbose: *verbose, Pretty: *pretty, Watch: *watch,
	}
	paths := flag.Args()

	if err := run(cfg, paths); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", red("error"), err)
		os.Exit(1)
	}

	if cfg.Watch {
		if err := watch.Run(os.Stdout, func() error { return run(cfg, paths) }); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", red("error"), err)
			os.Exit(1)
		}
	}
}

func printHelp() {
	fmt.Println(bold("aulangc - the aulang source translator and build driver"))
	fmt.Println("\nUsage:\n  aulangc [flags] <file.au> [file.au ...]")
	flag.PrintDefaults()
}

func run(cfg config.Config, paths []string) error {
	var files []*source.File
	for _, p := range paths {
		if !strings.HasSuffix(p, ".au") {
			continue
		}
		raw, err := os.ReadFile(p)
		if err != nil {
			return errcode.Wrap(errcode.New("parse", "LEX001", errcode.Pos{File: p}, "cannot open file: %v", err))
		}
		files = append(files, source.NewFile(p, source.SplitLines(raw)))
	}
	if len(files) == 0 {
		return fmt.Errorf("no .au input files given")
	}

	dirs := symtab.NewDirectives()
	sets := csharp.TypeSets{OpaqueStructs: map[string]bool{}, OpaqueEnums: map[string]bool{}}

	for i, f := range files {
		reports := rewrite.TranslateFile(f, dirs, rewrite.Options{
			Target:   cfg.Target(),
			IsRoot:   i == 0,
			TypeSets: sets,
		})
		for _, r := range reports {
			printReport(r, cfg.Verbose)
			if r.Fatal {
				return fmt.Errorf("translation of %s failed", f.Path)
			}
		}
	}

	result := link.Solve(files)
	for _, r := range result.Reports {
		printReport(r, cfg.Verbose)
	}
	ordered := make([]*source.File, len(result.Order))
	for i, idx := range result.Order {
		ordered[i] = files[idx]
	}

	link.BuildExportGraph(ordered)

	stale := make([]bool, len(ordered))
	subdir := cfg.BuildSubdir()
	for i, f := range ordered {
		stale[i] = isStale(f.Path, subdir)
	}
	buildPlan := plan.Compute(ordered, stale, false)

	if err := os.MkdirAll(subdir, 0o755); err != nil {
		return errcode.Wrap(errcode.New("io", "IOX001", errcode.Pos{File: subdir}, "cannot create build directory: %v", err))
	}

	peerNames := make([]string, len(ordered))
	for i, f := range ordered {
		peerNames[i] = strings.TrimSuffix(filepath.Base(f.Path), ".au")
	}

	for i, f := range ordered {
		if !buildPlan.Rebuild[i] {
			continue
		}
		others := append(append([]string{}, peerNames[:i]...), peerNames[i+1:]...)
		outputs, rep := assemble.Assemble(f, others, assemble.Options{Pretty: cfg.Pretty, StaticPrefix: staticPrefixPlaceholder})
		if rep != nil {
			printReport(rep, cfg.Verbose)
			continue
		}
		base := strings.TrimSuffix(filepath.Base(f.Path), ".au")
		if err := writeIfNonEmpty(filepath.Join(subdir, base+".au.c"), outputs.IntermediateC); err != nil {
			return err
		}
		if err := writeIfNonEmpty(filepath.Join(subdir, base+".au.h"), outputs.IntermediateHeader); err != nil {
			return err
		}
		if outputs.PublicHeader != "" {
			if err := writeIfNonEmpty(base+".dll.h", outputs.PublicHeader); err != nil {
				return err
			}
		}
		if outputs.CSharpFacade != "" {
			if err := writeIfNonEmpty(base+".dll.cs", outputs.CSharpFacade); err != nil {
				return err
			}
		}
		if cfg.Verbose {
			fmt.Printf("%s %s\n", green("translated"), f.Path)
		}
	}

	if buildPlan.NeedsLink && cfg.Verbose {
		fmt.Println(green("link required"))
	}

	fmt.Printf("%s %s\n", green("vendor:"), dirs.Vendor)
	return nil
}

// isStale belongs to the build driver, not the core (spec §1 lists file
// mtime probing as out of scope for the translator itself).
func isStale(srcPath, subdir string) bool {
	base := strings.TrimSuffix(filepath.Base(srcPath), ".au")
	objPath := filepath.Join(subdir, base+".o")
	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return true
	}
	objInfo, err := os.Stat(objPath)
	if err != nil {
		return true
	}
	return srcInfo.ModTime().After(objInfo.ModTime())
}

func writeIfNonEmpty(path, text string) error {
	if text == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errcode.Wrap(errcode.New("io", "IOX001", errcode.Pos{File: path}, "cannot write output: %v", err))
	}
	return nil
}

func printReport(r *errcode.Report, verbose bool) {
	msg := (&errcode.ReportError{Rep: r}).Error()
	if r.Fatal {
		fmt.Fprintf(os.Stderr, "%s: %s\n", red("error"), msg)
		return
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "%s: %s\n", yellow("warning"), msg)
	}
}

// staticPrefixPlaceholder stands in for the embedded prefix header
// template (spec §6); the real contents are an external asset this
// repository's core does not own.
const staticPrefixPlaceholder = "// aulang generated code"
