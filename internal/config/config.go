// Package config carries the CLI flags the external driver parses and
// the core's directive recognizer consumes (spec §6). Flag parsing and
// path/filesystem handling belong to the driver; this package only
// defines the shape both sides agree on.
package config

import "github.com/aulang/aulang/internal/directive"

// Config is the parsed form of the CLI surface in spec §6.
type Config struct {
	Out         string
	Debug       bool
	Dir         string
	OS          string // "windows", "linux", "darwin"
	DLL         bool
	Verbose     bool
	Pretty      bool
	Help        bool
	Watch       bool
	IncludeDirs []string
	Defines     []string
	LibDirs     []string
	Libs        []string

	CCompiler  string
	Linker     string
	CSCompiler string
	CppCompiler string
}

// Target derives the directive gate's platform/build target from the
// resolved OS and DLL-vs-EXE mode.
func (c Config) Target() directive.Target {
	platform := "OS_LINUX"
	switch c.OS {
	case "windows":
		platform = "OS_WINDOWS"
	case "darwin":
		platform = "OS_APPLE"
	}
	build := "BUILD_EXE"
	if c.DLL {
		build = "BUILD_DLL"
	}
	return directive.Target{Platform: platform, Build: build}
}

// BuildSubdir is the per-configuration intermediate directory, e.g.
// "<build-dir>/linux-debug" (spec §6).
func (c Config) BuildSubdir() string {
	mode := "release"
	if c.Debug {
		mode = "debug"
	}
	return c.Dir + "/" + c.OS + "-" + mode
}
