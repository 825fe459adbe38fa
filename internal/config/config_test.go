package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aulang/aulang/internal/directive"
)

func TestTargetMapsOSAndBuildMode(t *testing.T) {
	cfg := Config{OS: "windows", DLL: true}
	assert.Equal(t, directive.Target{Platform: "OS_WINDOWS", Build: "BUILD_DLL"}, cfg.Target())

	cfg = Config{OS: "darwin"}
	assert.Equal(t, directive.Target{Platform: "OS_APPLE", Build: "BUILD_EXE"}, cfg.Target())

	cfg = Config{OS: "linux"}
	assert.Equal(t, directive.Target{Platform: "OS_LINUX", Build: "BUILD_EXE"}, cfg.Target())
}

func TestBuildSubdir(t *testing.T) {
	cfg := Config{Dir: "build", OS: "linux", Debug: true}
	assert.Equal(t, "build/linux-debug", cfg.BuildSubdir())

	cfg.Debug = false
	assert.Equal(t, "build/linux-release", cfg.BuildSubdir())
}
