//go:build integration

// Package integration provides integration tests for the dockhand CLI using testscript.
package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain sets up the testscript environment.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"dockhand": dockhandMain,
	}))
}

// dockhandMain wraps the dockhand binary for testscript execution.
func dockhandMain() int {
	binary := os.Getenv("DOCKHAND_BINARY")
	if binary == "" {
		var err error
		binary, err = exec.LookPath("dockhand")
		if err != nil {
			fmt.Fprintf(os.Stderr, "dockhand binary not found: set DOCKHAND_BINARY or add dockhand to PATH\n")
			return 1
		}
	}

	cmd := exec.Command(binary, os.Args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		return 1
	}
	return 0
}

// TestScripts runs all testscript files in testdata/scripts.
func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata/scripts",
		Setup: setupTestEnv,
	})
}

// setupTestEnv configures an isolated HOME with a projects directory and
// a config file pointing at it.
func setupTestEnv(env *testscript.Env) error {
	testHome := filepath.Join(env.WorkDir, "home")
	configDir := filepath.Join(testHome, ".config", "dockhand")
	projectsDir := filepath.Join(testHome, "compose")

	for _, dir := range []string{configDir, projectsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	env.Setenv("HOME", testHome)
	env.Setenv("XDG_CONFIG_HOME", filepath.Join(testHome, ".config"))
	env.Setenv("PROJECTS_DIR", projectsDir)

	if binary := os.Getenv("DOCKHAND_BINARY"); binary != "" {
		env.Setenv("DOCKHAND_BINARY", binary)
	} else if binary, err := exec.LookPath("dockhand"); err == nil {
		env.Setenv("DOCKHAND_BINARY", binary)
	}

	// Pass through DOCKER_HOST for rootless Docker
	if dockerHost := os.Getenv("DOCKER_HOST"); dockerHost != "" {
		env.Setenv("DOCKER_HOST", dockerHost)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	configContent := fmt.Sprintf(`projects:
  dir: %s
registry:
  auth_url: https://auth.docker.io/token
  url: https://registry-1.docker.io
  service: registry.docker.io
  timeout: 30s
  default_tag: latest
compose:
  binary: docker
  flags: {}
`, projectsDir)

	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
