// Package project resolves "<project>[.<service>]" arguments into compose
// file targets under the configured projects directory.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for target resolution.
var (
	// ErrNotFound is returned when no compose file exists for a project.
	ErrNotFound = errors.New("project not found")

	// ErrInvalidRef is returned when the target argument is malformed.
	ErrInvalidRef = errors.New("invalid project reference")
)

// composeFileNames are probed in order inside a project directory.
// The compose spec names come first, the legacy names after.
var composeFileNames = []string{
	"compose.yaml",
	"compose.yml",
	"docker-compose.yml",
	"docker-compose.yaml",
}

// Target identifies a compose project and an optional service within it.
type Target struct {
	// Project is the project name, matching its directory under the
	// projects dir.
	Project string

	// Service restricts operations to a single service. Empty means the
	// whole project.
	Service string

	// ComposeFile is the absolute path of the project's compose file.
	ComposeFile string
}

// String renders the target back to its argument form.
func (t Target) String() string {
	if t.Service == "" {
		return t.Project
	}
	return t.Project + "." + t.Service
}

// Resolve parses a "<project>[.<service>]" argument and locates the
// project's compose file under projectsDir.
func Resolve(projectsDir, ref string) (*Target, error) {
	name, service, err := splitRef(ref)
	if err != nil {
		return nil, err
	}

	file, err := findComposeFile(projectsDir, name)
	if err != nil {
		return nil, err
	}

	return &Target{
		Project:     name,
		Service:     service,
		ComposeFile: file,
	}, nil
}

// List enumerates project names under projectsDir, sorted. A directory
// counts as a project when it contains a compose file.
func List(projectsDir string) ([]string, error) {
	entries, err := os.ReadDir(projectsDir)
	if err != nil {
		return nil, fmt.Errorf("read projects directory: %w", err)
	}

	var projects []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := findComposeFile(projectsDir, entry.Name()); err == nil {
			projects = append(projects, entry.Name())
		}
	}

	sort.Strings(projects)
	return projects, nil
}

// splitRef splits "<project>[.<service>]" on the first dot.
func splitRef(ref string) (name, service string, err error) {
	if ref == "" {
		return "", "", fmt.Errorf("%w: empty reference", ErrInvalidRef)
	}

	name, service, _ = strings.Cut(ref, ".")
	if name == "" {
		return "", "", fmt.Errorf("%w: %q has no project name", ErrInvalidRef, ref)
	}
	if strings.Contains(ref, ".") && service == "" {
		return "", "", fmt.Errorf("%w: %q has an empty service name", ErrInvalidRef, ref)
	}
	if strings.ContainsAny(name, "/\\") || strings.ContainsAny(service, "/\\") {
		return "", "", fmt.Errorf("%w: %q contains a path separator", ErrInvalidRef, ref)
	}

	return name, service, nil
}

// findComposeFile probes the known compose file names inside the project
// directory and returns the first that exists.
func findComposeFile(projectsDir, name string) (string, error) {
	dir := filepath.Join(projectsDir, name)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	for _, candidate := range composeFileNames {
		path := filepath.Join(dir, candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: no compose file in %s", ErrNotFound, dir)
}
