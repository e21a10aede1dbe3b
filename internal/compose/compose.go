// Package compose provides an abstraction over docker compose project
// operations: lifecycle dispatch, declared configuration, and running
// container state.
package compose

import (
	"context"
	"errors"

	"github.com/dockhand/dockhand/internal/project"
)

// Sentinel errors for compose operations.
var (
	// ErrServiceNotFound is returned when a service is absent from the
	// project configuration.
	ErrServiceNotFound = errors.New("service not found in project")

	// ErrNoContainer is returned when a service has no running container.
	ErrNoContainer = errors.New("service has no running container")
)

// Service holds the declared configuration of a single compose service.
type Service struct {
	// Image is the declared image reference, possibly unqualified
	// (e.g. "redis" or "redis:7").
	Image string

	// Build reports whether the service declares a build context.
	Build bool
}

// Project holds the parsed configuration of a compose project.
type Project struct {
	Name     string
	Services map[string]Service
}

// ServiceNames returns the declared service names, unsorted.
func (p *Project) ServiceNames() []string {
	names := make([]string, 0, len(p.Services))
	for name := range p.Services {
		names = append(names, name)
	}
	return names
}

// LogsOptions configures log streaming.
type LogsOptions struct {
	Follow bool
	Tail   string // e.g. "100"; empty streams everything
}

// Runtime provides compose project operations. Lifecycle methods honor
// target.Service as a filter when it is set.
//
//go:generate go run github.com/matryer/moq@latest -pkg mocks -out mocks/runtime.go . Runtime
type Runtime interface {
	// Config returns the project's declared configuration via
	// `compose config --format json`.
	Config(ctx context.Context, target *project.Target) (*Project, error)

	// RunningServices returns the names of services with a running
	// container, sorted.
	RunningServices(ctx context.Context, target *project.Target) ([]string, error)

	// RunningImageDigest returns the image digest backing the service's
	// running container, as reported by the engine (bare hex or
	// algorithm-prefixed). Returns ErrNoContainer if nothing is running.
	RunningImageDigest(ctx context.Context, target *project.Target, service string) (string, error)

	// Up creates and starts services in detached mode.
	Up(ctx context.Context, target *project.Target) error

	// Down stops and removes the project's containers and networks.
	Down(ctx context.Context, target *project.Target) error

	// Stop stops services without removing them.
	Stop(ctx context.Context, target *project.Target) error

	// Restart restarts services.
	Restart(ctx context.Context, target *project.Target) error

	// Pull fetches service images.
	Pull(ctx context.Context, target *project.Target) error

	// Build builds service images for services with a build context.
	Build(ctx context.Context, target *project.Target) error

	// Logs streams service logs to the runtime's output writers.
	Logs(ctx context.Context, target *project.Target, opts LogsOptions) error

	// Exec runs a command in a service's running container with an
	// interactive TTY when stdin is a terminal.
	Exec(ctx context.Context, target *project.Target, command []string) error

	// Prune removes unused container data via `system prune`.
	Prune(ctx context.Context) error
}
