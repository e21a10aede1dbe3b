package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dockhand/dockhand/internal/compose"
	"github.com/dockhand/dockhand/internal/config"
	"github.com/dockhand/dockhand/internal/credstore"
	"github.com/dockhand/dockhand/internal/project"
	"github.com/dockhand/dockhand/internal/prompt"
	"github.com/dockhand/dockhand/internal/registry"
	"github.com/dockhand/dockhand/internal/slogger"
)

func requireRuntime(ctx context.Context) (compose.Runtime, error) {
	runtime := RuntimeFromContext(ctx)
	if runtime == nil {
		return nil, errors.New("compose runtime not initialized")
	}
	return runtime, nil
}

func requirePrompter(ctx context.Context) (prompt.Prompter, error) {
	p := PrompterFromContext(ctx)
	if p == nil {
		return nil, errors.New("prompter not initialized")
	}
	return p, nil
}

// projectsDir resolves the configured projects directory.
func projectsDir(ctx context.Context) (string, error) {
	cfg := ConfigFromContext(ctx)
	if cfg == nil || cfg.Projects.Dir == "" {
		return "", errors.New("projects directory not configured (set projects.dir)")
	}
	return cfg.Projects.Dir, nil
}

// resolveTarget resolves a 'project' or 'project.service' reference
// against the projects directory.
func resolveTarget(ctx context.Context, ref string) (*project.Target, error) {
	dir, err := projectsDir(ctx)
	if err != nil {
		return nil, err
	}

	target, err := project.Resolve(dir, ref)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return nil, fmt.Errorf("no project %q under %s (see 'dockhand list')", ref, dir)
		}
		return nil, err
	}

	return target, nil
}

// validateService checks a requested service against the project's declared
// services so typos fail with a clear message instead of a compose error.
func validateService(ctx context.Context, runtime compose.Runtime, target *project.Target) error {
	if target.Service == "" {
		return nil
	}

	cfg, err := runtime.Config(ctx, target)
	if err != nil {
		return fmt.Errorf("load project configuration: %w", err)
	}

	if _, ok := cfg.Services[target.Service]; !ok {
		names := cfg.ServiceNames()
		sort.Strings(names)
		return fmt.Errorf("%w: project %s has no service %q (services: %s)",
			compose.ErrServiceNotFound, target.Project, target.Service, strings.Join(names, ", "))
	}
	return nil
}

// newRegistryClient builds a registry client from config, attaching stored
// credentials when present. Missing credentials fall back to anonymous
// access.
func newRegistryClient(ctx context.Context) registry.Client {
	clientCfg := registry.ClientConfig{
		AuthURL:     config.DefaultRegistryAuthURL,
		RegistryURL: config.DefaultRegistryURL,
		Service:     config.DefaultRegistryService,
	}
	if cfg := ConfigFromContext(ctx); cfg != nil {
		clientCfg.AuthURL = cfg.Registry.AuthURL
		clientCfg.RegistryURL = cfg.Registry.URL
		clientCfg.Service = cfg.Registry.Service
		clientCfg.Timeout = cfg.Registry.Timeout
	}

	store, err := credstore.New()
	if err != nil {
		slogger.L(ctx).Debug("credential store unavailable", "error", err)
		return registry.NewClient(clientCfg)
	}

	creds, err := store.Get()
	switch {
	case errors.Is(err, credstore.ErrNotFound):
		slogger.L(ctx).Debug("no stored registry credentials, using anonymous access")
	case err != nil:
		slogger.L(ctx).Debug("read registry credentials", "error", err)
	default:
		clientCfg.Username = creds.Username
		clientCfg.Password = creds.Password
	}

	return registry.NewClient(clientCfg)
}

// defaultTag returns the configured fallback manifest tag.
func defaultTag(ctx context.Context) string {
	if cfg := ConfigFromContext(ctx); cfg != nil && cfg.Registry.DefaultTag != "" {
		return cfg.Registry.DefaultTag
	}
	return config.DefaultTag
}
