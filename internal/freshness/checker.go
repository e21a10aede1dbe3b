package freshness

import (
	"context"
	"fmt"
	"sort"

	"github.com/dockhand/dockhand/internal/compose"
	"github.com/dockhand/dockhand/internal/project"
	"github.com/dockhand/dockhand/internal/registry"
	"github.com/dockhand/dockhand/internal/slogger"
)

// CheckerConfig configures the freshness checker.
type CheckerConfig struct {
	// DefaultTag is compared against when a service's image reference
	// does not pin a tag (default: latest).
	DefaultTag string
}

// Checker compares running service images against the registry.
type Checker struct {
	runtime compose.Runtime
	client  registry.Client
	tag     string
}

// NewChecker creates a Checker over the given compose runtime and registry
// client.
func NewChecker(runtime compose.Runtime, client registry.Client, cfg CheckerConfig) *Checker {
	tag := cfg.DefaultTag
	if tag == "" {
		tag = "latest"
	}
	return &Checker{
		runtime: runtime,
		client:  client,
		tag:     tag,
	}
}

// Check runs the freshness pipeline for the target. With a service filter
// it checks exactly that service; otherwise it checks every currently
// running service of the project (stopped services are skipped: freshness
// is only meaningful for containers in use).
//
// Failures are per-service: one service's error never aborts its siblings.
// Results are sorted by service name. The returned error covers only
// batch-level failures, where no service could be evaluated at all.
func (c *Checker) Check(ctx context.Context, target *project.Target) ([]Result, error) {
	cfg, err := c.runtime.Config(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("load project configuration: %w", err)
	}

	var services []string
	if target.Service != "" {
		services = []string{target.Service}
	} else {
		services, err = c.runtime.RunningServices(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("enumerate running services: %w", err)
		}
	}

	results := make([]Result, 0, len(services))
	for _, service := range services {
		results = append(results, c.checkService(ctx, target, cfg, service))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Service < results[j].Service
	})

	return results, nil
}

// checkService runs the full pipeline for one service: config lookup,
// image normalization, registry digest fetch, local digest fetch, compare.
func (c *Checker) checkService(ctx context.Context, target *project.Target, cfg *compose.Project, service string) Result {
	result := Result{Service: service}
	log := slogger.L(ctx)

	svc, ok := cfg.Services[service]
	if !ok {
		result.Err = fmt.Errorf("%w: %s", ErrConfigLookup, service)
		return result
	}
	if svc.Image == "" {
		result.Err = fmt.Errorf("%w: %s declares no image", ErrConfigLookup, service)
		return result
	}

	repo, tag := splitTag(svc.Image)
	if tag == "" {
		tag = c.tag
	}
	image := registry.NormalizeImage(repo)
	result.Image = image

	log.Debug("checking service freshness",
		"project", target.Project, "service", service, "image", image, "tag", tag)

	remote, err := c.client.LatestDigest(ctx, image, tag)
	if err != nil {
		result.Err = err
		return result
	}
	result.Remote = remote

	localRaw, err := c.runtime.RunningImageDigest(ctx, target, service)
	if err != nil {
		result.Err = fmt.Errorf("resolve local digest: %w", err)
		return result
	}

	local, err := registry.NormalizeDigest(localRaw)
	if err != nil {
		result.Err = fmt.Errorf("resolve local digest: %w", err)
		return result
	}
	result.Local = local

	log.Debug("compared digests",
		"service", service, "local", local.String(), "remote", remote.String())

	return result
}
