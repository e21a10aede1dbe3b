// Package freshness determines whether the images backing a project's
// running services differ from the latest digests published in the
// registry.
package freshness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dockhand/dockhand/internal/registry"
)

// ErrConfigLookup is returned when a service enumerated as running is
// absent from the project configuration (possible with containers started
// outside compose).
var ErrConfigLookup = errors.New("service missing from configuration")

// Result is the outcome of one service's freshness check. Exactly one
// Result is produced per requested or enumerated service: a failure at any
// stage is captured in Err rather than silently dropping the service.
type Result struct {
	// Service is the compose service name.
	Service string

	// Image is the namespace-qualified image reference that was checked.
	Image string

	// Local is the digest of the image backing the running container.
	Local registry.Digest

	// Remote is the latest manifest config digest in the registry.
	Remote registry.Digest

	// Err is the failure, if any stage of the check failed.
	Err error
}

// Updatable reports whether the registry holds a different image than the
// one running. Digests compare as opaque strings.
func (r Result) Updatable() bool {
	return r.Err == nil && r.Local != r.Remote
}

// String renders the per-service report line.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("Service %s: check failed: %v", r.Service, r.Err)
	}
	if r.Updatable() {
		return fmt.Sprintf("Service %s can be updated", r.Service)
	}
	return fmt.Sprintf("Service %s is up-to-date", r.Service)
}

// splitTag splits a declared image reference into repository and tag.
// A colon only counts as a tag separator after the last slash, so
// registry ports are left alone.
func splitTag(ref string) (repo, tag string) {
	slash := strings.LastIndex(ref, "/")
	colon := strings.LastIndex(ref, ":")
	if colon > slash {
		return ref[:colon], ref[colon+1:]
	}
	return ref, ""
}
