// Package registry implements the Docker Registry v2 token handshake and
// manifest retrieval needed to resolve the latest published digest of an
// image tag.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for registry operations. Each maps to one stage of the
// digest lookup so callers can report exactly where a check failed.
var (
	// ErrAuth is returned when the token endpoint fails or returns no token.
	ErrAuth = errors.New("registry authentication failed")

	// ErrManifestFetch is returned when the manifest request fails.
	ErrManifestFetch = errors.New("manifest fetch failed")

	// ErrManifestParse is returned when the manifest body lacks a usable
	// config digest.
	ErrManifestParse = errors.New("manifest parse failed")

	// ErrInvalidDigest is returned when a digest string is malformed.
	ErrInvalidDigest = errors.New("invalid digest")
)

// Digest is a validated content digest of the form "<algorithm>:<hex>".
// Digests compare as opaque strings; normalization never alters the hash
// payload, so "sha256:ABC" and "sha256:abc" stay distinct.
type Digest string

// String returns the digest in its canonical "<algorithm>:<hex>" form.
func (d Digest) String() string {
	return string(d)
}

// ParseDigest validates an algorithm-prefixed digest string.
func ParseDigest(s string) (Digest, error) {
	alg, hex, ok := strings.Cut(s, ":")
	if !ok || alg == "" || hex == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidDigest, s)
	}
	if !isHex(hex) {
		return "", fmt.Errorf("%w: %q has a non-hex payload", ErrInvalidDigest, s)
	}
	return Digest(s), nil
}

// NormalizeDigest validates a digest that may lack the algorithm prefix,
// as reported by container runtimes for image IDs. A bare hex payload is
// prefixed with "sha256:"; the payload itself is never mutated.
func NormalizeDigest(s string) (Digest, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty digest", ErrInvalidDigest)
	}
	if !strings.Contains(s, ":") {
		s = "sha256:" + s
	}
	return ParseDigest(s)
}

// NormalizeImage qualifies an image reference for registry API paths.
// References without a namespace separator resolve under the default
// "library/" namespace, mirroring how Docker Hub treats official images.
// References already containing "/" pass through unmodified.
func NormalizeImage(image string) string {
	if !strings.Contains(image, "/") {
		return "library/" + image
	}
	return image
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// ClientConfig configures the registry client.
type ClientConfig struct {
	// AuthURL is the token endpoint, e.g. https://auth.docker.io/token.
	AuthURL string

	// RegistryURL is the registry API base, e.g. https://registry-1.docker.io.
	RegistryURL string

	// Service is the value of the token request's service parameter.
	Service string

	// Timeout bounds each HTTP call. Zero applies a 30s default.
	Timeout time.Duration

	// Username and Password are sent as basic auth on the token request
	// when both are set. Anonymous pulls work without them but are
	// rate-limited harder by Docker Hub.
	Username string
	Password string
}

// Client resolves the latest published digest for an image tag.
//
//go:generate go run github.com/matryer/moq@latest -pkg mocks -out mocks/client.go . Client
type Client interface {
	// LatestDigest fetches the manifest for image:tag and returns its
	// config digest. The image must already be namespace-qualified
	// (see NormalizeImage).
	LatestDigest(ctx context.Context, image, tag string) (Digest, error)
}
