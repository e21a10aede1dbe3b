package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	v1 "github.com/google/go-containerregistry/pkg/v1"
)

// manifestMediaType is requested explicitly: older default media types may
// omit the config digest needed for comparison.
const manifestMediaType = "application/vnd.docker.distribution.manifest.v2+json"

const defaultTimeout = 30 * time.Second

// client implements Client against the Docker Registry v2 API.
type client struct {
	config ClientConfig
	http   *http.Client
}

// NewClient creates a new registry client with the given configuration.
func NewClient(cfg ClientConfig) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &client{
		config: cfg,
		http:   &http.Client{Timeout: timeout},
	}
}

// tokenResponse is the body of the token endpoint.
type tokenResponse struct {
	Token string `json:"token"`
}

// LatestDigest fetches the manifest for image:tag and returns its config digest.
func (c *client) LatestDigest(ctx context.Context, image, tag string) (Digest, error) {
	token, err := c.fetchToken(ctx, image)
	if err != nil {
		return "", err
	}
	return c.fetchManifestDigest(ctx, token, image, tag)
}

// fetchToken requests a pull-scoped bearer token for the image.
func (c *client) fetchToken(ctx context.Context, image string) (string, error) {
	u, err := url.Parse(c.config.AuthURL)
	if err != nil {
		return "", fmt.Errorf("%w: parse auth URL: %v", ErrAuth, err)
	}

	q := u.Query()
	q.Set("scope", fmt.Sprintf("repository:%s:pull", image))
	q.Set("service", c.config.Service)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: build token request: %v", ErrAuth, err)
	}
	if c.config.Username != "" && c.config.Password != "" {
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuth, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: token endpoint returned %s", ErrAuth, resp.Status)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode token response: %v", ErrAuth, err)
	}
	if body.Token == "" {
		return "", fmt.Errorf("%w: token response has no token field", ErrAuth)
	}

	return body.Token, nil
}

// fetchManifestDigest requests the v2 manifest and extracts its config digest.
func (c *client) fetchManifestDigest(ctx context.Context, token, image, tag string) (Digest, error) {
	u := fmt.Sprintf("%s/v2/%s/manifests/%s", c.config.RegistryURL, image, tag)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build manifest request: %v", ErrManifestFetch, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", manifestMediaType)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrManifestFetch, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: manifest endpoint returned %s for %s:%s", ErrManifestFetch, resp.Status, image, tag)
	}

	var manifest v1.Manifest
	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		return "", fmt.Errorf("%w: decode manifest: %v", ErrManifestParse, err)
	}
	if manifest.Config.Digest.Hex == "" {
		return "", fmt.Errorf("%w: manifest has no config digest", ErrManifestParse)
	}

	digest, err := ParseDigest(manifest.Config.Digest.String())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	return digest, nil
}
