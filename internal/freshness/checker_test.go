package freshness

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockhand/dockhand/internal/compose"
	composemocks "github.com/dockhand/dockhand/internal/compose/mocks"
	"github.com/dockhand/dockhand/internal/project"
	"github.com/dockhand/dockhand/internal/registry"
	registrymocks "github.com/dockhand/dockhand/internal/registry/mocks"
)

const (
	digestA = "sha256:aaa111"
	digestB = "sha256:bbb222"
)

func projectTarget() *project.Target {
	return &project.Target{
		Project:     "media",
		ComposeFile: "/srv/compose/media/compose.yaml",
	}
}

func serviceTarget(service string) *project.Target {
	t := projectTarget()
	t.Service = service
	return t
}

// runtimeWith builds a RuntimeMock over static project state.
func runtimeWith(services map[string]compose.Service, running []string, digests map[string]string) *composemocks.RuntimeMock {
	return &composemocks.RuntimeMock{
		ConfigFunc: func(_ context.Context, target *project.Target) (*compose.Project, error) {
			return &compose.Project{Name: target.Project, Services: services}, nil
		},
		RunningServicesFunc: func(_ context.Context, _ *project.Target) ([]string, error) {
			return running, nil
		},
		RunningImageDigestFunc: func(_ context.Context, _ *project.Target, service string) (string, error) {
			digest, ok := digests[service]
			if !ok {
				return "", fmt.Errorf("%w: %s", compose.ErrNoContainer, service)
			}
			return digest, nil
		},
	}
}

// clientWith builds a ClientMock serving fixed digests per image.
func clientWith(digests map[string]registry.Digest) *registrymocks.ClientMock {
	return &registrymocks.ClientMock{
		LatestDigestFunc: func(_ context.Context, image, _ string) (registry.Digest, error) {
			digest, ok := digests[image]
			if !ok {
				return "", fmt.Errorf("%w: unknown image %s", registry.ErrManifestFetch, image)
			}
			return digest, nil
		},
	}
}

func TestChecker_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("reports up-to-date when digests match", func(t *testing.T) {
		runtime := runtimeWith(
			map[string]compose.Service{"redis": {Image: "redis"}},
			[]string{"redis"},
			map[string]string{"redis": digestA},
		)
		client := clientWith(map[string]registry.Digest{"library/redis": digestA})

		checker := NewChecker(runtime, client, CheckerConfig{})
		results, err := checker.Check(ctx, serviceTarget("redis"))

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].Updatable())
		assert.Equal(t, "Service redis is up-to-date", results[0].String())
	})

	t.Run("reports updatable when digests differ", func(t *testing.T) {
		runtime := runtimeWith(
			map[string]compose.Service{"redis": {Image: "redis"}},
			[]string{"redis"},
			map[string]string{"redis": digestA},
		)
		client := clientWith(map[string]registry.Digest{"library/redis": digestB})

		checker := NewChecker(runtime, client, CheckerConfig{})
		results, err := checker.Check(ctx, serviceTarget("redis"))

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Updatable())
		assert.Equal(t, "Service redis can be updated", results[0].String())
	})

	t.Run("digest comparison is case-sensitive", func(t *testing.T) {
		runtime := runtimeWith(
			map[string]compose.Service{"redis": {Image: "redis"}},
			[]string{"redis"},
			map[string]string{"redis": "sha256:ABC"},
		)
		client := clientWith(map[string]registry.Digest{"library/redis": "sha256:abc"})

		checker := NewChecker(runtime, client, CheckerConfig{})
		results, err := checker.Check(ctx, serviceTarget("redis"))

		require.NoError(t, err)
		assert.True(t, results[0].Updatable())
	})

	t.Run("normalizes bare local digests before comparison", func(t *testing.T) {
		runtime := runtimeWith(
			map[string]compose.Service{"redis": {Image: "redis"}},
			[]string{"redis"},
			map[string]string{"redis": "aaa111"},
		)
		client := clientWith(map[string]registry.Digest{"library/redis": digestA})

		checker := NewChecker(runtime, client, CheckerConfig{})
		results, err := checker.Check(ctx, serviceTarget("redis"))

		require.NoError(t, err)
		assert.False(t, results[0].Updatable())
		assert.Equal(t, registry.Digest(digestA), results[0].Local)
	})

	t.Run("qualifies bare image names before the registry call", func(t *testing.T) {
		runtime := runtimeWith(
			map[string]compose.Service{"redis": {Image: "redis"}},
			[]string{"redis"},
			map[string]string{"redis": digestA},
		)
		client := clientWith(map[string]registry.Digest{"library/redis": digestA})

		checker := NewChecker(runtime, client, CheckerConfig{})
		_, err := checker.Check(ctx, serviceTarget("redis"))

		require.NoError(t, err)
		calls := client.LatestDigestCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "library/redis", calls[0].Image)
		assert.Equal(t, "latest", calls[0].Tag)
	})

	t.Run("uses the declared tag when the image pins one", func(t *testing.T) {
		runtime := runtimeWith(
			map[string]compose.Service{"redis": {Image: "redis:7"}},
			[]string{"redis"},
			map[string]string{"redis": digestA},
		)
		client := clientWith(map[string]registry.Digest{"library/redis": digestA})

		checker := NewChecker(runtime, client, CheckerConfig{})
		_, err := checker.Check(ctx, serviceTarget("redis"))

		require.NoError(t, err)
		calls := client.LatestDigestCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "library/redis", calls[0].Image)
		assert.Equal(t, "7", calls[0].Tag)
	})

	t.Run("checks every running service for a project target", func(t *testing.T) {
		runtime := runtimeWith(
			map[string]compose.Service{
				"redis":   {Image: "redis"},
				"grafana": {Image: "grafana/grafana"},
				"stopped": {Image: "nginx"},
			},
			[]string{"redis", "grafana"},
			map[string]string{"redis": digestA, "grafana": digestA},
		)
		client := clientWith(map[string]registry.Digest{
			"library/redis":   digestA,
			"grafana/grafana": digestB,
		})

		checker := NewChecker(runtime, client, CheckerConfig{})
		results, err := checker.Check(ctx, projectTarget())

		require.NoError(t, err)
		require.Len(t, results, 2)
		// Sorted by service name, stopped services skipped.
		assert.Equal(t, "grafana", results[0].Service)
		assert.True(t, results[0].Updatable())
		assert.Equal(t, "redis", results[1].Service)
		assert.False(t, results[1].Updatable())
	})

	t.Run("one service's auth failure does not abort siblings", func(t *testing.T) {
		runtime := runtimeWith(
			map[string]compose.Service{
				"private": {Image: "example/private"},
				"redis":   {Image: "redis"},
			},
			[]string{"private", "redis"},
			map[string]string{"private": digestA, "redis": digestA},
		)
		client := &registrymocks.ClientMock{
			LatestDigestFunc: func(_ context.Context, image, _ string) (registry.Digest, error) {
				if image == "example/private" {
					return "", fmt.Errorf("%w: token endpoint returned 401", registry.ErrAuth)
				}
				return digestA, nil
			},
		}

		checker := NewChecker(runtime, client, CheckerConfig{})
		results, err := checker.Check(ctx, projectTarget())

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.ErrorIs(t, results[0].Err, registry.ErrAuth)
		assert.NoError(t, results[1].Err)
		assert.False(t, results[1].Updatable())
	})

	t.Run("running service missing from config yields an explicit error result", func(t *testing.T) {
		runtime := runtimeWith(
			map[string]compose.Service{"redis": {Image: "redis"}},
			[]string{"redis", "manual"},
			map[string]string{"redis": digestA, "manual": digestA},
		)
		client := clientWith(map[string]registry.Digest{"library/redis": digestA})

		checker := NewChecker(runtime, client, CheckerConfig{})
		results, err := checker.Check(ctx, projectTarget())

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.ErrorIs(t, results[0].Err, ErrConfigLookup)
		assert.Equal(t, "manual", results[0].Service)
		assert.NoError(t, results[1].Err)
	})

	t.Run("build-only service without image reports a config error", func(t *testing.T) {
		runtime := runtimeWith(
			map[string]compose.Service{"app": {Build: true}},
			[]string{"app"},
			map[string]string{"app": digestA},
		)
		client := clientWith(nil)

		checker := NewChecker(runtime, client, CheckerConfig{})
		results, err := checker.Check(ctx, serviceTarget("app"))

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.ErrorIs(t, results[0].Err, ErrConfigLookup)
	})

	t.Run("local digest failure is captured per service", func(t *testing.T) {
		runtime := runtimeWith(
			map[string]compose.Service{"redis": {Image: "redis"}},
			[]string{"redis"},
			nil, // no containers
		)
		client := clientWith(map[string]registry.Digest{"library/redis": digestA})

		checker := NewChecker(runtime, client, CheckerConfig{})
		results, err := checker.Check(ctx, serviceTarget("redis"))

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.ErrorIs(t, results[0].Err, compose.ErrNoContainer)
	})

	t.Run("config load failure is a batch error", func(t *testing.T) {
		runtime := &composemocks.RuntimeMock{
			ConfigFunc: func(_ context.Context, _ *project.Target) (*compose.Project, error) {
				return nil, errors.New("no configuration file provided")
			},
		}
		client := clientWith(nil)

		checker := NewChecker(runtime, client, CheckerConfig{})
		_, err := checker.Check(ctx, projectTarget())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no configuration file provided")
	})

	t.Run("honors configured default tag", func(t *testing.T) {
		runtime := runtimeWith(
			map[string]compose.Service{"redis": {Image: "redis"}},
			[]string{"redis"},
			map[string]string{"redis": digestA},
		)
		client := clientWith(map[string]registry.Digest{"library/redis": digestA})

		checker := NewChecker(runtime, client, CheckerConfig{DefaultTag: "stable"})
		_, err := checker.Check(ctx, serviceTarget("redis"))

		require.NoError(t, err)
		calls := client.LatestDigestCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "stable", calls[0].Tag)
	})
}

func TestSplitTag(t *testing.T) {
	cases := []struct {
		ref  string
		repo string
		tag  string
	}{
		{"redis", "redis", ""},
		{"redis:7", "redis", "7"},
		{"grafana/grafana", "grafana/grafana", ""},
		{"grafana/grafana:10.2", "grafana/grafana", "10.2"},
		{"localhost:5000/app", "localhost:5000/app", ""},
		{"localhost:5000/app:dev", "localhost:5000/app", "dev"},
	}

	for _, tc := range cases {
		repo, tag := splitTag(tc.ref)
		assert.Equal(t, tc.repo, repo, tc.ref)
		assert.Equal(t, tc.tag, tag, tc.ref)
	}
}
