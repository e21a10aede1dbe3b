package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, dir, name, composeFile string) string {
	t.Helper()
	projectDir := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	path := filepath.Join(projectDir, composeFile)
	require.NoError(t, os.WriteFile(path, []byte("services: {}\n"), 0644))
	return path
}

func TestResolve(t *testing.T) {
	t.Run("resolves project without service", func(t *testing.T) {
		dir := t.TempDir()
		file := writeProject(t, dir, "media", "compose.yaml")

		target, err := Resolve(dir, "media")

		require.NoError(t, err)
		assert.Equal(t, "media", target.Project)
		assert.Empty(t, target.Service)
		assert.Equal(t, file, target.ComposeFile)
	})

	t.Run("splits service on first dot", func(t *testing.T) {
		dir := t.TempDir()
		writeProject(t, dir, "media", "compose.yaml")

		target, err := Resolve(dir, "media.redis")

		require.NoError(t, err)
		assert.Equal(t, "media", target.Project)
		assert.Equal(t, "redis", target.Service)
	})

	t.Run("prefers compose.yaml over legacy names", func(t *testing.T) {
		dir := t.TempDir()
		legacy := writeProject(t, dir, "media", "docker-compose.yml")
		preferred := writeProject(t, dir, "media", "compose.yaml")

		target, err := Resolve(dir, "media")

		require.NoError(t, err)
		assert.Equal(t, preferred, target.ComposeFile)
		assert.NotEqual(t, legacy, target.ComposeFile)
	})

	t.Run("finds legacy docker-compose.yml", func(t *testing.T) {
		dir := t.TempDir()
		file := writeProject(t, dir, "media", "docker-compose.yml")

		target, err := Resolve(dir, "media")

		require.NoError(t, err)
		assert.Equal(t, file, target.ComposeFile)
	})

	t.Run("returns ErrNotFound for missing project", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Resolve(dir, "nope")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns ErrNotFound for directory without compose file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0755))

		_, err := Resolve(dir, "empty")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects malformed references", func(t *testing.T) {
		dir := t.TempDir()

		for _, ref := range []string{"", "media.", ".redis", "../escape", "a/b"} {
			_, err := Resolve(dir, ref)
			assert.ErrorIs(t, err, ErrInvalidRef, ref)
		}
	})
}

func TestTarget_String(t *testing.T) {
	assert.Equal(t, "media", Target{Project: "media"}.String())
	assert.Equal(t, "media.redis", Target{Project: "media", Service: "redis"}.String())
}

func TestList(t *testing.T) {
	t.Run("lists sorted projects with compose files", func(t *testing.T) {
		dir := t.TempDir()
		writeProject(t, dir, "zulu", "compose.yml")
		writeProject(t, dir, "alpha", "compose.yaml")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "not-a-project"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "stray-file"), nil, 0644))

		projects, err := List(dir)

		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "zulu"}, projects)
	})

	t.Run("errors for missing directory", func(t *testing.T) {
		_, err := List(filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})
}
