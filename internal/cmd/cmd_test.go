package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockhand/dockhand/internal/compose"
	composemocks "github.com/dockhand/dockhand/internal/compose/mocks"
	"github.com/dockhand/dockhand/internal/config"
	"github.com/dockhand/dockhand/internal/project"
	promptmocks "github.com/dockhand/dockhand/internal/prompt/mocks"
)

// testContext builds a command context over a temp projects dir holding a
// single "media" project.
func testContext(t *testing.T, runtime compose.Runtime, prompter *promptmocks.PrompterMock) context.Context {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "media"), 0o755))
	composeFile := filepath.Join(dir, "media", "compose.yaml")
	require.NoError(t, os.WriteFile(composeFile, []byte("services:\n  jellyfin:\n    image: jellyfin/jellyfin\n"), 0o644))

	cfg := &config.Config{
		Projects: config.ProjectsConfig{Dir: dir},
	}

	ctx := context.Background()
	ctx = WithConfig(ctx, cfg)
	ctx = WithRuntime(ctx, runtime)
	ctx = WithPrompter(ctx, prompter)
	return ctx
}

func TestDownConfirmation(t *testing.T) {
	t.Run("declined confirmation leaves the project alone", func(t *testing.T) {
		runtime := &composemocks.RuntimeMock{
			DownFunc: func(_ context.Context, _ *project.Target) error { return nil },
		}
		prompter := &promptmocks.PrompterMock{
			ConfirmFunc: func(_, _ string) (bool, error) { return false, nil },
			PrintFunc:   func(_ string) {},
		}

		downCmd.SetContext(testContext(t, runtime, prompter))
		require.NoError(t, downCmd.Flags().Set("yes", "false"))

		err := downCmd.RunE(downCmd, []string{"media"})

		require.NoError(t, err)
		assert.Empty(t, runtime.DownCalls())
		require.Len(t, prompter.PrintCalls(), 1)
		assert.Equal(t, "Canceled", prompter.PrintCalls()[0].Message)
	})

	t.Run("yes flag skips the prompt", func(t *testing.T) {
		runtime := &composemocks.RuntimeMock{
			DownFunc: func(_ context.Context, _ *project.Target) error { return nil },
		}
		prompter := &promptmocks.PrompterMock{}

		downCmd.SetContext(testContext(t, runtime, prompter))
		require.NoError(t, downCmd.Flags().Set("yes", "true"))

		err := downCmd.RunE(downCmd, []string{"media"})

		require.NoError(t, err)
		require.Len(t, runtime.DownCalls(), 1)
		assert.Equal(t, "media", runtime.DownCalls()[0].Target.Project)
		assert.Empty(t, prompter.ConfirmCalls())
	})

	t.Run("service targets are rejected", func(t *testing.T) {
		runtime := &composemocks.RuntimeMock{}
		prompter := &promptmocks.PrompterMock{}

		downCmd.SetContext(testContext(t, runtime, prompter))
		require.NoError(t, downCmd.Flags().Set("yes", "true"))

		err := downCmd.RunE(downCmd, []string{"media.jellyfin"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "whole projects")
	})
}

func TestValidateService(t *testing.T) {
	runtime := &composemocks.RuntimeMock{
		ConfigFunc: func(_ context.Context, target *project.Target) (*compose.Project, error) {
			return &compose.Project{
				Name: target.Project,
				Services: map[string]compose.Service{
					"jellyfin": {Image: "jellyfin/jellyfin"},
					"sonarr":   {Image: "linuxserver/sonarr"},
				},
			}, nil
		},
	}

	t.Run("known service passes", func(t *testing.T) {
		target := &project.Target{Project: "media", Service: "jellyfin"}
		assert.NoError(t, validateService(context.Background(), runtime, target))
	})

	t.Run("project target passes without a config read", func(t *testing.T) {
		before := len(runtime.ConfigCalls())
		target := &project.Target{Project: "media"}
		assert.NoError(t, validateService(context.Background(), runtime, target))
		assert.Len(t, runtime.ConfigCalls(), before)
	})

	t.Run("unknown service names the declared ones", func(t *testing.T) {
		target := &project.Target{Project: "media", Service: "jelyfin"}
		err := validateService(context.Background(), runtime, target)

		require.ErrorIs(t, err, compose.ErrServiceNotFound)
		assert.Contains(t, err.Error(), "jellyfin, sonarr")
	})
}

func TestResolveTargetErrors(t *testing.T) {
	ctx := testContext(t, &composemocks.RuntimeMock{}, &promptmocks.PrompterMock{})

	t.Run("missing project points at list", func(t *testing.T) {
		_, err := resolveTarget(ctx, "nosuch")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dockhand list")
	})

	t.Run("resolves project and service", func(t *testing.T) {
		target, err := resolveTarget(ctx, "media.jellyfin")
		require.NoError(t, err)
		assert.Equal(t, "media", target.Project)
		assert.Equal(t, "jellyfin", target.Service)
	})

	t.Run("unconfigured projects dir is an error", func(t *testing.T) {
		_, err := resolveTarget(context.Background(), "media")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "projects.dir")
	})
}
