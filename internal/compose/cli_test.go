package compose

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockhand/dockhand/internal/exec"
	"github.com/dockhand/dockhand/internal/exec/mocks"
	"github.com/dockhand/dockhand/internal/flags"
	"github.com/dockhand/dockhand/internal/project"
)

// fakeInspector returns a fixed image digest for any container.
type fakeInspector struct {
	image string
	err   error
}

func (f *fakeInspector) ContainerInspect(_ context.Context, _ string) (container.InspectResponse, error) {
	if f.err != nil {
		return container.InspectResponse{}, f.err
	}
	return container.InspectResponse{
		ContainerJSONBase: &container.ContainerJSONBase{Image: f.image},
	}, nil
}

func testTarget() *project.Target {
	return &project.Target{
		Project:     "media",
		ComposeFile: "/srv/compose/media/compose.yaml",
	}
}

func TestCLIRuntime_Config(t *testing.T) {
	ctx := context.Background()

	t.Run("parses services with images and build contexts", func(t *testing.T) {
		mockExec := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, opts *exec.RunOptions) (*exec.Result, error) {
				assert.Equal(t, "docker", opts.Name)
				assert.Equal(t, []string{
					"compose", "-f", "/srv/compose/media/compose.yaml", "-p", "media",
					"config", "--format", "json",
				}, opts.Args)

				return &exec.Result{
					Stdout: []byte(`{
						"name": "media",
						"services": {
							"redis": {"image": "redis"},
							"app": {"image": "example/app", "build": {"context": "."}}
						}
					}`),
				}, nil
			},
		}

		runtime := NewCLIRuntime(mockExec, CLIConfig{})
		p, err := runtime.Config(ctx, testTarget())

		require.NoError(t, err)
		assert.Equal(t, Service{Image: "redis"}, p.Services["redis"])
		assert.Equal(t, Service{Image: "example/app", Build: true}, p.Services["app"])
	})

	t.Run("includes global flags in invocation", func(t *testing.T) {
		mockExec := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, opts *exec.RunOptions) (*exec.Result, error) {
				assert.Equal(t, "compose", opts.Args[0])
				assert.Contains(t, opts.Args, "--ansi=never")

				return &exec.Result{Stdout: []byte(`{"services": {}}`)}, nil
			},
		}

		runtime := NewCLIRuntime(mockExec, CLIConfig{
			GlobalFlags: flags.Flags{"ansi": "never"},
		})
		_, err := runtime.Config(ctx, testTarget())

		require.NoError(t, err)
	})

	t.Run("surfaces stderr on failure", func(t *testing.T) {
		mockExec := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, _ *exec.RunOptions) (*exec.Result, error) {
				return &exec.Result{
					Stderr:   []byte("no configuration file provided\n"),
					ExitCode: 14,
				}, errors.New("exit status 14")
			},
		}

		runtime := NewCLIRuntime(mockExec, CLIConfig{})
		_, err := runtime.Config(ctx, testTarget())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no configuration file provided")
	})
}

func TestCLIRuntime_RunningServices(t *testing.T) {
	ctx := context.Background()

	t.Run("parses NDJSON and sorts service names", func(t *testing.T) {
		mockExec := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, opts *exec.RunOptions) (*exec.Result, error) {
				assert.Contains(t, opts.Args, "ps")
				assert.Contains(t, opts.Args, "--status")
				assert.Contains(t, opts.Args, "running")

				ndjson := strings.Join([]string{
					`{"Name": "media-redis-1", "Service": "redis", "State": "running"}`,
					`{"Name": "media-app-1", "Service": "app", "State": "running"}`,
				}, "\n")
				return &exec.Result{Stdout: []byte(ndjson)}, nil
			},
		}

		runtime := NewCLIRuntime(mockExec, CLIConfig{})
		services, err := runtime.RunningServices(ctx, testTarget())

		require.NoError(t, err)
		assert.Equal(t, []string{"app", "redis"}, services)
	})

	t.Run("deduplicates replicated services", func(t *testing.T) {
		mockExec := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, _ *exec.RunOptions) (*exec.Result, error) {
				ndjson := strings.Join([]string{
					`{"Name": "media-app-1", "Service": "app", "State": "running"}`,
					`{"Name": "media-app-2", "Service": "app", "State": "running"}`,
				}, "\n")
				return &exec.Result{Stdout: []byte(ndjson)}, nil
			},
		}

		runtime := NewCLIRuntime(mockExec, CLIConfig{})
		services, err := runtime.RunningServices(ctx, testTarget())

		require.NoError(t, err)
		assert.Equal(t, []string{"app"}, services)
	})

	t.Run("handles empty output", func(t *testing.T) {
		mockExec := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, _ *exec.RunOptions) (*exec.Result, error) {
				return &exec.Result{Stdout: []byte("")}, nil
			},
		}

		runtime := NewCLIRuntime(mockExec, CLIConfig{})
		services, err := runtime.RunningServices(ctx, testTarget())

		require.NoError(t, err)
		assert.Empty(t, services)
	})
}

func TestCLIRuntime_RunningImageDigest(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves container id then inspects image", func(t *testing.T) {
		mockExec := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, opts *exec.RunOptions) (*exec.Result, error) {
				assert.Contains(t, opts.Args, "ps")
				assert.Contains(t, opts.Args, "-q")
				assert.Contains(t, opts.Args, "redis")
				return &exec.Result{Stdout: []byte("abc123\n")}, nil
			},
		}
		inspector := &fakeInspector{image: "sha256:aaa111"}

		runtime := NewCLIRuntime(mockExec, CLIConfig{Inspector: inspector})
		digest, err := runtime.RunningImageDigest(ctx, testTarget(), "redis")

		require.NoError(t, err)
		assert.Equal(t, "sha256:aaa111", digest)
	})

	t.Run("returns ErrNoContainer when nothing running", func(t *testing.T) {
		mockExec := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, _ *exec.RunOptions) (*exec.Result, error) {
				return &exec.Result{Stdout: []byte("\n")}, nil
			},
		}

		runtime := NewCLIRuntime(mockExec, CLIConfig{Inspector: &fakeInspector{}})
		_, err := runtime.RunningImageDigest(ctx, testTarget(), "redis")

		assert.ErrorIs(t, err, ErrNoContainer)
	})

	t.Run("wraps inspect failures", func(t *testing.T) {
		mockExec := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, _ *exec.RunOptions) (*exec.Result, error) {
				return &exec.Result{Stdout: []byte("abc123\n")}, nil
			},
		}
		inspector := &fakeInspector{err: errors.New("engine unavailable")}

		runtime := NewCLIRuntime(mockExec, CLIConfig{Inspector: inspector})
		_, err := runtime.RunningImageDigest(ctx, testTarget(), "redis")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "engine unavailable")
	})
}

func TestCLIRuntime_Lifecycle(t *testing.T) {
	ctx := context.Background()

	capture := func(args *[][]string) *mocks.ExecutorMock {
		return &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, opts *exec.RunOptions) (*exec.Result, error) {
				*args = append(*args, opts.Args)
				return &exec.Result{}, nil
			},
		}
	}

	t.Run("up runs detached", func(t *testing.T) {
		var calls [][]string
		runtime := NewCLIRuntime(capture(&calls), CLIConfig{})

		require.NoError(t, runtime.Up(ctx, testTarget()))
		assert.Equal(t, []string{
			"compose", "-f", "/srv/compose/media/compose.yaml", "-p", "media",
			"up", "-d",
		}, calls[0])
	})

	t.Run("service filter is appended when targeted", func(t *testing.T) {
		var calls [][]string
		runtime := NewCLIRuntime(capture(&calls), CLIConfig{})

		target := testTarget()
		target.Service = "redis"

		require.NoError(t, runtime.Restart(ctx, target))
		assert.Equal(t, "restart", calls[0][5])
		assert.Equal(t, "redis", calls[0][6])
	})

	t.Run("down ignores the service filter", func(t *testing.T) {
		var calls [][]string
		runtime := NewCLIRuntime(capture(&calls), CLIConfig{})

		target := testTarget()
		target.Service = "redis"

		require.NoError(t, runtime.Down(ctx, target))
		assert.Equal(t, "down", calls[0][len(calls[0])-1])
	})

	t.Run("logs builds follow and tail flags", func(t *testing.T) {
		var calls [][]string
		runtime := NewCLIRuntime(capture(&calls), CLIConfig{})

		require.NoError(t, runtime.Logs(ctx, testTarget(), LogsOptions{Follow: true, Tail: "100"}))
		assert.Contains(t, calls[0], "logs")
		assert.Contains(t, calls[0], "--follow")
		assert.Contains(t, calls[0], "--tail")
		assert.Contains(t, calls[0], "100")
	})

	t.Run("prune runs system prune forced", func(t *testing.T) {
		var calls [][]string
		runtime := NewCLIRuntime(capture(&calls), CLIConfig{})

		require.NoError(t, runtime.Prune(ctx))
		assert.Equal(t, []string{"system", "prune", "--force"}, calls[0])
	})

	t.Run("uses configured binary", func(t *testing.T) {
		var names []string
		mockExec := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, opts *exec.RunOptions) (*exec.Result, error) {
				names = append(names, opts.Name)
				return &exec.Result{}, nil
			},
		}
		runtime := NewCLIRuntime(mockExec, CLIConfig{Binary: "podman"})

		require.NoError(t, runtime.Pull(ctx, testTarget()))
		assert.Equal(t, []string{"podman"}, names)
	})
}
