package compose

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/dockhand/dockhand/internal/exec"
	"github.com/dockhand/dockhand/internal/flags"
	"github.com/dockhand/dockhand/internal/project"
)

// CLIConfig configures the compose CLI runtime.
type CLIConfig struct {
	// Binary is the container CLI providing the compose plugin
	// (default: docker).
	Binary string

	// GlobalFlags are extra compose flags applied to every invocation.
	GlobalFlags flags.Flags

	// Inspector resolves container image digests via the engine API.
	// Optional; RunningImageDigest fails without it.
	Inspector ContainerInspector

	// Stdout and Stderr receive streamed subprocess output.
	// Default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// cliRuntime implements Runtime by shelling out to the compose CLI.
type cliRuntime struct {
	exec      exec.Executor
	binary    string
	flagArgs  []string
	inspector ContainerInspector
	stdout    io.Writer
	stderr    io.Writer
}

// NewCLIRuntime creates a Runtime using the compose CLI plugin.
func NewCLIRuntime(e exec.Executor, cfg CLIConfig) Runtime {
	binary := cfg.Binary
	if binary == "" {
		binary = "docker"
	}
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	return &cliRuntime{
		exec:      e,
		binary:    binary,
		flagArgs:  flags.ToArgs(cfg.GlobalFlags),
		inspector: cfg.Inspector,
		stdout:    stdout,
		stderr:    stderr,
	}
}

// composeArgs builds the common invocation prefix:
// compose [global flags] -f <file> -p <project> <subcommand args>.
func (r *cliRuntime) composeArgs(target *project.Target, args ...string) []string {
	out := []string{"compose"}
	out = append(out, r.flagArgs...)
	out = append(out, "-f", target.ComposeFile, "-p", target.Project)
	return append(out, args...)
}

// serviceArgs appends the target's service filter when one is set.
func serviceArgs(target *project.Target, args ...string) []string {
	if target.Service != "" {
		return append(args, target.Service)
	}
	return args
}

// cliError formats an error from the compose CLI, including stderr if available.
func cliError(operation string, result *exec.Result, err error) error {
	if result != nil {
		stderr := strings.TrimSpace(string(result.Stderr))
		if stderr != "" {
			return fmt.Errorf("%s: %s", operation, stderr)
		}
	}
	return fmt.Errorf("%s: %w", operation, err)
}

// run executes a compose subcommand and captures its output.
func (r *cliRuntime) run(ctx context.Context, target *project.Target, args ...string) (*exec.Result, error) {
	return r.exec.Run(ctx, &exec.RunOptions{
		Name: r.binary,
		Args: r.composeArgs(target, args...),
	})
}

// stream executes a compose subcommand with output attached to the
// runtime's writers.
func (r *cliRuntime) stream(ctx context.Context, target *project.Target, args ...string) error {
	_, err := r.exec.Run(ctx, &exec.RunOptions{
		Name:   r.binary,
		Args:   r.composeArgs(target, args...),
		Stdout: r.stdout,
		Stderr: r.stderr,
	})
	return err
}

// configService is the wire shape of a service in `compose config --format json`.
type configService struct {
	Image string          `json:"image"`
	Build json.RawMessage `json:"build"` // string or object; presence means a build context
}

// configOutput is the wire shape of `compose config --format json`.
type configOutput struct {
	Name     string                   `json:"name"`
	Services map[string]configService `json:"services"`
}

func (r *cliRuntime) Config(ctx context.Context, target *project.Target) (*Project, error) {
	result, err := r.run(ctx, target, "config", "--format", "json")
	if err != nil {
		return nil, cliError("read compose config", result, err)
	}

	var out configOutput
	if err := json.Unmarshal(result.Stdout, &out); err != nil {
		return nil, fmt.Errorf("parse compose config: %w", err)
	}

	p := &Project{
		Name:     target.Project,
		Services: make(map[string]Service, len(out.Services)),
	}
	for name, svc := range out.Services {
		p.Services[name] = Service{
			Image: svc.Image,
			Build: len(svc.Build) > 0 && string(svc.Build) != "null",
		}
	}
	return p, nil
}

// psItem is one NDJSON line of `compose ps --format json`.
type psItem struct {
	Name    string `json:"Name"`
	Service string `json:"Service"`
	State   string `json:"State"`
}

func (r *cliRuntime) RunningServices(ctx context.Context, target *project.Target) ([]string, error) {
	result, err := r.run(ctx, target, "ps", "--format", "json", "--status", "running")
	if err != nil {
		return nil, cliError("list running services", result, err)
	}

	seen := make(map[string]bool)
	var services []string
	for _, line := range strings.Split(strings.TrimSpace(string(result.Stdout)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var item psItem
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			return nil, fmt.Errorf("parse compose ps output: %w", err)
		}
		if item.Service == "" || seen[item.Service] {
			continue
		}
		seen[item.Service] = true
		services = append(services, item.Service)
	}

	sort.Strings(services)
	return services, nil
}

func (r *cliRuntime) RunningImageDigest(ctx context.Context, target *project.Target, service string) (string, error) {
	if r.inspector == nil {
		return "", fmt.Errorf("no engine inspector configured")
	}

	result, err := r.run(ctx, target, "ps", "-q", service)
	if err != nil {
		return "", cliError("resolve container id", result, err)
	}

	id, _, _ := strings.Cut(strings.TrimSpace(string(result.Stdout)), "\n")
	if id == "" {
		return "", fmt.Errorf("%w: %s", ErrNoContainer, service)
	}

	inspect, err := r.inspector.ContainerInspect(ctx, id)
	if err != nil {
		return "", fmt.Errorf("inspect container %s: %w", id, err)
	}

	// Image here is the engine's image ID: the digest of the image config
	// blob, directly comparable with the manifest's config digest.
	return inspect.Image, nil
}

func (r *cliRuntime) Up(ctx context.Context, target *project.Target) error {
	if err := r.stream(ctx, target, serviceArgs(target, "up", "-d")...); err != nil {
		return fmt.Errorf("compose up: %w", err)
	}
	return nil
}

func (r *cliRuntime) Down(ctx context.Context, target *project.Target) error {
	if err := r.stream(ctx, target, "down"); err != nil {
		return fmt.Errorf("compose down: %w", err)
	}
	return nil
}

func (r *cliRuntime) Stop(ctx context.Context, target *project.Target) error {
	if err := r.stream(ctx, target, serviceArgs(target, "stop")...); err != nil {
		return fmt.Errorf("compose stop: %w", err)
	}
	return nil
}

func (r *cliRuntime) Restart(ctx context.Context, target *project.Target) error {
	if err := r.stream(ctx, target, serviceArgs(target, "restart")...); err != nil {
		return fmt.Errorf("compose restart: %w", err)
	}
	return nil
}

func (r *cliRuntime) Pull(ctx context.Context, target *project.Target) error {
	if err := r.stream(ctx, target, serviceArgs(target, "pull")...); err != nil {
		return fmt.Errorf("compose pull: %w", err)
	}
	return nil
}

func (r *cliRuntime) Build(ctx context.Context, target *project.Target) error {
	if err := r.stream(ctx, target, serviceArgs(target, "build")...); err != nil {
		return fmt.Errorf("compose build: %w", err)
	}
	return nil
}

func (r *cliRuntime) Logs(ctx context.Context, target *project.Target, opts LogsOptions) error {
	args := []string{"logs"}
	if opts.Follow {
		args = append(args, "--follow")
	}
	if opts.Tail != "" {
		args = append(args, "--tail", opts.Tail)
	}
	if err := r.stream(ctx, target, serviceArgs(target, args...)...); err != nil {
		return fmt.Errorf("compose logs: %w", err)
	}
	return nil
}

func (r *cliRuntime) Exec(ctx context.Context, target *project.Target, command []string) error {
	args := append([]string{"exec", target.Service}, command...)
	return r.execInteractive(ctx, r.composeArgs(target, args...))
}

func (r *cliRuntime) Prune(ctx context.Context) error {
	_, err := r.exec.Run(ctx, &exec.RunOptions{
		Name:   r.binary,
		Args:   []string{"system", "prune", "--force"},
		Stdout: r.stdout,
		Stderr: r.stderr,
	})
	if err != nil {
		return fmt.Errorf("system prune: %w", err)
	}
	return nil
}

// execInteractive runs a compose exec command with TTY support.
func (r *cliRuntime) execInteractive(ctx context.Context, args []string) error {
	stdinFd := int(os.Stdin.Fd())

	// Check if stdin is a terminal
	if !term.IsTerminal(stdinFd) {
		_, err := r.exec.Run(ctx, &exec.RunOptions{
			Name:   r.binary,
			Args:   args,
			Stdin:  os.Stdin,
			Stdout: r.stdout,
			Stderr: r.stderr,
		})
		return err
	}

	// Put terminal in raw mode
	oldState, err := term.MakeRaw(stdinFd)
	if err != nil {
		return fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer func() { _ = term.Restore(stdinFd, oldState) }()

	_, err = r.exec.Run(ctx, &exec.RunOptions{
		Name:   r.binary,
		Args:   args,
		Stdin:  os.Stdin,
		Stdout: r.stdout,
		Stderr: r.stderr,
	})

	return err
}
