package cmd

import (
	"context"

	"github.com/dockhand/dockhand/internal/compose"
	"github.com/dockhand/dockhand/internal/config"
	"github.com/dockhand/dockhand/internal/prompt"
)

type contextKey string

const (
	configKey   contextKey = "config"
	loaderKey   contextKey = "loader"
	runtimeKey  contextKey = "runtime"
	prompterKey contextKey = "prompter"
)

// WithConfig adds the config to the context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext retrieves the config from context.
func ConfigFromContext(ctx context.Context) *config.Config {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	if !ok {
		return nil
	}
	return cfg
}

// WithLoader adds the config loader to the context.
func WithLoader(ctx context.Context, loader *config.Loader) context.Context {
	return context.WithValue(ctx, loaderKey, loader)
}

// LoaderFromContext retrieves the config loader from context.
func LoaderFromContext(ctx context.Context) *config.Loader {
	loader, ok := ctx.Value(loaderKey).(*config.Loader)
	if !ok {
		return nil
	}
	return loader
}

// WithRuntime adds the compose runtime to the context.
func WithRuntime(ctx context.Context, runtime compose.Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey, runtime)
}

// RuntimeFromContext retrieves the compose runtime from context.
func RuntimeFromContext(ctx context.Context) compose.Runtime {
	runtime, ok := ctx.Value(runtimeKey).(compose.Runtime)
	if !ok {
		return nil
	}
	return runtime
}

// WithPrompter adds the prompter to the context.
func WithPrompter(ctx context.Context, p prompt.Prompter) context.Context {
	return context.WithValue(ctx, prompterKey, p)
}

// PrompterFromContext retrieves the prompter from context.
func PrompterFromContext(ctx context.Context) prompt.Prompter {
	p, ok := ctx.Value(prompterKey).(prompt.Prompter)
	if !ok {
		return nil
	}
	return p
}
