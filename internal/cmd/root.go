// Package cmd implements the dockhand CLI commands using Cobra.
// It provides lifecycle commands for compose projects resolved from a
// central projects directory, plus an update check that compares running
// container images against the latest registry digests.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/compose"
	"github.com/dockhand/dockhand/internal/config"
	dhexec "github.com/dockhand/dockhand/internal/exec"
	"github.com/dockhand/dockhand/internal/flags"
	"github.com/dockhand/dockhand/internal/prompt"
	"github.com/dockhand/dockhand/internal/slogger"
)

// appConfig holds the loaded application configuration.
var appConfig *config.Config

// configLoader is used for accessing individual configuration keys.
var configLoader *config.Loader

// verbosity counts -v occurrences for log level selection.
var verbosity int

var rootCmd = &cobra.Command{
	Use:   "dockhand",
	Short: "Manage compose projects from one place",
	Long: `Dockhand dispatches lifecycle commands to Docker Compose projects kept
in a central projects directory, one subdirectory per project.

Targets are referenced as 'project' or 'project.service', so
'dockhand restart media.jellyfin' works from anywhere without changing
into the project directory. 'dockhand check' compares the image digests
of running services against the latest digests published in the
registry and reports which services can be updated.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := checkDependencies(); err != nil {
			return err
		}

		ctx := cmd.Context()
		ctx = slogger.WithLogger(ctx, slogger.New(slogger.Config{Verbosity: verbosity}))

		runtime, err := initRuntime(cmd)
		if err != nil {
			return err
		}

		// Store dependencies in context for subcommands
		ctx = WithConfig(ctx, appConfig)
		ctx = WithLoader(ctx, configLoader)
		ctx = WithRuntime(ctx, runtime)
		ctx = WithPrompter(ctx, prompt.New())
		cmd.SetContext(ctx)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
}

func initConfig() {
	loader, err := config.NewLoader()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize config: %v\n", err)
		return
	}

	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config validation failed: %v\n", err)
	}

	appConfig = cfg
	configLoader = loader
}

// checkDependencies verifies that the configured container CLI is available.
func checkDependencies() error {
	if _, err := exec.LookPath(composeBinary()); err != nil {
		return errors.New("missing required dependency: " + composeBinary())
	}
	return nil
}

// composeBinary returns the container CLI carrying the compose plugin.
func composeBinary() string {
	if appConfig != nil && appConfig.Compose.Binary != "" {
		return appConfig.Compose.Binary
	}
	return config.DefaultComposeBinary
}

// initRuntime builds the compose runtime with all dependencies. The engine
// API connection is best-effort: lifecycle commands work without it, only
// digest resolution needs it.
func initRuntime(cmd *cobra.Command) (compose.Runtime, error) {
	globalFlags, err := getComposeFlags()
	if err != nil {
		return nil, err
	}

	inspector, err := compose.NewEngineClient(cmd.Context())
	if err != nil {
		slogger.L(cmd.Context()).Debug("engine API unavailable", "error", err)
		inspector = nil
	}

	return compose.NewCLIRuntime(dhexec.New(), compose.CLIConfig{
		Binary:      composeBinary(),
		GlobalFlags: globalFlags,
		Inspector:   inspector,
	}), nil
}

// getComposeFlags parses global compose flags from config.
func getComposeFlags() (flags.Flags, error) {
	if appConfig == nil || appConfig.Compose.Flags == nil {
		return make(flags.Flags), nil
	}
	composeFlags, err := flags.FromConfig(appConfig.Compose.Flags)
	if err != nil {
		return nil, fmt.Errorf("parse compose flags: %w", err)
	}
	return composeFlags, nil
}
