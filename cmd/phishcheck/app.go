package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/phishcheck/internal/blocklist"
	"github.com/nao1215/phishcheck/internal/client"
	"github.com/nao1215/phishcheck/internal/config"
	"github.com/nao1215/phishcheck/internal/controller"
	"github.com/nao1215/phishcheck/internal/log"
	"github.com/nao1215/phishcheck/internal/report"
	"github.com/nao1215/phishcheck/internal/storage"
	"github.com/nao1215/phishcheck/internal/view"
	"github.com/spf13/cobra"
)

// app bundles everything a command needs to talk to the service.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      *storage.Store
	cache      *blocklist.Cache
	controller *controller.Controller
	writer     report.Writer

	closers []io.Closer
}

// newApp builds the configuration from cmd and wires the application.
// The caller must Close the returned app.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	logger, logCloser, err := log.New(log.Options{
		Verbose: cfg.Verbose,
		JSON:    cfg.LogJSON,
		File:    cfg.LogFile,
		Writer:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		writer:  report.New(cmd.OutOrStdout(), cfg),
		closers: []io.Closer{logCloser},
	}

	a.store, err = storage.Open(cfg.DataDir, storage.DefaultOptions())
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}
	a.closers = append(a.closers, a.store)
	logger.Debug("local storage opened", "path", a.store.Path())

	a.cache, err = blocklist.Load(cmd.Context(), a.store, blocklist.WithLogger(logger))
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	svc, err := client.New(cfg, client.WithLogger(logger))
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to create service client: %w", err)
	}

	var navigator controller.Navigator = controller.BrowserNavigator{Stderr: cmd.ErrOrStderr()}
	if cfg.PrintOnly {
		navigator = controller.PrintNavigator{Output: cmd.OutOrStdout()}
	}

	a.controller = controller.New(svc, a.cache,
		controller.WithNavigator(navigator),
		controller.WithNotifier(controller.NotifierFunc(func(message string) {
			if _, err := a.writer.WriteAlert(message); err != nil {
				logger.Error("failed to write alert", "error", err)
			}
		})),
		controller.WithBlockMode(cfg.BlockMode),
		controller.WithConcurrency(cfg.Concurrency),
		controller.WithLogger(logger),
	)

	logger.Debug("phishcheck ready",
		"server", cfg.ServerURL,
		"block_mode", cfg.BlockMode,
		"timeout", cfg.Timeout,
		"cached_blocks", a.cache.Len(),
	)

	return a, nil
}

// render writes s with the configured writer.
func (a *app) render(s view.State) error {
	_, err := a.writer.WriteView(s)
	return err
}

// Close releases storage and log files in reverse order of acquisition.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i].Close())
	}
	return errors.Join(errs...)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context, logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}

// buildConfig creates a Config from defaults, the config file, the
// environment and cobra command flags, in increasing order of priority.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(file)
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	envFile, err := flags.GetString("env-file")
	if err != nil {
		return nil, err
	}
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFlags overrides cfg with every flag the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	stringFlags := []struct {
		name string
		dst  *string
	}{
		{"server", &cfg.ServerURL},
		{"proxy", &cfg.ProxyAddress},
		{"data-dir", &cfg.DataDir},
		{"log-file", &cfg.LogFile},
	}
	for _, f := range stringFlags {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetString(f.name)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if flags.Changed("block-mode") {
		v, err := flags.GetString("block-mode")
		if err != nil {
			return err
		}
		cfg.BlockMode = config.BlockMode(v)
	}

	if flags.Changed("timeout") {
		v, err := flags.GetDuration("timeout")
		if err != nil {
			return err
		}
		cfg.Timeout = v
	}

	if flags.Lookup("concurrency") != nil && flags.Changed("concurrency") {
		v, err := flags.GetInt("concurrency")
		if err != nil {
			return err
		}
		cfg.Concurrency = v
	}

	boolFlags := []struct {
		name string
		dst  *bool
	}{
		{"verbose", &cfg.Verbose},
		{"log-json", &cfg.LogJSON},
		{"json", &cfg.JSONOutput},
		{"markdown", &cfg.MarkdownOutput},
		{"print-only", &cfg.PrintOnly},
	}
	for _, f := range boolFlags {
		v, err := flags.GetBool(f.name)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	return nil
}
