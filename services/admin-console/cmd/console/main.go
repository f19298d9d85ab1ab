// services/admin-console/cmd/console/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"carniceria-admin/services/admin-console/internal/client"
	"carniceria-admin/services/admin-console/internal/config"
	"carniceria-admin/services/admin-console/internal/manager"
	"carniceria-admin/services/admin-console/internal/snapshot"
	"carniceria-admin/shared/pkg/logger"
)

var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var baseURL string
	var noSnapshot bool

	rootCmd := &cobra.Command{
		Use:           "console",
		Short:         "Administración de tipos de pago",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noSnapshot, "no-snapshot", false, "do not read or write the local snapshot")

	opts := func() appOptions {
		return appOptions{baseURL: baseURL, noSnapshot: noSnapshot}
	}

	rootCmd.AddCommand(listCmd(opts))
	rootCmd.AddCommand(searchCmd(opts))
	rootCmd.AddCommand(addCmd(opts))
	rootCmd.AddCommand(shellCmd(opts))

	return rootCmd
}

type appOptions struct {
	baseURL    string
	noSnapshot bool
}

// app wires the manager for one command invocation.
type app struct {
	manager *manager.Manager
	logger  *zap.Logger
	out     io.Writer
	closers []func() error
}

func newApp(opts appOptions, out io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.baseURL != "" {
		cfg.BaseURL = opts.baseURL
	}

	log := logger.New("admin-console", cfg.Environment)
	if cfg.Environment != "development" {
		// Notifications already reach the terminal; keep stderr for problems.
		log = log.WithOptions(zap.IncreaseLevel(zap.WarnLevel))
	}
	a := &app{logger: log, out: out}
	a.closers = append(a.closers, func() error { log.Sync(); return nil })

	api := client.New(cfg.BaseURL, cfg.Timeout, log)
	notifier := manager.NewConsoleNotifier(out, log)

	var mopts []manager.Option
	if !opts.noSnapshot && cfg.SnapshotPath != "" {
		store, err := snapshot.Open(cfg.SnapshotPath)
		if err != nil {
			log.Warn("snapshot disabled", zap.String("path", cfg.SnapshotPath), zap.Error(err))
		} else {
			a.closers = append(a.closers, store.Close)
			mopts = append(mopts, manager.WithSnapshots(store))
		}
	}

	a.manager = manager.New(api, api, notifier, log, mopts...)
	return a, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
