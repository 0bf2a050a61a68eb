package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sagarc03/ragenv/config"
	"github.com/sagarc03/ragenv/environment"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Start the model servers and keep them running",
	Long: `Start the embedding and generative Ollama containers, pull their
models and health-check them. The containers run until the command is
interrupted, then they are terminated.`,
	RunE: runUp,
}

func init() {
	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
	settings, err := settingsFromContext(cmd.Context())
	if err != nil {
		return err
	}

	app, err := config.LoadApp(settings.AppConfig)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env, err := environment.Setup(ctx, app, settings)
	if err != nil {
		return fmt.Errorf("setup environment: %w", err)
	}
	defer func() {
		// ctx is already canceled here; teardown gets a fresh one.
		if err := env.Teardown(context.WithoutCancel(ctx)); err != nil {
			slog.Error("teardown failed", "err", err)
		}
	}()

	if err := env.HealthCheck(ctx); err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	for _, s := range env.Servers() {
		slog.Info("server ready", "role", s.Spec.Role, "model", s.Spec.Model, "url", s.URL)
	}
	slog.Info("environment ready, press Ctrl+C to stop", "session", env.SessionID)

	<-ctx.Done()
	return nil
}
