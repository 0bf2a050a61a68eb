package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagarc03/ragenv/config"
	"github.com/sagarc03/ragenv/environment"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Health-check running model servers",
	Long: `Ask the servers on the configured ports for their model lists and
verify each one has the model named in the application config.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	settings, err := settingsFromContext(cmd.Context())
	if err != nil {
		return err
	}

	app, err := config.LoadApp(settings.AppConfig)
	if err != nil {
		return err
	}

	env, err := environment.Attach(app, settings)
	if err != nil {
		return err
	}

	if err := env.HealthCheck(cmd.Context()); err != nil {
		return err
	}

	for _, s := range env.Servers() {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s %s at %s\n", s.Spec.Role, s.Spec.Model, s.URL)
	}
	return nil
}
