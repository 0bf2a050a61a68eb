package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/ragenv/config"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the decoded application config",
	Long: `Load the application config and print the typed result.

Fields that were missing or failed to parse print as null; the reason
for each failure is logged.`,
	RunE: runShow,
}

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	settings, err := settingsFromContext(cmd.Context())
	if err != nil {
		return err
	}

	app, err := config.LoadApp(settings.AppConfig)
	if err != nil {
		return err
	}

	return printConfig(cmd.OutOrStdout(), app, showJSON)
}

func printConfig(w io.Writer, app *config.AppConfig, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(app)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(app); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
