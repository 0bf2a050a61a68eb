package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/ragenv/environment"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "ragenv",
	Short:   "Model servers for RAG integration tests",
	Long: `ragenv loads the application config and runs the Ollama servers
(embedding and generative) that the integration tests talk to.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settingsFile, _ := cmd.Flags().GetString("settings")
		settings, err := environment.LoadSettings(settingsFile, cmd.Flags())
		if err != nil {
			return err
		}
		setupLogging(settings)
		cmd.SetContext(withSettings(cmd.Context(), settings))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("settings", "", "harness settings file (default: ./ragenv.yaml)")
	rootCmd.PersistentFlags().String("app-config", "", "application config (default: config/application.conf, env: RAGENV_APP_CONFIG)")
	rootCmd.PersistentFlags().String("data-dir", "", "model cache root (default: data, env: RAGENV_DATA_DIR)")
	rootCmd.PersistentFlags().Int("embedding-port", 0, "embedding server host port (default: 11434, env: RAGENV_EMBEDDING_PORT)")
	rootCmd.PersistentFlags().Int("generative-port", 0, "generative server host port (default: 11435, env: RAGENV_GENERATIVE_PORT)")
	rootCmd.PersistentFlags().Duration("startup-timeout", 0, "container readiness timeout (default: 60s, env: RAGENV_STARTUP_TIMEOUT)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default: info, env: RAGENV_LOG_LEVEL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
