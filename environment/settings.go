package environment

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings controls how the harness runs the model servers. It is separate
// from the application config, which only names the models.
type Settings struct {
	AppConfig      string         `mapstructure:"app_config" validate:"required"`
	DataDir        string         `mapstructure:"data_dir" validate:"required"`
	Image          string         `mapstructure:"image" validate:"required"`
	MemoryLimit    int64          `mapstructure:"memory_limit_bytes" validate:"min=0"`
	StartupTimeout time.Duration  `mapstructure:"startup_timeout" validate:"gt=0"`
	Embedding      ServerSettings `mapstructure:"embedding"`
	Generative     ServerSettings `mapstructure:"generative"`
	Log            LogSettings    `mapstructure:"log"`
	Env            string         `mapstructure:"env"`
}

// ServerSettings holds the per-container settings.
type ServerSettings struct {
	Port          int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	CacheDir      string `mapstructure:"cache_dir" validate:"required"`
	ContainerName string `mapstructure:"container_name"`
}

// LogSettings holds logging configuration.
type LogSettings struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"app-config":      "app_config",
	"data-dir":        "data_dir",
	"startup-timeout": "startup_timeout",
	"embedding-port":  "embedding.port",
	"generative-port": "generative.port",
	"log-level":       "log.level",
}

// bindFlags binds CLI flags to viper keys with custom name mapping.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		viperKey, ok := flagToViperKey[f.Name]
		if !ok {
			return
		}

		// Only bind if the flag was explicitly set
		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app_config", "config/application.conf")
	v.SetDefault("data_dir", "data")
	v.SetDefault("image", "ollama/ollama:0.5.13")
	v.SetDefault("memory_limit_bytes", int64(8)<<30)
	v.SetDefault("startup_timeout", 60*time.Second)

	v.SetDefault("embedding.port", 11434)
	v.SetDefault("embedding.cache_dir", "ollama_cache_embedding")
	v.SetDefault("embedding.container_name", "ollama-embedding")

	v.SetDefault("generative.port", 11435)
	v.SetDefault("generative.cache_dir", "ollama_cache_generative")
	v.SetDefault("generative.container_name", "ollama-generative")

	v.SetDefault("log.level", "info")
	v.SetDefault("env", "dev")
}

// LoadSettings reads harness settings and validates them.
// Order of precedence (highest to lowest): flags > env > settings file > defaults
//
// Parameters:
//   - settingsFile: YAML settings file; empty looks for ./ragenv.yaml
//   - flags: cobra flag set for flag binding (can be nil)
func LoadSettings(settingsFile string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	setDefaults(v)

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings file: %w", err)
		}
	} else {
		v.SetConfigName("ragenv")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading settings file", "err", err)
			}
		}
	}

	v.SetEnvPrefix("RAGENV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindFlags(v, flags)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}
	if err := s.checkDistinct(); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}

	return &s, nil
}

// checkDistinct rejects settings where both servers would share a port,
// a cache directory or a container name.
func (s *Settings) checkDistinct() error {
	if s.Embedding.Port == s.Generative.Port {
		return fmt.Errorf("%w: embedding and generative share port %d", ErrInvalidSettings, s.Embedding.Port)
	}
	if s.Embedding.CacheDir == s.Generative.CacheDir {
		return fmt.Errorf("%w: embedding and generative share cache dir %q", ErrInvalidSettings, s.Embedding.CacheDir)
	}
	if s.Embedding.ContainerName != "" && s.Embedding.ContainerName == s.Generative.ContainerName {
		return fmt.Errorf("%w: embedding and generative share container name %q", ErrInvalidSettings, s.Embedding.ContainerName)
	}
	return nil
}
