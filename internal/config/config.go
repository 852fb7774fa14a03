package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	UI     UIConfig
	Log    LogConfig
}

// ServerConfig points at the voting frontend API.
type ServerConfig struct {
	URL     string
	Timeout time.Duration
}

// UIConfig holds presentation settings. The notification hide delay is fixed
// at 5s and deliberately not configurable.
type UIConfig struct {
	CoalesceNotifications bool `mapstructure:"coalesce_notifications"`
}

// LogConfig holds logrus settings. The TUI owns stdout so logs go to a file.
type LogConfig struct {
	File  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix VOTECHAIN_.
// A .env file in the working directory is loaded first; existing env vars win.
func Load() (Config, error) {
	return LoadFile(os.Getenv("VOTECHAIN_CONFIG"))
}

// LoadFile is Load with an explicit config path. An empty path searches the
// default config directory.
func LoadFile(cfgPath string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// default values
	v.SetDefault("server.url", "http://127.0.0.1:5001")
	v.SetDefault("server.timeout", 10*time.Second)
	v.SetDefault("ui.coalesce_notifications", false)
	// no home directory means no default log file; logging then discards
	logFile := ""
	home, homeErr := os.UserHomeDir()
	if homeErr == nil {
		logFile = filepath.Join(home, ".local", "state", "votechain", "votechain.log")
	}
	v.SetDefault("log.file", logFile)
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if homeErr == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "votechain"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VOTECHAIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path that does not exist is an error, a missing default is not
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Server.URL = strings.TrimRight(strings.TrimSpace(c.Server.URL), "/")
	if c.Server.URL == "" {
		return Config{}, fmt.Errorf("server.url must not be empty")
	}
	return c, nil
}

// DefaultPath is the config file used when neither --config nor
// VOTECHAIN_CONFIG names one.
func DefaultPath() (string, error) {
	if p := os.Getenv("VOTECHAIN_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config path: %w", err)
	}
	return filepath.Join(home, ".config", "votechain", "config.toml"), nil
}

// Save writes the provided config to path, creating the directory if needed.
// An empty path resolves to DefaultPath.
func Save(path string, cfg Config) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("server.url", cfg.Server.URL)
	v.Set("server.timeout", cfg.Server.Timeout.String())
	v.Set("ui.coalesce_notifications", cfg.UI.CoalesceNotifications)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
