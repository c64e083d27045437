package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joeshaw/envdecode"
	"github.com/sirupsen/logrus"
)

// Config holds every setting. Values come from the defaults, then the
// config file, then the environment.
type Config struct {
	CPUDelay       time.Duration `toml:"cpu_delay" env:"CARDTABLE_CPU_DELAY"`
	Seed           int64         `toml:"seed" env:"CARDTABLE_SEED"` // 0 seeds from the clock
	Tick           time.Duration `toml:"tick" env:"CARDTABLE_TICK"`
	LogLevel       string        `toml:"log_level" env:"CARDTABLE_LOG_LEVEL"`
	Colour         bool          `toml:"colour" env:"CARDTABLE_COLOR"`
	Port           int           `toml:"port" env:"PORT"`
	AllowedOrigins []string      `toml:"allowed_origins" env:"CARDTABLE_ALLOWED_ORIGINS"` // semicolon separated in the environment
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		CPUDelay:       time.Second,
		Tick:           50 * time.Millisecond,
		LogLevel:       "info",
		Colour:         true,
		Port:           8000,
		AllowedOrigins: []string{"*"},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardtable", "config.toml")
}

// Load reads the config file at path, or the default path when path is
// empty, then applies the environment. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = GetConfigFilePath()
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("error decoding config file: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("error reading config file: %w", err)
	}

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, fmt.Errorf("error decoding environment: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings the games cannot run with.
func (c Config) Validate() error {
	if c.CPUDelay <= 0 {
		return fmt.Errorf("cpu_delay must be positive, got %s", c.CPUDelay)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", c.Tick)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Addr is the address the web server listens on.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Logger builds a logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return logger
}
