package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	utils "github.com/minaorangina/cardtable/internal"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CARDTABLE_CPU_DELAY", "CARDTABLE_SEED", "CARDTABLE_TICK", "CARDTABLE_LOG_LEVEL",
		"CARDTABLE_COLOR", "PORT", "CARDTABLE_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	t.Run("defaults when there is no file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

		utils.AssertNoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
cpu_delay = "250ms"
seed = 42
log_level = "debug"
allowed_origins = ["http://localhost:3000"]
`)

		cfg, err := Load(path)

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.CPUDelay, 250*time.Millisecond)
		utils.AssertEqual(t, cfg.Seed, int64(42))
		utils.AssertEqual(t, cfg.LogLevel, "debug")
		utils.AssertEqual(t, cfg.Tick, 50*time.Millisecond)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "port = 9000\ncpu_delay = \"2s\"\n")
		t.Setenv("PORT", "9100")
		t.Setenv("CARDTABLE_COLOR", "false")

		cfg, err := Load(path)

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.Port, 9100)
		utils.AssertEqual(t, cfg.CPUDelay, 2*time.Second)
		utils.AssertFalse(t, cfg.Colour)
		utils.AssertEqual(t, cfg.Addr(), ":9100")
	})

	t.Run("bad file", func(t *testing.T) {
		path := writeConfig(t, "cpu_delay = [")

		_, err := Load(path)
		utils.AssertErrored(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, "log_level = \"loud\"\n")

		_, err := Load(path)
		utils.AssertErrored(t, err)
	})
}

func TestGetConfigFilePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	utils.AssertEqual(t, GetConfigFilePath(), "/tmp/xdg/cardtable/config.toml")
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "warn"

	logger := cfg.Logger(os.Stderr)

	utils.AssertEqual(t, logger.GetLevel(), logrus.WarnLevel)
}
