package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.True(t, cfg.Production())

	params, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, mines.Easy, params)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"mode": "development",
		"difficulty": "hard",
		"seed": 42,
		"tick_interval": "250ms",
		"log": {"level": "warn", "max_backups": 7}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Development())
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval.Duration)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Log.MaxBackups)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB, "defaults survive partial files")
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
mode: development
difficulty: "16:16:40"
tick_interval: 1000000
log:
  file: /tmp/mines.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "16:16:40", cfg.Difficulty)
	assert.Equal(t, time.Millisecond, cfg.TickInterval.Duration)
	assert.Equal(t, "/tmp/mines.log", cfg.Log.File)

	params, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, mines.Medium, params)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, "config.json", `{"difficulty": "hard"}`)
	t.Setenv("MINES_DIFFICULTY", "medium")
	t.Setenv("MINES_SEED", "7")
	t.Setenv("MINES_TICK", "2s")
	t.Setenv("MINES_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "medium", cfg.Difficulty)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 2*time.Second, cfg.TickInterval.Duration)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.json", `{"mode": `))
		require.Error(t, err)
	})

	t.Run("bad difficulty", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.json", `{"difficulty": "9:9:81"}`))
		require.ErrorIs(t, err, mines.ErrInvalidConfiguration)
	})

	t.Run("bad tick", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.yml", "tick_interval: soon\n"))
		require.Error(t, err)
	})
}

func TestDurationJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, d.Duration)

	require.NoError(t, json.Unmarshal([]byte(`5`), &d))
	assert.Equal(t, time.Duration(5), d.Duration)

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))

	b, err := json.Marshal(Duration{time.Second})
	require.NoError(t, err)
	assert.JSONEq(t, `"1s"`, string(b))
}

func TestSetupLogging(t *testing.T) {
	t.Run("mode picks level", func(t *testing.T) {
		log := logrus.New()
		cfg := Default()
		require.NoError(t, cfg.SetupLogging(log))
		assert.Equal(t, logrus.InfoLevel, log.GetLevel())

		cfg.Mode = "development"
		require.NoError(t, cfg.SetupLogging(log))
		assert.Equal(t, logrus.DebugLevel, log.GetLevel())

		cfg.Log.Level = "error"
		require.NoError(t, cfg.SetupLogging(log))
		assert.Equal(t, logrus.ErrorLevel, log.GetLevel())
	})

	t.Run("bad level", func(t *testing.T) {
		cfg := Default()
		cfg.Log.Level = "loud"
		assert.Error(t, cfg.SetupLogging(logrus.New()))
	})

	t.Run("rotating file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mines.log")
		cfg := Default()
		cfg.Log.File = path

		log := logrus.New()
		log.SetOutput(os.Stderr)
		require.NoError(t, cfg.SetupLogging(log))
		log.WithField("session", "abc").Info("session started")

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"msg":"session started"`)
		assert.Contains(t, string(b), `"session":"abc"`)
	})
}
