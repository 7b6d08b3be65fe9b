package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Given: an empty config file
		path := writeConfig(t, "{}\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: defaults should be filled in
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Empty(t, conf.ScriptPath)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "tictactoe", conf.Redis.Channel)
	})

	t.Run("Values from file", func(t *testing.T) {
		// Given: a config file with every value set
		path := writeConfig(t, `log-level: debug
script-path: ./turns.yml
redis:
  enabled: true
  host: redis
  port: "6380"
  channel: games
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the file values should be used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "./turns.yml", conf.ScriptPath)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "games", conf.Redis.Channel)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		// Given: a config file and a LOG_LEVEL variable
		path := writeConfig(t, "log-level: info\n")
		t.Setenv("LOG_LEVEL", "debug")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the environment should win
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Missing file", func(t *testing.T) {
		// When: a config that does not exist is loaded
		_, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		// Then: an error should be returned and MustLoad should panic
		require.Error(t, err)
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "config.yml"))
		})
	})
}
