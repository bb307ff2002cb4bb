package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "config.jsonc")
	cfg, err := Load(path)
	assert.NoError(err)

	assert.Equal("warn", cfg.LogLevel)
	assert.Equal("text", cfg.LogFormat)
	assert.Equal(20, cfg.RecentLimit)
	assert.Equal("auto", cfg.Color)
	assert.NotEmpty(cfg.RecentDB)
	assert.Empty(cfg.Pinned)
	assert.Equal(path, cfg.Path())
}

func TestLoad_HuJSON(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "config.jsonc")
	err := os.WriteFile(path, []byte(`{
		// chatty while debugging
		"logLevel": "debug",
		"logFormat": "json",
		"recentLimit": 5,
		"pinned": ["/src/a", "/src/b",], // trailing commas are fine
	}`), 0644)
	assert.NoError(err)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal("debug", cfg.LogLevel)
	assert.Equal("json", cfg.LogFormat)
	assert.Equal(5, cfg.RecentLimit)
	assert.Equal("auto", cfg.Color, "unset fields keep their default")
	assert.Equal([]string{"/src/a", "/src/b"}, cfg.Pinned)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"syntax":     `{"logLevel": }`,
		"level":      `{"logLevel": "loud"}`,
		"format":     `{"logFormat": "xml"}`,
		"color":      `{"color": "sometimes"}`,
		"limit":      `{"recentLimit": -1}`,
		"wrong type": `{"pinned": "/src"}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.jsonc")
			assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestDefaultPath_Env(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/projtree.jsonc")

	path, err := DefaultPath()
	assert.NoError(t, err)
	assert.Equal(t, "/etc/projtree.jsonc", path)
}

func TestPin(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "nested", "config.jsonc")

	added, err := Pin(path, "/src/a")
	assert.NoError(err)
	assert.True(added)

	added, err = Pin(path, "/src/a")
	assert.NoError(err)
	assert.False(added, "pinning twice is a no-op")

	added, err = Pin(path, "/src/b")
	assert.NoError(err)
	assert.True(added)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Contains(string(data), "// projtree configuration")

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal([]string{"/src/a", "/src/b"}, cfg.Pinned)

	_, err = Pin(path, "")
	assert.Error(err)
}

func TestPin_KeepsExistingSettings(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "config.jsonc")
	assert.NoError(os.WriteFile(path, []byte("{\n  // keep\n  \"logLevel\": \"info\"\n}\n"), 0644))

	added, err := Pin(path, "/src/c")
	assert.NoError(err)
	assert.True(added)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Contains(string(data), "// keep")

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal("info", cfg.LogLevel)
	assert.Equal([]string{"/src/c"}, cfg.Pinned)
}

func TestLoadOrDefault(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "config.jsonc")
	assert.NoError(os.WriteFile(path, []byte(`{"logLevel": "loud", "pinned": ["/src/a"]}`), 0644))

	cfg := LoadOrDefault(path)
	assert.Error(cfg.LoadError)
	assert.Equal("warn", cfg.LogLevel)
	assert.Empty(cfg.Pinned, "nothing from a rejected file is kept")
	assert.Equal(path, cfg.Path())

	assert.NoError(os.WriteFile(path, []byte(`{"logLevel": "debug"}`), 0644))
	cfg = LoadOrDefault(path)
	assert.NoError(cfg.LoadError)
	assert.Equal("debug", cfg.LogLevel)
}
