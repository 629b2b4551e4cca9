package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/ddsbatch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolated(t *testing.T) LoadOptions {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return LoadOptions{WorkDir: t.TempDir()}
}

func TestLoad(t *testing.T) {
	t.Run("loads_embedded_defaults", func(t *testing.T) {
		cfg, err := Load(isolated(t))
		require.NoError(t, err)

		assert.Equal(t, "./GameData", cfg.Root)
		assert.Equal(t, "GameData", cfg.Anchor)
		assert.Equal(t, "default", cfg.Profile)
		assert.Equal(t, 0, cfg.Workers)
		assert.Equal(t, 5*time.Minute, cfg.Timeout)
		assert.Equal(t, []string{"png", "jpg", "tga", "mbm"}, cfg.Extensions)
		assert.Equal(t, 1.0, cfg.Scale.Model)
		assert.Equal(t, 1.0, cfg.Scale.NormalMap)
		assert.Equal(t, "./img2dds/linux64/img2dds", cfg.Encoder.Platforms["linux64"])
		assert.Equal(t, `img2dds\win32\img2dds.exe`, cfg.Encoder.Platforms["win32"])
		assert.Equal(t, 120, cfg.Lint.MaxPatternLength)
		assert.True(t, cfg.Output.Prompt)
	})

	t.Run("project_config_overrides_defaults", func(t *testing.T) {
		opts := isolated(t)
		require.NoError(t, os.WriteFile(filepath.Join(opts.WorkDir, ".ddsbatch.toml"), []byte(`
workers = 4
extensions = ["png"]

[scale]
normal_map = 0.5
`), 0644))

		cfg, err := Load(opts)
		require.NoError(t, err)

		assert.Equal(t, 4, cfg.Workers)
		assert.Equal(t, []string{"png"}, cfg.Extensions, "arrays are replaced, not merged")
		assert.Equal(t, 0.5, cfg.Scale.NormalMap)
		assert.Equal(t, 1.0, cfg.Scale.Model)
	})

	t.Run("user_config_in_yaml", func(t *testing.T) {
		configHome := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", configHome)
		dir := filepath.Join(configHome, "ddsbatch")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("profile: none\ntimeout: 30s\n"), 0644))

		cfg, err := Load(LoadOptions{WorkDir: t.TempDir()})
		require.NoError(t, err)

		assert.Equal(t, "none", cfg.Profile)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("explicit_config_file_must_exist", func(t *testing.T) {
		opts := isolated(t)
		opts.ConfigFile = filepath.Join(opts.WorkDir, "missing.toml")

		_, err := Load(opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("env_vars_override_files", func(t *testing.T) {
		opts := isolated(t)
		t.Setenv("DDSBATCH_ENCODER_PATH", "/opt/img2dds")
		t.Setenv("DDSBATCH_WORKERS", "2")
		t.Setenv("DDSBATCH_LINT_MAX_PATTERN_LENGTH", "80")
		t.Setenv("DDSBATCH_UNRELATED_SETTING", "ignored")

		cfg, err := Load(opts)
		require.NoError(t, err)

		assert.Equal(t, "/opt/img2dds", cfg.Encoder.Path)
		assert.Equal(t, 2, cfg.Workers)
		assert.Equal(t, 80, cfg.Lint.MaxPatternLength)
	})

	t.Run("overrides_win_over_env", func(t *testing.T) {
		opts := isolated(t)
		t.Setenv("DDSBATCH_WORKERS", "2")
		opts.Overrides = map[string]interface{}{
			"workers":     1,
			"root":        "/games/KSP/GameData",
			"scale.model": 0.25,
		}

		cfg, err := Load(opts)
		require.NoError(t, err)

		assert.Equal(t, 1, cfg.Workers)
		assert.Equal(t, "/games/KSP/GameData", cfg.Root)
		assert.Equal(t, 0.25, cfg.Scale.Model)
	})

	t.Run("invalid_values_are_rejected", func(t *testing.T) {
		opts := isolated(t)
		opts.Overrides = map[string]interface{}{"scale.model": 0}

		_, err := Load(opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Equal(t, "scale.model", errors.GetErrorDetails(err)["key"])
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		opts := isolated(t)
		opts.ConfigFile = filepath.Join(opts.WorkDir, "config.ini")
		require.NoError(t, os.WriteFile(opts.ConfigFile, []byte("workers=1"), 0644))

		_, err := Load(opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Root: "./GameData", Anchor: "GameData", Profile: "default",
			Extensions: []string{"png"},
			Scale:      ScaleConfig{Model: 1, NormalMap: 1},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"empty_root", func(c *Config) { c.Root = " " }, "root"},
		{"anchor_with_separator", func(c *Config) { c.Anchor = "KSP/GameData" }, "anchor"},
		{"no_rules_source", func(c *Config) { c.Profile = "" }, "profile"},
		{"negative_workers", func(c *Config) { c.Workers = -1 }, "workers"},
		{"negative_timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout"},
		{"no_extensions", func(c *Config) { c.Extensions = nil }, "extensions"},
		{"zero_normal_scale", func(c *Config) { c.Scale.NormalMap = 0 }, "scale.normal_map"},
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
		})
	}

	t.Run("rules_file_without_profile", func(t *testing.T) {
		cfg := valid()
		cfg.Profile = ""
		cfg.RulesFile = "rules.toml"
		assert.NoError(t, cfg.Validate())
	})
}

func TestNewFromBytes(t *testing.T) {
	k, err := NewFromBytes([]byte("model = [\"a/\", \"b/\"]\n"), ".toml")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/", "b/"}, k.Strings("model"))

	_, err = NewFromBytes([]byte("x"), ".json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}
