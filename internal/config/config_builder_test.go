package config

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v StructuredJSONConfig) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeConfigFile(t, string(data))
}

func TestConfigBuilder_Build(t *testing.T) {
	t.Run("later sources override non-zero fields", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs,
			&StructuredConfig{App: App{Version: "env", TokenIssuer: "env-issuer"}},
			&StructuredConfig{App: App{Version: "json"}},
		)

		cfg, err := b.build()
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.App.Version)
		assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	})

	t.Run("no sources", func(t *testing.T) {
		cfg, err := newConfigBuilder().build()
		require.NoError(t, err)
		assert.Equal(t, StructuredConfig{}, *cfg)
	})

	t.Run("collected error wins", func(t *testing.T) {
		sourceErr := errors.New("source failed")
		b := newConfigBuilder()
		b.err = sourceErr

		cfg, err := b.build()
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, sourceErr)
	})
}

func TestConfigBuilder_WithEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_VAULT_SALT": "team-salt"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "team-salt", b.configs[0].App.VaultSalt)

	setEnvVars(t, map[string]string{"APP_KDF_ITERATIONS": "lots"})
	b = newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestConfigBuilder_WithJSON(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	second := StructuredJSONConfig{}
	second.App.Version = "second"

	t.Run("no path is a no-op", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{})

		b.withJSON()
		require.NoError(t, b.err)
		assert.Len(t, b.configs, 1)
	})

	t.Run("last path wins", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs,
			&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
			&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
		)

		cfg, err := b.withJSON().build()
		require.NoError(t, err)
		assert.Equal(t, "second", cfg.App.Version)
	})

	t.Run("unreadable file", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: writeConfigFile(t, "[")})

		_, err := b.withJSON().build()
		assert.ErrorContains(t, err, "error decoding json config")
	})
}

func validServerConfig() *StructuredConfig {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "sign"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/vault"}},
	}
	cfg.applyServerDefaults()
	return cfg
}

func TestApplyServerDefaults(t *testing.T) {
	cfg := validServerConfig()

	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenAudience, cfg.App.TokenAudience)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.NoError(t, cfg.validate())
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"missing dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"missing sign key", func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"negative duration", func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Second }, ErrInvalidAppConfigs},
		{"missing address", func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultLocalDBPath, cfg.Storage.Path)
	assert.Zero(t, cfg.App.KDFIterations)
}

func TestGetClientConfig_EnvAndJSON(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ADAPTER_ADDRESS", "http://env:8080")
	t.Setenv("APP_VAULT_SALT", "env-salt")

	payload := StructuredJSONConfig{}
	payload.Adapter.HTTPAddress = "https://json.example.com"
	payload.Storage.Local.Path = "/tmp/json.db"

	cfg, err := GetClientConfig(writeTempJSONConfig(t, payload))
	require.NoError(t, err)

	assert.Equal(t, "https://json.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/json.db", cfg.Storage.Path)
	assert.Equal(t, "env-salt", cfg.App.VaultSalt)
}

func TestGetClientConfig_Invalid(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORAGE_LOCAL_PATH", ":memory:")
	_, err := GetClientConfig("")
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)

	clearEnvVars(t)
	t.Setenv("APP_KDF_ITERATIONS", "-1")
	_, err = GetClientConfig("")
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)

	_, err = GetClientConfig("/nonexistent/config.json")
	assert.Error(t, err)
}
