package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used to sign vault entry writes. Must match
	// the server's APP_HASH_KEY when that is set.
	HashKey string
	// VaultSalt is the deployment key derivation salt.
	VaultSalt string
	// KDFIterations is the PBKDF2 iteration count.
	KDFIterations int
	// Version is the client version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Path is the SQLite file of the local key store.
	Path string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration from
// environment variables and an optional JSON file. Command-line flags are
// owned by the client CLI, so jsonPath (from its --config flag) overrides
// the CONFIG environment variable when non-empty.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	b := newConfigBuilder().withEnv()
	if jsonPath != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})
	}

	cfg, err := b.withJSON().build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:       cfg.App.HashKey,
			VaultSalt:     cfg.App.VaultSalt,
			KDFIterations: cfg.App.KDFIterations,
			Version:       cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Path: cfg.Storage.Local.Path,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultLocalDBPath
	}
}
