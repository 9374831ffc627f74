package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenAudience string   `json:"token_audience"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
		VaultSalt     string   `json:"vault_salt"`
		KDFIterations int      `json:"kdf_iterations"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Local struct {
			Path string `json:"path"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

// parseJSON reads a vault configuration file. Missing sections leave the
// matching fields zero so that other sources keep their values on merge.
func parseJSON(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening json config %q: %w", path, err)
	}
	defer f.Close()

	var raw StructuredJSONConfig
	if err = json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding json config %q: %w", path, err)
	}

	return raw.structured(), nil
}

func (j *StructuredJSONConfig) structured() *StructuredConfig {
	cfg := &StructuredConfig{}

	cfg.App.TokenSignKey = j.App.TokenSignKey
	cfg.App.TokenIssuer = j.App.TokenIssuer
	cfg.App.TokenAudience = j.App.TokenAudience
	cfg.App.TokenDuration = time.Duration(j.App.TokenDuration)
	cfg.App.HashKey = j.App.HashKey
	cfg.App.Version = j.App.Version
	cfg.App.VaultSalt = j.App.VaultSalt
	cfg.App.KDFIterations = j.App.KDFIterations

	cfg.Storage.DB.DSN = j.Storage.DB.DSN
	cfg.Storage.Local.Path = j.Storage.Local.Path

	cfg.Server.HTTPAddress = j.Server.HTTPAddress
	cfg.Server.GRPCAddress = j.Server.GRPCAddress
	cfg.Server.RequestTimeout = time.Duration(j.Server.RequestTimeout)
	cfg.Server.ShutdownTimeout = time.Duration(j.Server.ShutdownTimeout)

	cfg.Adapter.HTTPAddress = j.Adapter.HTTPAddress
	cfg.Adapter.RequestTimeout = time.Duration(j.Adapter.RequestTimeout)

	return cfg
}

// Duration accepts either a Go duration string ("30s", "12h") or a number of
// nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var nanos int64
	if err := json.Unmarshal(b, &nanos); err != nil {
		return fmt.Errorf("duration must be a string or an integer: %w", err)
	}
	*d = Duration(nanos)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
