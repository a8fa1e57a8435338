package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of a configuration file.
// The same structure is used for JSON, JSONC and YAML files.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey           string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer            string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration          Duration `json:"token_duration" yaml:"token_duration"`
		EncryptionKey          string   `json:"encryption_key" yaml:"encryption_key"`
		PreviousEncryptionKeys []string `json:"previous_encryption_keys" yaml:"previous_encryption_keys"`
		CiphertextMaxAge       Duration `json:"ciphertext_max_age" yaml:"ciphertext_max_age"`
		StrictSchema           bool     `json:"strict_schema" yaml:"strict_schema"`
		LogLevel               string   `json:"log_level" yaml:"log_level"`
		Version                string   `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		GRPCAddress     string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`
}

// parseFile reads a configuration file and converts it to a
// [StructuredConfig]. The format is chosen by extension: .json and .jsonc
// (comments and trailing commas allowed), .yaml and .yml.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, filepath.Ext(path))
	}

	return fileCfg.toStructuredConfig(), nil
}

func (f *StructuredFileConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:           f.App.TokenSignKey,
			TokenIssuer:            f.App.TokenIssuer,
			TokenDuration:          time.Duration(f.App.TokenDuration),
			EncryptionKey:          f.App.EncryptionKey,
			PreviousEncryptionKeys: f.App.PreviousEncryptionKeys,
			CiphertextMaxAge:       time.Duration(f.App.CiphertextMaxAge),
			StrictSchema:           f.App.StrictSchema,
			LogLevel:               f.App.LogLevel,
			Version:                f.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: f.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			GRPCAddress:     f.Server.GRPCAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
	}
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" (JSON and YAML) and from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var nanos int64
	if err := node.Decode(&nanos); err == nil {
		*d = Duration(time.Duration(nanos))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
