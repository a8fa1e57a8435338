package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "json",
			file: "config.json",
			content: `{
				"app": {
					"token_sign_key": "json-key",
					"token_duration": "2h",
					"previous_encryption_keys": ["` + testKey + `"],
					"strict_schema": true,
					"log_level": "error"
				},
				"storage": {"db": {"dsn": "postgres://localhost/ucip"}},
				"server": {"http_address": ":8000", "request_timeout": 30000000000}
			}`,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "json-key", cfg.App.TokenSignKey)
				assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
				assert.Equal(t, []string{testKey}, cfg.App.PreviousEncryptionKeys)
				assert.True(t, cfg.App.StrictSchema)
				assert.Equal(t, "error", cfg.App.LogLevel)
				assert.Equal(t, "postgres://localhost/ucip", cfg.Storage.DB.DSN)
				assert.Equal(t, ":8000", cfg.Server.HTTPAddress)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
			},
		},
		{
			name: "jsonc with comments and trailing commas",
			file: "config.jsonc",
			content: `{
				// development settings
				"app": {
					"encryption_key": "` + testKey + `", /* primary */
					"ciphertext_max_age": "720h",
				},
			}`,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, testKey, cfg.App.EncryptionKey)
				assert.Equal(t, 720*time.Hour, cfg.App.CiphertextMaxAge)
			},
		},
		{
			name: "yaml",
			file: "config.yml",
			content: `
app:
  token_issuer: yaml-issuer
  version: 0.1.0
server:
  grpc_address: 127.0.0.1:9090
  shutdown_timeout: 15s
  request_timeout: 1000000000
`,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "yaml-issuer", cfg.App.TokenIssuer)
				assert.Equal(t, "0.1.0", cfg.App.Version)
				assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
				assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.file, tt.content)

			cfg, err := parseFile(path)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{name: "unsupported extension", file: "config.toml", content: "a = 1", wantErr: ErrUnsupportedConfigFormat},
		{name: "malformed json", file: "config.json", content: "{not valid json"},
		{name: "malformed yaml", file: "config.yaml", content: "app: [unclosed"},
		{name: "bad duration", file: "config.json", content: `{"server": {"request_timeout": "soon"}}`},
		{name: "bad duration type", file: "config.json", content: `{"server": {"request_timeout": true}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.file, tt.content)

			cfg, err := parseFile(path)
			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
