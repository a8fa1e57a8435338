package config

import (
	"errors"
	"fmt"
	"time"
)

// ClientEnvPrefix is prepended to every environment variable read by
// [GetClientConfig].
const ClientEnvPrefix = "UCIP_"

// ClientConfig holds the settings of the command-line client. Values come
// from UCIP_-prefixed environment variables and may be overridden by CLI
// flags.
type ClientConfig struct {
	// ServerURL is the base URL of the HTTP API.
	// Env: UCIP_SERVER_URL
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8000"`

	// Token is a ready bearer token. When empty, the client mints one with
	// TokenSignKey.
	// Env: UCIP_TOKEN
	Token string `env:"TOKEN"`

	// TokenSignKey is the shared HS256 secret used to mint development tokens.
	// Env: UCIP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of minted tokens.
	// Env: UCIP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of minted tokens.
	// Env: UCIP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"1h"`

	// RequestTimeout is the timeout for outbound requests.
	// Env: UCIP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// ErrInvalidClientConfigs indicates an unusable client configuration.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// GetClientConfig loads the client configuration from the environment.
func GetClientConfig() (*ClientConfig, error) {
	cfg := new(ClientConfig)
	if err := parseEnv(cfg, ClientEnvPrefix); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the client configuration after flags have been applied.
func (cfg *ClientConfig) Validate() error {
	if cfg.ServerURL == "" {
		return fmt.Errorf("%w: server url is required", ErrInvalidClientConfigs)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return nil
}
