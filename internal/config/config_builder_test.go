package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func minimalValidConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{TokenSignKey: "secret"},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder yields a config that
// fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs replace earlier ones and zero fields leave them untouched.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "env-key", Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenSignKey: "flag-key"}, Server: Server{HTTPAddress: "127.0.0.1:9000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withDefaults())
	require.Len(t, b.configs, 1)

	def := b.configs[0]
	assert.Equal(t, DefaultHTTPAddress, def.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, def.Server.RequestTimeout)
	assert.Equal(t, DefaultLogLevel, def.App.LogLevel)
	assert.Empty(t, def.Server.GRPCAddress)
	assert.Empty(t, def.Storage.DB.DSN)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":      "env-version",
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_STRICT_SCHEMA": "maybe"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-token-sign-key", "flag-key"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-key", b.configs[0].App.TokenSignKey)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "nowhere"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withFile())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", "app:\n  version: file-version\n  token_issuer: file-issuer\n")

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "file-version", b.configs[1].App.Version)
	assert.Equal(t, "file-issuer", b.configs[1].App.TokenIssuer)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_UsesLastPath verifies that the flag path wins over the env path.
func TestWithFile_UsesLastPath(t *testing.T) {
	first := writeTempConfig(t, "first.json", `{"app": {"version": "first"}}`)
	last := writeTempConfig(t, "last.json", `{"app": {"version": "last-wins"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: first},
		&StructuredConfig{FilePath: ""},
		&StructuredConfig{FilePath: last},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "last-wins", b.configs[3].App.Version)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_AllSources(t *testing.T) {
	path := writeTempConfig(t, "config.jsonc", `{
		// file values win over flags and env
		"server": {"request_timeout": "5s"},
		"storage": {"db": {"dsn": "sqlite://ucip.db"}},
	}`)
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "env-key",
		"APP_VERSION":        "9.9.9",
		"CONFIG":             path,
	})

	cfg, err := GetStructuredConfig([]string{"-a", "127.0.0.1:8080", "-token-issuer", "flag-issuer"})
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sqlite://ucip.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
}

func TestGetStructuredConfig_MissingSignKey(t *testing.T) {
	setEnvVars(t, nil)

	cfg, err := GetStructuredConfig(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
