package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config config file path (json, jsonc, yaml)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-encryption-key base64 encryption key
//	-ciphertext-max-age maximum accepted ciphertext age (e.g., "720h")
//	-strict-schema reject unknown JSON keys
//	-log-level minimum log level (debug, info, warn, error)
//	-previous-encryption-keys comma-separated retired base64 keys
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown bound (e.g., "10s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("ucip-server", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var configPath string
	var tokenSignKey string
	var tokenIssuer string
	var encryptionKey string
	var ciphertextMaxAge time.Duration
	var strictSchema bool
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var previousKeys string
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&encryptionKey, "encryption-key", "", "Base64 encryption key (32 bytes)")
	fs.DurationVar(&ciphertextMaxAge, "ciphertext-max-age", 0, "Maximum accepted ciphertext age (0 disables)")
	fs.BoolVar(&strictSchema, "strict-schema", false, "Reject unknown JSON keys")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	fs.StringVar(&previousKeys, "previous-encryption-keys", "", "Comma-separated retired base64 encryption keys")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:           tokenSignKey,
			TokenIssuer:            tokenIssuer,
			EncryptionKey:          encryptionKey,
			PreviousEncryptionKeys: splitList(previousKeys),
			CiphertextMaxAge:       ciphertextMaxAge,
			StrictSchema:           strictSchema,
			LogLevel:               logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			GRPCAddress:     grpcServerAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		FilePath: configPath,
	}, nil
}

// String returns the address in host:port form, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty, an IP literal (IPv6 in
// brackets) or a DNS name; the port must be in 1-65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q must be a number in range 1-65535", ErrInvalidNetAddress, rawPort)
	}

	if host != "" && net.ParseIP(host) == nil && !isHostname(host) {
		return fmt.Errorf("%w: invalid host %q", ErrInvalidNetAddress, host)
	}

	a.Host = host
	a.Port = port
	return nil
}

// isHostname reports whether s is a plausible DNS name: dot-separated labels
// of letters, digits and inner hyphens.
func isHostname(s string) bool {
	if len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if label == "" || len(label) > 63 || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, c := range label {
			if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-') {
				return false
			}
		}
	}
	return true
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
