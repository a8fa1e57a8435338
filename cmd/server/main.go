package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"github.com/MKhiriev/ucip-keeper/internal/config"
	"github.com/MKhiriev/ucip-keeper/internal/crypto"
	"github.com/MKhiriev/ucip-keeper/internal/handler"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/server"
	"github.com/MKhiriev/ucip-keeper/internal/service"
	"github.com/MKhiriev/ucip-keeper/internal/store"
	"github.com/MKhiriev/ucip-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("ucip-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Bool("strict_schema", cfg.App.StrictSchema).
		Msg("received configs")

	sealer, err := newSealer(cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating sealer")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	ucipCodec := codec.NewUCIPCodec(cfg.App.StrictSchema)

	services, err := service.NewServices(storages.ContextStorage, sealer, ucipCodec, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, ucipCodec, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newSealer builds the confidentiality layer from the configured keys. When
// no primary key is set, an ephemeral one is generated.
func newSealer(cfg config.App, log *logger.Logger) (crypto.Sealer, error) {
	var (
		primary []byte
		err     error
	)
	if cfg.EncryptionKey == "" {
		log.Warn().Msg("no encryption key configured; generated an ephemeral key, stored documents will be unreadable after restart")
		primary, err = crypto.GenerateKey()
	} else {
		primary, err = config.DecodeKey(cfg.EncryptionKey)
	}
	if err != nil {
		return nil, fmt.Errorf("primary encryption key: %w", err)
	}

	previous := make([][]byte, 0, len(cfg.PreviousEncryptionKeys))
	for i, encoded := range cfg.PreviousEncryptionKeys {
		key, err := config.DecodeKey(encoded)
		if err != nil {
			return nil, fmt.Errorf("previous encryption key #%d: %w", i+1, err)
		}
		previous = append(previous, key)
	}

	sealer, err := crypto.NewSealer(primary, previous, cfg.CiphertextMaxAge)
	if err != nil {
		return nil, err
	}

	log.Info().
		Strs("key_fingerprints", crypto.Fingerprints(sealer)).
		Dur("ciphertext_max_age", cfg.CiphertextMaxAge).
		Msg("confidentiality layer ready")

	return sealer, nil
}
