package main

import (
	"os"

	"github.com/MKhiriev/ucip-keeper/internal/adapter"
	"github.com/MKhiriev/ucip-keeper/internal/client"
	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"github.com/MKhiriev/ucip-keeper/internal/config"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("ucip-client", false)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app := client.NewApp(*cfg, adapter.NewHTTPServerAdapter, codec.NewUCIPCodec(false), buildInfo, log)
	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
