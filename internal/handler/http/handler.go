package http

import (
	"time"

	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"github.com/MKhiriev/ucip-keeper/internal/config"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/service"
	"github.com/MKhiriev/ucip-keeper/internal/utils"
	"github.com/MKhiriev/ucip-keeper/internal/validators"
)

// maxBodySize limits the size of an update request body.
const maxBodySize = 1 << 20

type Handler struct {
	services         *service.Services
	codec            *codec.UCIPCodec
	consentValidator validators.Validator
	idGenerator      *utils.UUIDGenerator

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, ucipCodec *codec.UCIPCodec, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		codec:            ucipCodec,
		consentValidator: validators.NewContextValidator(),
		idGenerator:      utils.NewUUIDGenerator(),
		requestTimeout:   cfg.RequestTimeout,
		logger:           logger,
	}
}
