package grpc

import (
	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/service"
	"github.com/MKhiriev/ucip-keeper/internal/utils"
)

// Handler is the root gRPC transport handler. It implements
// [ContextServiceServer] on top of the service layer.
//
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// codec converts between dynamic UCIP messages and documents.
	codec *codec.UCIPCodec

	idGenerator *utils.UUIDGenerator

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container,
// codec and logger, and returns the initialized instance.
func NewHandler(services *service.Services, ucipCodec *codec.UCIPCodec, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:    services,
		codec:       ucipCodec,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}
