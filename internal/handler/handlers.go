// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"github.com/MKhiriev/ucip-keeper/internal/config"
	"github.com/MKhiriev/ucip-keeper/internal/handler/grpc"
	"github.com/MKhiriev/ucip-keeper/internal/handler/http"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/service"
)

// Handlers holds one handler per enabled transport. A nil field means the
// transport has no listen address and is not served.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the HTTP handler when cfg.HTTPAddress is set and the
// gRPC handler when cfg.GRPCAddress is set. Both share services and codec.
func NewHandlers(services *service.Services, ucipCodec *codec.UCIPCodec, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	var handlers Handlers

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, ucipCodec, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, ucipCodec, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("transport handlers created")

	return &handlers, nil
}
