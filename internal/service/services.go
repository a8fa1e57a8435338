package service

import (
	"fmt"

	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"github.com/MKhiriev/ucip-keeper/internal/config"
	"github.com/MKhiriev/ucip-keeper/internal/crypto"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/store"
	"github.com/MKhiriev/ucip-keeper/models"
)

type Services struct {
	AuthService    AuthService
	ContextService ContextService
	AppInfoService AppInfoService
}

// NewServices builds every service from the shared dependencies. The
// context service is wrapped with validation so every transport goes
// through the same write rules.
//
// The reported version is the build version, or cfg.App.Version when the
// binary carries none.
func NewServices(storage store.ContextStorage, sealer crypto.Sealer, ucipCodec *codec.UCIPCodec, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo.Version(cfg.App.Version), storage, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	contextService := NewContextValidationService().Wrap(
		NewContextService(storage, sealer, ucipCodec, logger),
	)

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		ContextService: contextService,
		AppInfoService: appInfoService,
	}, nil
}
