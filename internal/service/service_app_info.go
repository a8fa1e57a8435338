package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/store"
)

type appInfoService struct {
	appVersion string
	storage    store.ContextStorage

	logger *logger.Logger
}

func NewAppInfoService(version string, storage store.ContextStorage, logger *logger.Logger) (AppInfoService, error) {
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		storage:    storage,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// CheckHealth reports whether the document store is reachable.
func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("health check failed")
		return fmt.Errorf("storage is not reachable: %w", err)
	}
	return nil
}
