package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/ucip-keeper/internal/config"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/mock"
	"github.com/MKhiriev/ucip-keeper/internal/store"
	"github.com/MKhiriev/ucip-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService("1.0.0", store.NewMemoryStorage(), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService("", store.NewMemoryStorage(), logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService("v1.2.3-beta+build.42", store.NewMemoryStorage(), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService("1.0.0", store.NewMemoryStorage(), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// CheckHealth
// ─────────────────────────────────────────────

func TestCheckHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStorage := mock.NewMockContextStorage(ctrl)

	svc, err := NewAppInfoService("1.0.0", mockStorage, logger.Nop())
	require.NoError(t, err)

	mockStorage.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.NoError(t, svc.CheckHealth(context.Background()))

	mockStorage.EXPECT().Ping(gomock.Any()).Return(store.ErrStorageUnavailable)
	assert.ErrorIs(t, svc.CheckHealth(context.Background()), store.ErrStorageUnavailable)
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices_VersionFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := config.StructuredConfig{App: config.App{TokenSignKey: testSignKey, Version: "0.9.0"}}

	services, err := NewServices(mock.NewMockContextStorage(ctrl), mock.NewMockSealer(ctrl), nil, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "0.9.0", services.AppInfoService.GetAppVersion(context.Background()))

	services, err = NewServices(mock.NewMockContextStorage(ctrl), mock.NewMockSealer(ctrl), nil, cfg, models.NewAppBuildInfo("1.4.0", "", ""), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", services.AppInfoService.GetAppVersion(context.Background()))
	assert.IsType(t, &ContextValidationService{}, services.ContextService)
	require.NotNil(t, services.AuthService)
}

func TestNewServices_NoVersion(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewServices(mock.NewMockContextStorage(ctrl), mock.NewMockSealer(ctrl), nil, config.StructuredConfig{}, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
