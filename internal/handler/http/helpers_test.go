package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"github.com/MKhiriev/ucip-keeper/internal/config"
	"github.com/MKhiriev/ucip-keeper/internal/crypto"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/mock"
	"github.com/MKhiriev/ucip-keeper/internal/service"
	"github.com/MKhiriev/ucip-keeper/internal/store"
	"github.com/MKhiriev/ucip-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSignKey = "http-test-sign-key"

var testServerConfig = config.Server{RequestTimeout: 5 * time.Second}

// mockedServices bundles gomock service mocks plumbed into a Handler.
type mockedServices struct {
	auth    *mock.MockAuthService
	context *mock.MockContextService
	appInfo *mock.MockAppInfoService
}

func newMockedHandler(t *testing.T) (*Handler, mockedServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := mockedServices{
		auth:    mock.NewMockAuthService(ctrl),
		context: mock.NewMockContextService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:    m.auth,
		ContextService: m.context,
		AppInfoService: m.appInfo,
	}

	return NewHandler(services, codec.NewUCIPCodec(false), testServerConfig, logger.Nop()), m
}

// newRealRouter wires real services over an in-memory store.
func newRealRouter(t *testing.T) (http.Handler, store.ContextStorage) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	sealer, err := crypto.NewSealer(key, nil, 0)
	require.NoError(t, err)

	storage := store.NewMemoryStorage()
	ucipCodec := codec.NewUCIPCodec(false)
	cfg := config.StructuredConfig{
		App:    config.App{TokenSignKey: testSignKey, Version: "test-version"},
		Server: testServerConfig,
	}

	services, err := service.NewServices(storage, sealer, ucipCodec, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, ucipCodec, cfg.Server, logger.Nop()).Init(), storage
}

// tokenFor mints a token for userID signed with testSignKey.
func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	svc := service.NewAuthService(config.App{TokenSignKey: testSignKey, TokenDuration: time.Hour}, logger.Nop())
	token, err := svc.CreateToken(context.Background(), userID)
	require.NoError(t, err)
	return token.String()
}

func doRequest(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
