package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	h, m := newMockedHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/version/", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "storage reachable", wantStatus: http.StatusOK, wantBody: `{"message":"OK"}`},
		{name: "storage down", pingErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable, wantBody: `{"detail":"Storage unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.appInfo.EXPECT().CheckHealth(gomock.Any()).Return(tt.pingErr)

			rec := doRequest(t, h.Init(), http.MethodGet, "/health", "", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
