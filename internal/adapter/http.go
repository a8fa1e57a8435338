package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/ucip-keeper/internal/config"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/utils"
	"github.com/MKhiriev/ucip-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	getContextPath    = "/getContext/{user_id}"
	updateContextPath = "/updateContext/{user_id}"
	versionPath       = "/api/version/"
	healthPath        = "/health"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates cfg.ServerURL and configures the underlying HTTP
// client with the resolved base URL and request timeout. cfg.Token, when set,
// becomes the initial bearer token.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// GetContext implements [ServerAdapter]. It calls GET /getContext/{user_id}
// and returns the "data" field of the response.
func (h *httpServerAdapter) GetContext(ctx context.Context, userID string) (string, error) {
	var result models.ContextResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("user_id", userID).
		SetResult(&result).
		Get(getContextPath)
	if err != nil {
		return "", fmt.Errorf("get context request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("user_id", userID).Int("size", len(result.Data)).Msg("context received")
	return result.Data, nil
}

// UpdateContext implements [ServerAdapter]. It POSTs document as-is to
// POST /updateContext/{user_id}.
func (h *httpServerAdapter) UpdateContext(ctx context.Context, userID string, document []byte) (string, error) {
	var result models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("user_id", userID).
		SetHeader("Content-Type", "application/json").
		SetBody(document).
		SetResult(&result).
		Post(updateContextPath)
	if err != nil {
		return "", fmt.Errorf("update context request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("user_id", userID).Msg("context updated")
	return result.Message, nil
}

// GetVersion implements [ServerAdapter].
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// CheckHealth implements [ServerAdapter].
func (h *httpServerAdapter) CheckHealth(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
