package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler creates a Handler with a nop logger.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop(), idGenerator: utils.NewUUIDGenerator()}
}

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var capturedReq *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/getContext/alice", nil)
	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, capturedReq
}

func TestWithTraceID_ReusesRequestHeader(t *testing.T) {
	rr, req := executeWithTraceID(newTestHandler(), "my-custom-trace-id")

	require.NotNil(t, req)
	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_ReplacesMalformedHeader(t *testing.T) {
	rr, _ := executeWithTraceID(newTestHandler(), "not a trace id")

	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	rr, req := executeWithTraceID(newTestHandler(), "")

	require.NotNil(t, req)
	traceID := rr.Header().Get(traceIDHeader)
	parsed, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestHandler()
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		rr, _ := executeWithTraceID(h, "")
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}
	assert.Len(t, seen, 20)
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{
		logger:      &logger.Logger{Logger: zerolog.New(&buf)},
		idGenerator: utils.NewUUIDGenerator(),
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}
