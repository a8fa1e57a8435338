package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"github.com/MKhiriev/ucip-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The tests below run the full router over real services and an in-memory
// store.

func TestRoutes_WriteThenRead(t *testing.T) {
	router, _ := newRealRouter(t)
	token := tokenFor(t, "user-123")

	body := `{"version":"1.0","userId":"user-123","timestamp":"2025-07-21T12:00:00Z","consent":{"granted":true,"scopes":["basic"]}}`
	rec := doRequest(t, router, http.MethodPost, "/updateContext/user-123", token, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Updated"}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/getContext/user-123", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.ContextResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.JSONEq(t, body, resp.Data)

	got, err := codec.NewUCIPCodec(true).FromJSON([]byte(resp.Data))
	require.NoError(t, err)
	assert.Equal(t, models.Context{
		Version:   "1.0",
		UserID:    "user-123",
		Timestamp: "2025-07-21T12:00:00Z",
		Consent:   models.Consent{Granted: true, Scopes: []string{"basic"}},
	}, got)
}

func TestRoutes_TokenOfAnotherUserIsForbidden(t *testing.T) {
	router, _ := newRealRouter(t)
	bobsToken := tokenFor(t, "bob")

	rec := doRequest(t, router, http.MethodGet, "/getContext/alice", bobsToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"detail":"Unauthorized"}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodPost, "/updateContext/alice", bobsToken, `{"consent":{"granted":true}}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoutes_InvalidToken(t *testing.T) {
	router, _ := newRealRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/getContext/alice", "not-a-token", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid token"}`, rec.Body.String())
}

func TestRoutes_ConsentDeniedKeepsPriorDocument(t *testing.T) {
	router, storage := newRealRouter(t)
	token := tokenFor(t, "alice")

	rec := doRequest(t, router, http.MethodPost, "/updateContext/alice", token, `{"version":"1.0","consent":{"granted":true}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	before, err := storage.Get(t.Context(), "alice")
	require.NoError(t, err)

	rec = doRequest(t, router, http.MethodPost, "/updateContext/alice", token, `{"consent": {"granted": false}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Consent required"}`, rec.Body.String())

	after, err := storage.Get(t.Context(), "alice")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRoutes_MissingIdentity(t *testing.T) {
	router, _ := newRealRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/getContext/unknown-id", tokenFor(t, "unknown-id"), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not found"}`, rec.Body.String())
}

func TestRoutes_SwappedCiphertextFailsDecryption(t *testing.T) {
	router, storage := newRealRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/updateContext/alice", tokenFor(t, "alice"), `{"consent":{"granted":true}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	ciphertext, err := storage.Get(t.Context(), "alice")
	require.NoError(t, err)
	require.NoError(t, storage.Put(t.Context(), "mallory", ciphertext))

	rec = doRequest(t, router, http.MethodGet, "/getContext/mallory", tokenFor(t, "mallory"), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Decryption failed"}`, rec.Body.String())
}

func TestRoutes_DocumentOwnerMustMatchPath(t *testing.T) {
	router, _ := newRealRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/updateContext/alice", tokenFor(t, "alice"), `{"userId":"bob","consent":{"granted":true}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid request"}`, rec.Body.String())
}

func TestRoutes_EmptyUserIDIsFilledFromPath(t *testing.T) {
	router, _ := newRealRouter(t)
	token := tokenFor(t, "alice")

	rec := doRequest(t, router, http.MethodPost, "/updateContext/alice", token, `{"consent":{"granted":true}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/getContext/alice", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ContextResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.JSONEq(t, `{"userId":"alice","consent":{"granted":true}}`, resp.Data)
}

func TestRoutes_TimestampStoredAsSent(t *testing.T) {
	router, _ := newRealRouter(t)
	token := tokenFor(t, "alice")

	timestamps := []string{
		"2025-07-21T12:00:00Z",
		"2025-07-21T12:00:00",
		"2025-07-21",
		"2025-07-21T12:00:00+0000",
		"20250721T120000Z",
	}

	for _, ts := range timestamps {
		t.Run(ts, func(t *testing.T) {
			body := `{"userId":"alice","timestamp":"` + ts + `","consent":{"granted":true}}`
			rec := doRequest(t, router, http.MethodPost, "/updateContext/alice", token, body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			rec = doRequest(t, router, http.MethodGet, "/getContext/alice", token, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var resp models.ContextResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			got, err := codec.NewUCIPCodec(false).FromJSON([]byte(resp.Data))
			require.NoError(t, err)
			assert.Equal(t, ts, got.Timestamp)
		})
	}
}

func TestRoutes_EscapedSlashInIdentity(t *testing.T) {
	router, storage := newRealRouter(t)
	token := tokenFor(t, "a/b")

	rec := doRequest(t, router, http.MethodPost, "/updateContext/a%2Fb", token, `{"consent":{"granted":true}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/getContext/a%2Fb", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.ContextResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.JSONEq(t, `{"userId":"a/b","consent":{"granted":true}}`, resp.Data)

	_, err := storage.Get(t.Context(), "a/b")
	assert.NoError(t, err)
}
