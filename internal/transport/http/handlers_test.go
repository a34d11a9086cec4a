package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identikit/internal/apikey"
	"identikit/internal/history"
	"identikit/internal/identity"
	"identikit/internal/identity/chain"
	"identikit/internal/identity/models"
	"identikit/internal/identity/synth"
	"identikit/internal/platform/metrics"
	"identikit/internal/platform/middleware"
	"identikit/internal/realmail"
)

func testRouter(t *testing.T) (http.Handler, *history.MemoryStore, KeyService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := history.NewMemoryStore()
	keys := apikey.NewService("test-signing-key", apikey.NewMemoryRevocationList())
	svc := identity.NewService(synth.NewSeeded(11), chain.NewMemoryTipStore(""), logger,
		identity.WithHistory(store))

	router := NewRouter(Deps{
		Logger:   logger,
		Metrics:  &metrics.Metrics{},
		Identity: svc,
		History:  store,
		Emails:   realmail.NewPool(),
		Keys:     keys,
	})
	return router, store, keys
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpoint(t *testing.T) {
	router, _, _ := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/identity/generate",
		map[string]any{"country": "US", "count": 2}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Identities []map[string]any `json:"identities"`
		Failures   []map[string]any `json:"failures"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Identities, 2)
	assert.Empty(t, resp.Failures)

	first := resp.Identities[0]
	assert.NotEmpty(t, first["fullName"])
	assert.Regexp(t, `^[0-9a-f]{64}$`, first["blockchainHash"])
	assert.Equal(t, chain.Genesis, first["previousHash"])
	assert.Equal(t, first["blockchainHash"], resp.Identities[1]["previousHash"])
}

func TestGenerateEndpointRequiresCountry(t *testing.T) {
	router, _, _ := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/identity/generate", map[string]any{"count": 1}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "country is required", resp["message"])
}

func TestGenerateEndpointPersists(t *testing.T) {
	router, store, _ := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/identity/generate",
		map[string]any{"country": "CN", "count": 1, "save": true}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	entries, err := store.Recent(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "CN", entries[0].Country)
}

type failingIdentityService struct{}

func (failingIdentityService) Generate(_ context.Context, req identity.GenerateRequest) []identity.UnitResult {
	if req.Count < 1 {
		req.Count = 1
	}
	units := make([]identity.UnitResult, req.Count)
	units[0].Record = models.IdentityRecord{FullName: "Only Unit"}
	units[0].Link = chain.Link{ContentHash: "aa", PreviousHash: chain.Genesis, Watermark: "IDGEN-V2-00"}
	for i := 1; i < req.Count; i++ {
		units[i].Err = errors.New("tip contention")
	}
	return units
}

func TestGenerateEndpointReportsPerUnitFailures(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(Deps{
		Logger:   logger,
		Metrics:  &metrics.Metrics{},
		Identity: failingIdentityService{},
		History:  history.NewMemoryStore(),
		Emails:   realmail.NewPool(),
		Keys:     apikey.NewService("k", apikey.NewMemoryRevocationList()),
	})

	w := doJSON(t, router, http.MethodPost, "/api/identity/generate",
		map[string]any{"country": "US", "count": 3}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Identities, 1)
	require.Len(t, resp.Failures, 2)
	assert.Equal(t, 1, resp.Failures[0].Index)
	assert.Equal(t, 2, resp.Failures[1].Index)
}

func TestHistoryLifecycle(t *testing.T) {
	router, _, _ := testRouter(t)

	save := map[string]any{
		"country":        "US",
		"fullName":       "John Smith",
		"gender":         "Male",
		"birthDate":      "1982-03-20",
		"blockchainHash": "deadbeef",
		"previousHash":   chain.Genesis,
		"watermark":      "IDGEN-V2-0011223344556677",
	}

	w := doJSON(t, router, http.MethodPost, "/api/history", save, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var saved map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, true, saved["success"])

	// Duplicate hash is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/history", save, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/history", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "John Smith", entries[0]["full_name"])

	id := int64(entries[0]["id"].(float64))
	w = doJSON(t, router, http.MethodDelete, "/api/history/"+strconv.FormatInt(id, 10), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/history/"+strconv.FormatInt(id, 10), nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "History record not found", resp["message"])
}

func TestHistorySaveRequiresHash(t *testing.T) {
	router, _, _ := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/history", map[string]any{"fullName": "No Hash"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRandomEmailEndpoint(t *testing.T) {
	router, _, _ := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/emails/real", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["email"], "@")
}

func TestKeyGenerateEndpoint(t *testing.T) {
	router, _, _ := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/keys/generate",
		map[string]any{"data": map[string]string{"agent": "openclaw"}}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp generateKeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Regexp(t, `^sk_`, resp.APIKey)
	assert.Regexp(t, `^[0-9a-f]{64}$`, resp.ContentHash)
	assert.False(t, resp.ExpiresAt.IsZero())
}

func TestKeyGenerateEndpointRequiresData(t *testing.T) {
	router, _, _ := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/keys/generate", map[string]any{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExternalEndpointRequiresKey(t *testing.T) {
	router, _, _ := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/external/identity", map[string]any{"country": "US"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Unauthorized: Invalid API key", resp["message"])
}

func TestExternalEndpointRejectsBogusKey(t *testing.T) {
	router, _, _ := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/external/identity", nil,
		map[string]string{middleware.APIKeyHeader: "sk_not.a.real.key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExternalEndpointServesIdentity(t *testing.T) {
	router, _, keys := testRouter(t)

	issued, err := keys.Issue(context.Background(), `{"agent":"openclaw"}`)
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/api/external/identity",
		map[string]any{"country": "JP"},
		map[string]string{middleware.APIKeyHeader: issued.APIKey})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status          string                `json:"status"`
		IdentityData    models.IdentityRecord `json:"identityData"`
		ContentHash     string                `json:"contentHash"`
		BlockchainProof chain.Link            `json:"blockchainProof"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.IdentityData.FullName)
	assert.Regexp(t, `^[0-9a-f]{64}$`, resp.BlockchainProof.ContentHash)

	// The content hash covers the identity data exactly as serialized.
	payload, err := json.Marshal(resp.IdentityData)
	require.NoError(t, err)
	assert.Equal(t, apikey.ContentHash(string(payload)), resp.ContentHash)
}

func TestHealthz(t *testing.T) {
	router, _, _ := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContentTypeEnforced(t *testing.T) {
	router, _, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/identity/generate", bytes.NewReader([]byte("country=US")))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
