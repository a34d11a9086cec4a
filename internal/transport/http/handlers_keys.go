package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"identikit/internal/apikey"
	"identikit/internal/platform/middleware"
	"identikit/internal/transport/http/shared"
	dErrors "identikit/pkg/domain-errors"
)

// KeyService issues keys and doubles as the verifier behind the external
// route's gate.
type KeyService interface {
	Issue(ctx context.Context, data string) (apikey.Key, error)
	Verify(ctx context.Context, key string) error
}

type KeyHandler struct {
	keys   KeyService
	logger *slog.Logger
}

func NewKeyHandler(keys KeyService, logger *slog.Logger) *KeyHandler {
	return &KeyHandler{keys: keys, logger: logger}
}

type generateKeyRequest struct {
	Data json.RawMessage `json:"data"`
}

type generateKeyResponse struct {
	Status      string    `json:"status"`
	APIKey      string    `json:"apiKey"`
	ContentHash string    `json:"contentHash"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (h *KeyHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return
	}
	if len(req.Data) == 0 || bytes.Equal(req.Data, []byte("null")) {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "data is required"))
		return
	}

	// The key is bound to the data exactly as the caller serialized it.
	key, err := h.keys.Issue(r.Context(), string(req.Data))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "key issuance failed",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, generateKeyResponse{
		Status:      "success",
		APIKey:      key.APIKey,
		ContentHash: key.ContentHash,
		ExpiresAt:   key.ExpiresAt,
	})
}
