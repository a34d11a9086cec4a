package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"identikit/internal/apikey"
	"identikit/internal/identity"
	"identikit/internal/identity/chain"
	"identikit/internal/identity/models"
	"identikit/internal/platform/middleware"
	"identikit/internal/transport/http/shared"
	dErrors "identikit/pkg/domain-errors"
)

// IdentityService is the generation surface the handlers need.
type IdentityService interface {
	Generate(ctx context.Context, req identity.GenerateRequest) []identity.UnitResult
}

type IdentityHandler struct {
	service IdentityService
	logger  *slog.Logger
}

func NewIdentityHandler(service IdentityService, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{service: service, logger: logger}
}

type generateRequest struct {
	Country string `json:"country"`
	Lang    string `json:"lang"`
	Count   int    `json:"count"`
	Save    bool   `json:"save"`
}

// issuedIdentity flattens the record and its provenance link into one object.
type issuedIdentity struct {
	models.IdentityRecord
	chain.Link
}

type unitFailure struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

type generateResponse struct {
	Identities []issuedIdentity `json:"identities"`
	Failures   []unitFailure    `json:"failures,omitempty"`
}

func (h *IdentityHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return
	}
	if req.Country == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "country is required"))
		return
	}

	units := h.service.Generate(ctx, identity.GenerateRequest{
		Country:  req.Country,
		Language: req.Lang,
		Count:    req.Count,
		Persist:  req.Save,
	})

	resp := generateResponse{Identities: []issuedIdentity{}}
	for i, unit := range units {
		if unit.Err != nil {
			h.logger.ErrorContext(ctx, "identity issuance failed",
				slog.Int("unit", i),
				slog.String("country", req.Country),
				slog.String("error", unit.Err.Error()),
				slog.String("request_id", middleware.GetRequestID(ctx)),
			)
			resp.Failures = append(resp.Failures, unitFailure{Index: i, Message: "Failed to generate identity"})
			continue
		}
		resp.Identities = append(resp.Identities, issuedIdentity{unit.Record, unit.Link})
	}

	shared.WriteJSON(w, http.StatusOK, resp)
}

type externalRequest struct {
	Prompt  string `json:"prompt"`
	Country string `json:"country"`
}

type externalResponse struct {
	Status          string                `json:"status"`
	IdentityData    models.IdentityRecord `json:"identityData"`
	ContentHash     string                `json:"contentHash"`
	BlockchainProof chain.Link            `json:"blockchainProof"`
}

// handleExternal serves agent callers behind the API key gate. One record per
// call, never persisted.
func (h *IdentityHandler) handleExternal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req externalRequest
	// Body is optional; an empty or malformed one falls through to defaults.
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Country == "" {
		req.Country = "US"
	}

	units := h.service.Generate(ctx, identity.GenerateRequest{Country: req.Country, Language: "en", Count: 1})
	unit := units[0]
	if unit.Err != nil {
		h.logger.ErrorContext(ctx, "external identity issuance failed",
			slog.String("country", req.Country),
			slog.String("error", unit.Err.Error()),
			slog.String("request_id", middleware.GetRequestID(ctx)),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "Failed to generate identity"))
		return
	}

	payload, err := json.Marshal(unit.Record)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "Failed to generate identity"))
		return
	}

	shared.WriteJSON(w, http.StatusOK, externalResponse{
		Status:          "success",
		IdentityData:    unit.Record,
		ContentHash:     apikey.ContentHash(string(payload)),
		BlockchainProof: unit.Link,
	})
}
