package httptransport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"identikit/internal/history"
	"identikit/internal/identity/models"
	"identikit/internal/platform/middleware"
	"identikit/internal/transport/http/shared"
	dErrors "identikit/pkg/domain-errors"
	"identikit/pkg/platform/sentinel"
)

type HistoryHandler struct {
	store  history.Store
	logger *slog.Logger
}

func NewHistoryHandler(store history.Store, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{store: store, logger: logger}
}

func (h *HistoryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.Recent(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "history read failed",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "Failed to read history"))
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	shared.WriteJSON(w, http.StatusOK, entries)
}

// saveHistoryRequest mirrors the identity wire format rather than the storage
// column names.
type saveHistoryRequest struct {
	Country        string             `json:"country"`
	FullName       string             `json:"fullName"`
	Gender         string             `json:"gender"`
	BirthDate      string             `json:"birthDate"`
	Address        string             `json:"address"`
	Phone          string             `json:"phone"`
	Email          string             `json:"email"`
	Occupation     string             `json:"occupation"`
	NationalID     string             `json:"nationalId"`
	PassportNumber string             `json:"passportNumber"`
	CreditCard     *models.CreditCard `json:"creditCard"`
	BankAccount    string             `json:"bankAccount"`
	AvatarURL      string             `json:"avatarUrl"`
	LifestyleURL   string             `json:"lifestyleUrl"`
	BlockchainHash string             `json:"blockchainHash"`
	PreviousHash   string             `json:"previousHash"`
	Watermark      string             `json:"watermark"`
}

func (h *HistoryHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return
	}
	if req.BlockchainHash == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "blockchainHash is required"))
		return
	}

	entry := history.Entry{
		Country:        req.Country,
		FullName:       req.FullName,
		Gender:         req.Gender,
		BirthDate:      req.BirthDate,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		Occupation:     req.Occupation,
		NationalID:     req.NationalID,
		PassportNumber: req.PassportNumber,
		CreditCard:     req.CreditCard,
		BankAccount:    req.BankAccount,
		AvatarURL:      req.AvatarURL,
		LifestyleURL:   req.LifestyleURL,
		BlockchainHash: req.BlockchainHash,
		PreviousHash:   req.PreviousHash,
		Watermark:      req.Watermark,
	}

	if err := h.store.Save(r.Context(), &entry); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			shared.WriteError(w, dErrors.New(dErrors.CodeConflict, "History record already exists"))
			return
		}
		h.logger.ErrorContext(r.Context(), "history save failed",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "Failed to save history"))
		return
	}

	shared.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "id": entry.ID})
}

func (h *HistoryHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid history id"))
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			shared.WriteError(w, dErrors.New(dErrors.CodeNotFound, "History record not found"))
			return
		}
		h.logger.ErrorContext(r.Context(), "history delete failed",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "Failed to delete history"))
		return
	}

	shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "History record deleted"})
}
