package httptransport

import (
	"errors"
	"net/http"

	"identikit/internal/realmail"
	"identikit/internal/transport/http/shared"
	dErrors "identikit/pkg/domain-errors"
	"identikit/pkg/platform/sentinel"
)

type EmailHandler struct {
	pool *realmail.Pool
}

func NewEmailHandler(pool *realmail.Pool) *EmailHandler {
	return &EmailHandler{pool: pool}
}

func (h *EmailHandler) handleRandom(w http.ResponseWriter, r *http.Request) {
	email, err := h.pool.Random(r.Context())
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			shared.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no email available"))
			return
		}
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "Failed to pick email"))
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"email": email})
}
