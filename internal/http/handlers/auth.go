package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-quizo/internal/errors"
	"github.com/pribylovaa/go-quizo/internal/models"
)

const msgLoginRequired = "Username and password are required"

// Login проверяет учётные данные и возвращает userId.
// Токены не выдаются: клиент передаёт userId в последующих запросах.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, invalidArgument(msgInvalidBody))
		return
	}

	user, err := h.Service.Authenticate(r.Context(), in.Username, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, apierrors.WithMessage(err, msgLoginRequired))
		return
	}

	writeOK(w, http.StatusOK, "Login successful", models.LoginFromUser(user))
}
