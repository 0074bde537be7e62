package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/profitlens/roi-master-api/internal/infra/http/middleware"
	"github.com/profitlens/roi-master-api/internal/usecase"
)

// SessionHandler faz o lookup-or-create da conta no login.
// O uid já vem autenticado pelo provedor de identidade do front.
type SessionHandler struct {
	LoginUC *usecase.LoginUseCase
}

func NewSessionHandler(loginUC *usecase.LoginUseCase) *SessionHandler {
	return &SessionHandler{LoginUC: loginUC}
}

func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if errs := usecase.ValidateLoginInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	output, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordStorageError("login")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if output.Created {
		middleware.RecordAccountCreated()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(output)
}
