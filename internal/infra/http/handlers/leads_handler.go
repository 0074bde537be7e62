package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/profitlens/roi-master-api/internal/infra/http/middleware"
	"github.com/profitlens/roi-master-api/internal/usecase"
)

// LeadsHandler serve o dashboard: listagem e patch de status/valor de venda.
type LeadsHandler struct {
	ListUC   *usecase.ListLeadsUseCase
	UpdateUC *usecase.UpdateLeadUseCase
}

func NewLeadsHandler(listUC *usecase.ListLeadsUseCase, updateUC *usecase.UpdateLeadUseCase) *LeadsHandler {
	return &LeadsHandler{
		ListUC:   listUC,
		UpdateUC: updateUC,
	}
}

// HandleList nunca falha: leitura degrada para [] (o dashboard não pode cair
// junto com o banco).
func (h *LeadsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads := h.ListUC.Execute(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(leads)
}

func (h *LeadsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")
	if leadID == "" {
		http.Error(w, "ID is required", http.StatusBadRequest)
		return
	}

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if errs := usecase.ValidateUpdateLeadInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	if err := h.UpdateUC.Execute(r.Context(), leadID, input); err != nil {
		if usecase.IsNotFound(err) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		middleware.RecordStorageError("update")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	middleware.RecordLeadStatusUpdate(input.Status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
}
