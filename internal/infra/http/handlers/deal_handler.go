package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aetherlabs-ai/aether-crm/internal/usecase"
)

type DealHandler struct {
	UseCase *usecase.DealUseCase
	Repo    usecase.DealRepositoryInterface
}

func NewDealHandler(uc *usecase.DealUseCase, repo usecase.DealRepositoryInterface) *DealHandler {
	return &DealHandler{UseCase: uc, Repo: repo}
}

func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	deals, err := h.Repo.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deals)
}

func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateDealInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	deal, err := h.UseCase.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, deal)
}

// Update é o caminho da transição de etapa (body {"stage_id": ...}) e
// também do merge parcial dos demais campos.
func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateDealInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	deal, err := h.UseCase.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deal)
}

func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Negócio deletado com sucesso"})
}
