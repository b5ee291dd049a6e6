package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aetherlabs-ai/aether-crm/internal/infra/http/middleware"
	"github.com/aetherlabs-ai/aether-crm/internal/usecase"
)

type LeadHandler struct {
	UseCase *usecase.LeadUseCase
	Repo    usecase.LeadRepositoryInterface
}

func NewLeadHandler(uc *usecase.LeadUseCase, repo usecase.LeadRepositoryInterface) *LeadHandler {
	return &LeadHandler{UseCase: uc, Repo: repo}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repo.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	lead, err := h.UseCase.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordLeadCaptured(lead.Source)
	respondJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	lead, err := h.UseCase.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Lead deletado com sucesso"})
}
