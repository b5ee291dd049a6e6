package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aetherlabs-ai/aether-crm/internal/usecase"
)

type CustomerHandler struct {
	UseCase *usecase.CustomerUseCase
	Repo    usecase.CustomerRepositoryInterface
}

func NewCustomerHandler(uc *usecase.CustomerUseCase, repo usecase.CustomerRepositoryInterface) *CustomerHandler {
	return &CustomerHandler{UseCase: uc, Repo: repo}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Repo.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	customer, err := h.UseCase.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	customer, err := h.UseCase.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}
