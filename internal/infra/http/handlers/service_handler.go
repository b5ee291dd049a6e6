package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/database"
)

type ServiceHandler struct {
	Repo *database.ServiceRepository
}

func NewServiceHandler(repo *database.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Repo: repo}
}

// ListPublic alimenta o catálogo do site: só serviços ativos.
func (h *ServiceHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	services, err := h.Repo.ListActive(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, services)
}

func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	service, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, service)
}

func (h *ServiceHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	services, err := h.Repo.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, services)
}

type serviceRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Price        string   `json:"price"`
	Image        string   `json:"image"`
	Features     []string `json:"features"`
	Deliverables []string `json:"deliverables"`
	Details      string   `json:"details"`
	IsActive     *bool    `json:"is_active"`
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "JSON inválido")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		respondMessage(w, http.StatusBadRequest, "VALIDATION_ERROR", "Título e descrição são obrigatórios")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	service := entity.NewService(req.Title, req.Description, req.Category, req.Price,
		req.Image, req.Details, req.Features, req.Deliverables, isActive)

	if err := h.Repo.Create(r.Context(), service); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, service)
}

type updateServiceRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category"`
	Price        *string  `json:"price"`
	Image        *string  `json:"image"`
	Features     []string `json:"features"`
	Deliverables []string `json:"deliverables"`
	Details      *string  `json:"details"`
	IsActive     *bool    `json:"is_active"`
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	service, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	if req.Title != nil {
		service.Title = *req.Title
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Image != nil {
		service.Image = *req.Image
	}
	if req.Features != nil {
		service.Features = req.Features
	}
	if req.Deliverables != nil {
		service.Deliverables = req.Deliverables
	}
	if req.Details != nil {
		service.Details = *req.Details
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	service.UpdatedAt = time.Now()
	if err := h.Repo.Update(r.Context(), service); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, service)
}

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Serviço deletado com sucesso"})
}
