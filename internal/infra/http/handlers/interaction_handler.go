package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/database"
)

type InteractionHandler struct {
	Repo *database.InteractionRepository
}

func NewInteractionHandler(repo *database.InteractionRepository) *InteractionHandler {
	return &InteractionHandler{Repo: repo}
}

func (h *InteractionHandler) List(w http.ResponseWriter, r *http.Request) {
	interactions, err := h.Repo.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, interactions)
}

type createInteractionRequest struct {
	LeadID      string `json:"lead_id"`
	CustomerID  string `json:"customer_id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Outcome     string `json:"outcome"`
}

func (h *InteractionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "JSON inválido")
		return
	}
	if strings.TrimSpace(req.Type) == "" || strings.TrimSpace(req.Description) == "" {
		respondMessage(w, http.StatusBadRequest, "VALIDATION_ERROR", "Tipo e descrição são obrigatórios")
		return
	}

	interaction := entity.NewInteraction(req.LeadID, req.CustomerID, req.Type, req.Description, req.Outcome)
	if err := h.Repo.Create(r.Context(), interaction); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, interaction)
}
