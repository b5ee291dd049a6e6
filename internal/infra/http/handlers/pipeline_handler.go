package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
	"github.com/aetherlabs-ai/aether-crm/internal/usecase"
)

type PipelineHandler struct {
	Stages  usecase.StageRepositoryInterface
	Summary *usecase.PipelineSummaryUseCase
}

func NewPipelineHandler(stages usecase.StageRepositoryInterface, summary *usecase.PipelineSummaryUseCase) *PipelineHandler {
	return &PipelineHandler{Stages: stages, Summary: summary}
}

func (h *PipelineHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.Stages.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stages)
}

type createStageRequest struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
	Color string `json:"color"`
}

func (h *PipelineHandler) CreateStage(w http.ResponseWriter, r *http.Request) {
	var req createStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "JSON inválido")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondMessage(w, http.StatusBadRequest, "VALIDATION_ERROR", "Nome da etapa é obrigatório")
		return
	}

	stage := entity.NewPipelineStage(req.Name, req.Order, req.Color)
	if err := h.Stages.Create(r.Context(), stage); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, stage)
}

// GetSummary expõe os agregados do quadro e do funil, recalculados a
// cada leitura a partir do estado persistido.
func (h *PipelineHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Summary.Execute(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}
