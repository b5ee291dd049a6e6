package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
	"github.com/aetherlabs-ai/aether-crm/internal/usecase"
)

func TestPipelineHandlerGetSummary(t *testing.T) {
	dealRepo := &MockDealRepository{}
	stageRepo := &MockStageRepository{}
	leadRepo := &MockLeadRepository{}

	stageRepo.On("List", mock.Anything).Return([]entity.PipelineStage{
		{ID: "s1", Name: "Prospecção", Order: 1},
		{ID: "s2", Name: "Proposta", Order: 2},
	}, nil)
	dealRepo.On("List", mock.Anything).Return([]entity.Deal{
		{ID: "d1", StageID: "s1", Value: 100000, Probability: 50},
	}, nil)
	leadRepo.On("List", mock.Anything).Return([]entity.Lead{
		{ID: "l1", Status: entity.LeadStatusWon},
		{ID: "l2", Status: entity.LeadStatusNew},
	}, nil)

	summary := usecase.NewPipelineSummaryUseCase(dealRepo, stageRepo, leadRepo)
	h := NewPipelineHandler(stageRepo, summary)

	rec := httptest.NewRecorder()
	h.GetSummary(rec, httptest.NewRequest(http.MethodGet, "/api/admin/pipeline/summary", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got usecase.PipelineOverview
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Pipeline.Stages, 2)
	assert.Equal(t, 100000, got.Pipeline.TotalValue)
	assert.Equal(t, []entity.Deal{}, got.Pipeline.Stages[1].Deals)
	assert.Equal(t, 50, got.Funnel.ConversionRate)
}

func TestPipelineHandlerCreateStage(t *testing.T) {
	stageRepo := &MockStageRepository{}
	stageRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	h := NewPipelineHandler(stageRepo, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/pipeline/stages",
		strings.NewReader(`{"name":"Negociação","order":4}`))
	rec := httptest.NewRecorder()

	h.CreateStage(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got entity.PipelineStage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Negociação", got.Name)
	assert.Equal(t, entity.DefaultStageColor, got.Color)
	stageRepo.AssertExpectations(t)
}

func TestPipelineHandlerCreateStageRequiresName(t *testing.T) {
	stageRepo := &MockStageRepository{}

	h := NewPipelineHandler(stageRepo, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/pipeline/stages", strings.NewReader(`{"name":"  "}`))
	rec := httptest.NewRecorder()

	h.CreateStage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	stageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
