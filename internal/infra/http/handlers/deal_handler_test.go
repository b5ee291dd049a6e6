package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
	"github.com/aetherlabs-ai/aether-crm/internal/usecase"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newDealHandler(dealRepo *MockDealRepository, stageRepo *MockStageRepository) *DealHandler {
	return NewDealHandler(usecase.NewDealUseCase(dealRepo, stageRepo), dealRepo)
}

func TestDealHandlerUpdateMovesStage(t *testing.T) {
	dealRepo := &MockDealRepository{}
	stageRepo := &MockStageRepository{}

	d := entity.Deal{ID: "d1", Title: "Automação", StageID: "s1", Value: 100000, Probability: 50}
	target := entity.PipelineStage{ID: "s2", Name: "Proposta", Order: 2}

	dealRepo.On("FindByID", mock.Anything, "d1").Return(&d, nil)
	stageRepo.On("FindByID", mock.Anything, "s2").Return(&target, nil)
	dealRepo.On("UpdateStage", mock.Anything, "d1", "s2", mock.Anything).Return(nil)

	h := newDealHandler(dealRepo, stageRepo)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/deals/d1", strings.NewReader(`{"stage_id":"s2"}`))
	req = withURLParam(req, "id", "d1")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got entity.Deal
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "s2", got.StageID)
	dealRepo.AssertExpectations(t)
}

func TestDealHandlerUpdateUnknownStage(t *testing.T) {
	dealRepo := &MockDealRepository{}
	stageRepo := &MockStageRepository{}

	d := entity.Deal{ID: "d1", StageID: "s1"}
	dealRepo.On("FindByID", mock.Anything, "d1").Return(&d, nil)
	stageRepo.On("FindByID", mock.Anything, "ghost").Return(nil, entity.ErrStageNotFound)

	h := newDealHandler(dealRepo, stageRepo)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/deals/d1", strings.NewReader(`{"stage_id":"ghost"}`))
	req = withURLParam(req, "id", "d1")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["code"])
	dealRepo.AssertNotCalled(t, "UpdateStage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDealHandlerUpdateUnknownDeal(t *testing.T) {
	dealRepo := &MockDealRepository{}
	dealRepo.On("FindByID", mock.Anything, "ghost").Return(nil, entity.ErrDealNotFound)

	h := newDealHandler(dealRepo, &MockStageRepository{})

	req := httptest.NewRequest(http.MethodPut, "/api/admin/deals/ghost", strings.NewReader(`{"stage_id":"s2"}`))
	req = withURLParam(req, "id", "ghost")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDealHandlerUpdateInvalidJSON(t *testing.T) {
	h := newDealHandler(&MockDealRepository{}, &MockStageRepository{})

	req := httptest.NewRequest(http.MethodPut, "/api/admin/deals/d1", strings.NewReader(`{broken`))
	req = withURLParam(req, "id", "d1")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_JSON", body["code"])
}

func TestDealHandlerCreate(t *testing.T) {
	dealRepo := &MockDealRepository{}
	stageRepo := &MockStageRepository{}

	first := entity.PipelineStage{ID: "s1", Name: "Prospecção", Order: 1}
	stageRepo.On("First", mock.Anything).Return(&first, nil)
	dealRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	h := newDealHandler(dealRepo, stageRepo)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/deals", strings.NewReader(`{"title":"Site institucional","value":500000}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got entity.Deal
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "s1", got.StageID)
	assert.Equal(t, entity.DefaultProbability, got.Probability)
}

func TestDealHandlerList(t *testing.T) {
	dealRepo := &MockDealRepository{}
	dealRepo.On("List", mock.Anything).Return([]entity.Deal{{ID: "d1"}, {ID: "d2"}}, nil)

	h := newDealHandler(dealRepo, &MockStageRepository{})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/admin/deals", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []entity.Deal
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}
