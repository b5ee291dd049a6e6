package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

func TestLeadCreateDefaults(t *testing.T) {
	leadRepo := &MockLeadRepository{}
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewLeadUseCase(leadRepo)
	lead, err := uc.Create(context.Background(), CreateLeadInput{Name: "Maria Souza", Email: "maria@empresa.com.br"})

	assert.NoError(t, err)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.Equal(t, "website", lead.Source)
	assert.NotEmpty(t, lead.ID)
	leadRepo.AssertExpectations(t)
}

func TestLeadCreateRejectsInvalidEmail(t *testing.T) {
	leadRepo := &MockLeadRepository{}

	uc := NewLeadUseCase(leadRepo)
	_, err := uc.Create(context.Background(), CreateLeadInput{Name: "Maria", Email: "não-é-email"})

	assert.True(t, IsValidationError(err))
	leadRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLeadUpdateStatus(t *testing.T) {
	leadRepo := &MockLeadRepository{}

	lead := entity.Lead{ID: "l1", Name: "Maria", Email: "maria@empresa.com.br", Status: entity.LeadStatusNew}
	leadRepo.On("FindByID", mock.Anything, "l1").Return(&lead, nil)
	leadRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := NewLeadUseCase(leadRepo)
	status := entity.LeadStatusWon
	updated, err := uc.Update(context.Background(), "l1", UpdateLeadInput{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, entity.LeadStatusWon, updated.Status)
	assert.Equal(t, "Maria", updated.Name)
	leadRepo.AssertExpectations(t)
}

func TestLeadUpdateRejectsUnknownStatus(t *testing.T) {
	leadRepo := &MockLeadRepository{}

	uc := NewLeadUseCase(leadRepo)
	status := "archived"
	_, err := uc.Update(context.Background(), "l1", UpdateLeadInput{Status: &status})

	assert.True(t, IsValidationError(err))
	leadRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	leadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestLeadUpdateUnknownLead(t *testing.T) {
	leadRepo := &MockLeadRepository{}
	leadRepo.On("FindByID", mock.Anything, "ghost").Return(nil, entity.ErrLeadNotFound)

	uc := NewLeadUseCase(leadRepo)
	name := "Novo Nome"
	_, err := uc.Update(context.Background(), "ghost", UpdateLeadInput{Name: &name})

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}
