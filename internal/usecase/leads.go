package usecase

import (
	"context"
	"time"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

// LeadUseCase: CRUD do funil. Mudança de status aceita qualquer valor do
// conjunto fixo, sem adjacência — mesma disciplina de transição do quadro
// de negócios, só que indexada por enum.
type LeadUseCase struct {
	Leads LeadRepositoryInterface
}

func NewLeadUseCase(leads LeadRepositoryInterface) *LeadUseCase {
	return &LeadUseCase{Leads: leads}
}

func (uc *LeadUseCase) Create(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	lead := entity.NewLead(input.Name, input.Email, input.Phone, input.Company, input.Source, input.Notes, input.Score)
	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (uc *LeadUseCase) Update(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error) {
	if errs := ValidateUpdateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		lead.Name = *input.Name
	}
	if input.Email != nil {
		lead.Email = *input.Email
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
	}
	if input.Company != nil {
		lead.Company = *input.Company
	}
	if input.Source != nil {
		lead.Source = *input.Source
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}
	if input.Score != nil {
		lead.Score = *input.Score
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}

	lead.UpdatedAt = time.Now()
	if err := uc.Leads.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}
