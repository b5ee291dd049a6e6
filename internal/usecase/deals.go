package usecase

import (
	"context"
	"time"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

// DealUseCase cobre criação, merge parcial e a transição de etapa.
// OnMove, quando definido, é chamado a cada transição efetivamente
// persistida (no-op não conta).
type DealUseCase struct {
	Deals  DealRepositoryInterface
	Stages StageRepositoryInterface
	OnMove func()
}

func NewDealUseCase(deals DealRepositoryInterface, stages StageRepositoryInterface) *DealUseCase {
	return &DealUseCase{Deals: deals, Stages: stages}
}

// Create valida a etapa e usa a primeira coluna do quadro quando
// nenhuma etapa é informada.
func (uc *DealUseCase) Create(ctx context.Context, input CreateDealInput) (*entity.Deal, error) {
	if errs := ValidateCreateDealInput(input); len(errs) > 0 {
		return nil, errs
	}

	stageID := input.StageID
	if stageID == "" {
		first, err := uc.Stages.First(ctx)
		if err != nil {
			return nil, err
		}
		stageID = first.ID
	} else {
		if _, err := uc.Stages.FindByID(ctx, stageID); err != nil {
			return nil, err
		}
	}

	probability := entity.DefaultProbability
	if input.Probability != nil {
		probability = *input.Probability
	}

	deal := entity.NewDeal(input.Title, input.LeadID, input.CustomerID, stageID,
		input.Notes, input.Value, probability, input.ExpectedCloseDate)

	if err := uc.Deals.Create(ctx, deal); err != nil {
		return nil, err
	}
	return deal, nil
}

// Move é a máquina de estados plana do quadro: qualquer etapa alcança
// qualquer etapa em uma transição. Mover para a etapa atual é no-op sem
// escrita; etapa inexistente falha sem tocar o negócio. Último a
// escrever vence — não há token de versão.
func (uc *DealUseCase) Move(ctx context.Context, dealID, stageID string) (*entity.Deal, error) {
	deal, err := uc.Deals.FindByID(ctx, dealID)
	if err != nil {
		return nil, err
	}

	if deal.StageID == stageID {
		return deal, nil
	}

	if _, err := uc.Stages.FindByID(ctx, stageID); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.Deals.UpdateStage(ctx, dealID, stageID, now); err != nil {
		return nil, err
	}
	if uc.OnMove != nil {
		uc.OnMove()
	}

	deal.StageID = stageID
	deal.UpdatedAt = now
	return deal, nil
}

// Update faz merge parcial; campos ausentes preservam o valor atual.
// Quando a mudança é apenas de etapa, delega para Move (mantendo o
// contrato de no-op); sem nenhuma mudança, nada é persistido.
func (uc *DealUseCase) Update(ctx context.Context, id string, input UpdateDealInput) (*entity.Deal, error) {
	if onlyStageChange(input) {
		return uc.Move(ctx, id, *input.StageID)
	}

	deal, err := uc.Deals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.StageID != nil && *input.StageID != deal.StageID {
		if _, err := uc.Stages.FindByID(ctx, *input.StageID); err != nil {
			return nil, err
		}
		deal.StageID = *input.StageID
	}
	if input.Title != nil {
		deal.Title = *input.Title
	}
	if input.LeadID != nil {
		deal.LeadID = *input.LeadID
	}
	if input.CustomerID != nil {
		deal.CustomerID = *input.CustomerID
	}
	if input.Value != nil {
		deal.Value = *input.Value
	}
	if input.Probability != nil {
		deal.Probability = entity.ClampProbability(*input.Probability)
	}
	if input.ExpectedCloseDate != nil {
		deal.ExpectedCloseDate = input.ExpectedCloseDate
	}
	if input.Notes != nil {
		deal.Notes = *input.Notes
	}

	deal.UpdatedAt = time.Now()
	if err := uc.Deals.Update(ctx, deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func onlyStageChange(input UpdateDealInput) bool {
	return input.StageID != nil &&
		input.Title == nil && input.LeadID == nil && input.CustomerID == nil &&
		input.Value == nil && input.Probability == nil &&
		input.ExpectedCloseDate == nil && input.Notes == nil
}
