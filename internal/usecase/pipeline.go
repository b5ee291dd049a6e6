package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

// StageSummary é uma coluna do quadro com seus negócios e total.
type StageSummary struct {
	Stage      entity.PipelineStage `json:"stage"`
	Deals      []entity.Deal        `json:"deals"`
	TotalValue int                  `json:"total_value"`
}

// PipelineSummary é o modelo de leitura do quadro: derivado do conjunto
// atual de negócios a cada chamada, nunca armazenado.
type PipelineSummary struct {
	Stages        []StageSummary `json:"stages"`
	DealCount     int            `json:"deal_count"`
	TotalValue    int            `json:"total_value"`
	WeightedValue float64        `json:"weighted_value"`
	AvgDealValue  float64        `json:"avg_deal_value"`
}

type FunnelStage struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type LeadFunnel struct {
	Stages         []FunnelStage `json:"stages"`
	Total          int           `json:"total"`
	Open           int           `json:"open"`
	Won            int           `json:"won"`
	ConversionRate int           `json:"conversion_rate"`
}

// BuildPipelineSummary agrupa os negócios por etapa e calcula os
// agregados. Toda etapa configurada aparece, mesmo vazia; as etapas saem
// ordenadas por "order" e os negócios preservam a ordem de entrada
// (created_at ascendente vindo do repositório).
func BuildPipelineSummary(stages []entity.PipelineStage, deals []entity.Deal) PipelineSummary {
	ordered := make([]entity.PipelineStage, len(stages))
	copy(ordered, stages)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	byStage := make(map[string][]entity.Deal, len(ordered))
	for _, d := range deals {
		byStage[d.StageID] = append(byStage[d.StageID], d)
	}

	summary := PipelineSummary{Stages: make([]StageSummary, 0, len(ordered))}
	for _, s := range ordered {
		col := StageSummary{Stage: s, Deals: byStage[s.ID]}
		if col.Deals == nil {
			col.Deals = []entity.Deal{}
		}
		for _, d := range col.Deals {
			col.TotalValue += d.Value
		}
		summary.Stages = append(summary.Stages, col)
	}

	for _, d := range deals {
		summary.TotalValue += d.Value
		summary.WeightedValue += d.WeightedValue()
	}
	summary.DealCount = len(deals)
	if summary.DealCount > 0 {
		summary.AvgDealValue = float64(summary.TotalValue) / float64(summary.DealCount)
	}

	return summary
}

// BuildLeadFunnel conta leads por status na ordem do funil.
// Funil vazio rende taxa zero, nunca divisão por zero.
func BuildLeadFunnel(leads []entity.Lead) LeadFunnel {
	counts := make(map[string]int, len(entity.LeadStatuses))
	for _, l := range leads {
		counts[l.Status]++
	}

	funnel := LeadFunnel{Stages: make([]FunnelStage, 0, len(entity.LeadStatuses))}
	for _, status := range entity.LeadStatuses {
		funnel.Stages = append(funnel.Stages, FunnelStage{Status: status, Count: counts[status]})
	}

	funnel.Total = len(leads)
	funnel.Won = counts[entity.LeadStatusWon]
	funnel.Open = funnel.Total - funnel.Won - counts[entity.LeadStatusLost]
	if funnel.Total > 0 {
		funnel.ConversionRate = int(math.Round(float64(funnel.Won) / float64(funnel.Total) * 100))
	}

	return funnel
}

// PipelineSummaryUseCase monta a visão agregada do CRM sob demanda.
type PipelineSummaryUseCase struct {
	Deals  DealRepositoryInterface
	Stages StageRepositoryInterface
	Leads  LeadRepositoryInterface
}

func NewPipelineSummaryUseCase(deals DealRepositoryInterface, stages StageRepositoryInterface, leads LeadRepositoryInterface) *PipelineSummaryUseCase {
	return &PipelineSummaryUseCase{Deals: deals, Stages: stages, Leads: leads}
}

type PipelineOverview struct {
	Pipeline PipelineSummary `json:"pipeline"`
	Funnel   LeadFunnel      `json:"funnel"`
}

func (uc *PipelineSummaryUseCase) Execute(ctx context.Context) (*PipelineOverview, error) {
	stages, err := uc.Stages.List(ctx)
	if err != nil {
		return nil, err
	}
	deals, err := uc.Deals.List(ctx)
	if err != nil {
		return nil, err
	}
	leads, err := uc.Leads.List(ctx)
	if err != nil {
		return nil, err
	}

	return &PipelineOverview{
		Pipeline: BuildPipelineSummary(stages, deals),
		Funnel:   BuildLeadFunnel(leads),
	}, nil
}
