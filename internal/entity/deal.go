package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDealNotFound  = errors.New("negócio não encontrado")
	ErrStageNotFound = errors.New("etapa do pipeline não encontrada")
)

const DefaultProbability = 50

// Deal é uma oportunidade monetária em uma etapa do pipeline.
// Value em centavos. StageID sempre referencia uma etapa existente
// (FK no banco); a transição de etapa é livre entre quaisquer etapas.
type Deal struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	LeadID            string     `json:"lead_id,omitempty"`
	CustomerID        string     `json:"customer_id,omitempty"`
	Value             int        `json:"value"`
	StageID           string     `json:"stage_id"`
	Probability       int        `json:"probability"`
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func NewDeal(title, leadID, customerID, stageID, notes string, value, probability int, expectedCloseDate *time.Time) *Deal {
	now := time.Now()
	return &Deal{
		ID:                uuid.New().String(),
		Title:             title,
		LeadID:            leadID,
		CustomerID:        customerID,
		Value:             value,
		StageID:           stageID,
		Probability:       ClampProbability(probability),
		ExpectedCloseDate: expectedCloseDate,
		Notes:             notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// ClampProbability limita a probabilidade ao intervalo 0–100.
func ClampProbability(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// WeightedValue é o valor do negócio ponderado pela probabilidade de fechamento.
func (d *Deal) WeightedValue() float64 {
	return float64(d.Value) * float64(ClampProbability(d.Probability)) / 100
}
