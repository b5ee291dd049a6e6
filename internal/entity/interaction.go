package entity

import (
	"time"

	"github.com/google/uuid"
)

// Interaction é um registro de contato (ligação, email, reunião) anexado
// a um lead ou cliente. Append-only: criada e nunca alterada.
type Interaction struct {
	ID          string    `json:"id"`
	LeadID      string    `json:"lead_id,omitempty"`
	CustomerID  string    `json:"customer_id,omitempty"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Outcome     string    `json:"outcome,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewInteraction(leadID, customerID, interactionType, description, outcome string) *Interaction {
	return &Interaction{
		ID:          uuid.New().String(),
		LeadID:      leadID,
		CustomerID:  customerID,
		Type:        interactionType,
		Description: description,
		Outcome:     outcome,
		CreatedAt:   time.Now(),
	}
}
