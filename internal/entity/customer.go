package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound   = errors.New("cliente não encontrado")
	ErrEmailAlreadyExists = errors.New("email já cadastrado")
)

const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
)

// Customer é um contato convertido, com valor de vida acompanhado.
// Email é único: dois cadastros com o mesmo email são um conflito.
type Customer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Company       string    `json:"company,omitempty"`
	LifetimeValue int       `json:"lifetime_value"`
	Satisfaction  int       `json:"satisfaction"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewCustomer(name, email, phone, company, notes string, lifetimeValue, satisfaction int) *Customer {
	now := time.Now()
	return &Customer{
		ID:            uuid.New().String(),
		Name:          name,
		Email:         email,
		Phone:         phone,
		Company:       company,
		LifetimeValue: lifetimeValue,
		Satisfaction:  ClampSatisfaction(satisfaction),
		Status:        CustomerStatusActive,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ClampSatisfaction limita a nota ao intervalo 0–5.
func ClampSatisfaction(s int) int {
	if s < 0 {
		return 0
	}
	if s > 5 {
		return 5
	}
	return s
}
