package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errors.New("serviço não encontrado")

// Service é um item do catálogo do site institucional.
// Price é texto de exibição ("R$ 4.900", "sob consulta").
type Service struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Price        string    `json:"price"`
	Image        string    `json:"image"`
	Features     []string  `json:"features"`
	Deliverables []string  `json:"deliverables"`
	Details      string    `json:"details,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewService(title, description, category, price, image, details string, features, deliverables []string, isActive bool) *Service {
	if features == nil {
		features = []string{}
	}
	if deliverables == nil {
		deliverables = []string{}
	}
	now := time.Now()
	return &Service{
		ID:           uuid.New().String(),
		Title:        title,
		Description:  description,
		Category:     category,
		Price:        price,
		Image:        image,
		Features:     features,
		Deliverables: deliverables,
		Details:      details,
		IsActive:     isActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
