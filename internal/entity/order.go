package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("pedido não encontrado")

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusDone       = "done"
	OrderStatusCancelled  = "cancelled"
)

// Order é um pedido de serviço enviado pelo site público.
// ServiceName é desnormalizado para manter o histórico mesmo se o
// serviço for alterado depois.
type Order struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	ClientPhone string    `json:"client_phone,omitempty"`
	ServiceID   string    `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewOrder(clientName, clientEmail, clientPhone, serviceID, serviceName, notes string) *Order {
	now := time.Now()
	return &Order{
		ID:          uuid.New().String(),
		ClientName:  clientName,
		ClientEmail: clientEmail,
		ClientPhone: clientPhone,
		ServiceID:   serviceID,
		ServiceName: serviceName,
		Status:      OrderStatusPending,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
