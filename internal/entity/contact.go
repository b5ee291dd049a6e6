package entity

import (
	"time"

	"github.com/google/uuid"
)

const ContactStatusNew = "new"

// Contact é uma mensagem do formulário de contato do site.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContact(name, email, phone, subject, message string) *Contact {
	return &Contact{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Subject:   subject,
		Message:   message,
		Status:    ContactStatusNew,
		CreatedAt: time.Now(),
	}
}

// NewsletterSubscriber guarda inscrições da newsletter do site.
// Email repetido vira upsert, nunca erro: o formulário é fire-and-forget.
type NewsletterSubscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
