package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAdminNotFound     = errors.New("usuário não encontrado")
	ErrInvalidCredential = errors.New("credenciais inválidas")
	ErrSessionNotFound   = errors.New("sessão inválida ou expirada")
)

// AdminUser é o operador do console administrativo.
// Password guarda o hash bcrypt, nunca o texto puro.
type AdminUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAdminUser(username, passwordHash string) *AdminUser {
	return &AdminUser{
		ID:        uuid.New().String(),
		Username:  username,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
}

// Session é um token opaco mapeado no servidor para um admin, com
// expiração explícita. Substitui o mapa de sessão implícito por processo.
type Session struct {
	Token     string    `json:"token"`
	AdminID   string    `json:"admin_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
