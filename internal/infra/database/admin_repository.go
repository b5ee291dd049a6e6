package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

type AdminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) Create(ctx context.Context, a *entity.AdminUser) error {
	query := `INSERT INTO admin_users (id, username, password, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query, a.ID, a.Username, a.Password, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("criar admin: %w", err)
	}
	return nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*entity.AdminUser, error) {
	query := `SELECT id, username, password, created_at FROM admin_users WHERE id = $1`
	var a entity.AdminUser
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Username, &a.Password, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("buscar admin: %w", err)
	}
	return &a, nil
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	query := `SELECT id, username, password, created_at FROM admin_users WHERE username = $1`
	var a entity.AdminUser
	err := r.DB.QueryRowContext(ctx, query, username).Scan(&a.ID, &a.Username, &a.Password, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("buscar admin: %w", err)
	}
	return &a, nil
}

// SessionRepository mapeia tokens opacos para admins, com expiração.
type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *entity.Session) error {
	query := `INSERT INTO sessions (token, admin_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query, s.Token, s.AdminID, s.ExpiresAt, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("criar sessão: %w", err)
	}
	return nil
}

// Find ignora sessões expiradas; a limpeza física fica com Purge.
func (r *SessionRepository) Find(ctx context.Context, token string) (*entity.Session, error) {
	query := `SELECT token, admin_id, expires_at, created_at FROM sessions WHERE token = $1 AND expires_at > NOW()`
	var s entity.Session
	err := r.DB.QueryRowContext(ctx, query, token).Scan(&s.Token, &s.AdminID, &s.ExpiresAt, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("buscar sessão: %w", err)
	}
	return &s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("encerrar sessão: %w", err)
	}
	return nil
}

// Purge remove sessões vencidas há mais de um dia.
func (r *SessionRepository) Purge(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < $1`, time.Now().Add(-24*time.Hour))
	return err
}
