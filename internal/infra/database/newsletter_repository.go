package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

type NewsletterRepository struct {
	DB *sql.DB
}

func NewNewsletterRepository(db *sql.DB) *NewsletterRepository {
	return &NewsletterRepository{DB: db}
}

// Upsert grava a inscrição; email repetido só renova o updated_at.
func (r *NewsletterRepository) Upsert(ctx context.Context, sub *entity.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (id, email, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (email)
		DO UPDATE SET updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}

	err := r.DB.QueryRowContext(ctx, query, sub.ID, sub.Email).Scan(
		&sub.ID,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inscrever na newsletter: %w", err)
	}
	return nil
}
