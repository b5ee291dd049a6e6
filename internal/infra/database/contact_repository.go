package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, phone, subject, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.Name, c.Email, nullString(c.Phone), c.Subject, c.Message, c.Status, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("criar contato: %w", err)
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]entity.Contact, error) {
	query := `
		SELECT id, name, email, phone, subject, message, status, created_at
		FROM contacts
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar contatos: %w", err)
	}
	defer rows.Close()

	contacts := []entity.Contact{}
	for rows.Next() {
		var c entity.Contact
		var phone sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &phone, &c.Subject, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Phone = fromNull(phone)
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
