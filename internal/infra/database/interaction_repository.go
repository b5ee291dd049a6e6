package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

type InteractionRepository struct {
	DB *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) Create(ctx context.Context, i *entity.Interaction) error {
	query := `
		INSERT INTO interactions (id, lead_id, customer_id, type, description, outcome, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		i.ID, nullString(i.LeadID), nullString(i.CustomerID), i.Type, i.Description, nullString(i.Outcome), i.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("criar interação: %w", err)
	}
	return nil
}

func (r *InteractionRepository) List(ctx context.Context) ([]entity.Interaction, error) {
	query := `
		SELECT id, lead_id, customer_id, type, description, outcome, created_at
		FROM interactions
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar interações: %w", err)
	}
	defer rows.Close()

	interactions := []entity.Interaction{}
	for rows.Next() {
		var i entity.Interaction
		var leadID, customerID, outcome sql.NullString
		if err := rows.Scan(&i.ID, &leadID, &customerID, &i.Type, &i.Description, &outcome, &i.CreatedAt); err != nil {
			return nil, err
		}
		i.LeadID = fromNull(leadID)
		i.CustomerID = fromNull(customerID)
		i.Outcome = fromNull(outcome)
		interactions = append(interactions, i)
	}
	return interactions, rows.Err()
}
