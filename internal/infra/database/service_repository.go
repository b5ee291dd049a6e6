package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

type ServiceRepository struct {
	DB *sql.DB
}

func NewServiceRepository(db *sql.DB) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

const serviceColumns = `id, title, description, category, price, image, features, deliverables, details, is_active, created_at, updated_at`

func scanService(row interface{ Scan(...any) error }) (*entity.Service, error) {
	var s entity.Service
	var details sql.NullString
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Category, &s.Price, &s.Image,
		pq.Array(&s.Features), pq.Array(&s.Deliverables), &details, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Details = fromNull(details)
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *entity.Service) error {
	query := `
		INSERT INTO services (id, title, description, category, price, image, features, deliverables, details, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.Title, s.Description, s.Category, s.Price, s.Image,
		pq.Array(s.Features), pq.Array(s.Deliverables), nullString(s.Details), s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("criar serviço: %w", err)
	}
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	s, err := scanService(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("buscar serviço: %w", err)
	}
	return s, nil
}

func (r *ServiceRepository) list(ctx context.Context, query string) ([]entity.Service, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar serviços: %w", err)
	}
	defer rows.Close()

	services := []entity.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, *s)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) List(ctx context.Context) ([]entity.Service, error) {
	return r.list(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY created_at ASC`)
}

// ListActive alimenta o catálogo público: só serviços ativos.
func (r *ServiceRepository) ListActive(ctx context.Context) ([]entity.Service, error) {
	return r.list(ctx, `SELECT `+serviceColumns+` FROM services WHERE is_active = TRUE ORDER BY created_at ASC`)
}

func (r *ServiceRepository) Update(ctx context.Context, s *entity.Service) error {
	query := `
		UPDATE services
		SET title = $1, description = $2, category = $3, price = $4, image = $5,
		    features = $6, deliverables = $7, details = $8, is_active = $9, updated_at = $10
		WHERE id = $11
	`
	res, err := r.DB.ExecContext(ctx, query,
		s.Title, s.Description, s.Category, s.Price, s.Image,
		pq.Array(s.Features), pq.Array(s.Deliverables), nullString(s.Details), s.IsActive, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return fmt.Errorf("atualizar serviço: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deletar serviço: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrServiceNotFound
	}
	return nil
}
