package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

type StageRepository struct {
	DB *sql.DB
}

func NewStageRepository(db *sql.DB) *StageRepository {
	return &StageRepository{DB: db}
}

func (r *StageRepository) Create(ctx context.Context, s *entity.PipelineStage) error {
	query := `INSERT INTO pipeline_stages (id, name, "order", color) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.Name, s.Order, s.Color)
	if err != nil {
		return fmt.Errorf("criar etapa: %w", err)
	}
	return nil
}

func (r *StageRepository) FindByID(ctx context.Context, id string) (*entity.PipelineStage, error) {
	query := `SELECT id, name, "order", color FROM pipeline_stages WHERE id = $1`
	var s entity.PipelineStage
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Order, &s.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrStageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("buscar etapa: %w", err)
	}
	return &s, nil
}

// List ordena pelas posições do quadro, da esquerda para a direita.
func (r *StageRepository) List(ctx context.Context) ([]entity.PipelineStage, error) {
	query := `SELECT id, name, "order", color FROM pipeline_stages ORDER BY "order" ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar etapas: %w", err)
	}
	defer rows.Close()

	stages := []entity.PipelineStage{}
	for rows.Next() {
		var s entity.PipelineStage
		if err := rows.Scan(&s.ID, &s.Name, &s.Order, &s.Color); err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, rows.Err()
}

// First devolve a etapa inicial do pipeline (menor "order").
// Negócios novos sem etapa explícita entram aqui.
func (r *StageRepository) First(ctx context.Context) (*entity.PipelineStage, error) {
	query := `SELECT id, name, "order", color FROM pipeline_stages ORDER BY "order" ASC LIMIT 1`
	var s entity.PipelineStage
	err := r.DB.QueryRowContext(ctx, query).Scan(&s.ID, &s.Name, &s.Order, &s.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrStageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("buscar etapa inicial: %w", err)
	}
	return &s, nil
}

func (r *StageRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM pipeline_stages`).Scan(&count)
	return count, err
}
