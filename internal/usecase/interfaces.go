package usecase

import (
	"context"
	"time"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, l *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context) ([]entity.Lead, error)
	Update(ctx context.Context, l *entity.Lead) error
	Delete(ctx context.Context, id string) error
}

type CustomerRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Customer) error
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
}

type DealRepositoryInterface interface {
	Create(ctx context.Context, d *entity.Deal) error
	FindByID(ctx context.Context, id string) (*entity.Deal, error)
	List(ctx context.Context) ([]entity.Deal, error)
	Update(ctx context.Context, d *entity.Deal) error
	UpdateStage(ctx context.Context, id, stageID string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type StageRepositoryInterface interface {
	Create(ctx context.Context, s *entity.PipelineStage) error
	FindByID(ctx context.Context, id string) (*entity.PipelineStage, error)
	List(ctx context.Context) ([]entity.PipelineStage, error)
	First(ctx context.Context) (*entity.PipelineStage, error)
}
