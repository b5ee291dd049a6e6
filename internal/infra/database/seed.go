package database

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

// SeedAdmin garante o usuário administrativo inicial.
func SeedAdmin(ctx context.Context, repo *AdminRepository, username, password string) error {
	_, err := repo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, entity.ErrAdminNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := repo.Create(ctx, entity.NewAdminUser(username, string(hash))); err != nil {
		return err
	}

	log.Printf("admin %q criado", username)
	return nil
}

// SeedStages cria o pipeline padrão quando o quadro está vazio.
func SeedStages(ctx context.Context, repo *StageRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		name  string
		order int
		color string
	}{
		{"Prospecção", 1, "#6366f1"},
		{"Qualificação", 2, "#8b5cf6"},
		{"Proposta", 3, "#f59e0b"},
		{"Negociação", 4, "#3b82f6"},
		{"Fechamento", 5, "#10b981"},
	}

	for _, d := range defaults {
		if err := repo.Create(ctx, entity.NewPipelineStage(d.name, d.order, d.color)); err != nil {
			return err
		}
	}

	log.Printf("pipeline padrão criado com %d etapas", len(defaults))
	return nil
}
