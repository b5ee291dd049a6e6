package entity

import "github.com/google/uuid"

const DefaultStageColor = "#3b82f6"

// PipelineStage é uma coluna ordenada do quadro kanban.
// Order define a posição da esquerda para a direita e é único por etapa.
type PipelineStage struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
	Color string `json:"color"`
}

func NewPipelineStage(name string, order int, color string) *PipelineStage {
	if color == "" {
		color = DefaultStageColor
	}
	return &PipelineStage{
		ID:    uuid.New().String(),
		Name:  name,
		Order: order,
		Color: color,
	}
}
