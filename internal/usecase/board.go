package usecase

import (
	"sync"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

// Board é o redutor de arrastar-e-soltar do quadro, do lado do cliente:
// aplica a transição de forma otimista e trata a resposta do servidor
// como fonte de verdade. Confirm promove a movimentação; Reject reverte
// para a última etapa confirmada pelo servidor.
type Board struct {
	mu        sync.Mutex
	confirmed map[string]string // dealID -> última etapa confirmada
	pending   map[string]string // dealID -> etapa otimista em voo
}

func NewBoard(deals []entity.Deal) *Board {
	b := &Board{
		confirmed: make(map[string]string, len(deals)),
		pending:   make(map[string]string),
	}
	for _, d := range deals {
		b.confirmed[d.ID] = d.StageID
	}
	return b
}

// StageOf devolve a etapa visível do negócio: a otimista, se houver
// movimentação em voo, senão a confirmada.
func (b *Board) StageOf(dealID string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if stage, ok := b.pending[dealID]; ok {
		return stage, true
	}
	stage, ok := b.confirmed[dealID]
	return stage, ok
}

// Move aplica a movimentação otimista. Soltar o card na coluna em que
// ele já está é no-op: não há nada a enviar ao servidor.
func (b *Board) Move(dealID, stageID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, ok := b.pending[dealID]
	if !ok {
		current, ok = b.confirmed[dealID]
	}
	if !ok || current == stageID {
		return false
	}

	b.pending[dealID] = stageID
	return true
}

// Confirm registra a etapa que o servidor persistiu.
func (b *Board) Confirm(dealID, stageID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.confirmed[dealID] = stageID
	delete(b.pending, dealID)
}

// Reject descarta a movimentação em voo e volta o card para a última
// etapa confirmada.
func (b *Board) Reject(dealID string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.pending, dealID)
	stage, ok := b.confirmed[dealID]
	return stage, ok
}
