package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

type DealRepository struct {
	DB *sql.DB
}

func NewDealRepository(db *sql.DB) *DealRepository {
	return &DealRepository{DB: db}
}

const dealColumns = `id, title, lead_id, customer_id, value, stage_id, probability, expected_close_date, notes, created_at, updated_at`

func scanDeal(row interface{ Scan(...any) error }) (*entity.Deal, error) {
	var d entity.Deal
	var leadID, customerID, notes sql.NullString
	var closeDate sql.NullTime
	err := row.Scan(&d.ID, &d.Title, &leadID, &customerID, &d.Value, &d.StageID, &d.Probability, &closeDate, &notes, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.LeadID = fromNull(leadID)
	d.CustomerID = fromNull(customerID)
	d.Notes = fromNull(notes)
	if closeDate.Valid {
		t := closeDate.Time
		d.ExpectedCloseDate = &t
	}
	return &d, nil
}

func (r *DealRepository) Create(ctx context.Context, d *entity.Deal) error {
	query := `
		INSERT INTO deals (id, title, lead_id, customer_id, value, stage_id, probability, expected_close_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.ExecContext(ctx, query,
		d.ID, d.Title, nullString(d.LeadID), nullString(d.CustomerID), d.Value,
		d.StageID, d.Probability, d.ExpectedCloseDate, nullString(d.Notes), d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("criar negócio: %w", err)
	}
	return nil
}

func (r *DealRepository) FindByID(ctx context.Context, id string) (*entity.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`
	d, err := scanDeal(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrDealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("buscar negócio: %w", err)
	}
	return d, nil
}

// List ordena por created_at ascendente para um quadro determinístico.
func (r *DealRepository) List(ctx context.Context) ([]entity.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar negócios: %w", err)
	}
	defer rows.Close()

	deals := []entity.Deal{}
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		deals = append(deals, *d)
	}
	return deals, rows.Err()
}

func (r *DealRepository) Update(ctx context.Context, d *entity.Deal) error {
	query := `
		UPDATE deals
		SET title = $1, lead_id = $2, customer_id = $3, value = $4, stage_id = $5,
		    probability = $6, expected_close_date = $7, notes = $8, updated_at = $9
		WHERE id = $10
	`
	res, err := r.DB.ExecContext(ctx, query,
		d.Title, nullString(d.LeadID), nullString(d.CustomerID), d.Value, d.StageID,
		d.Probability, d.ExpectedCloseDate, nullString(d.Notes), d.UpdatedAt, d.ID,
	)
	if err != nil {
		return fmt.Errorf("atualizar negócio: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrDealNotFound
	}
	return nil
}

// UpdateStage persiste só a transição de etapa. Last-write-wins:
// não há verificação de versão entre sessões concorrentes.
func (r *DealRepository) UpdateStage(ctx context.Context, id, stageID string, updatedAt time.Time) error {
	query := `UPDATE deals SET stage_id = $1, updated_at = $2 WHERE id = $3`
	res, err := r.DB.ExecContext(ctx, query, stageID, updatedAt, id)
	if err != nil {
		return fmt.Errorf("mover negócio: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrDealNotFound
	}
	return nil
}

func (r *DealRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deletar negócio: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrDealNotFound
	}
	return nil
}
