package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
	"github.com/jhoicas/TallerStock-api/internal/domain/repository"
)

var _ repository.StockAdjustmentRepository = (*StockAdjustmentRepo)(nil)

// StockAdjustmentRepo implementación de la bitácora de ajustes sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: la tabla no admite UPDATE ni DELETE.
type StockAdjustmentRepo struct {
	q Querier
}

// NewStockAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockAdjustmentRepository(q Querier) *StockAdjustmentRepo {
	return &StockAdjustmentRepo{q: q}
}

// Create persiste un ajuste de stock.
func (r *StockAdjustmentRepo) Create(adjustment *entity.StockAdjustment) error {
	if adjustment.ID == "" {
		adjustment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_adjustments (id, transfer_id, item_id, variation_id, location_id,
			change_amount, stock_before, stock_after, reason, created_by, approved_by, approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		adjustment.ID, adjustment.TransferID, adjustment.ItemID, adjustment.VariationID,
		adjustment.LocationID, adjustment.ChangeAmount, adjustment.StockBefore, adjustment.StockAfter,
		adjustment.Reason, adjustment.CreatedByID, adjustment.ApprovedByID, adjustment.Approved,
		adjustment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock adjustment: %w", err)
	}
	return nil
}

// List lista ajustes con nombres resueltos, filtrados por sucursal y/o traslado
// (cadena vacía = sin filtro), del más reciente al más antiguo.
func (r *StockAdjustmentRepo) List(locationID, transferID string, limit, offset int) ([]*entity.StockAdjustmentView, error) {
	query := `
		SELECT a.id, a.transfer_id, a.item_id, a.variation_id, a.location_id,
			a.change_amount, a.stock_before, a.stock_after, a.reason,
			a.created_by, a.approved_by, a.approved, a.created_at,
			i.name, v.name, l.name
		FROM stock_adjustments a
		JOIN items i ON i.id = a.item_id
		JOIN variations v ON v.id = a.variation_id
		JOIN locations l ON l.id = a.location_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if locationID != "" {
		query += fmt.Sprintf(" AND a.location_id = $%d", pos)
		args = append(args, locationID)
		pos++
	}
	if transferID != "" {
		query += fmt.Sprintf(" AND a.transfer_id = $%d", pos)
		args = append(args, transferID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAdjustmentView
	for rows.Next() {
		var a entity.StockAdjustmentView
		if err := rows.Scan(
			&a.ID, &a.TransferID, &a.ItemID, &a.VariationID, &a.LocationID,
			&a.ChangeAmount, &a.StockBefore, &a.StockAfter, &a.Reason,
			&a.CreatedByID, &a.ApprovedByID, &a.Approved, &a.CreatedAt,
			&a.ItemName, &a.VariationName, &a.LocationName,
		); err != nil {
			return nil, fmt.Errorf("scan stock adjustment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CountByTransfer cuenta los ajustes que referencian a un traslado.
func (r *StockAdjustmentRepo) CountByTransfer(transferID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_adjustments WHERE transfer_id = $1`, transferID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count adjustments by transfer: %w", err)
	}
	return count, nil
}
