package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
	"github.com/jhoicas/TallerStock-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación de StockLevelRepository sobre PostgreSQL (usable con pool o tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// Get obtiene la existencia actual de una variación en una sucursal.
// Si no hay fila devuelve un nivel en cero (la fila se crea recién con la primera entrada).
func (r *StockLevelRepo) Get(variationID, locationID string) (*entity.StockLevel, error) {
	query := `
		SELECT variation_id, location_id, stock, updated_at
		FROM stock_levels WHERE variation_id = $1 AND location_id = $2`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, variationID, locationID).Scan(
		&s.VariationID, &s.LocationID, &s.Stock, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{VariationID: variationID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene la existencia y bloquea la fila para update (SELECT FOR UPDATE).
// Si la fila no existe la materializa primero en cero: FOR UPDATE sobre una fila
// inexistente no bloquea nada, y dos transacciones concurrentes entrando al mismo
// destino vacío leerían ambas un fantasma en cero y la segunda pisaría el crédito
// de la primera. El INSERT ... DO NOTHING hace que la segunda transacción espere
// en el índice único y luego bloquee la fila ya confirmada.
func (r *StockLevelRepo) GetForUpdate(variationID, locationID string) (*entity.StockLevel, error) {
	ensure := `
		INSERT INTO stock_levels (variation_id, location_id, stock, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (variation_id, location_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), ensure, variationID, locationID); err != nil {
		return nil, fmt.Errorf("ensure stock level row: %w", err)
	}
	query := `
		SELECT variation_id, location_id, stock, updated_at
		FROM stock_levels WHERE variation_id = $1 AND location_id = $2
		FOR UPDATE`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, variationID, locationID).Scan(
		&s.VariationID, &s.LocationID, &s.Stock, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock level for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en existencia (por variación y sucursal).
// El valor es absoluto: solo debe llamarse con la fila ya bloqueada vía
// GetForUpdate dentro de la misma transacción.
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (variation_id, location_id, stock, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (variation_id, location_id)
		DO UPDATE SET stock = EXCLUDED.stock, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, level.VariationID, level.LocationID, level.Stock)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

// ListByLocation lista existencias de una sucursal con paginación.
func (r *StockLevelRepo) ListByLocation(locationID string, limit, offset int) ([]*entity.StockLevel, error) {
	query := `
		SELECT variation_id, location_id, stock, updated_at
		FROM stock_levels WHERE location_id = $1
		ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLevel
	for rows.Next() {
		var s entity.StockLevel
		if err := rows.Scan(&s.VariationID, &s.LocationID, &s.Stock, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
