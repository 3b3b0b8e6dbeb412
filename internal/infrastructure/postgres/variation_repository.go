package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/TallerStock-api/internal/domain"
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
	"github.com/jhoicas/TallerStock-api/internal/domain/repository"
)

var _ repository.VariationRepository = (*VariationRepo)(nil)

// VariationRepo implementación del puerto VariationRepository sobre PostgreSQL.
type VariationRepo struct {
	q Querier
}

// NewVariationRepository construye el adaptador de persistencia para variaciones.
func NewVariationRepository(q Querier) *VariationRepo {
	return &VariationRepo{q: q}
}

// Create persiste una nueva variación. El SKU es único.
func (r *VariationRepo) Create(variation *entity.Variation) error {
	query := `
		INSERT INTO variations (id, item_id, name, sku, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		variation.ID, variation.ItemID, variation.Name, variation.SKU,
		variation.CreatedAt, variation.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert variation: %w", err)
	}
	return nil
}

// GetByID obtiene una variación por ID.
func (r *VariationRepo) GetByID(id string) (*entity.Variation, error) {
	query := `
		SELECT id, item_id, name, sku, created_at, updated_at
		FROM variations WHERE id = $1`
	var v entity.Variation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ItemID, &v.Name, &v.SKU, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variation: %w", err)
	}
	return &v, nil
}

// ListByItem lista las variaciones de un item.
func (r *VariationRepo) ListByItem(itemID string) ([]*entity.Variation, error) {
	query := `
		SELECT id, item_id, name, sku, created_at, updated_at
		FROM variations WHERE item_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list variations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Variation
	for rows.Next() {
		var v entity.Variation
		if err := rows.Scan(&v.ID, &v.ItemID, &v.Name, &v.SKU, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan variation: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
