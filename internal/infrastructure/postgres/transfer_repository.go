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

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

const transferColumns = `id, item_id, variation_id, quantity, from_location_id, to_location_id, status, created_at, updated_at`

// Create persiste un traslado nuevo. Las FKs hacia items, variations y
// locations respaldan la validación de referencias del caso de uso: si alguna
// desapareció entre la validación y el insert, se reporta como no encontrada.
func (r *TransferRepo) Create(t *entity.Transfer) error {
	query := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.ItemID, t.VariationID, t.Quantity,
		t.FromLocationID, t.ToLocationID, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert transfer: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByID obtiene un traslado por ID.
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene un traslado bloqueando la fila (SELECT FOR UPDATE).
// Serializa transiciones concurrentes sobre el mismo traslado.
func (r *TransferRepo) GetForUpdate(id string) (*entity.Transfer, error) {
	return r.get(id, true)
}

func (r *TransferRepo) get(id string, forUpdate bool) (*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var t entity.Transfer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ItemID, &t.VariationID, &t.Quantity,
		&t.FromLocationID, &t.ToLocationID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return &t, nil
}

// List lista traslados con los nombres de item, variación y sucursales resueltos,
// opcionalmente filtrados por estado (cadena vacía = todos).
func (r *TransferRepo) List(status entity.TransferStatus, limit, offset int) ([]*entity.TransferView, error) {
	query := `
		SELECT t.id, t.item_id, t.variation_id, t.quantity, t.from_location_id, t.to_location_id,
			t.status, t.created_at, t.updated_at,
			i.name, v.name, lf.name, lt.name
		FROM transfers t
		JOIN items i ON i.id = t.item_id
		JOIN variations v ON v.id = t.variation_id
		JOIN locations lf ON lf.id = t.from_location_id
		JOIN locations lt ON lt.id = t.to_location_id`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE t.status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransferView
	for rows.Next() {
		var tv entity.TransferView
		if err := rows.Scan(
			&tv.ID, &tv.ItemID, &tv.VariationID, &tv.Quantity, &tv.FromLocationID, &tv.ToLocationID,
			&tv.Status, &tv.CreatedAt, &tv.UpdatedAt,
			&tv.ItemName, &tv.VariationName, &tv.FromLocationName, &tv.ToLocationName,
		); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &tv)
	}
	return list, rows.Err()
}

// UpdateStatus actualiza solo el campo estado.
func (r *TransferRepo) UpdateStatus(id string, status entity.TransferStatus) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE transfers SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update transfer status: %w", err)
	}
	return nil
}

// Update actualiza los campos de ruteo de un traslado. La cantidad y el estado
// quedan fuera a propósito.
func (r *TransferRepo) Update(t *entity.Transfer) error {
	query := `
		UPDATE transfers
		SET variation_id = $2, from_location_id = $3, to_location_id = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.VariationID, t.FromLocationID, t.ToLocationID, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	return nil
}

// Delete elimina un traslado por ID.
func (r *TransferRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transfers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	return nil
}
