package repository

import "github.com/jhoicas/TallerStock-api/internal/domain/entity"

// StockLevelRepository define el puerto para consultar/actualizar existencias
// por variación+sucursal. Sus primitivas de escritura solo se entregan atadas
// a una transacción (vía TxRunner), de modo que únicamente el motor de ajustes
// puede mutar stock; no existe un "set stock" directo.
type StockLevelRepository interface {
	// Get devuelve el nivel actual; si no existe fila devuelve un nivel en cero.
	Get(variationID, locationID string) (*entity.StockLevel, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	// Si la fila no existe la crea en cero antes de bloquearla: sobre una fila
	// inexistente FOR UPDATE no serializa nada y dos escritores concurrentes
	// podrían pisarse la primera entrada.
	GetForUpdate(variationID, locationID string) (*entity.StockLevel, error)
	// Upsert inserta o actualiza la cantidad (crea la fila en la primera entrada).
	Upsert(level *entity.StockLevel) error
	ListByLocation(locationID string, limit, offset int) ([]*entity.StockLevel, error)
}
