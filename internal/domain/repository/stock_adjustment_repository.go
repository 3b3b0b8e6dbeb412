package repository

import "github.com/jhoicas/TallerStock-api/internal/domain/entity"

// StockAdjustmentRepository define el puerto de la bitácora de ajustes.
// Solo inserta y lee: los registros nunca se actualizan ni se borran.
type StockAdjustmentRepository interface {
	Create(adjustment *entity.StockAdjustment) error
	// List filtra por sucursal y/o traslado (cadena vacía = sin filtro).
	List(locationID, transferID string, limit, offset int) ([]*entity.StockAdjustmentView, error)
	// CountByTransfer cuenta los ajustes que referencian a un traslado
	// (protege el borrado de traslados ya auditados).
	CountByTransfer(transferID string) (int, error)
}
