package repository

import (
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
)

// TransferRepository define el puerto de persistencia para Transfer.
// GetForUpdate se usa dentro de transacciones para serializar transiciones
// concurrentes sobre el mismo traslado.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	// GetForUpdate bloquea la fila del traslado (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Transfer, error)
	// List devuelve traslados con nombres de item/variación/sucursales resueltos.
	List(status entity.TransferStatus, limit, offset int) ([]*entity.TransferView, error)
	// UpdateStatus actualiza solo el campo estado.
	UpdateStatus(id string, status entity.TransferStatus) error
	// Update actualiza campos de ruteo (variación, origen, destino). Nunca cantidad ni estado.
	Update(transfer *entity.Transfer) error
	Delete(id string) error
}
