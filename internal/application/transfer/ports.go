package transfer

import (
	"context"

	"github.com/jhoicas/TallerStock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Es la única vía por la que el motor obtiene primitivas de
// escritura de stock, lo que garantiza que toda mutación pasa por el motor y
// queda auditada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		transferRepo repository.TransferRepository,
		stockRepo repository.StockLevelRepository,
		adjustmentRepo repository.StockAdjustmentRepository,
	) error) error
}
