package stock

import (
	"context"

	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
)

// ReportGenerator genera la representación PDF del historial de ajustes de una
// sucursal. Lo implementa infrastructure/pdf (Maroto).
type ReportGenerator interface {
	GenerateAdjustmentReport(ctx context.Context, location *entity.Location, adjustments []*entity.StockAdjustmentView) ([]byte, error)
}
