package stock

import (
	"context"

	"github.com/jhoicas/TallerStock-api/internal/domain"
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
	"github.com/jhoicas/TallerStock-api/internal/domain/repository"
)

// QueryUseCase lado de lectura del libro de stock: niveles por sucursal,
// historial de ajustes y exportación del historial a PDF. Nunca escribe.
type QueryUseCase struct {
	stockRepo      repository.StockLevelRepository
	adjustmentRepo repository.StockAdjustmentRepository
	locationRepo   repository.LocationRepository
	reports        ReportGenerator
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(
	stockRepo repository.StockLevelRepository,
	adjustmentRepo repository.StockAdjustmentRepository,
	locationRepo repository.LocationRepository,
	reports ReportGenerator,
) *QueryUseCase {
	return &QueryUseCase{
		stockRepo:      stockRepo,
		adjustmentRepo: adjustmentRepo,
		locationRepo:   locationRepo,
		reports:        reports,
	}
}

// GetLevel devuelve el nivel actual de una variación en una sucursal (cero si no hay fila).
func (uc *QueryUseCase) GetLevel(variationID, locationID string) (*entity.StockLevel, error) {
	if variationID == "" || locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.stockRepo.Get(variationID, locationID)
}

// ListByLocation lista las existencias de una sucursal.
func (uc *QueryUseCase) ListByLocation(locationID string, limit, offset int) ([]*entity.StockLevel, error) {
	if locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.stockRepo.ListByLocation(locationID, limit, offset)
}

// ListAdjustments lista la bitácora filtrada por sucursal y/o traslado.
func (uc *QueryUseCase) ListAdjustments(locationID, transferID string, limit, offset int) ([]*entity.StockAdjustmentView, error) {
	return uc.adjustmentRepo.List(locationID, transferID, limit, offset)
}

// maxReportRows tope de filas del reporte PDF para mantener el documento manejable.
const maxReportRows = 500

// AdjustmentReportPDF genera el PDF del historial de ajustes de una sucursal.
func (uc *QueryUseCase) AdjustmentReportPDF(ctx context.Context, locationID string) ([]byte, error) {
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	adjustments, err := uc.adjustmentRepo.List(locationID, "", maxReportRows, 0)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateAdjustmentReport(ctx, location, adjustments)
}
