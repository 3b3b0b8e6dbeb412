package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/TallerStock-api/internal/domain"
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
	"github.com/jhoicas/TallerStock-api/internal/domain/repository"
)

// defaultTxTimeout presupuesto para la unidad de trabajo completa: bloqueo del
// traslado, dos lecturas y dos escrituras de stock, dos inserts de auditoría y
// la actualización de estado pueden exceder timeouts por defecto bajo carga.
const defaultTxTimeout = 10 * time.Second

// TransitionStatusUseCase es el motor de ajustes: transiciona el estado de un
// traslado y, solo cuando la transición cruza la frontera de "completed" en
// cualquier dirección, aplica los movimientos de stock compensatorios y deja
// rastro de auditoría, todo dentro de una única transacción.
type TransitionStatusUseCase struct {
	txRunner     TxRunner
	transferRepo repository.TransferRepository
	staffRepo    repository.StaffRepository
	txTimeout    time.Duration
}

// NewTransitionStatusUseCase construye el motor.
func NewTransitionStatusUseCase(
	txRunner TxRunner,
	transferRepo repository.TransferRepository,
	staffRepo repository.StaffRepository,
) *TransitionStatusUseCase {
	return &TransitionStatusUseCase{
		txRunner:     txRunner,
		transferRepo: transferRepo,
		staffRepo:    staffRepo,
		txTimeout:    defaultTxTimeout,
	}
}

// TransitionStatus valida actor y estado, clasifica la transición y la ejecuta.
// Garantías: ningún lector observa el estado del traslado cambiado sin los
// movimientos de stock correspondientes (ni al revés); cualquier fallo deja el
// traslado, las existencias y la bitácora exactamente como estaban.
func (uc *TransitionStatusUseCase) TransitionStatus(ctx context.Context, transferID, newStatus, actorID string) (*TransitionResult, error) {
	// Validación pura, antes de cualquier mutación.
	status, ok := entity.ParseTransferStatus(newStatus)
	if !ok {
		return nil, domain.ErrInvalidStatus
	}
	staff, err := uc.staffRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if staff == nil || staff.Status != entity.StaffStatusActive {
		return nil, domain.ErrUnauthorized
	}
	t, err := uc.transferRepo.GetByID(transferID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	res := &TransitionResult{
		TransferID:     transferID,
		PreviousStatus: t.Status,
		NewStatus:      status,
	}
	// Repetir la misma transición siempre es seguro: no abre transacción.
	if t.Status == status {
		res.Outcome = OutcomeNoChange
		return res, nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.txTimeout)
	defer cancel()

	err = uc.txRunner.Run(ctx, func(
		transferRepo repository.TransferRepository,
		stockRepo repository.StockLevelRepository,
		adjustmentRepo repository.StockAdjustmentRepository,
	) error {
		// Bloquea la fila del traslado para serializar transiciones concurrentes
		// sobre el mismo ID y reclasificar contra el estado ya bloqueado.
		locked, err := transferRepo.GetForUpdate(transferID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		res.PreviousStatus = locked.Status

		kind := entity.ClassifyTransition(locked.Status, status)
		if kind == entity.TransitionNoChange {
			// Otra petición ganó la carrera y ya aplicó esta transición.
			res.Outcome = OutcomeNoChange
			return nil
		}
		if err := transferRepo.UpdateStatus(transferID, status); err != nil {
			return err
		}
		switch kind {
		case entity.TransitionActivation:
			return uc.applyActivation(locked, staff.ID, stockRepo, adjustmentRepo, res)
		case entity.TransitionReversal:
			return uc.applyReversal(locked, staff.ID, stockRepo, adjustmentRepo, res)
		default:
			res.Outcome = OutcomeStatusOnly
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// applyActivation mueve el stock origen -> destino: resta en origen (falla con
// ErrInsufficientStock si no alcanza), suma en destino (creando la fila si es
// la primera entrada) y registra los dos ajustes.
func (uc *TransitionStatusUseCase) applyActivation(
	t *entity.Transfer,
	actorID string,
	stockRepo repository.StockLevelRepository,
	adjustmentRepo repository.StockAdjustmentRepository,
	res *TransitionResult,
) error {
	source, dest, err := lockStockPair(stockRepo, t.VariationID, t.FromLocationID, t.ToLocationID)
	if err != nil {
		return err
	}
	if source.Stock < t.Quantity {
		return domain.ErrInsufficientStock
	}
	now := time.Now()

	// Salida en origen
	sourceBefore := source.Stock
	source.Stock -= t.Quantity
	source.UpdatedAt = now
	if err := stockRepo.Upsert(source); err != nil {
		return err
	}
	out := newAdjustment(t, t.FromLocationID, -t.Quantity, sourceBefore,
		fmt.Sprintf("salida por traslado %s hacia sucursal %s", t.ID, t.ToLocationID), actorID, now)
	if err := adjustmentRepo.Create(out); err != nil {
		return err
	}

	// Entrada en destino (StockBefore es 0 cuando la fila se crea aquí)
	destBefore := dest.Stock
	dest.Stock += t.Quantity
	dest.UpdatedAt = now
	if err := stockRepo.Upsert(dest); err != nil {
		return err
	}
	in := newAdjustment(t, t.ToLocationID, t.Quantity, destBefore,
		fmt.Sprintf("entrada por traslado %s desde sucursal %s", t.ID, t.FromLocationID), actorID, now)
	if err := adjustmentRepo.Create(in); err != nil {
		return err
	}

	res.Outcome = OutcomeActivated
	res.SourceDelta = -t.Quantity
	res.DestinationDelta = t.Quantity
	return nil
}

// applyReversal devuelve el stock destino -> origen. El destino puede haber
// consumido parte del stock después de completarse el traslado; en ese caso
// falla con ErrInsufficientStockForReversal y no se retiene ninguna mutación.
func (uc *TransitionStatusUseCase) applyReversal(
	t *entity.Transfer,
	actorID string,
	stockRepo repository.StockLevelRepository,
	adjustmentRepo repository.StockAdjustmentRepository,
	res *TransitionResult,
) error {
	source, dest, err := lockStockPair(stockRepo, t.VariationID, t.FromLocationID, t.ToLocationID)
	if err != nil {
		return err
	}
	if dest.Stock < t.Quantity {
		return domain.ErrInsufficientStockForReversal
	}
	now := time.Now()

	// Devolución al origen
	sourceBefore := source.Stock
	source.Stock += t.Quantity
	source.UpdatedAt = now
	if err := stockRepo.Upsert(source); err != nil {
		return err
	}
	back := newAdjustment(t, t.FromLocationID, t.Quantity, sourceBefore,
		fmt.Sprintf("reversión de traslado %s: devolución a origen", t.ID), actorID, now)
	if err := adjustmentRepo.Create(back); err != nil {
		return err
	}

	// Retiro en destino
	destBefore := dest.Stock
	dest.Stock -= t.Quantity
	dest.UpdatedAt = now
	if err := stockRepo.Upsert(dest); err != nil {
		return err
	}
	taken := newAdjustment(t, t.ToLocationID, -t.Quantity, destBefore,
		fmt.Sprintf("reversión de traslado %s: retiro en destino", t.ID), actorID, now)
	if err := adjustmentRepo.Create(taken); err != nil {
		return err
	}

	res.Outcome = OutcomeReversed
	res.SourceDelta = t.Quantity
	res.DestinationDelta = -t.Quantity
	return nil
}

// lockStockPair bloquea las dos filas de stock siempre en orden ascendente de
// sucursal, sin importar la dirección del traslado. Dos traslados moviendo
// stock en sentidos opuestos entre las mismas sucursales no pueden abrazarse.
func lockStockPair(
	stockRepo repository.StockLevelRepository,
	variationID, fromLocationID, toLocationID string,
) (source, dest *entity.StockLevel, err error) {
	first, second := fromLocationID, toLocationID
	if second < first {
		first, second = second, first
	}
	a, err := stockRepo.GetForUpdate(variationID, first)
	if err != nil {
		return nil, nil, err
	}
	b, err := stockRepo.GetForUpdate(variationID, second)
	if err != nil {
		return nil, nil, err
	}
	if first == fromLocationID {
		return a, b, nil
	}
	return b, a, nil
}

// newAdjustment arma un registro de auditoría coherente (StockAfter = StockBefore + cambio).
func newAdjustment(t *entity.Transfer, locationID string, change, before int, reason, actorID string, now time.Time) *entity.StockAdjustment {
	return &entity.StockAdjustment{
		TransferID:   t.ID,
		ItemID:       t.ItemID,
		VariationID:  t.VariationID,
		LocationID:   locationID,
		ChangeAmount: change,
		StockBefore:  before,
		StockAfter:   before + change,
		Reason:       reason,
		CreatedByID:  actorID,
		ApprovedByID: actorID,
		Approved:     true,
		CreatedAt:    now,
	}
}
