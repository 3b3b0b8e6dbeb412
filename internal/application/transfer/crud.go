package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/TallerStock-api/internal/domain"
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
	"github.com/jhoicas/TallerStock-api/internal/domain/repository"
)

// TransferUseCase cubre el CRUD de traslados. Las transiciones de estado NO
// pasan por aquí: son responsabilidad exclusiva de TransitionStatusUseCase.
type TransferUseCase struct {
	txRunner      TxRunner
	transferRepo  repository.TransferRepository
	itemRepo      repository.ItemRepository
	variationRepo repository.VariationRepository
	locationRepo  repository.LocationRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	transferRepo repository.TransferRepository,
	itemRepo repository.ItemRepository,
	variationRepo repository.VariationRepository,
	locationRepo repository.LocationRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:      txRunner,
		transferRepo:  transferRepo,
		itemRepo:      itemRepo,
		variationRepo: variationRepo,
		locationRepo:  locationRepo,
	}
}

// CreateTransferInput entrada para crear un traslado. El estado inicial es
// siempre pending; no se acepta del exterior.
type CreateTransferInput struct {
	ItemID         string
	VariationID    string
	Quantity       int
	FromLocationID string
	ToLocationID   string
}

// Create valida referencias y persiste el traslado en estado pending.
func (uc *TransferUseCase) Create(in CreateTransferInput) (*entity.Transfer, error) {
	if in.Quantity <= 0 || in.FromLocationID == in.ToLocationID {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil || item == nil {
		return nil, domain.ErrNotFound
	}
	variation, err := uc.variationRepo.GetByID(in.VariationID)
	if err != nil || variation == nil {
		return nil, domain.ErrNotFound
	}
	if variation.ItemID != item.ID {
		return nil, domain.ErrInvalidInput
	}
	from, _ := uc.locationRepo.GetByID(in.FromLocationID)
	to, _ := uc.locationRepo.GetByID(in.ToLocationID)
	if from == nil || to == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	t := &entity.Transfer{
		ID:             uuid.New().String(),
		ItemID:         in.ItemID,
		VariationID:    in.VariationID,
		Quantity:       in.Quantity,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Status:         entity.TransferStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.transferRepo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetByID obtiene un traslado.
func (uc *TransferUseCase) GetByID(id string) (*entity.Transfer, error) {
	t, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

// List lista traslados con nombres resueltos, opcionalmente filtrados por estado.
func (uc *TransferUseCase) List(status string, limit, offset int) ([]*entity.TransferView, error) {
	var st entity.TransferStatus
	if status != "" {
		parsed, ok := entity.ParseTransferStatus(status)
		if !ok {
			return nil, domain.ErrInvalidStatus
		}
		st = parsed
	}
	return uc.transferRepo.List(st, limit, offset)
}

// UpdateTransferInput campos de ruteo editables de un traslado pendiente.
// La cantidad es inmutable y el estado solo cambia vía TransitionStatus.
type UpdateTransferInput struct {
	VariationID    string
	FromLocationID string
	ToLocationID   string
}

// Update permite re-rutear un traslado mientras sigue en pending.
func (uc *TransferUseCase) Update(id string, in UpdateTransferInput) (*entity.Transfer, error) {
	t, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if t.Status != entity.TransferStatusPending {
		return nil, domain.ErrInvalidInput
	}
	if in.VariationID != "" {
		variation, err := uc.variationRepo.GetByID(in.VariationID)
		if err != nil || variation == nil {
			return nil, domain.ErrNotFound
		}
		if variation.ItemID != t.ItemID {
			return nil, domain.ErrInvalidInput
		}
		t.VariationID = in.VariationID
	}
	if in.FromLocationID != "" {
		if loc, _ := uc.locationRepo.GetByID(in.FromLocationID); loc == nil {
			return nil, domain.ErrNotFound
		}
		t.FromLocationID = in.FromLocationID
	}
	if in.ToLocationID != "" {
		if loc, _ := uc.locationRepo.GetByID(in.ToLocationID); loc == nil {
			return nil, domain.ErrNotFound
		}
		t.ToLocationID = in.ToLocationID
	}
	if t.FromLocationID == t.ToLocationID {
		return nil, domain.ErrInvalidInput
	}
	t.UpdatedAt = time.Now()
	if err := uc.transferRepo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete elimina un traslado solo si ningún ajuste lo referencia; el chequeo y
// el borrado ocurren en la misma transacción para que un Complete concurrente
// no deje la bitácora apuntando a un traslado inexistente.
func (uc *TransferUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		transferRepo repository.TransferRepository,
		_ repository.StockLevelRepository,
		adjustmentRepo repository.StockAdjustmentRepository,
	) error {
		t, err := transferRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		count, err := adjustmentRepo.CountByTransfer(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrHasAdjustments
		}
		return transferRepo.Delete(id)
	})
}
