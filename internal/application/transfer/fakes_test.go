package transfer_test

import (
	"context"
	"fmt"
	"sync"

	apptransfer "github.com/jhoicas/TallerStock-api/internal/application/transfer"
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
	"github.com/jhoicas/TallerStock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria para los tests del motor: simula la base de datos con
// snapshot/restore para reproducir la semántica transaccional (rollback total
// ante error) y un mutex que serializa las transacciones igual que lo hace el
// SELECT FOR UPDATE sobre la fila del traslado.
// ──────────────────────────────────────────────────────────────────────────────

func stockKey(variationID, locationID string) string {
	return variationID + "|" + locationID
}

type fakeStore struct {
	mu          sync.Mutex
	transfers   map[string]entity.Transfer
	stock       map[string]entity.StockLevel
	adjustments []entity.StockAdjustment
	staff       map[string]entity.StaffUser
	seq         int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		transfers: make(map[string]entity.Transfer),
		stock:     make(map[string]entity.StockLevel),
		staff:     make(map[string]entity.StaffUser),
	}
}

func (s *fakeStore) seedStaff(u entity.StaffUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff[u.ID] = u
}

func (s *fakeStore) seedTransfer(t entity.Transfer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transfers[t.ID] = t
}

func (s *fakeStore) seedStock(variationID, locationID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[stockKey(variationID, locationID)] = entity.StockLevel{
		VariationID: variationID,
		LocationID:  locationID,
		Stock:       qty,
	}
}

func (s *fakeStore) stockAt(variationID, locationID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock[stockKey(variationID, locationID)].Stock
}

func (s *fakeStore) transferStatus(id string) entity.TransferStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transfers[id].Status
}

func (s *fakeStore) allAdjustments() []entity.StockAdjustment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.StockAdjustment, len(s.adjustments))
	copy(out, s.adjustments)
	return out
}

type storeSnapshot struct {
	transfers   map[string]entity.Transfer
	stock       map[string]entity.StockLevel
	adjustments []entity.StockAdjustment
}

func (s *fakeStore) snapshotLocked() storeSnapshot {
	snap := storeSnapshot{
		transfers:   make(map[string]entity.Transfer, len(s.transfers)),
		stock:       make(map[string]entity.StockLevel, len(s.stock)),
		adjustments: make([]entity.StockAdjustment, len(s.adjustments)),
	}
	for k, v := range s.transfers {
		snap.transfers[k] = v
	}
	for k, v := range s.stock {
		snap.stock[k] = v
	}
	copy(snap.adjustments, s.adjustments)
	return snap
}

func (s *fakeStore) restoreLocked(snap storeSnapshot) {
	s.transfers = snap.transfers
	s.stock = snap.stock
	s.adjustments = snap.adjustments
}

// ── operaciones core sin lock (se llaman con el mutex ya tomado, o desde
//    wrappers que lo toman por llamada) ──────────────────────────────────────

func (s *fakeStore) getTransfer(id string) *entity.Transfer {
	t, ok := s.transfers[id]
	if !ok {
		return nil
	}
	cp := t
	return &cp
}

func (s *fakeStore) getStock(variationID, locationID string) *entity.StockLevel {
	l, ok := s.stock[stockKey(variationID, locationID)]
	if !ok {
		// igual que el repo real: fila ausente = nivel en cero
		return &entity.StockLevel{VariationID: variationID, LocationID: locationID}
	}
	cp := l
	return &cp
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios atados a transacción: no toman el mutex porque el runner lo
// sostiene durante todo Run.
// ──────────────────────────────────────────────────────────────────────────────

type txTransferRepo struct{ s *fakeStore }

func (r *txTransferRepo) Create(t *entity.Transfer) error {
	r.s.transfers[t.ID] = *t
	return nil
}

func (r *txTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	return r.s.getTransfer(id), nil
}

func (r *txTransferRepo) GetForUpdate(id string) (*entity.Transfer, error) {
	return r.s.getTransfer(id), nil
}

func (r *txTransferRepo) List(status entity.TransferStatus, limit, offset int) ([]*entity.TransferView, error) {
	var out []*entity.TransferView
	for _, t := range r.s.transfers {
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, &entity.TransferView{Transfer: t})
	}
	return out, nil
}

func (r *txTransferRepo) UpdateStatus(id string, status entity.TransferStatus) error {
	t, ok := r.s.transfers[id]
	if !ok {
		return fmt.Errorf("transfer %s no existe", id)
	}
	t.Status = status
	r.s.transfers[id] = t
	return nil
}

func (r *txTransferRepo) Update(t *entity.Transfer) error {
	r.s.transfers[t.ID] = *t
	return nil
}

func (r *txTransferRepo) Delete(id string) error {
	delete(r.s.transfers, id)
	return nil
}

type txStockRepo struct{ s *fakeStore }

func (r *txStockRepo) Get(variationID, locationID string) (*entity.StockLevel, error) {
	return r.s.getStock(variationID, locationID), nil
}

func (r *txStockRepo) GetForUpdate(variationID, locationID string) (*entity.StockLevel, error) {
	// Igual que el adaptador real: materializa la fila en cero antes de
	// bloquearla, para que siempre exista algo que serialice a los escritores.
	key := stockKey(variationID, locationID)
	if _, ok := r.s.stock[key]; !ok {
		r.s.stock[key] = entity.StockLevel{VariationID: variationID, LocationID: locationID}
	}
	return r.s.getStock(variationID, locationID), nil
}

func (r *txStockRepo) Upsert(level *entity.StockLevel) error {
	r.s.stock[stockKey(level.VariationID, level.LocationID)] = *level
	return nil
}

func (r *txStockRepo) ListByLocation(locationID string, limit, offset int) ([]*entity.StockLevel, error) {
	var out []*entity.StockLevel
	for _, l := range r.s.stock {
		if l.LocationID == locationID {
			cp := l
			out = append(out, &cp)
		}
	}
	return out, nil
}

type txAdjustmentRepo struct{ s *fakeStore }

func (r *txAdjustmentRepo) Create(a *entity.StockAdjustment) error {
	r.s.seq++
	cp := *a
	cp.ID = fmt.Sprintf("adj-%d", r.s.seq)
	r.s.adjustments = append(r.s.adjustments, cp)
	return nil
}

func (r *txAdjustmentRepo) List(locationID, transferID string, limit, offset int) ([]*entity.StockAdjustmentView, error) {
	var out []*entity.StockAdjustmentView
	for _, a := range r.s.adjustments {
		if locationID != "" && a.LocationID != locationID {
			continue
		}
		if transferID != "" && a.TransferID != transferID {
			continue
		}
		out = append(out, &entity.StockAdjustmentView{StockAdjustment: a})
	}
	return out, nil
}

func (r *txAdjustmentRepo) CountByTransfer(transferID string) (int, error) {
	n := 0
	for _, a := range r.s.adjustments {
		if a.TransferID == transferID {
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios "de pool": toman el mutex por llamada. Son los que recibe el
// caso de uso para las lecturas previas a la transacción.
// ──────────────────────────────────────────────────────────────────────────────

type lockedTransferRepo struct{ s *fakeStore }

func (r *lockedTransferRepo) withLock(fn func(tx *txTransferRepo) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(&txTransferRepo{s: r.s})
}

func (r *lockedTransferRepo) Create(t *entity.Transfer) error {
	return r.withLock(func(tx *txTransferRepo) error { return tx.Create(t) })
}

func (r *lockedTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.getTransfer(id), nil
}

func (r *lockedTransferRepo) GetForUpdate(id string) (*entity.Transfer, error) {
	return r.GetByID(id)
}

func (r *lockedTransferRepo) List(status entity.TransferStatus, limit, offset int) ([]*entity.TransferView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&txTransferRepo{s: r.s}).List(status, limit, offset)
}

func (r *lockedTransferRepo) UpdateStatus(id string, status entity.TransferStatus) error {
	return r.withLock(func(tx *txTransferRepo) error { return tx.UpdateStatus(id, status) })
}

func (r *lockedTransferRepo) Update(t *entity.Transfer) error {
	return r.withLock(func(tx *txTransferRepo) error { return tx.Update(t) })
}

func (r *lockedTransferRepo) Delete(id string) error {
	return r.withLock(func(tx *txTransferRepo) error { return tx.Delete(id) })
}

type lockedStaffRepo struct{ s *fakeStore }

func (r *lockedStaffRepo) Create(u *entity.StaffUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.staff[u.ID] = *u
	return nil
}

func (r *lockedStaffRepo) GetByID(id string) (*entity.StaffUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.staff[id]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}

func (r *lockedStaffRepo) FindByEmail(email string) (*entity.StaffUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.staff {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

// fakeTxRunner serializa las transacciones con el mutex del store y restaura el
// snapshot completo ante cualquier error, igual que un ROLLBACK.
type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	transferRepo repository.TransferRepository,
	stockRepo repository.StockLevelRepository,
	adjustmentRepo repository.StockAdjustmentRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap := r.s.snapshotLocked()
	if err := fn(&txTransferRepo{s: r.s}, &txStockRepo{s: r.s}, &txAdjustmentRepo{s: r.s}); err != nil {
		r.s.restoreLocked(snap)
		return err
	}
	return nil
}

var _ apptransfer.TxRunner = (*fakeTxRunner)(nil)
var _ repository.TransferRepository = (*lockedTransferRepo)(nil)
var _ repository.StaffRepository = (*lockedStaffRepo)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de catálogo para el CRUD de traslados.
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct{ items map[string]entity.Item }

func (r *fakeItemRepo) Create(i *entity.Item) error {
	r.items[i.ID] = *i
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := i
	return &cp, nil
}

func (r *fakeItemRepo) Update(i *entity.Item) error {
	r.items[i.ID] = *i
	return nil
}

func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.items {
		cp := i
		out = append(out, &cp)
	}
	return out, nil
}

type fakeVariationRepo struct{ variations map[string]entity.Variation }

func (r *fakeVariationRepo) Create(v *entity.Variation) error {
	r.variations[v.ID] = *v
	return nil
}

func (r *fakeVariationRepo) GetByID(id string) (*entity.Variation, error) {
	v, ok := r.variations[id]
	if !ok {
		return nil, nil
	}
	cp := v
	return &cp, nil
}

func (r *fakeVariationRepo) ListByItem(itemID string) ([]*entity.Variation, error) {
	var out []*entity.Variation
	for _, v := range r.variations {
		if v.ItemID == itemID {
			cp := v
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeLocationRepo struct{ locations map[string]entity.Location }

func (r *fakeLocationRepo) Create(l *entity.Location) error {
	r.locations[l.ID] = *l
	return nil
}

func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, nil
	}
	cp := l
	return &cp, nil
}

func (r *fakeLocationRepo) Update(l *entity.Location) error {
	r.locations[l.ID] = *l
	return nil
}

func (r *fakeLocationRepo) List(limit, offset int) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.locations {
		cp := l
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeLocationRepo) Delete(id string) error {
	delete(r.locations, id)
	return nil
}
