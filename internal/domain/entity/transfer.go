package entity

import "time"

// TransferStatus estado de un traslado (conjunto cerrado).
type TransferStatus string

// Estados válidos de un traslado.
const (
	TransferStatusPending    TransferStatus = "pending"     // creado, aún sin preparar
	TransferStatusInProgress TransferStatus = "in_progress" // mercancía en preparación/camino
	TransferStatusCompleted  TransferStatus = "completed"   // stock ya movido entre sucursales
	TransferStatusCancelled  TransferStatus = "cancelled"   // descartado
)

// ParseTransferStatus valida un estado recibido del exterior contra el conjunto cerrado.
func ParseTransferStatus(s string) (TransferStatus, bool) {
	switch TransferStatus(s) {
	case TransferStatusPending, TransferStatusInProgress, TransferStatusCompleted, TransferStatusCancelled:
		return TransferStatus(s), true
	}
	return "", false
}

// TransitionKind clasifica una transición de estado según si cruza la frontera de "completed".
type TransitionKind int

const (
	TransitionNoChange   TransitionKind = iota // estado solicitado == estado actual
	TransitionActivation                       // entra a completed: mueve stock origen -> destino
	TransitionReversal                         // sale de completed: devuelve stock destino -> origen
	TransitionStatusOnly                       // cualquier otra: solo cambia el campo estado
)

// ClassifyTransition determina el tipo de transición entre dos estados.
// Solo las transiciones que cruzan la frontera de completed tienen efectos sobre el stock.
func ClassifyTransition(previous, next TransferStatus) TransitionKind {
	switch {
	case previous == next:
		return TransitionNoChange
	case next == TransferStatusCompleted:
		return TransitionActivation
	case previous == TransferStatusCompleted:
		return TransitionReversal
	default:
		return TransitionStatusOnly
	}
}

// Transfer representa una solicitud de traslado de una cantidad fija de una
// variación entre dos sucursales. La cantidad es inmutable después de la creación;
// solo el estado cambia durante el ciclo de vida.
type Transfer struct {
	ID             string
	ItemID         string
	VariationID    string
	Quantity       int // siempre > 0, fijo desde la creación
	FromLocationID string
	ToLocationID   string
	Status         TransferStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TransferView traslado con nombres resueltos para listados del dashboard.
type TransferView struct {
	Transfer
	ItemName         string
	VariationName    string
	FromLocationName string
	ToLocationName   string
}
