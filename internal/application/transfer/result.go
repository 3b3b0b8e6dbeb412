package transfer

import "github.com/jhoicas/TallerStock-api/internal/domain/entity"

// Outcome identifica qué rama de la transición se ejecutó.
type Outcome string

const (
	OutcomeNoChange   Outcome = "no_change"   // estado solicitado == actual; no se tocó nada
	OutcomeActivated  Outcome = "activated"   // traslado completado: stock movido origen -> destino
	OutcomeReversed   Outcome = "reversed"    // traslado revertido: stock devuelto destino -> origen
	OutcomeStatusOnly Outcome = "status_only" // solo cambió el campo estado
)

// TransitionResult resultado estructurado de una transición de estado.
// Los deltas son cero salvo en activación/reversión.
type TransitionResult struct {
	TransferID       string
	Outcome          Outcome
	PreviousStatus   entity.TransferStatus
	NewStatus        entity.TransferStatus
	SourceDelta      int // cambio aplicado al stock de la sucursal origen
	DestinationDelta int // cambio aplicado al stock de la sucursal destino
}
