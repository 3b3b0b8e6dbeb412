package entity

import "time"

// StockAdjustment registro de auditoría inmutable de una mutación de stock.
// Invariante: StockAfter = StockBefore + ChangeAmount, siempre.
// Un traslado completado produce exactamente dos registros (salida en origen,
// entrada en destino); su reversión produce otros dos.
type StockAdjustment struct {
	ID           string
	TransferID   string // traslado que originó el ajuste
	ItemID       string
	VariationID  string
	LocationID   string
	ChangeAmount int // con signo: negativo salida, positivo entrada
	StockBefore  int
	StockAfter   int
	Reason       string
	CreatedByID  string // quién ejecutó el ajuste
	ApprovedByID string
	Approved     bool
	CreatedAt    time.Time
}

// StockAdjustmentView ajuste con nombres resueltos para listados y reportes.
type StockAdjustmentView struct {
	StockAdjustment
	ItemName      string
	VariationName string
	LocationName  string
}
