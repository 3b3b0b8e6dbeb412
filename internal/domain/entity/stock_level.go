package entity

import "time"

// StockLevel representa la existencia actual de una variación en una sucursal
// (clave única variación+sucursal). Se crea de forma diferida con la primera
// entrada de stock y solo se muta a través del motor de ajustes.
type StockLevel struct {
	VariationID string
	LocationID  string
	Stock       int
	UpdatedAt   time.Time
}
