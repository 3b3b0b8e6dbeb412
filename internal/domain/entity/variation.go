package entity

import "time"

// Variation representa una variante concreta de un Item (color, capacidad, etc.).
// Los traslados y el stock siempre se refieren a una variación, nunca al item directo.
type Variation struct {
	ID        string
	ItemID    string
	Name      string
	SKU       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
