package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un producto del catálogo (equipo, repuesto o accesorio).
// El stock no vive aquí: se lleva por variación y sucursal en StockLevel.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
