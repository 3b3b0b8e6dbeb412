package entity

import "time"

// Location representa una sucursal o tienda donde se almacena inventario.
type Location struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
