package entity

import "time"

// Roles válidos para StaffUser.
const (
	RoleAdmin    = "admin"
	RoleTecnico  = "tecnico"
	RoleVendedor = "vendedor"
)

// Estados de cuenta de staff.
const (
	StaffStatusActive    = "active"
	StaffStatusInactive  = "inactive"
	StaffStatusSuspended = "suspended"
)

// StaffUser representa un miembro del personal del taller/tienda.
type StaffUser struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, tecnico, vendedor
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
