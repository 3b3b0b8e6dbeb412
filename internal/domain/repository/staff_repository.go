package repository

import "github.com/jhoicas/TallerStock-api/internal/domain/entity"

// StaffRepository define el puerto de persistencia para StaffUser.
// GetByID lo usa el motor de ajustes para resolver el actor de cada transición.
type StaffRepository interface {
	Create(user *entity.StaffUser) error
	GetByID(id string) (*entity.StaffUser, error)
	FindByEmail(email string) (*entity.StaffUser, error)
}
