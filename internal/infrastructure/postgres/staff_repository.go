package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/TallerStock-api/internal/domain"
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
	"github.com/jhoicas/TallerStock-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación del puerto StaffRepository sobre PostgreSQL.
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador de persistencia para staff.
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

const staffColumns = `id, email, password_hash, name, role, status, created_at, updated_at`

// Create persiste un usuario de staff. El email es único.
func (r *StaffRepo) Create(user *entity.StaffUser) error {
	query := `
		INSERT INTO staff_users (` + staffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name,
		user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert staff user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario de staff por ID.
func (r *StaffRepo) GetByID(id string) (*entity.StaffUser, error) {
	return r.getOne(`SELECT `+staffColumns+` FROM staff_users WHERE id = $1`, id)
}

// FindByEmail busca un usuario de staff por email.
func (r *StaffRepo) FindByEmail(email string) (*entity.StaffUser, error) {
	return r.getOne(`SELECT `+staffColumns+` FROM staff_users WHERE email = $1`, email)
}

func (r *StaffRepo) getOne(query string, arg any) (*entity.StaffUser, error) {
	var u entity.StaffUser
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff user: %w", err)
	}
	return &u, nil
}
