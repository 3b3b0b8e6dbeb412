package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/TallerStock-api/internal/application/dto"
	"github.com/jhoicas/TallerStock-api/internal/domain"
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
	"github.com/jhoicas/TallerStock-api/internal/domain/repository"
	"github.com/jhoicas/TallerStock-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación del staff: registro y login.
type AuthUseCase struct {
	staffRepo repository.StaffRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(staffRepo repository.StaffRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{staffRepo: staffRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario de staff: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.StaffResponse, error) {
	existing, _ := uc.staffRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	switch role {
	case entity.RoleAdmin, entity.RoleTecnico, entity.RoleVendedor:
	case "":
		role = entity.RoleVendedor
	default:
		return nil, domain.ErrInvalidInput
	}
	user := &entity.StaffUser{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       entity.StaffStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.staffRepo.Create(user); err != nil {
		return nil, err
	}
	return toStaffResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.staffRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrStaffNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StaffStatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toStaffResponse(user),
	}, nil
}

func toStaffResponse(u *entity.StaffUser) *dto.StaffResponse {
	if u == nil {
		return nil
	}
	return &dto.StaffResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
