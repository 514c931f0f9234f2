package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
	"github.com/pankaj-shinde04/store-rating/pkg/jwt"
)

var (
	errRoleMismatch      = domain.NewError(domain.ErrUnauthorized, "Role mismatch")
	errRefreshRequired   = domain.NewError(domain.ErrUnauthorized, "Refresh token required")
	errRefreshInvalid    = domain.NewError(domain.ErrUnauthorized, "Invalid refresh token")
	errRefreshExpired    = domain.NewError(domain.ErrUnauthorized, "Refresh token expired")
	errUserGone          = domain.NewError(domain.ErrUnauthorized, "User not found")
	errWrongPassword     = domain.NewError(domain.ErrInvalidInput, "Current password is incorrect")
	errAdminRegistration = domain.NewError(domain.ErrForbidden, "Admin accounts cannot be self-registered")
)

// HashPassword hashea con bcrypt al costo indicado.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compara en tiempo constante.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// AdminSeed datos del administrador inicial.
type AdminSeed struct {
	Email    string
	Password string
	Name     string
}

// AuthUseCase casos de uso de autenticación: registro, login, refresh y perfil.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	tokens     *jwt.Manager
	bcryptCost int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokens *jwt.Manager, bcryptCost int) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens, bcryptCost: bcryptCost}
}

func (uc *AuthUseCase) issue(u *entity.User) (dto.Tokens, error) {
	pair, err := uc.tokens.GeneratePair(jwt.Identity{ID: u.ID, Email: u.Email, Role: u.Role, Name: u.Name})
	if err != nil {
		return dto.Tokens{}, err
	}
	return dto.Tokens{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

// Register crea un normal_user o store_owner y devuelve su primer par de tokens.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleNormalUser
	}
	if role == entity.RoleAdmin {
		return nil, errAdminRegistration
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	taken, err := uc.userRepo.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := HashPassword(in.Password, uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Address:      strings.TrimSpace(in.Address),
		IsActive:     true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	tokens, err := uc.issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{User: ToUserResponse(user), Tokens: tokens}, nil
}

// Login verifica credenciales, estado de la cuenta y, si se envió, el rol.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPassword(user.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDeactivated
	}
	if in.Role != "" && in.Role != user.Role {
		return nil, errRoleMismatch.WithDetail("This account is registered as " + user.Role)
	}
	tokens, err := uc.issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		User:         ToUserResponse(user),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Refresh canjea un refresh token por un par nuevo si el usuario sigue activo.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, errRefreshRequired
	}
	claims, err := uc.tokens.ParseRefresh(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, errRefreshExpired
		}
		return nil, errRefreshInvalid
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errUserGone
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDeactivated
	}
	tokens, err := uc.issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{Tokens: tokens}, nil
}

// Profile devuelve el usuario actual.
func (uc *AuthUseCase) Profile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := ToUserResponse(user)
	return &out, nil
}

// UpdateProfile cambia nombre, email y dirección; el email no puede pertenecer a otra cuenta.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID int64, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	taken, err := uc.userRepo.EmailTaken(ctx, email, userID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	user.Name = strings.TrimSpace(in.Name)
	user.Email = email
	user.Address = strings.TrimSpace(in.Address)
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	out := ToUserResponse(user)
	return &out, nil
}

// ChangePassword exige la contraseña actual antes de reemplazarla.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID int64, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !CheckPassword(user.PasswordHash, in.CurrentPassword) {
		return errWrongPassword
	}
	hash, err := HashPassword(in.NewPassword, uc.bcryptCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(ctx, userID, hash)
}

// EnsureAdmin crea el administrador inicial si el email no existe. Devuelve true si lo creó.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, seed AdminSeed) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(seed.Email))
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	hash, err := HashPassword(seed.Password, uc.bcryptCost)
	if err != nil {
		return false, err
	}
	admin := &entity.User{
		Name:         seed.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}

// ToUserResponse proyecta la entidad sin el hash.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Address:   u.Address,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
