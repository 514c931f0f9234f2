package dto

import "time"

// RegisterRequest entrada del registro público.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=60,personname"`
	Email           string `json:"email" validate:"required,max=255,emailaddr"`
	Password        string `json:"password" validate:"required,min=6,max=50"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
	Role            string `json:"role" validate:"omitempty,oneof=normal_user store_owner"`
	Address         string `json:"address" validate:"required_if=Role store_owner,max=400"`
}

func (RegisterRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name.required":       "Name is required",
		"name.min":            "Name must be between 2 and 60 characters",
		"name.max":            "Name must be between 2 and 60 characters",
		"name.personname":     "Name can only contain letters, spaces, hyphens, and apostrophes",
		"email":               "Please provide a valid email address",
		"password":            "Password must be between 6 and 50 characters",
		"confirmPassword":     "Passwords do not match",
		"role":                "Role must be either normal_user or store_owner",
		"address.required_if": "Address is required for store owners",
		"address.max":         "Address must not exceed 400 characters",
	}
}

// LoginRequest credenciales; role es opcional y, si llega, debe coincidir con el guardado.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,emailaddr"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=normal_user store_owner admin"`
}

func (LoginRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email":    "Please provide a valid email address",
		"password": "Password is required",
		"role":     "Invalid role specified",
	}
}

// RefreshTokenRequest cuerpo de /refresh-token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdateProfileRequest edición del perfil propio desde /auth/profile.
type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=60,personname"`
	Email   string `json:"email" validate:"required,max=255,emailaddr"`
	Address string `json:"address" validate:"max=400"`
}

func (UpdateProfileRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name":    "Name must be 2-60 characters and contain only letters, spaces, hyphens, and apostrophes",
		"email":   "Please provide a valid email address",
		"address": "Address must not exceed 400 characters",
	}
}

// ChangePasswordRequest cambio de contraseña con verificación de la actual.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=50"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

func (ChangePasswordRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"currentPassword": "Current password is required",
		"newPassword":     "New password must be between 6 and 50 characters",
		"confirmPassword": "Passwords do not match",
	}
}

// Tokens par access/refresh.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterResponse usuario creado y sus tokens.
type RegisterResponse struct {
	User   UserResponse `json:"user"`
	Tokens Tokens       `json:"tokens"`
}

// LoginResponse usuario autenticado y tokens al mismo nivel.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// RefreshResponse par de tokens renovado.
type RefreshResponse struct {
	Tokens Tokens `json:"tokens"`
}
