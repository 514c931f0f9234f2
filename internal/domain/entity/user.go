package entity

import "time"

// Roles válidos para User.
const (
	RoleNormalUser = "normal_user"
	RoleStoreOwner = "store_owner"
	RoleAdmin      = "admin"
)

// ValidRole indica si el rol pertenece al enum persistido.
func ValidRole(role string) bool {
	switch role {
	case RoleNormalUser, RoleStoreOwner, RoleAdmin:
		return true
	}
	return false
}

// User representa una cuenta de la plataforma.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca texto plano
	Role         string
	Address      string
	IsActive     bool
	StatusReason string // motivo de la última activación/desactivación masiva
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole indica si el usuario tiene alguno de los roles dados.
func (u *User) HasRole(roles ...string) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
