package entity

import "time"

// Store tienda calificable; pertenece a un usuario store_owner.
type Store struct {
	ID           int64
	Name         string
	Address      string
	OwnerID      int64
	PhotoURL     string
	Description  string
	Phone        string
	Email        string
	Website      string
	Category     string
	IsActive     bool
	IsVerified   bool
	StatusReason string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnedBy indica si la tienda pertenece al usuario.
func (s *Store) OwnedBy(userID int64) bool {
	return s.OwnerID == userID
}
