package entity

import "time"

// Favorite tienda marcada como favorita por un usuario.
type Favorite struct {
	ID        int64
	UserID    int64
	StoreID   int64
	CreatedAt time.Time
}
