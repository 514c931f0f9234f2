package entity

import "time"

// Estados de moderación de una calificación.
const (
	RatingPending  = "pending"
	RatingApproved = "approved"
	RatingRejected = "rejected"
)

// Límites del valor de una calificación (CHECK en la tabla).
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// Rating calificación única por (usuario, tienda).
type Rating struct {
	ID              int64
	UserID          int64
	StoreID         int64
	Value           int
	Status          string
	RejectionReason string
	ReviewText      string
	OwnerResponse   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidRatingValue indica si v está en [1,5].
func ValidRatingValue(v int) bool {
	return v >= MinRatingValue && v <= MaxRatingValue
}
