package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
)

// RatingView calificación con datos del autor y de la tienda.
type RatingView struct {
	entity.Rating
	UserName         string
	UserEmail        string
	StoreName        string
	StoreAddress     string
	StoreCategory    string
	StoreIsVerified  bool
	StoreAverage     decimal.Decimal
	StoreRatingCount int64
}

// RatingFilter criterios del listado de moderación.
type RatingFilter struct {
	Search   string
	Value    int // 0 = cualquiera
	MaxValue int // 0 = sin tope
	StoreID  int64
	UserID   int64
	Status   string // vacío = todos
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
}

// RatingRepository define el puerto de persistencia para Rating.
type RatingRepository interface {
	// Upsert inserta o, si ya existe la pareja (user_id, store_id), actualiza valor y reseña.
	// created es true cuando se insertó una fila nueva.
	Upsert(ctx context.Context, rating *entity.Rating) (created bool, err error)
	GetByID(ctx context.Context, id int64) (*entity.Rating, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
	SetStatus(ctx context.Context, ids []int64, status, reason string) (int64, error)
	SetOwnerResponse(ctx context.Context, id int64, response string) error
	// ListByStore devuelve las más recientes primero; limit 0 = todas.
	ListByStore(ctx context.Context, storeID int64, limit int) ([]RatingView, error)
	// ListByUser pagina las calificaciones de un usuario; limit 0 = todas.
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]RatingView, int64, error)
	AdminList(ctx context.Context, f RatingFilter) ([]RatingView, int64, error)
	// AdminFind aplica el mismo filtro que AdminList sin contar el total.
	AdminFind(ctx context.Context, f RatingFilter) ([]RatingView, error)
}
