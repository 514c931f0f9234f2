package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
)

// UserFilter criterios del listado de usuarios del panel de administración.
// SortBy y SortOrder se validan contra una lista blanca en la implementación.
type UserFilter struct {
	Search    string
	Role      string
	Active    *bool
	DateFrom  *time.Time
	DateTo    *time.Time
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// UserWithStats usuario con agregados de su actividad.
type UserWithStats struct {
	entity.User
	TotalRatings   int64
	AvgRating      decimal.Decimal
	StoresRated    int64
	StoresOwned    int64
	LastRatingDate *time.Time
}

// UserCounts conteos globales de usuarios.
type UserCounts struct {
	Total         int64
	Active        int64
	NormalUsers   int64
	StoreOwners   int64
	Admins        int64
	NewLast30Days int64
	NewLast7Days  int64
}

// UserRepository define el puerto de persistencia para User.
// Los métodos de lectura devuelven (nil, nil) cuando la fila no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// EmailTaken indica si otro usuario (distinto de excludeID) ya usa el email.
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	Delete(ctx context.Context, id int64) (bool, error)
	SetActive(ctx context.Context, ids []int64, active bool, reason string) (int64, error)
	List(ctx context.Context, f UserFilter) ([]UserWithStats, int64, error)
	GetWithStats(ctx context.Context, id int64) (*UserWithStats, error)
	Recent(ctx context.Context, limit int) ([]entity.User, error)
	Counts(ctx context.Context) (UserCounts, error)
}
