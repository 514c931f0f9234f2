package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
)

// StoreFilter criterios del listado público de tiendas.
type StoreFilter struct {
	Search    string
	Category  string
	Active    *bool
	Verified  *bool
	MinRating *float64
	MaxRating *float64
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// AdminStoreFilter criterios del listado de tiendas del panel de administración.
type AdminStoreFilter struct {
	Search    string
	Category  string
	Active    *bool
	DateFrom  *time.Time
	DateTo    *time.Time
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// StoreSummary tienda con datos del dueño y agregados de calificaciones.
type StoreSummary struct {
	entity.Store
	OwnerName     string
	OwnerEmail    string
	RatingCount   int64
	AverageRating decimal.Decimal
}

// StoreAdminView resumen con clientes únicos, para administración.
type StoreAdminView struct {
	StoreSummary
	UniqueCustomers int64
}

// StoreAnalytics métricas de una tienda (históricas y últimos 30 días).
type StoreAnalytics struct {
	TotalRatings              int64
	AvgRating                 decimal.Decimal
	UniqueCustomers           int64
	RatingsLast30Days         int64
	AvgRatingLast30Days       decimal.Decimal
	UniqueCustomersLast30Days int64
	LowRatingsCount           int64
	HighRatingsCount          int64
}

// StoreCounts conteos globales de tiendas.
type StoreCounts struct {
	Total         int64
	Active        int64
	Inactive      int64
	Verified      int64
	NewLast30Days int64
	NewLast7Days  int64
}

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id int64) (*entity.Store, error)
	NameExistsForOwner(ctx context.Context, ownerID int64, name string) (bool, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, f StoreFilter) ([]StoreSummary, int64, error)
	ListActive(ctx context.Context) ([]StoreSummary, error)
	GetSummary(ctx context.Context, id int64) (*StoreSummary, error)
	Categories(ctx context.Context) ([]string, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.Store, error)
	// SetStatus aprueba (activa y verifica) o rechaza (desactiva con motivo) en una sola sentencia.
	SetStatus(ctx context.Context, ids []int64, approve bool, reason string) (int64, error)
	AdminList(ctx context.Context, f AdminStoreFilter) ([]StoreAdminView, int64, error)
	AdminGet(ctx context.Context, id int64) (*StoreAdminView, error)
	Analytics(ctx context.Context, id int64) (StoreAnalytics, error)
	NeedingAttention(ctx context.Context, limit int) ([]StoreAdminView, error)
	Counts(ctx context.Context) (StoreCounts, error)
	Recent(ctx context.Context, limit int) ([]StoreSummary, error)
}
