package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RatingOverall agregados globales de calificaciones.
type RatingOverall struct {
	Total   int64
	Average decimal.Decimal
	Min     int
	Max     int
}

// ValueCount cantidad de calificaciones por valor (1..5).
type ValueCount struct {
	Value int
	Count int64
}

// StatusCount cantidad de calificaciones por estado.
type StatusCount struct {
	Status string
	Count  int64
}

// DailyCount calificaciones creadas en un día.
type DailyCount struct {
	Day     time.Time
	Count   int64
	Average decimal.Decimal
}

// StoreRank tienda en un ranking por promedio.
type StoreRank struct {
	StoreID     int64
	Name        string
	RatingCount int64
	Average     decimal.Decimal
}

// OwnerStats agregados del panel de un store_owner.
type OwnerStats struct {
	TotalStores    int64
	TotalRatings   int64
	Average        decimal.Decimal
	TotalCustomers int64
	PendingReviews int64
}

// OwnerCustomer usuario que calificó alguna tienda del dueño.
type OwnerCustomer struct {
	UserID         int64
	Name           string
	Email          string
	TotalReviews   int64
	Average        decimal.Decimal
	LastRatingDate time.Time
}

// UserRatingStats agregados del panel de un normal_user.
type UserRatingStats struct {
	TotalRatings   int64
	Average        decimal.Decimal
	RatedStores    int64
	FavoriteStores int64 // calificaciones >= 4
}

// StatsRepository consultas de solo lectura para los paneles.
type StatsRepository interface {
	RatingOverall(ctx context.Context) (RatingOverall, error)
	RatingDistribution(ctx context.Context) ([]ValueCount, error)
	StatusDistribution(ctx context.Context) ([]StatusCount, error)
	DailyRatings(ctx context.Context, days int) ([]DailyCount, error)
	// StoreRanking ordena por promedio (desc, o asc si ascending) entre tiendas con al menos minRatings.
	StoreRanking(ctx context.Context, limit, minRatings int, ascending bool) ([]StoreRank, error)
	OwnerStats(ctx context.Context, ownerID int64) (OwnerStats, error)
	OwnerCustomers(ctx context.Context, ownerID int64) ([]OwnerCustomer, error)
	UserRatingStats(ctx context.Context, userID int64) (UserRatingStats, error)
}
