package dto

import "time"

// OverallRatingStats agregados globales.
type OverallRatingStats struct {
	Total   int64   `json:"total"`
	Average float64 `json:"average"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
}

// RatingValueCount cantidad por valor.
type RatingValueCount struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

// RatingStatusCount cantidad por estado.
type RatingStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DailyRatingCount actividad de un día.
type DailyRatingCount struct {
	Date    string  `json:"date"`
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

// StoreRankResponse tienda dentro de un ranking.
type StoreRankResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	RatingCount   int64   `json:"rating_count"`
	AverageRating float64 `json:"average_rating"`
}

// RatingStatisticsResponse estadísticas del panel de moderación.
type RatingStatisticsResponse struct {
	Overall            OverallRatingStats  `json:"overall"`
	Distribution       []RatingValueCount  `json:"distribution"`
	StatusDistribution []RatingStatusCount `json:"statusDistribution"`
	Recent             []DailyRatingCount  `json:"recent"`
	TopStores          []StoreRankResponse `json:"topStores"`
	LowRatedStores     []StoreRankResponse `json:"lowRatedStores"`
	PendingCount       int64               `json:"pendingCount"`
}

// SummaryReport datos del reporte PDF de la plataforma.
type SummaryReport struct {
	GeneratedAt    time.Time
	Users          UserCountsResponse
	Stores         StoreCountsResponse
	Ratings        OverallRatingStats
	Distribution   []RatingValueCount
	TopStores      []StoreRankResponse
	LowRatedStores []StoreRankResponse
}
