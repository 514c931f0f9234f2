package dto

import "time"

// AdminStatsResponse tarjetas del panel de administración.
type AdminStatsResponse struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalStores   int64   `json:"totalStores"`
	TotalRatings  int64   `json:"totalRatings"`
	AverageRating float64 `json:"averageRating"`
	ActiveUsers   int64   `json:"activeUsers"`
	PendingStores int64   `json:"pendingStores"`
}

// AdminStoreListQuery filtros del listado de tiendas de administración.
type AdminStoreListQuery struct {
	PageQuery
	Search    string
	Category  string
	Status    string
	DateFrom  *time.Time
	DateTo    *time.Time
	SortBy    string
	SortOrder string
}

// AdminStoreResponse tienda con agregados de administración.
type AdminStoreResponse struct {
	StoreResponse
	StatusReason    string  `json:"status_reason,omitempty"`
	TotalRatings    int64   `json:"total_ratings"`
	AvgRating       float64 `json:"avg_rating"`
	UniqueCustomers int64   `json:"unique_customers"`
}

// AdminStoreFilters eco de los filtros aplicados.
type AdminStoreFilters struct {
	Search    string `json:"search"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	DateFrom  string `json:"dateFrom"`
	DateTo    string `json:"dateTo"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// AdminStoreListResponse página de tiendas.
type AdminStoreListResponse struct {
	Stores     []AdminStoreResponse `json:"stores"`
	Pagination AdminPagination      `json:"pagination"`
	Filters    AdminStoreFilters    `json:"filters"`
}

// StoreCountsResponse conteos globales de tiendas.
type StoreCountsResponse struct {
	TotalStores         int64 `json:"total_stores"`
	ActiveStores        int64 `json:"active_stores"`
	InactiveStores      int64 `json:"inactive_stores"`
	VerifiedStores      int64 `json:"verified_stores"`
	NewStoresLast30Days int64 `json:"new_stores_last_30_days"`
	NewStoresLast7Days  int64 `json:"new_stores_last_7_days"`
}

// StoreAnalyticsResponse métricas de una tienda.
type StoreAnalyticsResponse struct {
	Store                     AdminStoreResponse `json:"store"`
	TotalRatings              int64              `json:"total_ratings"`
	AvgRating                 float64            `json:"avg_rating"`
	UniqueCustomers           int64              `json:"unique_customers"`
	RatingsLast30Days         int64              `json:"ratings_last_30_days"`
	AvgRatingLast30Days       float64            `json:"avg_rating_last_30_days"`
	UniqueCustomersLast30Days int64              `json:"unique_customers_last_30_days"`
	LowRatingsCount           int64              `json:"low_ratings_count"`
	HighRatingsCount          int64              `json:"high_ratings_count"`
}

// AdminCreateStoreRequest alta de tienda en nombre de un store_owner.
type AdminCreateStoreRequest struct {
	CreateStoreRequest
	OwnerID int64 `json:"owner_id" form:"owner_id" validate:"required,gt=0"`
}

// AdminUpdateStoreRequest edición completa; nombre y dirección son obligatorios.
type AdminUpdateStoreRequest struct {
	CreateStoreRequest
	IsActive   *bool `json:"is_active" form:"is_active"`
	IsVerified *bool `json:"is_verified" form:"is_verified"`
}

// RejectRequest motivo de un rechazo.
type RejectRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

func (RejectRequest) ValidationMessages() map[string]string {
	return map[string]string{"reason": "Reason must not exceed 500 characters"}
}

// RejectStoreRequest el rechazo de una tienda exige motivo.
type RejectStoreRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

func (RejectStoreRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"reason.required": "Rejection reason is required",
		"reason.max":      "Reason must not exceed 500 characters",
	}
}

// BulkStoresRequest aprobación o rechazo masivo.
type BulkStoresRequest struct {
	StoreIDs  []int64 `json:"storeIds" validate:"required,min=1,dive,gt=0"`
	Operation string  `json:"operation" validate:"required,oneof=approve reject"`
	Reason    string  `json:"reason" validate:"max=500"`
}

func (BulkStoresRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"storeIds":  "Store IDs array is required",
		"operation": "Invalid operation. Must be approve or reject",
		"reason":    "Reason must not exceed 500 characters",
	}
}

// BulkStoresResponse filas afectadas.
type BulkStoresResponse struct {
	AffectedStores int64 `json:"affectedStores"`
}

// AdminRatingListQuery filtros del listado de moderación.
type AdminRatingListQuery struct {
	PageQuery
	Search   string
	Rating   int
	StoreID  int64
	UserID   int64
	Status   string // all | pending | approved | rejected
	DateFrom *time.Time
	DateTo   *time.Time
}

// AdminRatingFilters eco de los filtros aplicados.
type AdminRatingFilters struct {
	Search   string `json:"search"`
	Rating   int    `json:"rating,omitempty"`
	Store    int64  `json:"store,omitempty"`
	User     int64  `json:"user,omitempty"`
	Status   string `json:"status"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

// AdminRatingListResponse página de calificaciones.
type AdminRatingListResponse struct {
	Ratings    []RatingResponse   `json:"ratings"`
	Pagination AdminPagination    `json:"pagination"`
	Filters    AdminRatingFilters `json:"filters"`
}

// BulkRatingsRequest moderación masiva.
type BulkRatingsRequest struct {
	Operation string  `json:"operation" validate:"required,oneof=approve reject delete"`
	RatingIDs []int64 `json:"ratingIds" validate:"required,min=1,dive,gt=0"`
	Reason    string  `json:"reason" validate:"max=500"`
}

func (BulkRatingsRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"operation": "Invalid operation. Must be approve, reject, or delete",
		"ratingIds": "Rating IDs array is required",
		"reason":    "Reason must not exceed 500 characters",
	}
}

// BulkRatingsResponse filas afectadas.
type BulkRatingsResponse struct {
	AffectedCount int64 `json:"affectedCount"`
}

// RatingsAttentionResponse calificaciones a revisar.
type RatingsAttentionResponse struct {
	LowRatings []RatingResponse `json:"lowRatings"`
	Pending    []RatingResponse `json:"pending"`
	Recent     []RatingResponse `json:"recent"`
}
