package dto

import "time"

// StoreListQuery filtros del listado público (ya parseados del query string).
type StoreListQuery struct {
	PageQuery
	Search     string
	Category   string
	MinRating  *float64
	MaxRating  *float64
	IsActive   *bool
	IsVerified *bool
	SortBy     string
	SortOrder  string
}

// CreateStoreRequest alta de tienda; llega como JSON o como campos multipart.
type CreateStoreRequest struct {
	Name        string `json:"name" form:"name" validate:"required,min=2,max=100,storename"`
	Address     string `json:"address" form:"address" validate:"required,min=10,max=400,storeaddress"`
	Description string `json:"description" form:"description" validate:"max=1000"`
	Phone       string `json:"phone" form:"phone" validate:"max=20,phone"`
	Email       string `json:"email" form:"email" validate:"max=255,emailaddr"`
	Website     string `json:"website" form:"website" validate:"max=255,website"`
	Category    string `json:"category" form:"category" validate:"max=50,category"`
}

func (CreateStoreRequest) ValidationMessages() map[string]string {
	return storeMessages
}

var storeMessages = map[string]string{
	"name.required":    "Store name is required",
	"name.min":         "Store name must be between 2 and 100 characters",
	"name.max":         "Store name must be between 2 and 100 characters",
	"name.storename":   "Store name contains invalid characters",
	"address.required": "Store address is required",
	"address.min":      "Address must be between 10 and 400 characters",
	"address.max":      "Address must be between 10 and 400 characters",
	"address":          "Address contains invalid characters",
	"description":      "Description must not exceed 1000 characters",
	"phone":            "Please provide a valid phone number",
	"email":            "Please provide a valid email address",
	"website":          "Please provide a valid website URL",
	"category":         "Category must be up to 50 characters and contain only letters, numbers, spaces, hyphens, and ampersands",
	"owner_id":         "Valid owner ID is required",
}

// UpdateStoreRequest actualización parcial: sólo se modifican los campos presentes.
type UpdateStoreRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,min=2,max=100,storename"`
	Address     *string `json:"address" form:"address" validate:"omitempty,min=10,max=400,storeaddress"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=1000"`
	Phone       *string `json:"phone" form:"phone" validate:"omitempty,max=20,phone"`
	Email       *string `json:"email" form:"email" validate:"omitempty,max=255,emailaddr"`
	Website     *string `json:"website" form:"website" validate:"omitempty,max=255,website"`
	Category    *string `json:"category" form:"category" validate:"omitempty,max=50,category"`
}

func (UpdateStoreRequest) ValidationMessages() map[string]string {
	return storeMessages
}

// StoreResponse tienda con dueño y agregados.
type StoreResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	PhotoURL      string    `json:"photo_url"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Website       string    `json:"website"`
	IsActive      bool      `json:"is_active"`
	IsVerified    bool      `json:"is_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	OwnerID       int64     `json:"owner_id"`
	OwnerName     string    `json:"owner_name,omitempty"`
	OwnerEmail    string    `json:"owner_email,omitempty"`
	RatingCount   int64     `json:"rating_count"`
	AverageRating float64   `json:"average_rating"`
}

// StoreDetailResponse tienda con sus últimas calificaciones.
type StoreDetailResponse struct {
	StoreResponse
	RecentRatings []RatingResponse `json:"recent_ratings"`
}

// StoreListResponse página del listado público.
type StoreListResponse struct {
	Stores     []StoreResponse `json:"stores"`
	Pagination StorePagination `json:"pagination"`
}

// FavoriteStoreResponse tienda favorita.
type FavoriteStoreResponse struct {
	StoreResponse
	FavoritedAt time.Time `json:"favorited_at"`
}

// FavoriteRequest cuerpo de alta/baja de favoritos.
type FavoriteRequest struct {
	StoreID int64 `json:"storeId" validate:"required,gt=0"`
}

func (FavoriteRequest) ValidationMessages() map[string]string {
	return map[string]string{"storeId": "Valid store ID is required"}
}

// OwnerStoreItem tienda en el selector del panel del dueño.
type OwnerStoreItem struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// OwnerStatsResponse agregados del panel del dueño.
type OwnerStatsResponse struct {
	TotalStores    int64   `json:"totalStores"`
	TotalRatings   int64   `json:"totalRatings"`
	AverageRating  float64 `json:"averageRating"`
	TotalCustomers int64   `json:"totalCustomers"`
	PendingReviews int64   `json:"pendingReviews"`
}

// OwnerCustomerResponse cliente que calificó tiendas del dueño.
type OwnerCustomerResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	TotalReviews   int64     `json:"total_reviews"`
	AverageRating  float64   `json:"average_rating"`
	LastRatingDate time.Time `json:"last_rating_date"`
}
