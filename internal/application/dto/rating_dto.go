package dto

import "time"

// CreateRatingRequest alta o edición de la calificación propia sobre una tienda.
type CreateRatingRequest struct {
	StoreID     int64  `json:"store_id" validate:"required,gt=0"`
	RatingValue int    `json:"rating_value" validate:"required,min=1,max=5"`
	ReviewText  string `json:"review_text" validate:"max=1000"`
}

func (CreateRatingRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"store_id":     "Valid store ID is required",
		"rating_value": "Rating must be between 1 and 5",
		"review_text":  "Review text must not exceed 1000 characters",
	}
}

// OwnerResponseRequest respuesta del dueño a una reseña.
type OwnerResponseRequest struct {
	Response string `json:"response" validate:"max=1000"`
}

func (OwnerResponseRequest) ValidationMessages() map[string]string {
	return map[string]string{"response": "Response must not exceed 1000 characters"}
}

// RatingResponse calificación con los datos de autor y tienda disponibles en cada vista.
type RatingResponse struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	StoreID            int64     `json:"store_id"`
	RatingValue        int       `json:"rating_value"`
	Status             string    `json:"status"`
	RejectionReason    string    `json:"rejection_reason,omitempty"`
	ReviewText         string    `json:"review_text"`
	OwnerResponse      string    `json:"owner_response,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	UserName           string    `json:"user_name,omitempty"`
	UserEmail          string    `json:"user_email,omitempty"`
	StoreName          string    `json:"store_name,omitempty"`
	StoreAddress       string    `json:"store_address,omitempty"`
	StoreCategory      string    `json:"category,omitempty"`
	StoreIsVerified    *bool     `json:"is_verified,omitempty"`
	StoreAverageRating *float64  `json:"store_average_rating,omitempty"`
	StoreRatingCount   *int64    `json:"store_rating_count,omitempty"`
}

// SubmitRatingResponse resultado del upsert; Created distingue alta de edición.
type SubmitRatingResponse struct {
	Rating  RatingResponse `json:"rating"`
	Created bool           `json:"-"`
}

// UserRatingsResponse página de calificaciones del usuario.
type UserRatingsResponse struct {
	Ratings    []RatingResponse `json:"ratings"`
	Pagination RatingPagination `json:"pagination"`
}

// UserStatsResponse panel del normal_user.
type UserStatsResponse struct {
	TotalRatings   int64            `json:"totalRatings"`
	AverageRating  float64          `json:"averageRating"`
	RatedStores    int64            `json:"ratedStores"`
	FavoriteStores int64            `json:"favoriteStores"`
	RecentRatings  []RatingResponse `json:"recentRatings"`
}

// UserProfileRequest edición del perfil desde /users/profile (sin email).
type UserProfileRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=60,personname"`
	Address string `json:"address" validate:"max=400"`
}

func (UserProfileRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name":    "Name must be 2-60 characters and contain only letters, spaces, hyphens, and apostrophes",
		"address": "Address must not exceed 400 characters",
	}
}
