package usecase

import (
	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

func toStoreResponse(s repository.StoreSummary) dto.StoreResponse {
	out := storeEntityResponse(&s.Store)
	out.OwnerName = s.OwnerName
	out.OwnerEmail = s.OwnerEmail
	out.RatingCount = s.RatingCount
	out.AverageRating = dto.Round1(s.AverageRating)
	return out
}

func storeEntityResponse(s *entity.Store) dto.StoreResponse {
	return dto.StoreResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Description: s.Description,
		Category:    s.Category,
		PhotoURL:    s.PhotoURL,
		Phone:       s.Phone,
		Email:       s.Email,
		Website:     s.Website,
		IsActive:    s.IsActive,
		IsVerified:  s.IsVerified,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		OwnerID:     s.OwnerID,
	}
}

func toStoreResponses(list []repository.StoreSummary) []dto.StoreResponse {
	out := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toStoreResponse(s))
	}
	return out
}

func toAdminStoreResponse(v repository.StoreAdminView) dto.AdminStoreResponse {
	base := toStoreResponse(v.StoreSummary)
	return dto.AdminStoreResponse{
		StoreResponse:   base,
		StatusReason:    v.StatusReason,
		TotalRatings:    base.RatingCount,
		AvgRating:       base.AverageRating,
		UniqueCustomers: v.UniqueCustomers,
	}
}

func toAdminStoreResponses(list []repository.StoreAdminView) []dto.AdminStoreResponse {
	out := make([]dto.AdminStoreResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toAdminStoreResponse(v))
	}
	return out
}

func ratingEntityResponse(r *entity.Rating) dto.RatingResponse {
	return dto.RatingResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		StoreID:         r.StoreID,
		RatingValue:     r.Value,
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
		ReviewText:      r.ReviewText,
		OwnerResponse:   r.OwnerResponse,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// toRatingResponse withStore agrega los datos de la tienda (vistas del usuario y de moderación).
func toRatingResponse(v repository.RatingView, withStore bool) dto.RatingResponse {
	out := ratingEntityResponse(&v.Rating)
	out.UserName = v.UserName
	out.UserEmail = v.UserEmail
	if withStore {
		avg := dto.Round1(v.StoreAverage)
		verified := v.StoreIsVerified
		count := v.StoreRatingCount
		out.StoreName = v.StoreName
		out.StoreAddress = v.StoreAddress
		out.StoreCategory = v.StoreCategory
		out.StoreIsVerified = &verified
		out.StoreAverageRating = &avg
		out.StoreRatingCount = &count
	}
	return out
}

func toRatingResponses(list []repository.RatingView, withStore bool) []dto.RatingResponse {
	out := make([]dto.RatingResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toRatingResponse(v, withStore))
	}
	return out
}

func toAdminUserResponse(u repository.UserWithStats) dto.AdminUserResponse {
	return dto.AdminUserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Address:        u.Address,
		IsActive:       u.IsActive,
		StatusReason:   u.StatusReason,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
		TotalRatings:   u.TotalRatings,
		AvgRating:      dto.Round1(u.AvgRating),
		StoresRated:    u.StoresRated,
		StoresOwned:    u.StoresOwned,
		LastRatingDate: u.LastRatingDate,
	}
}
