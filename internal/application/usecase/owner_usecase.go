package usecase

import (
	"context"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

// OwnerUseCase panel del store_owner.
type OwnerUseCase struct {
	stores repository.StoreRepository
	stats  repository.StatsRepository
}

func NewOwnerUseCase(stores repository.StoreRepository, stats repository.StatsRepository) *OwnerUseCase {
	return &OwnerUseCase{stores: stores, stats: stats}
}

// Stores tiendas del dueño, para el selector del panel.
func (uc *OwnerUseCase) Stores(ctx context.Context, ownerID int64) ([]dto.OwnerStoreItem, error) {
	list, err := uc.stores.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OwnerStoreItem, 0, len(list))
	for _, s := range list {
		out = append(out, dto.OwnerStoreItem{ID: s.ID, Name: s.Name, Address: s.Address})
	}
	return out, nil
}

// Stats agregados sobre todas las tiendas del dueño.
func (uc *OwnerUseCase) Stats(ctx context.Context, ownerID int64) (*dto.OwnerStatsResponse, error) {
	st, err := uc.stats.OwnerStats(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &dto.OwnerStatsResponse{
		TotalStores:    st.TotalStores,
		TotalRatings:   st.TotalRatings,
		AverageRating:  dto.Round1(st.Average),
		TotalCustomers: st.TotalCustomers,
		PendingReviews: st.PendingReviews,
	}, nil
}

// Customers usuarios que calificaron alguna tienda del dueño.
func (uc *OwnerUseCase) Customers(ctx context.Context, ownerID int64) ([]dto.OwnerCustomerResponse, error) {
	list, err := uc.stats.OwnerCustomers(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OwnerCustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.OwnerCustomerResponse{
			ID:             c.UserID,
			Name:           c.Name,
			Email:          c.Email,
			TotalReviews:   c.TotalReviews,
			AverageRating:  dto.Round1(c.Average),
			LastRatingDate: c.LastRatingDate,
		})
	}
	return out, nil
}
