package usecase

import (
	"context"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

const (
	favoritesDefault = 10
	favoritesMax     = 100
)

// FavoriteUseCase favoritos del usuario.
type FavoriteUseCase struct {
	favorites repository.FavoriteRepository
	stores    repository.StoreRepository
}

func NewFavoriteUseCase(favorites repository.FavoriteRepository, stores repository.StoreRepository) *FavoriteUseCase {
	return &FavoriteUseCase{favorites: favorites, stores: stores}
}

// List tiendas favoritas activas, las más recientes primero.
func (uc *FavoriteUseCase) List(ctx context.Context, userID int64, limit int) ([]dto.FavoriteStoreResponse, error) {
	page := dto.PageQuery{Limit: limit}.Normalize(favoritesDefault, favoritesMax)
	list, err := uc.favorites.ListByUser(ctx, userID, page.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FavoriteStoreResponse, 0, len(list))
	for _, f := range list {
		out = append(out, dto.FavoriteStoreResponse{StoreResponse: toStoreResponse(f.StoreSummary), FavoritedAt: f.FavoritedAt})
	}
	return out, nil
}

// Add marca la tienda como favorita; conflicto si ya lo era.
func (uc *FavoriteUseCase) Add(ctx context.Context, userID, storeID int64) error {
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrStoreNotFound
	}
	return uc.favorites.Add(ctx, &entity.Favorite{UserID: userID, StoreID: storeID})
}

// Remove quita la tienda de favoritos.
func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, storeID int64) error {
	removed, err := uc.favorites.Remove(ctx, userID, storeID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrFavoriteNotFound
	}
	return nil
}
