package repository

import (
	"context"
	"time"

	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
)

// FavoriteView tienda favorita con sus agregados.
type FavoriteView struct {
	StoreSummary
	FavoritedAt time.Time
}

// FavoriteRepository define el puerto de persistencia para favoritos.
type FavoriteRepository interface {
	// Add devuelve un error de conflicto si la pareja ya existe.
	Add(ctx context.Context, fav *entity.Favorite) error
	Remove(ctx context.Context, userID, storeID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]FavoriteView, error)
}
