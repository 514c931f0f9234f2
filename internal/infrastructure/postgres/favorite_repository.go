package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

var _ repository.FavoriteRepository = (*FavoriteRepo)(nil)

// ErrAlreadyFavorite la pareja (usuario, tienda) ya está en favoritos.
var ErrAlreadyFavorite = domain.NewError(domain.ErrConflict, "Store already in favorites")

// FavoriteRepo implementación del puerto FavoriteRepository.
type FavoriteRepo struct {
	q Querier
}

// NewFavoriteRepository construye el adaptador de favoritos.
func NewFavoriteRepository(q Querier) *FavoriteRepo {
	return &FavoriteRepo{q: q}
}

// Add marca la tienda como favorita.
func (r *FavoriteRepo) Add(ctx context.Context, fav *entity.Favorite) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO user_favorites (user_id, store_id) VALUES ($1, $2)
		RETURNING id, created_at`, fav.UserID, fav.StoreID,
	).Scan(&fav.ID, &fav.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyFavorite
		}
		return translateError("add favorite", err)
	}
	return nil
}

// Remove quita la tienda de favoritos; false si no estaba.
func (r *FavoriteRepo) Remove(ctx context.Context, userID, storeID int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM user_favorites WHERE user_id = $1 AND store_id = $2`, userID, storeID)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByUser tiendas activas favoritas del usuario, las más recientes primero.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]repository.FavoriteView, error) {
	ds := storeSummaryBase(goqu.I("f.created_at").As("favorited_at")).
		Join(goqu.T("user_favorites").As("f"), goqu.On(goqu.I("f.store_id").Eq(goqu.I("s.id")))).
		Where(goqu.I("f.user_id").Eq(userID), goqu.I("s.is_active").IsTrue()).
		GroupBy(goqu.I("s.id"), goqu.I("u.id"), goqu.I("f.id")).
		Order(goqu.I("f.created_at").Desc(), goqu.I("f.id").Desc())
	rows, err := queryDataset(ctx, r.q, page(ds, limit, 0))
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	list := make([]repository.FavoriteView, 0)
	for rows.Next() {
		var v repository.FavoriteView
		if err := rows.Scan(append(summaryDest(&v.StoreSummary), &v.FavoritedAt)...); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
