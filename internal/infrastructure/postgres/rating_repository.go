package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

var _ repository.RatingRepository = (*RatingRepo)(nil)

// RatingRepo implementación del puerto RatingRepository sobre PostgreSQL.
type RatingRepo struct {
	q Querier
}

// NewRatingRepository construye el adaptador de calificaciones.
func NewRatingRepository(q Querier) *RatingRepo {
	return &RatingRepo{q: q}
}

// Upsert usa la restricción única (user_id, store_id) para que dos envíos concurrentes
// terminen siempre en una sola fila. Con estado inicial "pending" una edición vuelve a moderación.
func (r *RatingRepo) Upsert(ctx context.Context, rt *entity.Rating) (bool, error) {
	query := `
		INSERT INTO ratings (user_id, store_id, rating_value, review_text, status)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		ON CONFLICT ON CONSTRAINT uq_ratings_user_store DO UPDATE
		SET rating_value = EXCLUDED.rating_value,
		    review_text = EXCLUDED.review_text,
		    status = CASE WHEN EXCLUDED.status = 'pending' THEN 'pending' ELSE ratings.status END,
		    rejection_reason = CASE WHEN EXCLUDED.status = 'pending' THEN NULL ELSE ratings.rejection_reason END,
		    updated_at = NOW()
		RETURNING id, status, COALESCE(rejection_reason, ''), COALESCE(owner_response, ''),
		          created_at, updated_at, (xmax = 0) AS inserted`
	var inserted bool
	err := r.q.QueryRow(ctx, query, rt.UserID, rt.StoreID, rt.Value, rt.ReviewText, rt.Status).
		Scan(&rt.ID, &rt.Status, &rt.RejectionReason, &rt.OwnerResponse, &rt.CreatedAt, &rt.UpdatedAt, &inserted)
	if err != nil {
		return false, translateError("upsert rating", err)
	}
	return inserted, nil
}

// GetByID obtiene una calificación; (nil, nil) si no existe.
func (r *RatingRepo) GetByID(ctx context.Context, id int64) (*entity.Rating, error) {
	var rt entity.Rating
	err := r.q.QueryRow(ctx, `
		SELECT id, user_id, store_id, rating_value, status, COALESCE(rejection_reason, ''),
		       COALESCE(review_text, ''), COALESCE(owner_response, ''), created_at, updated_at
		FROM ratings WHERE id = $1`, id,
	).Scan(&rt.ID, &rt.UserID, &rt.StoreID, &rt.Value, &rt.Status, &rt.RejectionReason,
		&rt.ReviewText, &rt.OwnerResponse, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return &rt, nil
}

// Delete elimina una calificación.
func (r *RatingRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete rating: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteMany elimina varias calificaciones en una sentencia.
func (r *RatingRepo) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM ratings WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk delete ratings: %w", err)
	}
	return tag.RowsAffected(), nil
}

// SetStatus modera varias calificaciones; reason sólo se guarda en rechazos.
func (r *RatingRepo) SetStatus(ctx context.Context, ids []int64, status, reason string) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE ratings
		SET status = $2,
		    rejection_reason = CASE WHEN $2 = 'rejected' THEN NULLIF($3, '') ELSE NULL END,
		    updated_at = NOW()
		WHERE id = ANY($1)`, ids, status, reason)
	if err != nil {
		return 0, translateError("bulk rating status", err)
	}
	return tag.RowsAffected(), nil
}

// SetOwnerResponse guarda (o borra, con texto vacío) la respuesta del dueño.
func (r *RatingRepo) SetOwnerResponse(ctx context.Context, id int64, response string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE ratings SET owner_response = NULLIF($2, ''), updated_at = NOW() WHERE id = $1`, id, response)
	if err != nil {
		return translateError("owner response", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRatingNotFound
	}
	return nil
}

func collectRatingViews(rows pgx.Rows) ([]repository.RatingView, error) {
	defer rows.Close()
	list := make([]repository.RatingView, 0)
	for rows.Next() {
		var v repository.RatingView
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.StoreID, &v.Value, &v.Status,
			&v.RejectionReason, &v.ReviewText, &v.OwnerResponse, &v.CreatedAt, &v.UpdatedAt,
			&v.UserName, &v.UserEmail, &v.StoreName, &v.StoreAddress, &v.StoreCategory, &v.StoreIsVerified,
			&v.StoreAverage, &v.StoreRatingCount,
		); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r *RatingRepo) list(ctx context.Context, f repository.RatingFilter, withCount bool) ([]repository.RatingView, int64, error) {
	listDS, countDS := ratingListQueries(f)
	var total int64
	if withCount {
		var err error
		if total, err = queryCount(ctx, r.q, countDS); err != nil {
			return nil, 0, fmt.Errorf("count ratings: %w", err)
		}
	}
	rows, err := queryDataset(ctx, r.q, listDS)
	if err != nil {
		return nil, 0, fmt.Errorf("list ratings: %w", err)
	}
	list, err := collectRatingViews(rows)
	if err != nil {
		return nil, 0, err
	}
	if !withCount {
		total = int64(len(list))
	}
	return list, total, nil
}

// ListByStore calificaciones de una tienda, más recientes primero.
func (r *RatingRepo) ListByStore(ctx context.Context, storeID int64, limit int) ([]repository.RatingView, error) {
	list, _, err := r.list(ctx, repository.RatingFilter{StoreID: storeID, Limit: limit}, false)
	return list, err
}

// ListByUser calificaciones de un usuario con el total para paginar.
func (r *RatingRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]repository.RatingView, int64, error) {
	return r.list(ctx, repository.RatingFilter{UserID: userID, Limit: limit, Offset: offset}, true)
}

// AdminList listado de moderación filtrado y paginado.
func (r *RatingRepo) AdminList(ctx context.Context, f repository.RatingFilter) ([]repository.RatingView, int64, error) {
	return r.list(ctx, f, true)
}

// AdminFind como AdminList pero sin COUNT(*).
func (r *RatingRepo) AdminFind(ctx context.Context, f repository.RatingFilter) ([]repository.RatingView, error) {
	list, _, err := r.list(ctx, f, false)
	return list, err
}
