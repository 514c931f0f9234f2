package postgres

import (
	"context"
	"fmt"

	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura para los paneles.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// RatingOverall total, promedio, mínimo y máximo de todas las calificaciones.
func (r *StatsRepo) RatingOverall(ctx context.Context) (repository.RatingOverall, error) {
	var o repository.RatingOverall
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(AVG(rating_value), 0),
		       COALESCE(MIN(rating_value), 0), COALESCE(MAX(rating_value), 0)
		FROM ratings`,
	).Scan(&o.Total, &o.Average, &o.Min, &o.Max)
	if err != nil {
		return o, fmt.Errorf("stats.RatingOverall: %w", err)
	}
	return o, nil
}

// RatingDistribution cantidad por valor; siempre devuelve los cinco valores.
func (r *StatsRepo) RatingDistribution(ctx context.Context) ([]repository.ValueCount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT v.value, COUNT(r.id)
		FROM generate_series(1, 5) AS v(value)
		LEFT JOIN ratings r ON r.rating_value = v.value
		GROUP BY v.value
		ORDER BY v.value`)
	if err != nil {
		return nil, fmt.Errorf("stats.RatingDistribution: %w", err)
	}
	defer rows.Close()

	out := make([]repository.ValueCount, 0, 5)
	for rows.Next() {
		var vc repository.ValueCount
		if err := rows.Scan(&vc.Value, &vc.Count); err != nil {
			return nil, fmt.Errorf("stats.RatingDistribution scan: %w", err)
		}
		out = append(out, vc)
	}
	return out, rows.Err()
}

// StatusDistribution cantidad por estado de moderación.
func (r *StatsRepo) StatusDistribution(ctx context.Context) ([]repository.StatusCount, error) {
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM ratings GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("stats.StatusDistribution: %w", err)
	}
	defer rows.Close()

	var out []repository.StatusCount
	for rows.Next() {
		var sc repository.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("stats.StatusDistribution scan: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// DailyRatings calificaciones por día en la ventana indicada, el día más reciente primero.
func (r *StatsRepo) DailyRatings(ctx context.Context, days int) ([]repository.DailyCount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT DATE_TRUNC('day', created_at) AS day, COUNT(*), COALESCE(AVG(rating_value), 0)
		FROM ratings
		WHERE created_at >= NOW() - make_interval(days => $1)
		GROUP BY day
		ORDER BY day DESC`, days)
	if err != nil {
		return nil, fmt.Errorf("stats.DailyRatings: %w", err)
	}
	defer rows.Close()

	var out []repository.DailyCount
	for rows.Next() {
		var d repository.DailyCount
		if err := rows.Scan(&d.Day, &d.Count, &d.Average); err != nil {
			return nil, fmt.Errorf("stats.DailyRatings scan: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// StoreRanking mejores (o peores, si ascending) tiendas activas por promedio.
func (r *StatsRepo) StoreRanking(ctx context.Context, limit, minRatings int, ascending bool) ([]repository.StoreRank, error) {
	order := "DESC"
	if ascending {
		order = "ASC"
	}
	query := fmt.Sprintf(`
		SELECT s.id, s.name, COUNT(r.id), COALESCE(AVG(r.rating_value), 0) AS avg_rating
		FROM stores s
		JOIN ratings r ON r.store_id = s.id
		WHERE s.is_active
		GROUP BY s.id
		HAVING COUNT(r.id) >= $1
		ORDER BY avg_rating %s, COUNT(r.id) DESC, s.id
		LIMIT $2`, order)
	rows, err := r.q.Query(ctx, query, minRatings, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.StoreRanking: %w", err)
	}
	defer rows.Close()

	var out []repository.StoreRank
	for rows.Next() {
		var sr repository.StoreRank
		if err := rows.Scan(&sr.StoreID, &sr.Name, &sr.RatingCount, &sr.Average); err != nil {
			return nil, fmt.Errorf("stats.StoreRanking scan: %w", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

// OwnerStats agregados de todas las tiendas de un dueño.
// PendingReviews cuenta reseñas con texto que aún no tienen respuesta del dueño.
func (r *StatsRepo) OwnerStats(ctx context.Context, ownerID int64) (repository.OwnerStats, error) {
	var s repository.OwnerStats
	err := r.q.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM stores WHERE owner_id = $1),
		       COUNT(r.id),
		       COALESCE(AVG(r.rating_value), 0),
		       COUNT(DISTINCT r.user_id),
		       COUNT(r.id) FILTER (WHERE COALESCE(r.review_text, '') <> '' AND r.owner_response IS NULL)
		FROM ratings r
		JOIN stores s ON s.id = r.store_id
		WHERE s.owner_id = $1`, ownerID,
	).Scan(&s.TotalStores, &s.TotalRatings, &s.Average, &s.TotalCustomers, &s.PendingReviews)
	if err != nil {
		return s, fmt.Errorf("stats.OwnerStats: %w", err)
	}
	return s, nil
}

// OwnerCustomers usuarios que calificaron alguna tienda del dueño, el más reciente primero.
func (r *StatsRepo) OwnerCustomers(ctx context.Context, ownerID int64) ([]repository.OwnerCustomer, error) {
	rows, err := r.q.Query(ctx, `
		SELECT u.id, u.name, u.email, COUNT(r.id), COALESCE(AVG(r.rating_value), 0), MAX(r.created_at)
		FROM ratings r
		JOIN stores s ON s.id = r.store_id
		JOIN users u ON u.id = r.user_id
		WHERE s.owner_id = $1
		GROUP BY u.id
		ORDER BY MAX(r.created_at) DESC, u.id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("stats.OwnerCustomers: %w", err)
	}
	defer rows.Close()

	out := make([]repository.OwnerCustomer, 0)
	for rows.Next() {
		var c repository.OwnerCustomer
		if err := rows.Scan(&c.UserID, &c.Name, &c.Email, &c.TotalReviews, &c.Average, &c.LastRatingDate); err != nil {
			return nil, fmt.Errorf("stats.OwnerCustomers scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UserRatingStats agregados de las calificaciones hechas por un usuario.
func (r *StatsRepo) UserRatingStats(ctx context.Context, userID int64) (repository.UserRatingStats, error) {
	var s repository.UserRatingStats
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(AVG(rating_value), 0), COUNT(DISTINCT store_id),
		       COUNT(*) FILTER (WHERE rating_value >= 4)
		FROM ratings WHERE user_id = $1`, userID,
	).Scan(&s.TotalRatings, &s.Average, &s.RatedStores, &s.FavoriteStores)
	if err != nil {
		return s, fmt.Errorf("stats.UserRatingStats: %w", err)
	}
	return s, nil
}
