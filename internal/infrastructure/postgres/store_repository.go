package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"

	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador; q puede ser el pool o una transacción.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeSelect = `
	SELECT id, name, address, owner_id, COALESCE(photo_url, ''), COALESCE(description, ''),
	       COALESCE(phone, ''), COALESCE(email, ''), COALESCE(website, ''), COALESCE(category, ''),
	       is_active, is_verified, COALESCE(status_reason, ''), created_at, updated_at
	FROM stores`

func storeDest(s *entity.Store) []any {
	return []any{&s.ID, &s.Name, &s.Address, &s.OwnerID, &s.PhotoURL, &s.Description,
		&s.Phone, &s.Email, &s.Website, &s.Category,
		&s.IsActive, &s.IsVerified, &s.StatusReason, &s.CreatedAt, &s.UpdatedAt}
}

func scanStore(row pgx.Row) (*entity.Store, error) {
	var s entity.Store
	if err := row.Scan(storeDest(&s)...); err != nil {
		return nil, err
	}
	return &s, nil
}

func summaryDest(s *repository.StoreSummary) []any {
	return append(storeDest(&s.Store), &s.OwnerName, &s.OwnerEmail, &s.RatingCount, &s.AverageRating)
}

func scanSummary(row pgx.Row) (*repository.StoreSummary, error) {
	var s repository.StoreSummary
	if err := row.Scan(summaryDest(&s)...); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanAdminView(row pgx.Row) (*repository.StoreAdminView, error) {
	var v repository.StoreAdminView
	if err := row.Scan(append(summaryDest(&v.StoreSummary), &v.UniqueCustomers)...); err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserta la tienda y completa ID y timestamps.
func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) error {
	query := `
		INSERT INTO stores (name, address, owner_id, photo_url, description, phone, email, website, category,
		                    is_active, is_verified)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''),
		        NULLIF($9, ''), $10, $11)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		s.Name, s.Address, s.OwnerID, s.PhotoURL, s.Description, s.Phone, s.Email, s.Website, s.Category,
		s.IsActive, s.IsVerified,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return translateError("insert store", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID; (nil, nil) si no existe.
func (r *StoreRepo) GetByID(ctx context.Context, id int64) (*entity.Store, error) {
	s, err := scanStore(r.q.QueryRow(ctx, storeSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return s, nil
}

// NameExistsForOwner indica si el dueño ya tiene una tienda con ese nombre (sin mayúsculas).
func (r *StoreRepo) NameExistsForOwner(ctx context.Context, ownerID int64, name string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM stores WHERE owner_id = $1 AND LOWER(name) = LOWER($2))`,
		ownerID, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check store name: %w", err)
	}
	return exists, nil
}

// Update persiste todos los campos editables.
func (r *StoreRepo) Update(ctx context.Context, s *entity.Store) error {
	query := `
		UPDATE stores
		SET name = $2, address = $3, photo_url = NULLIF($4, ''), description = NULLIF($5, ''),
		    phone = NULLIF($6, ''), email = NULLIF($7, ''), website = NULLIF($8, ''),
		    category = NULLIF($9, ''), is_active = $10, is_verified = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		s.ID, s.Name, s.Address, s.PhotoURL, s.Description, s.Phone, s.Email, s.Website, s.Category,
		s.IsActive, s.IsVerified,
	).Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrStoreNotFound
		}
		return translateError("update store", err)
	}
	return nil
}

// Delete elimina la tienda; sus calificaciones y favoritos caen en cascada.
func (r *StoreRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete store: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *StoreRepo) collectSummaries(rows pgx.Rows) ([]repository.StoreSummary, error) {
	defer rows.Close()
	list := make([]repository.StoreSummary, 0)
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, *s)
	}
	return list, rows.Err()
}

func (r *StoreRepo) collectAdminViews(rows pgx.Rows) ([]repository.StoreAdminView, error) {
	defer rows.Close()
	list := make([]repository.StoreAdminView, 0)
	for rows.Next() {
		v, err := scanAdminView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, *v)
	}
	return list, rows.Err()
}

// List listado público paginado con agregados.
func (r *StoreRepo) List(ctx context.Context, f repository.StoreFilter) ([]repository.StoreSummary, int64, error) {
	listDS, countDS := storeListQueries(f)
	total, err := queryCount(ctx, r.q, countDS)
	if err != nil {
		return nil, 0, fmt.Errorf("count stores: %w", err)
	}
	rows, err := queryDataset(ctx, r.q, listDS)
	if err != nil {
		return nil, 0, fmt.Errorf("list stores: %w", err)
	}
	list, err := r.collectSummaries(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListActive todas las tiendas activas ordenadas por nombre.
func (r *StoreRepo) ListActive(ctx context.Context) ([]repository.StoreSummary, error) {
	ds := storeSummaryBase().
		Where(goqu.I("s.is_active").IsTrue()).
		Order(goqu.I("s.name").Asc(), goqu.I("s.id").Asc())
	rows, err := queryDataset(ctx, r.q, ds)
	if err != nil {
		return nil, fmt.Errorf("list active stores: %w", err)
	}
	return r.collectSummaries(rows)
}

// GetSummary tienda con dueño y agregados; (nil, nil) si no existe.
func (r *StoreRepo) GetSummary(ctx context.Context, id int64) (*repository.StoreSummary, error) {
	row, err := queryRowDataset(ctx, r.q, storeSummaryBase().Where(goqu.I("s.id").Eq(id)))
	if err != nil {
		return nil, err
	}
	s, err := scanSummary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store summary: %w", err)
	}
	return s, nil
}

// Categories categorías distintas de tiendas activas, ordenadas.
func (r *StoreRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `
		SELECT DISTINCT category FROM stores
		WHERE category IS NOT NULL AND category <> '' AND is_active
		ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListByOwner tiendas del dueño, más recientes primero.
func (r *StoreRepo) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Store, error) {
	rows, err := r.q.Query(ctx, storeSelect+` WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner stores: %w", err)
	}
	defer rows.Close()
	list := make([]entity.Store, 0)
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, *s)
	}
	return list, rows.Err()
}

// SetStatus approve=true activa y verifica; approve=false desactiva. El motivo queda en status_reason.
func (r *StoreRepo) SetStatus(ctx context.Context, ids []int64, approve bool, reason string) (int64, error) {
	var query string
	if approve {
		query = `UPDATE stores SET is_active = TRUE, is_verified = TRUE, status_reason = NULLIF($2, ''), updated_at = NOW()
		         WHERE id = ANY($1)`
	} else {
		query = `UPDATE stores SET is_active = FALSE, status_reason = NULLIF($2, ''), updated_at = NOW()
		         WHERE id = ANY($1)`
	}
	tag, err := r.q.Exec(ctx, query, ids, reason)
	if err != nil {
		return 0, fmt.Errorf("bulk store status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// AdminList listado paginado del panel de administración.
func (r *StoreRepo) AdminList(ctx context.Context, f repository.AdminStoreFilter) ([]repository.StoreAdminView, int64, error) {
	listDS, countDS := adminStoreListQueries(f)
	total, err := queryCount(ctx, r.q, countDS)
	if err != nil {
		return nil, 0, fmt.Errorf("count stores: %w", err)
	}
	rows, err := queryDataset(ctx, r.q, listDS)
	if err != nil {
		return nil, 0, fmt.Errorf("admin list stores: %w", err)
	}
	list, err := r.collectAdminViews(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func adminViewBase() *goqu.SelectDataset {
	return storeSummaryBase(goqu.L("COUNT(DISTINCT r.user_id)").As("unique_customers"))
}

// AdminGet vista de administración de una tienda; (nil, nil) si no existe.
func (r *StoreRepo) AdminGet(ctx context.Context, id int64) (*repository.StoreAdminView, error) {
	row, err := queryRowDataset(ctx, r.q, adminViewBase().Where(goqu.I("s.id").Eq(id)))
	if err != nil {
		return nil, err
	}
	v, err := scanAdminView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("admin get store: %w", err)
	}
	return v, nil
}

// Analytics métricas históricas y de los últimos 30 días.
func (r *StoreRepo) Analytics(ctx context.Context, id int64) (repository.StoreAnalytics, error) {
	var a repository.StoreAnalytics
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(rating_value), 0),
		       COUNT(DISTINCT user_id),
		       COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '30 days'),
		       COALESCE(AVG(rating_value) FILTER (WHERE created_at >= NOW() - INTERVAL '30 days'), 0),
		       COUNT(DISTINCT user_id) FILTER (WHERE created_at >= NOW() - INTERVAL '30 days'),
		       COUNT(*) FILTER (WHERE rating_value <= 2),
		       COUNT(*) FILTER (WHERE rating_value >= 4)
		FROM ratings WHERE store_id = $1`, id,
	).Scan(&a.TotalRatings, &a.AvgRating, &a.UniqueCustomers,
		&a.RatingsLast30Days, &a.AvgRatingLast30Days, &a.UniqueCustomersLast30Days,
		&a.LowRatingsCount, &a.HighRatingsCount)
	if err != nil {
		return a, fmt.Errorf("store analytics: %w", err)
	}
	return a, nil
}

// NeedingAttention tiendas inactivas, con promedio bajo o sin verificar por más de 7 días.
func (r *StoreRepo) NeedingAttention(ctx context.Context, limit int) ([]repository.StoreAdminView, error) {
	ds := adminViewBase().
		Having(goqu.Or(
			goqu.L("NOT s.is_active"),
			goqu.L(avgRatingExpr+" < 3"),
			goqu.L("NOT s.is_verified AND s.created_at < NOW() - INTERVAL '7 days'"),
		)).
		Order(goqu.I("s.created_at").Desc(), goqu.I("s.id").Desc())
	ds = page(ds, limit, 0)
	rows, err := queryDataset(ctx, r.q, ds)
	if err != nil {
		return nil, fmt.Errorf("stores needing attention: %w", err)
	}
	return r.collectAdminViews(rows)
}

// Counts conteos globales de tiendas.
func (r *StoreRepo) Counts(ctx context.Context) (repository.StoreCounts, error) {
	var c repository.StoreCounts
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_active),
		       COUNT(*) FILTER (WHERE NOT is_active),
		       COUNT(*) FILTER (WHERE is_verified),
		       COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '30 days'),
		       COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '7 days')
		FROM stores`,
	).Scan(&c.Total, &c.Active, &c.Inactive, &c.Verified, &c.NewLast30Days, &c.NewLast7Days)
	if err != nil {
		return c, fmt.Errorf("store counts: %w", err)
	}
	return c, nil
}

// Recent últimas tiendas creadas con sus agregados.
func (r *StoreRepo) Recent(ctx context.Context, limit int) ([]repository.StoreSummary, error) {
	ds := page(storeSummaryBase().Order(goqu.I("s.created_at").Desc(), goqu.I("s.id").Desc()), limit, 0)
	rows, err := queryDataset(ctx, r.q, ds)
	if err != nil {
		return nil, fmt.Errorf("recent stores: %w", err)
	}
	return r.collectSummaries(rows)
}
