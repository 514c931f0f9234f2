package postgres

import (
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registra el dialecto
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/shopspring/decimal"

	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

// Constructor de consultas dinámicas. Filtros y orden sólo se traducen desde listas
// blancas de columnas; los valores del usuario viajan siempre como parámetros ($n).
var dialect = goqu.Dialect("postgres")

const avgRatingExpr = "COALESCE(AVG(r.rating_value), 0)"

// escapeLike neutraliza los comodines de LIKE en texto de búsqueda.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}

func direction(col exp.IdentifierExpression, order string, defaultDesc bool) exp.OrderedExpression {
	switch strings.ToLower(order) {
	case "asc":
		return col.Asc()
	case "desc":
		return col.Desc()
	}
	if defaultDesc {
		return col.Desc()
	}
	return col.Asc()
}

// countOf envuelve un dataset ya filtrado (con GROUP BY/HAVING) para contar filas.
func countOf(ds *goqu.SelectDataset) *goqu.SelectDataset {
	return dialect.From(ds.As("t")).Select(goqu.COUNT(goqu.Star())).Prepared(true)
}

func page(ds *goqu.SelectDataset, limit, offset int) *goqu.SelectDataset {
	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}
	if offset > 0 {
		ds = ds.Offset(uint(offset))
	}
	return ds
}

// ── Tiendas ───────────────────────────────────────────────────────────────────

var storeSummaryColumns = []interface{}{
	goqu.I("s.id"), goqu.I("s.name"), goqu.I("s.address"), goqu.I("s.owner_id"),
	goqu.L("COALESCE(s.photo_url, '')"), goqu.L("COALESCE(s.description, '')"),
	goqu.L("COALESCE(s.phone, '')"), goqu.L("COALESCE(s.email, '')"),
	goqu.L("COALESCE(s.website, '')"), goqu.L("COALESCE(s.category, '')"),
	goqu.I("s.is_active"), goqu.I("s.is_verified"), goqu.L("COALESCE(s.status_reason, '')"),
	goqu.I("s.created_at"), goqu.I("s.updated_at"),
	goqu.I("u.name").As("owner_name"), goqu.I("u.email").As("owner_email"),
	goqu.COUNT(goqu.I("r.id")).As("rating_count"),
	goqu.L(avgRatingExpr).As("average_rating"),
}

// storeSummaryBase tienda + dueño + agregados de calificaciones, agrupado por tienda.
func storeSummaryBase(extra ...interface{}) *goqu.SelectDataset {
	cols := append(append([]interface{}{}, storeSummaryColumns...), extra...)
	return dialect.From(goqu.T("stores").As("s")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("s.owner_id")))).
		LeftJoin(goqu.T("ratings").As("r"), goqu.On(goqu.I("r.store_id").Eq(goqu.I("s.id")))).
		Select(cols...).
		GroupBy(goqu.I("s.id"), goqu.I("u.id")).
		Prepared(true)
}

// filteredStores aplica los filtros del listado público.
func filteredStores(f repository.StoreFilter) *goqu.SelectDataset {
	ds := storeSummaryBase()
	if f.Search != "" {
		p := escapeLike(f.Search)
		ds = ds.Where(goqu.Or(goqu.I("s.name").ILike(p), goqu.I("s.address").ILike(p)))
	}
	if f.Category != "" {
		ds = ds.Where(goqu.I("s.category").Eq(f.Category))
	}
	if f.Active != nil {
		ds = ds.Where(goqu.I("s.is_active").Eq(*f.Active))
	}
	if f.Verified != nil {
		ds = ds.Where(goqu.I("s.is_verified").Eq(*f.Verified))
	}
	if f.MinRating != nil {
		ds = ds.Having(goqu.L(avgRatingExpr).Gte(decimal.NewFromFloat(*f.MinRating)))
	}
	if f.MaxRating != nil {
		ds = ds.Having(goqu.L(avgRatingExpr).Lte(decimal.NewFromFloat(*f.MaxRating)))
	}
	return ds
}

// storeOrder traduce sortBy/sortOrder a columnas permitidas; lo desconocido cae en "name".
func storeOrder(sortBy, sortOrder string) []exp.OrderedExpression {
	switch sortBy {
	case "rating":
		return []exp.OrderedExpression{goqu.I("average_rating").Desc(), goqu.I("rating_count").Desc(), goqu.I("s.id").Asc()}
	case "rating_count":
		return []exp.OrderedExpression{goqu.I("rating_count").Desc(), goqu.I("s.id").Asc()}
	case "created_at":
		return []exp.OrderedExpression{goqu.I("s.created_at").Desc(), goqu.I("s.id").Desc()}
	case "updated_at":
		return []exp.OrderedExpression{goqu.I("s.updated_at").Desc(), goqu.I("s.id").Desc()}
	case "category":
		return []exp.OrderedExpression{goqu.I("s.category").Asc(), goqu.I("s.name").Asc(), goqu.I("s.id").Asc()}
	default:
		return []exp.OrderedExpression{direction(goqu.I("s.name"), sortOrder, false), goqu.I("s.id").Asc()}
	}
}

// storeListQueries devuelve la consulta paginada y la de conteo total.
func storeListQueries(f repository.StoreFilter) (list, count *goqu.SelectDataset) {
	ds := filteredStores(f)
	list = page(ds.Order(storeOrder(f.SortBy, f.SortOrder)...), f.Limit, f.Offset)
	return list, countOf(ds)
}

// adminStoreListQueries listado de administración con clientes únicos.
func adminStoreListQueries(f repository.AdminStoreFilter) (list, count *goqu.SelectDataset) {
	ds := storeSummaryBase(goqu.L("COUNT(DISTINCT r.user_id)").As("unique_customers"))
	if f.Search != "" {
		p := escapeLike(f.Search)
		ds = ds.Where(goqu.Or(
			goqu.I("s.name").ILike(p),
			goqu.I("s.address").ILike(p),
			goqu.I("u.name").ILike(p),
		))
	}
	if f.Category != "" {
		ds = ds.Where(goqu.I("s.category").Eq(f.Category))
	}
	if f.Active != nil {
		ds = ds.Where(goqu.I("s.is_active").Eq(*f.Active))
	}
	if f.DateFrom != nil {
		ds = ds.Where(goqu.I("s.created_at").Gte(*f.DateFrom))
	}
	if f.DateTo != nil {
		ds = ds.Where(goqu.I("s.created_at").Lt(*f.DateTo))
	}

	var order exp.OrderedExpression
	switch f.SortBy {
	case "name":
		order = direction(goqu.I("s.name"), f.SortOrder, false)
	case "avg_rating":
		order = direction(goqu.I("average_rating"), f.SortOrder, true)
	default:
		order = direction(goqu.I("s.created_at"), f.SortOrder, true)
	}
	list = page(ds.Order(order, goqu.I("s.id").Desc()), f.Limit, f.Offset)
	return list, countOf(ds)
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

var userColumns = []interface{}{
	goqu.I("u.id"), goqu.I("u.name"), goqu.I("u.email"), goqu.I("u.password_hash"), goqu.I("u.role"),
	goqu.L("COALESCE(u.address, '')"), goqu.I("u.is_active"), goqu.L("COALESCE(u.status_reason, '')"),
	goqu.I("u.created_at"), goqu.I("u.updated_at"),
}

func userWithStatsBase() *goqu.SelectDataset {
	cols := append(append([]interface{}{}, userColumns...),
		goqu.COUNT(goqu.I("r.id")).As("total_ratings"),
		goqu.L(avgRatingExpr).As("avg_rating"),
		goqu.L("COUNT(DISTINCT r.store_id)").As("stores_rated"),
		goqu.L("(SELECT COUNT(*) FROM stores os WHERE os.owner_id = u.id)").As("stores_owned"),
		goqu.MAX(goqu.I("r.created_at")).As("last_rating_date"),
	)
	return dialect.From(goqu.T("users").As("u")).
		LeftJoin(goqu.T("ratings").As("r"), goqu.On(goqu.I("r.user_id").Eq(goqu.I("u.id")))).
		Select(cols...).
		GroupBy(goqu.I("u.id")).
		Prepared(true)
}

// userListQueries listado de administración de usuarios.
func userListQueries(f repository.UserFilter) (list, count *goqu.SelectDataset) {
	ds := userWithStatsBase()
	if f.Search != "" {
		p := escapeLike(f.Search)
		ds = ds.Where(goqu.Or(
			goqu.I("u.name").ILike(p),
			goqu.I("u.email").ILike(p),
			goqu.I("u.address").ILike(p),
		))
	}
	if f.Role != "" {
		ds = ds.Where(goqu.I("u.role").Eq(f.Role))
	}
	if f.Active != nil {
		ds = ds.Where(goqu.I("u.is_active").Eq(*f.Active))
	}
	if f.DateFrom != nil {
		ds = ds.Where(goqu.I("u.created_at").Gte(*f.DateFrom))
	}
	if f.DateTo != nil {
		ds = ds.Where(goqu.I("u.created_at").Lt(*f.DateTo))
	}

	var order exp.OrderedExpression
	switch f.SortBy {
	case "name":
		order = direction(goqu.I("u.name"), f.SortOrder, false)
	case "email":
		order = direction(goqu.I("u.email"), f.SortOrder, false)
	default:
		order = direction(goqu.I("u.created_at"), f.SortOrder, true)
	}
	list = page(ds.Order(order, goqu.I("u.id").Desc()), f.Limit, f.Offset)
	return list, countOf(ds)
}

// ── Calificaciones ────────────────────────────────────────────────────────────

var ratingViewColumns = []interface{}{
	goqu.I("r.id"), goqu.I("r.user_id"), goqu.I("r.store_id"), goqu.I("r.rating_value"), goqu.I("r.status"),
	goqu.L("COALESCE(r.rejection_reason, '')"), goqu.L("COALESCE(r.review_text, '')"),
	goqu.L("COALESCE(r.owner_response, '')"), goqu.I("r.created_at"), goqu.I("r.updated_at"),
	goqu.I("u.name").As("user_name"), goqu.I("u.email").As("user_email"),
	goqu.I("s.name").As("store_name"), goqu.I("s.address").As("store_address"),
	goqu.L("COALESCE(s.category, '')"), goqu.I("s.is_verified"),
	goqu.L("(SELECT COALESCE(AVG(x.rating_value), 0) FROM ratings x WHERE x.store_id = r.store_id)").As("store_average_rating"),
	goqu.L("(SELECT COUNT(*) FROM ratings x WHERE x.store_id = r.store_id)").As("store_rating_count"),
}

// ratingListQueries sirve al listado de moderación y a las vistas por tienda/usuario.
func ratingListQueries(f repository.RatingFilter) (list, count *goqu.SelectDataset) {
	ds := dialect.From(goqu.T("ratings").As("r")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.user_id")))).
		Join(goqu.T("stores").As("s"), goqu.On(goqu.I("s.id").Eq(goqu.I("r.store_id")))).
		Select(ratingViewColumns...).
		Prepared(true)

	if f.Search != "" {
		p := escapeLike(f.Search)
		ds = ds.Where(goqu.Or(
			goqu.I("r.review_text").ILike(p),
			goqu.I("u.name").ILike(p),
			goqu.I("s.name").ILike(p),
		))
	}
	if f.Value > 0 {
		ds = ds.Where(goqu.I("r.rating_value").Eq(f.Value))
	}
	if f.MaxValue > 0 {
		ds = ds.Where(goqu.I("r.rating_value").Lte(f.MaxValue))
	}
	if f.StoreID > 0 {
		ds = ds.Where(goqu.I("r.store_id").Eq(f.StoreID))
	}
	if f.UserID > 0 {
		ds = ds.Where(goqu.I("r.user_id").Eq(f.UserID))
	}
	if f.Status != "" {
		ds = ds.Where(goqu.I("r.status").Eq(f.Status))
	}
	if f.DateFrom != nil {
		ds = ds.Where(goqu.I("r.created_at").Gte(*f.DateFrom))
	}
	if f.DateTo != nil {
		ds = ds.Where(goqu.I("r.created_at").Lt(*f.DateTo))
	}

	list = page(ds.Order(goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc()), f.Limit, f.Offset)
	return list, countOf(ds)
}
