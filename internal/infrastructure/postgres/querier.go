package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es el subconjunto común de *pgxpool.Pool y pgx.Tx que usan los repositorios,
// de modo que el mismo repositorio sirve dentro y fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// queryCount ejecuta un dataset de conteo construido con countOf.
func queryCount(ctx context.Context, q Querier, ds *goqu.SelectDataset) (int64, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return 0, err
	}
	var total int64
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// queryDataset ejecuta un dataset de goqu y devuelve las filas sin consumir.
func queryDataset(ctx context.Context, q Querier, ds *goqu.SelectDataset) (pgx.Rows, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.Query(ctx, query, args...)
}

// queryRowDataset variante de fila única.
func queryRowDataset(ctx context.Context, q Querier, ds *goqu.SelectDataset) (pgx.Row, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.QueryRow(ctx, query, args...), nil
}
