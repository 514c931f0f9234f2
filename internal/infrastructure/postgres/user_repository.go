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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userSelect = `
	SELECT id, name, email, password_hash, role, COALESCE(address, ''), is_active,
	       COALESCE(status_reason, ''), created_at, updated_at
	FROM users`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Address, &u.IsActive,
		&u.StatusReason, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario y completa ID y timestamps.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, role, address, is_active)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Role, user.Address, user.IsActive,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return translateError("insert user", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, userSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email (comparación sin mayúsculas).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, userSelect+` WHERE LOWER(email) = LOWER($1) LIMIT 1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// EmailTaken indica si otro usuario ya usa el email.
func (r *UserRepo) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var taken bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1) AND id <> $2)`,
		email, excludeID,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return taken, nil
}

// Update actualiza los datos editables de un usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, role = $4, address = NULLIF($5, ''), is_active = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.Role, user.Address, user.IsActive,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return translateError("update user", err)
	}
	return nil
}

// UpdatePassword reemplaza el hash de la contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	tag, err := r.q.Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, hash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete elimina un usuario; las FK en cascada borran sus tiendas, calificaciones y favoritos.
func (r *UserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetActive activa o desactiva un conjunto de usuarios en una sola sentencia.
func (r *UserRepo) SetActive(ctx context.Context, ids []int64, active bool, reason string) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE users SET is_active = $2, status_reason = NULLIF($3, ''), updated_at = NOW()
		WHERE id = ANY($1)`, ids, active, reason)
	if err != nil {
		return 0, fmt.Errorf("bulk set active: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanUserWithStats(row pgx.Row) (*repository.UserWithStats, error) {
	var u repository.UserWithStats
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Address, &u.IsActive,
		&u.StatusReason, &u.CreatedAt, &u.UpdatedAt,
		&u.TotalRatings, &u.AvgRating, &u.StoresRated, &u.StoresOwned, &u.LastRatingDate)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List devuelve la página pedida y el total de coincidencias.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]repository.UserWithStats, int64, error) {
	listDS, countDS := userListQueries(f)

	total, err := queryCount(ctx, r.q, countDS)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	rows, err := queryDataset(ctx, r.q, listDS)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	list := make([]repository.UserWithStats, 0, f.Limit)
	for rows.Next() {
		u, err := scanUserWithStats(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, *u)
	}
	return list, total, rows.Err()
}

// GetWithStats usuario con sus agregados.
func (r *UserRepo) GetWithStats(ctx context.Context, id int64) (*repository.UserWithStats, error) {
	row, err := queryRowDataset(ctx, r.q, userWithStatsBase().Where(goqu.I("u.id").Eq(id)))
	if err != nil {
		return nil, err
	}
	u, err := scanUserWithStats(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user details: %w", err)
	}
	return u, nil
}

// Recent últimos usuarios registrados.
func (r *UserRepo) Recent(ctx context.Context, limit int) ([]entity.User, error) {
	rows, err := r.q.Query(ctx, userSelect+` ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent users: %w", err)
	}
	defer rows.Close()
	list := make([]entity.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, *u)
	}
	return list, rows.Err()
}

// Counts conteos globales por rol, estado y antigüedad.
func (r *UserRepo) Counts(ctx context.Context) (repository.UserCounts, error) {
	var c repository.UserCounts
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_active),
		       COUNT(*) FILTER (WHERE role = 'normal_user'),
		       COUNT(*) FILTER (WHERE role = 'store_owner'),
		       COUNT(*) FILTER (WHERE role = 'admin'),
		       COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '30 days'),
		       COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '7 days')
		FROM users`,
	).Scan(&c.Total, &c.Active, &c.NormalUsers, &c.StoreOwners, &c.Admins, &c.NewLast30Days, &c.NewLast7Days)
	if err != nil {
		return c, fmt.Errorf("user counts: %w", err)
	}
	return c, nil
}
