package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pankaj-shinde04/store-rating/internal/application/auth"
	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/ports"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
	"github.com/pankaj-shinde04/store-rating/pkg/logger"
)

const (
	adminPageDefault = 10
	adminPageMax     = 100
	recentDefault    = 5
	recentMax        = 50
	dateLayout       = "2006-01-02"
)

var (
	errAdminUserEmailTaken = domain.NewError(domain.ErrConflict, "User with this email already exists")
	errDeleteAdmin         = domain.NewError(domain.ErrForbidden, "Cannot delete admin users")
)

// AdminUserUseCase gestión de usuarios desde el panel de administración.
type AdminUserUseCase struct {
	users      repository.UserRepository
	stores     repository.StoreRepository
	photos     ports.PhotoStorage
	log        *logger.Logger
	bcryptCost int
}

func NewAdminUserUseCase(
	users repository.UserRepository,
	stores repository.StoreRepository,
	photos ports.PhotoStorage,
	log *logger.Logger,
	bcryptCost int,
) *AdminUserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AdminUserUseCase{users: users, stores: stores, photos: photos, log: log, bcryptCost: bcryptCost}
}

// List listado filtrado y paginado con agregados de actividad.
func (uc *AdminUserUseCase) List(ctx context.Context, q dto.AdminUserListQuery) (*dto.AdminUserListResponse, error) {
	page := q.PageQuery.Normalize(adminPageDefault, adminPageMax)
	list, total, err := uc.users.List(ctx, repository.UserFilter{
		Search:    strings.TrimSpace(q.Search),
		Role:      q.Role,
		Active:    statusFilter(q.Status),
		DateFrom:  q.DateFrom,
		DateTo:    q.DateTo,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Limit:     page.Limit,
		Offset:    page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	users := make([]dto.AdminUserResponse, 0, len(list))
	for _, u := range list {
		users = append(users, toAdminUserResponse(u))
	}
	return &dto.AdminUserListResponse{
		Users:      users,
		Pagination: dto.NewAdminPagination(page, total),
		Filters: dto.AdminUserFilters{
			Search:    q.Search,
			Role:      q.Role,
			Status:    q.Status,
			DateFrom:  formatDate(q.DateFrom),
			DateTo:    formatDate(q.DateTo),
			SortBy:    q.SortBy,
			SortOrder: q.SortOrder,
		},
	}, nil
}

// Counts conteos globales.
func (uc *AdminUserUseCase) Counts(ctx context.Context) (*dto.UserCountsResponse, error) {
	c, err := uc.users.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.UserCountsResponse{
		TotalUsers:         c.Total,
		ActiveUsers:        c.Active,
		NormalUsers:        c.NormalUsers,
		StoreOwners:        c.StoreOwners,
		AdminUsers:         c.Admins,
		NewUsersLast30Days: c.NewLast30Days,
		NewUsersLast7Days:  c.NewLast7Days,
	}, nil
}

// Get usuario con agregados.
func (uc *AdminUserUseCase) Get(ctx context.Context, id int64) (*dto.AdminUserResponse, error) {
	u, err := uc.users.GetWithStats(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	out := toAdminUserResponse(*u)
	return &out, nil
}

// Create alta de usuario con cualquier rol.
func (uc *AdminUserUseCase) Create(ctx context.Context, in dto.AdminCreateUserRequest) (*dto.AdminUserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	taken, err := uc.users.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errAdminUserEmailTaken
	}
	hash, err := auth.HashPassword(in.Password, uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleNormalUser
	}
	user := &entity.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Address:      strings.TrimSpace(in.Address),
		IsActive:     true,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	out := toAdminUserResponse(repository.UserWithStats{User: *user})
	return &out, nil
}

// Update edición parcial; el email no puede pertenecer a otro usuario.
func (uc *AdminUserUseCase) Update(ctx context.Context, id int64, in dto.AdminUpdateUserRequest) (*dto.AdminUserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		taken, err := uc.users.EmailTaken(ctx, email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errAdminUserEmailTaken
		}
		user.Email = email
	}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Address != nil {
		user.Address = strings.TrimSpace(*in.Address)
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// Delete borra un usuario que no sea admin; avisa de lo borrado en cascada.
// Las fotos de sus tiendas se borran después de la fila; un fallo sólo se registra.
func (uc *AdminUserUseCase) Delete(ctx context.Context, id int64) (*dto.DeleteUserResponse, error) {
	u, err := uc.users.GetWithStats(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if u.Role == entity.RoleAdmin {
		return nil, errDeleteAdmin
	}
	var warnings []string
	if u.TotalRatings > 0 {
		warnings = append(warnings, fmt.Sprintf("User has %d ratings that will be deleted", u.TotalRatings))
	}
	if u.StoresOwned > 0 {
		warnings = append(warnings, fmt.Sprintf("User owns %d stores that will be deleted", u.StoresOwned))
	}
	var owned []entity.Store
	if u.StoresOwned > 0 {
		if owned, err = uc.stores.ListByOwner(ctx, id); err != nil {
			return nil, err
		}
	}
	deleted, err := uc.users.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, domain.ErrUserNotFound
	}
	for _, s := range owned {
		if s.PhotoURL == "" {
			continue
		}
		if err := uc.photos.Delete(s.PhotoURL); err != nil {
			uc.log.Warn().Err(err).Int64("user_id", id).Int64("store_id", s.ID).Str("photo_url", s.PhotoURL).Msg("no se pudo borrar la foto")
		}
	}
	return &dto.DeleteUserResponse{Warnings: warnings}, nil
}

// Bulk activa o desactiva varios usuarios en una sola sentencia.
func (uc *AdminUserUseCase) Bulk(ctx context.Context, in dto.BulkUsersRequest) (*dto.BulkUsersResponse, error) {
	n, err := uc.users.SetActive(ctx, in.UserIDs, in.Operation == "activate", strings.TrimSpace(in.Reason))
	if err != nil {
		return nil, err
	}
	return &dto.BulkUsersResponse{AffectedUsers: n}, nil
}

// Recent últimos usuarios registrados.
func (uc *AdminUserUseCase) Recent(ctx context.Context, limit int) ([]dto.UserResponse, error) {
	page := dto.PageQuery{Limit: limit}.Normalize(recentDefault, recentMax)
	list, err := uc.users.Recent(ctx, page.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for i := range list {
		out = append(out, auth.ToUserResponse(&list[i]))
	}
	return out, nil
}

// statusFilter active | inactive; cualquier otro valor no filtra.
func statusFilter(status string) *bool {
	switch status {
	case "active":
		v := true
		return &v
	case "inactive":
		v := false
		return &v
	}
	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
