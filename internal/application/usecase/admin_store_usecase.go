package usecase

import (
	"context"
	"strings"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/ports"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

const attentionStores = 50

var errOwnerNotStoreOwner = domain.NewError(domain.ErrInvalidInput, "Invalid owner").WithDetail("Owner must be an existing store_owner")

// AdminStoreUseCase gestión y aprobación de tiendas. Las escrituras con foto
// delegan en StoreUseCase para compartir la transacción y la limpieza de archivos.
type AdminStoreUseCase struct {
	stores repository.StoreRepository
	users  repository.UserRepository
	base   *StoreUseCase
}

func NewAdminStoreUseCase(stores repository.StoreRepository, users repository.UserRepository, base *StoreUseCase) *AdminStoreUseCase {
	return &AdminStoreUseCase{stores: stores, users: users, base: base}
}

// List listado filtrado con agregados de administración.
func (uc *AdminStoreUseCase) List(ctx context.Context, q dto.AdminStoreListQuery) (*dto.AdminStoreListResponse, error) {
	page := q.PageQuery.Normalize(adminPageDefault, adminPageMax)
	list, total, err := uc.stores.AdminList(ctx, repository.AdminStoreFilter{
		Search:    strings.TrimSpace(q.Search),
		Category:  strings.TrimSpace(q.Category),
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
	return &dto.AdminStoreListResponse{
		Stores:     toAdminStoreResponses(list),
		Pagination: dto.NewAdminPagination(page, total),
		Filters: dto.AdminStoreFilters{
			Search:    q.Search,
			Category:  q.Category,
			Status:    q.Status,
			DateFrom:  formatDate(q.DateFrom),
			DateTo:    formatDate(q.DateTo),
			SortBy:    q.SortBy,
			SortOrder: q.SortOrder,
		},
	}, nil
}

// Counts conteos globales de tiendas.
func (uc *AdminStoreUseCase) Counts(ctx context.Context) (*dto.StoreCountsResponse, error) {
	c, err := uc.stores.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StoreCountsResponse{
		TotalStores:         c.Total,
		ActiveStores:        c.Active,
		InactiveStores:      c.Inactive,
		VerifiedStores:      c.Verified,
		NewStoresLast30Days: c.NewLast30Days,
		NewStoresLast7Days:  c.NewLast7Days,
	}, nil
}

// Attention tiendas inactivas, mal calificadas o sin verificar hace más de una semana.
func (uc *AdminStoreUseCase) Attention(ctx context.Context) ([]dto.AdminStoreResponse, error) {
	list, err := uc.stores.NeedingAttention(ctx, attentionStores)
	if err != nil {
		return nil, err
	}
	return toAdminStoreResponses(list), nil
}

// Get tienda con agregados de administración.
func (uc *AdminStoreUseCase) Get(ctx context.Context, id int64) (*dto.AdminStoreResponse, error) {
	v, err := uc.stores.AdminGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrStoreNotFound
	}
	out := toAdminStoreResponse(*v)
	return &out, nil
}

// Analytics métricas históricas y de los últimos 30 días.
func (uc *AdminStoreUseCase) Analytics(ctx context.Context, id int64) (*dto.StoreAnalyticsResponse, error) {
	store, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a, err := uc.stores.Analytics(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.StoreAnalyticsResponse{
		Store:                     *store,
		TotalRatings:              a.TotalRatings,
		AvgRating:                 dto.Round1(a.AvgRating),
		UniqueCustomers:           a.UniqueCustomers,
		RatingsLast30Days:         a.RatingsLast30Days,
		AvgRatingLast30Days:       dto.Round1(a.AvgRatingLast30Days),
		UniqueCustomersLast30Days: a.UniqueCustomersLast30Days,
		LowRatingsCount:           a.LowRatingsCount,
		HighRatingsCount:          a.HighRatingsCount,
	}, nil
}

// Create alta en nombre de un store_owner existente.
func (uc *AdminStoreUseCase) Create(ctx context.Context, in dto.AdminCreateStoreRequest, photo *ports.Upload) (*dto.StoreResponse, error) {
	owner, err := uc.users.GetByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil || owner.Role != entity.RoleStoreOwner {
		return nil, errOwnerNotStoreOwner
	}
	return uc.base.Create(ctx, in.OwnerID, in.CreateStoreRequest, photo)
}

// Update edición completa, incluidos los flags de estado.
func (uc *AdminStoreUseCase) Update(ctx context.Context, id int64, in dto.AdminUpdateStoreRequest, photo *ports.Upload) (*dto.StoreResponse, error) {
	store, err := uc.stores.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	store.Name = strings.TrimSpace(in.Name)
	store.Address = strings.TrimSpace(in.Address)
	store.Description = strings.TrimSpace(in.Description)
	store.Phone = strings.TrimSpace(in.Phone)
	store.Email = strings.ToLower(strings.TrimSpace(in.Email))
	store.Website = strings.TrimSpace(in.Website)
	store.Category = normalizeCategory(in.Category)
	if in.IsActive != nil {
		store.IsActive = *in.IsActive
	}
	if in.IsVerified != nil {
		store.IsVerified = *in.IsVerified
	}
	return uc.base.save(ctx, store, photo)
}

// Approve activa y verifica la tienda.
func (uc *AdminStoreUseCase) Approve(ctx context.Context, id int64) (*dto.AdminStoreResponse, error) {
	return uc.setStatus(ctx, id, true, "")
}

// Reject desactiva la tienda guardando el motivo.
func (uc *AdminStoreUseCase) Reject(ctx context.Context, id int64, reason string) (*dto.AdminStoreResponse, error) {
	return uc.setStatus(ctx, id, false, strings.TrimSpace(reason))
}

func (uc *AdminStoreUseCase) setStatus(ctx context.Context, id int64, approve bool, reason string) (*dto.AdminStoreResponse, error) {
	n, err := uc.stores.SetStatus(ctx, []int64{id}, approve, reason)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrStoreNotFound
	}
	return uc.Get(ctx, id)
}

// Delete baja de la tienda y de su foto.
func (uc *AdminStoreUseCase) Delete(ctx context.Context, id int64) error {
	return uc.base.Delete(ctx, Actor{Role: entity.RoleAdmin}, id)
}

// Bulk aprobación o rechazo de varias tiendas en una sola sentencia.
func (uc *AdminStoreUseCase) Bulk(ctx context.Context, in dto.BulkStoresRequest) (*dto.BulkStoresResponse, error) {
	approve := in.Operation == "approve"
	reason := strings.TrimSpace(in.Reason)
	if !approve && reason == "" {
		reason = bulkRejectReason
	}
	n, err := uc.stores.SetStatus(ctx, in.StoreIDs, approve, reason)
	if err != nil {
		return nil, err
	}
	return &dto.BulkStoresResponse{AffectedStores: n}, nil
}

// Recent últimas tiendas creadas.
func (uc *AdminStoreUseCase) Recent(ctx context.Context, limit int) ([]dto.StoreResponse, error) {
	page := dto.PageQuery{Limit: limit}.Normalize(recentDefault, recentMax)
	list, err := uc.stores.Recent(ctx, page.Limit)
	if err != nil {
		return nil, err
	}
	return toStoreResponses(list), nil
}
