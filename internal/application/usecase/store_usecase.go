package usecase

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/ports"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
	"github.com/pankaj-shinde04/store-rating/pkg/logger"
)

const (
	storePageDefault = 12
	storePageMax     = 100
	recentRatings    = 10
)

var (
	defaultCategories = []string{"Restaurant", "Coffee Shop", "Retail", "Service", "Entertainment", "Other"}

	errStoreNameTaken  = domain.NewError(domain.ErrConflict, "Store name already exists for your account")
	errNotStoreOwnerUp = domain.NewError(domain.ErrForbidden, "Access denied").WithDetail("You can only update your own stores")
	errNotStoreOwnerDl = domain.NewError(domain.ErrForbidden, "Access denied").WithDetail("You can only delete your own stores")
)

// StoreUseCase alta, edición, baja y consulta de tiendas. Las escrituras con foto
// se hacen en una transacción: la foto se escribe antes del commit y se borra si algo falla.
type StoreUseCase struct {
	stores  repository.StoreRepository
	ratings repository.RatingRepository
	tx      StoreTxRunner
	photos  ports.PhotoStorage
	log     *logger.Logger
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(
	stores repository.StoreRepository,
	ratings repository.RatingRepository,
	tx StoreTxRunner,
	photos ports.PhotoStorage,
	log *logger.Logger,
) *StoreUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StoreUseCase{stores: stores, ratings: ratings, tx: tx, photos: photos, log: log}
}

// List listado público paginado. IsActive nil se interpreta como sólo activas.
func (uc *StoreUseCase) List(ctx context.Context, q dto.StoreListQuery) (*dto.StoreListResponse, error) {
	page := q.PageQuery.Normalize(storePageDefault, storePageMax)
	active := q.IsActive
	if active == nil {
		t := true
		active = &t
	}
	list, total, err := uc.stores.List(ctx, repository.StoreFilter{
		Search:    strings.TrimSpace(q.Search),
		Category:  strings.TrimSpace(q.Category),
		Active:    active,
		Verified:  q.IsVerified,
		MinRating: q.MinRating,
		MaxRating: q.MaxRating,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Limit:     page.Limit,
		Offset:    page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return &dto.StoreListResponse{
		Stores:     toStoreResponses(list),
		Pagination: dto.StorePagination{Pagination: dto.NewPagination(page, total), TotalStores: total},
	}, nil
}

// ListActive todas las tiendas activas, para usuarios autenticados.
func (uc *StoreUseCase) ListActive(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.stores.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toStoreResponses(list), nil
}

// Categories categorías en uso o la lista por defecto si aún no hay ninguna.
func (uc *StoreUseCase) Categories(ctx context.Context) ([]string, error) {
	cats, err := uc.stores.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return append([]string(nil), defaultCategories...), nil
	}
	return cats, nil
}

// Get detalle con las calificaciones más recientes.
func (uc *StoreUseCase) Get(ctx context.Context, id int64) (*dto.StoreDetailResponse, error) {
	s, err := uc.stores.GetSummary(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrStoreNotFound
	}
	recent, err := uc.ratings.ListByStore(ctx, id, recentRatings)
	if err != nil {
		return nil, err
	}
	return &dto.StoreDetailResponse{
		StoreResponse: toStoreResponse(*s),
		RecentRatings: toRatingResponses(recent, false),
	}, nil
}

// Create alta de tienda para ownerID; el nombre es único por dueño.
func (uc *StoreUseCase) Create(ctx context.Context, ownerID int64, in dto.CreateStoreRequest, photo *ports.Upload) (*dto.StoreResponse, error) {
	name := strings.TrimSpace(in.Name)
	exists, err := uc.stores.NameExistsForOwner(ctx, ownerID, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errStoreNameTaken
	}
	if photo != nil {
		if err := uc.photos.Validate(*photo); err != nil {
			return nil, err
		}
	}

	store := &entity.Store{
		Name:        name,
		Address:     strings.TrimSpace(in.Address),
		OwnerID:     ownerID,
		Description: strings.TrimSpace(in.Description),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Website:     strings.TrimSpace(in.Website),
		Category:    normalizeCategory(in.Category),
		IsActive:    true,
	}
	if err := uc.persist(ctx, store, photo, func(stores repository.StoreRepository) error {
		return stores.Create(ctx, store)
	}); err != nil {
		return nil, err
	}
	return uc.response(ctx, store)
}

// Update edición parcial; sólo el dueño o un admin. Una foto nueva reemplaza a la anterior.
func (uc *StoreUseCase) Update(ctx context.Context, actor Actor, id int64, in dto.UpdateStoreRequest, photo *ports.Upload) (*dto.StoreResponse, error) {
	store, err := uc.stores.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	if !actor.IsAdmin() && !store.OwnedBy(actor.ID) {
		return nil, errNotStoreOwnerUp
	}
	applyStorePatch(store, in)
	return uc.save(ctx, store, photo)
}

// save persiste todos los campos de store; tras el commit borra la foto reemplazada.
func (uc *StoreUseCase) save(ctx context.Context, store *entity.Store, photo *ports.Upload) (*dto.StoreResponse, error) {
	if photo != nil {
		if err := uc.photos.Validate(*photo); err != nil {
			return nil, err
		}
	}
	oldPhoto := store.PhotoURL
	if err := uc.persist(ctx, store, photo, func(stores repository.StoreRepository) error {
		return stores.Update(ctx, store)
	}); err != nil {
		store.PhotoURL = oldPhoto
		return nil, err
	}
	if photo != nil && oldPhoto != "" && oldPhoto != store.PhotoURL {
		uc.removePhoto(oldPhoto, store.ID)
	}
	return uc.response(ctx, store)
}

// Delete baja de tienda; sólo el dueño o un admin. La foto se borra después de la fila.
func (uc *StoreUseCase) Delete(ctx context.Context, actor Actor, id int64) error {
	store, err := uc.stores.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrStoreNotFound
	}
	if !actor.IsAdmin() && !store.OwnedBy(actor.ID) {
		return errNotStoreOwnerDl
	}
	deleted, err := uc.stores.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrStoreNotFound
	}
	if store.PhotoURL != "" {
		uc.removePhoto(store.PhotoURL, id)
	}
	return nil
}

// persist ejecuta write dentro de la transacción y, si hay foto, la escribe antes del commit.
func (uc *StoreUseCase) persist(ctx context.Context, store *entity.Store, photo *ports.Upload, write func(repository.StoreRepository) error) error {
	var fileName string
	if photo != nil {
		fileName = uc.photos.NewName(*photo)
		store.PhotoURL = uc.photos.URL(fileName)
	}
	err := uc.tx.RunStore(ctx, func(stores repository.StoreRepository) error {
		if err := write(stores); err != nil {
			return err
		}
		if photo != nil {
			return uc.photos.Save(ctx, fileName, photo.Data)
		}
		return nil
	})
	if err != nil && photo != nil {
		// el commit pudo fallar con el archivo ya escrito
		uc.removePhoto(store.PhotoURL, store.ID)
	}
	return err
}

func (uc *StoreUseCase) removePhoto(url string, storeID int64) {
	if err := uc.photos.Delete(url); err != nil {
		uc.log.Warn().Err(err).Int64("store_id", storeID).Str("photo_url", url).Msg("no se pudo borrar la foto")
	}
}

func (uc *StoreUseCase) response(ctx context.Context, store *entity.Store) (*dto.StoreResponse, error) {
	s, err := uc.stores.GetSummary(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		out := storeEntityResponse(store)
		return &out, nil
	}
	out := toStoreResponse(*s)
	return &out, nil
}

func applyStorePatch(s *entity.Store, in dto.UpdateStoreRequest) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&s.Name, in.Name)
	set(&s.Address, in.Address)
	set(&s.Description, in.Description)
	set(&s.Phone, in.Phone)
	set(&s.Website, in.Website)
	if in.Email != nil {
		s.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Category != nil {
		s.Category = normalizeCategory(*in.Category)
	}
}

// normalizeCategory colapsa espacios y aplica mayúscula inicial por palabra.
func normalizeCategory(c string) string {
	c = strings.Join(strings.Fields(c), " ")
	if c == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ToLower(c))
}
