package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/ports"
	"github.com/pankaj-shinde04/store-rating/internal/application/usecase"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository/mocks"
)

// txRunner ejecuta fn sobre el mismo mock; commitErr simula un commit fallido.
type txRunner struct {
	stores    repository.StoreRepository
	commitErr error
}

func (r *txRunner) RunStore(_ context.Context, fn func(repository.StoreRepository) error) error {
	if err := fn(r.stores); err != nil {
		return err
	}
	return r.commitErr
}

type memPhotos struct {
	saved   map[string][]byte
	deleted []string
	saveErr error
}

func (p *memPhotos) Validate(up ports.Upload) error {
	if len(up.Data) == 0 {
		return domain.NewError(domain.ErrInvalidInput, "Only image files are allowed")
	}
	return nil
}
func (p *memPhotos) NewName(ports.Upload) string { return "store-1-abc.png" }
func (p *memPhotos) URL(name string) string      { return "/uploads/" + name }

func (p *memPhotos) Save(_ context.Context, name string, data []byte) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	if p.saved == nil {
		p.saved = map[string][]byte{}
	}
	p.saved[name] = data
	return nil
}

func (p *memPhotos) Delete(url string) error {
	p.deleted = append(p.deleted, url)
	return nil
}

func newStoreUC(stores *mocks.StoreRepository, ratings *mocks.RatingRepository, tx *txRunner, photos *memPhotos) *usecase.StoreUseCase {
	tx.stores = stores
	return usecase.NewStoreUseCase(stores, ratings, tx, photos, nil)
}

var png = ports.Upload{Filename: "foto.png", ContentType: "image/png", Data: []byte("\x89PNG\r\n\x1a\n")}

func TestCreateStore_WithPhoto(t *testing.T) {
	stores := new(mocks.StoreRepository)
	photos := &memPhotos{}
	uc := newStoreUC(stores, new(mocks.RatingRepository), &txRunner{}, photos)

	stores.On("NameExistsForOwner", mock.Anything, int64(5), "Green Cafe").Return(false, nil)
	stores.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Store) bool {
		return s.OwnerID == 5 && s.Category == "Coffee Shop" && s.PhotoURL == "/uploads/store-1-abc.png" && s.IsActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Store).ID = 11
	}).Return(nil)
	stores.On("GetSummary", mock.Anything, int64(11)).Return(nil, nil)

	out, err := uc.Create(context.Background(), 5, dto.CreateStoreRequest{
		Name: " Green Cafe ", Address: "12 Main Street, Springfield", Category: "coffee   shop",
	}, &png)
	require.NoError(t, err)
	assert.Equal(t, int64(11), out.ID)
	assert.Equal(t, "/uploads/store-1-abc.png", out.PhotoURL)
	assert.Contains(t, photos.saved, "store-1-abc.png")
	assert.Empty(t, photos.deleted)
}

func TestCreateStore_CommitFailureRemovesPhoto(t *testing.T) {
	stores := new(mocks.StoreRepository)
	photos := &memPhotos{}
	uc := newStoreUC(stores, new(mocks.RatingRepository), &txRunner{commitErr: errors.New("commit")}, photos)

	stores.On("NameExistsForOwner", mock.Anything, int64(5), "Green Cafe").Return(false, nil)
	stores.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Create(context.Background(), 5, dto.CreateStoreRequest{Name: "Green Cafe", Address: "12 Main Street, Springfield"}, &png)
	require.Error(t, err)
	assert.Equal(t, []string{"/uploads/store-1-abc.png"}, photos.deleted)
}

func TestCreateStore_DuplicateName(t *testing.T) {
	stores := new(mocks.StoreRepository)
	stores.On("NameExistsForOwner", mock.Anything, int64(5), "Green Cafe").Return(true, nil)

	_, err := newStoreUC(stores, new(mocks.RatingRepository), &txRunner{}, &memPhotos{}).
		Create(context.Background(), 5, dto.CreateStoreRequest{Name: "Green Cafe", Address: "12 Main Street"}, nil)

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Store name already exists for your account", de.Msg)
	stores.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateStore(t *testing.T) {
	t.Run("tienda ajena", func(t *testing.T) {
		stores := new(mocks.StoreRepository)
		stores.On("GetByID", mock.Anything, int64(3)).Return(&entity.Store{ID: 3, OwnerID: 1}, nil)
		_, err := newStoreUC(stores, new(mocks.RatingRepository), &txRunner{}, &memPhotos{}).
			Update(context.Background(), usecase.Actor{ID: 2, Role: entity.RoleStoreOwner}, 3, dto.UpdateStoreRequest{}, nil)

		var de *domain.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "You can only update your own stores", de.Detail)
	})

	t.Run("foto nueva reemplaza la anterior", func(t *testing.T) {
		stores := new(mocks.StoreRepository)
		photos := &memPhotos{}
		name := "Nuevo Nombre"
		stores.On("GetByID", mock.Anything, int64(3)).Return(&entity.Store{ID: 3, OwnerID: 1, Name: "Viejo", PhotoURL: "/uploads/old.png"}, nil)
		stores.On("Update", mock.Anything, mock.MatchedBy(func(s *entity.Store) bool {
			return s.Name == name && s.PhotoURL == "/uploads/store-1-abc.png"
		})).Return(nil)
		stores.On("GetSummary", mock.Anything, int64(3)).Return(&repository.StoreSummary{
			Store: entity.Store{ID: 3, Name: name, PhotoURL: "/uploads/store-1-abc.png"}, RatingCount: 2,
		}, nil)

		out, err := newStoreUC(stores, new(mocks.RatingRepository), &txRunner{}, photos).
			Update(context.Background(), usecase.Actor{ID: 1, Role: entity.RoleStoreOwner}, 3, dto.UpdateStoreRequest{Name: &name}, &png)
		require.NoError(t, err)
		assert.Equal(t, int64(2), out.RatingCount)
		assert.Equal(t, []string{"/uploads/old.png"}, photos.deleted)
	})

	t.Run("fallo al guardar la foto", func(t *testing.T) {
		stores := new(mocks.StoreRepository)
		photos := &memPhotos{saveErr: errors.New("disk full")}
		stores.On("GetByID", mock.Anything, int64(3)).Return(&entity.Store{ID: 3, OwnerID: 1, PhotoURL: "/uploads/old.png"}, nil)
		stores.On("Update", mock.Anything, mock.Anything).Return(nil)

		_, err := newStoreUC(stores, new(mocks.RatingRepository), &txRunner{}, photos).
			Update(context.Background(), usecase.Actor{Role: entity.RoleAdmin}, 3, dto.UpdateStoreRequest{}, &png)
		require.Error(t, err)
		assert.NotContains(t, photos.deleted, "/uploads/old.png")
	})
}

func TestDeleteStore_RemovesPhotoAfterRow(t *testing.T) {
	stores := new(mocks.StoreRepository)
	photos := &memPhotos{}
	stores.On("GetByID", mock.Anything, int64(3)).Return(&entity.Store{ID: 3, OwnerID: 1, PhotoURL: "/uploads/a.png"}, nil)
	stores.On("Delete", mock.Anything, int64(3)).Return(true, nil)

	uc := newStoreUC(stores, new(mocks.RatingRepository), &txRunner{}, photos)
	err := uc.Delete(context.Background(), usecase.Actor{ID: 2, Role: entity.RoleStoreOwner}, 3)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, photos.deleted)

	require.NoError(t, uc.Delete(context.Background(), usecase.Actor{ID: 1, Role: entity.RoleStoreOwner}, 3))
	assert.Equal(t, []string{"/uploads/a.png"}, photos.deleted)
}

func TestListStores_Pagination(t *testing.T) {
	t.Run("segunda página", func(t *testing.T) {
		stores := new(mocks.StoreRepository)
		stores.On("List", mock.Anything, mock.MatchedBy(func(f repository.StoreFilter) bool {
			return f.Limit == 12 && f.Offset == 12 && f.Active != nil && *f.Active
		})).Return([]repository.StoreSummary{{Store: entity.Store{ID: 1}}}, int64(30), nil)

		out, err := newStoreUC(stores, new(mocks.RatingRepository), &txRunner{}, &memPhotos{}).
			List(context.Background(), dto.StoreListQuery{PageQuery: dto.PageQuery{Page: 2}})
		require.NoError(t, err)
		assert.Equal(t, 3, out.Pagination.TotalPages)
		assert.True(t, out.Pagination.HasNextPage)
		assert.True(t, out.Pagination.HasPrevPage)
		assert.Equal(t, int64(30), out.Pagination.TotalStores)
	})

	t.Run("página enorme no desborda el offset", func(t *testing.T) {
		maxPage := math.MaxInt32 / 12
		stores := new(mocks.StoreRepository)
		stores.On("List", mock.Anything, mock.MatchedBy(func(f repository.StoreFilter) bool {
			return f.Limit == 12 && f.Offset == (maxPage-1)*12
		})).Return([]repository.StoreSummary{}, int64(5), nil)

		out, err := newStoreUC(stores, new(mocks.RatingRepository), &txRunner{}, &memPhotos{}).
			List(context.Background(), dto.StoreListQuery{PageQuery: dto.PageQuery{Page: 1 << 62}})
		require.NoError(t, err)
		assert.Empty(t, out.Stores)
		assert.Equal(t, maxPage, out.Pagination.CurrentPage)
		assert.Equal(t, 1, out.Pagination.TotalPages)
		assert.False(t, out.Pagination.HasNextPage)
		assert.True(t, out.Pagination.HasPrevPage)
	})
}

func TestCategories_Fallback(t *testing.T) {
	stores := new(mocks.StoreRepository)
	stores.On("Categories", mock.Anything).Return(nil, nil)

	cats, err := newStoreUC(stores, new(mocks.RatingRepository), &txRunner{}, &memPhotos{}).Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Restaurant", "Coffee Shop", "Retail", "Service", "Entertainment", "Other"}, cats)
}
