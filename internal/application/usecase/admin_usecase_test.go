package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/usecase"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository/mocks"
)

func TestBulkRatings(t *testing.T) {
	tests := []struct {
		name   string
		in     dto.BulkRatingsRequest
		setup  func(r *mocks.RatingRepository)
		affect int64
	}{
		{
			name: "approve",
			in:   dto.BulkRatingsRequest{Operation: "approve", RatingIDs: []int64{1, 2, 3}},
			setup: func(r *mocks.RatingRepository) {
				r.On("SetStatus", mock.Anything, []int64{1, 2, 3}, entity.RatingApproved, "").Return(int64(3), nil)
			},
			affect: 3,
		},
		{
			name: "reject con motivo por defecto",
			in:   dto.BulkRatingsRequest{Operation: "reject", RatingIDs: []int64{4, 5}},
			setup: func(r *mocks.RatingRepository) {
				r.On("SetStatus", mock.Anything, []int64{4, 5}, entity.RatingRejected, "Bulk rejected by admin").Return(int64(2), nil)
			},
			affect: 2,
		},
		{
			name: "delete",
			in:   dto.BulkRatingsRequest{Operation: "delete", RatingIDs: []int64{6, 7}},
			setup: func(r *mocks.RatingRepository) {
				r.On("DeleteMany", mock.Anything, []int64{6, 7}).Return(int64(1), nil)
			},
			affect: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratings := new(mocks.RatingRepository)
			tt.setup(ratings)
			rec := &recorder{}

			out, err := usecase.NewAdminRatingUseCase(ratings, rec).Bulk(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.affect, out.AffectedCount)
			assert.Equal(t, tt.affect, rec.moderated[tt.in.Operation])
			ratings.AssertExpectations(t)
		})
	}
}

func TestRejectRating_DefaultReason(t *testing.T) {
	ratings := new(mocks.RatingRepository)
	ratings.On("SetStatus", mock.Anything, []int64{9}, entity.RatingRejected, "Rejected by admin").Return(int64(1), nil)
	ratings.On("GetByID", mock.Anything, int64(9)).Return(&entity.Rating{ID: 9, Status: entity.RatingRejected, RejectionReason: "Rejected by admin"}, nil)

	out, err := usecase.NewAdminRatingUseCase(ratings, nil).Reject(context.Background(), 9, "  ")
	require.NoError(t, err)
	assert.Equal(t, "Rejected by admin", out.RejectionReason)

	ratings.On("SetStatus", mock.Anything, []int64{404}, entity.RatingApproved, "").Return(int64(0), nil)
	_, err = usecase.NewAdminRatingUseCase(ratings, nil).Approve(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrRatingNotFound)
}

func TestAdminRatingList_StatusAll(t *testing.T) {
	ratings := new(mocks.RatingRepository)
	ratings.On("AdminList", mock.Anything, mock.MatchedBy(func(f repository.RatingFilter) bool {
		return f.Status == "" && f.Limit == 10 && f.Value == 5
	})).Return([]repository.RatingView{}, int64(21), nil)

	out, err := usecase.NewAdminRatingUseCase(ratings, nil).List(context.Background(), dto.AdminRatingListQuery{Status: "all", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Pagination.Pages)
	assert.Equal(t, "all", out.Filters.Status)
}

func TestAdminRatingAttention_NoCount(t *testing.T) {
	ratings := new(mocks.RatingRepository)
	ratings.On("AdminFind", mock.Anything, mock.MatchedBy(func(f repository.RatingFilter) bool {
		return f.MaxValue == 2 && f.Status == "" && f.DateFrom == nil && f.Limit == 20
	})).Return([]repository.RatingView{{Rating: entity.Rating{ID: 1, Value: 1}}}, nil)
	ratings.On("AdminFind", mock.Anything, mock.MatchedBy(func(f repository.RatingFilter) bool {
		return f.Status == entity.RatingPending && f.MaxValue == 0 && f.Limit == 20
	})).Return([]repository.RatingView{{Rating: entity.Rating{ID: 2, Value: 4}}, {Rating: entity.Rating{ID: 3, Value: 5}}}, nil)
	ratings.On("AdminFind", mock.Anything, mock.MatchedBy(func(f repository.RatingFilter) bool {
		return f.DateFrom != nil && time.Since(*f.DateFrom) >= 24*time.Hour && f.Limit == 20
	})).Return([]repository.RatingView{}, nil)

	out, err := usecase.NewAdminRatingUseCase(ratings, nil).Attention(context.Background())
	require.NoError(t, err)
	require.Len(t, out.LowRatings, 1)
	assert.Equal(t, int64(1), out.LowRatings[0].ID)
	assert.Len(t, out.Pending, 2)
	assert.Empty(t, out.Recent)
	ratings.AssertNumberOfCalls(t, "AdminFind", 3)
	ratings.AssertNotCalled(t, "AdminList", mock.Anything, mock.Anything)
}

func TestAdminDeleteUser(t *testing.T) {
	t.Run("admin protegido", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("GetWithStats", mock.Anything, int64(1)).Return(&repository.UserWithStats{User: entity.User{ID: 1, Role: entity.RoleAdmin}}, nil)

		_, err := usecase.NewAdminUserUseCase(users, new(mocks.StoreRepository), &memPhotos{}, nil, 4).Delete(context.Background(), 1)
		var de *domain.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "Cannot delete admin users", de.Msg)
		users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("avisos de cascada y fotos de sus tiendas", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("GetWithStats", mock.Anything, int64(2)).Return(&repository.UserWithStats{
			User: entity.User{ID: 2, Role: entity.RoleStoreOwner}, TotalRatings: 3, StoresOwned: 2,
		}, nil)
		users.On("Delete", mock.Anything, int64(2)).Return(true, nil)
		stores := new(mocks.StoreRepository)
		stores.On("ListByOwner", mock.Anything, int64(2)).Return([]entity.Store{
			{ID: 5, OwnerID: 2, PhotoURL: "/uploads/store-5.png"},
			{ID: 6, OwnerID: 2},
		}, nil)
		photos := &memPhotos{}

		out, err := usecase.NewAdminUserUseCase(users, stores, photos, nil, 4).Delete(context.Background(), 2)
		require.NoError(t, err)
		assert.Len(t, out.Warnings, 2)
		assert.Equal(t, []string{"/uploads/store-5.png"}, photos.deleted)
		stores.AssertExpectations(t)
	})

	t.Run("sin tiendas no consulta fotos", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("GetWithStats", mock.Anything, int64(3)).Return(&repository.UserWithStats{
			User: entity.User{ID: 3, Role: entity.RoleNormalUser}, TotalRatings: 1,
		}, nil)
		users.On("Delete", mock.Anything, int64(3)).Return(true, nil)
		stores := new(mocks.StoreRepository)
		photos := &memPhotos{}

		out, err := usecase.NewAdminUserUseCase(users, stores, photos, nil, 4).Delete(context.Background(), 3)
		require.NoError(t, err)
		assert.Len(t, out.Warnings, 1)
		assert.Empty(t, photos.deleted)
		stores.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
	})

	t.Run("fila ya borrada conserva las fotos", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("GetWithStats", mock.Anything, int64(4)).Return(&repository.UserWithStats{
			User: entity.User{ID: 4, Role: entity.RoleStoreOwner}, StoresOwned: 1,
		}, nil)
		users.On("Delete", mock.Anything, int64(4)).Return(false, nil)
		stores := new(mocks.StoreRepository)
		stores.On("ListByOwner", mock.Anything, int64(4)).Return([]entity.Store{
			{ID: 7, OwnerID: 4, PhotoURL: "/uploads/store-7.png"},
		}, nil)
		photos := &memPhotos{}

		_, err := usecase.NewAdminUserUseCase(users, stores, photos, nil, 4).Delete(context.Background(), 4)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Empty(t, photos.deleted)
	})
}

func TestAdminCreateUser_EmailTaken(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("EmailTaken", mock.Anything, "ana@x.com", int64(0)).Return(true, nil)

	_, err := usecase.NewAdminUserUseCase(users, new(mocks.StoreRepository), &memPhotos{}, nil, 4).Create(context.Background(), dto.AdminCreateUserRequest{
		Name: "Ana", Email: "ANA@x.com", Password: "password1",
	})
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "User with this email already exists", de.Msg)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAdminUserList_Filters(t *testing.T) {
	users := new(mocks.UserRepository)
	from := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	users.On("List", mock.Anything, mock.MatchedBy(func(f repository.UserFilter) bool {
		return f.Active != nil && !*f.Active && f.Role == entity.RoleStoreOwner && f.DateFrom.Equal(from)
	})).Return([]repository.UserWithStats{{User: entity.User{ID: 5}}}, int64(1), nil)

	out, err := usecase.NewAdminUserUseCase(users, new(mocks.StoreRepository), &memPhotos{}, nil, 4).List(context.Background(), dto.AdminUserListQuery{
		Role: entity.RoleStoreOwner, Status: "inactive", DateFrom: &from,
	})
	require.NoError(t, err)
	require.Len(t, out.Users, 1)
	assert.Equal(t, "2024-01-02", out.Filters.DateFrom)
	assert.Equal(t, 1, out.Pagination.Pages)
}

func TestAdminCreateStore_OwnerMustBeStoreOwner(t *testing.T) {
	stores := new(mocks.StoreRepository)
	users := new(mocks.UserRepository)
	users.On("GetByID", mock.Anything, int64(8)).Return(&entity.User{ID: 8, Role: entity.RoleNormalUser}, nil)
	base := newStoreUC(stores, new(mocks.RatingRepository), &txRunner{}, &memPhotos{})

	_, err := usecase.NewAdminStoreUseCase(stores, users, base).Create(context.Background(), dto.AdminCreateStoreRequest{
		CreateStoreRequest: dto.CreateStoreRequest{Name: "Shop", Address: "1 Long Road Avenue"},
		OwnerID:            8,
	}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	stores.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminStoreApproveReject(t *testing.T) {
	stores := new(mocks.StoreRepository)
	stores.On("SetStatus", mock.Anything, []int64{3}, true, "").Return(int64(1), nil)
	stores.On("SetStatus", mock.Anything, []int64{3}, false, "fotos falsas").Return(int64(1), nil)
	stores.On("SetStatus", mock.Anything, []int64{4}, true, "").Return(int64(0), nil)
	stores.On("AdminGet", mock.Anything, int64(3)).Return(&repository.StoreAdminView{
		StoreSummary: repository.StoreSummary{Store: entity.Store{ID: 3, IsActive: true, IsVerified: true}},
	}, nil)
	uc := usecase.NewAdminStoreUseCase(stores, new(mocks.UserRepository), nil)

	out, err := uc.Approve(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, out.IsVerified)

	_, err = uc.Reject(context.Background(), 3, " fotos falsas ")
	require.NoError(t, err)

	_, err = uc.Approve(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
	stores.AssertExpectations(t)
}

func TestFavorites(t *testing.T) {
	favs := new(mocks.FavoriteRepository)
	stores := new(mocks.StoreRepository)
	uc := usecase.NewFavoriteUseCase(favs, stores)

	stores.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)
	assert.ErrorIs(t, uc.Add(context.Background(), 1, 404), domain.ErrStoreNotFound)

	favs.On("Remove", mock.Anything, int64(1), int64(3)).Return(false, nil)
	assert.ErrorIs(t, uc.Remove(context.Background(), 1, 3), domain.ErrFavoriteNotFound)

	favs.On("ListByUser", mock.Anything, int64(1), 100).Return([]repository.FavoriteView{
		{StoreSummary: repository.StoreSummary{Store: entity.Store{ID: 3}}},
	}, nil)
	list, err := uc.List(context.Background(), 1, 500)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUserRatings_Pagination(t *testing.T) {
	ratings := new(mocks.RatingRepository)
	ratings.On("ListByUser", mock.Anything, int64(4), 10, 0).Return([]repository.RatingView{
		{Rating: entity.Rating{ID: 1}, StoreName: "Green Cafe", StoreIsVerified: true},
	}, int64(11), nil)

	out, err := usecase.NewUserUseCase(new(mocks.UserRepository), ratings, new(mocks.StatsRepository)).
		Ratings(context.Background(), 4, dto.PageQuery{})
	require.NoError(t, err)
	assert.True(t, out.Pagination.HasNextPage)
	assert.False(t, out.Pagination.HasPrevPage)
	assert.Equal(t, int64(11), out.Pagination.TotalRatings)
	require.NotNil(t, out.Ratings[0].StoreIsVerified)
	assert.True(t, *out.Ratings[0].StoreIsVerified)
}
