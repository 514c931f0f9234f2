// Package mocks contiene dobles de testify/mock para los puertos de persistencia.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

var (
	_ repository.UserRepository     = (*UserRepository)(nil)
	_ repository.StoreRepository    = (*StoreRepository)(nil)
	_ repository.RatingRepository   = (*RatingRepository)(nil)
	_ repository.FavoriteRepository = (*FavoriteRepository)(nil)
	_ repository.StatsRepository    = (*StatsRepository)(nil)
)

// ── Usuarios ─────────────────────────────────────────────────────────────────

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) SetActive(ctx context.Context, ids []int64, active bool, reason string) (int64, error) {
	args := m.Called(ctx, ids, active, reason)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context, f repository.UserFilter) ([]repository.UserWithStats, int64, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]repository.UserWithStats)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *UserRepository) GetWithStats(ctx context.Context, id int64) (*repository.UserWithStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UserWithStats), args.Error(1)
}

func (m *UserRepository) Recent(ctx context.Context, limit int) ([]entity.User, error) {
	args := m.Called(ctx, limit)
	list, _ := args.Get(0).([]entity.User)
	return list, args.Error(1)
}

func (m *UserRepository) Counts(ctx context.Context) (repository.UserCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.UserCounts), args.Error(1)
}

// ── Tiendas ──────────────────────────────────────────────────────────────────

type StoreRepository struct {
	mock.Mock
}

func (m *StoreRepository) Create(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *StoreRepository) GetByID(ctx context.Context, id int64) (*entity.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *StoreRepository) NameExistsForOwner(ctx context.Context, ownerID int64, name string) (bool, error) {
	args := m.Called(ctx, ownerID, name)
	return args.Bool(0), args.Error(1)
}

func (m *StoreRepository) Update(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *StoreRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *StoreRepository) List(ctx context.Context, f repository.StoreFilter) ([]repository.StoreSummary, int64, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]repository.StoreSummary)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *StoreRepository) ListActive(ctx context.Context) ([]repository.StoreSummary, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]repository.StoreSummary)
	return list, args.Error(1)
}

func (m *StoreRepository) GetSummary(ctx context.Context, id int64) (*repository.StoreSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StoreSummary), args.Error(1)
}

func (m *StoreRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]string)
	return list, args.Error(1)
}

func (m *StoreRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Store, error) {
	args := m.Called(ctx, ownerID)
	list, _ := args.Get(0).([]entity.Store)
	return list, args.Error(1)
}

func (m *StoreRepository) SetStatus(ctx context.Context, ids []int64, approve bool, reason string) (int64, error) {
	args := m.Called(ctx, ids, approve, reason)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StoreRepository) AdminList(ctx context.Context, f repository.AdminStoreFilter) ([]repository.StoreAdminView, int64, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]repository.StoreAdminView)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *StoreRepository) AdminGet(ctx context.Context, id int64) (*repository.StoreAdminView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StoreAdminView), args.Error(1)
}

func (m *StoreRepository) Analytics(ctx context.Context, id int64) (repository.StoreAnalytics, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.StoreAnalytics), args.Error(1)
}

func (m *StoreRepository) NeedingAttention(ctx context.Context, limit int) ([]repository.StoreAdminView, error) {
	args := m.Called(ctx, limit)
	list, _ := args.Get(0).([]repository.StoreAdminView)
	return list, args.Error(1)
}

func (m *StoreRepository) Counts(ctx context.Context) (repository.StoreCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.StoreCounts), args.Error(1)
}

func (m *StoreRepository) Recent(ctx context.Context, limit int) ([]repository.StoreSummary, error) {
	args := m.Called(ctx, limit)
	list, _ := args.Get(0).([]repository.StoreSummary)
	return list, args.Error(1)
}

// ── Calificaciones ───────────────────────────────────────────────────────────

type RatingRepository struct {
	mock.Mock
}

func (m *RatingRepository) Upsert(ctx context.Context, rating *entity.Rating) (bool, error) {
	args := m.Called(ctx, rating)
	return args.Bool(0), args.Error(1)
}

func (m *RatingRepository) GetByID(ctx context.Context, id int64) (*entity.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Rating), args.Error(1)
}

func (m *RatingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *RatingRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RatingRepository) SetStatus(ctx context.Context, ids []int64, status, reason string) (int64, error) {
	args := m.Called(ctx, ids, status, reason)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RatingRepository) SetOwnerResponse(ctx context.Context, id int64, response string) error {
	return m.Called(ctx, id, response).Error(0)
}

func (m *RatingRepository) ListByStore(ctx context.Context, storeID int64, limit int) ([]repository.RatingView, error) {
	args := m.Called(ctx, storeID, limit)
	list, _ := args.Get(0).([]repository.RatingView)
	return list, args.Error(1)
}

func (m *RatingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]repository.RatingView, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	list, _ := args.Get(0).([]repository.RatingView)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *RatingRepository) AdminList(ctx context.Context, f repository.RatingFilter) ([]repository.RatingView, int64, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]repository.RatingView)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *RatingRepository) AdminFind(ctx context.Context, f repository.RatingFilter) ([]repository.RatingView, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]repository.RatingView)
	return list, args.Error(1)
}

// ── Favoritos ────────────────────────────────────────────────────────────────

type FavoriteRepository struct {
	mock.Mock
}

func (m *FavoriteRepository) Add(ctx context.Context, fav *entity.Favorite) error {
	return m.Called(ctx, fav).Error(0)
}

func (m *FavoriteRepository) Remove(ctx context.Context, userID, storeID int64) (bool, error) {
	args := m.Called(ctx, userID, storeID)
	return args.Bool(0), args.Error(1)
}

func (m *FavoriteRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]repository.FavoriteView, error) {
	args := m.Called(ctx, userID, limit)
	list, _ := args.Get(0).([]repository.FavoriteView)
	return list, args.Error(1)
}

// ── Estadísticas ─────────────────────────────────────────────────────────────

type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) RatingOverall(ctx context.Context) (repository.RatingOverall, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.RatingOverall), args.Error(1)
}

func (m *StatsRepository) RatingDistribution(ctx context.Context) ([]repository.ValueCount, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]repository.ValueCount)
	return list, args.Error(1)
}

func (m *StatsRepository) StatusDistribution(ctx context.Context) ([]repository.StatusCount, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]repository.StatusCount)
	return list, args.Error(1)
}

func (m *StatsRepository) DailyRatings(ctx context.Context, days int) ([]repository.DailyCount, error) {
	args := m.Called(ctx, days)
	list, _ := args.Get(0).([]repository.DailyCount)
	return list, args.Error(1)
}

func (m *StatsRepository) StoreRanking(ctx context.Context, limit, minRatings int, ascending bool) ([]repository.StoreRank, error) {
	args := m.Called(ctx, limit, minRatings, ascending)
	list, _ := args.Get(0).([]repository.StoreRank)
	return list, args.Error(1)
}

func (m *StatsRepository) OwnerStats(ctx context.Context, ownerID int64) (repository.OwnerStats, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(repository.OwnerStats), args.Error(1)
}

func (m *StatsRepository) OwnerCustomers(ctx context.Context, ownerID int64) ([]repository.OwnerCustomer, error) {
	args := m.Called(ctx, ownerID)
	list, _ := args.Get(0).([]repository.OwnerCustomer)
	return list, args.Error(1)
}

func (m *StatsRepository) UserRatingStats(ctx context.Context, userID int64) (repository.UserRatingStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(repository.UserRatingStats), args.Error(1)
}
