package usecase

import (
	"context"
	"strings"

	"github.com/pankaj-shinde04/store-rating/internal/application/auth"
	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

const (
	userRatingsDefault = 10
	userRatingsMax     = 100
	userRecentRatings  = 5
)

// UserUseCase panel y perfil del normal_user.
type UserUseCase struct {
	users   repository.UserRepository
	ratings repository.RatingRepository
	stats   repository.StatsRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(users repository.UserRepository, ratings repository.RatingRepository, stats repository.StatsRepository) *UserUseCase {
	return &UserUseCase{users: users, ratings: ratings, stats: stats}
}

// Profile obtiene el usuario por ID.
func (uc *UserUseCase) Profile(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := auth.ToUserResponse(user)
	return &out, nil
}

// UpdateProfile cambia nombre y dirección; el email no se edita desde aquí.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, id int64, in dto.UserProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Name = strings.TrimSpace(in.Name)
	user.Address = strings.TrimSpace(in.Address)
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	out := auth.ToUserResponse(user)
	return &out, nil
}

// Stats agregados del usuario y sus últimas calificaciones.
func (uc *UserUseCase) Stats(ctx context.Context, id int64) (*dto.UserStatsResponse, error) {
	st, err := uc.stats.UserRatingStats(ctx, id)
	if err != nil {
		return nil, err
	}
	recent, _, err := uc.ratings.ListByUser(ctx, id, userRecentRatings, 0)
	if err != nil {
		return nil, err
	}
	return &dto.UserStatsResponse{
		TotalRatings:   st.TotalRatings,
		AverageRating:  dto.Round1(st.Average),
		RatedStores:    st.RatedStores,
		FavoriteStores: st.FavoriteStores,
		RecentRatings:  toRatingResponses(recent, true),
	}, nil
}

// Ratings página de calificaciones del usuario.
func (uc *UserUseCase) Ratings(ctx context.Context, id int64, q dto.PageQuery) (*dto.UserRatingsResponse, error) {
	page := q.Normalize(userRatingsDefault, userRatingsMax)
	list, total, err := uc.ratings.ListByUser(ctx, id, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	return &dto.UserRatingsResponse{
		Ratings:    toRatingResponses(list, true),
		Pagination: dto.RatingPagination{Pagination: dto.NewPagination(page, total), TotalRatings: total},
	}, nil
}
