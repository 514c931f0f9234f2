package usecase

import (
	"context"
	"strings"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/validation"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

var (
	errRateOwnStore      = domain.NewError(domain.ErrForbidden, "Cannot rate own store").WithDetail("Store owners cannot rate their own stores")
	errForeignStoreRates = domain.NewError(domain.ErrForbidden, "Access denied").WithDetail("You can only view ratings for your own stores")
	errForeignRating     = domain.NewError(domain.ErrForbidden, "Access denied").WithDetail("You can only delete your own ratings")
	errForeignRespond    = domain.NewError(domain.ErrForbidden, "Access denied").WithDetail("You can only respond to ratings for your own stores")
)

// RatingUseCase envío, consulta y respuesta de calificaciones.
type RatingUseCase struct {
	ratings       repository.RatingRepository
	stores        repository.StoreRepository
	defaultStatus string
	metrics       RatingRecorder
}

// NewRatingUseCase defaultStatus es el estado de las calificaciones nuevas (approved o pending).
func NewRatingUseCase(ratings repository.RatingRepository, stores repository.StoreRepository, defaultStatus string, metrics RatingRecorder) *RatingUseCase {
	if defaultStatus != entity.RatingPending {
		defaultStatus = entity.RatingApproved
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &RatingUseCase{ratings: ratings, stores: stores, defaultStatus: defaultStatus, metrics: metrics}
}

// Submit crea la calificación del usuario sobre la tienda o reemplaza la existente.
func (uc *RatingUseCase) Submit(ctx context.Context, userID int64, in dto.CreateRatingRequest) (*dto.SubmitRatingResponse, error) {
	if !entity.ValidRatingValue(in.RatingValue) {
		return nil, validation.Single("rating_value", "Rating must be between 1 and 5")
	}
	store, err := uc.stores.GetByID(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	if store.OwnedBy(userID) {
		return nil, errRateOwnStore
	}

	rating := &entity.Rating{
		UserID:     userID,
		StoreID:    in.StoreID,
		Value:      in.RatingValue,
		ReviewText: strings.TrimSpace(in.ReviewText),
		Status:     uc.defaultStatus,
	}
	created, err := uc.ratings.Upsert(ctx, rating)
	if err != nil {
		return nil, err
	}
	uc.metrics.RatingSubmitted(created)
	return &dto.SubmitRatingResponse{Rating: ratingEntityResponse(rating), Created: created}, nil
}

// ListMine todas las calificaciones del usuario, con datos de la tienda.
func (uc *RatingUseCase) ListMine(ctx context.Context, userID int64) ([]dto.RatingResponse, error) {
	list, _, err := uc.ratings.ListByUser(ctx, userID, 0, 0)
	if err != nil {
		return nil, err
	}
	return toRatingResponses(list, true), nil
}

// ListForStore calificaciones de una tienda; un store_owner sólo ve las de sus tiendas.
func (uc *RatingUseCase) ListForStore(ctx context.Context, actor Actor, storeID int64) ([]dto.RatingResponse, error) {
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	if actor.Role == entity.RoleStoreOwner && !store.OwnedBy(actor.ID) {
		return nil, errForeignStoreRates
	}
	list, err := uc.ratings.ListByStore(ctx, storeID, 0)
	if err != nil {
		return nil, err
	}
	return toRatingResponses(list, false), nil
}

// Delete borra una calificación propia; un admin puede borrar cualquiera.
func (uc *RatingUseCase) Delete(ctx context.Context, actor Actor, id int64) error {
	rating, err := uc.ratings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rating == nil {
		return domain.ErrRatingNotFound
	}
	if !actor.IsAdmin() && rating.UserID != actor.ID {
		return errForeignRating
	}
	deleted, err := uc.ratings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrRatingNotFound
	}
	return nil
}

// Respond guarda la respuesta del dueño de la tienda; una respuesta vacía la borra.
func (uc *RatingUseCase) Respond(ctx context.Context, actor Actor, id int64, in dto.OwnerResponseRequest) (*dto.RatingResponse, error) {
	rating, err := uc.ratings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, domain.ErrRatingNotFound
	}
	store, err := uc.stores.GetByID(ctx, rating.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	if !actor.IsAdmin() && !store.OwnedBy(actor.ID) {
		return nil, errForeignRespond
	}
	response := strings.TrimSpace(in.Response)
	if err := uc.ratings.SetOwnerResponse(ctx, id, response); err != nil {
		return nil, err
	}
	rating.OwnerResponse = response
	out := ratingEntityResponse(rating)
	return &out, nil
}
