package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

const (
	rejectReason     = "Rejected by admin"
	bulkRejectReason = "Bulk rejected by admin"
	attentionRatings = 20
	lowRatingMax     = 2
)

// AdminRatingUseCase moderación de calificaciones.
type AdminRatingUseCase struct {
	ratings repository.RatingRepository
	metrics RatingRecorder
	now     func() time.Time
}

func NewAdminRatingUseCase(ratings repository.RatingRepository, metrics RatingRecorder) *AdminRatingUseCase {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &AdminRatingUseCase{ratings: ratings, metrics: metrics, now: time.Now}
}

// List listado de moderación; status "all" no filtra.
func (uc *AdminRatingUseCase) List(ctx context.Context, q dto.AdminRatingListQuery) (*dto.AdminRatingListResponse, error) {
	page := q.PageQuery.Normalize(adminPageDefault, adminPageMax)
	status := q.Status
	if status == "all" {
		status = ""
	}
	list, total, err := uc.ratings.AdminList(ctx, repository.RatingFilter{
		Search:   strings.TrimSpace(q.Search),
		Value:    q.Rating,
		StoreID:  q.StoreID,
		UserID:   q.UserID,
		Status:   status,
		DateFrom: q.DateFrom,
		DateTo:   q.DateTo,
		Limit:    page.Limit,
		Offset:   page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	filterStatus := q.Status
	if filterStatus == "" {
		filterStatus = "all"
	}
	return &dto.AdminRatingListResponse{
		Ratings:    toRatingResponses(list, true),
		Pagination: dto.NewAdminPagination(page, total),
		Filters: dto.AdminRatingFilters{
			Search:   q.Search,
			Rating:   q.Rating,
			Store:    q.StoreID,
			User:     q.UserID,
			Status:   filterStatus,
			DateFrom: formatDate(q.DateFrom),
			DateTo:   formatDate(q.DateTo),
		},
	}, nil
}

// Approve aprueba una calificación.
func (uc *AdminRatingUseCase) Approve(ctx context.Context, id int64) (*dto.RatingResponse, error) {
	return uc.moderate(ctx, id, "approve", entity.RatingApproved, "")
}

// Reject rechaza una calificación; sin motivo usa uno por defecto.
func (uc *AdminRatingUseCase) Reject(ctx context.Context, id int64, reason string) (*dto.RatingResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = rejectReason
	}
	return uc.moderate(ctx, id, "reject", entity.RatingRejected, reason)
}

func (uc *AdminRatingUseCase) moderate(ctx context.Context, id int64, op, status, reason string) (*dto.RatingResponse, error) {
	n, err := uc.ratings.SetStatus(ctx, []int64{id}, status, reason)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrRatingNotFound
	}
	uc.metrics.RatingsModerated(op, n)
	rating, err := uc.ratings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, domain.ErrRatingNotFound
	}
	out := ratingEntityResponse(rating)
	return &out, nil
}

// Delete borra cualquier calificación.
func (uc *AdminRatingUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.ratings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrRatingNotFound
	}
	uc.metrics.RatingsModerated("delete", 1)
	return nil
}

// Bulk aprueba, rechaza o borra varias calificaciones en una sola sentencia.
func (uc *AdminRatingUseCase) Bulk(ctx context.Context, in dto.BulkRatingsRequest) (*dto.BulkRatingsResponse, error) {
	var (
		n   int64
		err error
	)
	switch in.Operation {
	case "approve":
		n, err = uc.ratings.SetStatus(ctx, in.RatingIDs, entity.RatingApproved, "")
	case "reject":
		reason := strings.TrimSpace(in.Reason)
		if reason == "" {
			reason = bulkRejectReason
		}
		n, err = uc.ratings.SetStatus(ctx, in.RatingIDs, entity.RatingRejected, reason)
	case "delete":
		n, err = uc.ratings.DeleteMany(ctx, in.RatingIDs)
	default:
		return nil, domain.NewError(domain.ErrInvalidInput, "Invalid operation").WithDetail("Must be approve, reject, or delete")
	}
	if err != nil {
		return nil, err
	}
	uc.metrics.RatingsModerated(in.Operation, n)
	return &dto.BulkRatingsResponse{AffectedCount: n}, nil
}

// Attention calificaciones bajas, pendientes y de las últimas 24 horas.
func (uc *AdminRatingUseCase) Attention(ctx context.Context) (*dto.RatingsAttentionResponse, error) {
	since := uc.now().Add(-24 * time.Hour)
	filters := []repository.RatingFilter{
		{MaxValue: lowRatingMax, Limit: attentionRatings},
		{Status: entity.RatingPending, Limit: attentionRatings},
		{DateFrom: &since, Limit: attentionRatings},
	}
	results := make([][]dto.RatingResponse, len(filters))
	for i, f := range filters {
		list, err := uc.ratings.AdminFind(ctx, f)
		if err != nil {
			return nil, err
		}
		results[i] = toRatingResponses(list, true)
	}
	return &dto.RatingsAttentionResponse{LowRatings: results[0], Pending: results[1], Recent: results[2]}, nil
}
