package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/ports"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF con los totales de la plataforma.
type ReportUseCase struct {
	users    repository.UserRepository
	stores   repository.StoreRepository
	stats    repository.StatsRepository
	renderer ports.ReportRenderer
	now      func() time.Time
}

func NewReportUseCase(users repository.UserRepository, stores repository.StoreRepository, stats repository.StatsRepository, renderer ports.ReportRenderer) *ReportUseCase {
	return &ReportUseCase{users: users, stores: stores, stats: stats, renderer: renderer, now: time.Now}
}

// Summary reúne los datos y delega el dibujo del PDF en el renderer.
func (uc *ReportUseCase) Summary(ctx context.Context) ([]byte, error) {
	report, err := uc.collect(ctx)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.renderer.RenderSummary(report)
	if err != nil {
		return nil, fmt.Errorf("reporte: render: %w", err)
	}
	return pdf, nil
}

func (uc *ReportUseCase) collect(ctx context.Context) (*dto.SummaryReport, error) {
	users, err := uc.users.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: usuarios: %w", err)
	}
	stores, err := uc.stores.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: tiendas: %w", err)
	}
	overall, err := uc.stats.RatingOverall(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: calificaciones: %w", err)
	}
	values, err := uc.stats.RatingDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: distribución: %w", err)
	}
	top, err := uc.stats.StoreRanking(ctx, rankingSize, rankingMinRatings, false)
	if err != nil {
		return nil, fmt.Errorf("reporte: ranking: %w", err)
	}
	low, err := uc.stats.StoreRanking(ctx, rankingSize, rankingMinRatings, true)
	if err != nil {
		return nil, fmt.Errorf("reporte: ranking: %w", err)
	}

	return &dto.SummaryReport{
		GeneratedAt: uc.now(),
		Users: dto.UserCountsResponse{
			TotalUsers:         users.Total,
			ActiveUsers:        users.Active,
			NormalUsers:        users.NormalUsers,
			StoreOwners:        users.StoreOwners,
			AdminUsers:         users.Admins,
			NewUsersLast30Days: users.NewLast30Days,
			NewUsersLast7Days:  users.NewLast7Days,
		},
		Stores: dto.StoreCountsResponse{
			TotalStores:         stores.Total,
			ActiveStores:        stores.Active,
			InactiveStores:      stores.Inactive,
			VerifiedStores:      stores.Verified,
			NewStoresLast30Days: stores.NewLast30Days,
			NewStoresLast7Days:  stores.NewLast7Days,
		},
		Ratings:        toOverall(overall),
		Distribution:   toValueCounts(values),
		TopStores:      toRanks(top),
		LowRatedStores: toRanks(low),
	}, nil
}
