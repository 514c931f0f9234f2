// Package analytics contiene los casos de uso de estadísticas y reportes del
// panel de administración.
package analytics

import (
	"context"
	"fmt"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

const (
	rankingSize       = 10 // tiendas en cada ranking
	rankingMinRatings = 1
	recentDays        = 7
)

// DashboardUseCase arma las tarjetas y estadísticas del panel de administración.
//
// Fuente de datos: repositorios de usuarios, tiendas y StatsRepository (read-only).
type DashboardUseCase struct {
	users  repository.UserRepository
	stores repository.StoreRepository
	stats  repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(users repository.UserRepository, stores repository.StoreRepository, stats repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{users: users, stores: stores, stats: stats}
}

// AdminStats tarjetas del panel.
//
// Tres consultas en paralelo:
//  1. Counts de usuarios   → TotalUsers + ActiveUsers (altas de los últimos 30 días)
//  2. Counts de tiendas    → TotalStores + PendingStores (inactivas)
//  3. RatingOverall        → TotalRatings + AverageRating
func (uc *DashboardUseCase) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	type usersResult struct {
		c   repository.UserCounts
		err error
	}
	type storesResult struct {
		c   repository.StoreCounts
		err error
	}
	type ratingsResult struct {
		o   repository.RatingOverall
		err error
	}

	usersCh := make(chan usersResult, 1)
	storesCh := make(chan storesResult, 1)
	ratingsCh := make(chan ratingsResult, 1)

	go func() {
		c, err := uc.users.Counts(ctx)
		usersCh <- usersResult{c, err}
	}()
	go func() {
		c, err := uc.stores.Counts(ctx)
		storesCh <- storesResult{c, err}
	}()
	go func() {
		o, err := uc.stats.RatingOverall(ctx)
		ratingsCh <- ratingsResult{o, err}
	}()

	users := <-usersCh
	stores := <-storesCh
	ratings := <-ratingsCh

	if users.err != nil {
		return nil, fmt.Errorf("dashboard: usuarios: %w", users.err)
	}
	if stores.err != nil {
		return nil, fmt.Errorf("dashboard: tiendas: %w", stores.err)
	}
	if ratings.err != nil {
		return nil, fmt.Errorf("dashboard: calificaciones: %w", ratings.err)
	}

	return &dto.AdminStatsResponse{
		TotalUsers:    users.c.Total,
		TotalStores:   stores.c.Total,
		TotalRatings:  ratings.o.Total,
		AverageRating: dto.Round1(ratings.o.Average),
		ActiveUsers:   users.c.NewLast30Days,
		PendingStores: stores.c.Inactive,
	}, nil
}

// RatingStatistics estadísticas de moderación: agregados, distribuciones,
// actividad de los últimos 7 días y rankings de tiendas.
func (uc *DashboardUseCase) RatingStatistics(ctx context.Context) (*dto.RatingStatisticsResponse, error) {
	type overallResult struct {
		o   repository.RatingOverall
		err error
	}
	type valuesResult struct {
		v   []repository.ValueCount
		err error
	}
	type statusResult struct {
		s   []repository.StatusCount
		err error
	}
	type dailyResult struct {
		d   []repository.DailyCount
		err error
	}
	type rankResult struct {
		r   []repository.StoreRank
		err error
	}

	overallCh := make(chan overallResult, 1)
	valuesCh := make(chan valuesResult, 1)
	statusCh := make(chan statusResult, 1)
	dailyCh := make(chan dailyResult, 1)
	topCh := make(chan rankResult, 1)
	lowCh := make(chan rankResult, 1)

	go func() {
		o, err := uc.stats.RatingOverall(ctx)
		overallCh <- overallResult{o, err}
	}()
	go func() {
		v, err := uc.stats.RatingDistribution(ctx)
		valuesCh <- valuesResult{v, err}
	}()
	go func() {
		s, err := uc.stats.StatusDistribution(ctx)
		statusCh <- statusResult{s, err}
	}()
	go func() {
		d, err := uc.stats.DailyRatings(ctx, recentDays)
		dailyCh <- dailyResult{d, err}
	}()
	go func() {
		r, err := uc.stats.StoreRanking(ctx, rankingSize, rankingMinRatings, false)
		topCh <- rankResult{r, err}
	}()
	go func() {
		r, err := uc.stats.StoreRanking(ctx, rankingSize, rankingMinRatings, true)
		lowCh <- rankResult{r, err}
	}()

	overall := <-overallCh
	values := <-valuesCh
	status := <-statusCh
	daily := <-dailyCh
	top := <-topCh
	low := <-lowCh

	for _, e := range []struct {
		what string
		err  error
	}{
		{"agregados", overall.err},
		{"distribución", values.err},
		{"estados", status.err},
		{"actividad diaria", daily.err},
		{"mejores tiendas", top.err},
		{"peores tiendas", low.err},
	} {
		if e.err != nil {
			return nil, fmt.Errorf("estadísticas: %s: %w", e.what, e.err)
		}
	}

	out := &dto.RatingStatisticsResponse{
		Overall:            toOverall(overall.o),
		Distribution:       toValueCounts(values.v),
		StatusDistribution: make([]dto.RatingStatusCount, 0, len(status.s)),
		Recent:             make([]dto.DailyRatingCount, 0, len(daily.d)),
		TopStores:          toRanks(top.r),
		LowRatedStores:     toRanks(low.r),
	}
	for _, s := range status.s {
		out.StatusDistribution = append(out.StatusDistribution, dto.RatingStatusCount{Status: s.Status, Count: s.Count})
		if s.Status == entity.RatingPending {
			out.PendingCount = s.Count
		}
	}
	for _, d := range daily.d {
		out.Recent = append(out.Recent, dto.DailyRatingCount{
			Date:    d.Day.Format("2006-01-02"),
			Count:   d.Count,
			Average: dto.Round1(d.Average),
		})
	}
	return out, nil
}

func toOverall(o repository.RatingOverall) dto.OverallRatingStats {
	return dto.OverallRatingStats{Total: o.Total, Average: dto.Round1(o.Average), Min: o.Min, Max: o.Max}
}

func toValueCounts(list []repository.ValueCount) []dto.RatingValueCount {
	out := make([]dto.RatingValueCount, 0, len(list))
	for _, v := range list {
		out = append(out, dto.RatingValueCount{Rating: v.Value, Count: v.Count})
	}
	return out
}

func toRanks(list []repository.StoreRank) []dto.StoreRankResponse {
	out := make([]dto.StoreRankResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.StoreRankResponse{
			ID:            r.StoreID,
			Name:          r.Name,
			RatingCount:   r.RatingCount,
			AverageRating: dto.Round1(r.Average),
		})
	}
	return out
}
