package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
)

func TestRenderSummary(t *testing.T) {
	report := &dto.SummaryReport{
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Users:       dto.UserCountsResponse{TotalUsers: 10, AdminUsers: 1},
		Stores:      dto.StoreCountsResponse{TotalStores: 3},
		Ratings:     dto.OverallRatingStats{Total: 7, Average: 3.9, Min: 1, Max: 5},
		Distribution: []dto.RatingValueCount{
			{Rating: 1, Count: 1}, {Rating: 2}, {Rating: 3, Count: 2}, {Rating: 4, Count: 2}, {Rating: 5, Count: 2},
		},
		TopStores: []dto.StoreRankResponse{{ID: 1, Name: "Green Cafe", RatingCount: 4, AverageRating: 4.5}},
	}

	out, err := NewMarotoReportRenderer("test").RenderSummary(report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestDistributionRows_EmptyCounts(t *testing.T) {
	rows := distributionRows([]dto.RatingValueCount{{Rating: 1}, {Rating: 2}})
	assert.Len(t, rows, 3)
}
