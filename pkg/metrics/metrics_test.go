package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestFinished_CountsByRoute(t *testing.T) {
	m := New("test")

	m.RequestStarted()
	m.RequestFinished("GET", "/api/stores", 200, 20*time.Millisecond)
	m.RequestStarted()
	m.RequestFinished("GET", "/api/stores", 200, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/stores", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
}

func TestRatingCounters(t *testing.T) {
	m := New("test")

	m.RatingSubmitted(true)
	m.RatingSubmitted(false)
	m.RatingSubmitted(false)
	m.RatingsModerated("approve", 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ratings.WithLabelValues("created")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ratings.WithLabelValues("updated")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.moderation.WithLabelValues("approve")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New("test")
	m.RatingSubmitted(true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_ratings_submissions_total")
}
