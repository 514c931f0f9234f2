package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pankaj-shinde04/store-rating/internal/application/auth"
	"github.com/pankaj-shinde04/store-rating/internal/application/usecase"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository/mocks"
	apphttp "github.com/pankaj-shinde04/store-rating/internal/interfaces/http"
	"github.com/pankaj-shinde04/store-rating/pkg/logger"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type routerFixture struct {
	app       *fiber.App
	users     *mocks.UserRepository
	stores    *mocks.StoreRepository
	ratings   *mocks.RatingRepository
	favorites *mocks.FavoriteRepository
}

func newRouterFixture(t *testing.T, db apphttp.Pinger) *routerFixture {
	t.Helper()
	f := &routerFixture{
		users:     new(mocks.UserRepository),
		stores:    new(mocks.StoreRepository),
		ratings:   new(mocks.RatingRepository),
		favorites: new(mocks.FavoriteRepository),
	}
	for _, u := range testUsers() {
		f.users.On("GetByID", mock.Anything, u.ID).Return(u, nil).Maybe()
	}

	f.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	apphttp.Router(f.app, apphttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(f.users, testTokens, 4),
		RatingUC:   usecase.NewRatingUseCase(f.ratings, f.stores, entity.RatingApproved, nil),
		FavoriteUC: usecase.NewFavoriteUseCase(f.favorites, f.stores),
		Tokens:     testTokens,
		Users:      f.users,
		DB:         db,
	})
	f.app.Use(apphttp.NotFound)
	return f
}

func (f *routerFixture) do(t *testing.T, method, path, authHeader string, body any) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestSubmitRating_OutOfRange(t *testing.T) {
	f := newRouterFixture(t, fakePinger{})
	normal := testUsers()[3]

	status, body := f.do(t, http.MethodPost, "/api/ratings", bearerFor(t, accessOpts, normal),
		map[string]any{"store_id": 5, "rating_value": 6})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", body["error"])
	assert.Contains(t, body["message"], "Rating must be between 1 and 5")
	f.ratings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSubmitRating_CreatedThenUpdated(t *testing.T) {
	f := newRouterFixture(t, fakePinger{})
	normal := testUsers()[3]
	f.stores.On("GetByID", mock.Anything, int64(5)).Return(&entity.Store{ID: 5, OwnerID: 2, IsActive: true}, nil)
	f.ratings.On("Upsert", mock.Anything, mock.Anything).Return(true, nil).Once()
	f.ratings.On("Upsert", mock.Anything, mock.Anything).Return(false, nil).Once()

	in := map[string]any{"store_id": 5, "rating_value": 4, "review_text": "Good"}
	status, body := f.do(t, http.MethodPost, "/api/ratings", bearerFor(t, accessOpts, normal), in)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Rating submitted successfully", body["message"])

	in["rating_value"] = 2
	status, body = f.do(t, http.MethodPost, "/api/ratings", bearerFor(t, accessOpts, normal), in)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Rating updated successfully", body["message"])

	data := body["data"].(map[string]any)
	rating := data["rating"].(map[string]any)
	assert.EqualValues(t, 2, rating["rating_value"])
}

func TestSubmitRating_WrongRole(t *testing.T) {
	f := newRouterFixture(t, fakePinger{})
	owner := testUsers()[2]

	status, body := f.do(t, http.MethodPost, "/api/ratings", bearerFor(t, accessOpts, owner),
		map[string]any{"store_id": 5, "rating_value": 3})

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Insufficient permissions", body["error"])
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newRouterFixture(t, fakePinger{})
	hash, err := auth.HashPassword("Correct#123", 4)
	require.NoError(t, err)
	f.users.On("GetByEmail", mock.Anything, "admin@x.com").
		Return(&entity.User{ID: 1, Email: "admin@x.com", PasswordHash: hash, Role: entity.RoleAdmin, IsActive: true}, nil)

	status, body := f.do(t, http.MethodPost, "/api/auth/login", "",
		map[string]any{"email": "admin@x.com", "password": "wrong", "role": "admin"})

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid email or password", body["error"])
}

func TestRemoveFavorite_PathParam(t *testing.T) {
	f := newRouterFixture(t, fakePinger{})
	normal := testUsers()[3]
	f.favorites.On("Remove", mock.Anything, int64(3), int64(7)).Return(true, nil)
	f.favorites.On("Remove", mock.Anything, int64(3), int64(8)).Return(false, nil)

	status, body := f.do(t, http.MethodDelete, "/api/users/favorites/7", bearerFor(t, accessOpts, normal), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Store removed from favorites", body["message"])

	status, body = f.do(t, http.MethodDelete, "/api/users/favorites", bearerFor(t, accessOpts, normal), map[string]any{"storeId": 8})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Favorite not found", body["error"])
}

func TestInvalidIDParam(t *testing.T) {
	f := newRouterFixture(t, fakePinger{})
	normal := testUsers()[3]

	status, body := f.do(t, http.MethodDelete, "/api/ratings/abc", bearerFor(t, accessOpts, normal), nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid ID", body["error"])
}

func TestNotFoundRoute(t *testing.T) {
	f := newRouterFixture(t, fakePinger{})

	status, body := f.do(t, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Route not found", body["error"])
	assert.Equal(t, "Cannot GET /api/nope", body["message"])
}

func TestHealth(t *testing.T) {
	f := newRouterFixture(t, fakePinger{})
	status, body := f.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body["status"])

	status, body = f.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	down := newRouterFixture(t, fakePinger{err: errors.New("connection refused")})
	status, body = down.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "Database unavailable", body["error"])
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("pg: connection reset") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal Server Error", body["error"])
	assert.Equal(t, "An unexpected error occurred", body["message"])
	assert.NotContains(t, body, "details")
}
