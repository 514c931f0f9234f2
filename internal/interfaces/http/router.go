package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/pankaj-shinde04/store-rating/internal/application/analytics"
	"github.com/pankaj-shinde04/store-rating/internal/application/auth"
	"github.com/pankaj-shinde04/store-rating/internal/application/usecase"
	"github.com/pankaj-shinde04/store-rating/internal/application/validation"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	StoreUC       *usecase.StoreUseCase
	OwnerUC       *usecase.OwnerUseCase
	RatingUC      *usecase.RatingUseCase
	UserUC        *usecase.UserUseCase
	FavoriteUC    *usecase.FavoriteUseCase
	AdminUserUC   *usecase.AdminUserUseCase
	AdminStoreUC  *usecase.AdminStoreUseCase
	AdminRatingUC *usecase.AdminRatingUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	ReportUC      *appanalytics.ReportUseCase
	Tokens        *jwt.Manager
	Users         UserLoader
	DB            Pinger
	Validator     *validation.Validator
}

// Router registra las rutas de la API. Las rutas fijas van antes que las de parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	v := deps.Validator
	if v == nil {
		v = validation.New()
	}
	authRequired := Authenticate(deps.Tokens, deps.Users)
	var (
		normalUser = RequireRole(entity.RoleNormalUser)
		storeOwner = RequireRole(entity.RoleStoreOwner)
		ownerAdmin = RequireRole(entity.RoleStoreOwner, entity.RoleAdmin)
		admin      = RequireRole(entity.RoleAdmin)
	)

	health := NewHealthHandler(deps.DB)
	app.Get("/health", health.Simple)

	api := app.Group("/api")
	api.Get("/health", health.Check)
	api.Get("/health/simple", health.Simple)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, v)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh-token", authHandler.Refresh)
	authGroup.Get("/profile", authRequired, authHandler.Profile)
	authGroup.Put("/profile", authRequired, authHandler.UpdateProfile)
	authGroup.Put("/change-password", authRequired, authHandler.ChangePassword)
	authGroup.Post("/logout", authRequired, authHandler.Logout)

	// Stores
	storeHandler := NewStoreHandler(deps.StoreUC, deps.OwnerUC, v)
	stores := api.Group("/stores")
	stores.Get("/", storeHandler.List)
	stores.Get("/categories", storeHandler.Categories)
	stores.Get("/user", authRequired, storeHandler.ListForUser)
	stores.Get("/owner", authRequired, storeOwner, storeHandler.OwnerStores)
	stores.Get("/owner/stats", authRequired, storeOwner, storeHandler.OwnerStats)
	stores.Get("/owner/customers", authRequired, storeOwner, storeHandler.OwnerCustomers)
	stores.Get("/:id", storeHandler.Get)
	stores.Post("/", authRequired, storeOwner, storeHandler.Create)
	stores.Put("/:id", authRequired, ownerAdmin, storeHandler.Update)
	stores.Delete("/:id", authRequired, ownerAdmin, storeHandler.Delete)

	// Ratings
	ratingHandler := NewRatingHandler(deps.RatingUC, v)
	ratings := api.Group("/ratings")
	ratings.Get("/", ratingHandler.Index)
	ratings.Post("/", authRequired, normalUser, ratingHandler.Submit)
	ratings.Get("/user", authRequired, normalUser, ratingHandler.ListMine)
	ratings.Get("/store/:storeId", authRequired, storeOwner, ratingHandler.ListForStore)
	ratings.Delete("/:ratingId", authRequired, normalUser, ratingHandler.Delete)
	ratings.Put("/:ratingId/response", authRequired, storeOwner, ratingHandler.Respond)

	// Users (protegido)
	userHandler := NewUserHandler(deps.UserUC, deps.FavoriteUC, v)
	users := api.Group("/users", authRequired)
	users.Get("/profile", userHandler.Profile)
	users.Put("/profile", normalUser, userHandler.UpdateProfile)
	users.Get("/stats", normalUser, userHandler.Stats)
	users.Get("/ratings", normalUser, userHandler.Ratings)
	users.Get("/favorites", normalUser, userHandler.Favorites)
	users.Post("/favorites", normalUser, userHandler.AddFavorite)
	users.Delete("/favorites", normalUser, userHandler.RemoveFavorite)
	users.Delete("/favorites/:storeId", normalUser, userHandler.RemoveFavorite)

	// Admin (todas las rutas exigen rol admin)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	adminUsers := NewAdminUserHandler(deps.AdminUserUC, v)
	adminStores := NewAdminStoreHandler(deps.AdminStoreUC, v)
	adminRatings := NewAdminRatingHandler(deps.AdminRatingUC, v)

	adm := api.Group("/admin", authRequired, admin)
	adm.Get("/stats", dashboardHandler.Stats)
	adm.Get("/recent-users", adminUsers.Recent)
	adm.Get("/recent-stores", adminStores.Recent)
	adm.Get("/reports/summary.pdf", dashboardHandler.SummaryPDF)

	adm.Get("/users", adminUsers.List)
	adm.Get("/users/stats", adminUsers.Stats)
	adm.Post("/users", adminUsers.Create)
	adm.Post("/users/bulk", adminUsers.Bulk)
	adm.Get("/users/:id", adminUsers.Get)
	adm.Put("/users/:id", adminUsers.Update)
	adm.Delete("/users/:id", adminUsers.Delete)

	adm.Get("/stores", adminStores.List)
	adm.Get("/stores/stats", adminStores.Stats)
	adm.Get("/stores/attention", adminStores.Attention)
	adm.Post("/stores", adminStores.Create)
	adm.Post("/stores/bulk", adminStores.Bulk)
	adm.Get("/stores/:id", adminStores.Get)
	adm.Get("/stores/:id/analytics", adminStores.Analytics)
	adm.Put("/stores/:id/approve", adminStores.Approve)
	adm.Put("/stores/:id/reject", adminStores.Reject)
	adm.Put("/stores/:id", adminStores.Update)
	adm.Delete("/stores/:id", adminStores.Delete)

	adm.Get("/ratings", adminRatings.List)
	adm.Get("/ratings/statistics", dashboardHandler.RatingStatistics)
	adm.Get("/ratings/attention", adminRatings.Attention)
	adm.Post("/ratings/bulk", adminRatings.Bulk)
	adm.Put("/ratings/:id/approve", adminRatings.Approve)
	adm.Put("/ratings/:id/reject", adminRatings.Reject)
	adm.Delete("/ratings/:id", adminRatings.Delete)
}
