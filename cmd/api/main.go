package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	_ "github.com/pankaj-shinde04/store-rating/docs"
	appanalytics "github.com/pankaj-shinde04/store-rating/internal/application/analytics"
	"github.com/pankaj-shinde04/store-rating/internal/application/auth"
	"github.com/pankaj-shinde04/store-rating/internal/application/usecase"
	"github.com/pankaj-shinde04/store-rating/internal/application/validation"
	infrapdf "github.com/pankaj-shinde04/store-rating/internal/infrastructure/pdf"
	"github.com/pankaj-shinde04/store-rating/internal/infrastructure/postgres"
	"github.com/pankaj-shinde04/store-rating/internal/infrastructure/storage"
	httpRouter "github.com/pankaj-shinde04/store-rating/internal/interfaces/http"
	"github.com/pankaj-shinde04/store-rating/pkg/config"
	"github.com/pankaj-shinde04/store-rating/pkg/jwt"
	"github.com/pankaj-shinde04/store-rating/pkg/logger"
	"github.com/pankaj-shinde04/store-rating/pkg/metrics"
)

// @title                       Store Rating API
// @version                     1.0
// @description                 Plataforma de calificación de tiendas: usuarios, dueños y administradores.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	if cfg.DB.AutoMigrate {
		if err := migrateUp(cfg.DB); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	ratingRepo := postgres.NewRatingRepository(pool)
	favoriteRepo := postgres.NewFavoriteRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	photos, err := storage.NewLocalPhotoStorage(cfg.Upload.Dir, cfg.Upload.URLPrefix, cfg.Upload.MaxBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de fotos")
	}
	apiMetrics := metrics.New("store_rating")

	tokens := jwt.NewManager(
		jwt.Options{Secret: cfg.JWT.AccessSecret, Issuer: cfg.JWT.Issuer, Audience: cfg.JWT.Audience, TTL: cfg.JWT.AccessTTL},
		jwt.Options{Secret: cfg.JWT.RefreshSecret, Issuer: cfg.JWT.Issuer, Audience: cfg.JWT.Audience, TTL: cfg.JWT.RefreshTTL},
	)
	authUC := auth.NewAuthUseCase(userRepo, tokens, cfg.Security.BcryptCost)
	created, err := authUC.EnsureAdmin(ctx, auth.AdminSeed{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed del administrador")
	}
	if created {
		log.Info().Str("email", cfg.Admin.Email).Msg("administrador inicial creado")
	}

	storeUC := usecase.NewStoreUseCase(storeRepo, ratingRepo, txRunner, photos, log)
	deps := httpRouter.RouterDeps{
		AuthUC:        authUC,
		StoreUC:       storeUC,
		OwnerUC:       usecase.NewOwnerUseCase(storeRepo, statsRepo),
		RatingUC:      usecase.NewRatingUseCase(ratingRepo, storeRepo, cfg.Ratings.DefaultStatus, apiMetrics),
		UserUC:        usecase.NewUserUseCase(userRepo, ratingRepo, statsRepo),
		FavoriteUC:    usecase.NewFavoriteUseCase(favoriteRepo, storeRepo),
		AdminUserUC:   usecase.NewAdminUserUseCase(userRepo, storeRepo, photos, log, cfg.Security.BcryptCost),
		AdminStoreUC:  usecase.NewAdminStoreUseCase(storeRepo, userRepo, storeUC),
		AdminRatingUC: usecase.NewAdminRatingUseCase(ratingRepo, apiMetrics),
		DashboardUC:   appanalytics.NewDashboardUseCase(userRepo, storeRepo, statsRepo),
		ReportUC: appanalytics.NewReportUseCase(userRepo, storeRepo, statsRepo,
			infrapdf.NewMarotoReportRenderer(cfg.App.Name)),
		Tokens:    tokens,
		Users:     userRepo,
		DB:        pool,
		Validator: validation.New(),
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler(log),
		BodyLimit:    int(cfg.Upload.MaxBytes) + 1<<20,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(helmet.New(helmet.Config{CrossOriginResourcePolicy: "cross-origin"}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.HTTP.CORSOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.Metrics(apiMetrics))

	stopCleanup := make(chan struct{})
	if cfg.RateLimit.RPS > 0 {
		limiter := httpRouter.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		limiter.StartCleanup(5*time.Minute, stopCleanup)
		app.Use(limiter.Handler())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Store Rating API",
	}))
	app.Get("/metrics", adaptor.HTTPHandler(apiMetrics.Handler()))
	app.Static(cfg.Upload.URLPrefix, photos.Dir())

	httpRouter.Router(app, deps)
	app.Use(httpRouter.NotFound)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	close(stopCleanup)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func migrateUp(cfg config.DBConfig) error {
	m, err := postgres.NewMigrator(cfg.ConnectionString())
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up()
}
