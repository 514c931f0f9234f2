// migrate administra el esquema de la base de datos y el administrador inicial.
//
// Uso: go run ./cmd/migrate [up|down|version|seed-admin]
// Sin argumentos ejecuta "up". La conexión se toma de las mismas variables que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pankaj-shinde04/store-rating/internal/application/auth"
	"github.com/pankaj-shinde04/store-rating/internal/infrastructure/postgres"
	"github.com/pankaj-shinde04/store-rating/pkg/config"
	"github.com/pankaj-shinde04/store-rating/pkg/jwt"
	"github.com/pankaj-shinde04/store-rating/pkg/logger"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	switch cmd {
	case "up", "down", "version":
		if err := runMigrator(cmd, cfg.DB); err != nil {
			log.Fatal().Err(err).Str("cmd", cmd).Msg("migración fallida")
		}
	case "seed-admin":
		created, err := seedAdmin(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("seed del administrador")
		}
		log.Info().Bool("created", created).Str("email", cfg.Admin.Email).Msg("seed del administrador")
	default:
		fmt.Fprintf(os.Stderr, "Comando desconocido %q (up|down|version|seed-admin)\n", cmd)
		os.Exit(2)
	}
}

func runMigrator(cmd string, db config.DBConfig) error {
	m, err := postgres.NewMigrator(db.ConnectionString())
	if err != nil {
		return err
	}
	defer m.Close()

	switch cmd {
	case "down":
		return m.Down()
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return err
		}
		fmt.Printf("versión %d (dirty=%t)\n", v, dirty)
		return nil
	default:
		return m.Up()
	}
}

func seedAdmin(cfg *config.Config) (bool, error) {
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return false, err
	}
	defer pool.Close()

	// El seed no emite tokens; el manager solo satisface la dependencia del caso de uso.
	tokens := jwt.NewManager(
		jwt.Options{Secret: cfg.JWT.AccessSecret, TTL: cfg.JWT.AccessTTL},
		jwt.Options{Secret: cfg.JWT.RefreshSecret, TTL: cfg.JWT.RefreshTTL},
	)
	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), tokens, cfg.Security.BcryptCost)
	return uc.EnsureAdmin(ctx, auth.AdminSeed{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	})
}
